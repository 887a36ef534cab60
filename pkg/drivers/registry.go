package drivers

// Descriptor pairs a driver keyword with its make-and-model string.
type Descriptor struct {
	Keyword   string
	ModelName string
}

// Note: driverKeywords and driverModels need to be kept in sync;
// driverKeywords[i] always describes driverModels[i].
var driverKeywords = []string{
	"cpcl_ql-220",
	"cpcl_ql-320",
	"cpcl_ql-420",
	"dymo_lm-400",
	"dymo_lm-450",
	"dymo_lm-pc",
	"dymo_lm-pc-ii",
	"dymo_lm-pnp",
	"dymo_lp-350",
	"dymo_lw-300",
	"dymo_lw-310",
	"dymo_lw-315",
	"dymo_lw-320",
	"dymo_lw-330-turbo",
	"dymo_lw-330",
	"dymo_lw-400-turbo",
	"dymo_lw-400",
	"dymo_lw-450-duo-label",
	"dymo_lw-450-duo-tape",
	"dymo_lw-450-turbo",
	"dymo_lw-450-twin-turbo",
	"dymo_lw-450",
	"dymo_lw-4xl",
	"dymo_lw-se450",
	"dymo_lw-wireless",
	"epl1_lp-2022",
	"epl1_lp-2042",
	"epl2_lp-2824",
	"epl2_lp-2844",
	"epl2_tlp-2824",
	"epl2_tlp-2844",
	"fgl_ghostwriter",
	"fgl_lemur",
	"fgl_lemur-2",
	"pcl_generic",
	"zpl_2inch-203dpi-dt",
	"zpl_2inch-300dpi-dt",
	"zpl_4inch-203dpi-dt",
	"zpl_4inch-203dpi-tt",
	"zpl_4inch-300dpi-dt",
	"zpl_4inch-300dpi-tt",
}

var driverModels = []string{
	"Zebra QL 220",
	"Zebra QL 320",
	"Zebra QL 420",
	"Dymo LabelMANAGER 400",
	"Dymo LabelMANAGER 450",
	"Dymo LabelMANAGER PC",
	"Dymo LabelMANAGER PC II",
	"Dymo LabelMANAGER PNP",
	"Dymo LabelPOINT 350",
	"Dymo LabelWriter 300",
	"Dymo LabelWriter 310",
	"Dymo LabelWriter 315",
	"Dymo LabelWriter 320",
	"Dymo LabelWriter 330 Turbo",
	"Dymo LabelWriter 330",
	"Dymo LabelWriter 400 Turbo",
	"Dymo LabelWriter 400",
	"Dymo LabelWriter 450 DUO Label",
	"Dymo LabelWriter 450 DUO Tape",
	"Dymo LabelWriter 450 Turbo",
	"Dymo LabelWriter 450 Twin Turbo",
	"Dymo LabelWriter 450",
	"Dymo LabelWriter 4XL",
	"Dymo LabelWriter SE450",
	"Dymo LabelWriter Wireless",
	"Zebra/Eltron LP-2022",
	"Zebra/Eltron LP-2042",
	"Zebra LP-2824",
	"Zebra LP-2844",
	"Zebra TLP-2824",
	"Zebra TLP-2844",
	"Boca Ghostwriter",
	"Boca Lemur",
	"Boca Lemur-2",
	"Generic PCL Label Printer",
	"Zebra ZPL 2-inch/203dpi/Direct-Thermal",
	"Zebra ZPL 2-inch/300dpi/Direct-Thermal",
	"Zebra ZPL 4-inch/203dpi/Direct-Thermal",
	"Zebra ZPL 4-inch/203dpi/Thermal-Transfer",
	"Zebra ZPL 4-inch/300dpi/Direct-Thermal",
	"Zebra ZPL 4-inch/300dpi/Thermal-Transfer",
}

func init() {
	// The two tables are index-aligned; a length mismatch is a build
	// defect, not a runtime condition.
	if len(driverKeywords) != len(driverModels) {
		panic("drivers: keyword and model tables out of sync")
	}
}

// Lookup returns the descriptor for an exact keyword match.
// Unknown keywords fail with ErrNotFound.
func Lookup(keyword string) (Descriptor, error) {
	for i, k := range driverKeywords {
		if k == keyword {
			return Descriptor{Keyword: k, ModelName: driverModels[i]}, nil
		}
	}
	return Descriptor{}, ErrNotFound
}

// List returns all supported drivers in table order.
func List() []Descriptor {
	out := make([]Descriptor, len(driverKeywords))
	for i, k := range driverKeywords {
		out[i] = Descriptor{Keyword: k, ModelName: driverModels[i]}
	}
	return out
}
