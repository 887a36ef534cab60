package drivers

import (
	"strings"

	"github.com/labelprint/labelprint-go/pkg/ipp"
)

// familyInit populates a freshly allocated Driver with the capability
// description of one command-language family.
type familyInit func(*Driver)

// families maps keyword prefixes to family initializers. Keywords that
// match no prefix fall through to the ZPL family.
var families = []struct {
	prefix string
	init   familyInit
}{
	{"cpcl_", initCPCL},
	{"dymo_", initDYMO},
	{"epl1_", initEPL1},
	{"epl2_", initEPL2},
	{"fgl_", initFGL},
	{"pcl_", initPCL},
}

// familyFor selects the family initializer for a driver keyword.
func familyFor(keyword string) familyInit {
	for _, f := range families {
		if strings.HasPrefix(keyword, f.prefix) {
			return f.init
		}
	}
	return initZPL
}

// initCPCL populates capabilities for Zebra CPCL mobile printers.
func initCPCL(d *Driver) {
	d.Format = "application/vnd.zebra-cpcl"
	d.Resolutions = []ipp.Resolution{ipp.DPI(203, 203)}
	d.Media = []string{
		"oe_2x3-label_2x3in",
		"oe_3x5-label_3x5in",
		"roll_min_1x1in",
		"roll_max_2.25x16in",
	}
	d.Sources = []string{"roll"}
	d.Types = []string{"continuous", "labels"}
	d.LeftRight = 150
	d.BottomTop = 150
}

// initDYMO populates capabilities for Dymo LabelWriter printers.
func initDYMO(d *Driver) {
	d.Format = "application/vnd.dymo-lw"
	d.Resolutions = []ipp.Resolution{
		ipp.DPI(203, 203),
		ipp.DPI(300, 300),
	}
	d.Media = []string{
		"oe_thin-multipurpose-label_0.375x2.8125in",
		"oe_address-label_1.125x3.5in",
		"oe_large-address-label_1.4x3.5in",
		"oe_multipurpose-label_2x2.3125in",
		"oe_shipping-label_2.125x4in",
		"na_index-4x6_4x6in",
	}
	d.Types = []string{"labels"}
	d.LeftRight = 100
	d.BottomTop = 525
}

// initEPL1 populates capabilities for EPL page-mode (line mode) printers.
func initEPL1(d *Driver) {
	d.Format = "application/vnd.eltron-epl"
	d.Resolutions = []ipp.Resolution{ipp.DPI(203, 203)}
	d.Media = []string{
		"oe_1.25x0.25-label_1.25x0.25in",
		"oe_2x1-label_2x1in",
		"oe_2x3-label_2x3in",
	}
	d.Types = []string{"labels"}
	d.LeftRight = 35
	d.BottomTop = 35
}

// initEPL2 populates capabilities for EPL2 desktop label printers.
func initEPL2(d *Driver) {
	d.Format = "application/vnd.eltron-epl"
	d.Resolutions = []ipp.Resolution{ipp.DPI(203, 203)}
	d.Media = []string{
		"oe_2x1-label_2x1in",
		"oe_2x3-label_2x3in",
		"oe_4x6-label_4x6in",
		"roll_min_0.75x0.25in",
		"roll_max_4.25x16in",
	}
	d.Sources = []string{"roll"}
	d.Types = []string{"continuous", "labels"}
	d.LeftRight = 35
	d.BottomTop = 35
}

// initFGL populates capabilities for Boca FGL ticket printers.
func initFGL(d *Driver) {
	d.Format = "application/vnd.fgl"
	d.Resolutions = []ipp.Resolution{
		ipp.DPI(203, 203),
		ipp.DPI(300, 300),
	}
	d.Media = []string{
		"oe_concert-ticket_2x5.5in",
		"oe_season-ticket_3.25x8in",
	}
	d.Sources = []string{"main", "alternate"}
	d.Types = []string{"card-stock"}
	d.LeftRight = 100
	d.BottomTop = 100
}

// initPCL populates capabilities for sheet-fed PCL printers.
func initPCL(d *Driver) {
	d.Format = "application/vnd.hp-pcl"
	d.Resolutions = []ipp.Resolution{
		ipp.DPI(300, 300),
		ipp.DPI(600, 600),
	}
	d.Media = []string{
		"na_letter_8.5x11in",
		"na_legal_8.5x14in",
		"iso_a4_210x297mm",
	}
	d.Sources = []string{"tray-1"}
	d.Types = []string{"stationery"}
	d.LeftRight = 635
	d.BottomTop = 1270
}

// initZPL populates capabilities for Zebra ZPL printers, the default
// family for keywords with no recognized prefix.
func initZPL(d *Driver) {
	d.Format = "application/vnd.zebra-zpl"
	d.Resolutions = []ipp.Resolution{
		ipp.DPI(203, 203),
		ipp.DPI(300, 300),
	}
	d.Media = []string{
		"oe_1.25x0.25-label_1.25x0.25in",
		"oe_2x1-label_2x1in",
		"oe_2x3-label_2x3in",
		"oe_4x6-label_4x6in",
		"na_index-4x6_4x6in",
		"roll_min_0.75x0.25in",
		"roll_max_4x39.6in",
	}
	d.Sources = []string{"roll"}
	d.Types = []string{"continuous", "labels"}
	d.LeftRight = 0
	d.BottomTop = 0
}
