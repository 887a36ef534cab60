package drivers

import (
	"io"
	"sync"

	"github.com/labelprint/labelprint-go/pkg/ipp"
)

// Driver describes one attached printer driver: the static capability
// description populated by its family initializer, plus the device
// handle it owns. A Driver is created once per attachment and destroyed
// on detach.
type Driver struct {
	// mu guards Device and the render path. Capability synthesis runs
	// under the printer's lock instead and never takes mu.
	mu sync.RWMutex

	// Name is the driver keyword.
	Name string

	// Format is the native document format MIME type of the command
	// language, e.g. "application/vnd.zebra-zpl".
	Format string

	// Resolutions lists the supported resolutions in ascending order.
	Resolutions []ipp.Resolution

	// Media lists the supported PWG size names, roll sentinels included.
	Media []string

	// Sources lists the supported media sources. Empty means the
	// media-source-supported attribute is not advertised.
	Sources []string

	// Types lists the supported media types. Empty means the
	// media-type-supported attribute is not advertised.
	Types []string

	// LeftRight is the left and right margin in hundredths of mm.
	LeftRight int

	// BottomTop is the bottom and top margin in hundredths of mm.
	BottomTop int

	// Device is the open device handle, if any. The driver owns it and
	// closes it on Delete.
	Device io.Closer
}

// New creates a driver for the given keyword. The keyword is resolved
// against the registry and the matching family initializer populates
// the capability description. Unknown keywords fail with ErrNotFound.
func New(keyword string) (*Driver, error) {
	if _, err := Lookup(keyword); err != nil {
		return nil, err
	}

	d := &Driver{Name: keyword}
	familyFor(keyword)(d)
	return d, nil
}

// SetDevice hands an open device handle to the driver.
func (d *Driver) SetDevice(dev io.Closer) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.Device = dev
}

// Delete releases the driver, closing its device handle. Delete is
// idempotent and a no-op on a nil driver; the device handle is closed
// at most once. Callers synchronize detachment from the printer.
func Delete(d *Driver) error {
	if d == nil {
		return nil
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if d.Device == nil {
		return nil
	}
	err := d.Device.Close()
	d.Device = nil
	return err
}

// MakeAndModel re-resolves the driver's keyword against the registry.
// It returns "Unknown" for a nil driver or a keyword that has been
// removed from the registry since the driver was created.
func MakeAndModel(d *Driver) string {
	if d == nil || d.Name == "" {
		return "Unknown"
	}
	desc, err := Lookup(d.Name)
	if err != nil {
		return "Unknown"
	}
	return desc.ModelName
}
