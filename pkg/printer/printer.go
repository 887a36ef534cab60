package printer

import (
	"sync"

	"github.com/google/uuid"

	"github.com/labelprint/labelprint-go/pkg/drivers"
	"github.com/labelprint/labelprint-go/pkg/ipp"
	"github.com/labelprint/labelprint-go/pkg/log"
)

// DriverAttr is the capability set attribute naming the requested
// driver keyword.
const DriverAttr = "labelprint-driver"

// Config configures a new printer endpoint.
type Config struct {
	// Name is the printer name (the DNS-SD instance and queue name).
	Name string

	// DriverKeyword is the requested driver, stored in the capability
	// set and resolved by CreateDriver.
	DriverKeyword string

	// DeviceURI is the output device, e.g. "file:///tmp/print.out".
	DeviceURI string

	// Location is a human-readable location string.
	Location string

	// UUID restores a persisted printer identity. Empty generates a
	// new one.
	UUID string

	// Logger receives endpoint events. Nil disables logging.
	Logger log.Logger
}

// Printer is one printer endpoint: a named capability set plus the
// attached driver. All mutation of the capability set happens inside
// the printer's exclusive critical section.
type Printer struct {
	mu sync.RWMutex

	name      string
	uuid      string
	deviceURI string
	attrs     *ipp.Attributes
	driver    *drivers.Driver
	logger    log.Logger
}

// New creates a printer endpoint with its identity attributes set.
// No driver is attached yet.
func New(cfg Config) *Printer {
	id := cfg.UUID
	if id == "" {
		id = uuid.NewString()
	}

	p := &Printer{
		name:      cfg.Name,
		uuid:      id,
		deviceURI: cfg.DeviceURI,
		attrs:     ipp.NewAttributes(),
		logger:    cfg.Logger,
	}
	if p.logger == nil {
		p.logger = log.NoopLogger{}
	}

	p.attrs.ReplaceText("printer-name", cfg.Name)
	p.attrs.ReplaceText("printer-uuid", "urn:uuid:"+p.uuid)
	if cfg.Location != "" {
		p.attrs.ReplaceText("printer-location", cfg.Location)
	}
	if cfg.DeviceURI != "" {
		p.attrs.ReplaceText("device-uri", cfg.DeviceURI)
	}
	if cfg.DriverKeyword != "" {
		p.attrs.ReplaceKeywords(DriverAttr, []string{cfg.DriverKeyword})
	}

	return p
}

// Name returns the printer name.
func (p *Printer) Name() string {
	return p.name
}

// UUID returns the printer's UUID string (without the urn:uuid: prefix).
func (p *Printer) UUID() string {
	return p.uuid
}

// DeviceURI returns the configured device URI.
func (p *Printer) DeviceURI() string {
	return p.deviceURI
}

// Driver returns the attached driver, or nil.
func (p *Printer) Driver() *drivers.Driver {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.driver
}

// Attributes returns a deep copy of the capability set. The copy is
// taken under the printer's read lock, so it is always a complete,
// consistent snapshot.
func (p *Printer) Attributes() *ipp.Attributes {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.attrs.Clone()
}

// SetDriverKeyword updates the requested driver keyword. It does not
// re-attach; call CreateDriver afterwards.
func (p *Printer) SetDriverKeyword(keyword string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.attrs.ReplaceKeywords(DriverAttr, []string{keyword})
}
