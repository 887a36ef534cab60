package printer

import (
	"time"

	"github.com/labelprint/labelprint-go/pkg/drivers"
	"github.com/labelprint/labelprint-go/pkg/log"
	"github.com/labelprint/labelprint-go/pkg/media"
)

// CreateDriver resolves the printer's requested driver keyword, builds
// the driver, synthesizes its capability attributes, and attaches it.
// The whole sequence is one critical section: no partial attachment is
// observable, and on any failure the prior capability set and driver
// are left untouched.
//
// An unknown keyword fails with drivers.ErrNotFound. A malformed media
// list fails with *drivers.ConfigError, an unresolvable size name with
// media.ErrUnknownSize.
func (p *Printer) CreateDriver() (*drivers.Driver, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	keyword, ok := p.attrs.Find(DriverAttr).Text()
	if !ok || keyword == "" {
		p.logError("create-driver", drivers.ErrNotFound)
		return nil, drivers.ErrNotFound
	}

	desc, err := drivers.Lookup(keyword)
	if err != nil {
		p.logError("create-driver", err)
		return nil, err
	}

	d, err := drivers.New(keyword)
	if err != nil {
		p.logError("create-driver", err)
		return nil, err
	}

	// Synthesize into a scratch copy; the live set is replaced only
	// when every builder has succeeded.
	next := p.attrs.Clone()
	if err := drivers.SyncMediaCapabilities(next, d); err != nil {
		p.logError("sync-media", err)
		return nil, err
	}
	drivers.SyncResolutionCapabilities(next, d)
	next.ReplaceText("printer-make-and-model", desc.ModelName)
	next.ReplaceKeywords("document-format-supported", []string{
		d.Format,
		"image/pwg-raster",
		"application/octet-stream",
	})

	p.attrs = next
	p.driver = d

	p.logger.Log(log.Event{
		Timestamp: time.Now(),
		Printer:   p.name,
		Category:  log.CategoryLifecycle,
		Driver: &log.DriverEvent{
			Keyword:  keyword,
			Model:    desc.ModelName,
			Attached: true,
		},
	})
	p.logger.Log(log.Event{
		Timestamp:  time.Now(),
		Printer:    p.name,
		Category:   log.CategoryCapability,
		Capability: capabilityEvent(d),
	})

	return d, nil
}

// DetachDriver removes and deletes the attached driver, closing its
// device handle. It is a no-op when no driver is attached.
func (p *Printer) DetachDriver() error {
	p.mu.Lock()
	d := p.driver
	p.driver = nil
	p.mu.Unlock()

	if d == nil {
		return nil
	}

	err := DeleteDriver(d)
	p.logger.Log(log.Event{
		Timestamp: time.Now(),
		Printer:   p.name,
		Category:  log.CategoryLifecycle,
		Driver:    &log.DriverEvent{Keyword: d.Name, Attached: false},
	})
	return err
}

// DeleteDriver deletes a driver instance, closing its device handle
// exactly once. It is idempotent and a no-op on nil. Callers are
// responsible for synchronizing detachment from the printer.
func DeleteDriver(d *drivers.Driver) error {
	return drivers.Delete(d)
}

// GetMakeAndModel re-resolves a driver's keyword against the registry.
// It returns "Unknown" for a nil driver or a keyword no longer in the
// registry.
func GetMakeAndModel(d *drivers.Driver) string {
	return drivers.MakeAndModel(d)
}

// capabilityEvent summarizes a driver's advertised capabilities.
func capabilityEvent(d *drivers.Driver) *log.CapabilityEvent {
	ev := &log.CapabilityEvent{Resolutions: len(d.Resolutions)}
	for _, m := range d.Media {
		if media.IsRoll(m) {
			ev.RollRange = true
		} else {
			ev.DiscreteMedia++
		}
	}
	return ev
}

// logError emits an error event.
func (p *Printer) logError(op string, err error) {
	p.logger.Log(log.Event{
		Timestamp: time.Now(),
		Printer:   p.name,
		Category:  log.CategoryError,
		Error:     &log.ErrorEventData{Op: op, Message: err.Error()},
	})
}
