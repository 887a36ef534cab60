package printer

import (
	"github.com/labelprint/labelprint-go/pkg/discovery"
)

// DiscoveryInfo builds the DNS-SD advertisement record for this
// printer from its current capability set. The TXT contents change
// when CreateDriver swaps the capability set, so callers should
// re-advertise after a driver change.
func (p *Printer) DiscoveryInfo() *discovery.PrinterInfo {
	p.mu.RLock()
	defer p.mu.RUnlock()

	info := &discovery.PrinterInfo{
		Name: p.name,
		UUID: p.uuid,
	}

	if mm, ok := p.attrs.Find("printer-make-and-model").Text(); ok {
		info.MakeModel = mm
	} else {
		info.MakeModel = "Unknown"
	}
	if loc, ok := p.attrs.Find("printer-location").Text(); ok {
		info.Location = loc
	}
	info.Formats = p.attrs.Find("document-format-supported").Strings()
	info.URF = p.attrs.Find("urf-supported").Strings()

	return info
}
