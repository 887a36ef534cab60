package discovery

import (
	"context"
	"time"
)

// Advertiser provides mDNS service advertising for printer endpoints.
type Advertiser interface {
	// AdvertisePrinter starts advertising a printer. The printer is
	// advertised until StopPrinter or StopAll is called.
	AdvertisePrinter(ctx context.Context, info *PrinterInfo) error

	// UpdatePrinter re-registers a printer's TXT records, typically
	// after a driver change altered the capability set.
	UpdatePrinter(ctx context.Context, info *PrinterInfo) error

	// StopPrinter stops advertising one printer.
	StopPrinter(name string) error

	// StopAll stops all advertisements.
	StopAll()
}

// AdvertiserConfig configures advertiser behavior.
type AdvertiserConfig struct {
	// Interface specifies which network interface to use.
	// Empty string means all interfaces.
	Interface string

	// TTL is the DNS record TTL.
	// Default: 120 seconds.
	TTL time.Duration
}

// DefaultAdvertiserConfig returns the default advertiser configuration.
func DefaultAdvertiserConfig() AdvertiserConfig {
	return AdvertiserConfig{
		Interface: "",
		TTL:       DefaultTTL,
	}
}
