package discovery

import (
	"context"
	"fmt"
	"net"
	"sync"

	"github.com/enbility/zeroconf/v3"
)

// printerServers holds the zeroconf registrations for one printer.
type printerServers struct {
	ipp *zeroconf.Server
	pdl *zeroconf.Server
}

func (s *printerServers) shutdown() {
	if s.ipp != nil {
		s.ipp.Shutdown()
	}
	if s.pdl != nil {
		s.pdl.Shutdown()
	}
}

// MDNSAdvertiser implements the Advertiser interface using zeroconf.
type MDNSAdvertiser struct {
	config AdvertiserConfig

	mu sync.Mutex

	// Active registrations keyed by printer name
	printers map[string]*printerServers
}

// NewMDNSAdvertiser creates a new mDNS advertiser.
func NewMDNSAdvertiser(config AdvertiserConfig) (*MDNSAdvertiser, error) {
	return &MDNSAdvertiser{
		config:   config,
		printers: make(map[string]*printerServers),
	}, nil
}

// getInterfaces returns the network interfaces to use for advertising.
// Returns nil to use all interfaces.
func (a *MDNSAdvertiser) getInterfaces() []net.Interface {
	if a.config.Interface == "" {
		return nil
	}

	iface, err := net.InterfaceByName(a.config.Interface)
	if err != nil {
		return nil
	}
	return []net.Interface{*iface}
}

// serverOptions builds the zeroconf registration options.
func (a *MDNSAdvertiser) serverOptions() []zeroconf.ServerOption {
	var opts []zeroconf.ServerOption
	if a.config.TTL > 0 {
		opts = append(opts, zeroconf.TTL(uint32(a.config.TTL.Seconds())))
	}
	return opts
}

// AdvertisePrinter starts advertising a printer endpoint.
func (a *MDNSAdvertiser) AdvertisePrinter(ctx context.Context, info *PrinterInfo) error {
	if err := ValidateInstanceName(info.Name); err != nil {
		return err
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	// Stop existing registration if any
	if existing, ok := a.printers[info.Name]; ok {
		existing.shutdown()
		delete(a.printers, info.Name)
	}

	txtStrings := TXTRecordsToStrings(EncodePrinterTXT(info))

	port := int(info.Port)
	if port == 0 {
		port = DefaultIPPPort
	}

	opts := a.serverOptions()
	ifaces := a.getInterfaces()

	servers := &printerServers{}

	ipp, err := zeroconf.Register(
		info.Name,
		ServiceTypeIPP,
		Domain,
		port,
		txtStrings,
		ifaces,
		opts...,
	)
	if err != nil {
		return fmt.Errorf("failed to register IPP service: %w", err)
	}
	servers.ipp = ipp

	if info.RawSocket {
		pdl, err := zeroconf.Register(
			info.Name,
			ServiceTypePDL,
			Domain,
			DefaultPDLPort,
			txtStrings,
			ifaces,
			opts...,
		)
		if err != nil {
			servers.shutdown()
			return fmt.Errorf("failed to register PDL service: %w", err)
		}
		servers.pdl = pdl
	}

	a.printers[info.Name] = servers
	return nil
}

// UpdatePrinter re-registers a printer with fresh TXT records.
func (a *MDNSAdvertiser) UpdatePrinter(ctx context.Context, info *PrinterInfo) error {
	a.mu.Lock()
	_, ok := a.printers[info.Name]
	a.mu.Unlock()

	if !ok {
		return fmt.Errorf("%w: %s", ErrNotAdvertised, info.Name)
	}

	// zeroconf has no TXT update primitive; re-register.
	return a.AdvertisePrinter(ctx, info)
}

// StopPrinter stops advertising one printer.
func (a *MDNSAdvertiser) StopPrinter(name string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	servers, ok := a.printers[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotAdvertised, name)
	}

	servers.shutdown()
	delete(a.printers, name)
	return nil
}

// StopAll stops all advertisements.
func (a *MDNSAdvertiser) StopAll() {
	a.mu.Lock()
	defer a.mu.Unlock()

	for name, servers := range a.printers {
		servers.shutdown()
		delete(a.printers, name)
	}
}

// Compile-time interface satisfaction check.
var _ Advertiser = (*MDNSAdvertiser)(nil)

// BrowserConfig configures browser behavior.
type BrowserConfig struct {
	// Interface specifies which network interface to use.
	// Empty string means all interfaces.
	Interface string
}

// MDNSBrowser finds advertised printers using zeroconf.
type MDNSBrowser struct {
	config BrowserConfig
}

// NewMDNSBrowser creates a new mDNS browser.
func NewMDNSBrowser(config BrowserConfig) (*MDNSBrowser, error) {
	return &MDNSBrowser{config: config}, nil
}

// browserOptions builds the zeroconf client options.
func (b *MDNSBrowser) browserOptions() []zeroconf.ClientOption {
	var opts []zeroconf.ClientOption
	if b.config.Interface != "" {
		if iface, err := net.InterfaceByName(b.config.Interface); err == nil {
			opts = append(opts, zeroconf.SelectIfaces([]net.Interface{*iface}))
		}
	}
	return opts
}

// BrowsePrinters searches for advertised printer endpoints until ctx is
// done. Services are aggregated by instance name - addresses from
// multiple interfaces are combined into a single entry.
func (b *MDNSBrowser) BrowsePrinters(ctx context.Context) (<-chan *PrinterService, error) {
	out := make(chan *PrinterService)

	entries := make(chan *zeroconf.ServiceEntry)
	removed := make(chan *zeroconf.ServiceEntry)

	opts := b.browserOptions()

	go func() {
		defer close(out)

		// Track services by instance name, aggregating addresses
		services := make(map[string]*PrinterService)

		for {
			select {
			case entry, ok := <-entries:
				if !ok {
					return
				}
				svc := entryToPrinter(entry)
				if svc == nil {
					continue
				}

				existing, found := services[svc.Info.Name]
				if found {
					existing.Addresses = mergeAddresses(existing.Addresses, svc.Addresses)
				} else {
					services[svc.Info.Name] = svc
					select {
					case out <- svc:
					case <-ctx.Done():
						return
					}
				}

			case entry, ok := <-removed:
				if !ok {
					continue
				}
				if existing, found := services[entry.Instance]; found {
					existing.Addresses = removeAddresses(existing.Addresses, entry)
					if len(existing.Addresses) == 0 {
						delete(services, entry.Instance)
					}
				}

			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		_ = zeroconf.Browse(ctx, ServiceTypeIPP, Domain, entries, removed, opts...)
	}()

	return out, nil
}

// entryToPrinter converts a zeroconf entry into a PrinterService.
// Entries with undecodable TXT records are skipped.
func entryToPrinter(entry *zeroconf.ServiceEntry) *PrinterService {
	info, err := DecodePrinterTXT(StringsToTXTRecords(entry.Text))
	if err != nil {
		return nil
	}

	svc := &PrinterService{
		Info: info,
		Host: entry.HostName,
		Port: entry.Port,
	}
	for _, ip := range entry.AddrIPv4 {
		svc.Addresses = append(svc.Addresses, ip.String())
	}
	for _, ip := range entry.AddrIPv6 {
		svc.Addresses = append(svc.Addresses, ip.String())
	}
	return svc
}

// mergeAddresses combines two address lists without duplicates.
func mergeAddresses(existing, incoming []string) []string {
	seen := make(map[string]bool, len(existing))
	for _, addr := range existing {
		seen[addr] = true
	}
	for _, addr := range incoming {
		if !seen[addr] {
			existing = append(existing, addr)
			seen[addr] = true
		}
	}
	return existing
}

// removeAddresses drops the addresses carried by a removal entry.
func removeAddresses(addresses []string, entry *zeroconf.ServiceEntry) []string {
	drop := make(map[string]bool)
	for _, ip := range entry.AddrIPv4 {
		drop[ip.String()] = true
	}
	for _, ip := range entry.AddrIPv6 {
		drop[ip.String()] = true
	}

	out := addresses[:0]
	for _, addr := range addresses {
		if !drop[addr] {
			out = append(out, addr)
		}
	}
	return out
}
