// Package discovery implements mDNS/DNS-SD advertisement for label
// printer endpoints.
//
// # IPP Discovery (_ipp._tcp)
//
// Every printer endpoint advertises one _ipp._tcp instance named after
// the printer. TXT records follow the Bonjour printing conventions:
// rp (resource path), ty (make and model), pdl (supported document
// formats), UUID, URF (raster capability tokens taken from the
// printer's urf-supported attribute), and optionally note (location).
//
// # Raw Socket Discovery (_pdl-datastream._tcp)
//
// Printers reachable over the raw port-9100 protocol additionally
// advertise _pdl-datastream._tcp with the same TXT records.
//
// # Browsing
//
// The MDNSBrowser finds advertised printers and decodes their TXT
// records back into PrinterInfo values, which is what the command-line
// tools use to list printers on the network.
package discovery
