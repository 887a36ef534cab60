// Command labelprint-browse discovers label printers on the local
// network via DNS-SD and prints what it finds.
//
// Usage:
//
//	labelprint-browse [flags]
//
// Flags:
//
//	-timeout duration  How long to browse (default 10s)
//	-interface string  Network interface to browse on (default all)
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/labelprint/labelprint-go/pkg/discovery"
)

func main() {
	timeout := flag.Duration("timeout", discovery.BrowseTimeout, "How long to browse")
	iface := flag.String("interface", "", "Network interface to browse on")
	flag.Parse()

	browser, err := discovery.NewMDNSBrowser(discovery.BrowserConfig{Interface: *iface})
	if err != nil {
		log.Fatalf("Failed to create browser: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	services, err := browser.BrowsePrinters(ctx)
	if err != nil {
		log.Fatalf("Browse failed: %v", err)
	}

	fmt.Printf("Browsing for %s services (%s)...\n\n", discovery.ServiceTypeIPP, *timeout)

	found := 0
	for svc := range services {
		found++
		fmt.Printf("%s\n", svc.Info.Name)
		fmt.Printf("  Model:     %s\n", svc.Info.MakeModel)
		if svc.Info.Location != "" {
			fmt.Printf("  Location:  %s\n", svc.Info.Location)
		}
		fmt.Printf("  UUID:      %s\n", svc.Info.UUID)
		fmt.Printf("  Host:      %s:%d\n", svc.Host, svc.Port)
		if len(svc.Addresses) > 0 {
			fmt.Printf("  Addresses: %s\n", strings.Join(svc.Addresses, ", "))
		}
		if len(svc.Info.Formats) > 0 {
			fmt.Printf("  Formats:   %s\n", strings.Join(svc.Info.Formats, ", "))
		}
		if len(svc.Info.URF) > 0 {
			fmt.Printf("  URF:       %s\n", strings.Join(svc.Info.URF, ", "))
		}
		fmt.Println()
	}

	fmt.Printf("Found %d printer(s)\n", found)
}
