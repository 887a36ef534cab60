package drivers

import "fmt"

// SyncResolutionCapabilities writes the resolution capability attributes
// derived from the driver's ascending resolution list. A driver with no
// resolutions leaves the capability set untouched.
func SyncResolutionCapabilities(store AttributeStore, d *Driver) {
	n := len(d.Resolutions)
	if n == 0 {
		return
	}

	// The default is the highest supported resolution.
	store.ReplaceResolution("printer-resolution-default", d.Resolutions[n-1])
	store.ReplaceResolutions("printer-resolution-supported", d.Resolutions)
	store.ReplaceResolutions("pwg-raster-document-resolution-supported", d.Resolutions)

	// urf-supported advertises a compact RS token. With two or more
	// resolutions the token spans the two highest entries.
	var rs string
	if n == 1 {
		rs = fmt.Sprintf("RS%d", d.Resolutions[0].X)
	} else {
		rs = fmt.Sprintf("RS%d-%d", d.Resolutions[n-2].X, d.Resolutions[n-1].X)
	}

	store.ReplaceKeywords("urf-supported", []string{"V1.4", "W8", rs})
}
