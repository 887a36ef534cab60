package discovery

import (
	"fmt"
	"strings"
)

// TXTRecordMap is a map of TXT record key-value pairs.
type TXTRecordMap map[string]string

// EncodePrinterTXT creates TXT records for an advertised printer.
func EncodePrinterTXT(info *PrinterInfo) TXTRecordMap {
	txt := make(TXTRecordMap)

	// Required fields
	txt[TXTKeyTxtVers] = "1"
	txt[TXTKeyQueue] = "1"
	txt[TXTKeyQueuePath] = "ipp/print/" + info.Name
	txt[TXTKeyMakeModel] = info.MakeModel
	txt[TXTKeyUUID] = info.UUID

	// Label printers are single-sided monochrome devices.
	txt[TXTKeyColor] = "F"
	txt[TXTKeyDuplex] = "F"

	// Optional fields
	if info.Location != "" {
		txt[TXTKeyNote] = info.Location
	}
	if len(info.Formats) > 0 {
		txt[TXTKeyFormats] = strings.Join(info.Formats, ",")
	}
	if len(info.URF) > 0 {
		txt[TXTKeyURF] = strings.Join(info.URF, ",")
	}

	return txt
}

// DecodePrinterTXT parses TXT records from printer discovery.
func DecodePrinterTXT(txt TXTRecordMap) (*PrinterInfo, error) {
	info := &PrinterInfo{}

	// Parse resource path (required); the printer name is its last
	// segment.
	rp, ok := txt[TXTKeyQueuePath]
	if !ok || rp == "" {
		return nil, fmt.Errorf("%w: %s", ErrMissingRequired, TXTKeyQueuePath)
	}
	if idx := strings.LastIndexByte(rp, '/'); idx >= 0 {
		info.Name = rp[idx+1:]
	} else {
		info.Name = rp
	}
	if info.Name == "" {
		return nil, fmt.Errorf("%w: empty resource path", ErrInvalidTXTRecord)
	}

	// Parse make and model (required)
	info.MakeModel, ok = txt[TXTKeyMakeModel]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingRequired, TXTKeyMakeModel)
	}

	// Parse UUID (required)
	info.UUID, ok = txt[TXTKeyUUID]
	if !ok || info.UUID == "" {
		return nil, fmt.Errorf("%w: %s", ErrMissingRequired, TXTKeyUUID)
	}

	// Optional fields
	info.Location = txt[TXTKeyNote]
	if v := txt[TXTKeyFormats]; v != "" {
		info.Formats = splitList(v)
	}
	if v := txt[TXTKeyURF]; v != "" {
		info.URF = splitList(v)
	}

	return info, nil
}

// splitList parses a comma-separated TXT value, dropping empty entries.
func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// TXTRecordsToStrings converts a TXTRecordMap to a slice of "key=value" strings.
// This format is commonly used by mDNS libraries.
func TXTRecordsToStrings(txt TXTRecordMap) []string {
	result := make([]string, 0, len(txt))
	for k, v := range txt {
		result = append(result, fmt.Sprintf("%s=%s", k, v))
	}
	return result
}

// StringsToTXTRecords parses a slice of "key=value" strings into a TXTRecordMap.
func StringsToTXTRecords(strs []string) TXTRecordMap {
	txt := make(TXTRecordMap)
	for _, s := range strs {
		parts := strings.SplitN(s, "=", 2)
		if len(parts) == 2 {
			txt[parts[0]] = parts[1]
		} else if len(parts) == 1 && parts[0] != "" {
			// Key without value (boolean flag)
			txt[parts[0]] = ""
		}
	}
	return txt
}

// ValidateInstanceName checks if an instance name is valid for mDNS.
func ValidateInstanceName(name string) error {
	if name == "" {
		return fmt.Errorf("instance name must not be empty")
	}
	if len(name) > MaxInstanceNameLen {
		return ErrInstanceNameTooLong
	}
	return nil
}
