package discovery

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TXT Record Tests

func TestEncodePrinterTXT(t *testing.T) {
	info := &PrinterInfo{
		Name:      "Front Desk",
		MakeModel: "Zebra ZPL Label Printer",
		Location:  "Reception",
		UUID:      "0f68b1a2-4c41-47a4-8c3f-59d6a3a9f201",
		Formats:   []string{"application/vnd.zebra-zpl", "image/pwg-raster"},
		URF:       []string{"V1.4", "W8", "RS203-300"},
	}

	txt := EncodePrinterTXT(info)

	tests := []struct {
		key  string
		want string
	}{
		{TXTKeyTxtVers, "1"},
		{TXTKeyQueue, "1"},
		{TXTKeyQueuePath, "ipp/print/Front Desk"},
		{TXTKeyMakeModel, "Zebra ZPL Label Printer"},
		{TXTKeyNote, "Reception"},
		{TXTKeyUUID, "0f68b1a2-4c41-47a4-8c3f-59d6a3a9f201"},
		{TXTKeyFormats, "application/vnd.zebra-zpl,image/pwg-raster"},
		{TXTKeyURF, "V1.4,W8,RS203-300"},
		{TXTKeyColor, "F"},
		{TXTKeyDuplex, "F"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if txt[tt.key] != tt.want {
				t.Errorf("TXT %s = %q, want %q", tt.key, txt[tt.key], tt.want)
			}
		})
	}
}

func TestEncodePrinterTXTOmitsEmptyOptionals(t *testing.T) {
	txt := EncodePrinterTXT(&PrinterInfo{
		Name:      "lp0",
		MakeModel: "Test Printer",
		UUID:      "11111111-2222-3333-4444-555555555555",
	})

	for _, key := range []string{TXTKeyNote, TXTKeyFormats, TXTKeyURF} {
		if _, ok := txt[key]; ok {
			t.Errorf("TXT %s present for empty optional field", key)
		}
	}
}

func TestDecodePrinterTXTRoundTrip(t *testing.T) {
	info := &PrinterInfo{
		Name:      "Warehouse-3",
		MakeModel: "EPL2 Label Printer",
		Location:  "Bay 7",
		UUID:      "6b9a61ff-13ac-4f0d-9f77-dc4a817f0a85",
		Formats:   []string{"application/vnd.eltron-epl", "image/pwg-raster"},
		URF:       []string{"V1.4", "W8", "RS203"},
	}

	decoded, err := DecodePrinterTXT(EncodePrinterTXT(info))
	require.NoError(t, err)

	assert.Equal(t, info.Name, decoded.Name)
	assert.Equal(t, info.MakeModel, decoded.MakeModel)
	assert.Equal(t, info.Location, decoded.Location)
	assert.Equal(t, info.UUID, decoded.UUID)
	assert.Equal(t, info.Formats, decoded.Formats)
	assert.Equal(t, info.URF, decoded.URF)
}

func TestDecodePrinterTXTMissingRequired(t *testing.T) {
	base := EncodePrinterTXT(&PrinterInfo{
		Name:      "test",
		MakeModel: "Test Printer",
		UUID:      "11111111-2222-3333-4444-555555555555",
	})

	for _, key := range []string{TXTKeyQueuePath, TXTKeyMakeModel, TXTKeyUUID} {
		t.Run("Missing_"+key, func(t *testing.T) {
			txt := make(TXTRecordMap, len(base))
			for k, v := range base {
				if k != key {
					txt[k] = v
				}
			}

			_, err := DecodePrinterTXT(txt)
			if !errors.Is(err, ErrMissingRequired) {
				t.Errorf("DecodePrinterTXT error = %v, want ErrMissingRequired", err)
			}
		})
	}
}

func TestTXTRecordStringConversion(t *testing.T) {
	txt := TXTRecordMap{
		"rp": "ipp/print/lp0",
		"ty": "DYMO LabelWriter",
	}

	strs := TXTRecordsToStrings(txt)
	require.Len(t, strs, 2)
	assert.ElementsMatch(t, []string{"rp=ipp/print/lp0", "ty=DYMO LabelWriter"}, strs)

	back := StringsToTXTRecords(strs)
	assert.Equal(t, txt, back)
}

func TestStringsToTXTRecordsBooleanFlag(t *testing.T) {
	txt := StringsToTXTRecords([]string{"TLS", "ty=DYMO"})
	require.Len(t, txt, 2)
	assert.Equal(t, "", txt["TLS"])
	assert.Equal(t, "DYMO", txt["ty"])
}

func TestValidateInstanceName(t *testing.T) {
	if err := ValidateInstanceName("Front Desk Printer"); err != nil {
		t.Errorf("ValidateInstanceName(valid) = %v", err)
	}

	long := strings.Repeat("a", MaxInstanceNameLen+1)
	if err := ValidateInstanceName(long); !errors.Is(err, ErrInstanceNameTooLong) {
		t.Errorf("ValidateInstanceName(long) = %v, want ErrInstanceNameTooLong", err)
	}
}

// Address aggregation tests

func TestMergeAddresses(t *testing.T) {
	existing := []string{"192.168.1.10", "fe80::1"}
	incoming := []string{"192.168.1.10", "10.0.0.5"}

	merged := mergeAddresses(existing, incoming)
	assert.Equal(t, []string{"192.168.1.10", "fe80::1", "10.0.0.5"}, merged)
}

func TestAdvertiserStopUnknown(t *testing.T) {
	adv, err := NewMDNSAdvertiser(DefaultAdvertiserConfig())
	require.NoError(t, err)

	err = adv.StopPrinter("no-such-printer")
	assert.ErrorIs(t, err, ErrNotAdvertised)
}
