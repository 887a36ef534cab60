package printer

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/labelprint/labelprint-go/pkg/drivers"
	"github.com/labelprint/labelprint-go/pkg/log"
)

func TestNewSetsIdentity(t *testing.T) {
	p := New(Config{
		Name:          "shipping-1",
		DriverKeyword: "zpl_4inch-203dpi-dt",
		DeviceURI:     "file:///tmp/shipping-1.out",
		Location:      "Warehouse A",
	})

	attrs := p.Attributes()
	if name, _ := attrs.Find("printer-name").Text(); name != "shipping-1" {
		t.Errorf("printer-name = %q", name)
	}
	if u, _ := attrs.Find("printer-uuid").Text(); !strings.HasPrefix(u, "urn:uuid:") {
		t.Errorf("printer-uuid = %q", u)
	}
	if loc, _ := attrs.Find("printer-location").Text(); loc != "Warehouse A" {
		t.Errorf("printer-location = %q", loc)
	}
	if kw, _ := attrs.Find(DriverAttr).Text(); kw != "zpl_4inch-203dpi-dt" {
		t.Errorf("%s = %q", DriverAttr, kw)
	}
	if p.Driver() != nil {
		t.Error("no driver should be attached yet")
	}
}

func TestCreateDriver(t *testing.T) {
	var events recordingLogger
	p := New(Config{
		Name:          "shipping-1",
		DriverKeyword: "zpl_4inch-203dpi-dt",
		Logger:        &events,
	})

	d, err := p.CreateDriver()
	if err != nil {
		t.Fatalf("CreateDriver failed: %v", err)
	}
	if p.Driver() != d {
		t.Error("driver not attached")
	}

	attrs := p.Attributes()
	if mm, _ := attrs.Find("printer-make-and-model").Text(); mm != "Zebra ZPL 4-inch/203dpi/Direct-Thermal" {
		t.Errorf("printer-make-and-model = %q", mm)
	}
	if attrs.Find("media-col-database") == nil {
		t.Error("media capabilities not synthesized")
	}
	if attrs.Find("urf-supported") == nil {
		t.Error("resolution capabilities not synthesized")
	}
	// Identity attributes survive synthesis.
	if name, _ := attrs.Find("printer-name").Text(); name != "shipping-1" {
		t.Errorf("printer-name = %q", name)
	}

	var lifecycle, capability int
	for _, e := range events.events {
		switch e.Category {
		case log.CategoryLifecycle:
			lifecycle++
		case log.CategoryCapability:
			capability++
		}
	}
	if lifecycle != 1 || capability != 1 {
		t.Errorf("expected 1 lifecycle + 1 capability event, got %d/%d", lifecycle, capability)
	}
}

func TestCreateDriverUnknownKeyword(t *testing.T) {
	p := New(Config{Name: "badge-1", DriverKeyword: "brother_ql-810w"})
	before := p.Attributes()

	_, err := p.CreateDriver()
	if !errors.Is(err, drivers.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	// Printer is unchanged: no driver, no capability attributes.
	if p.Driver() != nil {
		t.Error("driver must not be attached on lookup miss")
	}
	after := p.Attributes()
	if after.Len() != before.Len() {
		t.Errorf("capability set changed: %v -> %v", before.Names(), after.Names())
	}
	if after.Find("printer-make-and-model") != nil {
		t.Error("make-and-model must not be set on failure")
	}
}

func TestCreateDriverNoKeyword(t *testing.T) {
	p := New(Config{Name: "bare"})
	if _, err := p.CreateDriver(); !errors.Is(err, drivers.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestCreateDriverRerunNoDuplicates(t *testing.T) {
	p := New(Config{Name: "shipping-1", DriverKeyword: "epl2_lp-2844"})

	if _, err := p.CreateDriver(); err != nil {
		t.Fatalf("first CreateDriver failed: %v", err)
	}
	p.SetDriverKeyword("dymo_lw-450-turbo")
	if _, err := p.CreateDriver(); err != nil {
		t.Fatalf("second CreateDriver failed: %v", err)
	}

	attrs := p.Attributes()
	seen := map[string]int{}
	for _, name := range attrs.Names() {
		seen[name]++
	}
	for name, n := range seen {
		if n != 1 {
			t.Errorf("attribute %q appears %d times", name, n)
		}
	}

	if mm, _ := attrs.Find("printer-make-and-model").Text(); mm != "Dymo LabelWriter 450 Turbo" {
		t.Errorf("printer-make-and-model = %q after re-attach", mm)
	}
	// Dymo drivers have no roll range; the EPL2 range entry must be gone.
	if got := attrs.Find("media-supported").Strings(); len(got) != 6 {
		t.Errorf("media-supported = %v", got)
	}
	// Dymo declares no sources, so the EPL2 source list must be gone too.
	if attrs.Find("media-source-supported") != nil {
		t.Error("stale media-source-supported survived re-attach")
	}
}

func TestDetachDriver(t *testing.T) {
	p := New(Config{Name: "shipping-1", DriverKeyword: "zpl_2inch-203dpi-dt"})

	t.Run("NoopWithoutDriver", func(t *testing.T) {
		if err := p.DetachDriver(); err != nil {
			t.Errorf("DetachDriver returned %v", err)
		}
	})

	t.Run("ClosesDevice", func(t *testing.T) {
		d, err := p.CreateDriver()
		if err != nil {
			t.Fatalf("CreateDriver failed: %v", err)
		}
		dev := &countingCloser{}
		d.SetDevice(dev)

		if err := p.DetachDriver(); err != nil {
			t.Fatalf("DetachDriver failed: %v", err)
		}
		if p.Driver() != nil {
			t.Error("driver still attached")
		}
		if dev.closes != 1 {
			t.Errorf("device closed %d times, want 1", dev.closes)
		}
	})
}

func TestDeleteDriverNil(t *testing.T) {
	if err := DeleteDriver(nil); err != nil {
		t.Errorf("DeleteDriver(nil) returned %v", err)
	}
}

func TestGetMakeAndModel(t *testing.T) {
	if got := GetMakeAndModel(nil); got != "Unknown" {
		t.Errorf("expected Unknown for nil driver, got %q", got)
	}

	d, err := drivers.New("fgl_lemur")
	if err != nil {
		t.Fatalf("drivers.New failed: %v", err)
	}
	if got := GetMakeAndModel(d); got != "Boca Lemur" {
		t.Errorf("expected Boca Lemur, got %q", got)
	}
}

func TestDiscoveryInfo(t *testing.T) {
	p := New(Config{
		Name:          "front-desk",
		DriverKeyword: "zpl_2inch-203dpi-dt",
		Location:      "Reception",
		UUID:          "0f68b1a2-4c41-47a4-8c3f-59d6a3a9f201",
	})

	t.Run("BeforeAttach", func(t *testing.T) {
		info := p.DiscoveryInfo()
		if info.MakeModel != "Unknown" {
			t.Errorf("MakeModel = %q before attach", info.MakeModel)
		}
		if info.UUID != "0f68b1a2-4c41-47a4-8c3f-59d6a3a9f201" {
			t.Errorf("UUID = %q, want configured identity", info.UUID)
		}
	})

	if _, err := p.CreateDriver(); err != nil {
		t.Fatalf("CreateDriver failed: %v", err)
	}

	t.Run("AfterAttach", func(t *testing.T) {
		info := p.DiscoveryInfo()
		if info.Name != "front-desk" || info.Location != "Reception" {
			t.Errorf("identity = %q/%q", info.Name, info.Location)
		}
		if info.MakeModel == "Unknown" || info.MakeModel == "" {
			t.Errorf("MakeModel = %q after attach", info.MakeModel)
		}
		wantFormats := []string{
			"application/vnd.zebra-zpl",
			"image/pwg-raster",
			"application/octet-stream",
		}
		if !reflect.DeepEqual(info.Formats, wantFormats) {
			t.Errorf("Formats = %v, want %v", info.Formats, wantFormats)
		}
		if len(info.URF) == 0 || info.URF[0] != "V1.4" {
			t.Errorf("URF = %v", info.URF)
		}
	})
}

type recordingLogger struct {
	events []log.Event
}

func (r *recordingLogger) Log(e log.Event) { r.events = append(r.events, e) }

type countingCloser struct {
	closes int
}

func (c *countingCloser) Close() error {
	c.closes++
	return nil
}
