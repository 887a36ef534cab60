package ipp

import (
	"testing"
)

func TestReplaceSemantics(t *testing.T) {
	attrs := NewAttributes()

	t.Run("IntegerNoDuplicates", func(t *testing.T) {
		attrs.ReplaceInteger("media-bottom-margin-supported", 300)
		attrs.ReplaceInteger("media-bottom-margin-supported", 525)

		count := 0
		for _, name := range attrs.Names() {
			if name == "media-bottom-margin-supported" {
				count++
			}
		}
		if count != 1 {
			t.Fatalf("expected 1 attribute, found %d", count)
		}
		if v, ok := attrs.Find("media-bottom-margin-supported").Int(); !ok || v != 525 {
			t.Errorf("expected value 525, got %d (ok=%v)", v, ok)
		}
	})

	t.Run("KeywordsReplaced", func(t *testing.T) {
		attrs.ReplaceKeywords("media-supported", []string{"a", "b"})
		attrs.ReplaceKeywords("media-supported", []string{"c"})

		got := attrs.Find("media-supported").Strings()
		if len(got) != 1 || got[0] != "c" {
			t.Errorf("expected [c], got %v", got)
		}
	})

	t.Run("CollectionsReplaced", func(t *testing.T) {
		attrs.AllocateCollections("media-col-database", 2)
		attr := attrs.AllocateCollections("media-col-database", 1)

		if attrs.Find("media-col-database") != attr {
			t.Error("expected the second allocation to replace the first")
		}
		if attr.Len() != 1 {
			t.Errorf("expected 1 slot, got %d", attr.Len())
		}
	})
}

func TestSetCollectionAt(t *testing.T) {
	attrs := NewAttributes()
	attr := attrs.AllocateCollections("media-col-database", 2)

	col := NewAttributes()
	col.AddKeyword("media-size-name", "na_letter_8.5x11in")

	if err := attrs.SetCollectionAt(attr, 0, col); err != nil {
		t.Fatalf("SetCollectionAt failed: %v", err)
	}
	got, ok := attr.Collection(0)
	if !ok || got != col {
		t.Error("expected collection at slot 0")
	}

	t.Run("OutOfRange", func(t *testing.T) {
		if err := attrs.SetCollectionAt(attr, 2, col); err == nil {
			t.Error("expected error for out-of-range index")
		}
		if err := attrs.SetCollectionAt(attr, -1, col); err == nil {
			t.Error("expected error for negative index")
		}
	})

	t.Run("NotACollection", func(t *testing.T) {
		attrs.ReplaceInteger("media-left-margin-supported", 100)
		intAttr := attrs.Find("media-left-margin-supported")
		if err := attrs.SetCollectionAt(intAttr, 0, col); err == nil {
			t.Error("expected error for non-collection attribute")
		}
	})
}

func TestCloneIsDeep(t *testing.T) {
	attrs := NewAttributes()
	attrs.ReplaceInteger("media-top-margin-supported", 300)
	attrs.ReplaceKeywords("media-supported", []string{"oe_2x3-label_2x3in"})

	inner := NewAttributes()
	inner.AddInteger("x-dimension", 5080)
	inner.AddInteger("y-dimension", 7620)
	attr := attrs.AllocateCollections("media-size-supported", 1)
	if err := attrs.SetCollectionAt(attr, 0, inner); err != nil {
		t.Fatalf("SetCollectionAt failed: %v", err)
	}

	clone := attrs.Clone()
	clone.ReplaceInteger("media-top-margin-supported", 0)
	cloned, _ := clone.Find("media-size-supported").Collection(0)
	cloned.ReplaceInteger("x-dimension", 1)

	if v, _ := attrs.Find("media-top-margin-supported").Int(); v != 300 {
		t.Errorf("clone mutation leaked into original scalar: %d", v)
	}
	orig, _ := attrs.Find("media-size-supported").Collection(0)
	if v, _ := orig.Find("x-dimension").Int(); v != 5080 {
		t.Errorf("clone mutation leaked into original collection: %d", v)
	}
}

func TestRemove(t *testing.T) {
	attrs := NewAttributes()
	attrs.ReplaceInteger("a", 1)
	attrs.ReplaceInteger("b", 2)

	if !attrs.Remove("a") {
		t.Error("expected Remove to report true")
	}
	if attrs.Remove("a") {
		t.Error("expected second Remove to report false")
	}
	if attrs.Find("a") != nil {
		t.Error("attribute still present after Remove")
	}
	if attrs.Len() != 1 {
		t.Errorf("expected 1 attribute, got %d", attrs.Len())
	}
}

func TestResolutionString(t *testing.T) {
	if got := DPI(203, 203).String(); got != "203dpi" {
		t.Errorf("expected 203dpi, got %s", got)
	}
	if got := DPI(300, 600).String(); got != "300x600dpi" {
		t.Errorf("expected 300x600dpi, got %s", got)
	}
}
