package drivers

import (
	"fmt"

	"github.com/labelprint/labelprint-go/pkg/ipp"
	"github.com/labelprint/labelprint-go/pkg/media"
)

// AttributeStore is the write interface the capability builders use to
// update a printer's capability set. Every Replace/Allocate call removes
// any existing attribute of the same name first, so re-running synthesis
// never accumulates duplicates. Implemented by *ipp.Attributes.
type AttributeStore interface {
	Remove(name string) bool
	ReplaceInteger(name string, value int)
	ReplaceKeywords(name string, values []string)
	ReplaceResolution(name string, value ipp.Resolution)
	ReplaceResolutions(name string, values []ipp.Resolution)
	AllocateCollections(name string, count int) *ipp.Attribute
	SetCollectionAt(attr *ipp.Attribute, index int, col *ipp.Attributes) error
}

// Compile-time interface satisfaction check.
var _ AttributeStore = (*ipp.Attributes)(nil)

// mediaPartition is a driver's media list split into discrete sizes and
// the roll range sentinels.
type mediaPartition struct {
	discrete []string
	rollMin  string
	rollMax  string
}

// partitionMedia splits a media list. At most one sentinel of each kind
// may appear, and a sentinel without its counterpart is rejected rather
// than silently dropped.
func partitionMedia(driverName string, names []string) (mediaPartition, error) {
	var p mediaPartition

	for _, name := range names {
		switch {
		case media.IsRollMin(name):
			if p.rollMin != "" {
				return p, &ConfigError{Driver: driverName, Reason: "duplicate roll_min_ sentinel in media list"}
			}
			p.rollMin = name
		case media.IsRollMax(name):
			if p.rollMax != "" {
				return p, &ConfigError{Driver: driverName, Reason: "duplicate roll_max_ sentinel in media list"}
			}
			p.rollMax = name
		default:
			p.discrete = append(p.discrete, name)
		}
	}

	if (p.rollMin == "") != (p.rollMax == "") {
		return p, &ConfigError{Driver: driverName, Reason: "roll sentinels must appear in min/max pairs"}
	}

	return p, nil
}

// hasRange reports whether both roll sentinels are present.
func (p mediaPartition) hasRange() bool {
	return p.rollMin != "" && p.rollMax != ""
}

// rollRange resolves the sentinel names into protocol length ranges.
func (p mediaPartition) rollRange() (x, y ipp.Range, err error) {
	minSize, err := media.Resolve(p.rollMin)
	if err != nil {
		return x, y, err
	}
	maxSize, err := media.Resolve(p.rollMax)
	if err != nil {
		return x, y, err
	}
	x = ipp.Range{Lower: minSize.Width, Upper: maxSize.Width}
	y = ipp.Range{Lower: minSize.Length, Upper: maxSize.Length}
	return x, y, nil
}

// SyncMediaCapabilities writes the media capability attributes derived
// from the driver's media list and margins. On error the store may hold
// a partial update; callers synthesize into a scratch set and swap it in
// on success.
func SyncMediaCapabilities(store AttributeStore, d *Driver) error {
	part, err := partitionMedia(d.Name, d.Media)
	if err != nil {
		return err
	}

	count := len(part.discrete)
	if part.hasRange() {
		count++
	}

	// media-bottom-margin-supported
	store.ReplaceInteger("media-bottom-margin-supported", d.BottomTop)

	// media-col-database
	attr := store.AllocateCollections("media-col-database", count)
	for i, name := range part.discrete {
		col, err := CreateMediaCollection(name, "", "", d.LeftRight, d.BottomTop)
		if err != nil {
			return err
		}
		if err := store.SetCollectionAt(attr, i, col); err != nil {
			return err
		}
	}
	if part.hasRange() {
		x, y, err := part.rollRange()
		if err != nil {
			return err
		}

		size := ipp.NewAttributes()
		size.AddRange("x-dimension", x)
		size.AddRange("y-dimension", y)

		col := ipp.NewAttributes()
		col.AddCollection("media-size", size)

		if err := store.SetCollectionAt(attr, count-1, col); err != nil {
			return err
		}
	}

	// media-left-margin-supported, media-right-margin-supported
	store.ReplaceInteger("media-left-margin-supported", d.LeftRight)
	store.ReplaceInteger("media-right-margin-supported", d.LeftRight)

	// media-size-supported
	attr = store.AllocateCollections("media-size-supported", count)
	for i, name := range part.discrete {
		size, err := createMediaSize(name)
		if err != nil {
			return err
		}
		if err := store.SetCollectionAt(attr, i, size); err != nil {
			return err
		}
	}
	if part.hasRange() {
		x, y, err := part.rollRange()
		if err != nil {
			return err
		}

		// The range entry is the size collection itself, not a
		// media-size wrapper.
		size := ipp.NewAttributes()
		size.AddRange("x-dimension", x)
		size.AddRange("y-dimension", y)

		if err := store.SetCollectionAt(attr, count-1, size); err != nil {
			return err
		}
	}

	// media-source-supported: absence, not an empty list, signals that
	// sources are unsupported. The stale attribute is removed either way
	// so a re-attach to a source-less driver never leaves one behind.
	store.Remove("media-source-supported")
	if len(d.Sources) > 0 {
		store.ReplaceKeywords("media-source-supported", d.Sources)
	}

	// media-supported carries the verbatim list, sentinels included.
	store.ReplaceKeywords("media-supported", d.Media)

	// media-top-margin-supported
	store.ReplaceInteger("media-top-margin-supported", d.BottomTop)

	// media-type-supported
	store.Remove("media-type-supported")
	if len(d.Types) > 0 {
		store.ReplaceKeywords("media-type-supported", d.Types)
	}

	return nil
}

// CreateMediaCollection builds a media-col collection for one size name.
// source and mediaType are omitted from the collection when empty. The
// function is pure; family initializers and job processing use it too.
func CreateMediaCollection(sizeName, source, mediaType string, leftRight, bottomTop int) (*ipp.Attributes, error) {
	size, err := createMediaSize(sizeName)
	if err != nil {
		return nil, err
	}

	col := ipp.NewAttributes()
	col.AddKeyword("media-size-name", sizeName)
	col.AddCollection("media-size", size)

	col.AddInteger("media-bottom-margin", bottomTop)
	col.AddInteger("media-left-margin", leftRight)
	col.AddInteger("media-right-margin", leftRight)
	col.AddInteger("media-top-margin", bottomTop)

	if source != "" {
		col.AddKeyword("media-source", source)
	}
	if mediaType != "" {
		col.AddKeyword("media-type", mediaType)
	}

	return col, nil
}

// createMediaSize builds a media-size collection for one size name.
func createMediaSize(sizeName string) (*ipp.Attributes, error) {
	size, err := media.Resolve(sizeName)
	if err != nil {
		return nil, fmt.Errorf("resolving media size: %w", err)
	}

	col := ipp.NewAttributes()
	col.AddInteger("x-dimension", size.Width)
	col.AddInteger("y-dimension", size.Length)

	return col, nil
}
