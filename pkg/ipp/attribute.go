package ipp

import "fmt"

// Tag identifies the value kind of an attribute.
type Tag uint8

const (
	// TagInteger marks int values.
	TagInteger Tag = iota + 1

	// TagKeyword marks keyword string values.
	TagKeyword

	// TagText marks human-readable text string values.
	TagText

	// TagResolution marks Resolution values.
	TagResolution

	// TagRange marks Range values.
	TagRange

	// TagCollection marks *Attributes collection values.
	TagCollection
)

// String returns the tag name.
func (t Tag) String() string {
	switch t {
	case TagInteger:
		return "integer"
	case TagKeyword:
		return "keyword"
	case TagText:
		return "text"
	case TagResolution:
		return "resolution"
	case TagRange:
		return "rangeOfInteger"
	case TagCollection:
		return "collection"
	default:
		return "unknown"
	}
}

// ResolutionUnits identifies the units of a Resolution value.
type ResolutionUnits uint8

const (
	// PerInch is dots per inch.
	PerInch ResolutionUnits = 3

	// PerCentimeter is dots per centimeter.
	PerCentimeter ResolutionUnits = 4
)

// Resolution is a printer resolution value.
type Resolution struct {
	X     int
	Y     int
	Units ResolutionUnits
}

// DPI builds a dots-per-inch resolution.
func DPI(x, y int) Resolution {
	return Resolution{X: x, Y: y, Units: PerInch}
}

// String returns the resolution in "XxYdpi" form.
func (r Resolution) String() string {
	unit := "dpi"
	if r.Units == PerCentimeter {
		unit = "dpcm"
	}
	if r.X == r.Y {
		return fmt.Sprintf("%d%s", r.X, unit)
	}
	return fmt.Sprintf("%dx%d%s", r.X, r.Y, unit)
}

// Range is an integer range value (inclusive bounds).
type Range struct {
	Lower int
	Upper int
}

// Attribute is a single named attribute with one or more values.
// Values hold int, string, Resolution, Range, or *Attributes elements
// according to Tag.
type Attribute struct {
	Name   string
	Tag    Tag
	Values []any
}

// Int returns the first value as an int.
func (a *Attribute) Int() (int, bool) {
	if a == nil || len(a.Values) == 0 {
		return 0, false
	}
	v, ok := a.Values[0].(int)
	return v, ok
}

// Text returns the first value as a string.
func (a *Attribute) Text() (string, bool) {
	if a == nil || len(a.Values) == 0 {
		return "", false
	}
	v, ok := a.Values[0].(string)
	return v, ok
}

// Strings returns all string values.
func (a *Attribute) Strings() []string {
	if a == nil {
		return nil
	}
	out := make([]string, 0, len(a.Values))
	for _, v := range a.Values {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// Resolutions returns all Resolution values.
func (a *Attribute) Resolutions() []Resolution {
	if a == nil {
		return nil
	}
	out := make([]Resolution, 0, len(a.Values))
	for _, v := range a.Values {
		if r, ok := v.(Resolution); ok {
			out = append(out, r)
		}
	}
	return out
}

// Collection returns the value at index i as a collection.
func (a *Attribute) Collection(i int) (*Attributes, bool) {
	if a == nil || i < 0 || i >= len(a.Values) {
		return nil, false
	}
	c, ok := a.Values[i].(*Attributes)
	return c, ok
}

// Len returns the number of values.
func (a *Attribute) Len() int {
	if a == nil {
		return 0
	}
	return len(a.Values)
}

// clone returns a deep copy of the attribute.
func (a *Attribute) clone() *Attribute {
	c := &Attribute{Name: a.Name, Tag: a.Tag, Values: make([]any, len(a.Values))}
	for i, v := range a.Values {
		if col, ok := v.(*Attributes); ok {
			c.Values[i] = col.Clone()
		} else {
			c.Values[i] = v
		}
	}
	return c
}
