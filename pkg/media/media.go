package media

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrUnknownSize reports a media size name that cannot be resolved.
var ErrUnknownSize = errors.New("media: unknown size name")

// Sentinel prefixes marking the bounds of a continuous roll range.
const (
	RollMinPrefix = "roll_min_"
	RollMaxPrefix = "roll_max_"
)

// Size is a physical media size in hundredths of millimetres.
type Size struct {
	// Width is the cross-feed dimension.
	Width int

	// Length is the feed dimension.
	Length int
}

// Units per hundredth of a millimetre for each supported dimension suffix.
// Order matters: longer suffixes are matched first.
var unitFactors = []struct {
	suffix string
	factor float64
}{
	{"mm", 100},
	{"cm", 1000},
	{"in", 2540},
	{"pt", 2540.0 / 72.0},
	{"m", 100000},
}

// Resolve parses a self-describing PWG media size name and returns its
// dimensions. Unknown or malformed names fail with ErrUnknownSize.
func Resolve(name string) (Size, error) {
	// The dimension section is everything after the last underscore.
	idx := strings.LastIndexByte(name, '_')
	if idx < 0 || idx == len(name)-1 {
		return Size{}, fmt.Errorf("%w: %q", ErrUnknownSize, name)
	}
	dims := name[idx+1:]

	var factor float64
	for _, u := range unitFactors {
		if strings.HasSuffix(dims, u.suffix) {
			factor = u.factor
			dims = strings.TrimSuffix(dims, u.suffix)
			break
		}
	}
	if factor == 0 {
		return Size{}, fmt.Errorf("%w: %q has no dimension units", ErrUnknownSize, name)
	}

	w, l, ok := strings.Cut(dims, "x")
	if !ok {
		return Size{}, fmt.Errorf("%w: %q has no dimension separator", ErrUnknownSize, name)
	}

	width, err := parseDimension(w, factor)
	if err != nil {
		return Size{}, fmt.Errorf("%w: %q: bad width", ErrUnknownSize, name)
	}
	length, err := parseDimension(l, factor)
	if err != nil {
		return Size{}, fmt.Errorf("%w: %q: bad length", ErrUnknownSize, name)
	}

	return Size{Width: width, Length: length}, nil
}

// parseDimension converts one decimal dimension to hundredths of mm.
func parseDimension(s string, factor float64) (int, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if v <= 0 {
		return 0, fmt.Errorf("non-positive dimension %q", s)
	}
	return int(math.Round(v * factor)), nil
}

// IsRollMin reports whether name is a roll minimum sentinel.
func IsRollMin(name string) bool {
	return strings.HasPrefix(name, RollMinPrefix)
}

// IsRollMax reports whether name is a roll maximum sentinel.
func IsRollMax(name string) bool {
	return strings.HasPrefix(name, RollMaxPrefix)
}

// IsRoll reports whether name is either roll sentinel. Sentinels never
// count as discrete sizes.
func IsRoll(name string) bool {
	return IsRollMin(name) || IsRollMax(name)
}
