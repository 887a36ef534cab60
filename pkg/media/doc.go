// Package media resolves PWG 5101.1 self-describing media size names to
// physical dimensions.
//
// A self-describing name has the form <class>_<size-id>_<WxL><units>,
// for example "na_letter_8.5x11in" or "oe_2x3-label_2x3in". Roll bounds
// use the "roll" class with "min"/"max" size IDs, for example
// "roll_min_0.75x0.25in" and "roll_max_4x39.6in".
//
// Dimensions are reported in hundredths of millimetres, the length unit
// used throughout the IPP attribute model.
package media
