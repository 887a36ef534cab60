// Package ipp implements the subset of the IPP attribute model that a
// label printer endpoint needs to advertise its capabilities.
//
// # Attribute Sets
//
// An Attributes value is an ordered set of named attributes. The printer's
// capability set is an Attributes value; so is every collection value
// (media-col-database entries, media-size values, and so on), since IPP
// collections are themselves ordered sets of named members.
//
// # Replace Semantics
//
// Capability synthesis runs every time a driver is attached to a printer,
// so every Replace* setter removes any existing attribute of the same name
// before adding the new value. Repeated synthesis therefore never leaves
// duplicate attributes behind.
//
// # Value Kinds
//
// Each attribute carries a Tag naming its value kind and a value slice
// holding int, string, Resolution, Range, or *Attributes elements
// according to that tag.
package ipp
