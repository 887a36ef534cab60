// Package drivers holds the label printer driver table and the
// capability synthesis that turns a driver's static description into
// IPP capability attributes.
//
// # Driver Families
//
// Every driver keyword belongs to one of seven command-language
// families: CPCL, DYMO, EPL1, EPL2, FGL, PCL, and ZPL. The family is
// selected by keyword prefix; anything that matches no prefix is
// handled by the ZPL family. Each family initializer populates a
// Driver with its resolutions, media sizes, sources, types, and
// margins.
//
// # Capability Synthesis
//
// SyncMediaCapabilities and SyncResolutionCapabilities write the
// derived capability attributes through the AttributeStore interface.
// The builders mutate nothing but the store, so they can be tested
// against a plain attribute set with no locking involved.
package drivers
