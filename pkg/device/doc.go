// Package device opens and closes printer output devices.
//
// Devices are addressed by URI; backends register themselves for the
// schemes they handle. The package ships a file:// backend for spooling
// to a path and a null: backend that discards output, which is also what
// tests use. Job encoding and transport live with the driver's render
// path, not here.
package device
