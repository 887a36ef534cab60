// Package persistence provides runtime state persistence for the print server.
//
// This package handles the JSON serialization of server state (printer
// names, driver keywords, device URIs) that must survive restarts.
// Capability attributes are intentionally not persisted; they are
// re-synthesized from the driver keyword when a driver is attached.
package persistence
