package main

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// FileConfig is the YAML configuration file layout.
type FileConfig struct {
	// StateFile is where server state is persisted.
	StateFile string `yaml:"state_file"`

	// EventLog is the CBOR event log path. Empty disables it.
	EventLog string `yaml:"event_log"`

	// Interface restricts mDNS advertising to one interface.
	Interface string `yaml:"interface"`

	// TTL is the DNS record TTL in seconds. Zero uses the default.
	TTL int `yaml:"ttl"`

	// RawSocket also advertises _pdl-datastream._tcp per printer.
	RawSocket bool `yaml:"raw_socket"`

	// Printers lists the configured printers.
	Printers []PrinterConfig `yaml:"printers"`
}

// PrinterConfig configures one printer in the YAML file.
type PrinterConfig struct {
	Name      string `yaml:"name"`
	Driver    string `yaml:"driver"`
	DeviceURI string `yaml:"device_uri"`
	Location  string `yaml:"location"`
}

// loadConfigFile reads and parses a YAML configuration file.
func loadConfigFile(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := &FileConfig{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	for i, p := range cfg.Printers {
		if p.Name == "" {
			return nil, fmt.Errorf("%s: printer %d has no name", path, i)
		}
	}

	return cfg, nil
}

// ttl returns the configured TTL as a duration, zero for "use default".
func (c *FileConfig) ttl() time.Duration {
	return time.Duration(c.TTL) * time.Second
}
