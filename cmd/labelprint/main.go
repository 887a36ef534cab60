// Command labelprint is a label printer endpoint server.
//
// This command demonstrates a complete label printing endpoint with:
//   - CLI argument parsing
//   - Configuration file support
//   - Driver-based capability synthesis for multiple printer families
//   - mDNS discovery advertising
//   - State persistence across restarts
//   - CBOR event logging
//
// Usage:
//
//	labelprint [flags]
//
// Flags:
//
//	-config string     Configuration file path (YAML)
//	-state string      State file path (default "labelprint-state.json")
//	-name string       Printer name for single-printer mode
//	-driver string     Driver keyword, e.g. "zpl_2inch-203dpi-dt"
//	-device string     Device URI, e.g. "file:///tmp/out.prn" (default "null:")
//	-list-drivers      Print the driver registry and exit
//	-interactive       Enter the interactive command loop
//	-log-level string  Log level: debug, info, warn, error (default "info")
//
// Examples:
//
//	# Single ZPL printer writing to a file
//	labelprint -name front-desk -driver zpl_2inch-203dpi-dt -device file:///tmp/fd.prn
//
//	# Multiple printers from a config file, interactive
//	labelprint -config /etc/labelprint.yaml -interactive
package main

import (
	"context"
	"flag"
	"fmt"
	stdlog "log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labelprint/labelprint-go/pkg/device"
	"github.com/labelprint/labelprint-go/pkg/discovery"
	"github.com/labelprint/labelprint-go/pkg/drivers"
	"github.com/labelprint/labelprint-go/pkg/log"
	"github.com/labelprint/labelprint-go/pkg/persistence"
	"github.com/labelprint/labelprint-go/pkg/printer"
)

// Config holds the parsed command line flags.
type Config struct {
	ConfigFile  string
	StateFile   string
	Name        string
	Driver      string
	DeviceURI   string
	ListDrivers bool
	Interactive bool
	LogLevel    string
}

var config Config

func init() {
	flag.StringVar(&config.ConfigFile, "config", "", "Configuration file path (YAML)")
	flag.StringVar(&config.StateFile, "state", "labelprint-state.json", "State file path")
	flag.StringVar(&config.Name, "name", "", "Printer name for single-printer mode")
	flag.StringVar(&config.Driver, "driver", "", "Driver keyword")
	flag.StringVar(&config.DeviceURI, "device", "null:", "Device URI")
	flag.BoolVar(&config.ListDrivers, "list-drivers", false, "Print the driver registry and exit")
	flag.BoolVar(&config.Interactive, "interactive", false, "Enter the interactive command loop")
	flag.StringVar(&config.LogLevel, "log-level", "info", "Log level: debug, info, warn, error")
}

func main() {
	flag.Parse()

	if config.ListDrivers {
		listDrivers()
		return
	}

	setupLogging(config.LogLevel)

	stdlog.Println("labelprint endpoint server")

	fileCfg := &FileConfig{}
	if config.ConfigFile != "" {
		loaded, err := loadConfigFile(config.ConfigFile)
		if err != nil {
			stdlog.Fatalf("Invalid configuration: %v", err)
		}
		fileCfg = loaded
	}
	if fileCfg.StateFile == "" {
		fileCfg.StateFile = config.StateFile
	}
	if config.Name != "" {
		fileCfg.Printers = append(fileCfg.Printers, PrinterConfig{
			Name:      config.Name,
			Driver:    config.Driver,
			DeviceURI: config.DeviceURI,
		})
	}
	if len(fileCfg.Printers) == 0 {
		stdlog.Fatal("No printers configured; use -name/-driver or -config")
	}

	srv, err := newServer(fileCfg)
	if err != nil {
		stdlog.Fatalf("Failed to start: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := srv.Start(ctx); err != nil {
		stdlog.Fatalf("Failed to start printers: %v", err)
	}

	if config.Interactive {
		shell, err := NewInteractive(srv)
		if err != nil {
			stdlog.Fatalf("Failed to start interactive mode: %v", err)
		}
		go shell.Run(ctx, cancel)
	}

	// Wait for shutdown signal or interactive quit
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		stdlog.Printf("Received signal: %v", sig)
	case <-ctx.Done():
	}

	stdlog.Println("Shutting down...")
	if err := srv.Stop(); err != nil {
		stdlog.Printf("Error during shutdown: %v", err)
	}
	stdlog.Println("Goodbye!")
}

func setupLogging(level string) {
	stdlog.SetFlags(stdlog.Ltime | stdlog.Lmicroseconds)

	switch level {
	case "debug":
		stdlog.SetFlags(stdlog.Ltime | stdlog.Lmicroseconds | stdlog.Lshortfile)
		slog.SetLogLoggerLevel(slog.LevelDebug)
	case "warn":
		slog.SetLogLoggerLevel(slog.LevelWarn)
	case "error":
		slog.SetLogLoggerLevel(slog.LevelError)
	}
}

func listDrivers() {
	for _, desc := range drivers.List() {
		fmt.Printf("%-28s %s\n", desc.Keyword, desc.ModelName)
	}
}

// Server assembles the printers, advertiser, event log, and state
// store into one lifecycle.
type Server struct {
	cfg        *FileConfig
	printers   []*printer.Printer
	advertiser discovery.Advertiser
	store      *persistence.StateStore
	logger     log.Logger
	logFile    *log.FileLogger
}

func newServer(cfg *FileConfig) (*Server, error) {
	srv := &Server{
		cfg:   cfg,
		store: persistence.NewStateStore(cfg.StateFile),
	}

	// Event logging: slog to the console, CBOR to a file if configured
	loggers := log.Fanout{log.NewSlogAdapter(slog.Default())}
	if cfg.EventLog != "" {
		fl, err := log.NewFileLogger(cfg.EventLog)
		if err != nil {
			return nil, fmt.Errorf("open event log: %w", err)
		}
		srv.logFile = fl
		loggers = append(loggers, fl)
	}
	srv.logger = loggers

	advCfg := discovery.DefaultAdvertiserConfig()
	advCfg.Interface = cfg.Interface
	if cfg.TTL > 0 {
		advCfg.TTL = cfg.ttl()
	}
	adv, err := discovery.NewMDNSAdvertiser(advCfg)
	if err != nil {
		return nil, err
	}
	srv.advertiser = adv

	return srv, nil
}

// Start creates the configured printers, attaches their drivers, opens
// their devices, and advertises them.
func (s *Server) Start(ctx context.Context) error {
	state, err := s.store.Load()
	if err != nil {
		return fmt.Errorf("load state: %w", err)
	}

	for _, pc := range s.cfg.Printers {
		pcfg := printer.Config{
			Name:          pc.Name,
			DriverKeyword: pc.Driver,
			DeviceURI:     pc.DeviceURI,
			Location:      pc.Location,
			Logger:        s.logger,
		}

		// Restore persisted identity and settings
		if saved := state.Find(pc.Name); saved != nil {
			pcfg.UUID = saved.UUID
			if pcfg.DriverKeyword == "" {
				pcfg.DriverKeyword = saved.DriverKeyword
			}
			if pcfg.DeviceURI == "" {
				pcfg.DeviceURI = saved.DeviceURI
			}
			if pcfg.Location == "" {
				pcfg.Location = saved.Location
			}
		}

		p := printer.New(pcfg)
		s.printers = append(s.printers, p)

		if err := s.attach(ctx, p); err != nil {
			stdlog.Printf("Printer %s: driver not attached: %v", p.Name(), err)
			continue
		}
	}

	for _, p := range s.printers {
		if err := s.advertise(ctx, p); err != nil {
			stdlog.Printf("Printer %s: advertising failed: %v", p.Name(), err)
		}
	}

	return s.saveState()
}

// attach resolves and attaches the printer's driver and opens its
// output device.
func (s *Server) attach(ctx context.Context, p *printer.Printer) error {
	d, err := p.CreateDriver()
	if err != nil {
		return err
	}

	if uri := p.DeviceURI(); uri != "" {
		dev, err := device.Open(ctx, uri)
		if err != nil {
			return fmt.Errorf("open device: %w", err)
		}
		d.SetDevice(dev)
		s.logger.Log(log.Event{
			Timestamp: time.Now(),
			Printer:   p.Name(),
			Category:  log.CategoryDevice,
			Device:    &log.DeviceEvent{URI: uri, Action: "open"},
		})
	}

	stdlog.Printf("Printer %s: %s attached", p.Name(), printer.GetMakeAndModel(d))
	return nil
}

// advertise publishes the printer's DNS-SD records.
func (s *Server) advertise(ctx context.Context, p *printer.Printer) error {
	info := p.DiscoveryInfo()
	info.RawSocket = s.cfg.RawSocket
	return s.advertiser.AdvertisePrinter(ctx, info)
}

// Stop withdraws advertisements, detaches drivers, and saves state.
func (s *Server) Stop() error {
	s.advertiser.StopAll()

	var firstErr error
	for _, p := range s.printers {
		if err := p.DetachDriver(); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	if err := s.saveState(); err != nil && firstErr == nil {
		firstErr = err
	}

	if s.logFile != nil {
		if err := s.logFile.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// saveState snapshots all printers into the state file.
func (s *Server) saveState() error {
	state := &persistence.State{}
	for _, p := range s.printers {
		ps := persistence.PrinterState{
			Name:      p.Name(),
			DeviceURI: p.DeviceURI(),
			UUID:      p.UUID(),
		}
		if d := p.Driver(); d != nil {
			ps.DriverKeyword = d.Name
		}
		if loc, ok := p.Attributes().Find("printer-location").Text(); ok {
			ps.Location = loc
		}
		state.Upsert(ps)
	}
	return s.store.Save(state)
}

// find returns the printer with the given name, or nil.
func (s *Server) find(name string) *printer.Printer {
	for _, p := range s.printers {
		if p.Name() == name {
			return p
		}
	}
	return nil
}
