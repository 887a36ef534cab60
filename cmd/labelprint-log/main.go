// Command labelprint-log is a tool for viewing labelprint event logs.
//
// Log files are created by the labelprint server when an event_log
// path is configured. Events are CBOR-encoded for compactness; this
// tool renders them in human-readable or JSONL form.
//
// Usage:
//
//	labelprint-log <command> [flags] <file.plog>
//
// Commands:
//
//	view     View log file in human-readable format
//	export   Export log file to JSONL
//	stats    Show statistics about the log file
//
// Examples:
//
//	# View all events
//	labelprint-log view server.plog
//
//	# View only errors for one printer
//	labelprint-log view -printer front-desk -category error server.plog
//
//	# Export to JSONL
//	labelprint-log export server.plog > events.jsonl
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/labelprint/labelprint-go/pkg/log"
)

const usage = `labelprint-log - labelprint event log viewer

Usage:
  labelprint-log <command> [flags] <file.plog>

Commands:
  view     View log file in human-readable format
  export   Export log file to JSONL
  stats    Show statistics about the log file

Use "labelprint-log <command> -help" for more information about a command.
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	switch cmd {
	case "view":
		runView(args)
	case "export":
		runExport(args)
	case "stats":
		runStats(args)
	case "-h", "-help", "--help", "help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}
}

// openReader opens the log file named by the flag set's first
// positional argument and applies the common filter flags.
func openReader(fs *flag.FlagSet, printerName, category *string) *log.Reader {
	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: log file path required")
		fs.Usage()
		os.Exit(1)
	}

	r, err := log.OpenFile(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	filter := &log.Filter{Printer: *printerName}
	if *category != "" {
		c, err := parseCategory(*category)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		filter.Category = &c
	}
	r.SetFilter(filter)

	return r
}

func parseCategory(s string) (log.Category, error) {
	switch strings.ToLower(s) {
	case "lifecycle":
		return log.CategoryLifecycle, nil
	case "capability":
		return log.CategoryCapability, nil
	case "device":
		return log.CategoryDevice, nil
	case "error":
		return log.CategoryError, nil
	default:
		return 0, fmt.Errorf("unknown category %q (lifecycle, capability, device, error)", s)
	}
}

func runView(args []string) {
	fs := flag.NewFlagSet("view", flag.ExitOnError)
	printerName := fs.String("printer", "", "Filter by printer name")
	category := fs.String("category", "", "Filter by category (lifecycle, capability, device, error)")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	r := openReader(fs, printerName, category)
	defer r.Close()

	for {
		event, err := r.Next()
		if errors.Is(err, io.EOF) {
			return
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(formatEvent(event))
	}
}

func runExport(args []string) {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	printerName := fs.String("printer", "", "Filter by printer name")
	category := fs.String("category", "", "Filter by category (lifecycle, capability, device, error)")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	r := openReader(fs, printerName, category)
	defer r.Close()

	enc := json.NewEncoder(os.Stdout)
	for {
		event, err := r.Next()
		if errors.Is(err, io.EOF) {
			return
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if err := enc.Encode(exportEvent(event)); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
}

func runStats(args []string) {
	fs := flag.NewFlagSet("stats", flag.ExitOnError)
	printerName := fs.String("printer", "", "Filter by printer name")
	category := fs.String("category", "", "Filter by category (lifecycle, capability, device, error)")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	r := openReader(fs, printerName, category)
	defer r.Close()

	total := 0
	byCategory := make(map[log.Category]int)
	byPrinter := make(map[string]int)

	for {
		event, err := r.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		total++
		byCategory[event.Category]++
		byPrinter[event.Printer]++
	}

	fmt.Printf("Total events: %d\n\n", total)
	fmt.Println("By category:")
	for _, c := range []log.Category{
		log.CategoryLifecycle, log.CategoryCapability, log.CategoryDevice, log.CategoryError,
	} {
		if byCategory[c] > 0 {
			fmt.Printf("  %-12s %d\n", c, byCategory[c])
		}
	}
	fmt.Println("\nBy printer:")
	for name, n := range byPrinter {
		fmt.Printf("  %-20s %d\n", name, n)
	}
}

// formatEvent renders one event as a single human-readable line.
func formatEvent(e log.Event) string {
	ts := e.Timestamp.Format("15:04:05.000000")

	var detail string
	switch {
	case e.Driver != nil:
		verb := "detached"
		if e.Driver.Attached {
			verb = "attached"
		}
		detail = fmt.Sprintf("driver %s %s", e.Driver.Keyword, verb)
		if e.Driver.Model != "" {
			detail += fmt.Sprintf(" (%s)", e.Driver.Model)
		}
	case e.Capability != nil:
		detail = fmt.Sprintf("capabilities: %d media, %d resolutions, roll=%v",
			e.Capability.DiscreteMedia, e.Capability.Resolutions, e.Capability.RollRange)
	case e.Device != nil:
		detail = fmt.Sprintf("device %s %s", e.Device.URI, e.Device.Action)
	case e.Error != nil:
		detail = fmt.Sprintf("%s: %s", e.Error.Op, e.Error.Message)
	}

	return fmt.Sprintf("%s [%-10s] %-20s %s", ts, e.Category, e.Printer, detail)
}

// jsonEvent is the JSONL export shape.
type jsonEvent struct {
	Timestamp  string               `json:"timestamp"`
	Printer    string               `json:"printer"`
	Category   string               `json:"category"`
	Driver     *log.DriverEvent     `json:"driver,omitempty"`
	Capability *log.CapabilityEvent `json:"capability,omitempty"`
	Device     *log.DeviceEvent     `json:"device,omitempty"`
	Error      *log.ErrorEventData  `json:"error,omitempty"`
}

func exportEvent(e log.Event) jsonEvent {
	return jsonEvent{
		Timestamp:  e.Timestamp.Format("2006-01-02T15:04:05.000000Z07:00"),
		Printer:    e.Printer,
		Category:   e.Category.String(),
		Driver:     e.Driver,
		Capability: e.Capability,
		Device:     e.Device,
		Error:      e.Error,
	}
}
