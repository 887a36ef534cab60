package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/chzyer/readline"

	"github.com/labelprint/labelprint-go/pkg/drivers"
	"github.com/labelprint/labelprint-go/pkg/ipp"
	"github.com/labelprint/labelprint-go/pkg/media"
	"github.com/labelprint/labelprint-go/pkg/printer"
)

// Interactive handles the interactive command loop for labelprint.
type Interactive struct {
	srv *Server
	rl  *readline.Instance
}

// NewInteractive creates a new interactive handler.
func NewInteractive(srv *Server) (*Interactive, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "labelprint> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline: %w", err)
	}

	return &Interactive{srv: srv, rl: rl}, nil
}

// Run starts the interactive command loop.
func (i *Interactive) Run(ctx context.Context, cancel context.CancelFunc) {
	defer i.rl.Close()

	i.printHelp()

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		line, err := i.rl.Readline()
		if err != nil {
			// EOF or interrupt
			if err == readline.ErrInterrupt {
				continue
			}
			fmt.Fprintln(i.rl.Stdout(), "Exiting...")
			cancel()
			return
		}

		input := strings.TrimSpace(line)
		if input == "" {
			continue
		}

		parts := strings.Fields(input)
		cmd := strings.ToLower(parts[0])
		args := parts[1:]

		switch cmd {
		case "help", "?":
			i.printHelp()

		case "drivers", "d":
			i.cmdDrivers(args)

		case "printers", "p":
			i.cmdPrinters()

		case "show", "s":
			i.cmdShow(args)

		case "media", "m":
			i.cmdMedia(args)

		case "attach", "a":
			i.cmdAttach(ctx, args)

		case "detach":
			i.cmdDetach(args)

		case "quit", "exit", "q":
			fmt.Println("Exiting...")
			cancel()
			return

		default:
			fmt.Printf("Unknown command: %s (type 'help' for commands)\n", cmd)
		}
	}
}

func (i *Interactive) printHelp() {
	fmt.Println(`
labelprint Commands:
  Inspection:
    printers               - List configured printers
    show <printer>         - Show a printer's capability attributes
    media <printer>        - Show a printer's resolved media sizes
    drivers [prefix]       - List registered drivers

  Driver Management:
    attach <printer> <driver> - Attach a different driver
    detach <printer>          - Detach the current driver

  General:
    help                   - Show this help
    quit                   - Exit`)
}

func (i *Interactive) cmdDrivers(args []string) {
	prefix := ""
	if len(args) > 0 {
		prefix = args[0]
	}
	for _, desc := range drivers.List() {
		if prefix != "" && !strings.HasPrefix(desc.Keyword, prefix) {
			continue
		}
		fmt.Printf("  %-28s %s\n", desc.Keyword, desc.ModelName)
	}
}

func (i *Interactive) cmdPrinters() {
	for _, p := range i.srv.printers {
		model := "no driver"
		if d := p.Driver(); d != nil {
			model = fmt.Sprintf("%s (%s)", printer.GetMakeAndModel(d), d.Name)
		}
		fmt.Printf("  %-20s %-40s %s\n", p.Name(), model, p.DeviceURI())
	}
}

func (i *Interactive) cmdShow(args []string) {
	p := i.requirePrinter(args)
	if p == nil {
		return
	}

	attrs := p.Attributes()
	for _, name := range attrs.Names() {
		fmt.Printf("  %-40s %s\n", name, formatAttr(attrs.Find(name)))
	}
}

func (i *Interactive) cmdMedia(args []string) {
	p := i.requirePrinter(args)
	if p == nil {
		return
	}

	d := p.Driver()
	if d == nil {
		fmt.Println("No driver attached")
		return
	}

	for _, name := range d.Media {
		size, err := media.Resolve(name)
		if err != nil {
			fmt.Printf("  %-40s (unresolved: %v)\n", name, err)
			continue
		}
		fmt.Printf("  %-40s %d x %d\n", name, size.Width, size.Length)
	}
}

func (i *Interactive) cmdAttach(ctx context.Context, args []string) {
	if len(args) < 2 {
		fmt.Println("Usage: attach <printer> <driver>")
		return
	}

	p := i.srv.find(args[0])
	if p == nil {
		fmt.Printf("Unknown printer: %s\n", args[0])
		return
	}

	if err := p.DetachDriver(); err != nil {
		fmt.Printf("Detach failed: %v\n", err)
		return
	}

	p.SetDriverKeyword(args[1])
	if err := i.srv.attach(ctx, p); err != nil {
		fmt.Printf("Attach failed: %v\n", err)
		return
	}

	// Capability set changed; refresh the advertisement
	if err := i.srv.advertise(ctx, p); err != nil {
		fmt.Printf("Re-advertise failed: %v\n", err)
	}
	if err := i.srv.saveState(); err != nil {
		fmt.Printf("Save state failed: %v\n", err)
	}

	fmt.Printf("Attached %s to %s\n", args[1], p.Name())
}

func (i *Interactive) cmdDetach(args []string) {
	p := i.requirePrinter(args)
	if p == nil {
		return
	}

	if err := p.DetachDriver(); err != nil {
		fmt.Printf("Detach failed: %v\n", err)
		return
	}
	fmt.Printf("Detached driver from %s\n", p.Name())
}

// requirePrinter resolves args[0] to a printer, printing usage help on
// failure.
func (i *Interactive) requirePrinter(args []string) *printer.Printer {
	if len(args) < 1 {
		fmt.Println("Usage: <command> <printer>")
		return nil
	}
	p := i.srv.find(args[0])
	if p == nil {
		fmt.Printf("Unknown printer: %s\n", args[0])
		return nil
	}
	return p
}

// formatAttr renders one attribute value list for display.
func formatAttr(a *ipp.Attribute) string {
	if a == nil {
		return ""
	}

	parts := make([]string, 0, a.Len())
	for idx := 0; idx < a.Len(); idx++ {
		if col, ok := a.Collection(idx); ok {
			parts = append(parts, fmt.Sprintf("{%s}", strings.Join(col.Names(), " ")))
			continue
		}
		parts = append(parts, fmt.Sprintf("%v", a.Values[idx]))
	}
	return strings.Join(parts, ", ")
}
