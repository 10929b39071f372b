// Package cmd implements the orcas CLI: metric formatting, identity
// resolution and the historical, simulation and compare views.
package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/orcas"
	"github.com/etnz/orcas/config"
	"github.com/etnz/orcas/renderer"
	"github.com/google/subcommands"
	"github.com/ternarybob/arbor"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(c.HelpCommand(), "")
	c.Register(c.FlagsCommand(), "")
	c.Register(&topicCmd{}, "")

	c.Register(&formatCmd{}, "metrics")
	c.Register(&resolveCmd{}, "metrics")
	c.Register(&catalogCmd{}, "metrics")

	c.Register(&historicalCmd{}, "views")
	c.Register(&simulateCmd{}, "views")
	c.Register(&compareCmd{}, "views")
	c.Register(&checkCmd{}, "views")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	configFile  = flag.String("config", "", "Path to the configuration file (TOML or YAML). Defaults to "+config.DefaultFile+" when present.")
	unitsFile   = flag.String("units", "", "Unit override CSV, path or URL. Overrides the configuration.")
	catalogFile = flag.String("catalog", "", "Metrics catalog (JSON or YAML), path or URL. Overrides the configuration.")
	locale      = flag.String("locale", "", "ISO 4217 currency code whose separators are used to print numbers, e.g. USD, IDR.")
	Verbose     = flag.Bool("v", false, "Verbose logging")
)

// loadConfig loads the configuration and applies the global flags.
func loadConfig() (*config.Config, error) {
	c, err := config.Load(*configFile)
	if err != nil {
		return nil, err
	}
	if *unitsFile != "" {
		c.Units = *unitsFile
	}
	if *catalogFile != "" {
		c.Catalog = *catalogFile
	}
	if *locale != "" {
		c.Locale = *locale
	}
	if *Verbose {
		c.Log.Level = "debug"
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// NewEngine loads the configuration and the reference data.
func NewEngine(ctx context.Context) (*orcas.Engine, arbor.ILogger, error) {
	c, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	logger := c.NewLogger()
	ref := orcas.LoadReference(ctx, logger, c.Sources())
	return orcas.NewEngine(ref, c.Formatter(), logger), logger, nil
}

// openInput opens a file, or stdin for "-" or an empty name.
func openInput(name string) (io.ReadCloser, error) {
	if name == "" || name == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("opening %q: %w", name, err)
	}
	return f, nil
}

// outputFlags are the output flags shared by the report commands.
type outputFlags struct {
	format string
	out    string
}

func (o *outputFlags) SetFlags(f *flag.FlagSet) {
	f.StringVar(&o.format, "o", string(renderer.Markdown), "Output format: md, csv, html, pdf, json")
	f.StringVar(&o.out, "out", "", "Write the report to this file instead of stdout")
}

// write renders r in the selected format. Markdown on a terminal is
// rendered with glamour.
func (o *outputFlags) write(r orcas.Tabular) subcommands.ExitStatus {
	format, err := renderer.ParseFormat(o.format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	if o.out == "" {
		if format == renderer.Markdown {
			printMarkdown(renderer.Render(r))
			return subcommands.ExitSuccess
		}
		if format == renderer.PDF {
			fmt.Fprintln(os.Stderr, "Error: PDF output requires -out")
			return subcommands.ExitUsageError
		}
		if err := renderer.Export(os.Stdout, r, format); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	f, err := os.Create(o.out)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating %q: %v\n", o.out, err)
		return subcommands.ExitFailure
	}
	defer f.Close()
	if err := renderer.Export(f, r, format); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %q: %v\n", o.out, err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(os.Stderr, "Report written to %s\n", o.out)
	return subcommands.ExitSuccess
}

// printMarkdown prints markdown to the terminal, falling back to the raw
// text when it cannot be rendered.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(120))
	if err != nil {
		fmt.Print(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}

// parseValue parses an optional number: "", "null" and "-" are missing.
func parseValue(s string) (*float64, error) {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "", "null", "-", "nan":
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid number %q", s)
	}
	return &v, nil
}
