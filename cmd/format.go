package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/orcas"
	"github.com/google/subcommands"
)

// formatCmd holds the flags for the 'format' subcommand.
type formatCmd struct {
	unit   string
	mode   string
	metric string
	key    string
	noUnit bool
}

func (*formatCmd) Name() string     { return "format" }
func (*formatCmd) Synopsis() string { return "format metric values for display" }
func (*formatCmd) Usage() string {
	return `orcas format [-m <metric>] [-k <key>] [-unit <unit>] [-mode <mode>] [-raw] <value>...

  Formats each value the way reports display it.

  With -m or -k the unit is resolved from the unit override table, otherwise
  -unit and -mode are used. Empty values, "null" and "-" are missing.
`
}

func (c *formatCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.metric, "m", "", "Metric name to resolve the unit from")
	f.StringVar(&c.key, "k", "", "Metric key to resolve the unit from")
	f.StringVar(&c.unit, "unit", "", `Display unit: "", "%", "x", "ratio" or any custom unit`)
	f.StringVar(&c.mode, "mode", "", `Input mode, "percent_points" scales fractions by 100`)
	f.BoolVar(&c.noUnit, "raw", false, "Omit the unit suffix")
}

func (c *formatCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "at least one value is required")
		return subcommands.ExitUsageError
	}

	engine, _, err := NewEngine(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	cfg := orcas.UnitConfig{DisplayUnit: c.unit, InputMode: c.mode}
	if c.metric != "" || c.key != "" {
		cfg = engine.UnitFor(c.key, c.metric)
	}

	formatter := engine.Formatter()
	for _, arg := range f.Args() {
		v, err := parseValue(arg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		if c.noUnit {
			fmt.Println(formatter.FormatNumber(v, cfg))
		} else {
			fmt.Println(formatter.Format(v, cfg))
		}
	}
	return subcommands.ExitSuccess
}
