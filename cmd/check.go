package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/orcas"
	"github.com/google/subcommands"
)

// checkCmd holds the flags for the 'check' subcommand.
type checkCmd struct {
	path string
}

func (*checkCmd) Name() string     { return "check" }
func (*checkCmd) Synopsis() string { return "check backend trends against the local classification" }
func (*checkCmd) Usage() string {
	return `orcas check [-path <jsonpath>] <payload.json>

  Extracts metric comparison rows from any JSON payload, classifies each one
  and reports the rows whose backend trend or significance disagrees.

  Exits with a failure status when at least one row disagrees.
`
}

func (c *checkCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.path, "path", orcas.DefaultRowsPath, "JSONPath selecting the metric rows")
}

func (c *checkCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	engine, _, err := NewEngine(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	in, err := openInput(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer in.Close()

	rows, err := orcas.DecodeMetricRows(in, c.path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	mismatches := engine.Check(rows)
	if len(mismatches) == 0 {
		fmt.Printf("%d rows checked, no disagreement\n", len(rows))
		return subcommands.ExitSuccess
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# %d of %d rows disagree\n\n", len(mismatches), len(rows))
	b.WriteString("| Metric | Backend | Local |\n|:---|:---|:---|\n")
	for _, m := range mismatches {
		fmt.Fprintf(&b, "| %s | %s | %s |\n", m.Metric, label(m.Backend), label(m.Core))
	}
	printMarkdown(b.String())
	return subcommands.ExitFailure
}

func label(r orcas.TrendResult) string {
	if r.IsSignificant {
		return r.Trend.Label() + ", significant"
	}
	return r.Trend.Label()
}
