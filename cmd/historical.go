package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/orcas"
	"github.com/google/subcommands"
)

// historicalCmd holds the flags for the 'historical' subcommand.
type historicalCmd struct {
	outputFlags
	strict bool
}

func (*historicalCmd) Name() string     { return "historical" }
func (*historicalCmd) Synopsis() string { return "year over year comparison of a ticker's metrics" }
func (*historicalCmd) Usage() string {
	return `orcas historical [-o <format>] [-out <file>] [-strict] <response.json>

  Renders a historical comparison response: every metric of year1 and year2
  formatted in its unit, the delta, the relative change and the trend.

  Reads stdin when the file is "-" or missing. The trend reported by the
  backend is shown when present; disagreements with the local classification
  are listed at the end. With -strict they make the command fail.
`
}

func (c *historicalCmd) SetFlags(f *flag.FlagSet) {
	c.outputFlags.SetFlags(f)
	f.BoolVar(&c.strict, "strict", false, "Fail when the backend trends disagree with the local classification")
}

func (c *historicalCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	resp, err := orcas.DecodeHistorical(in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	report := engine.Historical(resp)
	if status := c.write(report); status != subcommands.ExitSuccess {
		return status
	}
	if c.strict && len(report.Mismatches) > 0 {
		fmt.Fprintf(os.Stderr, "%d metric(s) disagree with the backend\n", len(report.Mismatches))
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
