package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/orcas"
	"github.com/google/subcommands"
)

type compareCmd struct {
	outputFlags
}

func (*compareCmd) Name() string     { return "compare" }
func (*compareCmd) Synopsis() string { return "compare scores of several tickers over years" }
func (*compareCmd) Usage() string {
	return `orcas compare [-o <format>] [-out <file>] <response.json>

  Renders a compare response: the score of each ticker for every year, the
  change from the first to the last available year, and an average row
  counting only the tickers that have a score that year.

  Reads stdin when the file is "-" or missing.
`
}

func (c *compareCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	resp, err := orcas.DecodeCompare(in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return c.write(engine.Compare(resp))
}
