package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/orcas"
	"github.com/google/subcommands"
)

type simulateCmd struct {
	outputFlags
}

func (*simulateCmd) Name() string     { return "simulate" }
func (*simulateCmd) Synopsis() string { return "what-if score simulation" }
func (*simulateCmd) Usage() string {
	return `orcas simulate [-o <format>] [-out <file>] <response.json>

  Renders a simulation response: the baseline and simulated scores, their
  delta and every overridden metric with its trend.

  Reads stdin when the file is "-" or missing.
`
}

func (c *simulateCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	resp, err := orcas.DecodeSimulation(in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return c.write(engine.Simulation(resp))
}
