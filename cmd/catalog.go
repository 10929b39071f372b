package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type catalogCmd struct {
	outputFlags
}

func (*catalogCmd) Name() string     { return "catalog" }
func (*catalogCmd) Synopsis() string { return "list catalog metrics and their resolved units" }
func (*catalogCmd) Usage() string {
	return `orcas catalog [-o <format>] [-out <file>]

  Lists every metric of the catalog with the unit it resolves to in the
  unit override table.
`
}

func (c *catalogCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	engine, logger, err := NewEngine(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	report := engine.Catalog()
	if len(report.Rows) == 0 {
		logger.Warn().Msg("Catalog is empty, set it with -catalog or the catalog configuration key")
	}
	return c.write(report)
}
