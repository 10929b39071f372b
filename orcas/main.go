// Command orcas formats financial metrics and renders the historical,
// simulation and compare views of a scoring backend.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/orcas/cmd"
	"github.com/google/subcommands"
)

func main() {
	// Exits when invoked by the shell for completion.
	cmd.Completion().Complete("orcas")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	cmd.Register(commander)

	flag.Parse()

	// Unknown subcommands are looked up as orcas-<subcommand> in PATH.
	if name := flag.Arg(0); name != "" && !known(commander, name) {
		if found, code := cmd.RunExtension(name, flag.Args()[1:]); found {
			os.Exit(code)
		}
	}
	os.Exit(int(commander.Execute(context.Background())))
}

func known(commander *subcommands.Commander, name string) bool {
	found := false
	commander.VisitCommands(func(_ *subcommands.CommandGroup, c subcommands.Command) {
		if c.Name() == name {
			found = true
		}
	})
	return found
}
