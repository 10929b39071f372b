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

// resolveCmd holds the flags for the 'resolve' subcommand.
type resolveCmd struct {
	key string
}

func (*resolveCmd) Name() string     { return "resolve" }
func (*resolveCmd) Synopsis() string { return "show how a metric name resolves to a unit" }
func (*resolveCmd) Usage() string {
	return `orcas resolve [-k <key>] <metric name>

  Lists the identity candidates of a metric in precedence order, the
  normalized token of each, and the unit config that wins.
`
}

func (c *resolveCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.key, "k", "", "Backend metric key")
}

func (c *resolveCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	name := strings.Join(f.Args(), " ")
	if name == "" && c.key == "" {
		fmt.Fprintln(os.Stderr, "a metric name or -k key is required")
		return subcommands.ExitUsageError
	}

	engine, _, err := NewEngine(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", firstNonEmpty(name, c.key))
	b.WriteString("| # | Candidate | Token |\n|---:|:---|:---|\n")
	i := 0
	for _, candidate := range engine.Candidates(c.key, name) {
		if strings.TrimSpace(candidate) == "" {
			continue
		}
		i++
		fmt.Fprintf(&b, "| %d | %s | %s |\n", i, candidate, orcas.NormalizeKey(candidate))
	}

	res := engine.Resolve(c.key, name)
	b.WriteString("\n")
	if res.Found {
		fmt.Fprintf(&b, "Matched **%s**: unit %s\n", res.Matched, res.Config)
	} else {
		fmt.Fprintf(&b, "No match: unit %s\n", res.ConfigOrDefault())
	}
	typ := engine.MetricType(orcas.UnknownType, c.key, name).String()
	if typ == "" {
		typ = "unknown"
	}
	fmt.Fprintf(&b, "\nType: %s\n", typ)

	printMarkdown(b.String())
	return subcommands.ExitSuccess
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
