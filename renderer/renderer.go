package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	"github.com/etnz/orcas"
)

//go:embed *.md
var templates embed.FS

// RenderHistorical renders a historical comparison to markdown.
func RenderHistorical(r *orcas.HistoricalReport) string {
	partials := map[string]string{
		"historical_title":   "historical_title.md",
		"historical_metrics": "historical_metrics.md",
		"historical_summary": "historical_summary.md",
		"historical_check":   "historical_check.md",
	}
	return renderTemplate("historical", "historical.md", partials, r)
}

// RenderSimulation renders a simulation to markdown.
func RenderSimulation(r *orcas.SimulationReport) string {
	partials := map[string]string{
		"simulation_title":       "simulation_title.md",
		"simulation_score":       "simulation_score.md",
		"simulation_adjustments": "simulation_adjustments.md",
	}
	// Nothing to list when the backend rejected or ignored every override.
	if len(r.Adjustments) == 0 {
		partials["simulation_adjustments"] = ""
	}
	return renderTemplate("simulation", "simulation.md", partials, r)
}

// RenderCompare renders a multi-ticker score comparison to markdown.
func RenderCompare(r *orcas.CompareReport) string {
	partials := map[string]string{
		"compare_title":  "compare_title.md",
		"compare_scores": "compare_scores.md",
	}
	return renderTemplate("compare", "compare.md", partials, r)
}

// Render renders any report to markdown.
func Render(r orcas.Tabular) string {
	switch r := r.(type) {
	case *orcas.HistoricalReport:
		return RenderHistorical(r)
	case *orcas.SimulationReport:
		return RenderSimulation(r)
	case *orcas.CompareReport:
		return RenderCompare(r)
	default:
		return renderTables(r)
	}
}

// renderTables is the generic markdown rendition of a report.
func renderTables(r orcas.Tabular) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n", r.Heading())
	for _, t := range r.Tables() {
		fmt.Fprintf(&b, "\n## %s\n\n", t.Title)
		b.WriteString("|")
		for _, c := range t.Columns {
			fmt.Fprintf(&b, " %s |", escape(c))
		}
		b.WriteString("\n|")
		for range t.Columns {
			b.WriteString(":---|")
		}
		b.WriteString("\n")
		for _, row := range t.Rows {
			b.WriteString("|")
			for _, c := range row {
				fmt.Fprintf(&b, " %s |", escape(c))
			}
			b.WriteString("\n")
		}
	}
	return b.String()
}

func escape(cell string) string { return strings.ReplaceAll(cell, "|", `\|`) }

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Funcs(funcs).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		var content []byte
		// An empty file name is a valid case, resulting in an empty template.
		if file != "" {
			var readErr error
			content, readErr = fs.ReadFile(templates, file)
			if readErr != nil {
				return fmt.Sprintf("error reading partial template %q: %v", file, readErr)
			}
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}

var funcs = template.FuncMap{
	"cell": escape,
	"date": func(r orcas.Meta) string { return r.GeneratedAt.Format("2006-01-02 15:04") },
}
