// Package docs embeds the orcas documentation topics shown by `orcas topic`.
package docs

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

//go:embed *.md
var docs embed.FS

// Index is the topic listing every other topic. It is not part of Topics.
const Index = "readme"

// Topic is one documentation page.
type Topic struct {
	Name  string // what `orcas topic` takes, e.g. "units"
	Title string // the first heading of the page
}

// Topics lists the documentation topics in name order.
func Topics() ([]Topic, error) {
	names, err := GetAllTopics()
	if err != nil {
		return nil, err
	}
	topics := make([]Topic, 0, len(names))
	for _, name := range names {
		content, err := docs.ReadFile(name + ".md")
		if err != nil {
			return nil, err
		}
		topics = append(topics, Topic{Name: name, Title: title(content)})
	}
	return topics, nil
}

// GetAllTopics returns the names of every topic but the index, sorted.
func GetAllTopics() ([]string, error) {
	files, err := fs.Glob(docs, "*.md")
	if err != nil {
		return nil, err
	}
	var names []string
	for _, f := range files {
		if name := strings.TrimSuffix(path.Base(f), ".md"); name != Index {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	return names, nil
}

// GetTopic returns the markdown of a topic. Names are case-insensitive and an
// optional ".md" suffix is accepted.
func GetTopic(name string) (string, error) {
	name = strings.TrimSuffix(strings.ToLower(strings.TrimSpace(name)), ".md")
	content, err := docs.ReadFile(name + ".md")
	if err != nil {
		all, _ := GetAllTopics()
		return "", fmt.Errorf("unknown topic %q, available: %s", name, strings.Join(all, ", "))
	}
	return string(content), nil
}

// GetTopics concatenates several topics. "*" stands for every topic.
func GetTopics(names ...string) (string, error) {
	var expanded []string
	for _, name := range names {
		if name != "*" {
			expanded = append(expanded, name)
			continue
		}
		all, err := GetAllTopics()
		if err != nil {
			return "", err
		}
		expanded = append(expanded, all...)
	}

	var b strings.Builder
	for _, name := range expanded {
		content, err := GetTopic(name)
		if err != nil {
			return "", err
		}
		b.WriteString(content)
		b.WriteString("\n")
	}
	return b.String(), nil
}

// List renders the topics as a markdown table.
func List() (string, error) {
	topics, err := Topics()
	if err != nil {
		return "", err
	}
	var b strings.Builder
	b.WriteString("| Topic | Title |\n|:---|:---|\n")
	for _, t := range topics {
		fmt.Fprintf(&b, "| %s | %s |\n", t.Name, t.Title)
	}
	return b.String(), nil
}

// title returns the text of the first level 1 heading, if any.
func title(source []byte) string {
	doc := goldmark.DefaultParser().Parse(text.NewReader(source))
	var b strings.Builder
	ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		h, ok := n.(*ast.Heading)
		if !entering || !ok || h.Level != 1 {
			return ast.WalkContinue, nil
		}
		for c := h.FirstChild(); c != nil; c = c.NextSibling() {
			writeText(&b, c, source)
		}
		return ast.WalkStop, nil
	})
	return strings.TrimSpace(b.String())
}

func writeText(b *strings.Builder, n ast.Node, source []byte) {
	if t, ok := n.(*ast.Text); ok {
		b.Write(t.Segment.Value(source))
		return
	}
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		writeText(b, c, source)
	}
}
