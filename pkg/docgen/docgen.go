// Package docgen renders component patterns as Markdown reference documents.
package docgen

import (
	"bytes"
	"fmt"
	"sort"
	"strings"
	"text/template"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/gnana997/uipatterns/pkg/patterns"
)

// DefaultCacheSize bounds the rendered-document cache. The bundled library
// has eight patterns; external libraries may carry more.
const DefaultCacheSize = 64

const patternTemplate = `# {{.Name}}

{{.Description}}

## Anatomy
{{range .AnatomyParts}}
- {{.}}{{end}}
{{if .Slots}}
Slots: {{.Slots}}
{{end}}{{if .Variants}}
## Variants

{{.Variants}}
{{end}}{{if .Sizes}}
## Sizes

{{.Sizes}}
{{end}}
## States
{{range .States}}
### {{.Name}}

{{.Description}}
{{range .Styles}}
- ` + "`{{.}}`" + `{{end}}
{{end}}
## Accessibility

### Keyboard
{{range .Keyboard}}
- {{.}}{{end}}

### Screen reader
{{range .ScreenReader}}
- {{.}}{{end}}

### Focus
{{range .Focus}}
- {{.}}{{end}}
{{if .AriaRoles}}
### ARIA

Roles: {{.AriaRoles}}
{{range .AriaAttributes}}
- {{.}}{{end}}
{{end}}
## Usage

### Use when
{{range .When}}
- {{.}}{{end}}

### Avoid when
{{range .WhenNot}}
- {{.}}{{end}}
{{if .Examples}}
### Examples
{{range .Examples}}
- {{.}}{{end}}
{{end}}{{if .CodeExample}}
## Code

` + "```html\n{{.CodeExample}}\n```" + `
{{end}}`

// patternView is the flattened form a pattern is rendered from. Everything
// needing ordering or formatting decisions is resolved here, not in the
// template.
type patternView struct {
	Name           string
	Description    string
	AnatomyParts   []string
	Slots          string
	Variants       string
	Sizes          string
	States         []stateView
	Keyboard       []string
	ScreenReader   []string
	Focus          []string
	AriaRoles      string
	AriaAttributes []string
	When           []string
	WhenNot        []string
	Examples       []string
	CodeExample    string
}

type stateView struct {
	Name        string
	Description string
	Styles      []string
}

// Generator renders patterns to Markdown, caching rendered documents.
// Safe for concurrent use; the cache is synchronized and the underlying
// library is immutable.
type Generator struct {
	query *patterns.QueryService
	tmpl  *template.Template
	cache *lru.Cache[patterns.ComponentName, string]
}

// NewGenerator creates a Generator over the given QueryService.
func NewGenerator(qs *patterns.QueryService) (*Generator, error) {
	cache, err := lru.New[patterns.ComponentName, string](DefaultCacheSize)
	if err != nil {
		return nil, fmt.Errorf("docgen: create cache: %w", err)
	}

	tmpl, err := template.New("pattern").Parse(patternTemplate)
	if err != nil {
		return nil, fmt.Errorf("docgen: parse template: %w", err)
	}

	return &Generator{query: qs, tmpl: tmpl, cache: cache}, nil
}

// Render returns the Markdown document for one component pattern.
func (g *Generator) Render(name patterns.ComponentName) (string, error) {
	if doc, ok := g.cache.Get(name); ok {
		return doc, nil
	}

	p, err := g.query.GetComponentPattern(name)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := g.tmpl.Execute(&buf, buildView(p)); err != nil {
		return "", fmt.Errorf("docgen: render %q: %w", name, err)
	}

	doc := buf.String()
	g.cache.Add(name, doc)
	return doc, nil
}

// RenderAll renders every pattern in the library, concatenated in library
// order with horizontal rules between documents.
func (g *Generator) RenderAll() (string, error) {
	parts := make([]string, 0, len(g.query.Library.Patterns))
	for _, p := range g.query.Library.Patterns {
		doc, err := g.Render(p.Name)
		if err != nil {
			return "", err
		}
		parts = append(parts, doc)
	}
	return strings.Join(parts, "\n---\n\n"), nil
}

func buildView(p *patterns.ComponentPattern) *patternView {
	required := make(map[string]bool, len(p.Anatomy.Required))
	for _, part := range p.Anatomy.Required {
		required[part] = true
	}
	optional := make(map[string]bool, len(p.Anatomy.Optional))
	for _, part := range p.Anatomy.Optional {
		optional[part] = true
	}

	parts := make([]string, 0, len(p.Anatomy.Structure))
	for _, part := range p.Anatomy.Structure {
		switch {
		case required[part]:
			parts = append(parts, part+" (required)")
		case optional[part]:
			parts = append(parts, part+" (optional)")
		default:
			parts = append(parts, part)
		}
	}

	v := &patternView{
		Name:         string(p.Name),
		Description:  p.Description,
		AnatomyParts: parts,
		Slots:        strings.Join(p.Anatomy.Slots, ", "),
		Keyboard:     p.Accessibility.Keyboard,
		ScreenReader: p.Accessibility.ScreenReader,
		Focus:        p.Accessibility.Focus,
		When:         p.Usage.When,
		WhenNot:      p.Usage.WhenNot,
		Examples:     p.Usage.Examples,
		CodeExample:  p.CodeExample,
	}

	variants := make([]string, 0, len(p.Variants))
	for _, variant := range p.Variants {
		variants = append(variants, string(variant))
	}
	v.Variants = strings.Join(variants, ", ")

	sizes := make([]string, 0, len(p.Sizes))
	for _, size := range p.Sizes {
		sizes = append(sizes, string(size))
	}
	v.Sizes = strings.Join(sizes, ", ")

	// States render in canonical order, not map order.
	for _, state := range patterns.AllStates {
		ss := p.States[state]
		sv := stateView{Name: string(state), Description: ss.Description}
		for _, prop := range sortedKeys(ss.Styles) {
			sv.Styles = append(sv.Styles, prop+": "+ss.Styles[prop])
		}
		v.States = append(v.States, sv)
	}

	if p.Accessibility.Aria != nil {
		v.AriaRoles = strings.Join(p.Accessibility.Aria.Roles, ", ")
		for _, attr := range sortedKeys(p.Accessibility.Aria.Attributes) {
			v.AriaAttributes = append(v.AriaAttributes, attr+": "+p.Accessibility.Aria.Attributes[attr])
		}
	}

	return v
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
