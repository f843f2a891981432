package docs

import (
	"fmt"
	"slices"
	"strings"

	"github.com/jcdickinson/kolbendoc/internal/tmpl"
)

// Filler fills named templates. tmpl.Set is the production implementation.
type Filler interface {
	Fill(name string, pairs ...tmpl.Pair) string
}

// SourceLinks builds "view source" links for script-defined prototypes.
type SourceLinks struct {
	// RepoRoot is prepended to PrototypePath. Empty disables source links.
	RepoRoot string
	// PrototypePath is the repository path of a prototype's source, with
	// "{name}" replaced by the prototype name.
	PrototypePath string
}

// Link returns the source-link fragment for a prototype.
func (s SourceLinks) Link(p ApiPrototype) string {
	if p.IsBuiltIn {
		return Img("builtin", "Built-in") + " Built-in type"
	}
	if s.RepoRoot == "" {
		return ""
	}
	href := s.RepoRoot + strings.ReplaceAll(s.PrototypePath, "{name}", p.Name)
	return anchor(href, "View source")
}

// Composer assembles full pages from descriptors. It holds only read-only
// state and may be reused for every page of a run.
type Composer struct {
	templates Filler
	nav       string
	source    SourceLinks
}

func NewComposer(templates Filler, nav string, source SourceLinks) *Composer {
	return &Composer{templates: templates, nav: nav, source: source}
}

// Page wraps content in the "page" template.
func (c *Composer) Page(title, content string) string {
	return c.templates.Fill("page",
		tmpl.Pair{Key: "NAV", Value: c.nav},
		tmpl.Pair{Key: "TITLE", Value: title},
		tmpl.Pair{Key: "CONTENT", Value: content},
	)
}

func sortedMethods(ms []ApiMethod) []ApiMethod {
	out := slices.Clone(ms)
	slices.SortStableFunc(out, func(a, b ApiMethod) int { return strings.Compare(a.Name, b.Name) })
	return out
}

func sortedVariables(vs []ApiVariable) []ApiVariable {
	out := slices.Clone(vs)
	slices.SortStableFunc(out, func(a, b ApiVariable) int { return strings.Compare(a.Name, b.Name) })
	return out
}

// indexEntry is one line of a page's table of contents.
func indexEntry(icons, target, text string) string {
	return fmt.Sprintf(`<li>%s <a href="#%s">%s</a></li>`, icons, target, text)
}

// group is one rendered member section of a prototype page.
type group struct {
	title   string
	empty   string
	body    strings.Builder
	entries []string
}

func (g *group) addMethods(owner string, ms []ApiMethod) {
	for _, m := range ms {
		g.body.WriteString(RenderMethod(owner, m))
		g.entries = append(g.entries, indexEntry(Icons(m), MethodAnchor(m), DisplayName(m)))
	}
}

func (g *group) content() string {
	if len(g.entries) == 0 {
		return "-- " + g.empty + " --"
	}
	return g.body.String()
}

// writeIndex appends the group's TOC section; empty groups are omitted.
func (g *group) writeIndex(b *strings.Builder) {
	if len(g.entries) == 0 {
		return
	}
	b.WriteString("<h3>" + g.title + "</h3><ul>")
	b.WriteString(strings.Join(g.entries, "\n"))
	b.WriteString("</ul>")
}

// constructorStub documents the implicit no-argument constructor of a
// prototype that declares none.
func constructorStub() ApiMethod {
	return ApiMethod{
		Name:       "constructor",
		Kind:       Constructor,
		Signatures: []ApiSignature{{ReturnTypes: []string{"void"}}},
	}
}

// ComposePrototypePage renders the body of a prototype page.
func (c *Composer) ComposePrototypePage(p ApiPrototype) (string, error) {
	if err := validateMethods(p.Name, p.Methods); err != nil {
		return "", err
	}

	ctor, ok := p.Constructor()
	if !ok {
		ctor = constructorStub()
	}

	ctorGroup := &group{title: "Constructor", empty: "No constructor"}
	ctorGroup.addMethods(p.Name, []ApiMethod{ctor})

	accessors := &group{title: "Getters & Setters", empty: "No getters or setters"}
	accessors.addMethods(p.Name, sortedMethods(p.MethodsOfKind(Getter)))
	accessors.addMethods(p.Name, sortedMethods(p.MethodsOfKind(Setter)))

	indexers := &group{title: "Indexers", empty: "No indexers"}
	indexers.addMethods(p.Name, sortedMethods(p.MethodsOfKind(IndexerGet)))
	indexers.addMethods(p.Name, sortedMethods(p.MethodsOfKind(IndexerSet)))

	methods := &group{title: "Methods", empty: "No methods"}
	methods.addMethods(p.Name, sortedMethods(p.MethodsOfKind(Standard)))

	variables := &group{title: "Variables", empty: "No variables"}
	for _, v := range sortedVariables(p.Variables) {
		variables.body.WriteString(RenderVariable(p.Name, v))
		variables.entries = append(variables.entries, indexEntry(Img("variable", "Variable"), VariableAnchor(v), v.Name))
	}

	var index strings.Builder
	for _, g := range []*group{ctorGroup, accessors, indexers, methods, variables} {
		g.writeIndex(&index)
	}

	return c.templates.Fill("prototype",
		tmpl.Pair{Key: "NAME", Value: p.Name},
		tmpl.Pair{Key: "DESCRIPTION", Value: p.Description},
		tmpl.Pair{Key: "SOURCE", Value: c.source.Link(p)},
		tmpl.Pair{Key: "INDEX", Value: index.String()},
		tmpl.Pair{Key: "CONSTRUCTOR", Value: ctorGroup.content()},
		tmpl.Pair{Key: "ACCESSORS", Value: accessors.content()},
		tmpl.Pair{Key: "INDEXERS", Value: indexers.content()},
		tmpl.Pair{Key: "METHODS", Value: methods.content()},
		tmpl.Pair{Key: "VARIABLES", Value: variables.content()},
	), nil
}

// staticMethods returns ms sorted by name with every method marked static.
func staticMethods(ms []ApiMethod) []ApiMethod {
	out := sortedMethods(ms)
	for i := range out {
		out[i].IsStatic = true
	}
	return out
}

// ComposeClassPage renders the body of an API class page.
func (c *Composer) ComposeClassPage(cl ApiClass) (string, error) {
	if err := validateMethods(cl.Name, cl.Methods); err != nil {
		return "", err
	}

	methods := &group{title: "Methods", empty: "No methods"}
	methods.addMethods(cl.Name, staticMethods(cl.Methods))

	return c.templates.Fill("apiclass",
		tmpl.Pair{Key: "NAME", Value: cl.Name},
		tmpl.Pair{Key: "METHODLIST", Value: "<ul>" + strings.Join(methods.entries, "\n") + "</ul>"},
		tmpl.Pair{Key: "METHODS", Value: methods.content()},
	), nil
}

// ComposeGlobalFunctions fills a section body's METHODLIST and METHODS
// placeholders with the given functions, which have no owner.
func (c *Composer) ComposeGlobalFunctions(sectionBody string, fns []ApiMethod) (string, error) {
	if err := validateMethods("global functions", fns); err != nil {
		return "", err
	}

	var body strings.Builder
	var entries []string
	for _, m := range staticMethods(fns) {
		body.WriteString(RenderMethod("", m) + "\n")
		entries = append(entries, indexEntry(Icons(m), MethodAnchor(m), m.Name))
	}

	return tmpl.FillString(sectionBody,
		tmpl.Pair{Key: "METHODLIST", Value: "<ul>" + strings.Join(entries, "\n") + "</ul>"},
		tmpl.Pair{Key: "METHODS", Value: body.String()},
	), nil
}
