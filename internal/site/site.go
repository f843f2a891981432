// Package site writes a complete documentation site: one page per API class,
// prototype and section file, plus the static assets of the template set.
package site

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/jcdickinson/kolbendoc/internal/docs"
	"github.com/jcdickinson/kolbendoc/internal/markdown"
	"github.com/jcdickinson/kolbendoc/internal/tmpl"
)

// SectionEmitter post-processes the body of the section with a matching ID.
type SectionEmitter interface {
	ID() string
	Emit(body string, c *docs.Composer) (string, error)
}

type globalFunctions struct{}

func (globalFunctions) ID() string { return docs.GlobalFunctionsSection }

func (globalFunctions) Emit(body string, c *docs.Composer) (string, error) {
	return c.ComposeGlobalFunctions(body, docs.GlobalFunctions())
}

// Options configures a Generator.
type Options struct {
	OutputDir   string
	Articles    []docs.Article
	Source      docs.SourceLinks
	CopyWorkers int
}

// Generator renders and writes every page of one run.
type Generator struct {
	templates  *tmpl.Set
	opts       Options
	emitters   map[string]SectionEmitter
	classes    []docs.ApiClass
	prototypes []docs.ApiPrototype
	composer   *docs.Composer
}

// NewGenerator prepares a run over the extracted descriptors. The built-in
// prototypes are appended to prototypes, and everything is validated before
// any page is written.
func NewGenerator(templates *tmpl.Set, classes []docs.ApiClass, prototypes []docs.ApiPrototype, opts Options) (*Generator, error) {
	all := append(append([]docs.ApiPrototype(nil), prototypes...), docs.BuiltInPrototypes()...)
	if err := docs.Validate(classes, all); err != nil {
		return nil, err
	}
	if opts.Articles == nil {
		opts.Articles = docs.DefaultArticles
	}

	classes = docs.SortClasses(classes)
	all = docs.SortPrototypes(all)
	nav := docs.BuildNav(classes, all, opts.Articles)

	g := &Generator{
		templates:  templates,
		opts:       opts,
		emitters:   make(map[string]SectionEmitter),
		classes:    classes,
		prototypes: all,
		composer:   docs.NewComposer(templates, nav, opts.Source),
	}
	g.Register(globalFunctions{})
	return g, nil
}

// Classes returns the API classes of the run, sorted by name.
func (g *Generator) Classes() []docs.ApiClass { return g.classes }

// Prototypes returns every prototype of the run, built-ins included, sorted
// by name.
func (g *Generator) Prototypes() []docs.ApiPrototype { return g.prototypes }

func (g *Generator) Composer() *docs.Composer { return g.composer }

// Register adds a section emitter, replacing any with the same ID.
func (g *Generator) Register(e SectionEmitter) {
	g.emitters[e.ID()] = e
}

// Generate writes sections, API class pages, prototype pages and assets, in
// that order.
func (g *Generator) Generate(ctx context.Context) error {
	if err := os.MkdirAll(g.opts.OutputDir, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	sections, err := g.templates.Sections()
	if err != nil {
		return err
	}
	for _, s := range sections {
		if err := g.emitSection(s); err != nil {
			return fmt.Errorf("section %s: %w", s.Page, err)
		}
	}

	for _, c := range g.classes {
		body, err := g.composer.ComposeClassPage(c)
		if err != nil {
			return err
		}
		if err := g.writePage(docs.ClassFile(c.Name), c.Name, body); err != nil {
			return err
		}
	}

	for _, p := range g.prototypes {
		body, err := g.composer.ComposePrototypePage(p)
		if err != nil {
			return err
		}
		if err := g.writePage(docs.PrototypeFile(p.Name), p.Name, body); err != nil {
			return err
		}
	}

	return copyAssets(ctx, g.templates.FS(), g.opts.OutputDir, g.opts.CopyWorkers)
}

// RenderSection produces the page content of a section.
func (g *Generator) RenderSection(s tmpl.Section) (string, error) {
	body := s.Body
	if s.Markdown {
		body = markdown.RewriteLinks(body, markdown.TypeLinks(body, docs.PrototypeTarget))
		body = markdown.ToHTML(body)
	}
	if s.ID == "" {
		return body, nil
	}
	e, ok := g.emitters[s.ID]
	if !ok {
		slog.Debug("no emitter for section", "id", s.ID, "page", s.Page)
		return body, nil
	}
	return e.Emit(body, g.composer)
}

func (g *Generator) emitSection(s tmpl.Section) error {
	content, err := g.RenderSection(s)
	if err != nil {
		return err
	}
	return g.writePage(s.Page, s.Title, content)
}

func (g *Generator) writePage(fileName, title, content string) error {
	dest := filepath.Join(g.opts.OutputDir, fileName)
	if err := os.WriteFile(dest, []byte(g.composer.Page(title, content)), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", fileName, err)
	}
	slog.Debug("wrote page", "file", fileName)
	return nil
}
