package tmpl

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
)

//go:embed defaults
var defaults embed.FS

const (
	templateExt = ".template.html"
	sectionMark = ".section."
)

// Pair is one placeholder substitution: {{Key}} is replaced by Value.
type Pair struct {
	Key   string
	Value string
}

// Set holds the templates and section files of a template directory. It is
// read-only after Load.
type Set struct {
	fsys      fs.FS
	templates map[string]string
	sections  []string
}

// Default returns the template set embedded in the binary.
func Default() (*Set, error) {
	sub, err := fs.Sub(defaults, "defaults")
	if err != nil {
		return nil, fmt.Errorf("opening embedded templates: %w", err)
	}
	return Load(sub)
}

// Load reads every *.template.html file at the root of fsys and records the
// *.section.* files.
func Load(fsys fs.FS) (*Set, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("reading template directory: %w", err)
	}

	s := &Set{fsys: fsys, templates: make(map[string]string)}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		switch {
		case strings.HasSuffix(name, templateExt):
			data, err := fs.ReadFile(fsys, name)
			if err != nil {
				return nil, fmt.Errorf("reading template %s: %w", name, err)
			}
			s.templates[strings.TrimSuffix(name, templateExt)] = string(data)
		case strings.Contains(name, sectionMark):
			s.sections = append(s.sections, name)
		}
	}
	sort.Strings(s.sections)
	return s, nil
}

// FS returns the file system the set was loaded from, for copying assets.
func (s *Set) FS() fs.FS { return s.fsys }

// Has reports whether a template with the given id was loaded.
func (s *Set) Has(name string) bool {
	_, ok := s.templates[name]
	return ok
}

// Fill substitutes pairs into the named template. An unknown name is used as
// the template content itself.
func (s *Set) Fill(name string, pairs ...Pair) string {
	content, ok := s.templates[name]
	if !ok {
		content = name
	}
	return FillString(content, pairs...)
}

// FillString replaces every {{Key}} in content in a single pass, so
// substituted values are never rescanned. Placeholders without a pair are
// left intact.
func FillString(content string, pairs ...Pair) string {
	if len(pairs) == 0 {
		return content
	}
	oldnew := make([]string, 0, len(pairs)*2)
	for _, p := range pairs {
		oldnew = append(oldnew, "{{"+p.Key+"}}", p.Value)
	}
	return strings.NewReplacer(oldnew...).Replace(content)
}

// Sections parses every section file of the set, ordered by file name.
func (s *Set) Sections() ([]Section, error) {
	out := make([]Section, 0, len(s.sections))
	for _, name := range s.sections {
		data, err := fs.ReadFile(s.fsys, name)
		if err != nil {
			return nil, fmt.Errorf("reading section %s: %w", name, err)
		}
		out = append(out, ParseSection(path.Base(name), string(data)))
	}
	return out, nil
}
