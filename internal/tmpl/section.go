package tmpl

import (
	"regexp"
	"strings"
)

// Section is a hand-written page: a KEY=value; preamble followed by a body.
type Section struct {
	// ID selects a section emitter that post-processes the body.
	ID    string
	Title string
	Body  string
	// Page is the output file name: the section file name with its
	// ".section.*" suffix replaced by ".html".
	Page string
	// Markdown is set for .section.md files.
	Markdown bool
}

var preambleRe = regexp.MustCompile(`^.*?=.*?;$`)

// ParseSection splits a section file into its preamble keys and body.
// Unknown keys are ignored.
func ParseSection(fileName, content string) Section {
	base, ext, _ := strings.Cut(fileName, sectionMark)
	s := Section{
		Page:     base + ".html",
		Markdown: ext == "md",
	}

	lines := strings.Split(strings.ReplaceAll(content, "\r\n", "\n"), "\n")
	for len(lines) > 0 && preambleRe.MatchString(lines[0]) {
		key, arg, _ := strings.Cut(lines[0], "=")
		arg = strings.TrimSuffix(arg, ";")
		switch key {
		case "ID":
			s.ID = arg
		case "TITLE":
			s.Title = arg
		}
		lines = lines[1:]
	}
	s.Body = strings.Join(lines, "\n")
	return s
}
