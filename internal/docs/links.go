package docs

import (
	"fmt"
	"strings"
	"unicode"
)

// articleKeywords have a standalone article page named doc-{keyword}.html.
var articleKeywords = map[string]bool{
	"undefined": true,
	"void":      true,
	"int":       true,
	"any":       true,
}

// primitivePrototypes maps primitive keywords to the built-in prototype
// documenting them.
var primitivePrototypes = map[string]string{
	"bool":   "Boolean",
	"string": "String",
	"number": "Number",
	"object": "Object",
}

// Slug lower-cases name, inserting "-" before every upper-case letter except
// a leading one: "ApiClass" → "api-class".
func Slug(name string) string {
	var b strings.Builder
	b.Grow(len(name) + 4)
	for i, r := range name {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('-')
			}
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}

// PrototypeFile returns the page file name for a prototype.
func PrototypeFile(name string) string {
	return "proto-" + Slug(name) + ".html"
}

// ClassFile returns the page file name for an API class.
func ClassFile(name string) string {
	return "api-" + Slug(name) + ".html"
}

// ArticleFile returns the page file name for a keyword article.
func ArticleFile(keyword string) string {
	return "doc-" + keyword + ".html"
}

func anchor(href, text string) string {
	return fmt.Sprintf(`<a href="%s">%s</a>`, href, text)
}

// LinkType renders a display type name as HTML, linking it to the page that
// documents it. Names that match no rule are returned unchanged.
func LinkType(display string) string {
	if elem, ok := strings.CutSuffix(display, arraySuffix); ok {
		return LinkType(elem) + anchor(PrototypeFile("Array"), arraySuffix)
	}
	if proto, ok := strings.CutSuffix(display, prototypeSuffix); ok && proto != "" {
		return anchor(PrototypeFile(proto), proto)
	}
	if articleKeywords[display] {
		return anchor(ArticleFile(display), display)
	}
	if proto, ok := primitivePrototypes[display]; ok {
		return anchor(PrototypeFile(proto), display)
	}
	return display
}

// PrototypeTarget resolves a type reference such as "StringPrototype",
// "string" or "Foo" to the page documenting it, for links written by hand in
// section text. It reports false for names with no page.
func PrototypeTarget(ref string) (string, bool) {
	ref = strings.TrimSuffix(ref, arraySuffix)
	if proto, ok := strings.CutSuffix(ref, prototypeSuffix); ok && proto != "" {
		return PrototypeFile(proto), true
	}
	if articleKeywords[ref] {
		return ArticleFile(ref), true
	}
	if proto, ok := primitivePrototypes[ref]; ok {
		return PrototypeFile(proto), true
	}
	if ref != "" && unicode.IsUpper([]rune(ref)[0]) {
		return PrototypeFile(ref), true
	}
	return "", false
}
