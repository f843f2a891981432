package markdown

import (
	"sort"
	"strings"

	gm "github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/ast"
	"github.com/gomarkdown/markdown/html"
	gmparser "github.com/gomarkdown/markdown/parser"
)

// TypeScheme prefixes link destinations that name a script type rather than
// a page, e.g. [String](type:StringPrototype).
const TypeScheme = "type:"

func parse(src string) ast.Node {
	return gm.Parse([]byte(src), gmparser.NewWithExtensions(
		gmparser.CommonExtensions|gmparser.Autolink,
	))
}

// linkDestinations returns the unique link destinations of src in document
// order.
func linkDestinations(src string) []string {
	seen := make(map[string]bool)
	var dests []string
	ast.WalkFunc(parse(src), func(node ast.Node, entering bool) ast.WalkStatus {
		if !entering {
			return ast.GoToNext
		}
		if link, ok := node.(*ast.Link); ok {
			dest := string(link.Destination)
			if !seen[dest] {
				seen[dest] = true
				dests = append(dests, dest)
			}
		}
		return ast.GoToNext
	})
	return dests
}

// TypeLinks maps every type: link destination in src to the page resolve
// returns for it. Destinations resolve cannot place are left out.
func TypeLinks(src string, resolve func(ref string) (string, bool)) map[string]string {
	links := make(map[string]string)
	for _, dest := range linkDestinations(src) {
		ref, ok := strings.CutPrefix(dest, TypeScheme)
		if !ok {
			continue
		}
		if page, ok := resolve(ref); ok {
			links[dest] = page
		}
	}
	return links
}

// RewriteLinks rewrites markdown link destinations using the provided link map.
// It parses the markdown to AST to find all link destinations, then performs
// targeted string replacements to preserve original formatting.
func RewriteLinks(src string, linkMap map[string]string) string {
	if len(linkMap) == 0 {
		return src
	}

	type replacement struct {
		oldDest string
		newDest string
	}
	var replacements []replacement
	for _, dest := range linkDestinations(src) {
		if newDest, ok := linkMap[dest]; ok {
			replacements = append(replacements, replacement{dest, newDest})
		}
	}

	if len(replacements) == 0 {
		return src
	}

	result := src

	// Inline links: [text](destination), one pass per replacement
	for _, r := range replacements {
		result = strings.ReplaceAll(result, "]("+r.oldDest+")", "]("+r.newDest+")")
	}

	// Reference-style definitions: [ref]: destination. Longest suffix first so
	// a destination that ends with another one is matched whole.
	suffixes := make([]replacement, 0, len(replacements))
	for _, r := range replacements {
		suffixes = append(suffixes, replacement{"]: " + r.oldDest, "]: " + r.newDest})
	}
	sort.SliceStable(suffixes, func(i, j int) bool { return len(suffixes[i].oldDest) > len(suffixes[j].oldDest) })

	lines := strings.Split(result, "\n")
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		for _, s := range suffixes {
			if strings.HasSuffix(trimmed, s.oldDest) {
				lines[i] = strings.Replace(line, s.oldDest, s.newDest, 1)
				break
			}
		}
	}
	return strings.Join(lines, "\n")
}

// ToHTML renders a markdown section body to an HTML fragment.
func ToHTML(src string) string {
	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags})
	return string(gm.Render(parse(src), renderer))
}
