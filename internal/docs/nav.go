package docs

import (
	"slices"
	"strings"
)

// Article is a hand-written page listed under "Articles" in the navigation.
type Article struct {
	File  string `mapstructure:"file" json:"file"`
	Title string `mapstructure:"title" json:"title"`
}

// DefaultArticles are the keyword articles every generated site links to.
var DefaultArticles = []Article{
	{File: "doc-proto-and-apiclass.html", Title: "Prototypes and Api Classes"},
	{File: "doc-int.html", Title: "Int"},
	{File: "doc-void.html", Title: "Void"},
	{File: "doc-any.html", Title: "Any"},
	{File: "doc-undefined.html", Title: "Undefined"},
}

// GlobalFunctionsFile is the page holding the global functions section.
const GlobalFunctionsFile = "builtin-global-functions.html"

func navItem(b *strings.Builder, img, href, text string) {
	b.WriteString("<li>" + Img(img, "") + " " + anchor(href, text) + "</li>")
}

func navFolder(b *strings.Builder, title string, open bool) {
	if open {
		b.WriteString("<details open>")
	} else {
		b.WriteString("<details>")
	}
	b.WriteString("<summary>" + Img("folder", "") + " <b>" + title + "</b></summary><ul>")
}

// SortClasses returns classes ordered by name.
func SortClasses(classes []ApiClass) []ApiClass {
	out := slices.Clone(classes)
	slices.SortStableFunc(out, func(a, b ApiClass) int { return strings.Compare(a.Name, b.Name) })
	return out
}

// SortPrototypes returns prototypes ordered by name.
func SortPrototypes(prototypes []ApiPrototype) []ApiPrototype {
	out := slices.Clone(prototypes)
	slices.SortStableFunc(out, func(a, b ApiPrototype) int { return strings.Compare(a.Name, b.Name) })
	return out
}

// BuildNav renders the navigation tree inserted into every page: Home,
// Articles, Built-in types, Api Classes and Prototypes, in that order.
func BuildNav(classes []ApiClass, prototypes []ApiPrototype, articles []Article) string {
	classes = SortClasses(classes)
	prototypes = SortPrototypes(prototypes)

	var b strings.Builder
	b.WriteString("<ul>")
	navItem(&b, "home", "index.html", "Home")
	b.WriteString("</ul>")

	navFolder(&b, "Articles", false)
	for _, a := range articles {
		navItem(&b, "document", a.File, a.Title)
	}
	b.WriteString("</ul></details>")

	navFolder(&b, "Built-In types", true)
	navItem(&b, "static", GlobalFunctionsFile, "Global Functions")
	for _, p := range prototypes {
		if p.IsBuiltIn {
			navItem(&b, "prototype", PrototypeFile(p.Name), p.Name)
		}
	}
	b.WriteString("</ul></details>")

	navFolder(&b, "Api Classes", true)
	for _, c := range classes {
		navItem(&b, "apiclass", ClassFile(c.Name), c.Name)
	}
	b.WriteString("</ul></details>")

	navFolder(&b, "Prototypes", true)
	for _, p := range prototypes {
		if !p.IsBuiltIn {
			navItem(&b, "prototype", PrototypeFile(p.Name), p.Name)
		}
	}
	b.WriteString("</ul></details>")

	return b.String()
}
