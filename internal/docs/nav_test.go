package docs

import (
	"strings"
	"testing"
)

func TestBuildNav(t *testing.T) {
	t.Parallel()

	classes := []ApiClass{{Name: "Zoo"}, {Name: "GameStorage"}}
	prototypes := []ApiPrototype{
		{Name: "Player"},
		{Name: "String", IsBuiltIn: true},
		{Name: "Item"},
	}

	got := BuildNav(classes, prototypes, DefaultArticles)

	order := []string{
		`<a href="index.html">Home</a>`,
		"<b>Articles</b>",
		`<a href="doc-int.html">Int</a>`,
		"<b>Built-In types</b>",
		`<a href="builtin-global-functions.html">Global Functions</a>`,
		`<a href="proto-string.html">String</a>`,
		"<b>Api Classes</b>",
		`<a href="api-game-storage.html">GameStorage</a>`,
		`<a href="api-zoo.html">Zoo</a>`,
		"<b>Prototypes</b>",
		`<a href="proto-item.html">Item</a>`,
		`<a href="proto-player.html">Player</a>`,
	}
	last := -1
	for _, w := range order {
		i := strings.Index(got, w)
		if i < 0 {
			t.Fatalf("missing %q in\n%s", w, got)
		}
		if i < last {
			t.Errorf("%q is out of order", w)
		}
		last = i
	}

	if strings.Count(got, `href="proto-string.html"`) != 1 {
		t.Error("built-in prototype should only be listed under built-in types")
	}
	if strings.Count(got, "<details") != strings.Count(got, "</details>") {
		t.Error("unbalanced details elements")
	}
}

func TestBuildNav_Deterministic(t *testing.T) {
	t.Parallel()

	a := BuildNav([]ApiClass{{Name: "B"}, {Name: "A"}}, nil, nil)
	b := BuildNav([]ApiClass{{Name: "A"}, {Name: "B"}}, nil, nil)
	if a != b {
		t.Error("nav depends on input order")
	}
}
