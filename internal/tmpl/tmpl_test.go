package tmpl

import (
	"testing"
	"testing/fstest"
)

func TestFillString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		pairs   []Pair
		want    string
	}{
		{
			name:    "basic",
			content: "<h1>{{NAME}}</h1>{{BODY}}",
			pairs:   []Pair{{"NAME", "Foo"}, {"BODY", "<p>x</p>"}},
			want:    "<h1>Foo</h1><p>x</p>",
		},
		{
			name:    "repeated",
			content: "{{A}}-{{A}}",
			pairs:   []Pair{{"A", "x"}},
			want:    "x-x",
		},
		{
			name:    "unknown_placeholder_kept",
			content: "{{A}} {{B}}",
			pairs:   []Pair{{"A", "x"}},
			want:    "x {{B}}",
		},
		{
			name:    "not_recursive",
			content: "{{A}}|{{B}}",
			pairs:   []Pair{{"A", "{{B}}"}, {"B", "y"}},
			want:    "{{B}}|y",
		},
		{
			name:    "no_pairs",
			content: "{{A}}",
			want:    "{{A}}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FillString(tt.content, tt.pairs...); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	t.Parallel()

	set, err := Load(fstest.MapFS{
		"page.template.html":  {Data: []byte("<main>{{CONTENT}}</main>")},
		"b.section.md":        {Data: []byte("TITLE=B;\nbody b")},
		"a.section.html":      {Data: []byte("ID=X;\nTITLE=A;\nbody a")},
		"style.css":           {Data: []byte("body {}")},
		"assets/img/icon.png": {Data: []byte("png")},
	})
	if err != nil {
		t.Fatal(err)
	}

	if !set.Has("page") || set.Has("style") {
		t.Error("unexpected template set")
	}
	if got := set.Fill("page", Pair{"CONTENT", "hi"}); got != "<main>hi</main>" {
		t.Errorf("Fill = %q", got)
	}
	if got := set.Fill("<b>{{X}}</b>", Pair{"X", "raw"}); got != "<b>raw</b>" {
		t.Errorf("unknown template name should be used as content, got %q", got)
	}

	sections, err := set.Sections()
	if err != nil {
		t.Fatal(err)
	}
	if len(sections) != 2 {
		t.Fatalf("got %d sections", len(sections))
	}
	if sections[0].Page != "a.html" || sections[0].ID != "X" || sections[0].Title != "A" || sections[0].Body != "body a" {
		t.Errorf("section a = %+v", sections[0])
	}
	if sections[1].Page != "b.html" || !sections[1].Markdown {
		t.Errorf("section b = %+v", sections[1])
	}
}

func TestDefault(t *testing.T) {
	t.Parallel()

	set, err := Default()
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"page", "prototype", "apiclass"} {
		if !set.Has(name) {
			t.Errorf("default set missing %s", name)
		}
	}
	sections, err := set.Sections()
	if err != nil {
		t.Fatal(err)
	}
	pages := map[string]Section{}
	for _, s := range sections {
		pages[s.Page] = s
	}
	if s, ok := pages["builtin-global-functions.html"]; !ok || s.ID != "GLOBALFUNCTIONS" {
		t.Errorf("global functions section = %+v", s)
	}
	if _, ok := pages["index.html"]; !ok {
		t.Error("default set has no index page")
	}
}

func TestParseSection(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		file     string
		content  string
		want     Section
	}{
		{
			name:    "full_preamble",
			file:    "builtin-global-functions.section.html",
			content: "ID=GLOBALFUNCTIONS;\nTITLE=Global Functions;\n<h1>x</h1>",
			want:    Section{ID: "GLOBALFUNCTIONS", Title: "Global Functions", Body: "<h1>x</h1>", Page: "builtin-global-functions.html"},
		},
		{
			name:    "no_preamble",
			file:    "plain.section.html",
			content: "<p>a = b;</p>\nTITLE=x;",
			want:    Section{Body: "<p>a = b;</p>\nTITLE=x;", Page: "plain.html"},
		},
		{
			name:    "crlf_markdown",
			file:    "doc-int.section.md",
			content: "TITLE=Int;\r\n# Int\r\ntext",
			want:    Section{Title: "Int", Body: "# Int\ntext", Page: "doc-int.html", Markdown: true},
		},
		{
			name:    "unknown_key_consumed",
			file:    "x.section.html",
			content: "FOO=bar;\nbody",
			want:    Section{Body: "body", Page: "x.html"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseSection(tt.file, tt.content); got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}
