package docs

import (
	"strings"
	"testing"
)

func voidSig(names ...string) ApiSignature {
	types := make([]string, len(names))
	for i := range types {
		types[i] = "int"
	}
	return ApiSignature{ParamNames: names, ParamTypes: types, ReturnTypes: []string{"void"}}
}

func TestRenderMethod(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		owner   string
		method  ApiMethod
		want    []string
		notWant []string
	}{
		{
			name:   "void_method",
			owner:  "Player",
			method: ApiMethod{Name: "heal", Signatures: []ApiSignature{voidSig("amount")}},
			want:   []string{`<div id="method-heal">`, "<b>heal</b>", "Usage: p.heal(amount);"},
			notWant: []string{
				"result =",
				"Signature 1:",
			},
		},
		{
			name:  "returning_method",
			owner: "Player",
			method: ApiMethod{Name: "name", Description: "The name.", Signatures: []ApiSignature{
				{ReturnTypes: []string{"string"}},
			}},
			want: []string{"<i>The name.</i>", varKeyword + " result = p.name();", "Arguments: <i>none</i>"},
		},
		{
			name:   "static_method",
			owner:  "GameStorage",
			method: ApiMethod{Name: "save", IsStatic: true, Signatures: []ApiSignature{voidSig()}},
			want:   []string{"GameStorage.save();", `alt="Static"`},
		},
		{
			name:  "overloads",
			owner: "Player",
			method: ApiMethod{Name: "move", Signatures: []ApiSignature{
				voidSig("x"),
				voidSig("x", "y"),
			}},
			want: []string{"Signature 1:", "Signature 2:", "p.move(x);", "p.move(x, y);"},
		},
		{
			name:   "constructor",
			owner:  "Player",
			method: ApiMethod{Name: "constructor", Kind: Constructor, Signatures: []ApiSignature{voidSig("hp")}},
			want:   []string{`<div id="ctor-constructor">`, varKeyword + " p = new Player(hp);"},
			notWant: []string{
				"Return type:",
				`alt="Static"`,
			},
		},
		{
			name:   "getter",
			owner:  "Player",
			method: ApiMethod{Name: "health", Kind: Getter, Signatures: []ApiSignature{{ReturnTypes: []string{"int"}}}},
			want:   []string{`<div id="get-health">`, varKeyword + " health = p.health;", `alt="Getter"`},
		},
		{
			name:  "getter_two_signatures",
			owner: "Player",
			method: ApiMethod{Name: "health", Kind: Getter, Signatures: []ApiSignature{
				{ReturnTypes: []string{"int"}},
				{ReturnTypes: []string{"number"}},
			}},
			want:    []string{`<div id="get-health">`, "<b>health</b>"},
			notWant: []string{"Usage:", "<code>"},
		},
		{
			name:   "setter",
			owner:  "Player",
			method: ApiMethod{Name: "health", Kind: Setter, Signatures: []ApiSignature{voidSig("value")}},
			want:   []string{`<div id="set-health">`, "p.health = health;", `<a href="doc-int.html">int</a>`},
		},
		{
			name:  "indexer_get",
			owner: "Array",
			method: ApiMethod{Name: "indexer", Kind: IndexerGet, Signatures: []ApiSignature{
				{ParamNames: []string{"index"}, ParamTypes: []string{"int"}, ReturnTypes: []string{"any"}},
			}},
			want: []string{`<div id="index-get-indexer">`, "<b>(get) indexer</b>", varKeyword + " value = a[index];"},
		},
		{
			name:   "indexer_set",
			owner:  "Array",
			method: ApiMethod{Name: "indexer", Kind: IndexerSet, Signatures: []ApiSignature{voidSig("index")}},
			want:   []string{`<div id="index-set-indexer">`, "<b>(set) indexer</b>", "a[index] = value;"},
		},
		{
			name:   "global_function",
			owner:  "",
			method: ApiMethod{Name: "sync", IsStatic: true, Signatures: []ApiSignature{voidSig()}},
			want:   []string{"Usage: sync();"},
			notWant: []string{
				".sync(",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RenderMethod(tt.owner, tt.method)
			if !strings.HasSuffix(got, "</div><hr />") {
				t.Errorf("block does not end with a rule: %s", got)
			}
			for _, w := range tt.want {
				if !strings.Contains(got, w) {
					t.Errorf("missing %q in\n%s", w, got)
				}
			}
			for _, w := range tt.notWant {
				if strings.Contains(got, w) {
					t.Errorf("unexpected %q in\n%s", w, got)
				}
			}
		})
	}
}

func TestRenderVariable(t *testing.T) {
	t.Parallel()

	got := RenderVariable("Player", ApiVariable{Name: "score", Type: "number"})
	for _, w := range []string{
		`<div id="var-score">`,
		`<a href="proto-number.html">number</a>`,
		"- get: " + varKeyword + " score = p.score;",
		"- set: p.score = score;",
	} {
		if !strings.Contains(got, w) {
			t.Errorf("missing %q in\n%s", w, got)
		}
	}
}
