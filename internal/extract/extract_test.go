package extract

import (
	"errors"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/jcdickinson/kolbendoc/internal/docs"
)

const sampleExport = `{
  "classes": [
    {"name": "Storage", "methods": [
      {"name": "get", "function_type": "standard", "signatures": [
        {"param_names": ["key"], "param_types": ["String"], "return_types": ["NetUndefined", "String"]}
      ]}
    ]}
  ],
  "prototypes": [
    {"name": "Player", "methods": [
      {"name": "constructor", "function_type": "constructor", "signatures": [
        {"param_names": [], "param_types": [], "return_types": ["NetUndefined"]}
      ]},
      {"name": "items", "function_type": "getter", "signatures": [
        {"param_names": [], "param_types": [], "return_types": ["ItemPrototype[]"]}
      ]}
    ], "variables": [{"name": "level", "type": "Int32"}]}
  ]
}`

func TestDecode(t *testing.T) {
	t.Parallel()

	classes, prototypes, err := Decode(strings.NewReader(sampleExport))
	if err != nil {
		t.Fatal(err)
	}

	if len(classes) != 1 || len(prototypes) != 1 {
		t.Fatalf("got %d classes, %d prototypes", len(classes), len(prototypes))
	}

	get := classes[0].Methods[0]
	if !get.IsStatic {
		t.Error("api class methods must be static")
	}
	if got := get.Signatures[0].ParamTypes; !slices.Equal(got, []string{"string"}) {
		t.Errorf("param types = %v", got)
	}
	if got := get.Signatures[0].ReturnTypes; !slices.Equal(got, []string{"undefined", "string"}) {
		t.Errorf("return types = %v", got)
	}

	player := prototypes[0]
	if player.Methods[0].Kind != docs.Constructor {
		t.Errorf("kind = %v, want constructor", player.Methods[0].Kind)
	}
	if got := player.Methods[0].Signatures[0].ReturnTypes; !slices.Equal(got, []string{"void"}) {
		t.Errorf("constructor return types = %v", got)
	}
	if got := player.Methods[1].Signatures[0].ReturnTypes; !slices.Equal(got, []string{"ItemPrototype[]"}) {
		t.Errorf("prototype references must pass through, got %v", got)
	}
	if player.Variables[0].Type != "int" {
		t.Errorf("variable type = %q", player.Variables[0].Type)
	}
}

func TestDecode_RejectsMalformedSignature(t *testing.T) {
	t.Parallel()

	src := `{"classes": [{"name": "A", "methods": [{"name": "f", "function_type": "standard", "signatures": [
		{"param_names": ["a"], "param_types": ["String"], "return_types": ["String"], "optional_num": 2}
	]}]}]}`
	_, _, err := Decode(strings.NewReader(src))
	if !errors.Is(err, docs.ErrInvalidSignature) {
		t.Fatalf("expected ErrInvalidSignature, got %v", err)
	}
}

func TestDecode_UnknownKind(t *testing.T) {
	t.Parallel()

	src := `{"prototypes": [{"name": "A", "methods": [{"name": "f", "function_type": "operator", "signatures": []}]}]}`
	if _, _, err := Decode(strings.NewReader(src)); err == nil {
		t.Fatal("expected error for unknown function type")
	}
}

func TestSaveLoad_Compressed(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "out", "builtins.json.zst")
	if err := Save(path, nil, docs.BuiltInPrototypes()); err != nil {
		t.Fatal(err)
	}

	_, prototypes, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	want := docs.BuiltInPrototypes()
	if len(prototypes) != len(want) {
		t.Fatalf("got %d prototypes, want %d", len(prototypes), len(want))
	}
	for i := range want {
		if prototypes[i].Name != want[i].Name || len(prototypes[i].Methods) != len(want[i].Methods) {
			t.Errorf("prototype %d: got %s with %d methods", i, prototypes[i].Name, len(prototypes[i].Methods))
		}
	}
}

func TestLoad_Missing(t *testing.T) {
	t.Parallel()

	if _, _, err := Load(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
