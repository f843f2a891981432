package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jcdickinson/kolbendoc/internal/docs"
)

func TestConfigDir_XDGSet(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/custom/config")
	got := configDir()
	want := filepath.Join("/custom/config", "kolbendoc")
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestConfigDir_HomeDir(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "")
	got := configDir()
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("cannot determine home dir")
	}
	want := filepath.Join(home, ".config", "kolbendoc")
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestDecode_Defaults(t *testing.T) {
	t.Parallel()

	cfg, err := Decode(map[string]interface{}{})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.OutputDir != "docs" {
		t.Errorf("output dir = %q", cfg.OutputDir)
	}
	if cfg.CopyWorkers != 4 {
		t.Errorf("copy workers = %d", cfg.CopyWorkers)
	}
	if len(cfg.Nav.Articles) != len(docs.DefaultArticles) {
		t.Errorf("articles = %v", cfg.Nav.Articles)
	}
}

func TestDecode_Articles(t *testing.T) {
	t.Parallel()

	cfg, err := Decode(map[string]interface{}{
		"nav": map[string]interface{}{
			"articles": []interface{}{
				"doc-int.html=Int",
				map[string]interface{}{"file": "doc-any.html", "title": "Any"},
			},
		},
		"source": map[string]interface{}{"repo_root": "https://example.com/"},
	})
	if err != nil {
		t.Fatal(err)
	}

	want := []docs.Article{
		{File: "doc-int.html", Title: "Int"},
		{File: "doc-any.html", Title: "Any"},
	}
	if len(cfg.Nav.Articles) != len(want) {
		t.Fatalf("got %v", cfg.Nav.Articles)
	}
	for i := range want {
		if cfg.Nav.Articles[i] != want[i] {
			t.Errorf("article %d = %v, want %v", i, cfg.Nav.Articles[i], want[i])
		}
	}
	if cfg.SourceLinks().RepoRoot != "https://example.com/" {
		t.Errorf("repo root = %q", cfg.SourceLinks().RepoRoot)
	}
}

func TestDecode_BadArticle(t *testing.T) {
	t.Parallel()

	_, err := Decode(map[string]interface{}{
		"nav": map[string]interface{}{"articles": []interface{}{"no-title"}},
	})
	if err == nil {
		t.Fatal("expected error for article without '='")
	}
}
