package cmd

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jcdickinson/kolbendoc/internal/config"
	"github.com/jcdickinson/kolbendoc/internal/extract"
	"github.com/jcdickinson/kolbendoc/internal/site"
	"github.com/jcdickinson/kolbendoc/internal/tmpl"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Write the documentation site",
	Long: `Load the descriptor export, render one page per API class, prototype and
section file, and copy the style sheet and assets into the output directory.`,
	Example: `  kolbendoc generate --input api.json
  kolbendoc generate --input api.json.zst --output site --templates ./templates`,
	Run: runGenerate,
}

func init() {
	addSiteFlags(generateCmd)
}

// addSiteFlags registers the flags that override config keys when loading
// the descriptor set.
func addSiteFlags(c *cobra.Command) {
	c.Flags().StringP("input", "i", "", "descriptor export (.json or .json.zst)")
	c.Flags().StringP("output", "o", "", "output directory")
	c.Flags().StringP("templates", "t", "", "template directory (default: embedded templates)")
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	overrides := map[string]*string{
		"input":     &cfg.Input,
		"output":    &cfg.OutputDir,
		"templates": &cfg.TemplatesDir,
	}
	for name, dst := range overrides {
		if cmd.Flags().Changed(name) {
			*dst, _ = cmd.Flags().GetString(name)
		}
	}
	return cfg, nil
}

func loadTemplates(dir string) (*tmpl.Set, error) {
	if dir == "" {
		return tmpl.Default()
	}
	return tmpl.Load(os.DirFS(dir))
}

// loadGenerator reads the configured templates and descriptor export.
func loadGenerator(cmd *cobra.Command) (*site.Generator, *config.Config, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}

	templates, err := loadTemplates(cfg.TemplatesDir)
	if err != nil {
		return nil, nil, fmt.Errorf("loading templates: %w", err)
	}

	classes, prototypes, err := extract.Load(cfg.Input)
	if err != nil {
		return nil, nil, err
	}
	slog.Debug("loaded descriptors", "input", cfg.Input, "classes", len(classes), "prototypes", len(prototypes))

	g, err := site.NewGenerator(templates, classes, prototypes, site.Options{
		OutputDir:   cfg.OutputDir,
		Articles:    cfg.Nav.Articles,
		Source:      cfg.SourceLinks(),
		CopyWorkers: cfg.CopyWorkers,
	})
	if err != nil {
		return nil, nil, err
	}
	return g, cfg, nil
}

func runGenerate(cmd *cobra.Command, args []string) {
	g, cfg, err := loadGenerator(cmd)
	if err != nil {
		log.Fatalf("failed to prepare site: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := g.Generate(ctx); err != nil {
		log.Fatalf("failed to generate site: %v", err)
	}
	fmt.Printf("wrote %d API classes and %d prototypes to %s\n", len(g.Classes()), len(g.Prototypes()), cfg.OutputDir)
}
