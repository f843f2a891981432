package cmd

import (
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var (
	debug   bool
	version = "dev"
)

var rootCmd = &cobra.Command{
	Use:   "kolbendoc",
	Short: "Generate the Kolben script API reference site",
	Long: `Render API classes, prototypes and hand-written sections into a static HTML
documentation site. Running without a subcommand is the same as "generate".`,
	Version: version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogging()
	},
	Run: runGenerate,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("command failed: %v", err)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "log every written page")
	addSiteFlags(rootCmd)

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(builtinsCmd)
	rootCmd.AddCommand(slugCmd)
	rootCmd.AddCommand(mcpCmd)
}

func setupLogging() {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

func waitForSignal(errCh chan error) error {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigs:
		log.Printf("received signal: %s", sig)
		return nil
	case err := <-errCh:
		return err
	}
}
