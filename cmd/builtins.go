package cmd

import (
	"fmt"
	"log"

	"github.com/jcdickinson/kolbendoc/internal/docs"
	"github.com/jcdickinson/kolbendoc/internal/extract"
	"github.com/spf13/cobra"
)

var builtinsCmd = &cobra.Command{
	Use:   "builtins",
	Short: "Export the built-in prototype catalog",
	Long: `Write the Array, Boolean, Number, Object and String prototypes in descriptor
export format. Paths ending in .zst are zstd-compressed.`,
	Example: `  kolbendoc builtins
  kolbendoc builtins --output builtins.json.zst`,
	Args: cobra.NoArgs,
	Run:  runBuiltins,
}

var builtinsOutput string

func init() {
	builtinsCmd.Flags().StringVarP(&builtinsOutput, "output", "o", "builtins.json", "export file")
}

func runBuiltins(cmd *cobra.Command, args []string) {
	prototypes := docs.BuiltInPrototypes()
	if err := extract.Save(builtinsOutput, nil, prototypes); err != nil {
		log.Fatalf("failed to export built-ins: %v", err)
	}
	fmt.Printf("wrote %d built-in prototypes to %s\n", len(prototypes), builtinsOutput)
}
