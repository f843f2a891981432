package cmd

import (
	"fmt"

	"github.com/jcdickinson/kolbendoc/internal/docs"
	"github.com/spf13/cobra"
)

var slugCmd = &cobra.Command{
	Use:   "slug <name> [name ...]",
	Short: "Print the page names generated for type names",
	Example: `  kolbendoc slug GameStorage NpcEntity
  kolbendoc slug --link ItemPrototype[]`,
	Args: cobra.MinimumNArgs(1),
	Run:  runSlug,
}

var slugLink bool

func init() {
	slugCmd.Flags().BoolVar(&slugLink, "link", false, "print the linked HTML for display type names instead")
}

func runSlug(cmd *cobra.Command, args []string) {
	for _, name := range args {
		if slugLink {
			fmt.Printf("%s\t%s\n", name, docs.LinkType(name))
			continue
		}
		fmt.Printf("%s\t%s\t%s\n", name, docs.ClassFile(name), docs.PrototypeFile(name))
	}
}
