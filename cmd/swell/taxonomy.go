package main

import (
	"fmt"
	"os"

	"github.com/aretw0/swell/internal/cli"
	"github.com/spf13/cobra"
)

// taxonomyCmd represents the taxonomy command
var taxonomyCmd = &cobra.Command{
	Use:   "taxonomy",
	Short: "Show the raw kind taxonomy",
	Long: `Prints the table mapping every raw notification kind to the change it
reduces to, or a Mermaid flowchart of the same mapping.`,
	Run: func(cmd *cobra.Command, args []string) {
		mermaid, _ := cmd.Flags().GetBool("mermaid")
		plain, _ := cmd.Flags().GetBool("plain")

		if err := cli.RunTaxonomy(mermaid, plain); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(taxonomyCmd)

	taxonomyCmd.Flags().Bool("mermaid", false, "Output a Mermaid flowchart instead of the table")
	taxonomyCmd.Flags().Bool("plain", false, "Print raw markdown without terminal rendering")
}
