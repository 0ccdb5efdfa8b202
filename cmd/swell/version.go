package main

import (
	"fmt"
	"strings"

	swell "github.com/aretw0/swell"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of swell",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("swell version %s\n", strings.TrimSpace(swell.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
