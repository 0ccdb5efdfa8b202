package main

import (
	"fmt"
	"os"

	"github.com/aretw0/swell/internal/cli"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Watch a directory and serve the coalesced change journal",
	Long: `Starts the coalescing daemon: watches a directory as a stand-in node
tree, reduces its notification storms and exposes the journal as a JSON API
with a live SSE feed, pipeline stats and Prometheus metrics.

Hooks configured via --hooks run on every matching change, with the change
passed in SWELL_CHANGE_* environment variables.`,
	Run: func(cmd *cobra.Command, args []string) {
		debug, _ := cmd.Flags().GetBool("debug")
		root, _ := cmd.Flags().GetString("root")
		addr, _ := cmd.Flags().GetString("addr")
		redisAddr, _ := cmd.Flags().GetString("redis")
		journalPath, _ := cmd.Flags().GetString("journal-file")
		hooksPath, _ := cmd.Flags().GetString("hooks")
		redact, _ := cmd.Flags().GetBool("redact")

		opts := cli.ServeOptions{
			Root:        root,
			Addr:        addr,
			RedisAddr:   redisAddr,
			JournalPath: journalPath,
			HooksPath:   hooksPath,
			Redact:      redact,
			Debug:       debug,
		}
		if err := cli.RunServe(opts); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String("root", getEnv("SWELL_WATCH_ROOT", "."), "Directory to watch")
	serveCmd.Flags().String("addr", getEnv("SWELL_ADDR", ":8475"), "HTTP listen address")
	serveCmd.Flags().String("redis", getEnv("SWELL_REDIS_ADDR", ""), "Redis address for a persistent journal")
	serveCmd.Flags().String("journal-file", getEnv("SWELL_JOURNAL_FILE", ""), "File for a persistent journal (redis wins if both are set)")
	serveCmd.Flags().String("hooks", getEnv("SWELL_HOOKS", ""), "Hook config file (yaml or json)")
	serveCmd.Flags().Bool("redact", false, "Hash subject names before journaling")
}
