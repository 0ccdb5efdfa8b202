package main

import (
	"fmt"
	"os"

	"github.com/aretw0/swell/internal/cli"
	"github.com/spf13/cobra"
)

// replayCmd represents the replay command
var replayCmd = &cobra.Command{
	Use:   "replay FILE",
	Short: "Replay a recorded session fixture through the pipeline",
	Long: `Reads a YAML session fixture, feeds every raw event through the
coalescing pipeline and prints a report of the reduced changes.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		debug, _ := cmd.Flags().GetBool("debug")
		journal, _ := cmd.Flags().GetString("journal")
		redisAddr, _ := cmd.Flags().GetString("redis")
		journalPath, _ := cmd.Flags().GetString("journal-file")
		plain, _ := cmd.Flags().GetBool("plain")

		opts := cli.ReplayOptions{
			Journal:     journal,
			RedisAddr:   redisAddr,
			JournalPath: journalPath,
			Plain:       plain,
			Debug:       debug,
		}
		if err := cli.RunReplay(args[0], opts); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(replayCmd)

	replayCmd.Flags().String("journal", "memory", "Journal backend: 'memory', 'redis' or 'file'")
	replayCmd.Flags().String("redis", getEnv("SWELL_REDIS_ADDR", ""), "Redis address for the redis journal")
	replayCmd.Flags().String("journal-file", getEnv("SWELL_JOURNAL_FILE", ""), "File for the file journal")
	replayCmd.Flags().Bool("plain", false, "Print the report as raw markdown")
}
