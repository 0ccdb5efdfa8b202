package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/aretw0/swell/internal/cli"
	"github.com/aretw0/swell/internal/logging"
	"github.com/aretw0/swell/pkg/adapters/mcp"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the Model Context Protocol (MCP) server",
	Long: `Exposes the change journal and the kind taxonomy as an MCP Server.
This allows AI agents to query recent changes and classify raw kinds as tools.

Supported Transports:
- stdio (default): Uses Standard Input/Output. Ideal for local process integration.
- sse: Uses Server-Sent Events over HTTP. Ideal for remote agents or debuggers.`,
	Run: func(cmd *cobra.Command, args []string) {
		transport, _ := cmd.Flags().GetString("transport")
		port, _ := cmd.Flags().GetInt("port")
		redisAddr, _ := cmd.Flags().GetString("redis")
		journalPath, _ := cmd.Flags().GetString("journal-file")

		logger := logging.New(slog.LevelDebug)
		slog.SetDefault(logger)

		journalCfg := cli.JournalConfig{RedisAddr: redisAddr, Path: journalPath}
		journal, closeJournal, err := cli.OpenJournal(journalCfg.Kind(), journalCfg, logger)
		if err != nil {
			log.Fatalf("Error opening journal: %v", err)
		}
		defer closeJournal()

		srv := mcp.NewServer(journal)

		switch transport {
		case "stdio":
			// Ensure logs don't corrupt JSON-RPC on Stdout
			log.SetOutput(os.Stderr)
			slog.Info("Starting Swell MCP Server (Stdio)...")
			if err := srv.ServeStdio(); err != nil {
				slog.Error("MCP Server execution failed", "error", err)
				os.Exit(1)
			}
		case "sse":
			slog.Info("Starting Swell MCP Server (SSE)", "port", port)

			// Create a context that cancels on interrupt signal
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if err := srv.ServeSSE(ctx, port); err != nil {
				// Ignore server closed error if it was caused by context cancellation
				if err != http.ErrServerClosed {
					slog.Error("MCP Server execution failed", "error", err)
					os.Exit(1)
				}
			}
			slog.Info("MCP Server stopped gracefully")
		default:
			log.Fatalf("Unknown transport: %s. Supported: stdio, sse", transport)
		}
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)

	mcpCmd.Flags().String("transport", "stdio", "Transport protocol to use: 'stdio' or 'sse'")
	mcpCmd.Flags().Int("port", 8476, "Port to listen on (only for SSE)")
	mcpCmd.Flags().String("redis", getEnv("SWELL_REDIS_ADDR", ""), "Redis address to read a shared journal")
	mcpCmd.Flags().String("journal-file", getEnv("SWELL_JOURNAL_FILE", ""), "File to read a persisted journal from")
}
