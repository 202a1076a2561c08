package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/iammorganparry/interview-coach/internal/config"
	"github.com/iammorganparry/interview-coach/internal/mcp"
)

func newMCPCommand() *cobra.Command {
	var serverURL string

	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Serve the interview tools over MCP stdio",
		Long: `Serve the interview tools over the Model Context Protocol on stdin/stdout.

Every tool call is forwarded to a running interview server, located by
--server-url or INTERVIEW_SERVER_URL.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if serverURL == "" {
				serverURL = cfg.InterviewServerURL
			}

			// stdout carries the protocol, so logs go to stderr.
			logger := newLogger(os.Stderr, cfg.LogLevel)
			logger.Info("mcp server starting", "server_url", serverURL)

			if err := mcp.NewServer(serverURL, version).Run(); err != nil {
				return fmt.Errorf("mcp server error: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&serverURL, "server-url", "", "Interview server base URL (default from INTERVIEW_SERVER_URL)")

	return cmd
}
