package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var version = "dev"

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "interview",
		Short: "Interview coach - mock interviews with scored feedback",
		Long: `Interview coach runs mock interview sessions.

A session asks a fixed series of questions for one category, scores every
answer for relevance, completeness and clarity, and produces a final report
once the last question is answered.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(newServeCommand())
	cmd.AddCommand(newMCPCommand())
	cmd.AddCommand(newCategoriesCommand())
	cmd.AddCommand(newQuestionsCommand())
	cmd.AddCommand(newScoreCommand())
	cmd.AddCommand(newValidateBankCommand())

	return cmd
}

func execute() error {
	return newRootCommand().Execute()
}

// newLogger builds the JSON logger used by every long-running command.
func newLogger(w io.Writer, level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: lvl}))
}

// writeJSON indents output when it goes to a terminal.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	return nil
}
