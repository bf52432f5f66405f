// Package main is the entry point for the echosheet CLI
package main

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/echosheet/cmd/echosheet/commands"
	"github.com/KirkDiggler/echosheet/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "echosheet",
	Short: "EchoSheet character builder",
	Long: `echosheet builds characters against a running EchoSheet server: drafts, point-buy,
skills, spells, autofill suggestions, and edits to saved character sheets.`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		level, _ := config.ParseLevel(cfg.LogLevel)
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
		commands.SetConfig(cfg)
		return nil
	},
}

func main() {
	// A missing .env is fine; the environment may already be set
	_ = godotenv.Load() // nolint:errcheck // optional file

	if err := rootCmd.Execute(); err != nil {
		commands.ReportError(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	commands.Register(rootCmd)
}
