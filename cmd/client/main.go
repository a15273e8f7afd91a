// cmd/client/main.go
package main

import (
	"fmt"
	"log"
	"os"

	"chatline/internal/client/config"
	"chatline/internal/client/logging"
	"chatline/internal/client/models"
	"chatline/internal/client/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	var (
		envFile  string
		logLevel string
		history  string
	)

	cmd := &cobra.Command{
		Use:           "client",
		Short:         "Terminal chat client with a channel/direct message compose box",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(envFile)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("log-level") {
				cfg.LogLevel = logLevel
			}
			if cmd.Flags().Changed("history") {
				cfg.HistoryFile = history
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			return run(cfg)
		},
	}

	cmd.Flags().StringVar(&envFile, "env-file", ".env", "dotenv file to load")
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "log level (trace, debug, info, warn, error)")
	cmd.Flags().StringVar(&history, "history", "", "JSON file with messages to show")
	return cmd
}

func run(cfg config.Config) error {
	// log file
	logFile, err := logging.OpenFile(cfg.LogFile)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer logFile.Close()
	logging.Init(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat, Output: logFile})

	messages, err := models.LoadHistory(cfg.HistoryFile)
	if err != nil {
		return err
	}
	logging.Logger.Info().Int("messages", len(messages)).Str("user", cfg.UserName).Msg("starting client")

	model := tui.NewModel(tui.Options{
		UserName: cfg.UserName,
		History:  messages,
		Compose: tui.ComposeOptions{
			ContentCharLimit: cfg.ContentCharLimit,
			TopicCharLimit:   cfg.TopicCharLimit,
			ChannelCharLimit: cfg.ChannelCharLimit,
		},
	})

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.SetOutput(os.Stderr)
		log.Fatal("Error running client: ", err)
	}
}
