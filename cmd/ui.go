package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/dotodo/todos/internal/client"
	"github.com/dotodo/todos/internal/config"
	"github.com/dotodo/todos/internal/logging"
	"github.com/dotodo/todos/internal/pipeline"
	"github.com/dotodo/todos/internal/tui"
)

var uiCmd = &cobra.Command{
	Use:   "ui",
	Short: "Open the terminal client",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runUI()
	},
}

func init() {
	rootCmd.AddCommand(uiCmd)
}

func runUI() error {
	if err := logging.Init(); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	app := tui.NewApp(client.New(cfg.APIBaseURL), pipeline.RealClock(), cfg.ToastDuration())

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}
