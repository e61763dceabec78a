package main

import (
	"fmt"

	"github.com/Bipul-Dubey/loyalty-predictor/config"
	"github.com/Bipul-Dubey/loyalty-predictor/services"
	"github.com/Bipul-Dubey/loyalty-predictor/tui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var tuiLogFile string

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Fill in the prediction form in the terminal",
	RunE:  runTUI,
}

func init() {
	tuiCmd.Flags().StringVar(&tuiLogFile, "log-file", "", "write logs to this file (logging is off otherwise)")
}

func runTUI(cmd *cobra.Command, args []string) error {
	logger = zap.NewNop()
	if tuiLogFile != "" {
		var err error
		logger, err = config.NewLogger(cfg.LogLevel, verbose, tuiLogFile)
		if err != nil {
			return err
		}
	}

	predictor, err := config.NewPredictorClient(cfg)
	if err != nil {
		return err
	}
	defer predictor.Close()

	serviceManager, err := services.NewServiceManager(cfg, predictor, logger)
	if err != nil {
		return err
	}

	model := tui.New(cmd.Context(), serviceManager.SubmissionService, logger.Named("tui"))
	if _, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(cmd.Context())).Run(); err != nil {
		return fmt.Errorf("terminal form: %w", err)
	}
	return nil
}
