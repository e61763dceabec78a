package main

import (
	"fmt"
	"os"

	"github.com/Bipul-Dubey/loyalty-predictor/config"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Global flags
	configPath string
	verbose    bool

	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "loyalty",
	Short: "Relationship loyalty prediction form",
	Long: `Collects relationship interaction metrics, validates them and asks the
loyalty predictor service for a score.

  loyalty serve     web form and JSON API
  loyalty tui       terminal form
  loyalty predict   one-shot submission from flags`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}

		// The terminal form owns the screen and builds its own logger.
		if cmd.Name() == "tui" {
			return nil
		}
		logger, err = config.NewLogger(cfg.LogLevel, verbose)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	rootCmd.AddCommand(serveCmd, tuiCmd, predictCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
