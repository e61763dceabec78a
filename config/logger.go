package config

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger builds the production zap logger at the configured level;
// verbose forces debug. outputPaths replaces stderr when given.
func NewLogger(level string, verbose bool, outputPaths ...string) (*zap.Logger, error) {
	zcfg := zap.NewProductionConfig()
	if len(outputPaths) > 0 {
		zcfg.OutputPaths = outputPaths
	}

	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	if verbose {
		lvl = zapcore.DebugLevel
	}
	zcfg.Level = zap.NewAtomicLevelAt(lvl)

	logger, err := zcfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}
