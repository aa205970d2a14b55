package logger

import (
	"os"
	"strings"

	"go.uber.org/zap"
)

// New builds the process logger. LOG_LEVEL and LOG_FORMAT come from the
// environment; development format prints human-readable console output.
func New() (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if strings.EqualFold(os.Getenv("LOG_FORMAT"), "console") {
		cfg = zap.NewDevelopmentConfig()
	}
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		parsed, err := zap.ParseAtomicLevel(level)
		if err == nil {
			cfg.Level = parsed
		}
	}
	return cfg.Build()
}
