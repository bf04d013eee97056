// Package logging builds the zap logger shared by the binaries.
package logging

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a JSON production logger, or a console development logger when format is "console".
// An empty level means info.
func New(level, format string) (*zap.Logger, error) {
	var lvl zapcore.Level
	if strings.TrimSpace(level) == "" {
		level = "info"
	}
	if err := lvl.UnmarshalText([]byte(strings.ToLower(level))); err != nil {
		return nil, fmt.Errorf("bad log level %q: %w", level, err)
	}

	var config zap.Config
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "json":
		config = zap.NewProductionConfig()
	case "console":
		config = zap.NewDevelopmentConfig()
	default:
		return nil, fmt.Errorf("bad log format %q: use json or console", format)
	}
	config.Level = zap.NewAtomicLevelAt(lvl)

	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}
