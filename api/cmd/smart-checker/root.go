package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"smart-checker/api/internal/config"
	"smart-checker/api/internal/logging"
)

// cli carries the state the persistent hooks prepare for subcommands.
type cli struct {
	configPath string
	verbose    bool
	mock       bool

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	c := &cli{}
	root := &cobra.Command{
		Use:   "smart-checker",
		Short: "Score business-case objectives against the SMART criteria",
		Long: `smart-checker evaluates an objective against the five SMART criteria
(Specific, Measurable, Achievable, Relevant, Time-bound) with a hosted LLM
and reports a 0-2 score, quoted evidence and improvement feedback for each.

Set MOCK_MODE=true (or pass --mock) to get a fixed sample evaluation without
calling any provider.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.setup,
		PersistentPostRun: func(*cobra.Command, []string) {
			if c.logger != nil {
				_ = c.logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&c.configPath, "config", "", "path to a YAML config file")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "debug logging")
	root.PersistentFlags().BoolVar(&c.mock, "mock", false, "return the fixed sample evaluation instead of calling the model")

	root.AddCommand(newServeCmd(c), newCheckCmd(c))
	return root
}

func (c *cli) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if c.mock {
		cfg.MockMode = true
	}
	if c.verbose {
		cfg.LogLevel = "debug"
	}
	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	c.cfg, c.logger = cfg, logger
	return nil
}
