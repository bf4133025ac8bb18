// Package cli implements the tafqeet command.
package cli

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/expensedesk/tafqeet/internal/config"
	"github.com/expensedesk/tafqeet/internal/logger"
)

// app carries the state shared by all commands of one invocation.
type app struct {
	cfgFile string
	verbose bool

	cfg *config.Config
	log *zap.Logger
}

// NewRootCmd builds the command tree. Each call returns independent
// commands and flags.
func NewRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:   "tafqeet",
		Short: "Write Saudi riyal amounts in Arabic words",
		Long: `tafqeet writes amounts of Saudi riyals in Arabic words, as printed on
expense requests and financial documents.

Example Usage:
  tafqeet words 1234.56              # one amount
  echo 150 | tafqeet words           # amounts from stdin, one per line
  tafqeet words --format json 10 20  # machine-readable output
  tafqeet cardinal 2000              # a bare number
  tafqeet sheet requests.xlsx        # fill the words column of a workbook`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "path to a YAML configuration file")
	cmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	cmd.AddCommand(
		newWordsCmd(a),
		newCardinalCmd(),
		newSheetCmd(a),
		newVersionCmd(),
	)
	return cmd
}

// init loads the configuration and builds the logger.
func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.Load(a.cfgFile)
	if err != nil {
		return err
	}
	log, err := logger.New(logger.Level(cfg.LogLevel, a.verbose), cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	a.cfg, a.log = cfg, log
	a.log.Debug("configuration loaded", zap.String("config", a.cfgFile), zap.String("format", cfg.Format))
	return nil
}

// Execute runs the command and exits with status 1 on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
