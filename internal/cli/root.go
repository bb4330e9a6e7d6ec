package cli

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/junkd0g/labchart/internal/config"
	"github.com/junkd0g/labchart/internal/report"
)

var version = "0.1.0"

var (
	configPath string
	logLevel   string
	noColor    bool
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:     "labchart",
	Short:   "Laboratory test codes and dashboard charts",
	Version: version,
	Long: `labchart resolves laboratory test names to their lookup codes and
renders the tests-per-category bar chart as an HTML dashboard, PNG or SVG.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if noColor {
			color.NoColor = true
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		// If no subcommand is provided, print help
		cmd.Help()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to a YAML configuration file")
	RootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	RootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	RootCmd.AddCommand(codeCmd)
	RootCmd.AddCommand(codesCmd)
	RootCmd.AddCommand(chartCmd)
	RootCmd.AddCommand(aggregateCmd)
	RootCmd.AddCommand(diagramCmd)
}

// loadEnv reads the configuration and builds the logger and report builder.
func loadEnv() (*report.Builder, *logrus.Logger, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}

	logger, err := config.NewLogger(cfg.Log)
	if err != nil {
		return nil, nil, err
	}

	builder, err := report.NewBuilder(cfg, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid code table: %w", err)
	}
	return builder, logger, nil
}
