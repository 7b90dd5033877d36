package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"revdisp/internal/calculation"
	"revdisp/internal/config"
	"revdisp/internal/output"
	"revdisp/internal/params"
	"revdisp/internal/server"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	settingsFile string
	logLevelFlag string
)

// initializeLogger creates a zap logger from settings plus the CLI override.
func initializeLogger(settings *config.Settings, override string) (*zap.Logger, error) {
	level := settings.LogLevel
	if override != "" {
		level = override
	}

	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn", "warning":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		return nil, fmt.Errorf("invalid log level: %s", level)
	}

	var cfg zap.Config
	switch settings.LogFormat {
	case "console", "":
		cfg = zap.NewDevelopmentConfig()
	case "json":
		cfg = zap.NewProductionConfig()
	default:
		return nil, fmt.Errorf("invalid log format: %s", settings.LogFormat)
	}
	cfg.Level = zap.NewAtomicLevelAt(zapLevel)
	return cfg.Build()
}

func loadEnvironment() (*config.Settings, *zap.Logger, error) {
	settings, err := config.LoadSettings(settingsFile)
	if err != nil {
		return nil, nil, err
	}
	logger, err := initializeLogger(settings, logLevelFlag)
	if err != nil {
		return nil, nil, err
	}
	return settings, logger, nil
}

var rootCmd = &cobra.Command{
	Use:   "revdisp",
	Short: "Québec disposable income calculator",
	Long:  "Estimates a household's net disposable income from the published tax, contribution, and benefit parameters of a fiscal year",
}

var calculateCmd = &cobra.Command{
	Use:   "calculate [request-file]",
	Short: "Calculate disposable income for a household request file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, logger, err := loadEnvironment()
		if err != nil {
			return err
		}
		defer logger.Sync() //nolint:errcheck

		req, err := config.NewInputParser().LoadFromFile(args[0])
		if err != nil {
			return err
		}

		year := req.Year
		if override, _ := cmd.Flags().GetInt("year"); override != 0 {
			year = override
		}
		if year == 0 {
			year = settings.DefaultYear
		}

		engine, err := calculation.NewEngine(year, params.Default, logger)
		if err != nil {
			return err
		}
		summary, err := engine.Calculate(&req.Household)
		if err != nil {
			return err
		}

		format, _ := cmd.Flags().GetString("format")
		return output.GenerateReport(os.Stdout, summary, format)
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the calculation engine over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, logger, err := loadEnvironment()
		if err != nil {
			return err
		}
		defer logger.Sync() //nolint:errcheck

		addr, _ := cmd.Flags().GetString("listen")
		if addr == "" {
			addr = settings.ListenAddr
		}
		return server.New(params.Default, logger).ListenAndServe(addr)
	},
}

var yearsCmd = &cobra.Command{
	Use:   "years",
	Short: "List the supported fiscal years",
	Run: func(cmd *cobra.Command, args []string) {
		for _, y := range params.SupportedYears() {
			fmt.Fprintln(os.Stdout, y)
		}
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(os.Stdout, "revdisp %s (commit %s, built %s)\n", version, commit, date)
	},
}

func main() {
	rootCmd.PersistentFlags().StringVar(&settingsFile, "settings", "", "path to a settings file (default: ./revdisp.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "override the configured log level")

	calculateCmd.Flags().String("format", "console", "output format: console or json")
	calculateCmd.Flags().Int("year", 0, "override the request's fiscal year")
	serveCmd.Flags().String("listen", "", "listen address (default from settings)")

	rootCmd.AddCommand(calculateCmd, serveCmd, yearsCmd, versionCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
