package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/ogulcanaydogan/aws-budget-notification-bot/internal/config"
	"github.com/ogulcanaydogan/aws-budget-notification-bot/pkg/stack"
	"github.com/ogulcanaydogan/aws-budget-notification-bot/pkg/storage"
	"github.com/ogulcanaydogan/aws-budget-notification-bot/pkg/synth"
	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags.
var Version = "dev"

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "budgetbot",
	Short: "Budget notification bot - AWS budget alerts relayed to Slack",
	Long: `budgetbot declares a daily and a monthly AWS cost budget whose alerts are
published to an SNS topic and relayed to a Slack channel through AWS Chatbot.
It synthesizes the CloudFormation template for the CDK toolchain; deployment
itself is done by the cdk CLI.

Without a subcommand it behaves like "budgetbot synth".`,
	SilenceUsage: true,
	RunE:         runSynth,
}

// Execute runs the CLI.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ~/.budgetbot/config.yaml)")
	addSynthFlags(rootCmd)
}

// loadConfig loads the configuration.
func loadConfig() (*config.Config, error) {
	return config.Load(cfgFile)
}

// newLogger creates a structured logger from config.
func newLogger(cfg *config.Config) *slog.Logger {
	level := slog.LevelInfo
	switch cfg.Logging.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	var handler slog.Handler
	if cfg.Logging.Format == "text" {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	} else {
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	}

	return slog.New(handler)
}

// synthOptions maps config onto synthesis options.
func synthOptions(cfg *config.Config) synth.Options {
	lookups := make(map[string]string)
	if cfg.Lookups.SlackWorkspaceID != "" {
		lookups[stack.SlackWorkspaceParameter] = cfg.Lookups.SlackWorkspaceID
	}
	if cfg.Lookups.SlackChannelID != "" {
		lookups[stack.SlackChannelParameter] = cfg.Lookups.SlackChannelID
	}

	return synth.Options{
		StackName: cfg.Stack.Name,
		Account:   cfg.Deploy.Account,
		Region:    cfg.Deploy.Region,
		OutDir:    cfg.Synth.OutDir,
		Lookups:   lookups,
	}
}

// initStorage opens the synthesis ledger.
func initStorage(cfg *config.Config) (storage.Storage, error) {
	store, err := storage.NewSQLite(cfg.History.Path)
	if err != nil {
		return nil, fmt.Errorf("open history: %w", err)
	}
	return store, nil
}
