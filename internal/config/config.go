package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all budget notification bot configuration.
type Config struct {
	Deploy  DeployConfig  `mapstructure:"deploy"`
	Stack   StackConfig   `mapstructure:"stack"`
	Synth   SynthConfig   `mapstructure:"synth"`
	Lookups LookupsConfig `mapstructure:"lookups"`
	History HistoryConfig `mapstructure:"history"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// DeployConfig defines where the stack is deployed.
type DeployConfig struct {
	Account string `mapstructure:"account"`
	Region  string `mapstructure:"region"`
}

// StackConfig defines stack identity.
type StackConfig struct {
	Name string `mapstructure:"name"`
}

// SynthConfig defines cloud assembly output.
type SynthConfig struct {
	OutDir string `mapstructure:"outdir"`
}

// LookupsConfig holds parameter store values known ahead of synthesis.
type LookupsConfig struct {
	SlackWorkspaceID string `mapstructure:"slack_workspace_id"`
	SlackChannelID   string `mapstructure:"slack_channel_id"`
}

// HistoryConfig defines the synthesis ledger.
type HistoryConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

// LoggingConfig defines logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from file and environment variables.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("find home directory: %w", err)
		}

		v.AddConfigPath(filepath.Join(home, ".budgetbot"))
		v.AddConfigPath(".")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	// Defaults
	home, _ := os.UserHomeDir()
	v.SetDefault("deploy.account", "")
	v.SetDefault("deploy.region", "")
	v.SetDefault("stack.name", "AwsBudgetNotificationBotStack")
	v.SetDefault("synth.outdir", "")
	v.SetDefault("lookups.slack_workspace_id", "")
	v.SetDefault("lookups.slack_channel_id", "")
	v.SetDefault("history.enabled", true)
	v.SetDefault("history.path", filepath.Join(home, ".budgetbot", "history.db"))
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")

	// Environment variables
	v.SetEnvPrefix("BUDGETBOT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// The CDK toolchain names the deploy target without our prefix.
	if err := v.BindEnv("deploy.account", "BUDGETBOT_DEPLOY_ACCOUNT", "CDK_DEPLOY_ACCOUNT"); err != nil {
		return nil, fmt.Errorf("bind env: %w", err)
	}
	if err := v.BindEnv("deploy.region", "BUDGETBOT_DEPLOY_REGION", "CDK_DEPLOY_REGION"); err != nil {
		return nil, fmt.Errorf("bind env: %w", err)
	}
	if err := v.BindEnv("synth.outdir", "BUDGETBOT_SYNTH_OUTDIR", "CDK_OUTDIR"); err != nil {
		return nil, fmt.Errorf("bind env: %w", err)
	}

	// Read config file (ignore if not found)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	return &cfg, nil
}
