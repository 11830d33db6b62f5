package cli

import (
	"errors"
	"fmt"

	"github.com/MakeNowJust/heredoc"
	"github.com/goto/assetkeeper/core/checkout"
	"github.com/goto/assetkeeper/core/search"
	"github.com/goto/assetkeeper/internal/store"
	"github.com/goto/assetkeeper/pkg/statsd"
	"github.com/goto/assetkeeper/pkg/telemetry"
	"github.com/goto/salt/cmdx"
	"github.com/goto/salt/config"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"
)

const configFlag = "config"

func configCommand(cfg *Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config <command>",
		Short: "Manage the assetkeeper configuration",
		Example: heredoc.Doc(`
			$ assetkeeper config init
			$ assetkeeper config list`),
	}

	cmd.AddCommand(configInitCommand())
	cmd.AddCommand(configListCommand(cfg))

	return cmd
}

func configInitCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize a new configuration file with defaults",
		Example: heredoc.Doc(`
			$ assetkeeper config init
		`),
		Annotations: map[string]string{
			"group": "core",
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := cmdx.SetConfig("assetkeeper")

			if err := cfg.Init(&Config{}); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "config created: %v\n", cfg.File())
			return nil
		},
	}
}

func configListCommand(cfg *Config) *cobra.Command {
	var cmd = &cobra.Command{
		Use:   "list",
		Short: "List the configuration in effect",
		Example: heredoc.Doc(`
			$ assetkeeper config list
		`),
		Annotations: map[string]string{
			"group": "core",
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return yaml.NewEncoder(cmd.OutOrStdout()).Encode(*cfg)
		},
	}
	return cmd
}

type Config struct {
	// Log
	LogLevel string `yaml:"log_level" mapstructure:"log_level" default:"info"`

	// Loans run, and are extended, for this many days
	LoanPeriodDays int `yaml:"loan_period_days" mapstructure:"loan_period_days" default:"30"`

	// Store
	Store store.Config `yaml:"store" mapstructure:"store"`

	// Default borrower for checkouts
	Borrower checkout.Borrower `yaml:"borrower" mapstructure:"borrower"`

	// Search
	Search search.Config `yaml:"search" mapstructure:"search"`

	// StatsD
	StatsD statsd.Config `yaml:"statsd" mapstructure:"statsd"`

	// OpenTelemetry
	Telemetry telemetry.Config `yaml:"telemetry" mapstructure:"telemetry"`
}

func LoadConfig() (*Config, error) {
	var cfg Config
	err := cmdx.SetConfig("assetkeeper").Load(&cfg)
	if err != nil {
		if errors.As(err, &config.ConfigFileNotFoundError{}) {
			return LoadFromCurrentDir()
		}
		return &cfg, err
	}
	return &cfg, nil
}

func LoadFromCurrentDir() (*Config, error) {
	var cfg Config
	var opts []config.LoaderOption

	opts = append(opts,
		config.WithPath("./"),
		config.WithName("assetkeeper.yaml"),
		config.WithEnvKeyReplacer(".", "_"),
		config.WithEnvPrefix("ASSETKEEPER"),
	)

	if err := config.NewLoader(opts...).Load(&cfg); err != nil {
		if errors.As(err, &config.ConfigFileNotFoundError{}) {
			return &cfg, ErrConfigNotFound
		}
		return &cfg, err
	}
	return &cfg, nil
}

func LoadConfigFromFlag(cfgFile string, cfg *Config) error {
	var opts []config.LoaderOption
	opts = append(opts,
		config.WithFile(cfgFile),
		config.WithEnvKeyReplacer(".", "_"),
		config.WithEnvPrefix("ASSETKEEPER"),
	)

	return config.NewLoader(opts...).Load(cfg)
}
