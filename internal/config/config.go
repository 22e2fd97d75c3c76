package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/tirasundara/activation-service/internal/chain"
	"github.com/tirasundara/activation-service/internal/domain"
	"github.com/tirasundara/activation-service/internal/logging"
	"github.com/tirasundara/activation-service/internal/report"
)

// Run modes
const (
	ModeChain    = "chain"
	ModeStrategy = "strategy"
	ModeBoth     = "both"
)

// ErrInvalidMode is returned when the configured mode is not chain, strategy or both
var ErrInvalidMode = errors.New("invalid mode")

// Config holds the activation service configuration.
type Config struct {
	// Which dispatch variant(s) to run
	Mode string `yaml:"mode"`

	// Handler order of the chain variant, by action name
	Chain []string `yaml:"chain"`

	// Optional CSV file of accounts; the built-in batches are used when empty
	AccountsFile string `yaml:"accounts_file"`

	Logging LoggingConfig `yaml:"logging"`
	Report  ReportConfig  `yaml:"report"`
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// ReportConfig configures the optional activation report.
type ReportConfig struct {
	Format string `yaml:"format"` // json, yaml; empty disables the report
	Output string `yaml:"output"` // file path; stderr when empty
	Pretty bool   `yaml:"pretty"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		Mode:  ModeBoth,
		Chain: []string{"create", "migrate", "port"},
		Logging: LoggingConfig{
			Level: "warn",
		},
		Report: ReportConfig{
			Pretty: true,
		},
	}
}

// Load reads configuration from path, falling back to defaults when the file does not exist.
// Environment overrides are applied last.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		case !os.IsNotExist(err):
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg.applyEnvOverrides()

	return cfg, nil
}

// Save writes the configuration to path as YAML.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("ACTIVATION_MODE"); v != "" {
		c.Mode = v
	}
	if v := os.Getenv("ACTIVATION_ACCOUNTS_FILE"); v != "" {
		c.AccountsFile = v
	}
	if v := os.Getenv("ACTIVATION_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("ACTIVATION_REPORT_FORMAT"); v != "" {
		c.Report.Format = v
	}
}

// Validate checks the configuration for values the service cannot run with.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Mode) {
	case ModeChain, ModeStrategy, ModeBoth:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidMode, c.Mode)
	}

	if _, err := c.ChainOrder(); err != nil {
		return err
	}

	if _, err := logging.ParseLevel(c.Logging.Level); err != nil {
		return err
	}

	if c.Report.Format != "" {
		if _, err := report.NewFormatter(c.Report.Format, c.Report.Pretty); err != nil {
			return err
		}
	}

	return nil
}

// RunsChain reports whether the chain variant is enabled.
func (c *Config) RunsChain() bool {
	mode := strings.ToLower(c.Mode)
	return mode == ModeChain || mode == ModeBoth
}

// RunsStrategy reports whether the strategy variant is enabled.
func (c *Config) RunsStrategy() bool {
	mode := strings.ToLower(c.Mode)
	return mode == ModeStrategy || mode == ModeBoth
}

// ChainOrder parses the configured handler order and checks a chain can be built from it.
func (c *Config) ChainOrder() ([]domain.AccountAction, error) {
	actions, err := chain.ParseOrder(c.Chain)
	if err != nil {
		return nil, err
	}
	if err := chain.ValidateOrder(actions); err != nil {
		return nil, err
	}
	return actions, nil
}
