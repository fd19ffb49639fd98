package contract

import (
	"fmt"
	"slices"
	"strings"

	"github.com/huangsam/scorecard/schema"
)

// Default values for configuration.
const (
	DefaultPrecision  = 1
	DefaultTopN       = schema.DefaultInsightLimit
	MaxTopN           = 20
	DefaultListenAddr = ":8080"
	DefaultLogLevel   = "info"
	DefaultEnv        = "production"
)

// ValidLogLevels lists the accepted log levels.
var ValidLogLevels = []string{"debug", "info", "warn", "error"}

// Config holds the runtime configuration for scorecard.
// This struct remains the "final, validated" config.
type Config struct {
	SessionFile string // positional argument of session-based commands
	Output      schema.OutputMode
	OutputFile  string
	Precision   int
	Width       int // Terminal width override (0 = auto-detect)
	UseColors   bool

	CampaignType schema.CampaignType
	Categories   []string // empty means all categories
	TopN         int
	CatalogFile  string

	ListenAddr  string
	CORSOrigins []string
	LogLevel    string
	Env         string
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// This is set manually from positional args, so no tag
	SessionFileStr string

	// --- Fields from rootCmd.PersistentFlags() ---
	Output       string `mapstructure:"output"`
	OutputFile   string `mapstructure:"output-file"`
	Precision    int    `mapstructure:"precision"`
	Width        int    `mapstructure:"width"`
	Color        string `mapstructure:"color"`
	CampaignType string `mapstructure:"campaign-type"`
	Categories   string `mapstructure:"categories"`
	Catalog      string `mapstructure:"catalog"`
	LogLevel     string `mapstructure:"log-level"`
	Env          string `mapstructure:"env"`

	// --- Fields from insightsCmd.Flags() ---
	Top int `mapstructure:"top"`

	// --- Fields from serveCmd.Flags() ---
	Listen      string `mapstructure:"listen"`
	CORSOrigins string `mapstructure:"cors-origins"`
}

// Clone returns a deep copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	clone.Categories = slices.Clone(c.Categories)
	clone.CORSOrigins = slices.Clone(c.CORSOrigins)
	return &clone
}

// IsDevelopment reports whether the config asks for development logging.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development" || c.Env == "dev"
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := processCampaignFilter(cfg, input); err != nil {
		return err
	}
	if err := processServerInputs(cfg, input); err != nil {
		return err
	}
	return nil
}

// validateSimpleInputs processes and validates the output related fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	// --- 0. Transfer simple non-validated fields from input -> cfg ---
	cfg.SessionFile = strings.TrimSpace(input.SessionFileStr)
	cfg.OutputFile = input.OutputFile
	cfg.CatalogFile = strings.TrimSpace(input.Catalog)

	// --- 1. Width Validation ---
	if input.Width < 0 {
		return fmt.Errorf("width cannot be negative (received %d)", input.Width)
	}
	cfg.Width = input.Width

	// Parse color flag
	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	// --- 2. Precision and Output Validation ---
	if input.Precision < 1 || input.Precision > 2 {
		return fmt.Errorf("precision must be 1 or 2 (received %d)", input.Precision)
	}
	cfg.Precision = input.Precision

	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json, parquet, xlsx", input.Output)
	}

	// --- 3. TopN Validation ---
	if input.Top <= 0 || input.Top > MaxTopN {
		return fmt.Errorf("top must be greater than 0 and cannot exceed %d (received %d)", MaxTopN, input.Top)
	}
	cfg.TopN = input.Top

	return nil
}

// processCampaignFilter handles the campaign type and the category selection.
func processCampaignFilter(cfg *Config, input *ConfigRawInput) error {
	ct := schema.CampaignType(strings.ToLower(strings.TrimSpace(input.CampaignType)))
	if ct == "" {
		ct = schema.StandardCampaign
	}
	if _, ok := schema.ValidCampaignTypes[ct]; !ok {
		return fmt.Errorf("invalid campaign type '%s'. must be standard, influencer, tiktok", input.CampaignType)
	}
	cfg.CampaignType = ct
	cfg.Categories = SplitList(input.Categories)
	return nil
}

// processServerInputs handles the settings of the long-running commands.
func processServerInputs(cfg *Config, input *ConfigRawInput) error {
	cfg.ListenAddr = strings.TrimSpace(input.Listen)
	if cfg.ListenAddr == "" {
		cfg.ListenAddr = DefaultListenAddr
	}
	cfg.CORSOrigins = SplitList(input.CORSOrigins)

	cfg.LogLevel = strings.ToLower(strings.TrimSpace(input.LogLevel))
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}
	if !slices.Contains(ValidLogLevels, cfg.LogLevel) {
		return fmt.Errorf("invalid log level '%s'. must be %s", input.LogLevel, strings.Join(ValidLogLevels, ", "))
	}

	cfg.Env = strings.ToLower(strings.TrimSpace(input.Env))
	if cfg.Env == "" {
		cfg.Env = DefaultEnv
	}
	return nil
}

// SplitList splits a comma-separated value into trimmed, non-empty items.
func SplitList(s string) []string {
	var out []string
	for part := range strings.SplitSeq(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
