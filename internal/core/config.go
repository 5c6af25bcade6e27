package core

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/valter-silva-au/covgap/pkg/models"
)

// ConfigManager loads the optional .covgap.yaml report configuration.
type ConfigManager interface {
	Load() (*models.ReportConfig, error)
}

// viperConfigManager implements ConfigManager using Viper for reading the
// YAML configuration file.
type viperConfigManager struct {
	// basePath is the directory searched for .covgap.yaml.
	basePath string
}

// NewConfigManager creates a ConfigManager that reads .covgap.yaml from
// basePath.
func NewConfigManager(basePath string) ConfigManager {
	return &viperConfigManager{basePath: basePath}
}

// defaultReportConfig returns a ReportConfig populated with defaults.
func defaultReportConfig() *models.ReportConfig {
	return &models.ReportConfig{
		DefaultFormat: "table",
		Gaps: models.GapConfig{
			WarnBelow: 0.9,
			CritBelow: 0.5,
		},
	}
}

// Load reads .covgap.yaml from the base path. If the file does not exist,
// defaults are returned.
func (cm *viperConfigManager) Load() (*models.ReportConfig, error) {
	cfg := defaultReportConfig()

	v := viper.New()
	v.SetConfigName(".covgap")
	v.SetConfigType("yaml")
	v.AddConfigPath(cm.basePath)

	v.SetDefault("default_format", cfg.DefaultFormat)
	v.SetDefault("gaps.warn_below", cfg.Gaps.WarnBelow)
	v.SetDefault("gaps.crit_below", cfg.Gaps.CritBelow)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading .covgap.yaml: %w", err)
	}

	cfg.DefaultFormat = v.GetString("default_format")
	cfg.Gaps.WarnBelow = v.GetFloat64("gaps.warn_below")
	cfg.Gaps.CritBelow = v.GetFloat64("gaps.crit_below")

	if err := validateReportConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// validateReportConfig checks a ReportConfig for invalid field values.
func validateReportConfig(cfg *models.ReportConfig) error {
	if cfg.Gaps.WarnBelow < 0 || cfg.Gaps.WarnBelow > 1 {
		return fmt.Errorf("gaps.warn_below %v is invalid, must be between 0 and 1", cfg.Gaps.WarnBelow)
	}
	if cfg.Gaps.CritBelow < 0 || cfg.Gaps.CritBelow > 1 {
		return fmt.Errorf("gaps.crit_below %v is invalid, must be between 0 and 1", cfg.Gaps.CritBelow)
	}
	if cfg.Gaps.CritBelow > cfg.Gaps.WarnBelow {
		return fmt.Errorf("gaps.crit_below %v must not exceed gaps.warn_below %v",
			cfg.Gaps.CritBelow, cfg.Gaps.WarnBelow)
	}
	switch cfg.DefaultFormat {
	case "table", "markdown", "csv", "json":
		return nil
	default:
		return fmt.Errorf("default_format %q is invalid, must be one of: table, markdown, csv, json",
			cfg.DefaultFormat)
	}
}
