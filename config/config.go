package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds the full run configuration for one export.
type Config struct {
	SpreadsheetID  string
	CredentialsDir string

	MaxAttempts    int
	InitialBackoff time.Duration
	BackoffCap     time.Duration
	SheetDelay     time.Duration
	Strict         bool

	SnapshotEnabled bool
	SnapshotPath    string

	LogLevel  string
	LogFormat string
}

// Load reads config/config.yml, applies defaults and the SPREADSHEET_ID
// environment override, and validates the result.
func Load() (Config, error) {
	viper.AddConfigPath("config")
	viper.SetConfigName("config")

	viper.SetDefault("credentials.dir", "credentials")
	viper.SetDefault("export.max_attempts", 5)
	viper.SetDefault("export.initial_backoff", "1s")
	viper.SetDefault("export.backoff_cap", "60s")
	viper.SetDefault("export.sheet_delay", "1s")
	viper.SetDefault("export.strict", false)
	viper.SetDefault("snapshot.enabled", false)
	viper.SetDefault("snapshot.path", "exports/finmodel.xlsx")
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.format", "text")

	if err := viper.ReadInConfig(); err != nil {
		// The config file is optional as long as the spreadsheet ID
		// arrives via the environment.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, fmt.Errorf("error while reading config: %w", err)
		}
	}

	if err := viper.BindEnv("spreadsheet.id", "SPREADSHEET_ID"); err != nil {
		return Config{}, fmt.Errorf("error while binding environment: %w", err)
	}

	cfg := Config{
		SpreadsheetID:   viper.GetString("spreadsheet.id"),
		CredentialsDir:  viper.GetString("credentials.dir"),
		MaxAttempts:     viper.GetInt("export.max_attempts"),
		InitialBackoff:  viper.GetDuration("export.initial_backoff"),
		BackoffCap:      viper.GetDuration("export.backoff_cap"),
		SheetDelay:      viper.GetDuration("export.sheet_delay"),
		Strict:          viper.GetBool("export.strict"),
		SnapshotEnabled: viper.GetBool("snapshot.enabled"),
		SnapshotPath:    viper.GetString("snapshot.path"),
		LogLevel:        viper.GetString("log.level"),
		LogFormat:       viper.GetString("log.format"),
	}

	return cfg, cfg.validate()
}

func (c Config) validate() error {
	if c.SpreadsheetID == "" {
		return fmt.Errorf("spreadsheet.id is not set (config/config.yml or SPREADSHEET_ID)")
	}
	if c.MaxAttempts < 1 {
		return fmt.Errorf("export.max_attempts must be at least 1, got %d", c.MaxAttempts)
	}
	if c.InitialBackoff <= 0 || c.BackoffCap < c.InitialBackoff {
		return fmt.Errorf("invalid backoff window: initial %s, cap %s", c.InitialBackoff, c.BackoffCap)
	}
	if c.SnapshotEnabled && c.SnapshotPath == "" {
		return fmt.Errorf("snapshot.enabled is set but snapshot.path is empty")
	}
	return nil
}
