// Package config loads timeclerk configuration from config files,
// environment variables and .env files, and translates it into the
// option bundle consumed by the pipeline.
package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/shiftbooks/timeclerk/pkg/dedupe"
	"github.com/shiftbooks/timeclerk/pkg/errors"
	"github.com/shiftbooks/timeclerk/pkg/pipeline"
	"github.com/shiftbooks/timeclerk/pkg/timecard"
)

// Config holds the application configuration loaded from all sources.
type Config struct {
	// DataRoot is the directory holding per-client folders.
	DataRoot string

	// Core options as configured (string form; validated when
	// translated to pipeline options).
	CompositeKeyMode string
	DedupPolicy      string
	CriticalFields   []string

	// TextNormalization maps column name to a cleaned-value ->
	// canonical-value lookup table.
	TextNormalization map[string]map[string]string

	// HistoryDB is the path of the run-history SQLite database.
	// Empty disables history.
	HistoryDB string

	// Logging configuration
	LogLevel  string
	LogFormat string
}

// DefaultCriticalFields is the stock completeness-scoring column set,
// matching what payroll review needs from a complete shift row.
var DefaultCriticalFields = []string{
	"clock_in", "clock_out", "lunch_start", "lunch_end",
	"second_lunch_start", "second_lunch_end",
	"wage_rate", "overtime_rate", "doubletime_rate",
	"pay_date", "first_meal_waiver_signed", "second_meal_waiver_signed",
	"employment_status", "exempt_status",
}

// DefaultTextNormalization is the stock lookup table set for the two
// categorical columns client extracts routinely misspell. Keys are
// post-clean values (lowercase, underscores, no slashes).
var DefaultTextNormalization = map[string]map[string]string{
	"employment_status": {
		"fulltime": "full_time",
		"f_t":      "full_time",
		"pt":       "part_time",
		"parttime": "part_time",
	},
	"exempt_status": {
		"nonexempt": "non_exempt",
		"n_ex":      "non_exempt",
		"ne":        "non_exempt",
	},
}

// Load loads configuration in order of precedence: flags bound by the
// CLI, environment variables, .env files, the config file, then
// defaults.
func Load(configFile string) (*Config, error) {
	loadEnvFiles()

	viper.AutomaticEnv()
	viper.SetEnvPrefix("TIMECLERK")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	setDefaults()

	if configFile != "" {
		viper.SetConfigFile(configFile)
		if err := viper.ReadInConfig(); err != nil {
			return nil, errors.NewConfigError("config", "reading config file", err)
		}
	} else {
		// Search standard locations; a missing file is fine.
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".timeclerk")
		_ = viper.ReadInConfig()
	}

	cfg := &Config{
		DataRoot:          viper.GetString("data_root"),
		CompositeKeyMode:  viper.GetString("composite_key_mode"),
		DedupPolicy:       viper.GetString("dedup_policy"),
		CriticalFields:    viper.GetStringSlice("critical_fields"),
		TextNormalization: textTables(),
		HistoryDB:         viper.GetString("history_db"),
		LogLevel:          viper.GetString("log_level"),
		LogFormat:         viper.GetString("log_format"),
	}
	return cfg, nil
}

// setDefaults registers defaults mirroring the stock pipeline setup.
func setDefaults() {
	viper.SetDefault("data_root", "data")
	viper.SetDefault("composite_key_mode", timecard.KeyModeThreeKey)
	viper.SetDefault("dedup_policy", dedupe.PolicyNameKeepBestCompleteness)
	viper.SetDefault("critical_fields", DefaultCriticalFields)
	viper.SetDefault("history_db", "")
	viper.SetDefault("log_level", "info")
	viper.SetDefault("log_format", "auto")
}

// textTables reads text_normalization from the config file, falling
// back to the stock tables when absent.
func textTables() map[string]map[string]string {
	raw := viper.GetStringMap("text_normalization")
	if len(raw) == 0 {
		return DefaultTextNormalization
	}
	tables := make(map[string]map[string]string, len(raw))
	for col := range raw {
		tables[col] = viper.GetStringMapString("text_normalization." + col)
	}
	return tables
}

// loadEnvFiles loads .env files before viper env binding.
func loadEnvFiles() {
	for _, f := range []string{".env", ".env.local"} {
		if _, err := os.Stat(f); err == nil {
			_ = godotenv.Load(f)
		}
	}
}

// PipelineOptions validates the configured strings and translates
// them into pipeline options. Any unknown mode, policy or column name
// is a configuration error.
func (c *Config) PipelineOptions() (pipeline.Options, error) {
	var opts pipeline.Options

	mode, err := timecard.ParseKeyMode(c.CompositeKeyMode)
	if err != nil {
		return opts, errors.NewConfigError("config", err.Error(), err)
	}
	opts.KeyMode = mode

	policy, err := dedupe.ParsePolicy(c.DedupPolicy)
	if err != nil {
		return opts, err
	}
	opts.Policy = policy

	for _, name := range c.CriticalFields {
		col, ok := timecard.ParseColumn(name)
		if !ok {
			return opts, errors.NewConfigError("config",
				"unknown critical field: "+name, nil)
		}
		opts.Critical = append(opts.Critical, col)
	}

	opts.TextTables = make(map[timecard.Column]map[string]string, len(c.TextNormalization))
	for name, table := range c.TextNormalization {
		col, ok := timecard.ParseColumn(name)
		if !ok {
			return opts, errors.NewConfigError("config",
				"unknown text normalization column: "+name, nil)
		}
		opts.TextTables[col] = table
	}

	return opts, nil
}
