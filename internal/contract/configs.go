package contract

import (
	"fmt"
	"strings"

	"github.com/huangsam/attribution/schema"
)

// Default values for configuration.
const (
	DefaultResultLimit  = 25
	MaxResultLimit      = 1000
	DefaultPrecision    = 2
	DefaultJourneyCount = 150
	DefaultAddr         = ":8000"
	DefaultLogLevel     = "info"
	DefaultLogFormat    = "json"
	DefaultCORSOrigins  = "*"
)

// ProfileConfig holds profiling settings.
type ProfileConfig struct {
	Enabled bool
	Prefix  string
}

// Config holds the runtime configuration.
// This struct is the "final, validated" config.
type Config struct {
	Model       schema.AttributionModel
	ResultLimit int
	Precision   int
	Output      schema.OutputMode
	OutputFile  string
	Width       int // Terminal width override (0 = auto-detect)

	JourneyID    string
	JourneyCount int
	Seed         int64

	StoreBackend   schema.DatabaseBackend
	StoreDBConnect string // Please use env var as this is plaintext

	Addr        string
	LogLevel    string
	LogFormat   string
	CORSOrigins []string

	UseColors bool // Enable colored labels in table output
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// This is set manually from positional args, so no tag
	ArgStr string

	// --- Fields from rootCmd.PersistentFlags() ---
	Model          string `mapstructure:"model"`
	OutputFile     string `mapstructure:"output-file"`
	Limit          int    `mapstructure:"limit"`
	Precision      int    `mapstructure:"precision"`
	Output         string `mapstructure:"output"`
	Width          int    `mapstructure:"width"`
	StoreBackend   string `mapstructure:"store-backend"`
	StoreDBConnect string `mapstructure:"store-db-connect"`
	Color          string `mapstructure:"color"`

	// --- Fields from generateCmd.Flags() ---
	Count int   `mapstructure:"count"`
	Seed  int64 `mapstructure:"seed"`

	// --- Fields from serveCmd.Flags() ---
	Addr        string `mapstructure:"addr"`
	LogLevel    string `mapstructure:"log-level"`
	LogFormat   string `mapstructure:"log-format"`
	CORSOrigins string `mapstructure:"cors-origins"`
}

// Clone returns a deep copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	if c.CORSOrigins != nil {
		clone.CORSOrigins = make([]string, len(c.CORSOrigins))
		copy(clone.CORSOrigins, c.CORSOrigins)
	}
	return &clone
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := processModelArg(cfg, input); err != nil {
		return err
	}
	if err := validateBackendConfig(cfg, input); err != nil {
		return err
	}
	return processServerInputs(cfg, input)
}

// NormalizeModel maps a user supplied model name onto a known model.
// Matching ignores case and treats '-' and '_' the same; "u_shaped" is an alias.
func NormalizeModel(name string) (schema.AttributionModel, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_")
	if key == schema.UShapedAlias {
		return schema.PositionBasedModel, nil
	}
	model := schema.AttributionModel(key)
	if _, ok := schema.ValidModels[model]; !ok {
		return "", fmt.Errorf("%w: '%s'. must be first_touch, last_touch, last_non_direct, linear, time_decay, position_based (u_shaped), w_shaped", ErrInvalidModel, name)
	}
	return model, nil
}

// ValidateDatabaseConnectionString validates the format of database connection strings
// for MySQL and PostgreSQL backends.
func ValidateDatabaseConnectionString(backend schema.DatabaseBackend, connStr string) error {
	switch backend {
	case schema.SQLiteBackend, schema.NoneBackend:
		return nil
	case schema.MySQLBackend:
		if connStr == "" {
			return fmt.Errorf("store-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "@tcp(") {
			return fmt.Errorf("MySQL connection string must contain '@tcp(' for host:port specification")
		}
		if !strings.Contains(connStr, "/") {
			return fmt.Errorf("MySQL connection string must contain '/' followed by database name")
		}
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("store-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "host=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'host=' parameter")
		}
		if !strings.Contains(connStr, "dbname=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'dbname=' parameter")
		}
	}
	return nil
}

// ProcessProfilingConfig handles the profiling flag and sets up profiling configuration.
func ProcessProfilingConfig(profile *ProfileConfig, profilePrefix string) error {
	if profilePrefix != "" {
		profile.Enabled = true
		profile.Prefix = profilePrefix
	}
	return nil
}

// validateBackendConfig validates the journey store configuration.
func validateBackendConfig(cfg *Config, input *ConfigRawInput) error {
	cfg.StoreBackend = schema.DatabaseBackend(strings.ToLower(input.StoreBackend))
	if _, ok := schema.ValidDatabaseBackends[cfg.StoreBackend]; !ok {
		return fmt.Errorf("invalid store backend '%s'. must be sqlite, mysql, postgresql, none", input.StoreBackend)
	}
	cfg.StoreDBConnect = input.StoreDBConnect
	return ValidateDatabaseConnectionString(cfg.StoreBackend, cfg.StoreDBConnect)
}

// validateSimpleInputs processes and validates the presentation and sizing fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	// --- 0. Transfer simple non-validated fields from input -> cfg ---
	cfg.OutputFile = input.OutputFile
	cfg.Width = input.Width
	cfg.Seed = input.Seed

	// Parse color flag
	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	// --- 1. ResultLimit Validation ---
	if input.Limit <= 0 || input.Limit > MaxResultLimit {
		return fmt.Errorf("limit must be greater than 0 and cannot exceed %d (received %d)", MaxResultLimit, input.Limit)
	}
	cfg.ResultLimit = input.Limit

	// --- 2. Journey count Validation ---
	if input.Count <= 0 || input.Count > schema.MaxJourneys {
		return fmt.Errorf("count must be greater than 0 and cannot exceed %d (received %d)", schema.MaxJourneys, input.Count)
	}
	cfg.JourneyCount = input.Count

	// --- 3. Precision and Output Validation ---
	if input.Precision < 1 || input.Precision > 2 {
		return fmt.Errorf("precision must be 1 or 2 (received %d)", input.Precision)
	}
	cfg.Precision = input.Precision

	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json, parquet", input.Output)
	}
	if cfg.Output == schema.ParquetOut && cfg.OutputFile == "" {
		return fmt.Errorf("--output-file is required when using parquet output")
	}
	return nil
}

// processModelArg resolves the model from the positional argument or the --model flag.
// The positional argument wins; it is also kept as the journey id for commands that take one.
func processModelArg(cfg *Config, input *ConfigRawInput) error {
	cfg.JourneyID = input.ArgStr
	name := input.Model
	if input.ArgStr != "" {
		if model, err := NormalizeModel(input.ArgStr); err == nil {
			cfg.Model = model
			return nil
		}
	}
	model, err := NormalizeModel(name)
	if err != nil {
		return err
	}
	cfg.Model = model
	return nil
}

// processServerInputs handles the settings only the HTTP server reads.
func processServerInputs(cfg *Config, input *ConfigRawInput) error {
	cfg.Addr = input.Addr
	if cfg.Addr == "" {
		cfg.Addr = DefaultAddr
	}

	cfg.LogLevel = strings.ToLower(input.LogLevel)
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}

	cfg.LogFormat = strings.ToLower(input.LogFormat)
	switch cfg.LogFormat {
	case "":
		cfg.LogFormat = DefaultLogFormat
	case "json", "text":
	default:
		return fmt.Errorf("invalid log format '%s'. must be json, text", input.LogFormat)
	}

	cfg.CORSOrigins = nil
	for origin := range strings.SplitSeq(input.CORSOrigins, ",") {
		if trimmed := strings.TrimSpace(origin); trimmed != "" {
			cfg.CORSOrigins = append(cfg.CORSOrigins, trimmed)
		}
	}
	if len(cfg.CORSOrigins) == 0 {
		cfg.CORSOrigins = []string{DefaultCORSOrigins}
	}
	return nil
}
