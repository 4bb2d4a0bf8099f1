package contract

import (
	"errors"
	"testing"

	"github.com/huangsam/attribution/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validInput returns a raw input that passes validation, for tests to tweak.
func validInput() *ConfigRawInput {
	return &ConfigRawInput{
		Model:        "linear",
		Limit:        10,
		Precision:    2,
		Output:       "text",
		StoreBackend: "sqlite",
		Color:        "yes",
		Count:        150,
	}
}

func TestProcessAndValidate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*ConfigRawInput)
		expectError bool
		check       func(t *testing.T, cfg *Config)
	}{
		{
			name:   "valid minimal config",
			mutate: func(*ConfigRawInput) {},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, schema.LinearModel, cfg.Model)
				assert.Equal(t, 10, cfg.ResultLimit)
				assert.Equal(t, schema.SQLiteBackend, cfg.StoreBackend)
				assert.Equal(t, DefaultAddr, cfg.Addr)
				assert.Equal(t, DefaultLogFormat, cfg.LogFormat)
				assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
				assert.True(t, cfg.UseColors)
			},
		},
		{
			name:   "positional model wins over flag",
			mutate: func(in *ConfigRawInput) { in.ArgStr = "Time-Decay" },
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, schema.TimeDecayModel, cfg.Model)
			},
		},
		{
			name:   "positional journey id keeps flag model",
			mutate: func(in *ConfigRawInput) { in.ArgStr = "J001"; in.Model = "w_shaped" },
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, schema.WShapedModel, cfg.Model)
				assert.Equal(t, "J001", cfg.JourneyID)
			},
		},
		{
			name:        "invalid model",
			mutate:      func(in *ConfigRawInput) { in.Model = "markov" },
			expectError: true,
		},
		{
			name:        "limit too large",
			mutate:      func(in *ConfigRawInput) { in.Limit = MaxResultLimit + 1 },
			expectError: true,
		},
		{
			name:        "count too large",
			mutate:      func(in *ConfigRawInput) { in.Count = schema.MaxJourneys + 1 },
			expectError: true,
		},
		{
			name:        "invalid precision",
			mutate:      func(in *ConfigRawInput) { in.Precision = 3 },
			expectError: true,
		},
		{
			name:        "invalid output",
			mutate:      func(in *ConfigRawInput) { in.Output = "xml" },
			expectError: true,
		},
		{
			name:        "parquet without file",
			mutate:      func(in *ConfigRawInput) { in.Output = "parquet" },
			expectError: true,
		},
		{
			name:        "invalid color",
			mutate:      func(in *ConfigRawInput) { in.Color = "sometimes" },
			expectError: true,
		},
		{
			name:        "invalid backend",
			mutate:      func(in *ConfigRawInput) { in.StoreBackend = "mongo" },
			expectError: true,
		},
		{
			name:        "mysql without connection",
			mutate:      func(in *ConfigRawInput) { in.StoreBackend = "mysql" },
			expectError: true,
		},
		{
			name:        "invalid log format",
			mutate:      func(in *ConfigRawInput) { in.LogFormat = "xml" },
			expectError: true,
		},
		{
			name: "cors origins are split and trimmed",
			mutate: func(in *ConfigRawInput) {
				in.CORSOrigins = "https://a.example, https://b.example ,"
			},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validInput()
			tt.mutate(input)
			cfg := &Config{}
			err := ProcessAndValidate(cfg, input)
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			if tt.check != nil {
				tt.check(t, cfg)
			}
		})
	}
}

func TestNormalizeModel(t *testing.T) {
	tests := []struct {
		input    string
		expected schema.AttributionModel
	}{
		{"first_touch", schema.FirstTouchModel},
		{"FIRST-TOUCH", schema.FirstTouchModel},
		{"last-touch", schema.LastTouchModel},
		{"Last_Non-Direct", schema.LastNonDirectModel},
		{"linear", schema.LinearModel},
		{" time_decay ", schema.TimeDecayModel},
		{"position-based", schema.PositionBasedModel},
		{"U-Shaped", schema.PositionBasedModel},
		{"w_shaped", schema.WShapedModel},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			model, err := NormalizeModel(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, model)
		})
	}

	t.Run("unknown model", func(t *testing.T) {
		_, err := NormalizeModel("shapley")
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidModel))
		assert.Contains(t, err.Error(), "shapley")
	})
}

func TestValidateDatabaseConnectionString(t *testing.T) {
	tests := []struct {
		name        string
		backend     schema.DatabaseBackend
		connStr     string
		expectError bool
	}{
		{"sqlite empty", schema.SQLiteBackend, "", false},
		{"none empty", schema.NoneBackend, "", false},
		{"mysql valid", schema.MySQLBackend, "root:pw@tcp(localhost:3306)/attribution", false},
		{"mysql no tcp", schema.MySQLBackend, "root:pw@localhost/attribution", true},
		{"mysql no db", schema.MySQLBackend, "root:pw@tcp(localhost:3306)", true},
		{"postgres valid", schema.PostgreSQLBackend, "host=localhost port=5432 user=postgres dbname=postgres", false},
		{"postgres no host", schema.PostgreSQLBackend, "port=5432 dbname=postgres", true},
		{"postgres no dbname", schema.PostgreSQLBackend, "host=localhost", true},
		{"postgres empty", schema.PostgreSQLBackend, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDatabaseConnectionString(tt.backend, tt.connStr)
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfigClone(t *testing.T) {
	cfg := &Config{Model: schema.LinearModel, CORSOrigins: []string{"*"}}
	clone := cfg.Clone()
	clone.CORSOrigins[0] = "https://example.com"
	clone.Model = schema.WShapedModel

	assert.Equal(t, "*", cfg.CORSOrigins[0])
	assert.Equal(t, schema.LinearModel, cfg.Model)
}
