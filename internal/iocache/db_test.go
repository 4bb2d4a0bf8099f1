package iocache

import (
	"testing"
	"time"

	"github.com/huangsam/attribution/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateTableName(t *testing.T) {
	tests := []struct {
		name    string
		wantErr bool
	}{
		{"journeys", false},
		{"_touchpoints2", false},
		{"", true},
		{"2journeys", true},
		{"journeys; DROP TABLE x", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateTableName(tt.name)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestQuoteTableName(t *testing.T) {
	assert.Equal(t, "`journeys`", quoteTableName("journeys", schema.MySQLBackend))
	assert.Equal(t, `"journeys"`, quoteTableName("journeys", schema.PostgreSQLBackend))
	assert.Equal(t, `"journeys"`, quoteTableName("journeys", schema.SQLiteBackend))
}

func TestPlaceholders(t *testing.T) {
	assert.Equal(t, "$1, $2, $3", placeholders(schema.PostgreSQLBackend, 3))
	assert.Equal(t, "?, ?, ?", placeholders(schema.MySQLBackend, 3))
	assert.Equal(t, "?", placeholders(schema.SQLiteBackend, 1))
}

func TestNormalizeMySQLDSN(t *testing.T) {
	dsn, err := normalizeMySQLDSN("user:pass@tcp(localhost:3306)/attribution")
	require.NoError(t, err)
	assert.Contains(t, dsn, "parseTime=true")

	_, err = normalizeMySQLDSN("not a dsn")
	assert.Error(t, err)
}

func TestTimeRoundTrip(t *testing.T) {
	ts := time.Date(2025, 3, 15, 12, 30, 45, 123456000, time.FixedZone("EST", -5*3600))

	stored := timeArg(ts, schema.SQLiteBackend)
	assert.Equal(t, "2025-03-15 17:30:45.123456", stored)

	parsed, err := parseTimeValue(stored)
	require.NoError(t, err)
	assert.True(t, ts.Equal(parsed))
	assert.Equal(t, time.UTC, parsed.Location())

	parsed, err = parseTimeValue([]byte("2025-03-15 17:30:45"))
	require.NoError(t, err)
	assert.Equal(t, 17, parsed.Hour())

	native := timeArg(ts, schema.PostgreSQLBackend)
	assert.IsType(t, time.Time{}, native)

	parsed, err = parseTimeValue(nil)
	require.NoError(t, err)
	assert.True(t, parsed.IsZero())

	_, err = parseTimeValue(42)
	assert.Error(t, err)

	_, err = parseTimeValue("yesterday")
	assert.Error(t, err)
}

func TestOpenDB_Unsupported(t *testing.T) {
	_, err := openDB(schema.NoneBackend, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported store backend")
}
