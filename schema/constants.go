package schema

// Custom string types for type safety.
type (
	// AttributionModel identifies a credit assignment rule.
	AttributionModel string

	// OutputMode represents the format of the output.
	OutputMode string

	// DatabaseBackend represents the database backend for the journey store.
	DatabaseBackend string
)

// All attribution models supported.
const (
	FirstTouchModel    AttributionModel = "first_touch"
	LastTouchModel     AttributionModel = "last_touch"
	LastNonDirectModel AttributionModel = "last_non_direct"
	LinearModel        AttributionModel = "linear" // default
	TimeDecayModel     AttributionModel = "time_decay"
	PositionBasedModel AttributionModel = "position_based"
	WShapedModel       AttributionModel = "w_shaped"
)

// UShapedAlias is accepted as another name for PositionBasedModel.
const UShapedAlias = "u_shaped"

// DirectChannel is skipped by the last non-direct model.
const DirectChannel = "Direct Traffic"

// All output modes supported.
const (
	CSVOut     OutputMode = "csv"
	TextOut    OutputMode = "text" // default
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// All store backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite" // default
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none"
)

// MaxJourneys bounds a single snapshot read from the store.
const MaxJourneys = 1000

// AllModels lists every model in comparison order.
var AllModels = []AttributionModel{
	FirstTouchModel,
	LastTouchModel,
	LastNonDirectModel,
	LinearModel,
	TimeDecayModel,
	PositionBasedModel,
	WShapedModel,
}

// VarianceModels lists the models that feed the variance analysis.
// Last non-direct is left out.
var VarianceModels = []AttributionModel{
	FirstTouchModel,
	LastTouchModel,
	LinearModel,
	TimeDecayModel,
	PositionBasedModel,
	WShapedModel,
}

// ModelDisplayNames maps each model to its human readable name.
var ModelDisplayNames = map[AttributionModel]string{
	FirstTouchModel:    "First-Touch",
	LastTouchModel:     "Last-Touch",
	LastNonDirectModel: "Last Non-Direct",
	LinearModel:        "Linear",
	TimeDecayModel:     "Time Decay",
	PositionBasedModel: "U-Shaped",
	WShapedModel:       "W-Shaped",
}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	CSVOut:     {},
	TextOut:    {},
	JSONOut:    {},
	ParquetOut: {},
}

// ValidModels lists all valid attribution models.
var ValidModels = map[AttributionModel]struct{}{
	FirstTouchModel:    {},
	LastTouchModel:     {},
	LastNonDirectModel: {},
	LinearModel:        {},
	TimeDecayModel:     {},
	PositionBasedModel: {},
	WShapedModel:       {},
}

// ValidDatabaseBackends lists all valid store backends.
var ValidDatabaseBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}

// DisplayName returns the human readable name of the model.
func (m AttributionModel) DisplayName() string {
	if name, ok := ModelDisplayNames[m]; ok {
		return name
	}
	return string(m)
}

// ModelRules describes how each model splits a journey's value.
var ModelRules = map[AttributionModel]string{
	FirstTouchModel:    "100% to the first touchpoint",
	LastTouchModel:     "100% to the last touchpoint",
	LastNonDirectModel: "100% to the last touchpoint that is not Direct Traffic, else the last touchpoint",
	LinearModel:        "equal share to every touchpoint",
	TimeDecayModel:     "weight 2^(-days_before/7) per touchpoint, normalized",
	PositionBasedModel: "40% first, 40% last, 20% split over the middle",
	WShapedModel:       "30% first, 30% middle, 30% last, 10% split over the rest",
}
