package schema

// Custom string types for type safety.
type (
	// OutputMode represents the format of the output.
	OutputMode string

	// DatabaseBackend represents the database backend for snapshots and history.
	DatabaseBackend string

	// GradeBand represents a coarse label for an average grade.
	GradeBand string
)

// All output modes supported.
const (
	TextOut    OutputMode = "text" // default
	CSVOut     OutputMode = "csv"
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
	XLSXOut    OutputMode = "xlsx"
)

// All database backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite" // default
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	RedisBackend      DatabaseBackend = "redis" // snapshots only
	NoneBackend       DatabaseBackend = "none"
)

// All grade bands supported.
const (
	ExcellentBand GradeBand = "Excellent"
	GoodBand      GradeBand = "Good"
	PassBand      GradeBand = "Pass"
	FailBand      GradeBand = "Fail"
	NoneBand      GradeBand = "-"
)

// Placeholder is rendered for any absent statistic.
const Placeholder = "-"

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut:    {},
	CSVOut:     {},
	JSONOut:    {},
	ParquetOut: {},
	XLSXOut:    {},
}

// BinaryOutputModes lists output modes that cannot be written to a terminal.
var BinaryOutputModes = map[OutputMode]struct{}{
	ParquetOut: {},
	XLSXOut:    {},
}

// ValidSnapshotBackends lists all valid snapshot backends.
var ValidSnapshotBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	RedisBackend:      {},
	NoneBackend:       {},
}

// ValidHistoryBackends lists all valid history backends.
var ValidHistoryBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}
