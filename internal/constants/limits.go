package constants

// Numeric limits and configuration values
const (
	// MaxHierarchyReaders is the maximum number of concurrent hierarchy
	// readers. More readers mostly add contention on the shared dump
	// cursor, and every reader holds a full partition in memory until
	// the merge.
	MaxHierarchyReaders = 8

	// DefaultHierarchyReaders is the default reader count used by the
	// command line tools when none is requested.
	DefaultHierarchyReaders = 4

	// ReadLogBatch is the number of loaded entries between two progress
	// log lines during a hierarchy read.
	ReadLogBatch = 100000

	// HealthOKStatus is the exit status for a healthy hierarchy dump.
	HealthOKStatus = 0

	// HealthCriticalStatus is the exit status for a critical dump problem.
	HealthCriticalStatus = 2

	// HealthMaxBadRatio is the highest tolerated ratio of dropped records
	// to non-empty lines before a dump is reported as critical.
	HealthMaxBadRatio = 0.01

	// MaxDataZoom is the deepest zoom level map data is generated for.
	// Tile requests below that level are clipped to it.
	MaxDataZoom = 17
)
