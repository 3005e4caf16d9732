package constants

import "time"

// Time constants used throughout the application
const (
	// MapObjectEventsExpirePeriod is how long recorded map object events
	// are kept before the eye trims them. Three months.
	MapObjectEventsExpirePeriod = 24 * 30 * 3 * time.Hour
)
