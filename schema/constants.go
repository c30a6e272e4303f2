package schema

// Custom string types for type safety.
type (
	// Category represents a behavioral population cluster.
	Category string

	// HourBand represents a histogram band for a single project's hours.
	HourBand string

	// OutputMode represents the format of the output.
	OutputMode string

	// DatabaseBackend represents the database backend for the user store.
	DatabaseBackend string
)

// All behavioral clusters. Every user lands in exactly one.
const (
	WhaleCategory   Category = "whale"
	ShipperCategory Category = "shipper"
	NewbieCategory  Category = "newbie"
)

// All histogram bands, from least to most project effort.
const (
	MinimalBand  HourBand = "minimal"
	LightBand    HourBand = "light"
	SolidBand    HourBand = "solid"
	DeepBand     HourBand = "deep"
	MarathonBand HourBand = "marathon"
)

// All output modes supported.
const (
	TextOut OutputMode = "text" // default
	JSONOut OutputMode = "json"
	CSVOut  OutputMode = "csv"
)

// All store backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite" // default
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none"
)

// AllCategories returns a list of all behavioral clusters.
var AllCategories = []Category{WhaleCategory, ShipperCategory, NewbieCategory}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut: {},
	JSONOut: {},
	CSVOut:  {},
}

// ValidDatabaseBackends lists all valid store backends.
var ValidDatabaseBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}

// CategoryDescription returns the reviewer-facing description for a cluster.
func CategoryDescription(c Category) string {
	switch c {
	case WhaleCategory:
		return "High engagement across hours, projects and shipping"
	case NewbieCategory:
		return "Just getting started; little time logged and nothing shipped yet"
	default:
		return "Actively building and shipping at a typical pace"
	}
}

// BandDescription returns the reviewer-facing description for an hour band.
func BandDescription(b HourBand) string {
	switch b {
	case MinimalBand:
		return "Barely started relative to the population"
	case LightBand:
		return "Below the typical project effort"
	case SolidBand:
		return "Around the typical project effort"
	case DeepBand:
		return "Well above the typical project effort"
	default: // MarathonBand
		return "Among the most worked-on projects in the program"
	}
}
