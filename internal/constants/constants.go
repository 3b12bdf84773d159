package constants

import "time"

// API locations.
const (
	// DefaultAPIEndpoint is the root every endpoint specification lives under.
	DefaultAPIEndpoint = "https://api.nasa.gov"

	// DefaultAPIKeyEnv is the environment variable holding the API key.
	DefaultAPIKeyEnv = "NASA_API_KEY"

	// DefaultEnvFile is the dotenv file consulted when the variable is unset.
	DefaultEnvFile = ".env"

	// DefaultUserAgent is sent when no user agent is configured.
	DefaultUserAgent = "nasa-client-go"
)

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600

	// OutputFilePerm is the permission for downloaded payloads.
	OutputFilePerm = 0644
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second

	// ExtendedHTTPTimeout is used for image downloads.
	ExtendedHTTPTimeout = 45 * time.Second
)

// Date windows used by defaults.
const (
	// DONKIDefaultWindowDays is how far back DONKI services look by default.
	DONKIDefaultWindowDays = 30

	// NeoFeedMaxDays is the longest range the NeoWs feed accepts.
	NeoFeedMaxDays = 7
)

// UI and display constants.
const (
	// NotAvailable is used when information is not available.
	NotAvailable = "N/A"

	// MaskedSecret is used to hide sensitive information.
	MaskedSecret = "***"

	// MaxCellWidth truncates long text in table output.
	MaxCellWidth = 60
)

// Boolean string constants.
const (
	// BooleanTrue string representation.
	BooleanTrue = "true"

	// BooleanFalse string representation.
	BooleanFalse = "false"
)

// Format constants.
const (
	// FormatTable for table output format.
	FormatTable = "table"

	// FormatJSON for JSON output format.
	FormatJSON = "json"

	// FormatYAML for YAML output format.
	FormatYAML = "yaml"

	// JSONIndentSize is the number of spaces for JSON indentation.
	JSONIndentSize = 2
)

// Metrics.
const (
	// MetricsNamespace prefixes every exported metric.
	MetricsNamespace = "nasa"
)
