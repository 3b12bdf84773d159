package constants

import "errors"

// Configuration errors.
var (
	ErrUnknownConfigKey  = errors.New("unknown configuration key")
	ErrUseSetKey         = errors.New("use 'nasa config set-key' to store the API key")
	ErrEmptyAPIKey       = errors.New("API key must not be empty")
	ErrInvalidOutput     = errors.New("output must be one of table, json, yaml")
	ErrInvalidTimeout    = errors.New("timeout must be a positive duration such as 30s")
	ErrNoHomeDirectory   = errors.New("could not determine home directory")
	ErrMetricsNotEnabled = errors.New("metrics registry is not initialized")
)

// Command errors.
var (
	ErrOutputFileRequired = errors.New("--out is required for image downloads")
	ErrInvalidAsteroidID  = errors.New("asteroid id must be a positive integer")
	ErrRawPathRequired    = errors.New("endpoint path must start with '/'")
	ErrRawNotJSON         = errors.New("response is not JSON")
	ErrInvalidEnumValue   = errors.New("invalid value")
)
