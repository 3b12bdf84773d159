package nasa

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DateLayout is the ISO-8601 calendar date format used by every endpoint.
const DateLayout = "2006-01-02"

// Date is a calendar date without a time of day.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate returns the date for the given year, month and day, normalized
// the way time.Date normalizes out-of-range values.
func NewDate(year int, month time.Month, day int) Date {
	return DateOf(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// DateOf returns the calendar date of t in t's location.
func DateOf(t time.Time) Date {
	year, month, day := t.Date()

	return Date{Year: year, Month: month, Day: day}
}

// Today returns the current date in UTC.
func Today() Date {
	return DateOf(time.Now().UTC())
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, fmt.Errorf("%w %q: expected YYYY-MM-DD", ErrInvalidDate, s)
	}

	return DateOf(t), nil
}

// Time returns midnight UTC on d.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// AddDays returns d shifted by n days.
func (d Date) AddDays(n int) Date {
	return DateOf(d.Time().AddDate(0, 0, n))
}

// Before reports whether d is strictly before other.
func (d Date) Before(other Date) bool {
	return d.Time().Before(other.Time())
}

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool {
	return d == Date{}
}

// String returns d as YYYY-MM-DD.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// EncodeValues lets the query encoder emit d as a single ISO-8601 value.
func (d Date) EncodeValues(key string, values *url.Values) error {
	values.Add(key, d.String())

	return nil
}

// MarshalJSON encodes d as a YYYY-MM-DD string.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON decodes a YYYY-MM-DD string.
func (d *Date) UnmarshalJSON(data []byte) error {
	var s string

	err := json.Unmarshal(data, &s)
	if err != nil {
		return fmt.Errorf("decoding date: %w", err)
	}

	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}

	*d = parsed

	return nil
}

// Ptr returns a pointer to v, for filling optional params fields.
func Ptr[T any](v T) *T {
	return &v
}

// Document is an untyped JSON object, used by endpoints without a
// strongly typed response.
type Document = map[string]interface{}

// DocumentList is an untyped JSON array of objects.
type DocumentList = []map[string]interface{}

// Image is a raw image payload.
type Image []byte

// Response is what the transport returns for a completed round-trip, and
// what response interceptors observe.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
	Error      error
}

// Request describes an outgoing call as seen by request interceptors.
// URL has the credential masked.
type Request struct {
	Endpoint string
	Method   string
	URL      string
	Typed    bool
	Metadata map[string]interface{}
}

// Transport performs a synchronous GET. It returns an error only when no
// HTTP response was obtained; status handling belongs to the Client.
type Transport interface {
	Get(ctx context.Context, rawURL string) (*Response, error)
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

type noopLogger struct{}

func (noopLogger) Debug(string, map[string]interface{}) {}
func (noopLogger) Info(string, map[string]interface{})  {}
func (noopLogger) Warn(string, map[string]interface{})  {}
func (noopLogger) Error(string, map[string]interface{}) {}

// Config represents client configuration for building typed clients.
//
// # Credentials
//
// If APIKey is set it is used as a static credential for every typed
// request. Otherwise the environment variable named by APIKeyEnv
// (default NASA_API_KEY) is consulted on every request, falling back to
// the env file named by EnvFile (default ".env"). A missing env file is
// not an error.
//
// # Timeouts
//
// HTTPTimeout bounds each round-trip at the transport. There are no
// retries; per-call deadlines can also be set on the context.
type Config struct {
	// APIEndpoint overrides the API root (default "https://api.nasa.gov").
	APIEndpoint string
	// APIKey is a static credential. Leave empty to read the environment.
	APIKey string
	// APIKeyEnv names the environment variable holding the credential.
	APIKeyEnv string
	// EnvFile is a dotenv file consulted when the variable is unset.
	EnvFile string
	// HTTPTimeout bounds each request.
	HTTPTimeout time.Duration
	// UserAgent overrides the default User-Agent header.
	UserAgent string
	// Debug enables verbose transport logging when a Logger is provided.
	Debug bool
	// Logger: optional structured logger used by the client and transport.
	Logger Logger
	// Metrics: optional collector fed by every request.
	Metrics *MetricsCollector
}
