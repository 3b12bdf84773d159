package nasa

import (
	"encoding/json"
	"fmt"
)

// Spec is the static contract of one endpoint: where it lives, how a
// params value selects a path under it, and how its body decodes.
//
// Implementations are zero-size types; the package provides one per
// endpoint (APOD, NeoWs, GST, ...).
type Spec[P, R any] interface {
	// Name identifies the endpoint in logs, errors and metrics.
	Name() string
	// BaseURL is the endpoint URL without query string.
	BaseURL() string
	// Path returns the suffix appended to BaseURL for params. Most
	// endpoints return "".
	Path(params P) (string, error)
	// Decode turns a successful response body into R.
	Decode(body []byte) (R, error)
}

// DecodeJSON unmarshals body into R. An empty body decodes to the zero
// value, which is how some DONKI services report "no events".
func DecodeJSON[R any](body []byte) (R, error) {
	var out R

	if len(body) == 0 {
		return out, nil
	}

	err := json.Unmarshal(body, &out)
	if err != nil {
		var zero R

		return zero, fmt.Errorf("unmarshalling %T: %w", out, err)
	}

	return out, nil
}
