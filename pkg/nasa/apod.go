package nasa

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/fivetwenty-io/nasa-client/internal/constants"
)

// APOD is the Astronomy Picture of the Day endpoint.
type APOD struct{}

// APODParams selects pictures by a single date, a date range, or a random
// count. With no field set the service returns today's picture.
type APODParams struct {
	Date      *Date `url:"date,omitempty"`
	StartDate *Date `url:"start_date,omitempty"`
	EndDate   *Date `url:"end_date,omitempty"`
	Count     *int  `url:"count,omitempty"`
	Thumbs    *bool `url:"thumbs,omitempty"`
}

// DefaultAPODParams requests the picture for the current UTC date.
func DefaultAPODParams() APODParams {
	today := Today()

	return APODParams{Date: &today}
}

// Validate rejects combinations the service refuses.
func (p APODParams) Validate() error {
	switch {
	case p.Count != nil && (p.Date != nil || p.StartDate != nil || p.EndDate != nil):
		return fmt.Errorf("%w: count cannot be combined with date or a date range", ErrInvalidParams)
	case p.Count != nil && *p.Count <= 0:
		return fmt.Errorf("%w: count must be positive", ErrInvalidParams)
	case p.Date != nil && (p.StartDate != nil || p.EndDate != nil):
		return fmt.Errorf("%w: date cannot be combined with a date range", ErrInvalidParams)
	case p.EndDate != nil && p.StartDate == nil:
		return fmt.Errorf("%w: end_date requires start_date", ErrInvalidParams)
	case p.StartDate != nil && p.EndDate != nil && p.EndDate.Before(*p.StartDate):
		return fmt.Errorf("%w: end_date is before start_date", ErrInvalidParams)
	}

	return nil
}

// APODImage is one picture of the day.
type APODImage struct {
	Date           string `json:"date"                     yaml:"date"`
	Title          string `json:"title"                    yaml:"title"`
	Explanation    string `json:"explanation"              yaml:"explanation"`
	MediaType      string `json:"media_type"               yaml:"media_type"`
	URL            string `json:"url"                      yaml:"url"`
	HDURL          string `json:"hdurl,omitempty"          yaml:"hdurl,omitempty"`
	ThumbnailURL   string `json:"thumbnail_url,omitempty"  yaml:"thumbnail_url,omitempty"`
	Copyright      string `json:"copyright,omitempty"      yaml:"copyright,omitempty"`
	ServiceVersion string `json:"service_version"          yaml:"service_version"`
}

// APODResponse holds the returned pictures. The service answers a single
// date with an object and a range or count with an array; both decode here.
type APODResponse []APODImage

// UnmarshalJSON accepts either a single object or an array.
func (r *APODResponse) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		var image APODImage

		err := json.Unmarshal(trimmed, &image)
		if err != nil {
			return fmt.Errorf("decoding APOD image: %w", err)
		}

		*r = APODResponse{image}

		return nil
	}

	var images []APODImage

	err := json.Unmarshal(trimmed, &images)
	if err != nil {
		return fmt.Errorf("decoding APOD images: %w", err)
	}

	*r = images

	return nil
}

// Name implements Spec.
func (APOD) Name() string { return "apod" }

// BaseURL implements Spec.
func (APOD) BaseURL() string { return constants.DefaultAPIEndpoint + "/planetary/apod" }

// Path implements Spec.
func (APOD) Path(APODParams) (string, error) { return "", nil }

// Decode implements Spec.
func (APOD) Decode(body []byte) (APODResponse, error) { return DecodeJSON[APODResponse](body) }
