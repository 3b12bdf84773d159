package nasa

import (
	"fmt"

	"github.com/fivetwenty-io/nasa-client/internal/constants"
)

// EarthImagery returns a Landsat 8 image for a location.
type EarthImagery struct{}

// EarthImageryParams locates the image. Dim is the width and height in
// degrees; Date picks the closest available image.
type EarthImageryParams struct {
	Lat  float64  `url:"lat"`
	Lon  float64  `url:"lon"`
	Dim  *float64 `url:"dim,omitempty"`
	Date *Date    `url:"date,omitempty"`
}

// Validate rejects coordinates outside the globe and non-positive sizes.
func (p EarthImageryParams) Validate() error {
	if p.Lat < -90 || p.Lat > 90 {
		return fmt.Errorf("%w: lat %g out of range", ErrInvalidParams, p.Lat)
	}

	if p.Lon < -180 || p.Lon > 180 {
		return fmt.Errorf("%w: lon %g out of range", ErrInvalidParams, p.Lon)
	}

	if p.Dim != nil && *p.Dim <= 0 {
		return fmt.Errorf("%w: dim must be positive", ErrInvalidParams)
	}

	return nil
}

// Name implements Spec.
func (EarthImagery) Name() string { return "earth_imagery" }

// BaseURL implements Spec.
func (EarthImagery) BaseURL() string {
	return constants.DefaultAPIEndpoint + "/planetary/earth/imagery"
}

// Path implements Spec.
func (EarthImagery) Path(EarthImageryParams) (string, error) { return "", nil }

// Decode implements Spec. The body is a PNG and is returned as is.
func (EarthImagery) Decode(body []byte) (Image, error) {
	image := make(Image, len(body))
	copy(image, body)

	return image, nil
}
