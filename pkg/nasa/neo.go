package nasa

import (
	"fmt"
	"strconv"

	"github.com/fivetwenty-io/nasa-client/internal/constants"
)

// NeoWs is the Near Earth Object Web Service.
type NeoWs struct{}

// NeoParams is one of NeoFeed, NeoLookup or NeoBrowse. A nil NeoParams
// requests the feed with the service's default window.
type NeoParams interface {
	neoPath() string
}

// NeoFeed lists asteroids by closest approach date. The service caps the
// window at seven days.
type NeoFeed struct {
	StartDate *Date `url:"start_date,omitempty"`
	EndDate   *Date `url:"end_date,omitempty"`
}

// NeoLookup fetches one asteroid by its JPL SPK-ID. The id is part of the
// path, not the query.
type NeoLookup struct {
	AsteroidID int `url:"-"`
}

// NeoBrowse pages through the whole asteroid data set.
type NeoBrowse struct{}

func (NeoFeed) neoPath() string { return "/feed" }

func (p NeoLookup) neoPath() string { return "/neo/" + strconv.Itoa(p.AsteroidID) }

func (NeoBrowse) neoPath() string { return "/neo/browse" }

// Validate rejects inverted or oversized windows.
func (p NeoFeed) Validate() error {
	if p.StartDate == nil || p.EndDate == nil {
		return nil
	}

	if p.EndDate.Before(*p.StartDate) {
		return fmt.Errorf("%w: end_date is before start_date", ErrInvalidParams)
	}

	if p.StartDate.AddDays(constants.NeoFeedMaxDays).Before(*p.EndDate) {
		return fmt.Errorf("%w: feed window exceeds %d days", ErrInvalidParams, constants.NeoFeedMaxDays)
	}

	return nil
}

// Validate rejects non-positive ids.
func (p NeoLookup) Validate() error {
	if p.AsteroidID <= 0 {
		return fmt.Errorf("%w: asteroid id must be positive", ErrInvalidParams)
	}

	return nil
}

// DefaultNeoParams requests the feed for the current UTC date.
func DefaultNeoParams() NeoParams {
	today := Today()

	return NeoFeed{StartDate: &today, EndDate: &today}
}

// Name implements Spec.
func (NeoWs) Name() string { return "neows" }

// BaseURL implements Spec.
func (NeoWs) BaseURL() string { return constants.DefaultAPIEndpoint + "/neo/rest/v1" }

// Path implements Spec.
func (NeoWs) Path(params NeoParams) (string, error) {
	if params == nil {
		return NeoFeed{}.neoPath(), nil
	}

	return params.neoPath(), nil
}

// Decode implements Spec. The three variants answer with different
// shapes, so the body stays an untyped document.
func (NeoWs) Decode(body []byte) (Document, error) { return DecodeJSON[Document](body) }
