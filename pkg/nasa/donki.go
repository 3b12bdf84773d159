package nasa

import (
	"fmt"

	"github.com/fivetwenty-io/nasa-client/internal/constants"
)

// DONKI (Space Weather Database Of Notifications, Knowledge, Information)
// services share one root and, mostly, one date-range parameter set.

const donkiRoot = constants.DefaultAPIEndpoint + "/DONKI"

// DateRange bounds a DONKI query. When unset the service defaults to the
// last 30 days ending today (UTC).
type DateRange struct {
	StartDate *Date `url:"startDate,omitempty"`
	EndDate   *Date `url:"endDate,omitempty"`
}

// Validate rejects an inverted range.
func (r DateRange) Validate() error {
	if r.StartDate != nil && r.EndDate != nil && r.EndDate.Before(*r.StartDate) {
		return fmt.Errorf("%w: endDate is before startDate", ErrInvalidParams)
	}

	return nil
}

// LastDays returns the range covering the n days up to and including today.
func LastDays(n int) DateRange {
	end := Today()
	start := end.AddDays(-n)

	return DateRange{StartDate: &start, EndDate: &end}
}

// DefaultDateRange is the window DONKI applies when no dates are sent.
func DefaultDateRange() DateRange {
	return LastDays(constants.DONKIDefaultWindowDays)
}

// CMECatalog selects the catalog for CME analyses.
type CMECatalog string

// CME analysis catalogs.
const (
	CMECatalogAll      CMECatalog = "ALL"
	CMECatalogSWRC     CMECatalog = "SWRC_CATALOG"
	CMECatalogJangEtAl CMECatalog = "JANG_ET_AL_CATALOG"
)

// CMEAnalysisParams filters coronal mass ejection analyses. Speed and
// HalfAngle are lower limits.
type CMEAnalysisParams struct {
	StartDate         *Date       `url:"startDate,omitempty"`
	EndDate           *Date       `url:"endDate,omitempty"`
	MostAccurateOnly  *bool       `url:"mostAccurateOnly,omitempty"`
	CompleteEntryOnly *bool       `url:"completeEntryOnly,omitempty"`
	Speed             *float64    `url:"speed,omitempty"`
	HalfAngle         *float64    `url:"halfAngle,omitempty"`
	Catalog           *CMECatalog `url:"catalog,omitempty"`
	Keyword           *string     `url:"keyword,omitempty"`
}

// Validate rejects an inverted range and negative limits.
func (p CMEAnalysisParams) Validate() error {
	err := DateRange{StartDate: p.StartDate, EndDate: p.EndDate}.Validate()
	if err != nil {
		return err
	}

	if p.Speed != nil && *p.Speed < 0 {
		return fmt.Errorf("%w: speed must not be negative", ErrInvalidParams)
	}

	if p.HalfAngle != nil && *p.HalfAngle < 0 {
		return fmt.Errorf("%w: halfAngle must not be negative", ErrInvalidParams)
	}

	return nil
}

// IPSLocation selects where an interplanetary shock was observed.
type IPSLocation string

// Interplanetary shock locations.
const (
	IPSLocationEarth     IPSLocation = "Earth"
	IPSLocationMessenger IPSLocation = "MESSENGER"
	IPSLocationStereoA   IPSLocation = "STEREO A"
	IPSLocationStereoB   IPSLocation = "STEREO B"
)

// IPSCatalog selects the catalog for interplanetary shocks.
type IPSCatalog string

// Interplanetary shock catalogs.
const (
	IPSCatalogAll              IPSCatalog = "ALL"
	IPSCatalogSWRC             IPSCatalog = "SWRC_CATALOG"
	IPSCatalogWinslowMessenger IPSCatalog = "WINSLOW_MESSENGER_ICME_CATALOG"
)

// IPSParams filters interplanetary shocks.
type IPSParams struct {
	StartDate *Date        `url:"startDate,omitempty"`
	EndDate   *Date        `url:"endDate,omitempty"`
	Location  *IPSLocation `url:"location,omitempty"`
	Catalog   *IPSCatalog  `url:"catalog,omitempty"`
}

// Validate rejects an inverted range.
func (p IPSParams) Validate() error {
	return DateRange{StartDate: p.StartDate, EndDate: p.EndDate}.Validate()
}

// NotificationType filters DONKI notifications.
type NotificationType string

// Notification types.
const (
	NotificationAll    NotificationType = "all"
	NotificationFLR    NotificationType = "FLR"
	NotificationSEP    NotificationType = "SEP"
	NotificationCME    NotificationType = "CME"
	NotificationIPS    NotificationType = "IPS"
	NotificationMPC    NotificationType = "MPC"
	NotificationGST    NotificationType = "GST"
	NotificationRBE    NotificationType = "RBE"
	NotificationReport NotificationType = "report"
)

// NotificationsParams filters notifications. The service caps the window
// at 30 days.
type NotificationsParams struct {
	StartDate *Date             `url:"startDate,omitempty"`
	EndDate   *Date             `url:"endDate,omitempty"`
	Type      *NotificationType `url:"type,omitempty"`
}

// Validate rejects an inverted range.
func (p NotificationsParams) Validate() error {
	return DateRange{StartDate: p.StartDate, EndDate: p.EndDate}.Validate()
}

// LinkedEvent references another DONKI activity.
type LinkedEvent struct {
	ActivityID string `json:"activityID" yaml:"activityID"`
}

// Instrument names an observing instrument.
type Instrument struct {
	DisplayName string `json:"displayName" yaml:"displayName"`
}

// CMEEvent is a coronal mass ejection.
type CMEEvent struct {
	ActivityID      string        `json:"activityID"                yaml:"activityID"`
	Catalog         string        `json:"catalog"                   yaml:"catalog"`
	StartTime       string        `json:"startTime"                 yaml:"startTime"`
	SourceLocation  string        `json:"sourceLocation"            yaml:"sourceLocation"`
	ActiveRegionNum *int          `json:"activeRegionNum,omitempty" yaml:"activeRegionNum,omitempty"`
	Note            string        `json:"note"                      yaml:"note"`
	Link            string        `json:"link"                      yaml:"link"`
	Instruments     []Instrument  `json:"instruments,omitempty"     yaml:"instruments,omitempty"`
	LinkedEvents    []LinkedEvent `json:"linkedEvents,omitempty"    yaml:"linkedEvents,omitempty"`
}

// CMEAnalysisEntry is one analysis of a coronal mass ejection.
type CMEAnalysisEntry struct {
	Time215         string   `json:"time21_5"        yaml:"time21_5"`
	Latitude        *float64 `json:"latitude"        yaml:"latitude"`
	Longitude       *float64 `json:"longitude"       yaml:"longitude"`
	HalfAngle       *float64 `json:"halfAngle"       yaml:"halfAngle"`
	Speed           *float64 `json:"speed"           yaml:"speed"`
	Type            string   `json:"type"            yaml:"type"`
	IsMostAccurate  bool     `json:"isMostAccurate"  yaml:"isMostAccurate"`
	AssociatedCMEID string   `json:"associatedCMEID" yaml:"associatedCMEID"`
	Catalog         string   `json:"catalog"         yaml:"catalog"`
	Note            string   `json:"note"            yaml:"note"`
	Link            string   `json:"link"            yaml:"link"`
}

// KpIndex is one planetary K-index observation.
type KpIndex struct {
	ObservedTime string  `json:"observedTime" yaml:"observedTime"`
	KpIndex      float64 `json:"kpIndex"      yaml:"kpIndex"`
	Source       string  `json:"source"       yaml:"source"`
}

// GeomagneticStorm is a GST event.
type GeomagneticStorm struct {
	GSTID        string        `json:"gstID"                  yaml:"gstID"`
	StartTime    string        `json:"startTime"              yaml:"startTime"`
	AllKpIndex   []KpIndex     `json:"allKpIndex"             yaml:"allKpIndex"`
	LinkedEvents []LinkedEvent `json:"linkedEvents,omitempty" yaml:"linkedEvents,omitempty"`
	Link         string        `json:"link"                   yaml:"link"`
}

// MaxKpIndex returns the highest observed K-index, or 0 when none.
func (g GeomagneticStorm) MaxKpIndex() float64 {
	maxKp := 0.0
	for _, kp := range g.AllKpIndex {
		if kp.KpIndex > maxKp {
			maxKp = kp.KpIndex
		}
	}

	return maxKp
}

// InterplanetaryShock is an IPS event.
type InterplanetaryShock struct {
	ActivityID  string       `json:"activityID"            yaml:"activityID"`
	Catalog     string       `json:"catalog"               yaml:"catalog"`
	Location    string       `json:"location"              yaml:"location"`
	EventTime   string       `json:"eventTime"             yaml:"eventTime"`
	Link        string       `json:"link"                  yaml:"link"`
	Instruments []Instrument `json:"instruments,omitempty" yaml:"instruments,omitempty"`
}

// SolarFlare is a FLR event.
type SolarFlare struct {
	FlrID           string        `json:"flrID"                  yaml:"flrID"`
	BeginTime       string        `json:"beginTime"              yaml:"beginTime"`
	PeakTime        string        `json:"peakTime"               yaml:"peakTime"`
	EndTime         string        `json:"endTime"                yaml:"endTime"`
	ClassType       string        `json:"classType"              yaml:"classType"`
	SourceLocation  string        `json:"sourceLocation"         yaml:"sourceLocation"`
	ActiveRegionNum *int          `json:"activeRegionNum"        yaml:"activeRegionNum"`
	LinkedEvents    []LinkedEvent `json:"linkedEvents,omitempty" yaml:"linkedEvents,omitempty"`
	Link            string        `json:"link"                   yaml:"link"`
}

// Notification is a DONKI message.
type Notification struct {
	MessageType      string `json:"messageType"      yaml:"messageType"`
	MessageID        string `json:"messageID"        yaml:"messageID"`
	MessageURL       string `json:"messageURL"       yaml:"messageURL"`
	MessageIssueTime string `json:"messageIssueTime" yaml:"messageIssueTime"`
	MessageBody      string `json:"messageBody"      yaml:"messageBody"`
}

// CME is the coronal mass ejection service.
type CME struct{}

// Name implements Spec.
func (CME) Name() string { return "donki_cme" }

// BaseURL implements Spec.
func (CME) BaseURL() string { return donkiRoot + "/CME" }

// Path implements Spec.
func (CME) Path(DateRange) (string, error) { return "", nil }

// Decode implements Spec.
func (CME) Decode(body []byte) ([]CMEEvent, error) { return DecodeJSON[[]CMEEvent](body) }

// CMEAnalysis is the coronal mass ejection analysis service.
type CMEAnalysis struct{}

// Name implements Spec.
func (CMEAnalysis) Name() string { return "donki_cme_analysis" }

// BaseURL implements Spec.
func (CMEAnalysis) BaseURL() string { return donkiRoot + "/CMEAnalysis" }

// Path implements Spec.
func (CMEAnalysis) Path(CMEAnalysisParams) (string, error) { return "", nil }

// Decode implements Spec.
func (CMEAnalysis) Decode(body []byte) ([]CMEAnalysisEntry, error) {
	return DecodeJSON[[]CMEAnalysisEntry](body)
}

// GST is the geomagnetic storm service.
type GST struct{}

// Name implements Spec.
func (GST) Name() string { return "donki_gst" }

// BaseURL implements Spec.
func (GST) BaseURL() string { return donkiRoot + "/GST" }

// Path implements Spec.
func (GST) Path(DateRange) (string, error) { return "", nil }

// Decode implements Spec.
func (GST) Decode(body []byte) ([]GeomagneticStorm, error) {
	return DecodeJSON[[]GeomagneticStorm](body)
}

// IPS is the interplanetary shock service.
type IPS struct{}

// Name implements Spec.
func (IPS) Name() string { return "donki_ips" }

// BaseURL implements Spec.
func (IPS) BaseURL() string { return donkiRoot + "/IPS" }

// Path implements Spec.
func (IPS) Path(IPSParams) (string, error) { return "", nil }

// Decode implements Spec.
func (IPS) Decode(body []byte) ([]InterplanetaryShock, error) {
	return DecodeJSON[[]InterplanetaryShock](body)
}

// FLR is the solar flare service.
type FLR struct{}

// Name implements Spec.
func (FLR) Name() string { return "donki_flr" }

// BaseURL implements Spec.
func (FLR) BaseURL() string { return donkiRoot + "/FLR" }

// Path implements Spec.
func (FLR) Path(DateRange) (string, error) { return "", nil }

// Decode implements Spec.
func (FLR) Decode(body []byte) ([]SolarFlare, error) { return DecodeJSON[[]SolarFlare](body) }

// Notifications is the DONKI notifications service.
type Notifications struct{}

// Name implements Spec.
func (Notifications) Name() string { return "donki_notifications" }

// BaseURL implements Spec.
func (Notifications) BaseURL() string { return donkiRoot + "/notifications" }

// Path implements Spec.
func (Notifications) Path(NotificationsParams) (string, error) { return "", nil }

// Decode implements Spec.
func (Notifications) Decode(body []byte) ([]Notification, error) {
	return DecodeJSON[[]Notification](body)
}

// DateRangeSpec describes the DONKI services that take only a date range
// and are returned untyped: SEP, MPC, RBE, HSS and WSA.
type DateRangeSpec struct {
	name    string
	service string
}

// Untyped DONKI services.
var (
	SEP = DateRangeSpec{name: "donki_sep", service: "SEP"}
	MPC = DateRangeSpec{name: "donki_mpc", service: "MPC"}
	RBE = DateRangeSpec{name: "donki_rbe", service: "RBE"}
	HSS = DateRangeSpec{name: "donki_hss", service: "HSS"}
	WSA = DateRangeSpec{name: "donki_wsa", service: "WSAEnlilSimulations"}
)

// Name implements Spec.
func (s DateRangeSpec) Name() string { return s.name }

// BaseURL implements Spec.
func (s DateRangeSpec) BaseURL() string { return donkiRoot + "/" + s.service }

// Path implements Spec.
func (DateRangeSpec) Path(DateRange) (string, error) { return "", nil }

// Decode implements Spec.
func (DateRangeSpec) Decode(body []byte) (DocumentList, error) {
	return DecodeJSON[DocumentList](body)
}
