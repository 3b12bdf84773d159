package nasa

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrorKind classifies a failure so callers can pick a remediation:
// prompt for a credential, fix the parameters, retry later, or report
// schema drift.
type ErrorKind int

// Error kinds.
const (
	KindUnknown ErrorKind = iota
	KindMissingCredential
	KindSerialization
	KindTransport
	KindDecode
)

// String implements fmt.Stringer.
func (k ErrorKind) String() string {
	switch k {
	case KindMissingCredential:
		return "missing_credential"
	case KindSerialization:
		return "serialization"
	case KindTransport:
		return "transport"
	case KindDecode:
		return "decode"
	default:
		return "unknown"
	}
}

// Kind sentinels, matched by errors.Is against any *Error of that kind.
var (
	ErrMissingCredential = errors.New("missing API credential")
	ErrSerialization     = errors.New("query serialization failed")
	ErrTransport         = errors.New("transport failure")
	ErrDecode            = errors.New("response decode failed")
)

// Static errors for err113 compliance.
var (
	ErrUnexpectedStatus  = errors.New("unexpected status code")
	ErrDuplicateQueryKey = errors.New("query key produced more than one value")
	ErrReservedQueryKey  = errors.New("query key is reserved for the credential")
	ErrInvalidDate       = errors.New("invalid date")
	ErrInvalidParams     = errors.New("invalid parameters")
	ErrInvalidQueryPair  = errors.New("invalid query pair")
	ErrConfigRequired    = errors.New("config is required")
	ErrTransportRequired = errors.New("transport is required")
)

func (k ErrorKind) sentinel() error {
	switch k {
	case KindMissingCredential:
		return ErrMissingCredential
	case KindSerialization:
		return ErrSerialization
	case KindTransport:
		return ErrTransport
	case KindDecode:
		return ErrDecode
	default:
		return nil
	}
}

// Error is returned by every Client operation.
type Error struct {
	Kind       ErrorKind
	Endpoint   string
	StatusCode int
	Err        error
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := e.Kind.sentinel()
	if msg == nil {
		msg = errors.New("request failed")
	}

	prefix := msg.Error()
	if e.Endpoint != "" {
		prefix = e.Endpoint + ": " + prefix
	}

	if e.StatusCode != 0 {
		prefix = fmt.Sprintf("%s (status %d)", prefix, e.StatusCode)
	}

	if e.Err == nil {
		return prefix
	}

	return prefix + ": " + e.Err.Error()
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel for e's kind.
func (e *Error) Is(target error) bool {
	sentinel := e.Kind.sentinel()

	return sentinel != nil && target == sentinel
}

func newError(kind ErrorKind, endpoint string, err error) *Error {
	return &Error{Kind: kind, Endpoint: endpoint, Err: err}
}

// KindOf returns the kind of err, or KindUnknown if err is not an *Error.
func KindOf(err error) ErrorKind {
	nasaErr := &Error{}
	if errors.As(err, &nasaErr) {
		return nasaErr.Kind
	}

	return KindUnknown
}

// IsMissingCredential checks if the request could not be built for lack of a credential.
func IsMissingCredential(err error) bool {
	return errors.Is(err, ErrMissingCredential)
}

// IsSerialization checks if the params could not be rendered to a query.
func IsSerialization(err error) bool {
	return errors.Is(err, ErrSerialization)
}

// IsTransport checks if the request failed in flight or returned a non-success status.
func IsTransport(err error) bool {
	return errors.Is(err, ErrTransport)
}

// IsDecode checks if the response body did not match the expected shape.
func IsDecode(err error) bool {
	return errors.Is(err, ErrDecode)
}

// APIError is the error document returned by api.nasa.gov.
type APIError struct {
	StatusCode int    `json:"-"`
	Code       string `json:"code"`
	Message    string `json:"message"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Code == "" {
		return e.Message
	}

	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// ParseAPIError recognizes the two error shapes served by api.nasa.gov:
// the gateway's {"error":{"code","message"}} and the services'
// {"code":400,"msg":"..."}. It returns nil when body is neither.
func ParseAPIError(statusCode int, body []byte) *APIError {
	var gateway struct {
		Error *struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}

	err := json.Unmarshal(body, &gateway)
	if err == nil && gateway.Error != nil && (gateway.Error.Code != "" || gateway.Error.Message != "") {
		return &APIError{StatusCode: statusCode, Code: gateway.Error.Code, Message: gateway.Error.Message}
	}

	var service struct {
		Code json.RawMessage `json:"code"`
		Msg  string          `json:"msg"`
	}

	err = json.Unmarshal(body, &service)
	if err == nil && service.Msg != "" {
		code := string(service.Code)

		var quoted string
		if json.Unmarshal(service.Code, &quoted) == nil {
			code = quoted
		}

		return &APIError{StatusCode: statusCode, Code: code, Message: service.Msg}
	}

	return nil
}
