package nasa

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/fivetwenty-io/nasa-client/internal/constants"
)

const maxErrorBodyLen = 256

// Option configures a Client. Options are not generic, so one slice can
// configure clients for every endpoint.
type Option func(*clientOptions)

type clientOptions struct {
	credentials CredentialSource
	logger      Logger
	apiEndpoint string
	chain       *InterceptorChain
}

// WithCredentials sets the source consulted for every typed request.
func WithCredentials(source CredentialSource) Option {
	return func(o *clientOptions) {
		o.credentials = source
	}
}

// WithLogger sets the logger.
func WithLogger(logger Logger) Option {
	return func(o *clientOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithAPIEndpoint re-hosts the Spec's base URL under endpoint, replacing
// the default https://api.nasa.gov root. Used for proxies and tests.
func WithAPIEndpoint(endpoint string) Option {
	return func(o *clientOptions) {
		o.apiEndpoint = strings.TrimSuffix(endpoint, "/")
	}
}

// WithInterceptors sets the interceptor chain run around every request.
func WithInterceptors(chain *InterceptorChain) Option {
	return func(o *clientOptions) {
		if chain != nil {
			o.chain = chain
		}
	}
}

// Client is a typed client bound to one endpoint Spec.
//
// Typed requests (Query, BuildQuery) are encoded from a params value and
// always carry the credential; a missing credential fails the call before
// anything is sent. Untyped requests (QueryWith) send a caller-supplied
// mapping as-is against the Spec's base URL, with no path selection, no
// validation and no credential injection: the caller must include
// api_key in the mapping if the endpoint needs it.
//
// A Client holds only immutable configuration and is safe for concurrent
// use.
type Client[P, R any] struct {
	spec        Spec[P, R]
	transport   Transport
	credentials CredentialSource
	logger      Logger
	chain       *InterceptorChain
	baseURL     string
}

// NewClient binds spec to transport.
func NewClient[P, R any](spec Spec[P, R], transport Transport, opts ...Option) *Client[P, R] {
	o := clientOptions{
		credentials: noCredential{},
		logger:      noopLogger{},
		chain:       NewInterceptorChain(),
	}

	for _, opt := range opts {
		opt(&o)
	}

	if o.credentials == nil {
		o.credentials = noCredential{}
	}

	baseURL := spec.BaseURL()
	if o.apiEndpoint != "" && strings.HasPrefix(baseURL, constants.DefaultAPIEndpoint) {
		baseURL = o.apiEndpoint + strings.TrimPrefix(baseURL, constants.DefaultAPIEndpoint)
	}

	return &Client[P, R]{
		spec:        spec,
		transport:   transport,
		credentials: o.credentials,
		logger:      o.logger,
		chain:       o.chain,
		baseURL:     baseURL,
	}
}

// Spec returns the endpoint specification the client is bound to.
func (c *Client[P, R]) Spec() Spec[P, R] {
	return c.spec
}

// BaseURL returns the effective base URL.
func (c *Client[P, R]) BaseURL() string {
	return c.baseURL
}

// BuildQuery returns the full request URL for params: base URL, the
// params' path, the encoded params, and the credential last.
func (c *Client[P, R]) BuildQuery(ctx context.Context, params P) (string, error) {
	name := c.spec.Name()

	key, ok := c.credentials.Credential(ctx)
	if !ok {
		c.logger.Error("no API key available for typed request", map[string]interface{}{
			"endpoint": name,
		})

		return "", newError(KindMissingCredential, name, nil)
	}

	path, err := c.spec.Path(params)
	if err != nil {
		return "", newError(KindSerialization, name, err)
	}

	values, err := Encode(params)
	if err != nil {
		return "", newError(KindSerialization, name, err)
	}

	if _, reserved := values[CredentialParam]; reserved {
		return "", newError(KindSerialization, name, fmt.Errorf("%w: %s", ErrReservedQueryKey, CredentialParam))
	}

	query := values.Encode()
	if query != "" {
		query += "&"
	}

	query += CredentialParam + "=" + url.QueryEscape(key)

	rawURL := c.baseURL + path + "?" + query

	c.logger.Debug("built query", map[string]interface{}{
		"endpoint": name,
		"url":      MaskCredential(rawURL),
	})

	return rawURL, nil
}

// Query builds the request for params, sends it and decodes the response.
func (c *Client[P, R]) Query(ctx context.Context, params P) (R, error) {
	rawURL, err := c.BuildQuery(ctx, params)
	if err != nil {
		var zero R

		return zero, err
	}

	return c.do(ctx, rawURL, true)
}

// QueryWith sends raw against the base URL without credential injection.
// See the Client documentation for how this differs from Query.
func (c *Client[P, R]) QueryWith(ctx context.Context, raw Values) (R, error) {
	rawURL := c.baseURL
	if query := raw.Encode(); query != "" {
		rawURL += "?" + query
	}

	c.logger.Debug("untyped query", map[string]interface{}{
		"endpoint": c.spec.Name(),
		"url":      MaskCredential(rawURL),
	})

	return c.do(ctx, rawURL, false)
}

func (c *Client[P, R]) do(ctx context.Context, rawURL string, typed bool) (R, error) {
	var zero R

	name := c.spec.Name()

	if c.transport == nil {
		return zero, newError(KindTransport, name, ErrTransportRequired)
	}

	req := &Request{
		Endpoint: name,
		Method:   http.MethodGet,
		URL:      MaskCredential(rawURL),
		Typed:    typed,
		Metadata: make(map[string]interface{}),
	}

	err := c.chain.ExecuteRequestInterceptors(ctx, req)
	if err != nil {
		return zero, newError(KindTransport, name, err)
	}

	resp, err := c.transport.Get(ctx, rawURL)
	if resp == nil {
		resp = &Response{}
	}

	statusErr := checkStatus(resp)

	switch {
	case err != nil:
		resp.Error = err
	case statusErr != nil:
		resp.Error = statusErr
	}

	interceptErr := c.chain.ExecuteResponseInterceptors(ctx, req, resp)

	if resp.Error != nil {
		return zero, &Error{Kind: KindTransport, Endpoint: name, StatusCode: resp.StatusCode, Err: resp.Error}
	}

	if interceptErr != nil {
		return zero, &Error{Kind: KindTransport, Endpoint: name, StatusCode: resp.StatusCode, Err: interceptErr}
	}

	out, err := c.spec.Decode(resp.Body)
	if err != nil {
		return zero, &Error{Kind: KindDecode, Endpoint: name, StatusCode: resp.StatusCode, Err: err}
	}

	return out, nil
}

func checkStatus(resp *Response) error {
	if resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices {
		return nil
	}

	if apiErr := ParseAPIError(resp.StatusCode, resp.Body); apiErr != nil {
		return fmt.Errorf("%w %d: %w", ErrUnexpectedStatus, resp.StatusCode, apiErr)
	}

	body := strings.TrimSpace(string(resp.Body))
	if len(body) > maxErrorBodyLen {
		cut := maxErrorBodyLen
		for cut > 0 && !utf8.RuneStart(body[cut]) {
			cut--
		}

		body = body[:cut] + "..."
	}

	return fmt.Errorf("%w %d: %s", ErrUnexpectedStatus, resp.StatusCode, body)
}

// MaskCredential replaces the credential value in rawURL for logging.
func MaskCredential(rawURL string) string {
	base, rawQuery, found := strings.Cut(rawURL, "?")
	if !found {
		return rawURL
	}

	pairs := strings.Split(rawQuery, "&")
	for i, pair := range pairs {
		if strings.HasPrefix(pair, CredentialParam+"=") {
			pairs[i] = CredentialParam + "=" + constants.MaskedSecret
		}
	}

	return base + "?" + strings.Join(pairs, "&")
}
