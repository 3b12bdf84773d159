package nasaclient

import (
	"strings"

	"github.com/fivetwenty-io/nasa-client/internal/auth"
	"github.com/fivetwenty-io/nasa-client/internal/constants"
	nasahttp "github.com/fivetwenty-io/nasa-client/internal/http"
	"github.com/fivetwenty-io/nasa-client/pkg/nasa"
)

// Client hands out typed endpoint clients that share one transport,
// credential source, logger and interceptor chain.
type Client struct {
	apiEndpoint string
	transport   nasa.Transport
	credentials nasa.CredentialSource
	opts        []nasa.Option
}

// New creates a client from config. The config is not modified.
func New(config *nasa.Config) (*Client, error) {
	if config == nil {
		return nil, nasa.ErrConfigRequired
	}

	apiEndpoint := normalizeEndpoint(config.APIEndpoint)

	var credentials nasa.CredentialSource
	if config.APIKey != "" {
		credentials = nasa.StaticCredential(config.APIKey)
	} else {
		credentials = &auth.EnvCredential{
			Name:    config.APIKeyEnv,
			EnvFile: config.EnvFile,
			Logger:  config.Logger,
		}
	}

	timeout := config.HTTPTimeout
	if timeout <= 0 {
		timeout = constants.DefaultHTTPTimeout
	}

	transportOpts := []nasahttp.Option{
		nasahttp.WithTimeout(timeout),
		nasahttp.WithUserAgent(config.UserAgent),
		nasahttp.WithDebug(config.Debug),
	}
	if config.Logger != nil {
		transportOpts = append(transportOpts, nasahttp.WithLogger(config.Logger))
	}

	chain := nasa.NewInterceptorChain()
	if config.Logger != nil {
		chain.AddRequestInterceptor(nasa.LoggingInterceptor(config.Logger))
		chain.AddResponseInterceptor(nasa.LoggingResponseInterceptor(config.Logger))
	}

	if config.Metrics != nil {
		config.Metrics.Install(chain)
	}

	opts := []nasa.Option{
		nasa.WithCredentials(credentials),
		nasa.WithInterceptors(chain),
		nasa.WithLogger(config.Logger),
	}
	if apiEndpoint != constants.DefaultAPIEndpoint {
		opts = append(opts, nasa.WithAPIEndpoint(apiEndpoint))
	}

	return &Client{
		apiEndpoint: apiEndpoint,
		transport:   nasahttp.NewClient(transportOpts...),
		credentials: credentials,
		opts:        opts,
	}, nil
}

// NewWithKey creates a client for the public API with a static key.
func NewWithKey(apiKey string) (*Client, error) {
	return New(&nasa.Config{APIKey: apiKey})
}

// NewFromEnv creates a client that reads NASA_API_KEY, or the .env file in
// the working directory, on every request.
func NewFromEnv() (*Client, error) {
	return New(&nasa.Config{})
}

func normalizeEndpoint(endpoint string) string {
	endpoint = strings.TrimSuffix(strings.TrimSpace(endpoint), "/")
	if endpoint == "" {
		return constants.DefaultAPIEndpoint
	}

	if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		endpoint = "https://" + endpoint
	}

	return endpoint
}

// APIEndpoint returns the normalized API root.
func (c *Client) APIEndpoint() string {
	return c.apiEndpoint
}

// Transport returns the shared transport.
func (c *Client) Transport() nasa.Transport {
	return c.transport
}

// Credentials returns the credential source used for typed requests.
func (c *Client) Credentials() nasa.CredentialSource {
	return c.credentials
}

// Bind returns a typed client for any spec, sharing c's configuration.
func Bind[P, R any](c *Client, spec nasa.Spec[P, R]) *nasa.Client[P, R] {
	return nasa.NewClient(spec, c.transport, c.opts...)
}

// APOD returns the Astronomy Picture of the Day client.
func (c *Client) APOD() *nasa.Client[nasa.APODParams, nasa.APODResponse] {
	return Bind[nasa.APODParams, nasa.APODResponse](c, nasa.APOD{})
}

// NeoWs returns the Near Earth Object Web Service client.
func (c *Client) NeoWs() *nasa.Client[nasa.NeoParams, nasa.Document] {
	return Bind[nasa.NeoParams, nasa.Document](c, nasa.NeoWs{})
}

// CME returns the DONKI coronal mass ejection client.
func (c *Client) CME() *nasa.Client[nasa.DateRange, []nasa.CMEEvent] {
	return Bind[nasa.DateRange, []nasa.CMEEvent](c, nasa.CME{})
}

// CMEAnalysis returns the DONKI coronal mass ejection analysis client.
func (c *Client) CMEAnalysis() *nasa.Client[nasa.CMEAnalysisParams, []nasa.CMEAnalysisEntry] {
	return Bind[nasa.CMEAnalysisParams, []nasa.CMEAnalysisEntry](c, nasa.CMEAnalysis{})
}

// GST returns the DONKI geomagnetic storm client.
func (c *Client) GST() *nasa.Client[nasa.DateRange, []nasa.GeomagneticStorm] {
	return Bind[nasa.DateRange, []nasa.GeomagneticStorm](c, nasa.GST{})
}

// IPS returns the DONKI interplanetary shock client.
func (c *Client) IPS() *nasa.Client[nasa.IPSParams, []nasa.InterplanetaryShock] {
	return Bind[nasa.IPSParams, []nasa.InterplanetaryShock](c, nasa.IPS{})
}

// FLR returns the DONKI solar flare client.
func (c *Client) FLR() *nasa.Client[nasa.DateRange, []nasa.SolarFlare] {
	return Bind[nasa.DateRange, []nasa.SolarFlare](c, nasa.FLR{})
}

// SEP returns the DONKI solar energetic particle client.
func (c *Client) SEP() *nasa.Client[nasa.DateRange, nasa.DocumentList] {
	return Bind[nasa.DateRange, nasa.DocumentList](c, nasa.SEP)
}

// MPC returns the DONKI magnetopause crossing client.
func (c *Client) MPC() *nasa.Client[nasa.DateRange, nasa.DocumentList] {
	return Bind[nasa.DateRange, nasa.DocumentList](c, nasa.MPC)
}

// RBE returns the DONKI radiation belt enhancement client.
func (c *Client) RBE() *nasa.Client[nasa.DateRange, nasa.DocumentList] {
	return Bind[nasa.DateRange, nasa.DocumentList](c, nasa.RBE)
}

// HSS returns the DONKI high speed stream client.
func (c *Client) HSS() *nasa.Client[nasa.DateRange, nasa.DocumentList] {
	return Bind[nasa.DateRange, nasa.DocumentList](c, nasa.HSS)
}

// WSA returns the DONKI WSA+Enlil simulation client.
func (c *Client) WSA() *nasa.Client[nasa.DateRange, nasa.DocumentList] {
	return Bind[nasa.DateRange, nasa.DocumentList](c, nasa.WSA)
}

// Notifications returns the DONKI notifications client.
func (c *Client) Notifications() *nasa.Client[nasa.NotificationsParams, []nasa.Notification] {
	return Bind[nasa.NotificationsParams, []nasa.Notification](c, nasa.Notifications{})
}

// EarthImagery returns the Landsat imagery client.
func (c *Client) EarthImagery() *nasa.Client[nasa.EarthImageryParams, nasa.Image] {
	return Bind[nasa.EarthImageryParams, nasa.Image](c, nasa.EarthImagery{})
}
