package commands

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/viper"

	"github.com/fivetwenty-io/nasa-client/internal/constants"
	"github.com/fivetwenty-io/nasa-client/internal/logging"
	"github.com/fivetwenty-io/nasa-client/pkg/nasa"
	"github.com/fivetwenty-io/nasa-client/pkg/nasaclient"
)

var (
	metricsRegistry = prometheus.NewRegistry()
	metricsOnce     sync.Once
	metrics         *nasa.MetricsCollector
	errMetrics      error
)

// metricsCollector returns the collector shared by every command run.
func metricsCollector() (*nasa.MetricsCollector, error) {
	metricsOnce.Do(func() {
		metrics, errMetrics = nasa.NewMetricsCollector(metricsRegistry)
	})

	return metrics, errMetrics
}

// WriteMetricsFile writes the request metrics gathered during this run in
// the Prometheus text format.
func WriteMetricsFile(path string) error {
	if metrics == nil {
		return constants.ErrMetricsNotEnabled
	}

	err := prometheus.WriteToTextfile(path, metricsRegistry)
	if err != nil {
		return fmt.Errorf("failed to write metrics file: %w", err)
	}

	return nil
}

// httpTimeout reads the configured request timeout, or returns fallback
// when none is set.
func httpTimeout(fallback time.Duration) (time.Duration, error) {
	raw := viper.GetString("timeout")
	if raw == "" {
		return fallback, nil
	}

	timeout, err := time.ParseDuration(raw)
	if err != nil || timeout <= 0 {
		return 0, fmt.Errorf("%w: %q", constants.ErrInvalidTimeout, raw)
	}

	return timeout, nil
}

// CreateClient builds a NASA client from the current configuration.
func CreateClient() (*nasaclient.Client, error) {
	return createClient(constants.DefaultHTTPTimeout)
}

func createClient(defaultTimeout time.Duration) (*nasaclient.Client, error) {
	timeout, err := httpTimeout(defaultTimeout)
	if err != nil {
		return nil, err
	}

	level := "warn"
	if viper.GetBool("verbose") {
		level = "debug"
	}

	collector, err := metricsCollector()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize metrics: %w", err)
	}

	config := &nasa.Config{
		APIEndpoint: viper.GetString("api"),
		APIKey:      viper.GetString("api_key"),
		EnvFile:     viper.GetString("env_file"),
		HTTPTimeout: timeout,
		Debug:       viper.GetBool("verbose"),
		Logger:      logging.New(logging.Config{Level: level, Output: os.Stderr}),
		Metrics:     collector,
	}

	client, err := nasaclient.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return client, nil
}
