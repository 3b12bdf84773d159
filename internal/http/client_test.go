package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	nasahttp "github.com/fivetwenty-io/nasa-client/internal/http"
	"github.com/fivetwenty-io/nasa-client/pkg/nasa"
)

// MockLogger for testing.
type MockLogger struct {
	mu   sync.Mutex
	logs []map[string]interface{}
}

func (l *MockLogger) add(level, msg string, fields map[string]interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.logs = append(l.logs, map[string]interface{}{"level": level, "msg": msg, "fields": fields})
}

func (l *MockLogger) Debug(msg string, fields map[string]interface{}) { l.add("debug", msg, fields) }
func (l *MockLogger) Info(msg string, fields map[string]interface{})  { l.add("info", msg, fields) }
func (l *MockLogger) Warn(msg string, fields map[string]interface{})  { l.add("warn", msg, fields) }
func (l *MockLogger) Error(msg string, fields map[string]interface{}) { l.add("error", msg, fields) }

func (l *MockLogger) messages(level string) []string {
	l.mu.Lock()
	defer l.mu.Unlock()

	var out []string

	for _, entry := range l.logs {
		if entry["level"] == level {
			out = append(out, entry["msg"].(string))
		}
	}

	return out
}

var _ nasa.Transport = (*nasahttp.Client)(nil)

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_Get(t *testing.T) {
	t.Parallel()

	t.Run("successful request", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/planetary/apod", request.URL.Path)
			assert.Equal(t, "GET", request.Method)
			assert.Equal(t, "date=2020-01-01&api_key=DEMO_KEY", request.URL.RawQuery)
			assert.Equal(t, "nasa-client-go", request.Header.Get("User-Agent"))

			writer.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(writer).Encode(map[string]string{"title": "Betelgeuse Imagined"})
		}))
		defer server.Close()

		client := nasahttp.NewClient()

		resp, err := client.Get(context.Background(), server.URL+"/planetary/apod?date=2020-01-01&api_key=DEMO_KEY")
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
		assert.Equal(t, "application/json", resp.Headers.Get("Content-Type"))

		var result map[string]string

		err = json.Unmarshal(resp.Body, &result)
		require.NoError(t, err)
		assert.Equal(t, "Betelgeuse Imagined", result["title"])
	})

	t.Run("error status is returned, not raised", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusForbidden)
			_, _ = writer.Write([]byte(`{"error":{"code":"API_KEY_INVALID","message":"An invalid api_key was supplied."}}`))
		}))
		defer server.Close()

		resp, err := nasahttp.NewClient().Get(context.Background(), server.URL)
		require.NoError(t, err)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
		assert.Contains(t, string(resp.Body), "API_KEY_INVALID")
	})

	t.Run("custom user agent", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "nasa-cli/1.0", request.Header.Get("User-Agent"))
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := nasahttp.NewClient(nasahttp.WithUserAgent("nasa-cli/1.0"))

		resp, err := client.Get(context.Background(), server.URL)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
		assert.Empty(t, resp.Body)
	})

	t.Run("with debug logging", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusOK)
			_ = json.NewEncoder(writer).Encode(map[string]string{"result": "ok"})
		}))
		defer server.Close()

		logger := &MockLogger{}
		client := nasahttp.NewClient(nasahttp.WithLogger(logger), nasahttp.WithDebug(true))

		_, err := client.Get(context.Background(), server.URL+"/feed?api_key=secret")
		require.NoError(t, err)

		debug := logger.messages("debug")
		assert.Contains(t, debug, "HTTP Request")
		assert.Contains(t, debug, "HTTP Response")

		for _, entry := range logger.logs {
			fields, _ := entry["fields"].(map[string]interface{})
			if u, ok := fields["url"]; ok {
				assert.NotContains(t, u, "secret")
			}
		}
	})
}

func TestClient_NoRetry(t *testing.T) {
	t.Parallel()

	var attempts atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		attempts.Add(1)
		writer.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	resp, err := nasahttp.NewClient().Get(context.Background(), server.URL)
	require.NoError(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	assert.Equal(t, int32(1), attempts.Load())
}

func TestClient_NetworkFailure(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	addr := server.URL
	server.Close()

	resp, err := nasahttp.NewClient().Get(context.Background(), addr+"/feed?api_key=secret")
	require.Error(t, err)
	assert.Nil(t, resp)
	assert.NotContains(t, err.Error(), "secret")
	assert.Contains(t, err.Error(), "api_key=***")
}

func TestClient_Timeout(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		select {
		case <-release:
		case <-request.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)

	client := nasahttp.NewClient(nasahttp.WithTimeout(50 * time.Millisecond))

	_, err := client.Get(context.Background(), server.URL)
	require.Error(t, err)
}

func TestClient_ContextCancelled(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := nasahttp.NewClient().Get(ctx, server.URL)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestClient_InvalidURL(t *testing.T) {
	t.Parallel()

	_, err := nasahttp.NewClient().Get(context.Background(), "://missing-scheme")
	require.Error(t, err)
}

func TestClient_WithHTTPClient(t *testing.T) {
	t.Parallel()

	server := httptest.NewTLSServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	resp, err := nasahttp.NewClient(nasahttp.WithHTTPClient(server.Client())).Get(context.Background(), server.URL)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}
