package nasa_test

import (
	"context"
	"io"
	"net/http"
	"sync"

	"github.com/fivetwenty-io/nasa-client/pkg/nasa"
)

// stubTransport records requested URLs and answers with a canned response.
type stubTransport struct {
	mu     sync.Mutex
	urls   []string
	status int
	body   string
	err    error
}

func newStubTransport(status int, body string) *stubTransport {
	return &stubTransport{status: status, body: body}
}

func (s *stubTransport) Get(_ context.Context, rawURL string) (*nasa.Response, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.urls = append(s.urls, rawURL)

	if s.err != nil {
		return nil, s.err
	}

	return &nasa.Response{
		StatusCode: s.status,
		Headers:    http.Header{"Content-Type": []string{"application/json"}},
		Body:       []byte(s.body),
	}, nil
}

func (s *stubTransport) requested() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]string(nil), s.urls...)
}

// netTransport sends real requests, for tests against httptest servers.
type netTransport struct {
	client *http.Client
}

func (n netTransport) Get(ctx context.Context, rawURL string) (*nasa.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := n.client.Do(req)
	if err != nil {
		return nil, err
	}

	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	return &nasa.Response{StatusCode: resp.StatusCode, Headers: resp.Header, Body: body}, nil
}

// rawSpec is an endpoint whose params are a ready-made mapping.
type rawSpec struct{}

func (rawSpec) Name() string                              { return "raw" }
func (rawSpec) BaseURL() string                           { return "https://api.nasa.gov/raw" }
func (rawSpec) Path(nasa.Values) (string, error)          { return "", nil }
func (rawSpec) Decode(body []byte) (nasa.Document, error) { return nasa.DecodeJSON[nasa.Document](body) }

// recordingLogger keeps every message it is given.
type recordingLogger struct {
	mu      sync.Mutex
	entries []logEntry
}

type logEntry struct {
	level  string
	msg    string
	fields map[string]interface{}
}

func (l *recordingLogger) record(level, msg string, fields map[string]interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.entries = append(l.entries, logEntry{level: level, msg: msg, fields: fields})
}

func (l *recordingLogger) Debug(msg string, fields map[string]interface{}) {
	l.record("debug", msg, fields)
}

func (l *recordingLogger) Info(msg string, fields map[string]interface{}) {
	l.record("info", msg, fields)
}

func (l *recordingLogger) Warn(msg string, fields map[string]interface{}) {
	l.record("warn", msg, fields)
}

func (l *recordingLogger) Error(msg string, fields map[string]interface{}) {
	l.record("error", msg, fields)
}

func (l *recordingLogger) all() []logEntry {
	l.mu.Lock()
	defer l.mu.Unlock()

	return append([]logEntry(nil), l.entries...)
}
