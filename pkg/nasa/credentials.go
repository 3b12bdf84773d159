package nasa

import "context"

// CredentialParam is the query parameter carrying the API key.
const CredentialParam = "api_key"

// DemoKey is the rate-limited key api.nasa.gov accepts without signup.
const DemoKey = "DEMO_KEY"

// CredentialSource resolves the API key for a typed request. It is
// consulted on every request build and reports absence with ok=false;
// lookup failures are reported as absence, never as errors.
type CredentialSource interface {
	Credential(ctx context.Context) (key string, ok bool)
}

// CredentialFunc adapts a function to CredentialSource.
type CredentialFunc func(ctx context.Context) (string, bool)

// Credential implements CredentialSource.
func (f CredentialFunc) Credential(ctx context.Context) (string, bool) {
	return f(ctx)
}

// StaticCredential is a fixed API key supplied by configuration.
type StaticCredential string

// Credential implements CredentialSource. An empty key is absent.
func (s StaticCredential) Credential(context.Context) (string, bool) {
	return string(s), s != ""
}

type noCredential struct{}

func (noCredential) Credential(context.Context) (string, bool) {
	return "", false
}
