// Package nasa provides typed clients for the NASA open APIs served from
// api.nasa.gov.
//
// # Overview
//
// Every endpoint is described by a Spec: a zero-size type naming the
// endpoint, its base URL, the path a params value selects under it, and
// how a successful body decodes. A generic Client binds a Spec to a
// Transport and a CredentialSource. The nasaclient package composes these
// pieces from a Config and is what most consumers should import.
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/fivetwenty-io/nasa-client/pkg/nasa"
//	  "github.com/fivetwenty-io/nasa-client/pkg/nasaclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := nasaclient.New(&nasa.Config{APIKey: nasa.DemoKey})
//	  if err != nil { log.Fatal(err) }
//
//	  pictures, err := cli.APOD().Query(ctx, nasa.DefaultAPODParams())
//	  if err != nil { log.Fatal(err) }
//	  _ = pictures
//	}
//
// # Params and queries
//
// Params are plain structs whose `url` tags carry the wire-level names.
// Optional fields are pointers; nil fields are left out of the query.
// Encode turns a params value into a Values mapping, and Values.Encode
// renders it as a percent-encoded query string. The credential is always
// appended last by Client.BuildQuery.
//
// Client.QueryWith is the untyped escape hatch: it sends a caller-built
// mapping against the base URL without adding the credential.
//
// # Errors
//
// Client operations return *Error. Its Kind tells a missing credential,
// unencodable params, a transport or status failure, and a body that did
// not decode apart. IsMissingCredential, IsSerialization, IsTransport and
// IsDecode wrap the errors.Is checks. Error documents returned by the API
// are parsed into APIError and wrapped inside the transport error.
//
// # Interceptors and metrics
//
// An InterceptorChain runs around every request. LoggingInterceptor and
// LoggingResponseInterceptor log requests with the credential masked;
// MetricsCollector records Prometheus request counts and latencies.
package nasa
