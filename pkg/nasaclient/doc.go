// Package nasaclient is the entry point for building NASA open-API clients.
//
// It layers configuration, the HTTP transport, credential lookup, logging
// and metrics on top of the endpoint specifications defined in the nasa
// package. Build one Client and ask it for endpoint clients: APOD(),
// NeoWs(), GST(), EarthImagery() and so on. Bind works for any nasa.Spec.
//
// Quick start
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
//
//	  // Reads NASA_API_KEY (or ./.env) on every request.
//	  cli, err := nasaclient.NewFromEnv()
//	  if err != nil { log.Fatal(err) }
//
//	  feed, err := cli.NeoWs().Query(ctx, nasa.DefaultNeoParams())
//	  if err != nil { log.Fatal(err) }
//	  _ = feed
//
//	  // Or with an explicit key and a lookup by id:
//	  cli, err = nasaclient.New(&nasa.Config{APIKey: nasa.DemoKey})
//	  if err != nil { log.Fatal(err) }
//
//	  asteroid, err := cli.NeoWs().Query(ctx, nasa.NeoLookup{AsteroidID: 3542519})
//	  if err != nil { log.Fatal(err) }
//	  _ = asteroid
//	}
package nasaclient
