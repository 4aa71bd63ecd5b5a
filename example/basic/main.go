// Command basic demonstrates building immutable request values and
// handing them to a stdlib client.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/meridian-labs/httpdraft-go/httpdraft"
)

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger().Level(zerolog.DebugLevel)

	req, err := httpdraft.New(func(b *httpdraft.Builder) {
		b.URI("https://api.example.com/users").
			Method(httpdraft.MethodPost).
			Headers(func(h *httpdraft.HeaderSet) {
				h.Add("Content-Type", "application/json")
				h.GeneratedRequestID()
			}).
			Body(`{"name":"Jane"}`)
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("building request")
	}

	httpdraft.LogRequest(logger, req)
	fmt.Println(req)

	// Hand-off point: req.HTTPRequest(ctx) yields a *http.Request for
	// any executor. No network call happens in this example.
	snapshot, err := req.MarshalJSON()
	if err != nil {
		logger.Fatal().Err(err).Msg("snapshotting request")
	}
	fmt.Println(string(snapshot))
}
