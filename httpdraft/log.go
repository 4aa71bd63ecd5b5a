package httpdraft

import (
	"os"

	"github.com/rs/zerolog"
)

// debugLogger is the package-level zerolog logger used by LogRequest.
var debugLogger = zerolog.New(os.Stdout).With().Timestamp().Logger()

// MarshalZerologObject implements zerolog.LogObjectMarshaler, so a
// Request embeds into structured log events:
//
//	log.Info().Object("request", req).Msg("built")
func (r Request) MarshalZerologObject(e *zerolog.Event) {
	e.Str("method", string(r.method)).
		Str("uri", r.uri).
		Int("header_count", len(r.headers))
	if r.hasBody {
		e.Int("body_bytes", len(r.body))
	}
}

// LogRequest logs a built request at debug level using the given logger.
func LogRequest(logger zerolog.Logger, r Request) {
	logger.Debug().
		Object("request", r).
		Msg("HTTP request draft")
}

// LogRequestDefault logs a built request with the package-level logger.
func LogRequestDefault(r Request) {
	LogRequest(debugLogger, r)
}
