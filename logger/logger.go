// logger.go - Structured logging setup

package logger

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Init returns the application logger, writing human-readable output
// to stderr with timestamps.
func Init() zerolog.Logger {
	return log.Output(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
}
