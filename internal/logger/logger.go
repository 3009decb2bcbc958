package logger

import (
	"os"

	"github.com/rs/zerolog"
)

// New cria o logger global da aplicação.
func New(level string) zerolog.Logger {
	zerolog.SetGlobalLevel(parseLevel(level))

	return zerolog.New(os.Stdout).
		With().
		Timestamp().
		Logger()
}

func parseLevel(level string) zerolog.Level {
	switch level {
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
