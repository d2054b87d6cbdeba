package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/agenda-pro/internal/config"
)

// New monta o logger da aplicação. Em desenvolvimento a saída é legível,
// em produção é JSON puro.
func New(cfg *config.Config) zerolog.Logger {
	var out io.Writer = os.Stdout
	if !cfg.IsProduction() {
		out = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	return zerolog.New(out).
		Level(level).
		With().
		Timestamp().
		Str("service", "agenda-pro").
		Str("env", cfg.Env).
		Logger()
}
