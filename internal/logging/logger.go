// Package logging собирает zerolog-логгер процесса по настройкам запуска.
package logging

import (
	"io"
	"os"
	"time"

	"go-cyber-shooter/internal/config"

	"github.com/rs/zerolog"
)

// New возвращает корневой логгер. Пишет в stderr: JSON или консольный формат.
func New(s config.Settings) zerolog.Logger {
	return NewWithWriter(s, os.Stderr)
}

// NewWithWriter: то же, что New, но с произвольным приёмником.
func NewWithWriter(s config.Settings, w io.Writer) zerolog.Logger {
	if s.LogPretty {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly}
	}
	level, err := zerolog.ParseLevel(s.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}
