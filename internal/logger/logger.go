package logger

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	once   sync.Once
	logger *zerolog.Logger
)

// Init sets up the package logger on stderr at info level.
func Init() {
	once.Do(func() {
		l := New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}, zerolog.InfoLevel)
		logger = &l
	})
}

// New builds a logger writing to w. Components that need their own sink take one of these.
func New(w io.Writer, level zerolog.Level) zerolog.Logger {
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

// SetLevel parses a level name such as "debug" or "warn"; unknown names keep the current level.
func SetLevel(name string) {
	level, err := zerolog.ParseLevel(name)
	if err != nil || name == "" {
		return
	}
	l := Get().Level(level)
	logger = &l
}

func Get() *zerolog.Logger {
	if logger == nil {
		Init()
	}
	return logger
}

func Info(message string, v ...interface{}) {
	Get().Info().Msgf(message, v...)
}

func Error(message string, v ...interface{}) {
	Get().Error().Msgf(message, v...)
}

func Debug(message string, v ...interface{}) {
	Get().Debug().Msgf(message, v...)
}
