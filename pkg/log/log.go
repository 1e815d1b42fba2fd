// Package log provides the process-wide logger used by the matcher and
// selector packages. The default logger writes console formatted output to
// stderr at info level; applications embedding this library can replace it
// via SetLogger to route output through their own zerolog instance.
package log

import (
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	lock   sync.RWMutex
	logger *zerolog.Logger

	// concurrency-safe counter for deduped logging
	ctr = newCounter()
)

// GetLogger returns the current package logger, constructing the default
// console logger on first use. The same instance is returned until SetLogger
// replaces it.
func GetLogger() *zerolog.Logger {
	lock.RLock()
	l := logger
	lock.RUnlock()

	if l != nil {
		return l
	}

	lock.Lock()
	defer lock.Unlock()
	if logger == nil {
		def := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
			Level(zerolog.InfoLevel).
			With().
			Timestamp().
			Logger()
		logger = &def
	}
	return logger
}

// SetLogger replaces the package logger.
func SetLogger(l *zerolog.Logger) {
	lock.Lock()
	logger = l
	lock.Unlock()
}

// SetLogLevel updates the package logger's level. Accepts the zerolog level
// names: trace, debug, info, warn, error, fatal, panic.
func SetLogLevel(level string) error {
	parsed, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return fmt.Errorf("parsing log level %q: %w", level, err)
	}

	leveled := GetLogger().Level(parsed)
	SetLogger(&leveled)
	return nil
}

func Errorf(format string, a ...interface{}) {
	GetLogger().Error().Msgf(format, a...)
}

// DedupedErrorf logs an error until the format string has been logged
// logTypeLimit times, then suppresses future occurrences.
func DedupedErrorf(logTypeLimit int, format string, a ...interface{}) {
	timesLogged := ctr.increment(format)

	if timesLogged < logTypeLimit {
		Errorf(format, a...)
	} else if timesLogged == logTypeLimit {
		Errorf(format, a...)
		Infof("%s logged %d times: suppressing future logs", format, logTypeLimit)
	}
}

func Warningf(format string, a ...interface{}) {
	GetLogger().Warn().Msgf(format, a...)
}

// DedupedWarningf logs a warning until the format string has been logged
// logTypeLimit times, then suppresses future occurrences.
func DedupedWarningf(logTypeLimit int, format string, a ...interface{}) {
	timesLogged := ctr.increment(format)

	if timesLogged < logTypeLimit {
		Warningf(format, a...)
	} else if timesLogged == logTypeLimit {
		Warningf(format, a...)
		Infof("%s logged %d times: suppressing future logs", format, logTypeLimit)
	}
}

func Infof(format string, a ...interface{}) {
	GetLogger().Info().Msgf(format, a...)
}

// DedupedInfof logs a message until the format string has been logged
// logTypeLimit times, then suppresses future occurrences.
func DedupedInfof(logTypeLimit int, format string, a ...interface{}) {
	timesLogged := ctr.increment(format)

	if timesLogged < logTypeLimit {
		Infof(format, a...)
	} else if timesLogged == logTypeLimit {
		Infof(format, a...)
		Infof("%s logged %d times: suppressing future logs", format, logTypeLimit)
	}
}

func Debugf(format string, a ...interface{}) {
	GetLogger().Debug().Msgf(format, a...)
}

func Tracef(format string, a ...interface{}) {
	GetLogger().Trace().Msgf(format, a...)
}
