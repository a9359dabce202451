// Package log provides a thin, leveled logging facade used across the
// sigma-protocol compiler. It wraps zerolog so callers never import it
// directly, matching the way structured fields are bound per call site.
package log

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
	"unicode"

	"github.com/rs/zerolog"
)

// Level name constants accepted by Init.
const (
	LogLevelDebug = "debug"
	LogLevelInfo  = "info"
	LogLevelWarn  = "warn"
	LogLevelError = "error"
	LogLevelFatal = "fatal"
)

const logTestWriterName = "test"

var (
	mu     sync.Mutex
	logger zerolog.Logger
	level  = LogLevelInfo

	// panicOnInvalidChars makes Debugf/Infof/etc. panic when the formatted
	// message contains non-printable bytes. Off by default; tests flip it.
	panicOnInvalidChars = false

	// logTestWriter lets tests redirect output without touching stderr.
	logTestWriter io.Writer = os.Stderr
)

func init() {
	logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
}

// Init configures the global logger level and output. output may be
// "stdout", "stderr", "test" (routes to logTestWriter, for benchmarks and
// tests), or a file path. errorWriter, if non-nil, additionally receives a
// copy of every record that passes the configured level; records are not
// filtered further by severity for it.
func Init(lvl, output string, errorWriter io.Writer) error {
	mu.Lock()
	defer mu.Unlock()

	level = lvl

	var w io.Writer
	switch output {
	case "stdout":
		w = os.Stdout
	case "stderr", "":
		w = os.Stderr
	case logTestWriterName:
		w = logTestWriter
	default:
		f, err := os.OpenFile(output, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("could not open log output %q: %w", output, err)
		}
		w = f
	}

	if errorWriter != nil {
		w = zerolog.MultiLevelWriter(w, errorWriter)
	}

	zl, err := zerolog.ParseLevel(lvl)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", lvl, err)
	}
	zerolog.SetGlobalLevel(zl)
	logger = zerolog.New(w).With().Timestamp().Logger()
	return nil
}

// Level returns the currently configured level name.
func Level() string {
	mu.Lock()
	defer mu.Unlock()
	return level
}

func checkChars(s string) {
	if !panicOnInvalidChars {
		return
	}
	for _, r := range s {
		if r == unicode.ReplacementChar || (r < 0x20 && r != '\n' && r != '\t') {
			panic(fmt.Sprintf("log message contains invalid character: %q", s))
		}
	}
}

// Debugf logs a formatted message at debug level.
func Debugf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	checkChars(msg)
	logger.Debug().Msg(msg)
}

// Infof logs a formatted message at info level.
func Infof(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	checkChars(msg)
	logger.Info().Msg(msg)
}

// Warnf logs a formatted message at warn level.
func Warnf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	checkChars(msg)
	logger.Warn().Msg(msg)
}

// Errorf logs a formatted message at error level.
func Errorf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	checkChars(msg)
	logger.Error().Msg(msg)
}

// Fatalf logs a formatted message at fatal level and exits the process.
func Fatalf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	checkChars(msg)
	logger.Fatal().Msg(msg)
}

// Error logs err at error level.
func Error(err error) {
	if err == nil {
		return
	}
	logger.Error().Msg(err.Error())
}

// Warn logs err at warn level.
func Warn(err error) {
	if err == nil {
		return
	}
	logger.Warn().Msg(err.Error())
}

// kv appends alternating key/value pairs onto a zerolog event.
func kv(ev *zerolog.Event, kvs ...any) *zerolog.Event {
	for i := 0; i+1 < len(kvs); i += 2 {
		key, ok := kvs[i].(string)
		if !ok {
			key = fmt.Sprintf("%v", kvs[i])
		}
		switch v := kvs[i+1].(type) {
		case string:
			ev = ev.Str(key, v)
		case error:
			ev = ev.Str(key, v.Error())
		case time.Duration:
			ev = ev.Dur(key, v)
		case time.Time:
			ev = ev.Time(key, v)
		case int:
			ev = ev.Int(key, v)
		case int64:
			ev = ev.Int64(key, v)
		default:
			ev = ev.Interface(key, v)
		}
	}
	return ev
}

// Debugw logs msg at debug level with structured key/value pairs.
func Debugw(msg string, kvs ...any) {
	checkChars(msg)
	kv(logger.Debug(), kvs...).Msg(msg)
}

// Infow logs msg at info level with structured key/value pairs.
func Infow(msg string, kvs ...any) {
	checkChars(msg)
	kv(logger.Info(), kvs...).Msg(msg)
}

// Warnw logs msg at warn level with structured key/value pairs.
func Warnw(msg string, kvs ...any) {
	checkChars(msg)
	kv(logger.Warn(), kvs...).Msg(msg)
}

// Errorw logs msg at error level with structured key/value pairs.
func Errorw(msg string, kvs ...any) {
	checkChars(msg)
	kv(logger.Error(), kvs...).Msg(msg)
}
