// Package logger provides structured logging using zerolog.
package logger

import (
	"context"
	"crypto/rand"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type contextKey string

const matchIDKey contextKey = "match_id"

const milliTimeFormat = "2006-01-02T15:04:05.000Z07:00"

// Options configures Init. Zero values give info level, colorless console
// output on stdout.
type Options struct {
	Level string
	Dev   bool
	File  string    // optional path; log lines are appended there as well
	Out   io.Writer // defaults to os.Stdout
}

// Init initializes the global logger.
func Init(opts Options) {
	zerolog.TimeFieldFormat = milliTimeFormat
	zerolog.TimestampFunc = func() time.Time { return time.Now().UTC() }

	const callerWidth = 30
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		path := fmt.Sprintf("%s:%d", filepath.Base(file), line)
		if len(path) >= callerWidth {
			return path[len(path)-callerWidth:]
		}
		return path + strings.Repeat(" ", callerWidth-len(path))
	}

	level, err := zerolog.ParseLevel(strings.ToLower(opts.Level))
	if err != nil || opts.Level == "" {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	var output io.Writer = zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: milliTimeFormat,
		NoColor:    !opts.Dev,
	}

	if opts.File != "" {
		f, ferr := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if ferr == nil {
			output = io.MultiWriter(output, f)
		}
	}

	log.Logger = log.Output(output).With().Caller().Logger()

	log.Debug().
		Str("level", level.String()).
		Bool("dev", opts.Dev).
		Msg("Logger initialized")
}

// NewMatchID generates a random 8-character alphanumeric match id.
func NewMatchID() string {
	const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	const length = 8

	b := make([]byte, length)
	_, err := rand.Read(b)
	if err != nil {
		return fmt.Sprintf("m%07d", time.Now().UnixNano()%10000000)
	}

	for i := range b {
		b[i] = charset[b[i]%byte(len(charset))]
	}
	return string(b)
}

// WithMatchID returns a new context carrying the match id.
func WithMatchID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, matchIDKey, id)
}

// MatchIDFromContext extracts the match id from context, or empty string.
func MatchIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(matchIDKey).(string)
	return id
}

// ForMatch returns a logger tagged with the match id.
func ForMatch(id string) zerolog.Logger {
	if id == "" {
		return log.Logger
	}
	return log.Logger.With().Str("matchId", id).Logger()
}

// FromContext returns a logger tagged with the match id carried by ctx, if any.
func FromContext(ctx context.Context) zerolog.Logger {
	return ForMatch(MatchIDFromContext(ctx))
}
