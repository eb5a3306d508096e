// Package log builds [slog.Handler]s for the roleattrs command line.
package log

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/muesli/termenv"
	"go.opentelemetry.io/otel/trace"

	charmlog "github.com/charmbracelet/log"
)

type (
	Format string
	Level  string

	contextKey struct{}
)

const (
	FormatJSON   Format = "json"
	FormatLogfmt Format = "logfmt"
	FormatText   Format = "text"

	LevelError Level = "error"
	LevelWarn  Level = "warn"
	LevelInfo  Level = "info"
	LevelDebug Level = "debug"

	traceIDLength = 8
)

var (
	ErrInvalidArgument  = errors.New("invalid argument")
	ErrUnknownLogLevel  = errors.New("unknown log level")
	ErrUnknownLogFormat = errors.New("unknown log format")

	AllFormats = []string{string(FormatJSON), string(FormatLogfmt), string(FormatText)}
	AllLevels  = []string{string(LevelError), string(LevelWarn), string(LevelInfo), string(LevelDebug)}

	levels = map[Level]slog.Level{
		LevelError: slog.LevelError,
		LevelWarn:  slog.LevelWarn,
		"warning":  slog.LevelWarn,
		LevelInfo:  slog.LevelInfo,
		LevelDebug: slog.LevelDebug,
	}
)

// CreateHandlerWithStrings parses the --log-level and --log-format values and
// builds the matching handler.
func CreateHandlerWithStrings(w io.Writer, logLevel, logFormat string) (slog.Handler, error) {
	lvl, lvlErr := GetLevel(logLevel)
	logFmt, fmtErr := GetFormat(logFormat)

	err := errors.Join(lvlErr, fmtErr)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	return CreateHandler(w, lvl, logFmt), nil
}

// CreateHandler returns nil for unknown formats. Source locations are only
// recorded at debug level.
func CreateHandler(w io.Writer, lvl slog.Level, logFmt Format) slog.Handler {
	verbose := lvl <= slog.LevelDebug
	opts := &slog.HandlerOptions{AddSource: verbose, Level: lvl}

	switch logFmt {
	case FormatJSON:
		return slog.NewJSONHandler(w, opts)
	case FormatLogfmt:
		return slog.NewTextHandler(w, opts)
	case FormatText:
		logger := charmlog.NewWithOptions(w, charmlog.Options{
			Level:           charmlog.Level(lvl), //nolint:gosec // G115: slog levels fit in int32.
			Formatter:       charmlog.TextFormatter,
			ReportTimestamp: true,
			ReportCaller:    verbose,
			TimeFormat:      time.StampMilli,
		})
		// Per writer, so redirected stderr loses its colors.
		logger.SetColorProfile(termenv.NewOutput(w).EnvColorProfile())

		return logger
	}

	return nil
}

// GetLevel parses a level name, ignoring case.
func GetLevel(level string) (slog.Level, error) {
	lvl, ok := levels[Level(strings.ToLower(level))]
	if !ok {
		return 0, fmt.Errorf("%w %q, expected one of: %s",
			ErrUnknownLogLevel, level, strings.Join(AllLevels, ", "))
	}

	return lvl, nil
}

// GetFormat parses a format name, ignoring case.
func GetFormat(format string) (Format, error) {
	switch f := Format(strings.ToLower(format)); f {
	case FormatJSON, FormatLogfmt, FormatText:
		return f, nil
	}

	return "", fmt.Errorf("%w %q, expected one of: %s",
		ErrUnknownLogFormat, format, strings.Join(AllFormats, ", "))
}

// NewContext returns a copy of ctx that carries logger.
func NewContext(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, logger)
}

// WithContext returns the logger stored by [NewContext], or the default
// logger tagged with the trace_id of the span in ctx.
func WithContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(contextKey{}).(*slog.Logger); ok {
		return logger
	}

	sc := trace.SpanContextFromContext(ctx)
	if !sc.HasTraceID() {
		return slog.Default()
	}

	return slog.With(slog.String("trace_id", sc.TraceID().String()[:traceIDLength]))
}
