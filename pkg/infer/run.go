package infer

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"

	"github.com/aymanbagabas/go-udiff"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/scoutsearch/roleattrs/pkg/log"
	"github.com/scoutsearch/roleattrs/pkg/roles"
	"github.com/scoutsearch/roleattrs/pkg/rule"
)

// Report is the outcome of [Run].
type Report struct {
	// Path of the role database.
	Path string `json:"path"`
	// Diff is a unified diff between the file before and after the pass. It is
	// only set when requested with [WithDiff].
	Diff string `json:"diff,omitempty"`

	Summary

	// Written is true when the file was rewritten.
	Written bool `json:"written"`
}

// RunOpt configures [Run].
type RunOpt func(*runOptions)

type runOptions struct {
	dryRun bool
	diff   bool
}

// WithDryRun runs the pass without writing the result.
func WithDryRun(dryRun bool) RunOpt {
	return func(o *runOptions) {
		o.dryRun = dryRun
	}
}

// WithDiff attaches a unified diff of the database file to the [Report].
func WithDiff(diff bool) RunOpt {
	return func(o *runOptions) {
		o.diff = diff
	}
}

// Run loads the role database at path, applies table to every record, and
// writes the result back. Nothing is written when loading fails, when the pass
// fails, or when the result is identical to the file's current content.
func Run(ctx context.Context, path string, table *rule.Table, opts ...RunOpt) (*Report, error) {
	o := &runOptions{}
	for _, opt := range opts {
		opt(o)
	}

	p := NewPass(table)

	ctx, span := p.tracer.Start(ctx, "run", trace.WithAttributes(
		attribute.String("path", path),
		attribute.Bool("dry_run", o.dryRun),
	))
	defer span.End()

	logger := log.WithContext(ctx).With(slog.String("path", path))

	records, before, err := roles.Load(path)
	if err != nil {
		return nil, err //nolint:wrapcheck // Already annotated with the path.
	}

	summary, err := p.Apply(ctx, records)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	after, err := records.Encode()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	report := &Report{Path: path, Summary: summary}

	if o.diff {
		report.Diff = udiff.Unified(path, path, string(before), string(after))
	}

	switch {
	case bytes.Equal(before, after):
		logger.DebugContext(ctx, "role database unchanged")
	case o.dryRun:
		logger.InfoContext(ctx, "dry run, skipping write",
			slog.Int("changed", summary.Changed),
		)
	default:
		err = roles.Save(path, after)
		if err != nil {
			return nil, err //nolint:wrapcheck // Already annotated.
		}

		report.Written = true
	}

	logger.InfoContext(ctx, "inference complete",
		slog.Int("processed", summary.Processed),
		slog.Int("updated", summary.Updated),
		slog.Int("unmatched", summary.Unmatched),
		slog.Int("changed", summary.Changed),
		slog.Bool("written", report.Written),
	)

	return report, nil
}
