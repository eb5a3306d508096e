package infer

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/scoutsearch/roleattrs/pkg/log"
	"github.com/scoutsearch/roleattrs/pkg/roles"
	"github.com/scoutsearch/roleattrs/pkg/rule"
)

// Pass applies a [rule.Table] to role records.
type Pass struct {
	tracer trace.Tracer
	table  *rule.Table
}

// NewPass creates a [Pass] for table.
func NewPass(table *rule.Table) *Pass {
	return &Pass{
		tracer: otel.Tracer("infer"),
		table:  table,
	}
}

// RecordResult describes what a [Pass] did to one record.
type RecordResult struct {
	rule.Result

	// Changed is true when the record's attribute list was modified.
	Changed bool
}

// Summary counts the outcome of a [Pass] over a collection.
type Summary struct {
	// Processed is the number of records visited.
	Processed int `json:"processed"`
	// Updated is the number of records assigned inferred attributes.
	Updated int `json:"updated"`
	// Unmatched is the number of records no rule matched.
	Unmatched int `json:"unmatched"`
	// Changed is the number of records whose attribute list was modified.
	Changed int `json:"changed"`
}

// ApplyRecord infers attributes for a single record and updates it in place.
//
// Previously inferred attributes are removed and the winning rule's attributes
// are appended after the remaining ones. A record without an attribute list
// that matches no rule is left as it is.
func (p *Pass) ApplyRecord(r *roles.Record) (RecordResult, error) {
	res := RecordResult{Result: p.table.Infer(r.Title(), r.Organization())}

	hadAttributes := r.HasAttributes()
	if !hadAttributes && !res.Matched() {
		return res, nil
	}

	before, _ := r.Field(roles.FieldAttributes)

	existing := r.Attributes()
	attrs := make([]roles.Attribute, 0, len(existing)+len(res.Attributes))

	for _, a := range existing {
		if !a.IsInferred() {
			attrs = append(attrs, a)
		}
	}

	for _, name := range res.Attributes {
		attrs = append(attrs, roles.NewInferred(name))
	}

	err := r.SetAttributes(attrs)
	if err != nil {
		return res, fmt.Errorf("update attributes: %w", err)
	}

	after, _ := r.Field(roles.FieldAttributes)
	res.Changed = !hadAttributes || !roles.EqualJSON(before, after)

	return res, nil
}

// Apply runs the pass over every record in records. It stops at the first
// error, or when ctx is canceled, leaving the remaining records unchanged.
func (p *Pass) Apply(ctx context.Context, records roles.Collection) (Summary, error) {
	ctx, span := p.tracer.Start(ctx, "apply", trace.WithAttributes(
		attribute.Int("records", len(records)),
	))
	defer span.End()

	logger := log.WithContext(ctx)

	var s Summary

	for i, r := range records {
		err := ctx.Err()
		if err != nil {
			return s, fmt.Errorf("apply: %w", err)
		}

		res, err := p.ApplyRecord(r)
		if err != nil {
			return s, fmt.Errorf("record %d: %w", i, err)
		}

		s.Processed++

		if res.Changed {
			s.Changed++
		}

		if !res.Matched() {
			s.Unmatched++

			logger.DebugContext(ctx, "no rule matched",
				slog.Int("index", i),
				slog.String("title", r.Title()),
				slog.Bool("changed", res.Changed),
			)

			continue
		}

		s.Updated++

		logger.DebugContext(ctx, "inferred attributes",
			slog.Int("index", i),
			slog.String("title", r.Title()),
			slog.String("category", res.Category),
			slog.String("keyword", res.Keyword),
			slog.Bool("changed", res.Changed),
		)
	}

	span.SetAttributes(
		attribute.Int("updated", s.Updated),
		attribute.Int("changed", s.Changed),
	)

	return s, nil
}
