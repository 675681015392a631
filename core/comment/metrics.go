package comment

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/goto/discuss/core/moderation"
	"github.com/goto/discuss/domain"
)

const instrumentationName = "github.com/goto/discuss/core/comment"

type metrics struct {
	mutations   metric.Int64Counter
	moderations metric.Int64Counter
	sideEffects metric.Int64Counter
}

func newMetrics() *metrics {
	meter := otel.Meter(instrumentationName)
	m := &metrics{}

	var err error
	if m.mutations, err = meter.Int64Counter("discuss.comment.mutations",
		metric.WithDescription("comment mutations by operation and outcome")); err != nil {
		otel.Handle(err)
	}
	if m.moderations, err = meter.Int64Counter("discuss.comment.moderations",
		metric.WithDescription("applied moderation transitions")); err != nil {
		otel.Handle(err)
	}
	if m.sideEffects, err = meter.Int64Counter("discuss.comment.side_effect_failures",
		metric.WithDescription("side effects that failed after retries")); err != nil {
		otel.Handle(err)
	}
	return m
}

func (m *metrics) mutation(ctx context.Context, op string, err error) {
	if m == nil || m.mutations == nil {
		return
	}
	outcome := "success"
	if err != nil {
		outcome = "failure"
	}
	m.mutations.Add(ctx, 1, metric.WithAttributes(
		attribute.String("operation", op),
		attribute.String("outcome", outcome),
	))
}

func (m *metrics) moderation(ctx context.Context, event moderation.Event, from, to domain.CommentStatus) {
	if m == nil || m.moderations == nil {
		return
	}
	m.moderations.Add(ctx, 1, metric.WithAttributes(
		attribute.String("event", event.String()),
		attribute.String("from", from.String()),
		attribute.String("to", to.String()),
	))
}

func (m *metrics) sideEffectFailed(ctx context.Context, name string) {
	if m == nil || m.sideEffects == nil {
		return
	}
	m.sideEffects.Add(ctx, 1, metric.WithAttributes(attribute.String("side_effect", name)))
}
