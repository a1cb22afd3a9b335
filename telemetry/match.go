package telemetry

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/plus3/pong/pong"
)

// MatchTracer records one pong.match span per match. Points become span
// events; hits, bounces and the result become attributes when the match
// ends.
type MatchTracer struct {
	ctx    context.Context
	tracer trace.Tracer

	span     trace.Span
	hits     int
	bounces  int
	maxSpeed int
}

func NewMatchTracer(ctx context.Context, tracer trace.Tracer) *MatchTracer {
	return &MatchTracer{ctx: ctx, tracer: tracer}
}

// Handle implements pong.Listener.
func (m *MatchTracer) Handle(ev pong.Event) {
	switch ev.Kind {
	case pong.EventMatchStarted:
		m.finish(attribute.Bool("match.abandoned", true))
		_, m.span = m.tracer.Start(m.ctx, "pong.match")
		m.hits, m.bounces, m.maxSpeed = 0, 0, 0

	case pong.EventPaddleHit:
		m.hits++
		m.maxSpeed = max(m.maxSpeed, ev.Speed)

	case pong.EventWallBounce:
		m.bounces++

	case pong.EventPoint:
		if m.span != nil {
			m.span.AddEvent("point", trace.WithAttributes(
				attribute.String("point.side", ev.Side.String()),
				attribute.Int("score.left", ev.Score.Left),
				attribute.Int("score.right", ev.Score.Right),
			))
		}

	case pong.EventMatchWon:
		m.finish(
			attribute.String("match.winner", ev.Side.String()),
			attribute.Int("score.left", ev.Score.Left),
			attribute.Int("score.right", ev.Score.Right),
		)
	}
}

// Close ends a match still in progress.
func (m *MatchTracer) Close() {
	m.finish(attribute.Bool("match.abandoned", true))
}

func (m *MatchTracer) finish(attrs ...attribute.KeyValue) {
	if m.span == nil {
		return
	}
	m.span.SetAttributes(attrs...)
	m.span.SetAttributes(
		attribute.Int("match.paddle_hits", m.hits),
		attribute.Int("match.wall_bounces", m.bounces),
		attribute.Int("match.max_speed", m.maxSpeed),
	)
	m.span.End()
	m.span = nil
}
