package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/plus3/pong/pong"
)

func newRecorder(t *testing.T) (*tracetest.SpanRecorder, *MatchTracer) {
	t.Helper()
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })
	return recorder, NewMatchTracer(context.Background(), tp.Tracer("test"))
}

func attrs(span sdktrace.ReadOnlySpan) map[attribute.Key]attribute.Value {
	out := make(map[attribute.Key]attribute.Value)
	for _, kv := range span.Attributes() {
		out[kv.Key] = kv.Value
	}
	return out
}

func TestMatchTracer(t *testing.T) {
	recorder, tracer := newRecorder(t)

	tracer.Handle(pong.Event{Kind: pong.EventMatchStarted})
	tracer.Handle(pong.Event{Kind: pong.EventPaddleHit, Side: pong.SideRight, Speed: 2})
	tracer.Handle(pong.Event{Kind: pong.EventPaddleHit, Side: pong.SideLeft, Speed: 3})
	tracer.Handle(pong.Event{Kind: pong.EventWallBounce})
	for i := 1; i <= pong.VictoryScore; i++ {
		tracer.Handle(pong.Event{Kind: pong.EventPoint, Side: pong.SideRight, Score: pong.Score{Right: i}})
	}
	assert.Empty(t, recorder.Ended())

	tracer.Handle(pong.Event{Kind: pong.EventMatchWon, Side: pong.SideRight, Score: pong.Score{Right: 5}})

	ended := recorder.Ended()
	require.Len(t, ended, 1)
	span := ended[0]
	assert.Equal(t, "pong.match", span.Name())
	assert.Len(t, span.Events(), pong.VictoryScore)
	assert.Equal(t, "point", span.Events()[0].Name)

	got := attrs(span)
	assert.Equal(t, "right", got["match.winner"].AsString())
	assert.Equal(t, int64(5), got["score.right"].AsInt64())
	assert.Equal(t, int64(0), got["score.left"].AsInt64())
	assert.Equal(t, int64(2), got["match.paddle_hits"].AsInt64())
	assert.Equal(t, int64(1), got["match.wall_bounces"].AsInt64())
	assert.Equal(t, int64(3), got["match.max_speed"].AsInt64())
}

func TestMatchTracerAbandoned(t *testing.T) {
	recorder, tracer := newRecorder(t)

	tracer.Handle(pong.Event{Kind: pong.EventPoint, Side: pong.SideLeft})
	tracer.Close()
	assert.Empty(t, recorder.Ended())

	tracer.Handle(pong.Event{Kind: pong.EventMatchStarted})
	tracer.Handle(pong.Event{Kind: pong.EventMatchStarted})
	tracer.Close()
	tracer.Close()

	ended := recorder.Ended()
	require.Len(t, ended, 2)
	for _, span := range ended {
		assert.True(t, attrs(span)["match.abandoned"].AsBool())
	}
}

func TestMatchTracerWithWorld(t *testing.T) {
	recorder, tracer := newRecorder(t)

	world := pong.New()
	world.Subscribe(tracer)
	world.Step(pong.Input{Confirm: true})
	for i := 0; i < pong.VictoryScore; i++ {
		world.SetBall(pong.Rect{X: 1, Y: 240, W: pong.BallSize, H: pong.BallSize}, pong.Ball{DX: -1, DY: 1, Speed: 1})
		world.Step(pong.Input{})
	}

	ended := recorder.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, "right", attrs(ended[0])["match.winner"].AsString())
}

func TestNoopTracer(t *testing.T) {
	tracer := NewMatchTracer(context.Background(), NoopTracer())
	assert.NotPanics(t, func() {
		tracer.Handle(pong.Event{Kind: pong.EventMatchStarted})
		tracer.Handle(pong.Event{Kind: pong.EventMatchWon})
		tracer.Close()
	})
}
