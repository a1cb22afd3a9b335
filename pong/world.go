package pong

import (
	"github.com/plus3/pong/ecs"
)

// World owns the ECS storage of one game and the schedulers that advance and
// draw it. It is not safe for concurrent use.
type World struct {
	storage *ecs.Storage

	update map[State]*ecs.Scheduler
	render *ecs.Scheduler

	match   *ecs.Singleton[Match]
	input   *ecs.Singleton[Input]
	events  *ecs.Singleton[Events]
	surface *ecs.Singleton[Surface]

	ball    ecs.EntityId
	paddles [2]ecs.EntityId
	balls   *ecs.View[ballEntity]
	rects   *ecs.View[struct{ *Rect }]

	listeners []Listener
}

// NewRegistry returns a component registry with every pong component.
func NewRegistry() *ecs.ComponentRegistry {
	registry := ecs.NewComponentRegistry()
	ecs.RegisterComponent[Rect](registry)
	ecs.RegisterComponent[Paddle](registry)
	ecs.RegisterComponent[Ball](registry)
	return registry
}

// New returns a world on the start screen with both paddles vertically
// centred, the ball in the middle heading down-right at InitialBallSpeed and
// both scores at zero.
func New() *World {
	storage := ecs.NewStorage(NewRegistry())

	w := &World{
		storage: storage,
		match:   ecs.NewSingleton(storage, Match{State: StateStart}),
		input:   ecs.NewSingleton[Input](storage),
		events:  ecs.NewSingleton[Events](storage),
		surface: ecs.NewSingleton[Surface](storage),
		balls:   ecs.NewView[ballEntity](storage),
		rects:   ecs.NewView[struct{ *Rect }](storage),
	}

	paddleY := (ScreenHeight - PaddleHeight) / 2
	w.paddles[SideLeft] = storage.Spawn(
		Paddle{Side: SideLeft},
		Rect{X: PaddleMargin, Y: paddleY, W: PaddleWidth, H: PaddleHeight},
	)
	w.paddles[SideRight] = storage.Spawn(
		Paddle{Side: SideRight},
		Rect{X: ScreenWidth - PaddleMargin - PaddleWidth, Y: paddleY, W: PaddleWidth, H: PaddleHeight},
	)
	w.ball = storage.Spawn(
		Ball{DX: 1, DY: 1, Speed: InitialBallSpeed},
		Rect{X: BallStartX, Y: BallStartY, W: BallSize, H: BallSize},
	)

	start := ecs.NewScheduler(storage)
	start.Register(&StartSystem{})

	playing := ecs.NewScheduler(storage)
	playing.Register(&PaddleSystem{})
	playing.Register(&BallSystem{})
	playing.Register(&WallSystem{})
	playing.Register(&CollisionSystem{})
	playing.Register(&ScoringSystem{})
	playing.Register(&VictorySystem{})
	playing.Register(&TimerSystem{})

	end := ecs.NewScheduler(storage)
	end.Register(&EndSystem{})

	w.update = map[State]*ecs.Scheduler{
		StateStart:   start,
		StatePlaying: playing,
		StateEnd:     end,
	}

	w.render = ecs.NewScheduler(storage)
	w.render.Register(&RenderSystem{})

	return w
}

// Subscribe adds a listener that receives every event after each Step.
func (w *World) Subscribe(l Listener) {
	w.listeners = append(w.listeners, l)
}

// Step advances the game by one frame with the keys held in in. Only the
// systems of the state the frame started in run, so a transition takes effect
// on the following frame. The events emitted during the frame are returned
// after being handed to the listeners.
func (w *World) Step(in Input) []Event {
	*w.input.Get() = in

	if scheduler, ok := w.update[w.match.Get().State]; ok {
		scheduler.Once(1.0 / TicksPerSecond)
	}

	events := w.events.Get().Drain()
	for _, ev := range events {
		for _, l := range w.listeners {
			l.Handle(ev)
		}
	}
	return events
}

// Render draws the current state into c.
func (w *World) Render(c Canvas) {
	surface := w.surface.Get()
	surface.Canvas = c
	w.render.Once(0)
	surface.Canvas = nil
}

// Storage exposes the underlying ECS storage for inspection tools.
func (w *World) Storage() *ecs.Storage {
	return w.storage
}

func (w *World) State() State {
	return w.match.Get().State
}

func (w *World) Score() Score {
	return w.match.Get().Score
}

// Timer returns the number of Playing frames since the world was created.
func (w *World) Timer() int {
	return w.match.Get().Timer
}

// Ball returns the ball rectangle and motion.
func (w *World) Ball() (Rect, Ball) {
	b := w.balls.Get(w.ball)
	return *b.Rect, *b.Ball
}

// SetBall places the ball and sets its motion.
func (w *World) SetBall(r Rect, b Ball) {
	e := w.balls.Get(w.ball)
	*e.Rect = r
	*e.Ball = b
}

// Paddle returns the rectangle of the paddle on side.
func (w *World) Paddle(side Side) Rect {
	return *w.rects.Get(w.paddles[side]).Rect
}

// SetPaddleY moves the paddle on side to y.
func (w *World) SetPaddleY(side Side, y int) {
	w.rects.Get(w.paddles[side]).Rect.Y = y
}

// Stats returns the scheduler statistics keyed by schedule name.
func (w *World) Stats() map[string]*ecs.SchedulerStats {
	stats := make(map[string]*ecs.SchedulerStats, len(w.update)+1)
	for state, scheduler := range w.update {
		stats[state.String()] = scheduler.GetStats()
	}
	stats["render"] = w.render.GetStats()
	return stats
}
