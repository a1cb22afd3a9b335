package pong

import (
	"github.com/plus3/pong/ecs"
)

type paddleEntity = struct {
	*Paddle
	*Rect
}

type ballEntity = struct {
	*Ball
	*Rect
}

// StartSystem waits on the title screen for confirm.
type StartSystem struct {
	Match  ecs.Singleton[Match]
	Input  ecs.Singleton[Input]
	Events ecs.Singleton[Events]
}

func (s *StartSystem) Execute(frame *ecs.UpdateFrame) {
	match := s.Match.Get()
	if Transition(match.State, *s.Input.Get(), match.Score) != StatePlaying {
		return
	}
	match.State = StatePlaying
	s.Events.Get().Emit(Event{Kind: EventMatchStarted, Score: match.Score})
}

// PaddleSystem moves each paddle by PaddleSpeed while its keys are held.
// The bound is checked before moving, so a paddle may come to rest a few
// pixels short of an edge.
type PaddleSystem struct {
	Paddles ecs.Query[paddleEntity]
	Input   ecs.Singleton[Input]
}

func (s *PaddleSystem) Execute(frame *ecs.UpdateFrame) {
	in := s.Input.Get()
	for p := range s.Paddles.Iter() {
		up, down := in.Controls(p.Paddle.Side)
		if up && p.Rect.Y > 0 {
			p.Rect.Y -= PaddleSpeed
		}
		if down && p.Rect.Y < ScreenHeight-PaddleHeight {
			p.Rect.Y += PaddleSpeed
		}
	}
}

// BallSystem translates the ball by its direction times its speed.
type BallSystem struct {
	Balls ecs.Query[ballEntity]
}

func (s *BallSystem) Execute(frame *ecs.UpdateFrame) {
	for b := range s.Balls.Iter() {
		b.Rect.X += b.Ball.DX * b.Ball.Speed
		b.Rect.Y += b.Ball.DY * b.Ball.Speed
	}
}

// WallSystem flips the vertical direction when the ball touches or passes the
// top or bottom edge. The position is left as is.
type WallSystem struct {
	Balls  ecs.Query[ballEntity]
	Events ecs.Singleton[Events]
}

func (s *WallSystem) Execute(frame *ecs.UpdateFrame) {
	for b := range s.Balls.Iter() {
		if b.Rect.Y <= 0 || b.Rect.Y+b.Rect.H >= ScreenHeight {
			b.Ball.DY = -b.Ball.DY
			s.Events.Get().Emit(Event{Kind: EventWallBounce, Speed: b.Ball.Speed})
		}
	}
}

// CollisionSystem reverses the ball and speeds it up when it overlaps a
// paddle. The test is made once per frame on the translated position, so a
// fast enough ball can pass straight through a paddle.
type CollisionSystem struct {
	Balls   ecs.Query[ballEntity]
	Paddles ecs.Query[paddleEntity]
	Events  ecs.Singleton[Events]
}

func (s *CollisionSystem) Execute(frame *ecs.UpdateFrame) {
	for b := range s.Balls.Iter() {
		for p := range s.Paddles.Iter() {
			if !b.Rect.Intersects(*p.Rect) {
				continue
			}
			b.Ball.DX = -b.Ball.DX
			b.Ball.Speed++
			s.Events.Get().Emit(Event{Kind: EventPaddleHit, Side: p.Paddle.Side, Speed: b.Ball.Speed})
			break
		}
	}
}

// ScoringSystem awards a point when the ball reaches a side edge and puts the
// ball back in the middle at InitialBallSpeed. Its direction is kept.
type ScoringSystem struct {
	Balls  ecs.Query[ballEntity]
	Match  ecs.Singleton[Match]
	Events ecs.Singleton[Events]
}

func (s *ScoringSystem) Execute(frame *ecs.UpdateFrame) {
	match := s.Match.Get()
	for b := range s.Balls.Iter() {
		var scorer Side
		switch {
		case b.Rect.X <= 0:
			scorer = SideRight
		case b.Rect.X+b.Rect.W >= ScreenWidth:
			scorer = SideLeft
		default:
			continue
		}

		match.Score.Add(scorer)
		b.Rect.X, b.Rect.Y = BallStartX, BallStartY
		b.Ball.Speed = InitialBallSpeed
		s.Events.Get().Emit(Event{Kind: EventPoint, Side: scorer, Score: match.Score, Speed: b.Ball.Speed})
	}
}

// VictorySystem ends the match once a side reaches VictoryScore.
type VictorySystem struct {
	Match  ecs.Singleton[Match]
	Input  ecs.Singleton[Input]
	Events ecs.Singleton[Events]
}

func (s *VictorySystem) Execute(frame *ecs.UpdateFrame) {
	match := s.Match.Get()
	if Transition(match.State, *s.Input.Get(), match.Score) != StateEnd {
		return
	}
	match.State = StateEnd
	s.Events.Get().Emit(Event{Kind: EventMatchWon, Side: match.Score.Winner(), Score: match.Score})
}

// TimerSystem counts Playing frames, including the frame a match is won on.
type TimerSystem struct {
	Match ecs.Singleton[Match]
}

func (s *TimerSystem) Execute(frame *ecs.UpdateFrame) {
	s.Match.Get().Timer++
}

// EndSystem waits on the result screen for confirm and clears the score.
type EndSystem struct {
	Match  ecs.Singleton[Match]
	Input  ecs.Singleton[Input]
	Events ecs.Singleton[Events]
}

func (s *EndSystem) Execute(frame *ecs.UpdateFrame) {
	match := s.Match.Get()
	if Transition(match.State, *s.Input.Get(), match.Score) != StateStart {
		return
	}
	match.Score = Score{}
	match.State = StateStart
	s.Events.Get().Emit(Event{Kind: EventReset})
}
