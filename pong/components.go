package pong

// Side identifies a player by the half of the court they defend.
type Side int

const (
	SideLeft Side = iota
	SideRight
)

func (s Side) String() string {
	if s == SideLeft {
		return "left"
	}
	return "right"
}

// Opponent returns the other side.
func (s Side) Opponent() Side {
	if s == SideLeft {
		return SideRight
	}
	return SideLeft
}

// Rect is an axis-aligned rectangle in screen pixels. It covers the pixels
// [X, X+W) horizontally and [Y, Y+H) vertically.
type Rect struct {
	X, Y, W, H int
}

// Intersects reports whether the two rectangles share at least one pixel.
// Rectangles that only touch along an edge do not intersect.
func (r Rect) Intersects(o Rect) bool {
	if r.W <= 0 || r.H <= 0 || o.W <= 0 || o.H <= 0 {
		return false
	}
	return r.X < o.X+o.W && o.X < r.X+r.W &&
		r.Y < o.Y+o.H && o.Y < r.Y+r.H
}

// CenterY returns the vertical middle of the rectangle.
func (r Rect) CenterY() int {
	return r.Y + r.H/2
}

// Paddle marks a Rect entity as the paddle of one side.
type Paddle struct {
	Side Side
}

// Ball marks a Rect entity as the ball. DX and DY are always -1 or +1 and
// Speed is the number of pixels moved along each axis per frame.
type Ball struct {
	DX, DY int
	Speed  int
}

// Score is the point count of both sides.
type Score struct {
	Left, Right int
}

// Add gives a point to side.
func (s *Score) Add(side Side) {
	if side == SideLeft {
		s.Left++
	} else {
		s.Right++
	}
}

// Winner returns the side that reached VictoryScore. Only meaningful once one
// of them has.
func (s Score) Winner() Side {
	if s.Left >= VictoryScore {
		return SideLeft
	}
	return SideRight
}

// Match is the singleton holding everything about the current game that is
// not an entity.
type Match struct {
	State State
	Score Score
	// Timer counts Playing frames. It is never reset, so a new game keeps
	// counting from where the previous one stopped.
	Timer int
}

// Input is the set of keys held during one frame.
type Input struct {
	Confirm   bool
	LeftUp    bool
	LeftDown  bool
	RightUp   bool
	RightDown bool
}

// Controls returns the up/down keys for side.
func (in Input) Controls(side Side) (up, down bool) {
	if side == SideLeft {
		return in.LeftUp, in.LeftDown
	}
	return in.RightUp, in.RightDown
}

// SetControls overwrites the up/down keys for side.
func (in *Input) SetControls(side Side, up, down bool) {
	if side == SideLeft {
		in.LeftUp, in.LeftDown = up, down
	} else {
		in.RightUp, in.RightDown = up, down
	}
}

// Surface is the singleton carrying the canvas the render systems draw into
// this frame. It is nil outside World.Render.
type Surface struct {
	Canvas Canvas
}
