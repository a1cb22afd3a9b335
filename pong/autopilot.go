package pong

// autopilotDeadZone keeps the paddle still while the ball centre is within
// this many pixels of the paddle centre.
const autopilotDeadZone = PaddleSpeed * 2

// Autopilot returns the keys a simple computer player would hold for side:
// it chases the ball centre vertically and never anticipates bounces.
func Autopilot(side Side, w *World) (up, down bool) {
	ball, _ := w.Ball()
	return Track(w.Paddle(side), ball)
}

// Track is the controller behind Autopilot for an explicit paddle and ball.
func Track(paddle, ball Rect) (up, down bool) {
	delta := ball.CenterY() - paddle.CenterY()
	switch {
	case delta < -autopilotDeadZone:
		return true, false
	case delta > autopilotDeadZone:
		return false, true
	}
	return false, false
}

// AutopilotInput returns in with the movement keys of every side in sides
// replaced by the autopilot's choice.
func AutopilotInput(in Input, w *World, sides ...Side) Input {
	for _, side := range sides {
		up, down := Autopilot(side, w)
		in.SetControls(side, up, down)
	}
	return in
}
