package pong

// Gameplay constants. These define the game and are not configurable.
const (
	ScreenWidth  = 640
	ScreenHeight = 480

	PaddleWidth  = 20
	PaddleHeight = 80
	PaddleMargin = 40
	PaddleSpeed  = 5

	BallSize         = 15
	InitialBallSpeed = 1

	VictoryScore = 5

	TicksPerSecond = 60
)

// Where the ball is placed at the start and after every point.
const (
	BallStartX = (ScreenWidth - BallSize) / 2
	BallStartY = (ScreenHeight - BallSize) / 2
)
