package pong

import (
	"fmt"
	"strconv"

	"github.com/plus3/pong/ecs"
)

// Canvas is a drawing target in the 640x480 logical screen space. Text is
// drawn white with its top-left corner at (x, y) and rects are filled white.
type Canvas interface {
	Clear()
	FillRect(r Rect)
	DrawText(text string, x, y int)
}

const (
	Title       = "ANDRI'S PONG"
	StartPrompt = "Press Enter to start"
	EndPrompt   = "Press Enter for a new game"
)

// Text anchors on the logical screen.
var (
	titlePos  = [2]int{ScreenWidth/2 - 100, ScreenHeight/2 - 50}
	promptPos = [2]int{ScreenWidth/2 - 100, ScreenHeight / 2}
	timerPos  = [2]int{ScreenWidth/2 - 10, 10}
	scorePos  = [2]int{ScreenWidth/2 - 30, 40}
	winnerPos = [2]int{ScreenWidth/2 - 50, ScreenHeight/2 - 50}
)

// WinnerText returns the end screen headline for score.
func WinnerText(score Score) string {
	if score.Winner() == SideLeft {
		return "Player 1 wins"
	}
	return "Player 2 wins"
}

// ScoreText formats the playing HUD score line.
func ScoreText(score Score) string {
	return fmt.Sprintf("%d - %d", score.Left, score.Right)
}

// TimerText formats the playing HUD timer as whole elapsed seconds.
func TimerText(timer int) string {
	return strconv.Itoa(timer / TicksPerSecond)
}

// RenderSystem draws the current state into the Surface canvas.
type RenderSystem struct {
	Match   ecs.Singleton[Match]
	Surface ecs.Singleton[Surface]
	Paddles ecs.Query[paddleEntity]
	Balls   ecs.Query[ballEntity]
}

func (s *RenderSystem) Execute(frame *ecs.UpdateFrame) {
	c := s.Surface.Get().Canvas
	if c == nil {
		return
	}
	c.Clear()

	match := s.Match.Get()
	switch match.State {
	case StateStart:
		c.DrawText(Title, titlePos[0], titlePos[1])
		c.DrawText(StartPrompt, promptPos[0], promptPos[1])
	case StatePlaying:
		c.DrawText(TimerText(match.Timer), timerPos[0], timerPos[1])
		c.DrawText(ScoreText(match.Score), scorePos[0], scorePos[1])
		for p := range s.Paddles.Iter() {
			c.FillRect(*p.Rect)
		}
		for b := range s.Balls.Iter() {
			c.FillRect(*b.Rect)
		}
	case StateEnd:
		c.DrawText(WinnerText(match.Score), winnerPos[0], winnerPos[1])
		c.DrawText(EndPrompt, promptPos[0], promptPos[1])
	}
}
