package display

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/pong/pong"
)

// matchInspector is the debug window summarising the match.
type matchInspector struct {
	world *pong.World
}

func (m *matchInspector) Render() {
	if !imgui.BeginV("Match", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	score := m.world.Score()
	rect, ball := m.world.Ball()

	imgui.Text(fmt.Sprintf("State: %s", m.world.State()))
	imgui.Text(fmt.Sprintf("Score: %d - %d", score.Left, score.Right))
	imgui.Text(fmt.Sprintf("Timer: %d frames (%ds)", m.world.Timer(), m.world.Timer()/pong.TicksPerSecond))
	imgui.Separator()
	imgui.Text(fmt.Sprintf("Ball: (%d, %d) dir (%d, %d) speed %d", rect.X, rect.Y, ball.DX, ball.DY, ball.Speed))
	for _, side := range []pong.Side{pong.SideLeft, pong.SideRight} {
		paddle := m.world.Paddle(side)
		imgui.Text(fmt.Sprintf("Paddle %s: y=%d", side, paddle.Y))
	}

	imgui.End()
}
