package debugui

import (
	"fmt"
	"sort"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/pong/ecs"
)

// SchedulerStatsFunc returns scheduler statistics keyed by a display name.
type SchedulerStatsFunc func() map[string]*ecs.SchedulerStats

// PerformanceStats is a window showing storage counts, per-system timings and
// a frame time graph.
type PerformanceStats struct {
	storage   *ecs.Storage
	scheduler SchedulerStatsFunc
	timer     *FrameTimer

	historyFrames int
	frameHistory  []float32
	frameIndex    int
}

func NewPerformanceStats(storage *ecs.Storage, scheduler SchedulerStatsFunc, historyFrames int) *PerformanceStats {
	return &PerformanceStats{
		storage:       storage,
		scheduler:     scheduler,
		timer:         NewFrameTimer(),
		historyFrames: historyFrames,
		frameHistory:  make([]float32, historyFrames),
	}
}

// Record stores one frame duration in milliseconds and returns the average
// over the history window.
func (ps *PerformanceStats) Record(deltaTime float32) float32 {
	ps.frameHistory[ps.frameIndex] = deltaTime * 1000.0
	ps.frameIndex = (ps.frameIndex + 1) % ps.historyFrames

	var avg float32
	for _, ft := range ps.frameHistory {
		avg += ft
	}
	return avg / float32(ps.historyFrames)
}

func (ps *PerformanceStats) Render() {
	avgFrameTime := ps.Record(ps.timer.GetDeltaTime())

	if !imgui.BeginV("Performance Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	stats := ps.storage.CollectStats()

	imgui.Text(fmt.Sprintf("Total Entities: %d", stats.TotalEntityCount))
	imgui.Text(fmt.Sprintf("Archetypes: %d", stats.ArchetypeCount))
	imgui.Text(fmt.Sprintf("Singletons: %d", stats.SingletonCount))
	if avgFrameTime > 0 {
		imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avgFrameTime, 1000.0/avgFrameTime))
	}

	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	imgui.PlotLinesFloatPtr("##frametime", &ps.frameHistory[0], int32(len(ps.frameHistory)))

	if ps.scheduler != nil && imgui.TreeNodeStr("Systems") {
		ps.renderSystems(ps.scheduler())
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Archetype Details") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("ArchStatsTable", 3, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("Archetype ID")
			imgui.TableSetupColumn("Components")
			imgui.TableSetupColumn("Entity Count")
			imgui.TableHeadersRow()

			for _, arch := range stats.ArchetypeBreakdown {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("0x%X", arch.ID))
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%v", arch.ComponentTypes))
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", arch.EntityCount))
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Singleton Details") {
		for _, singletonType := range stats.SingletonTypes {
			imgui.BulletText(singletonType)
		}
		imgui.TreePop()
	}

	imgui.End()
}

func (ps *PerformanceStats) renderSystems(schedules map[string]*ecs.SchedulerStats) {
	names := make([]string, 0, len(schedules))
	for name := range schedules {
		names = append(names, name)
	}
	sort.Strings(names)

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
	if !imgui.BeginTableV("SystemStatsTable", 5, tableFlags, imgui.NewVec2(0, 0), 0) {
		return
	}
	imgui.TableSetupColumn("Schedule")
	imgui.TableSetupColumn("System")
	imgui.TableSetupColumn("Runs")
	imgui.TableSetupColumn("Avg")
	imgui.TableSetupColumn("Max")
	imgui.TableHeadersRow()

	for _, name := range names {
		for _, sys := range schedules[name].Systems {
			imgui.TableNextRow()
			imgui.TableNextColumn()
			imgui.Text(name)
			imgui.TableNextColumn()
			imgui.Text(sys.Name)
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", sys.ExecutionCount))
			imgui.TableNextColumn()
			imgui.Text(sys.AvgDuration.String())
			imgui.TableNextColumn()
			imgui.Text(sys.MaxDuration.String())
		}
	}

	imgui.EndTable()
}

type FrameTimer struct {
	lastFrameTime time.Time
}

func NewFrameTimer() *FrameTimer {
	return &FrameTimer{
		lastFrameTime: time.Now(),
	}
}

func (ft *FrameTimer) GetDeltaTime() float32 {
	now := time.Now()
	delta := float32(now.Sub(ft.lastFrameTime).Seconds())
	ft.lastFrameTime = now
	return delta
}
