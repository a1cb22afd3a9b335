package debugui

import "github.com/plus3/pong/ecs"

// SpawnDebugUI spawns the performance and entity windows into ui. The windows
// inspect target, which may be the same storage.
func SpawnDebugUI(ui *ecs.Storage, target *ecs.Storage, scheduler SchedulerStatsFunc) {
	ui.Spawn(ImguiItem{Render: NewPerformanceStats(target, scheduler, 120).Render})
	ui.Spawn(ImguiItem{Render: NewEntityInspector(target).Render})
}
