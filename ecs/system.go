package ecs

// System represents a behavior that operates on entities with specific components.
// Systems are structs that may declare Query and Singleton fields; the Scheduler
// wires those fields on Register and refreshes the queries before every Execute.
// Any other fields are plain state that persists between frames.
type System interface {
	Execute(frame *UpdateFrame)
}

// UpdateFrame is handed to every system during one Scheduler pass.
type UpdateFrame struct {
	DeltaTime float64
	Commands  *Commands
	Storage   *Storage
}

func newUpdateFrame(dt float64, storage *Storage, commands *Commands) *UpdateFrame {
	return &UpdateFrame{
		DeltaTime: dt,
		Commands:  commands,
		Storage:   storage,
	}
}
