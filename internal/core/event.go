package core

// EventKind identifies something that happened during a simulation step.
// Hosts use events for sound cues and logging.
type EventKind int

const (
	EventBulletSpawned EventKind = iota
	EventDifficultyTick
	EventCollision
	EventPaused
	EventResumed
	EventRestarted
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventBulletSpawned:
		return "bullet_spawned"
	case EventDifficultyTick:
		return "difficulty_tick"
	case EventCollision:
		return "collision"
	case EventPaused:
		return "paused"
	case EventResumed:
		return "resumed"
	case EventRestarted:
		return "restarted"
	default:
		return "unknown"
	}
}

// Event is a single occurrence reported by a step.
type Event struct {
	Kind  EventKind
	Score int // Score at the time of the event
}
