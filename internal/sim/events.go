package sim

import "github.com/go-gl/mathgl/mgl64"

type EventType int

const (
	EventFired EventType = iota
	EventDryFire
	EventReloaded
	EventTargetHit
	EventTargetRespawned
	EventProjectileExpired
)

type Event struct {
	Type EventType
	Pos  mgl64.Vec3
	Data int // ammo for weapon events, score for hits
}

type EventHandler func(Event)

// EventBus fans gameplay events out to presentation listeners (sound, particles).
// Handlers run synchronously on the simulation goroutine.
type EventBus struct {
	handlers map[EventType][]EventHandler
}

func NewEventBus() *EventBus {
	return &EventBus{
		handlers: make(map[EventType][]EventHandler),
	}
}

func (eb *EventBus) Subscribe(t EventType, fn EventHandler) {
	eb.handlers[t] = append(eb.handlers[t], fn)
}

func (eb *EventBus) Emit(e Event) {
	for _, fn := range eb.handlers[e.Type] {
		fn(e)
	}
}
