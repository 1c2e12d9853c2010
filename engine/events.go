package engine

import (
	"github.com/lixenwraith/snake/core"
	"github.com/lixenwraith/snake/parameter"
)

// EventType represents the type of simulation event
type EventType int

const (
	// EventGrowth is one pending growth signal
	// Trigger: EatingSystem | Consumer: GrowthSystem (drained in the same tick)
	EventGrowth EventType = iota

	// EventGameOver signals the head hit the pre-move body
	// Trigger: MovementSystem | Consumer: EpisodeController | Position: colliding cell
	EventGameOver

	// EventFoodEaten signals one food item was consumed
	// Trigger: EatingSystem | Position: head cell
	EventFoodEaten

	// EventFoodSpawned signals one food item was placed
	// Trigger: FoodSpawnSystem | Position: food cell
	EventFoodSpawned

	// EventEpisodeStarted signals a fresh snake was spawned
	// Trigger: EpisodeController | Position: head cell
	EventEpisodeStarted
)

var eventTypeNames = map[EventType]string{
	EventGrowth:         "growth",
	EventGameOver:       "game_over",
	EventFoodEaten:      "food_eaten",
	EventFoodSpawned:    "food_spawned",
	EventEpisodeStarted: "episode_started",
}

func (t EventType) String() string {
	if name, ok := eventTypeNames[t]; ok {
		return name
	}
	return "unknown"
}

// GameEvent is a single queued notification
type GameEvent struct {
	Type     EventType
	Position core.Position
}

// EventQueue is the per-tick FIFO of simulation events
// Pushed and drained by the simulation goroutine only
type EventQueue struct {
	events []GameEvent
}

// NewEventQueue creates an empty queue
func NewEventQueue() *EventQueue {
	return &EventQueue{events: make([]GameEvent, 0, parameter.EventQueueCapacity)}
}

// Push appends an event
func (q *EventQueue) Push(ev GameEvent) {
	q.events = append(q.events, ev)
}

// Consume returns all pending events in FIFO order and empties the queue
func (q *EventQueue) Consume() []GameEvent {
	if len(q.events) == 0 {
		return nil
	}
	out := make([]GameEvent, len(q.events))
	copy(out, q.events)
	q.events = q.events[:0]
	return out
}

// Take removes every pending event of type t and returns how many were removed
// Other events keep their relative order
func (q *EventQueue) Take(t EventType) int {
	kept := q.events[:0]
	n := 0
	for _, ev := range q.events {
		if ev.Type == t {
			n++
			continue
		}
		kept = append(kept, ev)
	}
	q.events = kept
	return n
}

// Len returns the number of pending events
func (q *EventQueue) Len() int {
	return len(q.events)
}
