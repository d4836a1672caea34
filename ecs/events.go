package ecs

import "github.com/milk9111/hexboard/hexgrid"

// Event is a generic ECS event payload.
type Event struct {
	Type string
	Data any
}

const (
	EventTileSelected = "tile_selected"
	EventBoardCleared = "board_cleared"
	EventBoardSpawned = "board_spawned"
)

// TileSelectedEvent is published when a click resolves to a tile.
type TileSelectedEvent struct {
	Tilemap Entity
	Tile    Entity
	Pos     hexgrid.TilePos
	Clicks  int
}

// EventQueue is a simple FIFO queue. Events live for one frame: the
// scheduler flushes anything left undrained at the start of the next update.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

// Len returns the number of queued events.
func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = nil
}
