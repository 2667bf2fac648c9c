package sim

import "github.com/jakecoffman/cp"

// CombatEvent is emitted for every auto-attack so collaborators (the viewer's
// attack effect, the scenario log) can react without reaching into champion
// state mid-tick.
type CombatEvent struct {
	Attacker int
	Target   int
	From     cp.Vector
	To       cp.Vector
	Damage   float64
	Killed   bool
}

// EventQueue is a simple FIFO of combat events, drained once per frame by
// whoever consumes them.
type EventQueue struct {
	items []CombatEvent
}

// Push adds an event.
func (q *EventQueue) Push(evt CombatEvent) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain returns all pending events and clears the queue.
func (q *EventQueue) Drain() []CombatEvent {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}
