package sim

import (
	"log"
	"math"

	"github.com/jakecoffman/cp"
)

// arriveThreshold is how close a champion must get to its target waypoint
// before advancing to the next one.
const arriveThreshold = 4.0

// Movement drives a single champion along its assigned lane and owns the
// traveling/engaged state machine. While engaged, traversal is suspended and
// the attack cooldown runs instead; reaching the terminal waypoint for the
// champion's direction parks it at the end of the lane until reassigned.
type Movement struct {
	owner *Champion

	lane          *Lane
	forward       bool
	waypointIndex int
	reachedEnd    bool

	opponent     *Champion
	nextAttackAt float64

	events *EventQueue
}

func newMovement(owner *Champion) *Movement {
	return &Movement{owner: owner}
}

// Lane returns the assigned lane, or nil.
func (m *Movement) Lane() *Lane {
	if m == nil {
		return nil
	}
	return m.lane
}

// WaypointIndex returns the current target waypoint index.
func (m *Movement) WaypointIndex() int {
	if m == nil {
		return 0
	}
	return m.waypointIndex
}

// Forward reports whether the champion travels low-to-high waypoint indexes.
func (m *Movement) Forward() bool {
	return m != nil && m.forward
}

// ReachedEnd reports whether the champion arrived at the far end of its lane.
func (m *Movement) ReachedEnd() bool {
	return m != nil && m.reachedEnd
}

// Engaged reports whether the champion is locked in combat with an opponent.
func (m *Movement) Engaged() bool {
	return m != nil && m.opponent != nil
}

// Opponent returns the current combat opponent, or nil.
func (m *Movement) Opponent() *Champion {
	if m == nil {
		return nil
	}
	return m.opponent
}

// AssignLane sets the lane and travel direction and resets the waypoint index
// to the owner team's base index. The forward argument is authoritative only
// when the owner has no team; a known team always decides the direction.
func (m *Movement) AssignLane(lane *Lane, forward bool) {
	if m == nil {
		return
	}
	m.lane = lane
	m.reachedEnd = false
	if lane == nil {
		m.waypointIndex = 0
		m.forward = forward
		return
	}
	team := TeamNeutral
	if m.owner != nil {
		team = m.owner.Team()
	}
	if team != TeamNeutral {
		forward = team == TeamBlue
	}
	m.forward = forward
	if team != TeamNeutral {
		m.waypointIndex = lane.StartWaypointIndex(team)
	} else if forward {
		m.waypointIndex = 0
	} else {
		m.waypointIndex = lane.ClampIndex(lane.WaypointCount() - 1)
	}
}

// ResetWaypointIndex clamps index into the lane's range and clears the
// end-of-lane state.
func (m *Movement) ResetWaypointIndex(index int) {
	if m == nil {
		return
	}
	if m.lane == nil {
		m.waypointIndex = 0
		return
	}
	m.waypointIndex = m.lane.ClampIndex(index)
	m.reachedEnd = false
}

// engage records the opponent for one side of a pairing. Only the owning
// world pairs champions, so both sides are always set in the same step.
func (m *Movement) engage(opponent *Champion) {
	if m == nil {
		return
	}
	m.opponent = opponent
}

// Disengage clears the opponent. Safe to call repeatedly; a second call is a
// no-op.
func (m *Movement) Disengage() {
	if m == nil {
		return
	}
	m.opponent = nil
}

// Update advances the champion one tick. Dead champions and champions without
// a lane hold position; nothing here ever blocks another entity's update.
func (m *Movement) Update(now, dt float64) {
	if m == nil || m.owner == nil || !m.owner.Alive() {
		return
	}
	if m.lane == nil {
		log.Printf("sim: champion %q has no lane assigned, skipping update", m.owner.Name())
		return
	}

	if m.opponent != nil {
		if !m.opponent.Alive() {
			// Stale opponent: disengage and resume traversal this same tick.
			m.Disengage()
		} else {
			m.faceToward(m.opponent.Pos)
			if now >= m.nextAttackAt {
				m.attack(now, dt)
			}
			return
		}
	}

	if m.reachedEnd {
		return
	}
	m.advance(dt)
}

// attack applies one auto-attack to the opponent and restarts the cooldown.
// A killing blow disengages and resumes traversal within the same step
// instead of waiting for the next tick's liveness check.
func (m *Movement) attack(now, dt float64) {
	opp := m.opponent
	if opp == nil {
		return
	}
	damage := m.owner.Config().AttackDamage
	opp.TakeDamage(damage)
	m.nextAttackAt = now + m.owner.Config().AttackCooldown

	killed := !opp.Alive()
	m.emit(CombatEvent{
		Attacker: m.owner.ID(),
		Target:   opp.ID(),
		From:     m.owner.Pos,
		To:       opp.Pos,
		Damage:   damage,
		Killed:   killed,
	})
	if killed {
		m.Disengage()
		if !m.reachedEnd {
			m.advance(dt)
		}
	}
}

// advance moves toward the target waypoint at the champion's move speed,
// stepping the index by the per-team direction on arrival. Arriving at the
// terminal index is expected and parks the movement at the end of the lane.
func (m *Movement) advance(dt float64) {
	count := m.lane.WaypointCount()
	if count == 0 || dt <= 0 {
		return
	}
	m.waypointIndex = m.lane.ClampIndex(m.waypointIndex)
	target := m.lane.WaypointPosition(m.waypointIndex)

	delta := target.Sub(m.owner.Pos)
	dist := delta.Length()
	step := m.owner.Config().MoveSpeed * dt

	if dist > arriveThreshold && dist > step {
		dir := delta.Mult(1 / dist)
		m.owner.Pos = m.owner.Pos.Add(dir.Mult(step))
		m.faceToward(target)
		return
	}

	m.owner.Pos = target
	next := m.waypointIndex + m.stepDirection()
	if next < 0 || next >= count {
		next = m.waypointIndex
	}
	if next == m.waypointIndex {
		m.reachedEnd = true
		return
	}
	m.waypointIndex = next
	m.faceToward(m.lane.WaypointPosition(next))
}

func (m *Movement) stepDirection() int {
	if m.forward {
		return 1
	}
	return -1
}

// faceToward rotates the owner to point at a world position. Traveling
// champions face their next waypoint; engaged champions face their opponent.
func (m *Movement) faceToward(target cp.Vector) {
	delta := target.Sub(m.owner.Pos)
	if delta.Length() == 0 {
		return
	}
	m.owner.Rotation = math.Atan2(delta.Y, delta.X)
}

func (m *Movement) emit(evt CombatEvent) {
	if m.events == nil {
		return
	}
	m.events.Push(evt)
}
