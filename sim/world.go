package sim

import (
	"log"

	"github.com/jakecoffman/cp"
)

// Default base anchors used when the map config names no spawn points.
var (
	defaultBlueSpawn = cp.Vector{X: 96, Y: 544}
	defaultRedSpawn  = cp.Vector{X: 544, Y: 96}
)

// WorldConfig describes a match before any champion spawns: the registered
// lanes and the named team base anchors.
type WorldConfig struct {
	Lanes     map[LaneType]*Lane
	BlueSpawn *cp.Vector
	RedSpawn  *cp.Vector
}

// World owns the match: the champion arena, the lane registry, the physics
// space delivering overlap events, and the simulation clock. Everything runs
// on a single cooperative tick; there is no parallel mutation of shared
// state, and lanes stay read-only while the match runs.
type World struct {
	lanes   *LaneManager
	physics *PhysicsWorld
	events  EventQueue

	// champions is an id arena: id == index+1, slots nil after despawn.
	champions []*Champion

	now  float64
	tick uint64

	blueSpawn cp.Vector
	redSpawn  cp.Vector
}

// NewWorld creates a world with the given lanes and spawn anchors. Lanes must
// be registered before any champion requests one.
func NewWorld(cfg WorldConfig) *World {
	w := &World{
		lanes:     NewLaneManager(),
		blueSpawn: defaultBlueSpawn,
		redSpawn:  defaultRedSpawn,
	}
	for t, l := range cfg.Lanes {
		w.lanes.Register(t, l)
	}
	if cfg.BlueSpawn != nil {
		w.blueSpawn = *cfg.BlueSpawn
	}
	if cfg.RedSpawn != nil {
		w.redSpawn = *cfg.RedSpawn
	}
	w.physics = newPhysicsWorld(w)
	return w
}

// Lanes returns the world's lane registry.
func (w *World) Lanes() *LaneManager {
	if w == nil {
		return nil
	}
	return w.lanes
}

// Events returns the combat event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

// Now returns the accumulated simulation time in seconds.
func (w *World) Now() float64 {
	if w == nil {
		return 0
	}
	return w.now
}

// SpawnPoint returns the base anchor for a team. Neutral champions share the
// blue anchor.
func (w *World) SpawnPoint(team Team) cp.Vector {
	if w == nil {
		return cp.Vector{}
	}
	if team == TeamRed {
		return w.redSpawn
	}
	return w.blueSpawn
}

// Champions returns all live arena slots in id order.
func (w *World) Champions() []*Champion {
	if w == nil {
		return nil
	}
	out := make([]*Champion, 0, len(w.champions))
	for _, c := range w.champions {
		if c != nil {
			out = append(out, c)
		}
	}
	return out
}

// ChampionByID returns the champion with the given id, or nil.
func (w *World) ChampionByID(id int) *Champion {
	if w == nil || id <= 0 || id > len(w.champions) {
		return nil
	}
	return w.champions[id-1]
}

// SpawnChampion adds a champion to the match at its team's base anchor and
// assigns its lane.
func (w *World) SpawnChampion(cfg ChampionConfig) *Champion {
	if w == nil {
		return nil
	}
	c := NewChampion(cfg)
	w.champions = append(w.champions, c)
	c.id = len(w.champions)
	c.world = w
	c.movement.events = &w.events
	c.OnDeath = w.scheduleRespawn
	c.Pos = w.SpawnPoint(c.Team())
	c.AssignToLane()
	w.physics.addChampion(c)
	return c
}

// Despawn removes a champion from the simulation entirely. Death does not do
// this; despawn is the only way out of the arena.
func (w *World) Despawn(c *Champion) {
	if w == nil || c == nil || c.id <= 0 || c.id > len(w.champions) {
		return
	}
	if w.champions[c.id-1] != c {
		return
	}
	w.physics.removeChampion(c)
	w.champions[c.id-1] = nil
	c.world = nil
	if opp := c.movement.Opponent(); opp != nil {
		c.movement.Disengage()
		if opp.Movement().Opponent() == c {
			opp.Movement().Disengage()
		}
	}
}

// Update advances the whole match one tick: every movement state in id order
// (which fixes attacker-then-defender resolution for simultaneous lethal
// damage), then due respawns, then the physics step that delivers overlap
// begin/separate events synchronously.
func (w *World) Update(dt float64) {
	if w == nil || dt <= 0 {
		return
	}
	w.now += dt
	w.tick++

	for _, c := range w.champions {
		if c == nil {
			continue
		}
		c.movement.Update(w.now, dt)
	}

	for _, c := range w.champions {
		if c == nil || c.Alive() {
			continue
		}
		if c.respawnAt > 0 && w.now >= c.respawnAt {
			w.respawn(c)
		}
	}

	if w.physics != nil {
		w.physics.syncBodies(w.champions)
		w.physics.Step(dt)
	}
}

// scheduleRespawn is the world's OnDeath hook. It fires only on the
// transition into death, so re-death cannot queue a second respawn.
func (w *World) scheduleRespawn(c *Champion) {
	if w == nil || c == nil {
		return
	}
	c.respawnAt = w.now + c.Config().RespawnDelay
}

// respawn runs the full revival sequence atomically with respect to the tick:
// base position, disengage, full-health revive, and fresh lane assignment. No
// partial-respawn state is observable from other entities.
func (w *World) respawn(c *Champion) {
	if c == nil || c.Alive() {
		return
	}
	c.Pos = w.SpawnPoint(c.Team())
	c.movement.Disengage()
	c.Revive(1)
	c.AssignToLane()
	w.physics.teleport(c)
}

// TryEngage pairs two opposing champions for combat. Both sides are set in
// this single call so neither tick ever observes a half-engaged pair. Returns
// false for same-team, dead, already-engaged, or cross-lane pairs.
func (w *World) TryEngage(a, b *Champion) bool {
	if w == nil || a == nil || b == nil || a == b {
		return false
	}
	if !a.Alive() || !b.Alive() {
		return false
	}
	if a.Team() == b.Team() {
		return false
	}
	if a.movement.Engaged() || b.movement.Engaged() {
		return false
	}
	laneA := a.movement.Lane()
	if laneA == nil || laneA != b.movement.Lane() {
		return false
	}
	a.movement.engage(b)
	b.movement.engage(a)
	log.Printf("sim: %s engaged %s on lane %q", a.Name(), b.Name(), laneA.Name)
	return true
}

// handleSeparation is called when two champions stop overlapping. A live
// opponent walking away ends the engagement on both sides; a dead opponent is
// left for the movement liveness check, never the exit event.
func (w *World) handleSeparation(a, b *Champion) {
	if a == nil || b == nil {
		return
	}
	if a.movement.Opponent() == b && b.Alive() {
		w.disengagePair(a, b)
		return
	}
	if b.movement.Opponent() == a && a.Alive() {
		w.disengagePair(a, b)
	}
}

func (w *World) disengagePair(a, b *Champion) {
	if a.movement.Opponent() == b {
		a.movement.Disengage()
	}
	if b.movement.Opponent() == a {
		b.movement.Disengage()
	}
}

// refreshCollision re-registers a champion's collision filtering after a
// team change.
func (w *World) refreshCollision(c *Champion) {
	if w == nil || w.physics == nil {
		return
	}
	w.physics.refreshTeam(c)
}

// ReloadLanes swaps in a new lane set (editor-time mutation via config hot
// reload) and re-resolves every champion against it, snapping each to the
// closest waypoint of its new lane.
func (w *World) ReloadLanes(lanes map[LaneType]*Lane) {
	if w == nil {
		return
	}
	m := NewLaneManager()
	for t, l := range lanes {
		m.Register(t, l)
	}
	w.lanes = m
	for _, c := range w.champions {
		if c == nil {
			continue
		}
		c.AssignToLane()
		lane := c.movement.Lane()
		if lane == nil {
			continue
		}
		if idx := lane.ClosestWaypointIndex(c.Pos); idx >= 0 {
			c.movement.ResetWaypointIndex(idx)
		}
	}
	log.Printf("sim: reloaded %d lanes", len(lanes))
}
