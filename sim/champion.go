package sim

import (
	"log"

	"github.com/jakecoffman/cp"
)

// ChampionConfig holds per-champion tuning, normally decoded from a YAML
// champion spec.
type ChampionConfig struct {
	Name           string
	Team           Team
	Lane           LaneType
	MaxHealth      float64
	MoveSpeed      float64
	AttackDamage   float64
	AttackCooldown float64
	RespawnDelay   float64
	Radius         float64
}

func (c ChampionConfig) withDefaults() ChampionConfig {
	if c.MaxHealth <= 0 {
		c.MaxHealth = 100
	}
	if c.MoveSpeed <= 0 {
		c.MoveSpeed = 60
	}
	if c.AttackDamage <= 0 {
		c.AttackDamage = 10
	}
	if c.AttackCooldown <= 0 {
		c.AttackCooldown = 1
	}
	if c.RespawnDelay <= 0 {
		c.RespawnDelay = 5
	}
	if c.Radius <= 0 {
		c.Radius = 12
	}
	return c
}

// Champion is the per-entity match state: identity, team, health, and the
// alive/dead lifecycle. Death is not terminal and does not destroy the
// entity; the owning world revives it at its base after the respawn delay.
// A champion dying never pauses or blocks any other champion's update.
type Champion struct {
	id       int
	name     string
	team     Team
	laneType LaneType

	maxHealth float64
	health    float64
	alive     bool

	// Pos and Rotation are the champion's world transform, written by its
	// Movement every tick and mirrored into the physics body by the world.
	Pos      cp.Vector
	Rotation float64

	cfg      ChampionConfig
	movement *Movement
	world    *World

	// respawnAt is the absolute sim time the champion revives at; zero when
	// no respawn is pending.
	respawnAt float64

	// OnDeath fires exactly once per transition into the dead state.
	OnDeath func(c *Champion)
	// OnDamage fires after each applied (non-lethal or lethal) damage amount.
	OnDamage func(c *Champion, amount float64)
}

// NewChampion creates a spawned champion at full health.
func NewChampion(cfg ChampionConfig) *Champion {
	cfg = cfg.withDefaults()
	c := &Champion{
		name:      cfg.Name,
		team:      cfg.Team,
		laneType:  cfg.Lane,
		maxHealth: cfg.MaxHealth,
		health:    cfg.MaxHealth,
		alive:     true,
		cfg:       cfg,
	}
	c.movement = newMovement(c)
	return c
}

// ID returns the world-assigned entity id, or 0 for a free-standing champion.
func (c *Champion) ID() int {
	if c == nil {
		return 0
	}
	return c.id
}

// Name returns the champion's display name.
func (c *Champion) Name() string {
	if c == nil {
		return ""
	}
	return c.name
}

// Team returns the champion's team.
func (c *Champion) Team() Team {
	if c == nil {
		return TeamNeutral
	}
	return c.team
}

// LaneType returns the champion's requested lane type.
func (c *Champion) LaneType() LaneType {
	if c == nil {
		return LaneNone
	}
	return c.laneType
}

// Movement returns the champion's owned movement state.
func (c *Champion) Movement() *Movement {
	if c == nil {
		return nil
	}
	return c.movement
}

// Alive reports whether the champion is alive.
func (c *Champion) Alive() bool {
	return c != nil && c.alive
}

// Health returns the current health.
func (c *Champion) Health() float64 {
	if c == nil {
		return 0
	}
	return c.health
}

// MaxHealth returns the maximum health.
func (c *Champion) MaxHealth() float64 {
	if c == nil {
		return 0
	}
	return c.maxHealth
}

// HealthFraction returns current health as a fraction of max, for health bars.
func (c *Champion) HealthFraction() float64 {
	if c == nil || c.maxHealth <= 0 {
		return 0
	}
	return c.health / c.maxHealth
}

// Config returns the champion's tuning.
func (c *Champion) Config() ChampionConfig {
	if c == nil {
		return ChampionConfig{}
	}
	return c.cfg
}

// TakeDamage subtracts amount from health, clamping at zero. Lethal damage
// triggers exactly one death transition. Damage to a dead champion is a no-op.
func (c *Champion) TakeDamage(amount float64) {
	if c == nil || !c.alive || amount <= 0 {
		return
	}
	c.health -= amount
	if c.health < 0 {
		c.health = 0
	}
	if c.OnDamage != nil {
		c.OnDamage(c, amount)
	}
	if c.health <= 0 {
		c.die()
	}
}

// Heal restores health up to max. Healing a dead champion is a no-op; dead
// champions only return through Revive.
func (c *Champion) Heal(amount float64) {
	if c == nil || !c.alive || amount <= 0 {
		return
	}
	c.health += amount
	if c.health > c.maxHealth {
		c.health = c.maxHealth
	}
}

// die transitions into the dead state. Only ever entered from TakeDamage, so
// repeated damage after death cannot schedule a second respawn.
func (c *Champion) die() {
	c.alive = false
	c.health = 0
	if c.OnDeath != nil {
		c.OnDeath(c)
	}
}

// Revive returns the champion to life with the given fraction of max health.
// Fractions outside (0, 1] revive at full health.
func (c *Champion) Revive(healthFraction float64) {
	if c == nil {
		return
	}
	if healthFraction <= 0 || healthFraction > 1 {
		log.Printf("sim: champion %q revive fraction %.2f out of range, using full health", c.name, healthFraction)
		healthFraction = 1
	}
	c.alive = true
	c.health = c.maxHealth * healthFraction
	c.respawnAt = 0
}

// SetTeam reassigns the champion's team and re-resolves its lane and travel
// direction.
func (c *Champion) SetTeam(team Team) {
	if c == nil {
		return
	}
	c.team = team
	c.AssignToLane()
	if c.world != nil {
		c.world.refreshCollision(c)
	}
}

// SetLaneType reassigns the champion's requested lane and re-resolves it.
func (c *Champion) SetLaneType(t LaneType) {
	if c == nil {
		return
	}
	c.laneType = t
	c.AssignToLane()
}

// AssignToLane asks the owning world's lane manager for this champion's lane
// and hands it to the movement state. Without a world, or with an empty
// registry, the movement keeps no lane and skips its updates.
func (c *Champion) AssignToLane() {
	if c == nil || c.movement == nil {
		return
	}
	if c.world == nil {
		log.Printf("sim: champion %q has no world, cannot assign lane", c.name)
		return
	}
	lane := c.world.Lanes().Lane(c.laneType)
	if lane == nil {
		log.Printf("sim: no lane registered for champion %q (lane type %s)", c.name, c.laneType)
		c.movement.AssignLane(nil, c.team == TeamBlue)
		return
	}
	c.movement.AssignLane(lane, c.team == TeamBlue)
}

// RespawnPending reports whether a respawn is scheduled and its fire time.
func (c *Champion) RespawnPending() (float64, bool) {
	if c == nil || c.alive || c.respawnAt <= 0 {
		return 0, false
	}
	return c.respawnAt, true
}
