package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"

	"github.com/milk9111/minimoba/common"
	"github.com/milk9111/minimoba/sim"
)

const attackEffectDuration = 0.25

var (
	colorBlue     = color.NRGBA{R: 0x55, G: 0x8c, B: 0xff, A: 0xff}
	colorRed      = color.NRGBA{R: 0xeb, G: 0x5a, B: 0x5a, A: 0xff}
	colorNeutral  = color.NRGBA{R: 0xb0, G: 0xb0, B: 0xb0, A: 0xff}
	colorLane     = color.NRGBA{R: 0x3a, G: 0x3f, B: 0x46, A: 0xff}
	colorWaypoint = color.NRGBA{R: 0x5a, G: 0x61, B: 0x6b, A: 0xff}
	colorHealthBG = color.NRGBA{R: 0x20, G: 0x20, B: 0x20, A: 0xdd}
	colorHealth   = color.NRGBA{R: 0x4c, G: 0xc4, B: 0x5c, A: 0xff}
)

// attackEffect is a transient line drawn between attacker and target for one
// auto-attack.
type attackEffect struct {
	from   cp.Vector
	to     cp.Vector
	ttl    float64
	killed bool
}

func newAttackEffect(evt sim.CombatEvent) attackEffect {
	return attackEffect{from: evt.From, to: evt.To, ttl: attackEffectDuration, killed: evt.Killed}
}

func ageEffects(effects []attackEffect, dt float64) []attackEffect {
	out := effects[:0]
	for _, fx := range effects {
		fx.ttl -= dt
		if fx.ttl > 0 {
			out = append(out, fx)
		}
	}
	return out
}

func teamColor(team sim.Team) color.NRGBA {
	switch team {
	case sim.TeamBlue:
		return colorBlue
	case sim.TeamRed:
		return colorRed
	default:
		return colorNeutral
	}
}

// drawMatch renders the whole frame: lane paths, spawn anchors, champions
// with health bars, and any live attack effects.
func drawMatch(screen *ebiten.Image, world *sim.World, effects []attackEffect) {
	if screen == nil || world == nil {
		return
	}
	screen.Fill(color.NRGBA{R: 0x16, G: 0x18, B: 0x1c, A: 0xff})

	for _, lane := range world.Lanes().Lanes() {
		drawLane(screen, lane)
	}

	drawSpawn(screen, world.SpawnPoint(sim.TeamBlue), colorBlue)
	drawSpawn(screen, world.SpawnPoint(sim.TeamRed), colorRed)

	for _, c := range world.Champions() {
		drawChampion(screen, c)
	}

	for _, fx := range effects {
		drawAttackEffect(screen, fx)
	}
}

func drawLane(screen *ebiten.Image, lane *sim.Lane) {
	count := lane.WaypointCount()
	for i := 0; i < count-1; i++ {
		a := lane.WaypointPosition(i)
		b := lane.WaypointPosition(i + 1)
		vector.StrokeLine(screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), 3, colorLane, true)
	}
	for i := 0; i < count; i++ {
		p := lane.WaypointPosition(i)
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), 4, colorWaypoint, true)
	}
}

func drawSpawn(screen *ebiten.Image, p cp.Vector, clr color.NRGBA) {
	faded := clr
	faded.A = 0x60
	vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), 18, faded, true)
}

func drawChampion(screen *ebiten.Image, c *sim.Champion) {
	clr := teamColor(c.Team())
	radius := float32(c.Config().Radius)
	if !c.Alive() {
		clr.A = 0x50
		vector.DrawFilledCircle(screen, float32(c.Pos.X), float32(c.Pos.Y), radius, clr, true)
		return
	}
	vector.DrawFilledCircle(screen, float32(c.Pos.X), float32(c.Pos.Y), radius, clr, true)

	// facing tick
	tip := c.Pos.Add(cp.ForAngle(c.Rotation).Mult(float64(radius) + 4))
	vector.StrokeLine(screen, float32(c.Pos.X), float32(c.Pos.Y), float32(tip.X), float32(tip.Y), 2, clr, true)

	drawHealthBar(screen, c, radius)
}

func drawHealthBar(screen *ebiten.Image, c *sim.Champion, radius float32) {
	const barW, barH = 28.0, 4.0
	x := float32(c.Pos.X) - barW/2
	y := float32(c.Pos.Y) - radius - 10
	vector.DrawFilledRect(screen, x, y, barW, barH, colorHealthBG, false)
	fill := float32(common.Clamp(c.HealthFraction(), 0, 1)) * barW
	if fill > 0 {
		vector.DrawFilledRect(screen, x, y, fill, barH, colorHealth, false)
	}
}

func drawAttackEffect(screen *ebiten.Image, fx attackEffect) {
	frac := common.Clamp(fx.ttl/attackEffectDuration, 0, 1)
	clr := color.NRGBA{R: 0xff, G: 0xd7, B: 0x66, A: uint8(0xff * frac)}
	if fx.killed {
		clr = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: uint8(0xff * frac)}
	}
	vector.StrokeLine(screen, float32(fx.from.X), float32(fx.from.Y), float32(fx.to.X), float32(fx.to.Y), 2, clr, true)

	// bolt head travels attacker to target over the effect's lifetime
	progress := 1 - frac
	bx := common.Lerp(fx.from.X, fx.to.X, progress)
	by := common.Lerp(fx.from.Y, fx.to.Y, progress)
	vector.DrawFilledCircle(screen, float32(bx), float32(by), 3, clr, true)
}
