package sim

import (
	"math"

	"github.com/jakecoffman/cp"
)

const (
	collisionTypeNeutral cp.CollisionType = iota + 1
	collisionTypeBlue
	collisionTypeRed
)

func collisionTypeFor(team Team) cp.CollisionType {
	switch team {
	case TeamBlue:
		return collisionTypeBlue
	case TeamRed:
		return collisionTypeRed
	default:
		return collisionTypeNeutral
	}
}

// PhysicsWorld owns the Chipmunk space used purely as an overlap detector for
// engagement. Champions are sensor circles; the begin/separate handlers for
// the blue/red type pair feed the world's engagement pairing, so same-team
// and non-champion overlaps never reach it.
type PhysicsWorld struct {
	world *World
	space *cp.Space

	shapeToChampion map[*cp.Shape]*Champion
	bodies          map[*Champion]*cp.Body
	shapes          map[*Champion]*cp.Shape
}

func newPhysicsWorld(world *World) *PhysicsWorld {
	pw := &PhysicsWorld{
		world:           world,
		space:           cp.NewSpace(),
		shapeToChampion: make(map[*cp.Shape]*Champion),
		bodies:          make(map[*Champion]*cp.Body),
		shapes:          make(map[*Champion]*cp.Shape),
	}
	pw.setupHandlers()
	return pw
}

// Space returns the underlying Chipmunk space.
func (pw *PhysicsWorld) Space() *cp.Space {
	if pw == nil {
		return nil
	}
	return pw.space
}

func (pw *PhysicsWorld) setupHandlers() {
	handler := pw.space.NewCollisionHandler(collisionTypeBlue, collisionTypeRed)
	handler.UserData = pw
	handler.BeginFunc = func(arb *cp.Arbiter, _ *cp.Space, userData interface{}) bool {
		world, ok := userData.(*PhysicsWorld)
		if !ok || world == nil || world.world == nil {
			return true
		}
		shapeA, shapeB := arb.Shapes()
		a := world.shapeToChampion[shapeA]
		b := world.shapeToChampion[shapeB]
		if a == nil || b == nil {
			return true
		}
		world.world.TryEngage(a, b)
		return true
	}
	handler.SeparateFunc = func(arb *cp.Arbiter, _ *cp.Space, userData interface{}) {
		world, ok := userData.(*PhysicsWorld)
		if !ok || world == nil || world.world == nil {
			return
		}
		shapeA, shapeB := arb.Shapes()
		a := world.shapeToChampion[shapeA]
		b := world.shapeToChampion[shapeB]
		if a == nil || b == nil {
			return
		}
		world.world.handleSeparation(a, b)
	}
}

// addChampion creates the sensor body for a champion at its current position.
func (pw *PhysicsWorld) addChampion(c *Champion) {
	if pw == nil || pw.space == nil || c == nil {
		return
	}
	if _, exists := pw.bodies[c]; exists {
		return
	}
	// Dynamic bodies with infinite moment: Chipmunk skips collision events
	// between two non-dynamic bodies, and champions must never rotate from
	// contacts.
	body := cp.NewBody(1, math.Inf(1))
	body.SetPosition(c.Pos)
	shape := cp.NewCircle(body, c.Config().Radius, cp.Vector{})
	shape.SetSensor(true)
	shape.SetCollisionType(collisionTypeFor(c.Team()))

	pw.space.AddBody(body)
	pw.space.AddShape(shape)
	pw.shapeToChampion[shape] = c
	pw.bodies[c] = body
	pw.shapes[c] = shape
}

// removeChampion drops a champion's body from the space.
func (pw *PhysicsWorld) removeChampion(c *Champion) {
	if pw == nil || pw.space == nil || c == nil {
		return
	}
	if shape, ok := pw.shapes[c]; ok {
		pw.space.RemoveShape(shape)
		delete(pw.shapeToChampion, shape)
		delete(pw.shapes, c)
	}
	if body, ok := pw.bodies[c]; ok {
		pw.space.RemoveBody(body)
		delete(pw.bodies, c)
	}
}

// refreshTeam updates a champion's collision type after a team change.
func (pw *PhysicsWorld) refreshTeam(c *Champion) {
	if pw == nil || c == nil {
		return
	}
	if shape, ok := pw.shapes[c]; ok {
		shape.SetCollisionType(collisionTypeFor(c.Team()))
	}
}

// teleport moves a champion's body without sweeping it through the space.
func (pw *PhysicsWorld) teleport(c *Champion) {
	if pw == nil || c == nil {
		return
	}
	if body, ok := pw.bodies[c]; ok {
		body.SetPosition(c.Pos)
		body.SetVelocityVector(cp.Vector{})
	}
}

// syncBodies mirrors simulation positions into the space before stepping.
func (pw *PhysicsWorld) syncBodies(champions []*Champion) {
	if pw == nil {
		return
	}
	for _, c := range champions {
		if c == nil {
			continue
		}
		if body, ok := pw.bodies[c]; ok {
			body.SetPosition(c.Pos)
			body.SetVelocityVector(cp.Vector{})
		}
	}
}

// Step advances the space, delivering begin/separate events synchronously.
func (pw *PhysicsWorld) Step(dt float64) {
	if pw == nil || pw.space == nil || dt <= 0 {
		return
	}
	pw.space.Step(dt)
}
