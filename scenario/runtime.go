// Package scenario runs tengo-scripted match scenarios against the command
// surface of a simulation world. Scripts drive spawning, damage, lane
// assignment, and ticking for tooling and headless runs.
package scenario

import (
	"fmt"
	"log"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"

	"github.com/milk9111/minimoba/sim"
)

// tickCap bounds a single tick() call so a runaway script cannot hang the
// runner.
const tickCap = 100000

// Runner executes scenario scripts against one world.
type Runner struct {
	world *sim.World
	dt    float64
}

// NewRunner creates a runner ticking the world at the given timestep.
func NewRunner(world *sim.World, dt float64) *Runner {
	if dt <= 0 {
		dt = 1.0 / 60.0
	}
	return &Runner{world: world, dt: dt}
}

// Run compiles and executes a scenario script. The script sees a `match`
// global exposing the command surface.
func (r *Runner) Run(src []byte) error {
	if r == nil || r.world == nil {
		return fmt.Errorf("scenario: no world")
	}

	script := tengo.NewScript(src)
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))
	if err := script.Add("match", r.buildMatchObject()); err != nil {
		return fmt.Errorf("scenario: add match global: %w", err)
	}

	if _, err := script.Run(); err != nil {
		return fmt.Errorf("scenario: run script: %w", err)
	}
	return nil
}

func (r *Runner) buildMatchObject() *tengo.ImmutableMap {
	values := map[string]tengo.Object{}

	values["spawn"] = &tengo.UserFunction{Name: "spawn", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) < 3 {
			return nil, tengo.ErrWrongNumArguments
		}
		name, _ := tengo.ToString(args[0])
		teamName, _ := tengo.ToString(args[1])
		laneName, _ := tengo.ToString(args[2])
		team, err := sim.ParseTeam(teamName)
		if err != nil {
			return nil, err
		}
		laneType, err := sim.ParseLaneType(laneName)
		if err != nil {
			return nil, err
		}
		c := r.world.SpawnChampion(sim.ChampionConfig{Name: name, Team: team, Lane: laneType})
		if c == nil {
			return tengo.UndefinedValue, nil
		}
		return &tengo.Int{Value: int64(c.ID())}, nil
	}}

	values["damage"] = &tengo.UserFunction{Name: "damage", Value: func(args ...tengo.Object) (tengo.Object, error) {
		c, amount, err := r.championAndAmount(args)
		if err != nil {
			return nil, err
		}
		c.TakeDamage(amount)
		return tengo.UndefinedValue, nil
	}}

	values["heal"] = &tengo.UserFunction{Name: "heal", Value: func(args ...tengo.Object) (tengo.Object, error) {
		c, amount, err := r.championAndAmount(args)
		if err != nil {
			return nil, err
		}
		c.Heal(amount)
		return tengo.UndefinedValue, nil
	}}

	values["revive"] = &tengo.UserFunction{Name: "revive", Value: func(args ...tengo.Object) (tengo.Object, error) {
		c, fraction, err := r.championAndAmount(args)
		if err != nil {
			return nil, err
		}
		c.Revive(fraction)
		return tengo.UndefinedValue, nil
	}}

	values["set_team"] = &tengo.UserFunction{Name: "set_team", Value: func(args ...tengo.Object) (tengo.Object, error) {
		c, s, err := r.championAndString(args)
		if err != nil {
			return nil, err
		}
		team, err := sim.ParseTeam(s)
		if err != nil {
			return nil, err
		}
		c.SetTeam(team)
		return tengo.UndefinedValue, nil
	}}

	values["set_lane"] = &tengo.UserFunction{Name: "set_lane", Value: func(args ...tengo.Object) (tengo.Object, error) {
		c, s, err := r.championAndString(args)
		if err != nil {
			return nil, err
		}
		laneType, err := sim.ParseLaneType(s)
		if err != nil {
			return nil, err
		}
		c.SetLaneType(laneType)
		return tengo.UndefinedValue, nil
	}}

	values["assign"] = &tengo.UserFunction{Name: "assign", Value: func(args ...tengo.Object) (tengo.Object, error) {
		c, err := r.champion(args)
		if err != nil {
			return nil, err
		}
		c.AssignToLane()
		return tengo.UndefinedValue, nil
	}}

	values["disengage"] = &tengo.UserFunction{Name: "disengage", Value: func(args ...tengo.Object) (tengo.Object, error) {
		c, err := r.champion(args)
		if err != nil {
			return nil, err
		}
		c.Movement().Disengage()
		return tengo.UndefinedValue, nil
	}}

	values["tick"] = &tengo.UserFunction{Name: "tick", Value: func(args ...tengo.Object) (tengo.Object, error) {
		n := 1
		if len(args) > 0 {
			v, ok := tengo.ToInt(args[0])
			if !ok {
				return nil, tengo.ErrInvalidArgumentType{Name: "ticks", Expected: "int", Found: args[0].TypeName()}
			}
			n = v
		}
		if n > tickCap {
			n = tickCap
		}
		for i := 0; i < n; i++ {
			r.world.Update(r.dt)
		}
		return tengo.UndefinedValue, nil
	}}

	values["health"] = &tengo.UserFunction{Name: "health", Value: func(args ...tengo.Object) (tengo.Object, error) {
		c, err := r.champion(args)
		if err != nil {
			return nil, err
		}
		return &tengo.Float{Value: c.Health()}, nil
	}}

	values["alive"] = &tengo.UserFunction{Name: "alive", Value: func(args ...tengo.Object) (tengo.Object, error) {
		c, err := r.champion(args)
		if err != nil {
			return nil, err
		}
		if c.Alive() {
			return tengo.TrueValue, nil
		}
		return tengo.FalseValue, nil
	}}

	values["engaged"] = &tengo.UserFunction{Name: "engaged", Value: func(args ...tengo.Object) (tengo.Object, error) {
		c, err := r.champion(args)
		if err != nil {
			return nil, err
		}
		if c.Movement().Engaged() {
			return tengo.TrueValue, nil
		}
		return tengo.FalseValue, nil
	}}

	values["waypoint"] = &tengo.UserFunction{Name: "waypoint", Value: func(args ...tengo.Object) (tengo.Object, error) {
		c, err := r.champion(args)
		if err != nil {
			return nil, err
		}
		return &tengo.Int{Value: int64(c.Movement().WaypointIndex())}, nil
	}}

	values["reached_end"] = &tengo.UserFunction{Name: "reached_end", Value: func(args ...tengo.Object) (tengo.Object, error) {
		c, err := r.champion(args)
		if err != nil {
			return nil, err
		}
		if c.Movement().ReachedEnd() {
			return tengo.TrueValue, nil
		}
		return tengo.FalseValue, nil
	}}

	values["pos"] = &tengo.UserFunction{Name: "pos", Value: func(args ...tengo.Object) (tengo.Object, error) {
		c, err := r.champion(args)
		if err != nil {
			return nil, err
		}
		return &tengo.ImmutableMap{Value: map[string]tengo.Object{
			"x": &tengo.Float{Value: c.Pos.X},
			"y": &tengo.Float{Value: c.Pos.Y},
		}}, nil
	}}

	values["events"] = &tengo.UserFunction{Name: "events", Value: func(args ...tengo.Object) (tengo.Object, error) {
		drained := r.world.Events().Drain()
		out := make([]tengo.Object, 0, len(drained))
		for _, evt := range drained {
			killed := tengo.FalseValue
			if evt.Killed {
				killed = tengo.TrueValue
			}
			out = append(out, &tengo.ImmutableMap{Value: map[string]tengo.Object{
				"attacker": &tengo.Int{Value: int64(evt.Attacker)},
				"target":   &tengo.Int{Value: int64(evt.Target)},
				"damage":   &tengo.Float{Value: evt.Damage},
				"killed":   killed,
			}})
		}
		return &tengo.Array{Value: out}, nil
	}}

	values["log"] = &tengo.UserFunction{Name: "log", Value: func(args ...tengo.Object) (tengo.Object, error) {
		parts := make([]string, 0, len(args))
		for _, a := range args {
			s, _ := tengo.ToString(a)
			parts = append(parts, s)
		}
		log.Printf("scenario: %s", strings.Join(parts, " "))
		return tengo.UndefinedValue, nil
	}}

	return &tengo.ImmutableMap{Value: values}
}

func (r *Runner) champion(args []tengo.Object) (*sim.Champion, error) {
	if len(args) < 1 {
		return nil, tengo.ErrWrongNumArguments
	}
	id, ok := tengo.ToInt(args[0])
	if !ok {
		return nil, tengo.ErrInvalidArgumentType{Name: "id", Expected: "int", Found: args[0].TypeName()}
	}
	c := r.world.ChampionByID(id)
	if c == nil {
		return nil, fmt.Errorf("scenario: no champion with id %d", id)
	}
	return c, nil
}

func (r *Runner) championAndAmount(args []tengo.Object) (*sim.Champion, float64, error) {
	if len(args) < 2 {
		return nil, 0, tengo.ErrWrongNumArguments
	}
	c, err := r.champion(args[:1])
	if err != nil {
		return nil, 0, err
	}
	amount, ok := tengo.ToFloat64(args[1])
	if !ok {
		return nil, 0, tengo.ErrInvalidArgumentType{Name: "amount", Expected: "float", Found: args[1].TypeName()}
	}
	return c, amount, nil
}

func (r *Runner) championAndString(args []tengo.Object) (*sim.Champion, string, error) {
	if len(args) < 2 {
		return nil, "", tengo.ErrWrongNumArguments
	}
	c, err := r.champion(args[:1])
	if err != nil {
		return nil, "", err
	}
	s, ok := tengo.ToString(args[1])
	if !ok {
		return nil, "", tengo.ErrInvalidArgumentType{Name: "value", Expected: "string", Found: args[1].TypeName()}
	}
	return c, s, nil
}
