package config

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"gopkg.in/yaml.v3"

	"github.com/milk9111/minimoba/sim"
)

// PointSpec is a world-space position in a YAML spec.
type PointSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

func (p PointSpec) Vector() cp.Vector {
	return cp.Vector{X: p.X, Y: p.Y}
}

// LaneSpec describes one lane's path. Waypoint order is traversal order, blue
// base first.
type LaneSpec struct {
	Name      string      `yaml:"name"`
	Team      string      `yaml:"team"`
	Waypoints []PointSpec `yaml:"waypoints"`
}

// SpawnsSpec names the team base anchors. Missing anchors fall back to the
// simulation defaults.
type SpawnsSpec struct {
	Blue *PointSpec `yaml:"blue"`
	Red  *PointSpec `yaml:"red"`
}

// MapSpec is the full map configuration: three lanes keyed by lane type plus
// the spawn anchors.
type MapSpec struct {
	Name   string              `yaml:"name"`
	Lanes  map[string]LaneSpec `yaml:"lanes"`
	Spawns SpawnsSpec          `yaml:"spawns"`
}

// ChampionSpec is one champion's tuning in the roster file.
type ChampionSpec struct {
	Name           string  `yaml:"name"`
	Team           string  `yaml:"team"`
	Lane           string  `yaml:"lane"`
	MaxHealth      float64 `yaml:"max_health"`
	MoveSpeed      float64 `yaml:"move_speed"`
	AttackDamage   float64 `yaml:"attack_damage"`
	AttackCooldown float64 `yaml:"attack_cooldown"`
	RespawnDelay   float64 `yaml:"respawn_delay"`
	Radius         float64 `yaml:"radius"`
}

// RosterSpec is the set of champions spawned at match start.
type RosterSpec struct {
	Champions []ChampionSpec `yaml:"champions"`
}

// LoadSpec loads and decodes a YAML spec by filename.
func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("config: load %s: %w", filename, err)
	}
	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("config: unmarshal %s: %w", filename, err)
	}
	return spec, nil
}

// LoadMapSpec loads the default map file.
func LoadMapSpec() (*MapSpec, error) {
	spec, err := LoadSpec[MapSpec]("map.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// LoadRosterSpec loads the default roster file.
func LoadRosterSpec() (*RosterSpec, error) {
	spec, err := LoadSpec[RosterSpec]("roster.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// SimLanes converts the spec's lane table into simulation lanes keyed by type.
func (m *MapSpec) SimLanes() (map[sim.LaneType]*sim.Lane, error) {
	if m == nil {
		return nil, fmt.Errorf("config: nil map spec")
	}
	lanes := make(map[sim.LaneType]*sim.Lane, len(m.Lanes))
	for key, ls := range m.Lanes {
		laneType, err := sim.ParseLaneType(key)
		if err != nil {
			return nil, err
		}
		if laneType == sim.LaneNone {
			return nil, fmt.Errorf("config: map %q lane key %q is not a lane type", m.Name, key)
		}
		team, err := sim.ParseTeam(ls.Team)
		if err != nil {
			return nil, err
		}
		if len(ls.Waypoints) < 2 {
			return nil, fmt.Errorf("config: lane %q needs at least 2 waypoints, has %d", ls.Name, len(ls.Waypoints))
		}
		waypoints := make([]cp.Vector, len(ls.Waypoints))
		for i, p := range ls.Waypoints {
			waypoints[i] = p.Vector()
		}
		lanes[laneType] = sim.NewLane(ls.Name, team, waypoints)
	}
	return lanes, nil
}

// WorldConfig converts the map spec into a simulation world config.
func (m *MapSpec) WorldConfig() (sim.WorldConfig, error) {
	lanes, err := m.SimLanes()
	if err != nil {
		return sim.WorldConfig{}, err
	}
	cfg := sim.WorldConfig{Lanes: lanes}
	if m.Spawns.Blue != nil {
		v := m.Spawns.Blue.Vector()
		cfg.BlueSpawn = &v
	}
	if m.Spawns.Red != nil {
		v := m.Spawns.Red.Vector()
		cfg.RedSpawn = &v
	}
	return cfg, nil
}

// ChampionConfig converts a roster entry into simulation tuning.
func (cs ChampionSpec) ChampionConfig() (sim.ChampionConfig, error) {
	team, err := sim.ParseTeam(cs.Team)
	if err != nil {
		return sim.ChampionConfig{}, err
	}
	laneType, err := sim.ParseLaneType(cs.Lane)
	if err != nil {
		return sim.ChampionConfig{}, err
	}
	return sim.ChampionConfig{
		Name:           cs.Name,
		Team:           team,
		Lane:           laneType,
		MaxHealth:      cs.MaxHealth,
		MoveSpeed:      cs.MoveSpeed,
		AttackDamage:   cs.AttackDamage,
		AttackCooldown: cs.AttackCooldown,
		RespawnDelay:   cs.RespawnDelay,
		Radius:         cs.Radius,
	}, nil
}
