package config

import (
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/milk9111/minimoba/sim"
)

func TestLoadMapSpec(t *testing.T) {
	spec, err := LoadMapSpec()
	if err != nil {
		t.Fatalf("LoadMapSpec: %v", err)
	}
	if spec.Name == "" {
		t.Fatalf("map has no name")
	}
	if len(spec.Lanes) != 3 {
		t.Fatalf("map has %d lanes, want 3", len(spec.Lanes))
	}
	for _, key := range []string{"top", "mid", "bottom"} {
		lane, ok := spec.Lanes[key]
		if !ok {
			t.Fatalf("map is missing lane %q", key)
		}
		if len(lane.Waypoints) < 2 {
			t.Fatalf("lane %q has %d waypoints, want at least 2", key, len(lane.Waypoints))
		}
	}
	if spec.Spawns.Blue == nil || spec.Spawns.Red == nil {
		t.Fatalf("map is missing spawn anchors")
	}
}

func TestLoadRosterSpec(t *testing.T) {
	spec, err := LoadRosterSpec()
	if err != nil {
		t.Fatalf("LoadRosterSpec: %v", err)
	}
	if len(spec.Champions) == 0 {
		t.Fatalf("roster is empty")
	}
	blue, red := 0, 0
	for _, cs := range spec.Champions {
		cfg, err := cs.ChampionConfig()
		if err != nil {
			t.Fatalf("champion %q: %v", cs.Name, err)
		}
		switch cfg.Team {
		case sim.TeamBlue:
			blue++
		case sim.TeamRed:
			red++
		}
	}
	if blue == 0 || red == 0 {
		t.Fatalf("roster has %d blue and %d red champions, want both teams", blue, red)
	}
}

func TestMapSpecWorldConfig(t *testing.T) {
	spec, err := LoadMapSpec()
	if err != nil {
		t.Fatalf("LoadMapSpec: %v", err)
	}
	cfg, err := spec.WorldConfig()
	if err != nil {
		t.Fatalf("WorldConfig: %v", err)
	}
	if len(cfg.Lanes) != 3 {
		t.Fatalf("world config has %d lanes, want 3", len(cfg.Lanes))
	}
	if cfg.BlueSpawn == nil || cfg.RedSpawn == nil {
		t.Fatalf("world config is missing spawn anchors")
	}

	// the shipped map and roster must produce a runnable match
	w := sim.NewWorld(cfg)
	roster, err := LoadRosterSpec()
	if err != nil {
		t.Fatalf("LoadRosterSpec: %v", err)
	}
	for _, cs := range roster.Champions {
		ccfg, err := cs.ChampionConfig()
		if err != nil {
			t.Fatalf("champion %q: %v", cs.Name, err)
		}
		c := w.SpawnChampion(ccfg)
		if c.Movement().Lane() == nil {
			t.Fatalf("champion %q got no lane", cs.Name)
		}
	}
	for i := 0; i < 60; i++ {
		w.Update(1.0 / 60.0)
	}
}

func TestSimLanesErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{
			name: "bad lane key",
			yaml: `
name: broken
lanes:
  river:
    name: River
    waypoints: [{x: 0, y: 0}, {x: 1, y: 1}]
`,
			want: "unknown lane type",
		},
		{
			name: "empty lane key",
			yaml: `
name: broken
lanes:
  "":
    name: Nowhere
    waypoints: [{x: 0, y: 0}, {x: 1, y: 1}]
`,
			want: "not a lane type",
		},
		{
			name: "bad team",
			yaml: `
name: broken
lanes:
  mid:
    name: Mid
    team: purple
    waypoints: [{x: 0, y: 0}, {x: 1, y: 1}]
`,
			want: "unknown team",
		},
		{
			name: "too few waypoints",
			yaml: `
name: broken
lanes:
  mid:
    name: Mid
    waypoints: [{x: 0, y: 0}]
`,
			want: "at least 2 waypoints",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var spec MapSpec
			if err := yaml.Unmarshal([]byte(tt.yaml), &spec); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			_, err := spec.SimLanes()
			if err == nil {
				t.Fatalf("expected an error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestChampionSpecErrors(t *testing.T) {
	if _, err := (ChampionSpec{Name: "x", Team: "green"}).ChampionConfig(); err == nil {
		t.Fatalf("expected unknown team error")
	}
	if _, err := (ChampionSpec{Name: "x", Team: "blue", Lane: "jungle"}).ChampionConfig(); err == nil {
		t.Fatalf("expected unknown lane error")
	}
}

func TestLoadSpecUnknownFile(t *testing.T) {
	if _, err := LoadSpec[MapSpec]("does-not-exist.yaml"); err == nil {
		t.Fatalf("expected a load error")
	}
}
