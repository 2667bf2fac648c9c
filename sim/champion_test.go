package sim

import "testing"

func aliveInvariantHolds(c *Champion) bool {
	return c.Alive() == (c.Health() > 0)
}

func TestChampionDamageToDeath(t *testing.T) {
	c := NewChampion(ChampionConfig{Name: "test", Team: TeamBlue, MaxHealth: 100})

	deaths := 0
	c.OnDeath = func(*Champion) { deaths++ }

	c.TakeDamage(60)
	if c.Health() != 40 || !c.Alive() {
		t.Fatalf("after 60 damage: health=%v alive=%v", c.Health(), c.Alive())
	}
	if !aliveInvariantHolds(c) {
		t.Fatalf("alive invariant broken after non-lethal damage")
	}

	c.TakeDamage(50)
	if c.Health() != 0 {
		t.Fatalf("lethal damage should clamp health at 0, got %v", c.Health())
	}
	if c.Alive() {
		t.Fatalf("champion should be dead")
	}
	if deaths != 1 {
		t.Fatalf("expected exactly one death transition, got %d", deaths)
	}

	// damage after death is a no-op and must not fire death again
	c.TakeDamage(25)
	if deaths != 1 {
		t.Fatalf("damage after death fired a second death transition")
	}
	if !aliveInvariantHolds(c) {
		t.Fatalf("alive invariant broken after death")
	}
}

func TestChampionHeal(t *testing.T) {
	cases := []struct {
		name    string
		start   float64
		heal    float64
		dead    bool
		want    float64
		wantMax float64
	}{
		{"overheal_clamps", 90, 30, false, 100, 100},
		{"partial", 50, 20, false, 70, 100},
		{"zero_amount", 50, 0, false, 50, 100},
		{"dead_noop", 0, 50, true, 0, 100},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			ch := NewChampion(ChampionConfig{Name: "test", MaxHealth: 100})
			if c.dead {
				ch.TakeDamage(ch.MaxHealth())
			} else {
				ch.TakeDamage(ch.MaxHealth() - c.start)
			}
			ch.Heal(c.heal)
			if ch.Health() != c.want {
				t.Fatalf("health = %v, want %v", ch.Health(), c.want)
			}
			if ch.MaxHealth() != c.wantMax {
				t.Fatalf("max health changed to %v", ch.MaxHealth())
			}
			if !aliveInvariantHolds(ch) {
				t.Fatalf("alive invariant broken")
			}
		})
	}
}

func TestChampionRevive(t *testing.T) {
	cases := []struct {
		name     string
		fraction float64
		want     float64
	}{
		{"full", 1, 100},
		{"half", 0.5, 50},
		{"zero_defaults_to_full", 0, 100},
		{"negative_defaults_to_full", -1, 100},
		{"above_one_defaults_to_full", 2, 100},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			ch := NewChampion(ChampionConfig{Name: "test", MaxHealth: 100})
			ch.TakeDamage(200)
			if ch.Alive() {
				t.Fatalf("setup: champion should be dead")
			}
			ch.Revive(c.fraction)
			if !ch.Alive() {
				t.Fatalf("champion should be alive after revive")
			}
			if ch.Health() != c.want {
				t.Fatalf("health = %v, want %v", ch.Health(), c.want)
			}
			if !aliveInvariantHolds(ch) {
				t.Fatalf("alive invariant broken after revive")
			}
		})
	}
}

func TestChampionConfigDefaults(t *testing.T) {
	c := NewChampion(ChampionConfig{Name: "bare"})
	cfg := c.Config()
	if cfg.MaxHealth <= 0 || cfg.MoveSpeed <= 0 || cfg.AttackDamage <= 0 ||
		cfg.AttackCooldown <= 0 || cfg.RespawnDelay <= 0 || cfg.Radius <= 0 {
		t.Fatalf("defaults not applied: %+v", cfg)
	}
	if c.Health() != cfg.MaxHealth {
		t.Fatalf("champion should spawn at full health")
	}
}
