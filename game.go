package main

import (
	"fmt"
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/minimoba/config"
	"github.com/milk9111/minimoba/sim"
)

const (
	baseWidth  = 640
	baseHeight = 640

	tickDelta = 1.0 / 60.0
)

// Game hosts the match viewer: it owns the simulation world, feeds it a fixed
// timestep, and draws lanes, champions, and attack effects.
type Game struct {
	frames int

	world   *sim.World
	watcher *config.Watcher
	effects []attackEffect

	paused bool
	quit   bool
	ui     *ebitenui.UI
	debug  bool
}

// NewGame loads the map and roster configs, builds the world, and spawns the
// starting champions.
func NewGame(debug bool) (*Game, error) {
	mapSpec, err := config.LoadMapSpec()
	if err != nil {
		return nil, fmt.Errorf("load map spec: %w", err)
	}
	worldCfg, err := mapSpec.WorldConfig()
	if err != nil {
		return nil, fmt.Errorf("build world config: %w", err)
	}
	world := sim.NewWorld(worldCfg)

	roster, err := config.LoadRosterSpec()
	if err != nil {
		return nil, fmt.Errorf("load roster spec: %w", err)
	}
	for _, cs := range roster.Champions {
		cfg, err := cs.ChampionConfig()
		if err != nil {
			return nil, fmt.Errorf("champion %q: %w", cs.Name, err)
		}
		world.SpawnChampion(cfg)
	}

	g := &Game{world: world, debug: debug}
	g.ui = NewPauseUI(g)

	// Map edits hot reload into the running match; a missing config dir just
	// means no live editing this session.
	watcher, err := config.NewWatcher("config")
	if err != nil {
		log.Printf("config watcher unavailable: %v", err)
	} else {
		g.watcher = watcher
	}
	return g, nil
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}
	g.frames++

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.paused = !g.paused
	}
	if g.paused {
		g.ui.Update()
		return nil
	}

	g.drainWatcher()
	g.world.Update(tickDelta)

	for _, evt := range g.world.Events().Drain() {
		g.effects = append(g.effects, newAttackEffect(evt))
	}
	g.effects = ageEffects(g.effects, tickDelta)

	return nil
}

// drainWatcher applies any pending config edits to the running match.
func (g *Game) drainWatcher() {
	if g.watcher == nil {
		return
	}
	reload := false
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("config changed: %s", name)
			reload = true
		case err := <-g.watcher.Errors:
			if err != nil {
				log.Printf("config watcher: %v", err)
			}
		default:
			if reload {
				g.reloadLanes()
			}
			return
		}
	}
}

func (g *Game) reloadLanes() {
	mapSpec, err := config.LoadMapSpec()
	if err != nil {
		log.Printf("reload map spec: %v", err)
		return
	}
	lanes, err := mapSpec.SimLanes()
	if err != nil {
		log.Printf("reload lanes: %v", err)
		return
	}
	g.world.ReloadLanes(lanes)
}

func (g *Game) Draw(screen *ebiten.Image) {
	drawMatch(screen, g.world, g.effects)

	if g.debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("frames: %d  fps: %.1f  t: %.1fs  champions: %d",
			g.frames, ebiten.ActualFPS(), g.world.Now(), len(g.world.Champions())))
	}
	if g.paused {
		g.ui.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return baseWidth, baseHeight
}
