package main

import (
	"flag"
	"log"

	"github.com/milk9111/minimoba/config"
	"github.com/milk9111/minimoba/scenario"
	"github.com/milk9111/minimoba/sim"
)

func main() {
	scriptPath := flag.String("script", "skirmish.tengo", "scenario script in scenario/scripts/ (path or basename)")
	dt := flag.Float64("dt", 1.0/60.0, "simulation timestep in seconds")
	flag.Parse()

	mapSpec, err := config.LoadMapSpec()
	if err != nil {
		log.Fatalf("load map spec: %v", err)
	}
	worldCfg, err := mapSpec.WorldConfig()
	if err != nil {
		log.Fatalf("build world config: %v", err)
	}
	world := sim.NewWorld(worldCfg)

	src, err := scenario.LoadScript(*scriptPath)
	if err != nil {
		log.Fatalf("load script %s: %v", *scriptPath, err)
	}

	runner := scenario.NewRunner(world, *dt)
	if err := runner.Run(src); err != nil {
		log.Fatalf("scenario failed: %v", err)
	}
}
