// Command beeclustvis provides an interactive GUI visualization of a
// BeeClust simulation.
package main

import (
	"log"
	"os"
	"time"

	"gioui.org/app"
	"gioui.org/unit"

	"github.com/cvut/beeclust/internal/core"
	"github.com/cvut/beeclust/internal/facade"
	"github.com/cvut/beeclust/internal/rng"
	"github.com/cvut/beeclust/internal/vis"
)

func main() {
	go func() {
		window := new(app.Window)
		window.Option(
			app.Title("BeeClust Visualizer"),
			app.Size(unit.Dp(900), unit.Dp(700)),
		)

		sim, err := facade.New(facade.Config{
			Rows: 30, Cols: 40,
			Heat: core.HeatParams{THeater: 35, TCooler: 5, TEnv: 20, KTemp: 0.9},
			Tick: core.TickParams{PChangeDir: 0.2, PWall: 0.5, PMeet: 0.5, MinWait: 2, KStay: 15, TIdeal: 20},
		})
		if err != nil {
			log.Fatal(err)
		}
		scatterDefaultScene(sim)

		application := vis.NewApp(sim, 150*time.Millisecond)
		if err := application.Run(window); err != nil {
			log.Fatal(err)
		}
		os.Exit(0)
	}()
	app.Main()
}

// scatterDefaultScene builds a small demonstration layout: a heater
// and a cooler at opposite corners, a short wall, and a handful of
// bees scattered with random directions.
func scatterDefaultScene(sim *facade.Simulation) {
	g := sim.Grid()
	r := rng.New()

	_ = sim.Place(2, 2, core.Cell{Kind: core.KindHeater})
	_ = sim.Place(g.Rows-3, g.Cols-3, core.Cell{Kind: core.KindCooler})
	for c := g.Cols/2 - 5; c < g.Cols/2+5; c++ {
		_ = sim.Place(g.Rows/2, c, core.Cell{Kind: core.KindWall})
	}

	const beeCount = 25
	placed := 0
	for placed < beeCount {
		row := r.NextInRange(g.Rows)
		col := r.NextInRange(g.Cols)
		if g.At(row, col) != core.CodeEmpty {
			continue
		}
		dir := core.Direction(r.NextInRange(4))
		_ = sim.Place(row, col, core.Cell{Kind: core.KindBee, Dir: dir})
		placed++
	}

	sim.RecalculateHeat()
}
