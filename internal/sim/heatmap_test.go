package sim

import (
	"math"
	"testing"

	"github.com/cvut/beeclust/internal/core"
)

func TestRecalculateHeatScenario1(t *testing.T) {
	g := gridFromCodes(1, 5, []core.Code{
		core.CodeHeater, core.CodeEmpty, core.CodeEmpty, core.CodeEmpty, core.CodeCooler,
	})
	hm := core.NewHeatmap(1, 5)
	p := core.HeatParams{THeater: 35, TCooler: 5, TEnv: 20, KTemp: 0.9}

	RecalculateHeat(hm, g, p)

	want := []float64{35, 29, 20, 11, 5}
	for c, w := range want {
		if got := hm.At(0, c); math.Abs(got-w) > 1e-9 {
			t.Errorf("hm.At(0,%d) = %v, want %v", c, got, w)
		}
	}
}

func TestRecalculateHeatWallIsNaN(t *testing.T) {
	g := gridFromCodes(1, 3, []core.Code{core.CodeHeater, core.CodeWall, core.CodeEmpty})
	hm := core.NewHeatmap(1, 3)
	RecalculateHeat(hm, g, core.HeatParams{THeater: 35, TCooler: 5, TEnv: 20, KTemp: 0.9})

	if !math.IsNaN(hm.At(0, 1)) {
		t.Errorf("wall cell heatmap = %v, want NaN", hm.At(0, 1))
	}
	if math.IsNaN(hm.At(0, 0)) || math.IsNaN(hm.At(0, 2)) {
		t.Error("non-wall cells should not be NaN")
	}
}

func TestRecalculateHeatAllWallsAllNaN(t *testing.T) {
	g := gridFromCodes(2, 2, []core.Code{
		core.CodeWall, core.CodeWall,
		core.CodeWall, core.CodeWall,
	})
	hm := core.NewHeatmap(2, 2)
	RecalculateHeat(hm, g, core.HeatParams{THeater: 35, TCooler: 5, TEnv: 20, KTemp: 0.9})

	g.ForEach(func(r, c int, _ core.Code) {
		if !math.IsNaN(hm.At(r, c)) {
			t.Errorf("At(%d,%d) = %v, want NaN", r, c, hm.At(r, c))
		}
	})
}

func TestRecalculateHeatUnreachableFallsBackToEnv(t *testing.T) {
	// Heater and cooler both isolated from the open cell by walls.
	g := gridFromCodes(1, 5, []core.Code{
		core.CodeHeater, core.CodeWall, core.CodeEmpty, core.CodeWall, core.CodeCooler,
	})
	hm := core.NewHeatmap(1, 5)
	p := core.HeatParams{THeater: 35, TCooler: 5, TEnv: 20, KTemp: 0.9}
	RecalculateHeat(hm, g, p)

	if got := hm.At(0, 2); math.Abs(got-p.TEnv) > 1e-9 {
		t.Errorf("isolated cell heat = %v, want TEnv %v", got, p.TEnv)
	}
}

func TestRecalculateHeatIdempotent(t *testing.T) {
	g := gridFromCodes(1, 5, []core.Code{
		core.CodeHeater, core.CodeEmpty, core.CodeEmpty, core.CodeEmpty, core.CodeCooler,
	})
	p := core.HeatParams{THeater: 35, TCooler: 5, TEnv: 20, KTemp: 0.9}

	hm1 := core.NewHeatmap(1, 5)
	RecalculateHeat(hm1, g, p)
	hm2 := core.NewHeatmap(1, 5)
	RecalculateHeat(hm2, g, p)

	for c := 0; c < 5; c++ {
		if hm1.At(0, c) != hm2.At(0, c) {
			t.Errorf("successive calls diverged at col %d: %v vs %v", c, hm1.At(0, c), hm2.At(0, c))
		}
	}
}
