package sim

import (
	"math"

	"github.com/cvut/beeclust/internal/core"
)

// RecalculateHeat derives a per-cell steady-state temperature from the
// heater/cooler/wall layout of the grid. hm is mutated in place and
// returned.
func RecalculateHeat(hm *core.Heatmap, g *core.Grid, p core.HeatParams) *core.Heatmap {
	dh := DistanceField(g, core.CodeHeater)
	dc := DistanceField(g, core.CodeCooler)

	g.ForEach(func(r, c int, code core.Code) {
		switch {
		case code == core.CodeWall:
			hm.Set(r, c, math.NaN())
		case dh.At(r, c) == 0:
			hm.Set(r, c, p.THeater)
		case dc.At(r, c) == 0:
			hm.Set(r, c, p.TCooler)
		default:
			heating := 0.0
			if d := dh.At(r, c); d > 0 {
				heating = (p.THeater - p.TEnv) / float64(d)
			}
			cooling := 0.0
			if d := dc.At(r, c); d > 0 {
				cooling = (p.TEnv - p.TCooler) / float64(d)
			}
			hm.Set(r, c, p.TEnv+p.KTemp*(max0(heating)-max0(cooling)))
		}
	})

	return hm
}

func max0(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
