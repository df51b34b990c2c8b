package sim

import (
	"math"

	"github.com/cvut/beeclust/internal/core"
	"github.com/cvut/beeclust/internal/rng"
)

// dirOffsets maps a Code in {CodeNorth..CodeWest} to its (dRow, dCol)
// step: N = (r-1,c), E = (r,c+1), S = (r+1,c), W = (r,c-1).
var dirOffsets = map[core.Code][2]int{
	core.CodeNorth: {-1, 0},
	core.CodeEast:  {0, 1},
	core.CodeSouth: {1, 0},
	core.CodeWest:  {0, -1},
}

// moveKind classifies what a bee's target cell means for it this tick.
type moveKind int

const (
	moveToCell moveKind = iota
	beeMeet
	wallHit
)

// Tick advances the simulation by one discrete time step: a single
// row-major sweep over every cell, with a "done" bitmap that prevents
// a bee moved into a later cell from being processed twice in the
// same sweep. g is mutated in place; hm is read-only. Returns the
// number of bees that successfully moved.
func Tick(g *core.Grid, hm *core.Heatmap, p core.TickParams, r rng.Source) int {
	done := make([]bool, g.Len())
	doneIdx := func(row, col int) int { return row*g.Cols + col }

	moved := 0

	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Cols; col++ {
			if done[doneIdx(row, col)] {
				continue
			}

			code := g.At(row, col)

			switch {
			case code == -1:
				// Wait expires this tick: choose a uniform random direction.
				dir := core.Direction(r.NextInRange(4))
				g.Set(row, col, dir.Code())
				done[doneIdx(row, col)] = true

			case code < -1:
				g.Set(row, col, code+1)
				done[doneIdx(row, col)] = true

			case code.IsDirection():
				dir := code
				if r.NextF64() < p.PChangeDir {
					dir = randomOtherDirection(dir, r)
				}

				off := dirOffsets[dir]
				nr, nc := row+off[0], col+off[1]

				kind := classifyMove(g, nr, nc)

				switch kind {
				case wallHit:
					if r.NextF64() < p.PWall {
						waitBee(g, hm, p, row, col)
					} else {
						g.Set(row, col, rotate180(dir))
					}
				case beeMeet:
					if r.NextF64() < p.PMeet {
						waitBee(g, hm, p, row, col)
					} else {
						g.Set(row, col, dir)
					}
				case moveToCell:
					g.Set(nr, nc, dir)
					g.Set(row, col, core.CodeEmpty)
					done[doneIdx(nr, nc)] = true
					moved++
				}

				done[doneIdx(row, col)] = true

			default:
				done[doneIdx(row, col)] = true
			}
		}
	}

	return moved
}

// randomOtherDirection draws x uniformly from {1,2,3}; if x equals the
// current direction, the new direction is 4 (west); otherwise the new
// direction is x. For every current direction this yields each of the
// three other directions with probability 1/3, and the mapping from
// draw to direction is kept exactly as written.
func randomOtherDirection(current core.Code, r rng.Source) core.Code {
	x := core.Code(r.NextInRange(3)) + core.CodeNorth // uniform in {1,2,3}
	if x == current {
		return core.CodeWest
	}
	return x
}

// rotate180 computes the new direction after a wall hit that doesn't
// result in a wait: new = (cur mod 4) + 1. Despite the name, this is a
// 90-degree clockwise turn for every starting direction (N→E, E→S,
// S→W, W→N), not a 180-degree one; it is kept as-is rather than
// corrected.
func rotate180(cur core.Code) core.Code {
	return core.Code(int(cur)%4) + 1
}

// classifyMove determines what a bee's target cell means for it: an
// out-of-bounds or fixture target is a wall hit, an occupied target is
// a bee meet, and anything else is a clear move.
func classifyMove(g *core.Grid, r, c int) moveKind {
	if !g.InBounds(r, c) {
		return wallHit
	}
	target := g.At(r, c)
	switch {
	case target == core.CodeWall || target == core.CodeHeater || target == core.CodeCooler:
		return wallHit
	case target.IsBee():
		return beeMeet
	default:
		return moveToCell
	}
}

// waitBee computes a wait duration from local temperature vs. ideal,
// clamps it to at least MinWait, and stores the resulting negative
// countdown.
func waitBee(g *core.Grid, hm *core.Heatmap, p core.TickParams, row, col int) {
	wait := int(math.Floor(p.KStay / (1 + math.Abs(hm.At(row, col)-p.TIdeal))))
	if wait < p.MinWait {
		wait = p.MinWait
	}
	g.Set(row, col, core.Code(-wait))
}
