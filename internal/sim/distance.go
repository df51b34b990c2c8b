package sim

import (
	"github.com/cvut/beeclust/internal/core"
	"github.com/cvut/beeclust/internal/queue"
)

// neighborOffsets8 lists the eight compass-direction neighbor offsets
// used by the multi-source distance BFS.
var neighborOffsets8 = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// queueCapacityC3 bounds the queue at 8 enqueues per cell: each cell
// can be finalized at most once per neighbor, and it has 8 neighbors.
// A tighter H*W bound is possible with duplicate suppression on
// enqueue, but this bound trades a constant-factor memory cost for
// zero risk of overflowing the ring buffer.
func queueCapacityC3(rows, cols int) int {
	return 8 * rows * cols
}

// DistanceField computes the multi-source 8-neighborhood BFS distance
// from every cell of code `source` to every other non-wall cell.
// Cells unreachable from any source are left at -1. Heaters and
// coolers do not block each other's propagation and bees do not block
// heat propagation at all — only walls do.
func DistanceField(g *core.Grid, source core.Code) *core.DistanceField {
	d := core.NewDistanceField(g.Rows, g.Cols)
	q := queue.New(queueCapacityC3(g.Rows, g.Cols))

	g.ForEach(func(r, c int, code core.Code) {
		if code == source {
			d.Set(r, c, 0)
			q.Put(queue.Job{Row: r, Col: c, Dist: 0})
		}
	})

	for !q.Empty() {
		job := q.Get()
		for _, off := range neighborOffsets8 {
			nr, nc := job.Row+off[0], job.Col+off[1]
			if !g.InBounds(nr, nc) {
				continue
			}
			if g.At(nr, nc) == core.CodeWall {
				continue
			}
			nd := job.Dist + 1
			cur := d.At(nr, nc)
			if cur < 0 || cur > nd {
				d.Set(nr, nc, nd)
				q.Put(queue.Job{Row: nr, Col: nc, Dist: nd})
			}
		}
	}

	return d
}
