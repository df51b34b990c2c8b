package sim

import (
	"github.com/cvut/beeclust/internal/core"
	"github.com/cvut/beeclust/internal/queue"
)

// neighborOffsets4 lists the four cardinal-neighbor offsets used by the
// swarm connected-components scan.
var neighborOffsets4 = [4][2]int{
	{-1, 0}, {1, 0}, {0, -1}, {0, 1},
}

// Coord is a single grid position returned as part of a swarm.
type Coord struct {
	Row, Col int
}

// Swarms partitions all bee-occupied cells of g into connected
// components under 4-neighborhood adjacency. The outer scan runs in
// row-major order; cells within each swarm are listed in BFS
// discovery order seeded at the scan position.
func Swarms(g *core.Grid) [][]Coord {
	visited := make([]bool, g.Len())
	visitedIdx := func(r, c int) int { return r*g.Cols + c }

	var result [][]Coord
	q := queue.New(g.Len())

	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			if visited[visitedIdx(r, c)] || !g.At(r, c).IsBee() {
				continue
			}

			q.Reset()
			q.Put(queue.Job{Row: r, Col: c})
			visited[visitedIdx(r, c)] = true

			var swarm []Coord
			for !q.Empty() {
				job := q.Get()
				swarm = append(swarm, Coord{Row: job.Row, Col: job.Col})

				for _, off := range neighborOffsets4 {
					nr, nc := job.Row+off[0], job.Col+off[1]
					if !g.InBounds(nr, nc) {
						continue
					}
					if visited[visitedIdx(nr, nc)] || !g.At(nr, nc).IsBee() {
						continue
					}
					visited[visitedIdx(nr, nc)] = true
					q.Put(queue.Job{Row: nr, Col: nc})
				}
			}

			result = append(result, swarm)
		}
	}

	return result
}
