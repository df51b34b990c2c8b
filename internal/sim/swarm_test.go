package sim

import (
	"reflect"
	"testing"

	"github.com/cvut/beeclust/internal/core"
)

func TestSwarmsScenario6(t *testing.T) {
	// [[1, 5, 1], [0, 1, 0]]
	g := gridFromCodes(2, 3, []core.Code{
		core.CodeNorth, core.CodeWall, core.CodeNorth,
		core.CodeEmpty, core.CodeNorth, core.CodeEmpty,
	})

	got := Swarms(g)
	want := [][]Coord{
		{{0, 0}},
		{{0, 2}},
		{{1, 1}},
	}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("Swarms() = %+v, want %+v", got, want)
	}
}

func TestSwarmsSingleBee1x1(t *testing.T) {
	g := gridFromCodes(1, 1, []core.Code{core.CodeNorth})
	got := Swarms(g)
	want := [][]Coord{{{0, 0}}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Swarms() = %+v, want %+v", got, want)
	}
}

func TestSwarmsAllWallsEmpty(t *testing.T) {
	g := gridFromCodes(2, 2, []core.Code{
		core.CodeWall, core.CodeWall,
		core.CodeWall, core.CodeWall,
	})
	got := Swarms(g)
	if got != nil {
		t.Errorf("Swarms() = %+v, want nil/empty", got)
	}
}

func TestSwarmsPartitionNoDuplicates(t *testing.T) {
	g := gridFromCodes(3, 3, []core.Code{
		core.CodeNorth, core.CodeNorth, core.CodeEmpty,
		-2, core.CodeEmpty, core.CodeHeater,
		core.CodeEmpty, core.CodeSouth, core.CodeWest,
	})

	swarms := Swarms(g)

	seen := make(map[Coord]bool)
	beeCount := 0
	g.ForEach(func(r, c int, code core.Code) {
		if code.IsBee() {
			beeCount++
		}
	})

	total := 0
	for _, swarm := range swarms {
		if len(swarm) == 0 {
			t.Error("swarm must be non-empty")
		}
		for _, coord := range swarm {
			if seen[coord] {
				t.Errorf("coordinate %+v appears in more than one swarm", coord)
			}
			seen[coord] = true
			if !g.At(coord.Row, coord.Col).IsBee() {
				t.Errorf("non-bee cell %+v appeared in a swarm", coord)
			}
			total++
		}
	}

	if total != beeCount {
		t.Errorf("swarms covered %d cells, want %d bee cells", total, beeCount)
	}
}
