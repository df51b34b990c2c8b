package sim

import (
	"testing"

	"github.com/cvut/beeclust/internal/core"
	"github.com/cvut/beeclust/internal/rng"
)

// zeroSource always returns 0 from every draw: NextF64 returns 0 (so any
// `< p` probability check with p > 0 succeeds), NextInRange returns 0.
type zeroSource struct{}

func (zeroSource) NextU32() uint32     { return 0 }
func (zeroSource) NextF64() float64    { return 0 }
func (zeroSource) NextInRange(int) int { return 0 }

// oneSource always returns just-under-1 from NextF64, so any `< p`
// probability check with p < 1 fails, and returns the max index from
// NextInRange.
type oneSource struct{}

func (oneSource) NextU32() uint32  { return 0xFFFFFFFF }
func (oneSource) NextF64() float64 { return 0.999999 }
func (oneSource) NextInRange(n int) int {
	if n <= 0 {
		return 0
	}
	return n - 1
}

func TestTickScenario2WallHitRotates(t *testing.T) {
	g := gridFromCodes(1, 3, []core.Code{core.CodeNorth, core.CodeEmpty, core.CodeEmpty})
	hm := core.NewHeatmap(1, 3)
	p := core.TickParams{PChangeDir: 0, PWall: 0, PMeet: 0, MinWait: 1, KStay: 10, TIdeal: 20}

	moved := Tick(g, hm, p, oneSource{})

	if moved != 0 {
		t.Errorf("moved = %d, want 0", moved)
	}
	if got := g.At(0, 0); got != core.CodeEast {
		t.Errorf("direction after wall hit = %v, want CodeEast", got)
	}
}

func TestTickBeeMeetNoMove(t *testing.T) {
	// Bee 0 faces east into bee 1; bee 1 faces north into the grid
	// boundary. p_meet=0 means bee 0's BEE_MEET resolves to "stay, keep
	// direction"; bee 1 independently WALL_HITs and rotates.
	g := gridFromCodes(1, 3, []core.Code{core.CodeEast, core.CodeNorth, core.CodeEmpty})
	hm := core.NewHeatmap(1, 3)
	p := core.TickParams{PChangeDir: 0, PWall: 0, PMeet: 0, MinWait: 1, KStay: 10, TIdeal: 20}

	moved := Tick(g, hm, p, oneSource{})

	if moved != 0 {
		t.Errorf("moved = %d, want 0", moved)
	}
	if got := g.At(0, 0); got != core.CodeEast {
		t.Errorf("bee 0 direction = %v, want CodeEast (BEE_MEET, p_meet fails, stays)", got)
	}
	if got := g.At(0, 1); got != core.CodeEast {
		t.Errorf("bee 1 direction = %v, want CodeEast (WALL_HIT, p_wall fails, rotates)", got)
	}
}

func TestTickScenario4WaitThenCountdownThenRandom(t *testing.T) {
	g := gridFromCodes(1, 2, []core.Code{core.CodeNorth, core.CodeEmpty})
	hm := core.NewHeatmap(1, 2)
	hm.Set(0, 0, 20)
	p := core.TickParams{PChangeDir: 0, PWall: 1.0, PMeet: 0, MinWait: 1, KStay: 10, TIdeal: 20}

	Tick(g, hm, p, zeroSource{})
	if got := g.At(0, 0); got != -10 {
		t.Fatalf("after wall-hit wait: got %v, want -10", got)
	}

	for i := 0; i < 9; i++ {
		Tick(g, hm, p, zeroSource{})
	}
	if got := g.At(0, 0); got != -1 {
		t.Fatalf("after 9 countdowns: got %v, want -1", got)
	}

	Tick(g, hm, p, zeroSource{})
	if got := g.At(0, 0); !got.IsDirection() {
		t.Fatalf("after wait expires: got %v, want an active direction", got)
	}
}

func TestTickScenario5WaitExpiresToRandomDirection(t *testing.T) {
	g := gridFromCodes(1, 2, []core.Code{-1, core.CodeEmpty})
	hm := core.NewHeatmap(1, 2)
	p := core.TickParams{}

	Tick(g, hm, p, zeroSource{})

	if got := g.At(0, 0); got != core.CodeNorth {
		t.Errorf("got %v, want CodeNorth (NextInRange stubbed to 0)", got)
	}
}

func TestTickMoveIntoEmptyCell(t *testing.T) {
	g := gridFromCodes(1, 2, []core.Code{core.CodeEast, core.CodeEmpty})
	hm := core.NewHeatmap(1, 2)
	p := core.TickParams{PChangeDir: 0}

	moved := Tick(g, hm, p, oneSource{})

	if moved != 1 {
		t.Fatalf("moved = %d, want 1", moved)
	}
	if g.At(0, 0) != core.CodeEmpty {
		t.Errorf("source cell = %v, want empty", g.At(0, 0))
	}
	if g.At(0, 1) != core.CodeEast {
		t.Errorf("target cell = %v, want CodeEast", g.At(0, 1))
	}
}

func TestTickPreservesBeeCount(t *testing.T) {
	g := gridFromCodes(3, 3, []core.Code{
		core.CodeNorth, core.CodeEast, core.CodeSouth,
		-3, core.CodeEmpty, core.CodeWest,
		core.CodeEmpty, core.CodeHeater, core.CodeCooler,
	})
	hm := core.NewHeatmap(3, 3)
	p := core.TickParams{PChangeDir: 0.3, PWall: 0.5, PMeet: 0.5, MinWait: 2, KStay: 15, TIdeal: 20}
	r := rng.NewSeeded(1, 2)

	before := g.CountBees()
	for i := 0; i < 25; i++ {
		moved := Tick(g, hm, p, r)
		if moved > before {
			t.Fatalf("tick %d: moved (%d) exceeds bee count (%d)", i, moved, before)
		}
		if after := g.CountBees(); after != before {
			t.Fatalf("tick %d: bee count changed from %d to %d", i, before, after)
		}
	}
}

func TestTickFixturesInvariantUnderTick(t *testing.T) {
	g := gridFromCodes(2, 3, []core.Code{
		core.CodeHeater, core.CodeWall, core.CodeCooler,
		core.CodeNorth, core.CodeEmpty, core.CodeSouth,
	})
	hm := core.NewHeatmap(2, 3)
	p := core.TickParams{PChangeDir: 0.5, PWall: 0.5, PMeet: 0.5, MinWait: 1, KStay: 5, TIdeal: 20}
	r := rng.NewSeeded(7, 9)

	for i := 0; i < 10; i++ {
		Tick(g, hm, p, r)
	}

	if g.At(0, 0) != core.CodeHeater {
		t.Error("heater cell changed")
	}
	if g.At(0, 1) != core.CodeWall {
		t.Error("wall cell changed")
	}
	if g.At(0, 2) != core.CodeCooler {
		t.Error("cooler cell changed")
	}
}

func TestTickEmptyGridReturnsZero(t *testing.T) {
	g := core.NewGrid(1, 1)
	hm := core.NewHeatmap(1, 1)
	if moved := Tick(g, hm, core.TickParams{}, rng.NewSeeded(1, 1)); moved != 0 {
		t.Errorf("moved = %d, want 0", moved)
	}
}

func TestTickSingleBeeWallGrid(t *testing.T) {
	g := gridFromCodes(1, 1, []core.Code{core.CodeNorth})
	hm := core.NewHeatmap(1, 1)
	hm.Set(0, 0, 20)
	p := core.TickParams{PChangeDir: 0, PWall: 0, MinWait: 1, KStay: 10, TIdeal: 20}

	moved := Tick(g, hm, p, oneSource{})

	if moved != 0 {
		t.Errorf("moved = %d, want 0", moved)
	}
	if !g.At(0, 0).IsBee() {
		t.Errorf("cell should still hold the bee, got %v", g.At(0, 0))
	}
}
