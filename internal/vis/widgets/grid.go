// Package widgets provides the Gio UI widgets for the BeeClust
// visualizer.
package widgets

import (
	"image"
	"image/color"
	"math"

	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"

	"github.com/cvut/beeclust/internal/core"
	"github.com/cvut/beeclust/internal/vis/state"
)

// CellSize is the on-screen size, in pixels, of one grid cell.
const CellSize = 16

// Grid renders the simulation's cells, with empty cells colored by
// heatmap temperature, bees in a fixed color, and a short direction
// tick for each active bee.
type Grid struct {
	playback *state.Playback
}

// NewGrid creates a grid widget bound to playback's simulation.
func NewGrid(p *state.Playback) *Grid {
	return &Grid{playback: p}
}

// Layout draws every cell of the bound simulation's grid.
func (g *Grid) Layout(gtx layout.Context) layout.Dimensions {
	sim := g.playback.Sim
	grid := sim.Grid()
	hm := sim.Heatmap()

	bounds := image.Rect(0, 0, grid.Cols*CellSize, grid.Rows*CellSize)
	defer clip.Rect(bounds).Push(gtx.Ops).Pop()
	paint.Fill(gtx.Ops, color.NRGBA{R: 20, G: 20, B: 24, A: 255})

	grid.ForEach(func(r, c int, code core.Code) {
		x0, y0 := c*CellSize, r*CellSize
		rect := image.Rect(x0, y0, x0+CellSize, y0+CellSize)
		paint.FillShape(gtx.Ops, cellColor(code, hm.At(r, c)), clip.Rect(rect).Op())

		if code.IsDirection() {
			drawDirectionTick(gtx, x0, y0, code)
		}
	})

	return layout.Dimensions{Size: image.Point{X: bounds.Dx(), Y: bounds.Dy()}}
}

// cellColor maps a cell to a display color: fixtures, bees, and cells
// with a NaN temperature get fixed colors; empty cells are shaded along
// a blue-to-red ramp by temperature.
func cellColor(code core.Code, temp float64) color.NRGBA {
	switch code {
	case core.CodeWall:
		return color.NRGBA{R: 60, G: 60, B: 66, A: 255}
	case core.CodeHeater:
		return color.NRGBA{R: 220, G: 70, B: 40, A: 255}
	case core.CodeCooler:
		return color.NRGBA{R: 60, G: 140, B: 220, A: 255}
	}
	if math.IsNaN(temp) {
		return color.NRGBA{R: 60, G: 60, B: 66, A: 255}
	}
	base := temperatureColor(temp)
	if code.IsBee() {
		return color.NRGBA{R: 255, G: 225, B: 90, A: 255}
	}
	return base
}

// temperatureColor maps a temperature in roughly [0, 40] to a
// blue-(cold)-to-red-(hot) ramp.
func temperatureColor(temp float64) color.NRGBA {
	t := (temp - 0) / 40
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	r := uint8(30 + t*180)
	b := uint8(220 - t*180)
	return color.NRGBA{R: r, G: 40, B: b, A: 255}
}

// drawDirectionTick draws a short bar toward the direction a bee faces.
func drawDirectionTick(gtx layout.Context, x0, y0 int, code core.Code) {
	cx, cy := x0+CellSize/2, y0+CellSize/2
	const tick = CellSize / 2
	var rect image.Rectangle
	switch code {
	case core.CodeNorth:
		rect = image.Rect(cx-1, cy-tick, cx+1, cy)
	case core.CodeEast:
		rect = image.Rect(cx, cy-1, cx+tick, cy+1)
	case core.CodeSouth:
		rect = image.Rect(cx-1, cy, cx+1, cy+tick)
	case core.CodeWest:
		rect = image.Rect(cx-tick, cy-1, cx, cy+1)
	default:
		return
	}
	paint.FillShape(gtx.Ops, color.NRGBA{R: 10, G: 10, B: 10, A: 255}, clip.Rect(rect).Op())
}
