// Package vis implements a Gio-based visualization for a running
// BeeClust simulation.
package vis

import (
	"image/color"
	"time"

	"gioui.org/app"
	"gioui.org/io/event"
	"gioui.org/io/key"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget/material"

	"github.com/cvut/beeclust/internal/facade"
	"github.com/cvut/beeclust/internal/vis/state"
	"github.com/cvut/beeclust/internal/vis/widgets"
)

// App is the visualization application: a playback controller over a
// facade.Simulation plus the widgets that render and drive it.
type App struct {
	playback *state.Playback
	theme    *material.Theme
	grid     *widgets.Grid
	toolbar  *widgets.Toolbar
}

// NewApp wraps sim in a playback controller ticking every interval
// while playing, and builds the widgets that render it.
func NewApp(sim *facade.Simulation, interval time.Duration) *App {
	pb := state.NewPlayback(sim, interval)
	return &App{
		playback: pb,
		theme:    material.NewTheme(),
		grid:     widgets.NewGrid(pb),
		toolbar:  widgets.NewToolbar(pb),
	}
}

// Run starts the application event loop.
func (a *App) Run(w *app.Window) error {
	var ops op.Ops
	tag := new(int)

	for {
		switch e := w.Event().(type) {
		case app.DestroyEvent:
			return e.Err

		case app.FrameEvent:
			gtx := app.NewContext(&ops, e)

			for {
				ev, ok := gtx.Event(key.Filter{Focus: tag})
				if !ok {
					break
				}
				if ke, ok := ev.(key.Event); ok && ke.State == key.Press {
					a.handleKeyEvent(ke)
				}
			}
			event.Op(gtx.Ops, tag)

			a.layout(gtx)
			e.Frame(gtx.Ops)

			a.playback.Advance()
			if a.playback.Playing {
				w.Invalidate()
			}
		}
	}
}

func (a *App) handleKeyEvent(e key.Event) {
	switch e.Name {
	case key.NameSpace:
		a.playback.TogglePlay()
	case key.NameRightArrow:
		a.playback.StepForward()
	}
}

func (a *App) layout(gtx layout.Context) layout.Dimensions {
	paint.Fill(gtx.Ops, color.NRGBA{R: 15, G: 15, B: 18, A: 255})

	return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return a.toolbar.Layout(gtx, a.theme)
		}),
		layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
			return layout.UniformInset(unit.Dp(8)).Layout(gtx, a.grid.Layout)
		}),
	)
}
