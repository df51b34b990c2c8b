package widgets

import (
	"fmt"
	"image"
	"image/color"

	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"

	"github.com/cvut/beeclust/internal/vis/state"
)

// Toolbar hosts the playback transport controls: play/pause, single
// step, and speed adjustment.
type Toolbar struct {
	playback *state.Playback

	playBtn   widget.Clickable
	pauseBtn  widget.Clickable
	stepBtn   widget.Clickable
	speedUp   widget.Clickable
	speedDown widget.Clickable
}

// NewToolbar creates a toolbar bound to p.
func NewToolbar(p *state.Playback) *Toolbar {
	return &Toolbar{playback: p}
}

// Layout renders the toolbar and applies any clicks from this frame.
func (t *Toolbar) Layout(gtx layout.Context, th *material.Theme) layout.Dimensions {
	height := gtx.Dp(unit.Dp(40))
	rect := image.Rect(0, 0, gtx.Constraints.Max.X, height)
	paint.FillShape(gtx.Ops, color.NRGBA{R: 40, G: 43, B: 48, A: 255}, clip.Rect(rect).Op())

	t.handleClicks(gtx)

	return layout.Inset{Left: unit.Dp(10), Top: unit.Dp(6), Bottom: unit.Dp(6)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx,
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				if t.playback.Playing {
					return t.button(gtx, th, &t.pauseBtn, "pause")
				}
				return t.button(gtx, th, &t.playBtn, "play")
			}),
			layout.Rigid(layout.Spacer{Width: unit.Dp(6)}.Layout),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return t.button(gtx, th, &t.stepBtn, "step")
			}),
			layout.Rigid(layout.Spacer{Width: unit.Dp(6)}.Layout),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return t.button(gtx, th, &t.speedDown, "-")
			}),
			layout.Rigid(layout.Spacer{Width: unit.Dp(4)}.Layout),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return t.button(gtx, th, &t.speedUp, "+")
			}),
			layout.Rigid(layout.Spacer{Width: unit.Dp(12)}.Layout),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				label := material.Label(th, unit.Sp(14), fmt.Sprintf(
					"tick %d  moved %d  interval %v",
					t.playback.TickCount, t.playback.LastMoved, t.playback.TickInterval))
				label.Color = color.NRGBA{R: 220, G: 220, B: 220, A: 255}
				return label.Layout(gtx)
			}),
		)
	})
}

func (t *Toolbar) handleClicks(gtx layout.Context) {
	for t.playBtn.Clicked(gtx) {
		t.playback.TogglePlay()
	}
	for t.pauseBtn.Clicked(gtx) {
		t.playback.Pause()
	}
	for t.stepBtn.Clicked(gtx) {
		t.playback.StepForward()
	}
	for t.speedUp.Clicked(gtx) {
		t.playback.SpeedUp()
	}
	for t.speedDown.Clicked(gtx) {
		t.playback.SlowDown()
	}
}

func (t *Toolbar) button(gtx layout.Context, th *material.Theme, btn *widget.Clickable, text string) layout.Dimensions {
	bg := color.NRGBA{R: 55, G: 58, B: 65, A: 255}
	if btn.Hovered() {
		bg = color.NRGBA{R: 70, G: 73, B: 82, A: 255}
	}
	return btn.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Background{}.Layout(gtx,
			func(gtx layout.Context) layout.Dimensions {
				gtx.Constraints.Min = image.Point{X: gtx.Dp(unit.Dp(56)), Y: gtx.Dp(unit.Dp(28))}
				rect := image.Rect(0, 0, gtx.Constraints.Min.X, gtx.Constraints.Min.Y)
				paint.FillShape(gtx.Ops, bg, clip.Rect(rect).Op())
				return layout.Dimensions{Size: gtx.Constraints.Min}
			},
			func(gtx layout.Context) layout.Dimensions {
				return layout.Center.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
					label := material.Label(th, unit.Sp(12), text)
					label.Color = color.NRGBA{R: 220, G: 220, B: 220, A: 255}
					return label.Layout(gtx)
				})
			},
		)
	})
}
