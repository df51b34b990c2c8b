// Package state holds the mutable view-model the visualizer's widgets
// read from and write to, separate from the simulation itself.
package state

import (
	"time"

	"github.com/cvut/beeclust/internal/facade"
)

// Playback drives the simulation forward at a wall-clock cadence when
// playing, independently of the frame rate the GUI happens to render
// at. Unlike a path replay over a fixed time range, a BeeClust run has
// no end time: Playing simply means "keep ticking."
type Playback struct {
	Sim          *facade.Simulation
	TickInterval time.Duration
	Playing      bool
	TickCount    int
	LastMoved    int

	lastTick time.Time
}

// NewPlayback wraps sim with a playback controller ticking at interval
// when playing.
func NewPlayback(sim *facade.Simulation, interval time.Duration) *Playback {
	return &Playback{
		Sim:          sim,
		TickInterval: interval,
		lastTick:     time.Now(),
	}
}

// TogglePlay flips between playing and paused.
func (p *Playback) TogglePlay() {
	p.Playing = !p.Playing
	p.lastTick = time.Now()
}

// Pause stops automatic ticking.
func (p *Playback) Pause() {
	p.Playing = false
}

// StepForward runs exactly one tick, regardless of play state.
func (p *Playback) StepForward() {
	p.Sim.RecalculateHeat()
	p.LastMoved = p.Sim.Tick()
	p.TickCount++
}

// SpeedUp halves the interval between automatic ticks, to a floor of
// one millisecond.
func (p *Playback) SpeedUp() {
	p.TickInterval /= 2
	if p.TickInterval < time.Millisecond {
		p.TickInterval = time.Millisecond
	}
}

// SlowDown doubles the interval between automatic ticks.
func (p *Playback) SlowDown() {
	p.TickInterval *= 2
}

// Advance runs as many ticks as the elapsed wall-clock time allows
// for, given TickInterval. Called once per rendered frame.
func (p *Playback) Advance() {
	if !p.Playing {
		return
	}
	now := time.Now()
	for now.Sub(p.lastTick) >= p.TickInterval {
		p.StepForward()
		p.lastTick = p.lastTick.Add(p.TickInterval)
	}
}
