package sim

import (
	"sync"
	"time"

	"tinysolder-go/hal"
)

// Transition is one recorded pin state change at a virtual time.
type Transition struct {
	At     time.Duration
	Level  bool
	Output bool // false while the pin is configured as input (tri-state)
}

// Pin implements hal.Pin and hal.IRQPin against the virtual clock,
// recording a timeline of level and mode changes for assertions.
type Pin struct {
	clk *Clock

	mu       sync.Mutex
	number   int
	level    bool
	output   bool
	irqEdge  hal.Edge
	irqFunc  func()
	timeline []Transition
}

func NewPin(clk *Clock, number int) *Pin {
	return &Pin{clk: clk, number: number}
}

func (p *Pin) ConfigureInput(_ hal.Pull) error {
	p.mu.Lock()
	p.output = false
	p.record()
	p.mu.Unlock()
	return nil
}

func (p *Pin) ConfigureOutput(initial bool) error {
	p.mu.Lock()
	p.output = true
	p.level = initial
	p.record()
	p.mu.Unlock()
	return nil
}

func (p *Pin) Set(level bool) {
	p.mu.Lock()
	if p.level == level {
		p.mu.Unlock()
		return
	}
	old := p.level
	p.level = level
	p.record()
	irq := p.irqFunc
	want := irqWanted(p.irqEdge, edgeFrom(old, level))
	p.mu.Unlock()
	if want && irq != nil {
		irq()
	}
}

func (p *Pin) Get() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.level
}

func (p *Pin) Toggle() { p.Set(!p.Get()) }

func (p *Pin) Number() int { return p.number }

func (p *Pin) SetIRQ(edge hal.Edge, handler func()) error {
	p.mu.Lock()
	p.irqEdge = edge
	p.irqFunc = handler
	p.mu.Unlock()
	return nil
}

func (p *Pin) ClearIRQ() error {
	p.mu.Lock()
	p.irqEdge = hal.EdgeNone
	p.irqFunc = nil
	p.mu.Unlock()
	return nil
}

// Fire drives the pin from outside (e.g. the ball switch moving) and
// delivers the edge to a registered handler.
func (p *Pin) Fire(level bool) { p.Set(level) }

// record appends the current state at the current virtual time. Caller
// holds the lock.
func (p *Pin) record() {
	p.timeline = append(p.timeline, Transition{
		At:     p.clk.Now(),
		Level:  p.level,
		Output: p.output,
	})
}

// Timeline returns a copy of the recorded transitions.
func (p *Pin) Timeline() []Transition {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]Transition, len(p.timeline))
	copy(out, p.timeline)
	return out
}

// StateAt returns the pin state as of virtual time t.
func (p *Pin) StateAt(t time.Duration) Transition {
	p.mu.Lock()
	defer p.mu.Unlock()
	st := Transition{At: 0, Level: false, Output: false}
	for _, tr := range p.timeline {
		if tr.At > t {
			break
		}
		st = tr
	}
	return st
}

// LowThroughout reports whether the pin level was low for the whole
// interval [from, to). Half-open: a rising edge at exactly to does not
// count, so an assert in the same virtual instant as a completed sample
// stays legal.
func (p *Pin) LowThroughout(from, to time.Duration) bool {
	if p.StateAt(from).Level {
		return false
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, tr := range p.timeline {
		if tr.At > from && tr.At < to && tr.Level {
			return false
		}
	}
	return true
}

// Floating reports whether the pin is currently tri-stated.
func (p *Pin) Floating() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return !p.output
}

func edgeFrom(old, new bool) hal.Edge {
	switch {
	case !old && new:
		return hal.EdgeRising
	case old && !new:
		return hal.EdgeFalling
	default:
		return hal.EdgeNone
	}
}

func irqWanted(cfg, seen hal.Edge) bool {
	switch cfg {
	case hal.EdgeBoth:
		return seen == hal.EdgeRising || seen == hal.EdgeFalling
	default:
		return cfg == seen
	}
}
