// hal/platform_host.go
//go:build !rp2040 && !rp2350

package hal

import (
	"sync"
	"time"
)

// DefaultBoard returns an inert fake board so the module builds and runs on
// a host. Behavioural simulation (thermal model, virtual time) lives in the
// sim package; this binding only keeps non-MCU builds viable.
func DefaultBoard() Board {
	return Board{
		Heater: &FakePin{number: pinHeaterHost},
		LED:    &FakePin{number: pinLEDHost},
		Switch: &FakePin{number: pinSwitchHost},
		ADC:    &FakeADC{},
		Clock:  &realClock{boot: time.Now()},
	}
}

const (
	pinHeaterHost = 16
	pinLEDHost    = 17
	pinSwitchHost = 18
)

// ----------------------------- GPIO (host) -----------------------------------

// FakePin implements Pin and IRQPin for host builds and plain unit tests.
type FakePin struct {
	mu      sync.RWMutex
	number  int
	level   bool
	modeOut bool
	irqEdge Edge
	irqFunc func()
}

func (p *FakePin) ConfigureInput(_ Pull) error {
	p.mu.Lock()
	p.modeOut = false
	p.mu.Unlock()
	return nil
}

func (p *FakePin) ConfigureOutput(initial bool) error {
	p.mu.Lock()
	p.modeOut = true
	p.level = initial
	p.mu.Unlock()
	return nil
}

func (p *FakePin) Set(level bool) {
	p.mu.Lock()
	old := p.level
	p.level = level
	irq := p.irqFunc
	want := irqWanted(p.irqEdge, edgeFrom(old, level))
	p.mu.Unlock()
	if want && irq != nil {
		irq() // ISR-style callback
	}
}

func (p *FakePin) Get() bool {
	p.mu.RLock()
	v := p.level
	p.mu.RUnlock()
	return v
}

func (p *FakePin) Toggle() { p.Set(!p.Get()) }

func (p *FakePin) Number() int { return p.number }

func (p *FakePin) SetIRQ(edge Edge, handler func()) error {
	p.mu.Lock()
	p.irqEdge = edge
	p.irqFunc = handler
	p.mu.Unlock()
	return nil
}

func (p *FakePin) ClearIRQ() error {
	p.mu.Lock()
	p.irqEdge = EdgeNone
	p.irqFunc = nil
	p.mu.Unlock()
	return nil
}

func edgeFrom(old, new bool) Edge {
	switch {
	case !old && new:
		return EdgeRising
	case old && !new:
		return EdgeFalling
	default:
		return EdgeNone
	}
}

func irqWanted(cfg, seen Edge) bool {
	switch cfg {
	case EdgeBoth:
		return seen == EdgeRising || seen == EdgeFalling
	default:
		return cfg == seen
	}
}

// ----------------------------- ADC (host) ------------------------------------

// FakeADC returns settable per-channel counts.
type FakeADC struct {
	mu     sync.Mutex
	counts [2]uint16
}

func (a *FakeADC) SetCounts(ch Channel, v uint16) {
	a.mu.Lock()
	a.counts[ch] = v
	a.mu.Unlock()
}

func (a *FakeADC) ReadRaw(ch Channel) uint16 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.counts[ch]
}

type realClock struct {
	boot time.Time
}

func (c *realClock) Sleep(d time.Duration) { time.Sleep(d) }
func (c *realClock) Now() time.Duration    { return time.Since(c.boot) }
