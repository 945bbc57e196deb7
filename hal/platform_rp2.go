// hal/platform_rp2.go
//go:build rp2040 || rp2350

package hal

import (
	"machine"
	"time"
)

// -----------------------------------------------------------------------------
// Default board wiring on Raspberry Pi Pico / Pico 2 (RP2 family)
// -----------------------------------------------------------------------------

// Station wiring on RP2 boards.
const (
	pinHeater = 16 // GP16, gate drive
	pinLED    = 17 // GP17, bi-color LED via common resistor
	pinSwitch = 18 // GP18, ball switch to ground

	pinPoti = 26 // GP26 / ADC0
	pinTemp = 27 // GP27 / ADC1
)

// DefaultBoard wires the station's hardware contract on RP2 boards.
func DefaultBoard() Board {
	machine.InitADC()
	return Board{
		Heater: &rp2Pin{p: machine.Pin(pinHeater), n: pinHeater},
		LED:    &rp2Pin{p: machine.Pin(pinLED), n: pinLED},
		Switch: &rp2Pin{p: machine.Pin(pinSwitch), n: pinSwitch},
		ADC:    newRP2ADC(),
		Clock:  &realClock{boot: time.Now()},
	}
}

// ---- GPIO implementation (includes IRQ support) ----

type rp2Pin struct {
	p machine.Pin
	n int
}

func (r *rp2Pin) ConfigureInput(pull Pull) error {
	var mode machine.PinMode
	switch pull {
	case PullUp:
		mode = machine.PinInputPullup
	case PullDown:
		mode = machine.PinInputPulldown
	default:
		mode = machine.PinInput
	}
	r.p.Configure(machine.PinConfig{Mode: mode})
	return nil
}

func (r *rp2Pin) ConfigureOutput(initial bool) error {
	r.p.Configure(machine.PinConfig{Mode: machine.PinOutput})
	r.p.Set(initial)
	return nil
}

func (r *rp2Pin) Set(level bool) { r.p.Set(level) }
func (r *rp2Pin) Get() bool      { return r.p.Get() }

func (r *rp2Pin) Toggle() {
	if r.p.Get() {
		r.p.Low()
	} else {
		r.p.High()
	}
}

func (r *rp2Pin) Number() int { return r.n }

// IRQ support. The RP2 port provides SetInterrupt with PinChange flags.
func (r *rp2Pin) SetIRQ(edge Edge, handler func()) error {
	change := toPinChange(edge)
	return r.p.SetInterrupt(change, func(machine.Pin) { handler() })
}

func (r *rp2Pin) ClearIRQ() error {
	var zero machine.PinChange
	return r.p.SetInterrupt(zero, nil)
}

func toPinChange(e Edge) machine.PinChange {
	switch e {
	case EdgeRising:
		return machine.PinRising
	case EdgeFalling:
		return machine.PinFalling
	case EdgeBoth:
		return machine.PinToggle
	default:
		var zero machine.PinChange
		return zero
	}
}

// ---- ADC implementation ----

type rp2ADC struct {
	poti machine.ADC
	temp machine.ADC
}

func newRP2ADC() *rp2ADC {
	a := &rp2ADC{
		poti: machine.ADC{Pin: machine.Pin(pinPoti)},
		temp: machine.ADC{Pin: machine.Pin(pinTemp)},
	}
	a.poti.Configure(machine.ADCConfig{})
	a.temp.Configure(machine.ADCConfig{})
	return a
}

// ReadRaw returns one conversion scaled to the 10-bit count domain the
// calibration constants are expressed in. The RP2 port left-justifies its
// 12-bit result into 16 bits; >>6 yields 0..1023.
func (a *rp2ADC) ReadRaw(ch Channel) uint16 {
	switch ch {
	case ChanTemp:
		return a.temp.Get() >> 6
	default:
		return a.poti.Get() >> 6
	}
}

// ---- Clock ----

type realClock struct {
	boot time.Time
}

func (c *realClock) Sleep(d time.Duration) { time.Sleep(d) }
func (c *realClock) Now() time.Duration    { return time.Since(c.boot) }
