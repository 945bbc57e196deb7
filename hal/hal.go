// Package hal abstracts the handful of hardware resources the station
// touches: three GPIO lines, a two-channel 10-bit ADC, and a clock.
// Platform bindings live in platform_*.go; the sim package provides a
// host implementation with virtual time.
package hal

import "time"

// ---- GPIO abstractions ----

type Pull uint8

const (
	PullNone Pull = iota
	PullUp
	PullDown
)

// Pin is one GPIO line. ConfigureInput doubles as the tri-state path: a
// pin reconfigured as input with PullNone floats, which is how the
// bi-color LED shows the off rendering against its external pulls.
type Pin interface {
	ConfigureInput(pull Pull) error
	ConfigureOutput(initial bool) error
	Set(level bool)
	Get() bool
	Toggle()
	Number() int
}

// Edge selection for IRQ.
type Edge uint8

const (
	EdgeNone Edge = iota
	EdgeRising
	EdgeFalling
	EdgeBoth
)

// IRQPin extends Pin with interrupts. Handlers run in ISR context: a
// handler must be a single short store, nothing more.
type IRQPin interface {
	Pin
	SetIRQ(edge Edge, handler func()) error
	ClearIRQ() error
}

// ---- ADC ----

// Channel selects one analog input.
type Channel uint8

const (
	ChanPoti Channel = iota // user dial, 0..Vcc
	ChanTemp                // conditioned thermocouple voltage
)

// ADC performs single conversions. ReadRaw returns one 10-bit count
// (0..1023); denoising by averaging is the caller's concern.
type ADC interface {
	ReadRaw(ch Channel) uint16
}

// ---- Clock ----

// Clock paces the control loop. Now is elapsed time since boot; under
// simulation both calls operate on virtual time.
type Clock interface {
	Sleep(d time.Duration)
	Now() time.Duration
}

// ---- Board ----

// Board bundles the station's hardware contract.
type Board struct {
	Heater Pin    // active-high MOSFET gate drive
	LED    Pin    // bi-color LED, low=red high=green float=both
	Switch IRQPin // ball-tilt switch to ground, internal pull-up
	ADC    ADC
	Clock  Clock
}
