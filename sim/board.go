package sim

import (
	"time"

	"tinysolder-go/hal"
	"tinysolder-go/station"
)

// Pin numbers mirror the RP2 board layout so log output lines up.
const (
	pinHeater = 16
	pinLED    = 17
	pinSwitch = 18
)

// Board bundles a full virtual station: clock, pins, thermal model and
// ADC, ready to hand to the control loop through HAL().
type Board struct {
	Clock   *Clock
	Heater  *Pin
	LED     *Pin
	Switch  *Pin
	ADC     *ADC
	Thermal *Thermal
}

func NewBoard(cal station.Calibration) *Board {
	clk := NewClock()
	heater := NewPin(clk, pinHeater)
	therm := NewThermal(heater)
	clk.OnAdvance(therm.Step)
	return &Board{
		Clock:   clk,
		Heater:  heater,
		LED:     NewPin(clk, pinLED),
		Switch:  NewPin(clk, pinSwitch),
		ADC:     NewADC(clk, cal, therm),
		Thermal: therm,
	}
}

func (b *Board) HAL() hal.Board {
	return hal.Board{
		Heater: b.Heater,
		LED:    b.LED,
		Switch: b.Switch,
		ADC:    b.ADC,
		Clock:  b.Clock,
	}
}

// MotionAt schedules a ball-switch edge at an absolute virtual time.
func (b *Board) MotionAt(at time.Duration) {
	b.Clock.At(at, func() {
		b.Switch.Fire(!b.Switch.Get())
	})
}
