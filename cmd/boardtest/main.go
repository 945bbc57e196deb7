// cmd/boardtest/main.go
//
// Calibration helper. Holds the heater off and streams raw 10-bit counts
// from both ADC channels twice a second, alongside the setpoint the dial
// currently maps to. Flash this instead of the product firmware, heat the
// tip with an external supply against a tip thermometer, and note the
// counts at 150/300/450 degC.
package main

import (
	"time"

	"tinysolder-go/hal"
	"tinysolder-go/station"
	"tinysolder-go/x/conv"
)

const streamPeriod = 500 * time.Millisecond

func main() {
	// Allow USB CDC to enumerate before we print.
	time.Sleep(2 * time.Second)
	println("boardtest: heater held off, streaming counts")
	initOutput()

	board := hal.DefaultBoard()
	_ = board.Heater.ConfigureOutput(false)
	_ = board.LED.ConfigureOutput(false)
	cal := station.DefaultCalibration()

	var line [64]byte
	var num [8]byte
	for {
		board.Heater.Set(false)

		poti := station.Sample(board.ADC, hal.ChanPoti)
		temp := station.Sample(board.ADC, hal.ChanTemp)
		sp := cal.Setpoint(poti)

		b := line[:0]
		b = append(b, "poti="...)
		b = append(b, conv.Utoa(num[:], uint64(poti))...)
		b = append(b, " temp="...)
		b = append(b, conv.Utoa(num[:], uint64(temp))...)
		b = append(b, " setpoint="...)
		b = append(b, conv.Utoa(num[:], uint64(sp))...)
		b = append(b, '\r', '\n')
		writeLine(b)

		board.Clock.Sleep(streamPeriod)
	}
}
