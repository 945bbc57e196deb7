package main

import (
	"context"
	"time"

	"tinysolder-go/hal"
	"tinysolder-go/station"
)

func main() {
	// Allow USB CDC to enumerate before we print.
	time.Sleep(2 * time.Second)
	println("boot")

	st, err := station.New(station.Default(), hal.DefaultBoard(), nil)
	if err != nil {
		println("config:", err.Error())
		return
	}
	// Never returns on hardware.
	if err := st.Run(context.Background()); err != nil {
		println("run:", err.Error())
	}
}
