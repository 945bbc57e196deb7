// cmd/soldersim/main.go
//
// Host-side simulator. Runs the production control loop against the sim
// board (virtual time, first-order thermal model) and logs the telemetry
// the firmware publishes. Scenarios script the dial and the motion switch.
package main

import (
	"context"
	"flag"
	"log"
	"time"

	"tinysolder-go/bus"
	"tinysolder-go/sim"
	"tinysolder-go/station"
	"tinysolder-go/types"
)

func main() {
	scPath := flag.String("scenario", "", "YAML scenario file (default: built-in 100-cycle run)")
	logEvery := flag.Uint("log-every", 10, "log a state line every N cycles, 0 disables")
	flag.Parse()
	log.SetFlags(0)

	sc := sim.DefaultScenario()
	if *scPath != "" {
		var err error
		sc, err = sim.LoadScenarioFile(*scPath)
		if err != nil {
			log.Fatalf("scenario: %v", err)
		}
	}

	cfg := station.Default()
	if sc.Calibration != nil {
		cfg.Calibration = *sc.Calibration
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	board := sim.NewBoard(cfg.Calibration)
	sc.Stage(board, cfg.CycleTime)

	bu := bus.NewBus(64)
	probe := bu.NewConnection("probe")
	states := probe.Subscribe(station.TopicState)
	modes := probe.Subscribe(station.TopicMode)
	done := make(chan struct{})
	go watch(states, modes, *logEvery, done)

	st, err := station.New(cfg, board.HAL(), bu.NewConnection("station"))
	if err != nil {
		log.Fatalf("station: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	board.Clock.At(time.Duration(sc.Cycles)*cfg.CycleTime, cancel)

	log.Printf("scenario %q: %d cycles, poti %d", sc.Name, sc.Cycles, sc.Poti)
	if err := st.Run(ctx); err != nil {
		log.Fatalf("run: %v", err)
	}

	probe.Disconnect()
	<-done

	log.Printf("done: virtual %v, tip %.1f degC", board.Clock.Now(), board.Thermal.Tip())
}

// watch logs telemetry until both subscriptions close.
func watch(states, modes *bus.Subscription, every uint, done chan<- struct{}) {
	defer close(done)
	stCh, mdCh := states.Channel(), modes.Channel()
	for stCh != nil || mdCh != nil {
		select {
		case m, ok := <-stCh:
			if !ok {
				stCh = nil
				continue
			}
			s := m.Payload.(types.StationState)
			if every != 0 && s.Cycle%uint32(every) == 0 {
				log.Printf("%8dms cycle=%-5d mode=%-6s poti=%-4d setpoint=%-3d smoothed=%-3d heater=%-5v led=%s",
					s.TS, s.Cycle, s.Mode, s.Poti, s.Setpoint, s.Smoothed, s.Heater, s.LED)
			}
		case m, ok := <-mdCh:
			if !ok {
				mdCh = nil
				continue
			}
			c := m.Payload.(types.ModeChange)
			log.Printf("%8dms mode %s -> %s (cycle %d)", c.TS, c.From, c.To, c.Cycle)
		}
	}
}
