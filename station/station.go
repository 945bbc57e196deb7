// Package station implements the closed-loop control core of a T12
// soldering station: denoised sampling, setpoint mapping, bang-bang heater
// control with EMA smoothing, and the active/sleep/off activity machine.
package station

import (
	"context"
	"sync/atomic"

	"tinysolder-go/bus"
	"tinysolder-go/hal"
	"tinysolder-go/types"
	"tinysolder-go/x/mathx"
)

// Telemetry topics. State is republished every cycle; mode only on
// transitions. Both retained so late subscribers see the current picture.
var (
	TopicState = bus.Topic{"station", "state"}
	TopicMode  = bus.Topic{"station", "mode"}
)

// Station is the single foreground control loop plus the one datum shared
// with ISR context.
type Station struct {
	cfg   Config
	board hal.Board
	conn  *bus.Connection // nil disables telemetry

	// handle counts control cycles since the last motion edge. The motion
	// ISR performs a single atomic store of zero; the foreground increments
	// with compare-and-swap so a concurrent motion edge is never overwritten
	// (the Go analogue of an interrupts-off read-modify-write).
	handle atomic.Uint32

	// Foreground-only state.
	smooth   uint16 // EMA of TEMP counts, 7/8 history weight
	cycle    uint32
	mode     types.Mode
	floating bool // LED pin currently tri-stated
}

// New validates cfg and binds the station to a board. conn may be nil.
func New(cfg Config, board hal.Board, conn *bus.Connection) (*Station, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Station{cfg: cfg, board: board, conn: conn, mode: types.ModeActive}, nil
}

// Smoothed returns the current EMA value. Stale outside active mode.
func (s *Station) Smoothed() uint16 { return s.smooth }

// motionISR is the motion edge handler. ISR context: a single store and
// nothing else.
func (s *Station) motionISR() { s.handle.Store(0) }

// Run executes the control loop until ctx is cancelled. On an MCU pass
// context.Background(); cancellation exists for the simulator and tests.
func (s *Station) Run(ctx context.Context) error {
	b := s.board
	if err := b.Heater.ConfigureOutput(false); err != nil {
		return err
	}
	if err := b.LED.ConfigureOutput(false); err != nil {
		return err
	}
	if err := b.Switch.ConfigureInput(hal.PullUp); err != nil {
		return err
	}
	// Either edge of the ball switch counts as motion. Registered once;
	// never cleared by application logic while running.
	if err := b.Switch.SetIRQ(hal.EdgeBoth, s.motionISR); err != nil {
		return err
	}
	defer func() {
		_ = b.Switch.ClearIRQ()
		b.Heater.Set(false)
	}()

	// Seed the EMA so the first cycles regulate against a real reading
	// instead of converging from zero.
	s.smooth = Sample(b.ADC, hal.ChanTemp)

	for ctx.Err() == nil {
		poti := Sample(b.ADC, hal.ChanPoti)
		setpoint := s.cfg.Calibration.Setpoint(poti)

		heaterOn := s.regulate(setpoint)
		led := s.renderActive(setpoint)

		s.setMode(types.ModeActive)
		s.publishState(poti, setpoint, heaterOn, led)

		// The boundary cycle with handle == SleepAfter is still active;
		// sleep starts one cycle later. Compare-and-swap so a motion edge
		// between load and store wins and the counter stays at zero.
		h := s.handle.Load()
		if h > s.cfg.SleepAfter {
			s.idle(ctx)
			continue // idle paced its own cycles
		}
		s.handle.CompareAndSwap(h, h+1)

		b.Clock.Sleep(s.cfg.CycleTime)
		s.cycle++
	}
	return nil
}

// regulate runs one bang-bang measurement cycle: force the heater off, let
// the analog front-end settle, take a denoised TEMP reading, fold it into
// the EMA, then assert the heater only if the smoothed value is still below
// setpoint. Off-by-default on entry keeps a missed assignment fail-safe.
func (s *Station) regulate(setpoint uint16) bool {
	b := s.board
	b.Heater.Set(false)
	b.Clock.Sleep(s.cfg.SettleTime)
	t := Sample(b.ADC, hal.ChanTemp)
	s.smooth = (s.smooth*7 + t) / 8
	if s.smooth < setpoint {
		b.Heater.Set(true)
		return true
	}
	return false
}

// renderActive drives the LED for active mode: green when the smoothed
// temperature is within the ready band of the setpoint, red while heating
// or overshooting.
func (s *Station) renderActive(setpoint uint16) types.LEDState {
	if mathx.AbsDiff(s.smooth, setpoint) <= s.cfg.ReadyBand {
		s.board.LED.Set(true)
		return types.LEDReady
	}
	s.board.LED.Set(false)
	return types.LEDHeating
}

// idle is the nested sleep/off loop. It runs until the motion ISR resets
// the handle timer. Sleep cycles keep measuring with the same
// deassert-settle-sample discipline and only assert the heater below the
// keep-warm threshold; once the timer reaches OffAfter the loop stops
// measuring and merely waits with the LED tri-stated.
func (s *Station) idle(ctx context.Context) {
	b := s.board
	for ctx.Err() == nil && s.handle.Load() != 0 {
		b.Heater.Set(false)
		h := s.handle.Load()
		if h != 0 && h < s.cfg.OffAfter {
			s.handle.CompareAndSwap(h, h+1)
			b.Clock.Sleep(s.cfg.SettleTime)
			temp := Sample(b.ADC, hal.ChanTemp)
			heaterOn := temp < s.cfg.Calibration.SleepThreshold
			if heaterOn {
				b.Heater.Set(true)
			}
			b.LED.Toggle()
			s.setMode(types.ModeSleep)
			s.publishState(0, 0, heaterOn, types.LEDBlink)
		} else if h != 0 {
			if !s.floating {
				// Tri-state the LED pin; the external pulls light both
				// halves.
				_ = b.LED.ConfigureInput(hal.PullNone)
				s.floating = true
			}
			s.setMode(types.ModeOff)
			s.publishState(0, 0, false, types.LEDBoth)
		}
		b.Clock.Sleep(s.cfg.CycleTime)
		s.cycle++
	}
	if s.floating {
		_ = b.LED.ConfigureOutput(false)
		s.floating = false
	}
}

func (s *Station) setMode(m types.Mode) {
	if m == s.mode {
		return
	}
	from := s.mode
	s.mode = m
	if s.conn == nil {
		return
	}
	s.conn.Publish(s.conn.NewMessage(TopicMode, types.ModeChange{
		From:  from,
		To:    m,
		Cycle: s.cycle,
		TS:    s.board.Clock.Now().Milliseconds(),
	}, true))
}

func (s *Station) publishState(poti, setpoint uint16, heater bool, led types.LEDState) {
	if s.conn == nil {
		return
	}
	s.conn.Publish(s.conn.NewMessage(TopicState, types.StationState{
		Mode:     s.mode,
		Cycle:    s.cycle,
		Smoothed: s.smooth,
		Setpoint: setpoint,
		Poti:     poti,
		Heater:   heater,
		LED:      led,
		TS:       s.board.Clock.Now().Milliseconds(),
	}, true))
}
