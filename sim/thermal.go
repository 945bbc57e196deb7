package sim

import (
	"sync"
	"time"

	"github.com/chewxy/math32"
)

// Thermal is a first-order lag model of the tip: while the heater line is
// driven the tip relaxes toward HeaterMaxC with time constant TauHeat,
// otherwise toward AmbientC with TauCool. Exact exponential integration,
// so step size does not affect the trajectory.
type Thermal struct {
	mu sync.Mutex

	tipC float32

	AmbientC   float32
	HeaterMaxC float32
	TauHeat    time.Duration
	TauCool    time.Duration

	heater interface{ Get() bool }
}

// NewThermal starts the tip at ambient.
func NewThermal(heater interface{ Get() bool }) *Thermal {
	return &Thermal{
		tipC:       25,
		AmbientC:   25,
		HeaterMaxC: 520,
		TauHeat:    8 * time.Second,
		TauCool:    40 * time.Second,
		heater:     heater,
	}
}

// Step integrates the model over dt. Registered as a clock advance
// callback; must not call back into the clock.
func (m *Thermal) Step(_ time.Duration, dt time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	target, tau := m.AmbientC, m.TauCool
	if m.heater.Get() {
		target, tau = m.HeaterMaxC, m.TauHeat
	}
	if tau <= 0 {
		m.tipC = target
		return
	}
	k := math32.Exp(-float32(dt) / float32(tau))
	m.tipC = target + (m.tipC-target)*k
}

// Tip returns the current tip temperature in degC.
func (m *Thermal) Tip() float32 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.tipC
}

// SetTip overrides the tip temperature (e.g. to start a scenario hot).
func (m *Thermal) SetTip(c float32) {
	m.mu.Lock()
	m.tipC = c
	m.mu.Unlock()
}
