package sim

import (
	"sync"
	"time"

	"tinysolder-go/hal"
	"tinysolder-go/station"
	"tinysolder-go/x/mathx"
)

// ADC implements hal.ADC. The POTI channel returns the simulated dial
// position; the TEMP channel converts the thermal model's tip temperature
// to counts through the calibration curve, unless an override stream is
// installed. TEMP conversions are timestamped for settle-window checks.
type ADC struct {
	clk *Clock
	cal station.Calibration

	mu        sync.Mutex
	poti      uint16
	therm     *Thermal
	tempFn    func() uint16 // overrides the thermal model when set
	noise     func() int16  // additive counts on TEMP, optional
	tempReads []time.Duration
}

func NewADC(clk *Clock, cal station.Calibration, therm *Thermal) *ADC {
	return &ADC{clk: clk, cal: cal, therm: therm}
}

// SetPoti moves the simulated dial (0..1023).
func (a *ADC) SetPoti(v uint16) {
	a.mu.Lock()
	a.poti = mathx.Clamp(v, 0, 1023)
	a.mu.Unlock()
}

// SetTempCounts pins the TEMP channel to a fixed count.
func (a *ADC) SetTempCounts(v uint16) {
	a.SetTempFunc(func() uint16 { return v })
}

// SetTempFunc installs a TEMP override stream; nil restores the thermal
// model.
func (a *ADC) SetTempFunc(fn func() uint16) {
	a.mu.Lock()
	a.tempFn = fn
	a.mu.Unlock()
}

// SetNoise installs an additive count noise source on TEMP.
func (a *ADC) SetNoise(fn func() int16) {
	a.mu.Lock()
	a.noise = fn
	a.mu.Unlock()
}

// TempReadTimes returns the virtual times of TEMP conversions. The 16
// conversions of one denoised sample share a timestamp and are recorded
// once.
func (a *ADC) TempReadTimes() []time.Duration {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]time.Duration, len(a.tempReads))
	copy(out, a.tempReads)
	return out
}

func (a *ADC) ReadRaw(ch hal.Channel) uint16 {
	now := a.clk.Now()
	a.mu.Lock()
	defer a.mu.Unlock()
	switch ch {
	case hal.ChanTemp:
		if n := len(a.tempReads); n == 0 || a.tempReads[n-1] != now {
			a.tempReads = append(a.tempReads, now)
		}
		var counts int32
		if a.tempFn != nil {
			counts = int32(a.tempFn())
		} else {
			counts = int32(a.cal.CountsForC(a.therm.Tip()))
		}
		if a.noise != nil {
			counts += int32(a.noise())
		}
		return uint16(mathx.Clamp(counts, 0, 1023))
	default:
		return a.poti
	}
}
