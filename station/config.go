package station

import (
	"time"

	"tinysolder-go/errcode"
)

// Calibration holds the four ADC counts that anchor the tip's
// temperature-to-count curve on the TEMP channel. The constants are
// established with an external tip thermometer (see cmd/boardtest) and
// baked in at build time.
type Calibration struct {
	SleepThreshold uint16 // keep-warm floor while sleeping
	CountAt150     uint16 // counts at 150 degC
	CountAt300     uint16 // counts at 300 degC
	CountAt450     uint16 // counts at 450 degC
}

// DefaultCalibration matches the reference board.
func DefaultCalibration() Calibration {
	return Calibration{
		SleepThreshold: 100,
		CountAt150:     118,
		CountAt300:     221,
		CountAt450:     324,
	}
}

// Validate enforces strict ordering of the anchors; everything downstream
// (setpoint mapping, keep-warm) assumes it.
func (c Calibration) Validate() error {
	if !(c.SleepThreshold < c.CountAt150 &&
		c.CountAt150 < c.CountAt300 &&
		c.CountAt300 < c.CountAt450) {
		return errcode.InvalidCalibration
	}
	if c.CountAt450 > 1023 {
		return errcode.InvalidCalibration
	}
	return nil
}

// Config is the station's compile-time configuration. There is no runtime
// configuration surface; change it and rebuild.
type Config struct {
	Calibration Calibration

	CycleTime  time.Duration // control cycle cadence
	SettleTime time.Duration // heater-off window before each TEMP sample

	SleepAfter uint32 // cycles without motion before sleep
	OffAfter   uint32 // cycles without motion before off

	ReadyBand uint16 // counts around setpoint that light the LED green
}

// Default returns the product configuration: 100 ms cycles, 900 us settle,
// sleep after 5 minutes, off after 10.
func Default() Config {
	return Config{
		Calibration: DefaultCalibration(),
		CycleTime:   100 * time.Millisecond,
		SettleTime:  900 * time.Microsecond,
		SleepAfter:  3000,
		OffAfter:    6000,
		ReadyBand:   10,
	}
}

func (c Config) Validate() error {
	if err := c.Calibration.Validate(); err != nil {
		return err
	}
	if c.CycleTime <= 0 || c.SettleTime <= 0 {
		return errcode.InvalidConfig
	}
	if c.SettleTime >= c.CycleTime {
		return errcode.InvalidConfig
	}
	if c.SleepAfter == 0 || c.OffAfter <= c.SleepAfter {
		return errcode.InvalidConfig
	}
	return nil
}
