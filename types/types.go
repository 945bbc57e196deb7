package types

// ------------------------
// Operating modes
// ------------------------

// Mode is derived from the handle timer; the station never stores it
// separately from the timer value.
type Mode uint8

const (
	ModeActive Mode = iota
	ModeSleep
	ModeOff
)

func (m Mode) String() string {
	switch m {
	case ModeActive:
		return "active"
	case ModeSleep:
		return "sleep"
	case ModeOff:
		return "off"
	default:
		return "unknown"
	}
}

// ------------------------
// LED renderings
// ------------------------

// LEDState is the logical rendering of the bi-color LED. Heating drives the
// pin low (red), Ready high (green), Blink alternates each cycle, Both
// tri-states the pin so the external pulls light both halves.
type LEDState uint8

const (
	LEDHeating LEDState = iota
	LEDReady
	LEDBlink
	LEDBoth
)

func (s LEDState) String() string {
	switch s {
	case LEDHeating:
		return "red"
	case LEDReady:
		return "green"
	case LEDBlink:
		return "blink"
	case LEDBoth:
		return "both"
	default:
		return "unknown"
	}
}

// ------------------------
// Telemetry payloads (in-process bus)
// ------------------------

// StationState is the retained per-cycle snapshot published on
// station/state. TS is milliseconds since boot on the station's clock
// (virtual milliseconds under simulation).
type StationState struct {
	Mode     Mode
	Cycle    uint32
	Smoothed uint16
	Setpoint uint16
	Poti     uint16
	Heater   bool
	LED      LEDState
	TS       int64
}

// ModeChange is published retained on station/mode whenever the mode
// transition fires, including the cycle index it fired on.
type ModeChange struct {
	From  Mode
	To    Mode
	Cycle uint32
	TS    int64
}
