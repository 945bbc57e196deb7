package sim

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"tinysolder-go/errcode"
	"tinysolder-go/station"
)

// Duration decodes YAML scalars like "8s" or "500ms".
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	v, err := time.ParseDuration(value.Value)
	if err != nil {
		return &errcode.E{C: errcode.BadScenario, Op: "scenario.duration", Err: err}
	}
	*d = Duration(v)
	return nil
}

// ThermalParams overrides the thermal model defaults. Zero fields keep
// the model's own values.
type ThermalParams struct {
	AmbientC   float32  `yaml:"ambient_c"`
	HeaterMaxC float32  `yaml:"heater_max_c"`
	TauHeat    Duration `yaml:"tau_heat"`
	TauCool    Duration `yaml:"tau_cool"`
	StartTipC  float32  `yaml:"start_tip_c"`
}

// Event is one scripted input change, timed in control cycles.
type Event struct {
	AtCycle uint32  `yaml:"at_cycle"`
	Motion  bool    `yaml:"motion"`
	Poti    *uint16 `yaml:"poti"`
}

// Scenario is a scripted simulation run, loadable from YAML.
type Scenario struct {
	Name        string               `yaml:"name"`
	Poti        uint16               `yaml:"poti"`
	Cycles      uint32               `yaml:"cycles"`
	Calibration *station.Calibration `yaml:"calibration"`
	Thermal     *ThermalParams       `yaml:"thermal"`
	Events      []Event              `yaml:"events"`
}

// DefaultScenario is a short active run at mid dial.
func DefaultScenario() Scenario {
	return Scenario{Name: "default", Poti: 512, Cycles: 100}
}

func LoadScenario(data []byte) (Scenario, error) {
	sc := DefaultScenario()
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return Scenario{}, &errcode.E{C: errcode.BadScenario, Op: "scenario.load", Err: err}
	}
	if err := sc.Validate(); err != nil {
		return Scenario{}, err
	}
	return sc, nil
}

func LoadScenarioFile(path string) (Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Scenario{}, &errcode.E{C: errcode.BadScenario, Op: "scenario.read", Err: err}
	}
	return LoadScenario(data)
}

func (s Scenario) Validate() error {
	if s.Cycles == 0 {
		return errcode.BadScenario
	}
	if s.Poti > 1023 {
		return errcode.BadScenario
	}
	if s.Calibration != nil {
		if err := s.Calibration.Validate(); err != nil {
			return err
		}
	}
	for _, ev := range s.Events {
		if ev.AtCycle > s.Cycles {
			return errcode.BadScenario
		}
		if ev.Poti != nil && *ev.Poti > 1023 {
			return errcode.BadScenario
		}
	}
	return nil
}

// Stage applies the scenario's initial state and schedules its events on
// the board. cycleTime must match the running station's configuration so
// cycle-indexed events land in the right control cycle.
func (s Scenario) Stage(b *Board, cycleTime time.Duration) {
	b.ADC.SetPoti(s.Poti)
	if t := s.Thermal; t != nil {
		if t.AmbientC != 0 {
			b.Thermal.AmbientC = t.AmbientC
		}
		if t.HeaterMaxC != 0 {
			b.Thermal.HeaterMaxC = t.HeaterMaxC
		}
		if t.TauHeat != 0 {
			b.Thermal.TauHeat = time.Duration(t.TauHeat)
		}
		if t.TauCool != 0 {
			b.Thermal.TauCool = time.Duration(t.TauCool)
		}
		if t.StartTipC != 0 {
			b.Thermal.SetTip(t.StartTipC)
		}
	}
	for _, ev := range s.Events {
		ev := ev
		at := time.Duration(ev.AtCycle) * cycleTime
		if ev.Poti != nil {
			p := *ev.Poti
			b.Clock.At(at, func() { b.ADC.SetPoti(p) })
		}
		if ev.Motion {
			b.MotionAt(at)
		}
	}
}
