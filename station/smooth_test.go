package station

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tinysolder-go/hal"
)

// Drives regulate directly against the host fakes to pin the EMA
// arithmetic and the bang-bang decision ordering.
func TestRegulateEMAAndDecision(t *testing.T) {
	board := hal.DefaultBoard()
	adc := board.ADC.(*hal.FakeADC)
	st, err := New(Default(), board, nil)
	require.NoError(t, err)
	require.NoError(t, board.Heater.ConfigureOutput(false))

	st.smooth = 0
	adc.SetCounts(hal.ChanTemp, 160)

	// smooth_{n+1} = (smooth_n*7 + 160) / 8, integer division.
	want := uint16(0)
	for i := 0; i < 6; i++ {
		on := st.regulate(200)
		want = (want*7 + 160) / 8
		assert.Equal(t, want, st.smooth, "iteration %d", i)
		assert.True(t, on, "below setpoint must heat")
		assert.True(t, board.Heater.Get())
	}
}

func TestRegulateStopsAtSetpoint(t *testing.T) {
	board := hal.DefaultBoard()
	adc := board.ADC.(*hal.FakeADC)
	st, err := New(Default(), board, nil)
	require.NoError(t, err)
	require.NoError(t, board.Heater.ConfigureOutput(true))

	st.smooth = 300
	adc.SetCounts(hal.ChanTemp, 300)

	on := st.regulate(300)
	assert.False(t, on, "smooth == setpoint holds the heater off")
	assert.False(t, board.Heater.Get())

	on = st.regulate(301)
	assert.True(t, on, "one count below setpoint heats")
}

// The measurement must happen with the heater deasserted even if the
// previous cycle left it on.
func TestRegulateDeassertsBeforeSampling(t *testing.T) {
	clk := hal.DefaultBoard().Clock
	heater := &hal.FakePin{}
	sawHeaterDuringRead := false
	adc := adcFunc(func(hal.Channel) uint16 {
		if heater.Get() {
			sawHeaterDuringRead = true
		}
		return 220
	})
	board := hal.Board{Heater: heater, LED: &hal.FakePin{}, Switch: &hal.FakePin{}, ADC: adc, Clock: clk}
	st, err := New(Default(), board, nil)
	require.NoError(t, err)
	heater.Set(true)

	st.regulate(1023)
	assert.False(t, sawHeaterDuringRead)
	assert.True(t, heater.Get(), "re-asserted after the measurement")
}

type adcFunc func(hal.Channel) uint16

func (f adcFunc) ReadRaw(ch hal.Channel) uint16 { return f(ch) }
