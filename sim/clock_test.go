package sim

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClockSleepAdvances(t *testing.T) {
	clk := NewClock()
	assert.Equal(t, time.Duration(0), clk.Now())
	clk.Sleep(100 * time.Millisecond)
	assert.Equal(t, 100*time.Millisecond, clk.Now())
	clk.Sleep(0)
	assert.Equal(t, 100*time.Millisecond, clk.Now())
}

func TestClockEventsRunInTimeOrder(t *testing.T) {
	clk := NewClock()
	var order []string
	clk.At(30*time.Millisecond, func() { order = append(order, "c") })
	clk.At(10*time.Millisecond, func() { order = append(order, "a") })
	clk.At(20*time.Millisecond, func() { order = append(order, "b") })

	clk.Sleep(time.Second)
	assert.Equal(t, []string{"a", "b", "c"}, order)
}

func TestClockEventSeesItsOwnTime(t *testing.T) {
	clk := NewClock()
	var at time.Duration
	clk.At(40*time.Millisecond, func() { at = clk.Now() })
	clk.Sleep(time.Second)
	assert.Equal(t, 40*time.Millisecond, at)
	assert.Equal(t, time.Second, clk.Now())
}

func TestClockEventMaySchedule(t *testing.T) {
	clk := NewClock()
	var fired []time.Duration
	clk.At(10*time.Millisecond, func() {
		fired = append(fired, clk.Now())
		clk.After(5*time.Millisecond, func() {
			fired = append(fired, clk.Now())
		})
	})
	clk.Sleep(100 * time.Millisecond)
	require.Len(t, fired, 2)
	assert.Equal(t, 10*time.Millisecond, fired[0])
	assert.Equal(t, 15*time.Millisecond, fired[1])
}

func TestClockFutureEventsStayPending(t *testing.T) {
	clk := NewClock()
	fired := false
	clk.At(time.Second, func() { fired = true })
	clk.Sleep(999 * time.Millisecond)
	assert.False(t, fired)
	clk.Sleep(time.Millisecond)
	assert.True(t, fired)
}

func TestClockAdvanceCallbacksCoverSleptTime(t *testing.T) {
	clk := NewClock()
	var total time.Duration
	clk.OnAdvance(func(_ time.Duration, dt time.Duration) { total += dt })
	clk.At(7*time.Millisecond, func() {}) // forces a split advance
	clk.Sleep(20 * time.Millisecond)
	assert.Equal(t, 20*time.Millisecond, total)
}
