package station

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tinysolder-go/hal"
)

// seqADC replays a fixed conversion sequence on every channel.
type seqADC struct {
	seq []uint16
	i   int
}

func (a *seqADC) ReadRaw(hal.Channel) uint16 {
	v := a.seq[a.i%len(a.seq)]
	a.i++
	return v
}

func TestSampleAveragesSixteen(t *testing.T) {
	adc := &hal.FakeADC{}
	adc.SetCounts(hal.ChanTemp, 800)
	assert.Equal(t, uint16(800), Sample(adc, hal.ChanTemp))
}

func TestSampleTruncatesAverage(t *testing.T) {
	// Eight reads of 100 and eight of 101 sum to 1608; 1608>>4 = 100.
	adc := &seqADC{seq: []uint16{100, 101}}
	assert.Equal(t, uint16(100), Sample(adc, hal.ChanTemp))
}

func TestSampleRejectsSingleOutlier(t *testing.T) {
	// One spiked conversion moves the average by spike/16, not by spike.
	adc := &seqADC{seq: []uint16{200, 200, 200, 200, 200, 200, 200, 1000,
		200, 200, 200, 200, 200, 200, 200, 200}}
	assert.Equal(t, uint16(250), Sample(adc, hal.ChanTemp))
}

func TestSampleFullScaleNoOverflow(t *testing.T) {
	adc := &hal.FakeADC{}
	adc.SetCounts(hal.ChanPoti, 1023)
	assert.Equal(t, uint16(1023), Sample(adc, hal.ChanPoti))
}
