package station

import "tinysolder-go/hal"

// sampleRounds conversions are averaged per reading. 16 * 1023 fits a
// uint16, so the accumulator never widens.
const sampleRounds = 16

// Sample produces one denoised 10-bit reading from the selected channel by
// averaging 16 successive conversions. On AVR-class parts the CPU idles in
// ADC-noise-reduction sleep during each conversion; the hal binding owns
// that detail. The caller owns any pre-sample settling delay.
func Sample(adc hal.ADC, ch hal.Channel) uint16 {
	var sum uint16
	for i := 0; i < sampleRounds; i++ {
		sum += adc.ReadRaw(ch)
	}
	return sum >> 4
}
