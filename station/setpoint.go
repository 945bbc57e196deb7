package station

// Setpoint converts a potentiometer reading (0..1023) into the ADC count
// the tip must reach on the TEMP channel. Two linear segments join at
// poti=512: the dial's lower half spans the common 150-300 degC working
// range for finer resolution, the upper half reaches 450 degC.
//
// The upper segment divides by 511, not 512, so that poti=1023 lands
// exactly on CountAt450. Calibration depends on this exact arithmetic.
func (c Calibration) Setpoint(poti uint16) uint16 {
	if poti < 512 {
		return uint16(uint32(poti)*uint32(c.CountAt300-c.CountAt150)/512 + uint32(c.CountAt150))
	}
	return uint16(uint32(poti-512)*uint32(c.CountAt450-c.CountAt300)/511 + uint32(c.CountAt300))
}

// CountsForC is the inverse conversion: a tip temperature in degC to the
// count the TEMP channel would report, following the same two calibration
// segments. Used by host-side simulation; never runs on the tip.
func (c Calibration) CountsForC(degC float32) int16 {
	if degC <= 300 {
		return int16(float32(c.CountAt150) + (degC-150)*float32(c.CountAt300-c.CountAt150)/150)
	}
	return int16(float32(c.CountAt300) + (degC-300)*float32(c.CountAt450-c.CountAt300)/150)
}
