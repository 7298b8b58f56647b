package ebiten

import (
	"image/color"
	"math"
)

// Pulse period in ticks (two seconds at TPS).
const pulsePeriod = 2 * TPS

// pulseLevel oscillates smoothly between 0 and 1 with the tick counter.
func pulseLevel(tick int) float64 {
	phase := float64(tick%pulsePeriod) / pulsePeriod
	return (math.Sin(phase*2*math.Pi) + 1) / 2
}

// pulse scales c between 60% and 100% brightness. Alpha is kept.
func pulse(c color.Color, tick int) color.Color {
	brightness := 0.6 + 0.4*pulseLevel(tick)
	r, g, b, a := c.RGBA()
	return color.RGBA{
		R: uint8(float64(r>>8) * brightness),
		G: uint8(float64(g>>8) * brightness),
		B: uint8(float64(b>>8) * brightness),
		A: uint8(a >> 8),
	}
}
