package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// cue frequencies in Hz
var cueFrequencies = map[string]float64{
	"pickup": 880,
	"switch": 660,
	"door":   330,
	"denied": 150,
}

const cueDuration = 120 * time.Millisecond

// cueTone synthesises a short decaying sine for a named cue.
func cueTone(name string) beep.Streamer {
	freq, ok := cueFrequencies[name]
	if !ok {
		freq = 440
	}
	return newTone(freq, cueDuration, sampleRate)
}

func newTone(freq float64, d time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(d)
	pos := 0
	phase := 0.0
	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		for i := range samples {
			if pos >= total {
				return i, i > 0
			}
			env := 1 - float64(pos)/float64(total)
			val := math.Sin(2*math.Pi*phase) * env * 0.4
			samples[i][0] = val
			samples[i][1] = val
			phase += freq / float64(rate)
			phase -= math.Floor(phase)
			pos++
		}
		return len(samples), true
	})
}
