// Package sound generates the short tone that accompanies the card settling
// back after a drag.
package sound

import (
	"math"
	"time"

	"github.com/faiface/beep"
)

// SampleRate is used for the speaker and every generated tone.
const SampleRate beep.SampleRate = 44100

// ToneDuration is the length of the settle tone.
const ToneDuration = 180 * time.Millisecond

// Settle returns a streamer for a sine that glides from 660Hz down to 440Hz
// under an exponential decay, scaled by volume (0-1).
func Settle(sr beep.SampleRate, d time.Duration, volume float64) beep.Streamer {
	total := sr.N(d)
	pos := 0
	phase := 0.0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if pos >= total {
			return 0, false
		}
		n := 0
		for i := range samples {
			if pos >= total {
				break
			}
			t := float64(pos) / float64(total)
			freq := 660 - 220*t
			phase += 2 * math.Pi * freq / float64(sr)
			v := volume * math.Exp(-5*t) * math.Sin(phase)
			samples[i][0], samples[i][1] = v, v
			pos++
			n++
		}
		return n, true
	})
}
