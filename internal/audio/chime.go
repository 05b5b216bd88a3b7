package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// tone is a sine oscillator with a linear attack and an exponential decay.
type tone struct {
	sr      beep.SampleRate
	freq    float64
	total   int
	attack  int
	pos     int
	decayTC float64 // Decay time constant in samples
}

func newTone(sr beep.SampleRate, freq float64, d time.Duration) *tone {
	total := sr.N(d)
	return &tone{
		sr:      sr,
		freq:    freq,
		total:   total,
		attack:  sr.N(5 * time.Millisecond),
		decayTC: float64(total) / 4,
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.pos >= t.total {
			return i, i > 0
		}

		sec := float64(t.pos) / float64(t.sr)
		env := math.Exp(-float64(t.pos) / t.decayTC)
		if t.pos < t.attack {
			env *= float64(t.pos) / float64(t.attack)
		}

		// Fundamental plus a soft octave for a bell-like timbre
		val := 0.6*math.Sin(2*math.Pi*t.freq*sec) + 0.2*math.Sin(4*math.Pi*t.freq*sec)
		val *= env * 0.5

		samples[i][0] = val
		samples[i][1] = val
		t.pos++
	}
	return len(samples), true
}

func (t *tone) Err() error {
	return nil
}

// chimeStreamer is the built-in milestone cue: two rising notes.
func chimeStreamer(sr beep.SampleRate) beep.Streamer {
	return beep.Seq(
		newTone(sr, 987.77, 90*time.Millisecond),  // B5
		newTone(sr, 1318.51, 220*time.Millisecond), // E6
	)
}
