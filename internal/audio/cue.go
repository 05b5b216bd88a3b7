// Package audio plays the milestone cue through the system speaker.
// The cue behaves like a single audio element: every Play seeks back to
// the first sample, cutting off a cue that is still sounding.
package audio

import (
	"errors"
	"fmt"
	"math"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

const (
	sampleRate = beep.SampleRate(44100)
)

// ErrEmptyCue is returned when a cue file decodes to no samples.
var ErrEmptyCue = errors.New("audio: cue has no samples")

// Output is the sound device. The speaker package implements it in
// production; tests substitute a recorder.
type Output interface {
	Init(sr beep.SampleRate, bufferSize int) error
	Play(s beep.Streamer)
	Lock()
	Unlock()
}

type speakerOutput struct{}

func (speakerOutput) Init(sr beep.SampleRate, bufferSize int) error {
	return speaker.Init(sr, bufferSize)
}

func (speakerOutput) Play(s beep.Streamer) { speaker.Play(s) }
func (speakerOutput) Lock()                { speaker.Lock() }
func (speakerOutput) Unlock()              { speaker.Unlock() }

// Silent is a cue that plays nothing.
type Silent struct{}

// Play does nothing.
func (Silent) Play() error { return nil }

// Chime is a buffered cue played through an Output. The device is opened
// on the first Play.
type Chime struct {
	mu          sync.Mutex
	out         Output
	src         beep.StreamSeeker
	voice       *voice
	initialized bool
	initErr     error
}

// New returns the milestone cue for cfg. A disabled or broken cue falls back
// to Silent; the failure is logged, never returned.
func New(cfg config.AudioConfig, logger *log.Logger) core.Cue {
	if !cfg.Enabled {
		return Silent{}
	}
	c, err := NewChime(cfg, speakerOutput{})
	if err != nil {
		logger.Warn("milestone cue disabled", "err", err)
		return Silent{}
	}
	return c
}

// NewChime renders the cue into memory. With cfg.File set the WAV file is
// decoded, otherwise a two-note chime is generated.
func NewChime(cfg config.AudioConfig, out Output) (*Chime, error) {
	format := beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2}
	buf := beep.NewBuffer(format)

	if cfg.File != "" {
		if err := appendWAV(buf, cfg.File); err != nil {
			return nil, err
		}
	} else {
		buf.Append(chimeStreamer(sampleRate))
	}

	if buf.Len() == 0 {
		return nil, ErrEmptyCue
	}

	src := buf.Streamer(0, buf.Len())
	return &Chime{
		out:   out,
		src:   src,
		voice: &voice{streamer: newVolume(src, cfg.Volume)},
	}, nil
}

// appendWAV decodes path into buf, resampling to the buffer's rate.
func appendWAV(buf *beep.Buffer, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("audio: cannot open %s: %w", path, err)
	}

	streamer, format, err := wav.Decode(f)
	if err != nil {
		f.Close()
		return fmt.Errorf("audio: cannot decode %s: %w", path, err)
	}
	defer streamer.Close()

	var s beep.Streamer = streamer
	if format.SampleRate != buf.Format().SampleRate {
		s = beep.Resample(4, format.SampleRate, buf.Format().SampleRate, streamer)
	}
	buf.Append(s)
	return nil
}

// Play restarts the cue from its first sample.
func (c *Chime) Play() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		c.initialized = true
		c.initErr = c.out.Init(sampleRate, sampleRate.N(time.Millisecond*100))
		if c.initErr == nil {
			c.out.Play(c.voice)
		}
	}
	if c.initErr != nil {
		return fmt.Errorf("audio: speaker unavailable: %w", c.initErr)
	}

	c.out.Lock()
	defer c.out.Unlock()
	if err := c.src.Seek(0); err != nil {
		return fmt.Errorf("audio: cannot rewind cue: %w", err)
	}
	c.voice.playing = true
	return nil
}

// Len returns the cue length in samples.
func (c *Chime) Len() int {
	return c.src.Len()
}

// voice streams the cue while playing and silence otherwise. It never
// drains, so the speaker keeps it for the life of the process.
type voice struct {
	streamer beep.Streamer
	playing  bool
}

func (v *voice) Stream(samples [][2]float64) (n int, ok bool) {
	filled := 0
	if v.playing {
		filled, ok = v.streamer.Stream(samples)
		if !ok || filled < len(samples) {
			v.playing = false
		}
	}
	for i := filled; i < len(samples); i++ {
		samples[i] = [2]float64{}
	}
	return len(samples), true
}

func (v *voice) Err() error {
	return nil
}

// newVolume scales s by a linear volume in [0, 1].
// math.Log2(0) is -Inf, so zero volume is silenced instead.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
