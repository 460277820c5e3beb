package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(48000)

	// snapLength is the duration of the sound played when the cloth tears.
	snapLength = 80 * time.Millisecond
)

// SoundManager plays the cloth feedback sounds. Every method is safe to call
// before Initialize, or after it failed; the sounds are then dropped.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewSoundManager creates a new sound manager
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
	}
}

// Initialize sets up the speaker. Machines without an audio device return an
// error here; the simulation runs silent in that case.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}
	speaker.Play(sm.mixer)
	sm.initialized = true

	return nil
}

// Cleanup silences everything and releases the speaker.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Clear()
	sm.mixer.Clear()
	speaker.Close()
	sm.initialized = false
}

// PlayTear plays a snap whose pitch drops with the number of links torn.
func (sm *SoundManager) PlayTear(links int) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || links <= 0 {
		return
	}
	speaker.Lock()
	sm.mixer.Add(NewSnap(sampleRate, links))
	speaker.Unlock()
}

// NewSnap returns the finite snap streamer played for a tear of the given size.
func NewSnap(sr beep.SampleRate, links int) beep.Streamer {
	freq := 1400 / math.Sqrt(float64(links))
	if freq < 180 {
		freq = 180
	}
	return beep.Take(sr.N(snapLength), &SnapGenerator{sr: sr, freq: freq})
}

// SnapGenerator generates a short plucked tone with an exponential decay.
type SnapGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

func (g *SnapGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		sample := 0.6*math.Sin(2*math.Pi*g.freq*t) + 0.25*math.Sin(2*math.Pi*g.freq*2.7*t)
		sample *= math.Exp(-t*40) * 0.3

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *SnapGenerator) Err() error {
	return nil
}
