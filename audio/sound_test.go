package audio

import (
	"math"
	"testing"
)

func TestSoundManagerWithoutInitialization(t *testing.T) {
	sm := NewSoundManager()

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("sound operations panicked without initialization: %v", r)
		}
	}()

	sm.PlayTear(3)
	sm.Cleanup()
}

func TestSoundManagerInitialization(t *testing.T) {
	sm := NewSoundManager()

	// No audio device in CI is fine, the simulation runs silent.
	if err := sm.Initialize(); err != nil {
		t.Logf("sound initialization failed (expected without an audio device): %v", err)
		return
	}
	if err := sm.Initialize(); err != nil {
		t.Errorf("second initialization should be a no-op, got %v", err)
	}
	sm.PlayTear(1)
	sm.Cleanup()
}

func TestSnapIsFiniteAndDecays(t *testing.T) {
	s := NewSnap(sampleRate, 2)

	var (
		total      int
		first, end float64
		buf        = make([][2]float64, 512)
	)
	for {
		n, ok := s.Stream(buf)
		if total == 0 && n > 0 {
			for _, smp := range buf[:n/4] {
				first = math.Max(first, math.Abs(smp[0]))
			}
		}
		if n > 0 {
			end = 0
			for _, smp := range buf[n/2 : n] {
				end = math.Max(end, math.Abs(smp[0]))
			}
		}
		total += n
		if !ok {
			break
		}
	}

	if want := sampleRate.N(snapLength); total != want {
		t.Fatalf("snap length = %d samples, want %d", total, want)
	}
	if end >= first {
		t.Fatalf("snap does not decay: start peak %v, end peak %v", first, end)
	}
}

func TestSnapPitchFloor(t *testing.T) {
	s := NewSnap(sampleRate, 10000)
	buf := make([][2]float64, 16)
	if n, ok := s.Stream(buf); n != 16 || !ok {
		t.Fatalf("Stream = %d, %v", n, ok)
	}
}
