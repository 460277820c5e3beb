package input

import (
	"testing"
	"time"
)

func TestPressFiresMatchingAction(t *testing.T) {
	tg := DefaultToggles(200 * time.Millisecond)
	now := time.Unix(100, 0)

	got := tg.Press('g', now)
	if len(got) != 1 || got[0] != ActionGravity {
		t.Fatalf("Press('g') = %v, want [gravity]", got)
	}
	if got := tg.Press('x', now); len(got) != 0 {
		t.Fatalf("Press('x') = %v, want nothing", got)
	}
}

func TestPressIsCaseInsensitive(t *testing.T) {
	tg := DefaultToggles(200 * time.Millisecond)
	got := tg.Press('W', time.Unix(100, 0))
	if len(got) != 1 || got[0] != ActionWireframe {
		t.Fatalf("Press('W') = %v, want [wireframe]", got)
	}
}

func TestPressDebounces(t *testing.T) {
	tg := DefaultToggles(200 * time.Millisecond)
	start := time.Unix(100, 0)

	presses := []struct {
		after time.Duration
		fires bool
	}{
		{0, true},
		{50 * time.Millisecond, false},
		{199 * time.Millisecond, false},
		{200 * time.Millisecond, true},
		{250 * time.Millisecond, false},
		{500 * time.Millisecond, true},
	}
	for i, p := range presses {
		got := tg.Press('r', start.Add(p.after))
		if (len(got) == 1) != p.fires {
			t.Fatalf("press %d after %v fired = %v, want %v", i, p.after, got, p.fires)
		}
	}
}

func TestHoldToggleFiresEveryPress(t *testing.T) {
	tg := NewToggles(time.Second, Toggle{Key: 'x', Action: ActionCloth, Hold: true})
	now := time.Unix(100, 0)
	for i := 0; i < 5; i++ {
		if got := tg.Press('x', now); len(got) != 1 {
			t.Fatalf("hold press %d fired %v", i, got)
		}
	}
}

func TestActionString(t *testing.T) {
	if ActionGravity.String() != "gravity" || ActionReset.String() != "reset" {
		t.Fatalf("unexpected action names")
	}
}
