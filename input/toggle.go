package input

import "time"

// Action names the effect of a keyboard shortcut.
type Action int

const (
	ActionNone Action = iota
	ActionReset
	ActionGravity
	ActionUI
	ActionWireframe
	ActionCloth
)

var actionNames = map[Action]string{
	ActionNone:      "none",
	ActionReset:     "reset",
	ActionGravity:   "gravity",
	ActionUI:        "ui",
	ActionWireframe: "wireframe",
	ActionCloth:     "cloth",
}

func (a Action) String() string {
	return actionNames[a]
}

// Toggle binds a key to an action. A toggle without Hold fires at most once
// per debounce window; a Hold toggle fires every time its key is reported.
type Toggle struct {
	Key    rune
	Action Action
	Hold   bool

	last time.Time
}

// Toggles is the shortcut table evaluated for every key press.
type Toggles struct {
	debounce time.Duration
	table    []Toggle
}

// NewToggles creates a shortcut table out of the given toggles.
func NewToggles(debounce time.Duration, table ...Toggle) *Toggles {
	return &Toggles{debounce: debounce, table: table}
}

// DefaultToggles returns the stock shortcuts:
// [R]eset, [G]ravity, [H]ide UI, [W]ireframe and [C]loth.
func DefaultToggles(debounce time.Duration) *Toggles {
	return NewToggles(debounce,
		Toggle{Key: 'r', Action: ActionReset},
		Toggle{Key: 'g', Action: ActionGravity},
		Toggle{Key: 'h', Action: ActionUI},
		Toggle{Key: 'w', Action: ActionWireframe},
		Toggle{Key: 'c', Action: ActionCloth},
	)
}

// Press evaluates the table for key reported down at now and returns the
// actions that fire.
func (t *Toggles) Press(key rune, now time.Time) []Action {
	var fired []Action

	for i := range t.table {
		tg := &t.table[i]
		if tg.Key != key && tg.Key != toLower(key) {
			continue
		}
		if !tg.Hold && !tg.last.IsZero() && now.Sub(tg.last) < t.debounce {
			continue
		}
		tg.last = now
		fired = append(fired, tg.Action)
	}
	return fired
}

func toLower(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}
