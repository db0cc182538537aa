package input

import "github.com/gdamore/tcell/v2"

// Machine parses tcell events into intents
// It remembers the last pointer position so keyboard use can aim at the cursor,
// and the held buttons so a drag reports one press instead of a stream
type Machine struct {
	keyTable  *KeyTable
	cursorX   int
	cursorY   int
	hasCursor bool
	buttons   tcell.ButtonMask
}

// NewMachine creates a machine with the default bindings for slots inventory slots
func NewMachine(slots int) *Machine {
	return &Machine{keyTable: DefaultKeyTable(slots)}
}

// Cursor returns the last known pointer position
func (m *Machine) Cursor() (x, y int, ok bool) {
	return m.cursorX, m.cursorY, m.hasCursor
}

// Translate maps one event to an intent; unbound events yield IntentNone
func (m *Machine) Translate(ev tcell.Event) Intent {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return m.key(ev)
	case *tcell.EventMouse:
		return m.mouse(ev)
	case *tcell.EventResize:
		return Intent{Type: IntentResize}
	}
	return Intent{}
}

func (m *Machine) key(ev *tcell.EventKey) Intent {
	var entry KeyEntry
	var ok bool
	if ev.Key() == tcell.KeyRune {
		entry, ok = m.keyTable.Runes[ev.Rune()]
	} else {
		entry, ok = m.keyTable.SpecialKeys[ev.Key()]
	}
	if !ok {
		return Intent{}
	}
	in := Intent{Type: entry.IntentType, Slot: entry.Slot}
	if in.Type == IntentUse {
		in.X, in.Y, in.HasPos = m.Cursor()
	}
	return in
}

func (m *Machine) mouse(ev *tcell.EventMouse) Intent {
	x, y := ev.Position()
	m.cursorX, m.cursorY, m.hasCursor = x, y, true

	held := ev.Buttons() & (tcell.ButtonPrimary | tcell.ButtonSecondary)
	pressed := held &^ m.buttons
	m.buttons = held

	switch {
	case pressed&tcell.ButtonPrimary != 0:
		return Intent{Type: IntentMove, X: x, Y: y, HasPos: true}
	case pressed&tcell.ButtonSecondary != 0:
		return Intent{Type: IntentUse, X: x, Y: y, HasPos: true}
	}
	return Intent{Type: IntentPointer, X: x, Y: y, HasPos: true}
}
