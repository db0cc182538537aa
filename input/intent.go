// Package input turns terminal key and mouse events into game intents
package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit   // q, Q, Ctrl+C
	IntentResize // Terminal resize event

	// Session control
	IntentTogglePause // p, P
	IntentRestart     // r, R

	// Play
	IntentMove       // Left click
	IntentUse        // Right click, Space
	IntentSelectSlot // 1-5
	IntentPointer    // Mouse motion without a new press
)

// Intent is one parsed action
// X and Y are screen coordinates and only meaningful when HasPos is set
type Intent struct {
	Type   IntentType
	X, Y   int
	HasPos bool
	Slot   int
}

func (t IntentType) String() string {
	switch t {
	case IntentQuit:
		return "quit"
	case IntentResize:
		return "resize"
	case IntentTogglePause:
		return "pause"
	case IntentRestart:
		return "restart"
	case IntentMove:
		return "move"
	case IntentUse:
		return "use"
	case IntentSelectSlot:
		return "select"
	case IntentPointer:
		return "pointer"
	default:
		return "none"
	}
}
