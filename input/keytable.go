package input

import "github.com/gdamore/tcell/v2"

// KeyEntry binds a key to an intent; Slot is set for slot selection keys
type KeyEntry struct {
	IntentType IntentType
	Slot       int
}

// KeyTable maps keys to intents
type KeyTable struct {
	// Special keys (Ctrl+*, function keys)
	SpecialKeys map[tcell.Key]KeyEntry

	// Printable bindings
	Runes map[rune]KeyEntry
}

// DefaultKeyTable returns the default bindings for an inventory of slots entries
// Slot keys run from 1 up to at most 9
func DefaultKeyTable(slots int) *KeyTable {
	kt := &KeyTable{
		SpecialKeys: map[tcell.Key]KeyEntry{
			tcell.KeyCtrlC: {IntentType: IntentQuit},
		},
		Runes: map[rune]KeyEntry{
			'q': {IntentType: IntentQuit},
			'Q': {IntentType: IntentQuit},
			'p': {IntentType: IntentTogglePause},
			'P': {IntentType: IntentTogglePause},
			'r': {IntentType: IntentRestart},
			'R': {IntentType: IntentRestart},
			' ': {IntentType: IntentUse},
		},
	}
	for i := 0; i < min(slots, 9); i++ {
		kt.Runes[rune('1'+i)] = KeyEntry{IntentType: IntentSelectSlot, Slot: i}
	}
	return kt
}
