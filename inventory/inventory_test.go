package inventory

import (
	"errors"
	"testing"

	"github.com/lixenwraith/mantou/engine"
)

func hook(n int) Item {
	return Item{Kind: engine.KindWallHook, Name: "Hook", Count: n, Color: HookColor}
}

// TestAddItemMerges verifies same-kind pickups stack in one slot
func TestAddItemMerges(t *testing.T) {
	inv := New(5)
	if err := inv.AddItem(hook(1)); err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	if err := inv.AddItem(hook(2)); err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	if got := inv.Count(engine.KindWallHook); got != 3 {
		t.Errorf("Expected 3 hooks, got %d", got)
	}
	if _, ok := inv.Slot(1); ok {
		t.Error("Expected second slot to stay empty")
	}
}

// TestAddItemFull verifies a full inventory rejects a new kind and stays unchanged
func TestAddItemFull(t *testing.T) {
	inv := New(2)
	_ = inv.AddItem(hook(1))
	_ = inv.AddItem(Item{Kind: engine.KindMysteryBox, Name: "Mystery Box", Count: 1})
	before := inv.Slots()

	err := inv.AddItem(Item{Kind: engine.KindMantou, Count: 1})
	if !errors.Is(err, ErrInventoryFull) {
		t.Fatalf("Expected ErrInventoryFull, got %v", err)
	}
	after := inv.Slots()
	for i := range before {
		if before[i].Kind != after[i].Kind || before[i].Count != after[i].Count {
			t.Errorf("Slot %d changed: %+v -> %+v", i, before[i], after[i])
		}
	}
	if err := inv.AddItem(hook(1)); err != nil {
		t.Errorf("Expected merge into existing kind while full, got %v", err)
	}
	if !inv.Full() {
		t.Error("Expected inventory to report full")
	}
}

// TestSelectSlotToggles verifies reselecting the selected slot clears the selection
func TestSelectSlotToggles(t *testing.T) {
	inv := New(5)
	if !inv.SelectSlot(2) {
		t.Fatal("Expected slot 2 selected")
	}
	if i, ok := inv.Selected(); !ok || i != 2 {
		t.Errorf("Expected selection 2, got %d %v", i, ok)
	}
	if inv.SelectSlot(2) {
		t.Error("Expected second select to clear")
	}
	if _, ok := inv.Selected(); ok {
		t.Error("Expected no selection")
	}
	inv.SelectSlot(1)
	if inv.SelectSlot(9) != true {
		t.Error("Expected out of range index to keep selection")
	}
	if i, _ := inv.Selected(); i != 1 {
		t.Errorf("Expected selection 1, got %d", i)
	}
}

// TestConsumeDropsOldestContents verifies stacked boxes open in pickup order
func TestConsumeDropsOldestContents(t *testing.T) {
	inv := New(5)
	_ = inv.AddItem(Item{Kind: engine.KindMysteryBox, Count: 1, Contents: []Contents{{Kind: engine.KindBomb, Count: 1}}})
	_ = inv.AddItem(Item{Kind: engine.KindMysteryBox, Count: 1, Contents: []Contents{{Kind: engine.KindMantou, Count: 3}}})

	inv.Consume(0, 1)
	it, ok := inv.Slot(0)
	if !ok || it.Count != 1 {
		t.Fatalf("Expected one box left, got %+v", it)
	}
	if len(it.Contents) != 1 || it.Contents[0].Kind != engine.KindMantou {
		t.Errorf("Expected remaining payload mantou, got %+v", it.Contents)
	}
	inv.Consume(0, 1)
	if _, ok := inv.Slot(0); ok {
		t.Error("Expected slot cleared after last box")
	}
}

// TestSlotReturnsCopy verifies callers cannot mutate slots through Slot
func TestSlotReturnsCopy(t *testing.T) {
	inv := New(1)
	_ = inv.AddItem(Item{Kind: engine.KindMysteryBox, Count: 1, Contents: []Contents{{Kind: engine.KindBomb, Count: 2}}})
	it, _ := inv.Slot(0)
	it.Count = 10
	it.Contents[0].Count = 9
	again, _ := inv.Slot(0)
	if again.Count != 1 || again.Contents[0].Count != 2 {
		t.Errorf("Expected slot untouched, got %+v", again)
	}
}

// TestClear verifies slots and selection reset
func TestClear(t *testing.T) {
	inv := New(3)
	_ = inv.AddItem(hook(2))
	inv.SelectSlot(0)
	inv.Clear()
	if inv.Count(engine.KindWallHook) != 0 {
		t.Error("Expected no hooks after Clear")
	}
	if _, ok := inv.Selected(); ok {
		t.Error("Expected selection cleared")
	}
}
