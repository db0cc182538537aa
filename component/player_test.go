package component

import (
	"testing"

	"github.com/lixenwraith/mantou/parameter"
	"github.com/lixenwraith/mantou/vmath"
)

// TestPlayerMoveSnapsToGoal verifies min(speed, remaining) stepping with an exact arrival
func TestPlayerMoveSnapsToGoal(t *testing.T) {
	f := newFixture(t)
	start := f.player.Position
	goal := vmath.Add(start, vmath.V(12, 0))

	f.pc.MoveTo(goal)
	if f.pc.State() != StateRunning {
		t.Fatalf("Expected running, got %s", f.pc.State())
	}
	f.step(2)
	if f.player.Position.X != start.X+10 {
		t.Errorf("Expected 10 units after two steps, got %v", f.player.Position.X-start.X)
	}
	f.step(1)
	if f.player.Position != goal {
		t.Errorf("Expected exact goal %v, got %v", goal, f.player.Position)
	}
	if f.pc.State() != StateStanding {
		t.Errorf("Expected standing on arrival, got %s", f.pc.State())
	}
	if f.player.Facing != 0 {
		t.Errorf("Expected facing +X (0 rad), got %f", f.player.Facing)
	}
}

// TestPlayerDyingIgnoresMoves verifies the terminal state suppresses movement
func TestPlayerDyingIgnoresMoves(t *testing.T) {
	f := newFixture(t)
	start := f.player.Position
	f.pc.Die()
	f.pc.MoveTo(vmath.V(500, 500))
	f.pc.Knockback(vmath.V(-500, 0), parameter.KnockbackDuration)
	f.step(10)
	if f.pc.State() != StateDying || f.player.Position != start {
		t.Errorf("Expected dying player frozen at %v, got %s at %v", start, f.pc.State(), f.player.Position)
	}
}

// TestPlayerKnockbackOverridesMovement verifies the eased interrupt and its completion
func TestPlayerKnockbackOverridesMovement(t *testing.T) {
	f := newFixture(t)
	to := vmath.Cell{X: 3}.Center()
	f.pc.Knockback(to, parameter.KnockbackDuration)
	f.pc.MoveTo(vmath.V(-1000, 0))

	f.step(15)
	if !f.pc.KnockedBack() {
		t.Fatal("Expected knockback in progress at 250ms")
	}
	mid := f.player.Position.X
	origin := vmath.Cell{}.Center()
	if mid <= origin.X || mid >= to.X {
		t.Errorf("Expected intermediate position, got %f", mid)
	}

	f.stepFor(parameter.KnockbackDuration)
	if f.pc.KnockedBack() || f.pc.State() != StateStanding || f.player.Position != to {
		t.Errorf("Expected standing at %v, got %s at %v", to, f.pc.State(), f.player.Position)
	}
}

// TestPlayerBoostExtends verifies re-collection extends the deadline instead of restarting
func TestPlayerBoostExtends(t *testing.T) {
	f := newFixture(t)
	base := f.pc.Speed()

	f.pc.Boost(parameter.BoostDuration)
	if f.pc.Speed() != base*2 {
		t.Fatalf("Expected doubled speed, got %f", f.pc.Speed())
	}
	f.stepFor(parameter.BoostDuration / 2)
	f.pc.Boost(parameter.BoostDuration)

	f.stepFor(parameter.BoostDuration/2 + 5*frame)
	if f.pc.Speed() != base*2 {
		t.Error("Expected boost to survive the original deadline")
	}
	f.stepFor(parameter.BoostDuration)
	if f.pc.Speed() != base {
		t.Errorf("Expected speed restored after extended deadline, got %f", f.pc.Speed())
	}
}

// TestPlayerPushesCoords verifies coordinate updates only on cell change
func TestPlayerPushesCoords(t *testing.T) {
	f := newFixture(t)
	f.step(3)
	if len(f.hud.coords) != 1 || f.hud.coords[0] != (vmath.Cell{}) {
		t.Fatalf("Expected a single initial coordinate push, got %v", f.hud.coords)
	}
	f.pc.MoveTo(vmath.Cell{X: 1}.Center())
	f.stepFor(parameter.KnockbackDuration)
	last := f.hud.coords[len(f.hud.coords)-1]
	if last != (vmath.Cell{X: 1}) {
		t.Errorf("Expected last push (1,0), got %v", last)
	}
}
