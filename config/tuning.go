package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/mantou/engine"
	"github.com/lixenwraith/mantou/parameter"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// ErrInvalidTuning wraps every tuning validation failure
var ErrInvalidTuning = errors.New("invalid tuning")

// Tuning is the gameplay configuration consumed by the session
type Tuning = parameter.Tuning

// DefaultTuning returns the compile-time defaults
func DefaultTuning() Tuning {
	return parameter.Default()
}

// LoadTuning decodes the embedded defaults, then the override file at path if given
// Keys absent from the override keep their default; lists are replaced whole
func LoadTuning(path string) (*Tuning, error) {
	t := &Tuning{}
	if err := yaml.Unmarshal(defaultsYAML, t); err != nil {
		return nil, fmt.Errorf("parsing embedded tuning: %w", err)
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading tuning file: %w", err)
		}
		if err := yaml.Unmarshal(data, t); err != nil {
			return nil, fmt.Errorf("parsing tuning file %s: %w", path, err)
		}
	}
	if err := Validate(t); err != nil {
		return nil, err
	}
	return t, nil
}

// Validate rejects tunings the simulation cannot run with
func Validate(t *Tuning) error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: %s", ErrInvalidTuning, fmt.Sprintf(format, args...)))
	}

	p := t.Player
	if p.Speed <= 0 {
		bad("player speed %v", p.Speed)
	}
	if p.InitialHP <= 0 || p.MaxHP < p.InitialHP {
		bad("player hp %d of max %d", p.InitialHP, p.MaxHP)
	}
	if p.DrainInterval <= 0 {
		bad("drain interval %v", p.DrainInterval)
	}
	if p.BoostMultiplier < 1 {
		bad("boost multiplier %v", p.BoostMultiplier)
	}
	if p.MoveCapCells < 1 {
		bad("move cap %d", p.MoveCapCells)
	}

	it := t.Items
	for _, d := range []struct {
		name string
		d    time.Duration
	}{
		{"mantou lifetime", it.MantouLifetime},
		{"bomb lifetime", it.BombLifetime},
		{"wallhook lifetime", it.WallHookLifetime},
		{"potion lifetime", it.PotionLifetime},
		{"shoe lifetime", it.ShoeLifetime},
		{"box lifetime", it.BoxLifetime},
		{"explosion frame", it.ExplosionFrameTime},
		{"hook pull", t.Hook.PullDuration},
	} {
		if d.d <= 0 {
			bad("%s %v", d.name, d.d)
		}
	}
	if it.ExplosionFrames < 1 {
		bad("explosion frames %d", it.ExplosionFrames)
	}

	if t.Cow.MoveInterval <= 0 || t.Cow.MooInterval <= 0 || t.Cow.Health <= 0 {
		bad("cow intervals %v/%v health %d", t.Cow.MoveInterval, t.Cow.MooInterval, t.Cow.Health)
	}
	if t.Hook.RangeCells <= 0 || t.Hook.RawCapCells <= 0 {
		bad("hook range %v cap %d", t.Hook.RangeCells, t.Hook.RawCapCells)
	}

	r := t.Reward
	total := 0.0
	for name, weight := range r.Weights {
		if _, ok := engine.ParseKind(name); !ok {
			bad("reward kind %q", name)
		}
		if weight < 0 {
			bad("reward weight %s=%v", name, weight)
		}
		total += weight
	}
	if total <= 0 {
		bad("reward weight table is empty")
	}
	if r.CountMin < 1 || r.CountMax < r.CountMin {
		bad("reward count range [%d, %d]", r.CountMin, r.CountMax)
	}

	seen := make(map[string]bool, len(t.Spawn.Rules))
	for _, rule := range t.Spawn.Rules {
		k, ok := engine.ParseKind(rule.Kind)
		switch {
		case !ok || k == engine.KindPlayer:
			bad("spawn kind %q", rule.Kind)
		case seen[rule.Kind]:
			bad("duplicate spawn kind %q", rule.Kind)
		}
		seen[rule.Kind] = true
		if rule.Interval <= 0 || rule.MaxDelay < 0 {
			bad("%s spawn interval %v delay %v", rule.Kind, rule.Interval, rule.MaxDelay)
		}
		if rule.MinCells < 0 || rule.MinCells > rule.MaxCells {
			bad("%s spawn distance [%d, %d]", rule.Kind, rule.MinCells, rule.MaxCells)
		}
		if rule.Attempts < 1 {
			bad("%s spawn attempts %d", rule.Kind, rule.Attempts)
		}
	}
	for _, in := range t.Spawn.Initial {
		if !seen[in.Kind] {
			bad("initial spawn %q has no rule", in.Kind)
		}
	}
	if t.Spawn.ViewportItemCap < 1 {
		bad("viewport item cap %d", t.Spawn.ViewportItemCap)
	}
	if t.Inventory.Slots < 1 {
		bad("inventory slots %d", t.Inventory.Slots)
	}
	return errors.Join(errs...)
}
