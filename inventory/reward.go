package inventory

import (
	"maps"
	"math/rand/v2"
	"slices"

	"gonum.org/v1/gonum/stat/sampleuv"

	"github.com/lixenwraith/mantou/engine"
	"github.com/lixenwraith/mantou/parameter"
)

// displayNames maps item kinds to the labels shown in floating texts and the slot bar
var displayNames = map[engine.Kind]string{
	engine.KindMantou:       "Mantou",
	engine.KindBomb:         "Bomb",
	engine.KindWallHook:     "Hook",
	engine.KindHealthPotion: "Potion",
	engine.KindSpeedShoe:    "Speed Shoe",
	engine.KindMysteryBox:   "Mystery Box",
	engine.KindWildCow:      "Cow",
}

// DisplayName returns the label of kind k
func DisplayName(k engine.Kind) string {
	if n, ok := displayNames[k]; ok {
		return n
	}
	return k.String()
}

// RollReward draws a mystery box payload: kind proportional to its weight, count uniform in [CountMin, CountMax]
// Unknown kind names and non-positive weights are ignored; an empty table yields a single mantou
func RollReward(rng *rand.Rand, t parameter.RewardTuning) Contents {
	names := slices.Sorted(maps.Keys(t.Weights))
	kinds := make([]engine.Kind, 0, len(names))
	weights := make([]float64, 0, len(names))
	for _, name := range names {
		k, ok := engine.ParseKind(name)
		if !ok || t.Weights[name] <= 0 {
			continue
		}
		kinds = append(kinds, k)
		weights = append(weights, t.Weights[name])
	}

	kind := engine.KindMantou
	if len(kinds) > 0 {
		if idx, ok := sampleuv.NewWeighted(weights, rng).Take(); ok {
			kind = kinds[idx]
		}
	}

	lo, hi := max(t.CountMin, 1), max(t.CountMax, t.CountMin, 1)
	return Contents{
		Kind:  kind,
		Name:  DisplayName(kind),
		Count: lo + rng.IntN(hi-lo+1),
	}
}
