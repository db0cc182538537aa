package system

import (
	"time"

	"github.com/lixenwraith/mantou/engine"
	"github.com/lixenwraith/mantou/parameter"
)

// censusKinds are the kinds tracked as live gauges
var censusKinds = []engine.Kind{
	engine.KindMantou, engine.KindBomb, engine.KindWallHook, engine.KindHealthPotion,
	engine.KindSpeedShoe, engine.KindMysteryBox, engine.KindWildCow,
}

// CensusSystem publishes live entity counts to the metrics registry after each step
type CensusSystem struct{}

func (CensusSystem) Name() string { return "census" }

func (CensusSystem) Priority() int { return parameter.PriorityCensus }

func (CensusSystem) Update(w *engine.World, _ time.Duration) {
	reg := w.Metrics()
	reg.Ints.Get("entities.live").Store(int64(w.Len()))
	for _, k := range censusKinds {
		reg.Ints.Get("entities." + k.String()).Store(int64(w.Count(k)))
	}
}
