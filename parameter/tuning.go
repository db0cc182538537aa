package parameter

import "time"

// Tuning is the runtime-adjustable gameplay configuration
// Defaults mirror the constants in this package; config loads overrides from YAML
type Tuning struct {
	Player    PlayerTuning    `yaml:"player"`
	Items     ItemTuning      `yaml:"items"`
	Cow       CowTuning       `yaml:"cow"`
	Hook      HookTuning      `yaml:"hook"`
	Reward    RewardTuning    `yaml:"reward"`
	Spawn     SpawnTuning     `yaml:"spawn"`
	Inventory InventoryTuning `yaml:"inventory"`
}

type PlayerTuning struct {
	Speed             float64       `yaml:"speed"`
	InitialHP         int           `yaml:"initial_hp"`
	MaxHP             int           `yaml:"max_hp"`
	DrainInterval     time.Duration `yaml:"drain_interval"`
	DrainAmount       int           `yaml:"drain_amount"`
	KnockbackDuration time.Duration `yaml:"knockback_duration"`
	KnockbackCells    int           `yaml:"knockback_cells"`
	BoostMultiplier   float64       `yaml:"boost_multiplier"`
	BoostDuration     time.Duration `yaml:"boost_duration"`
	MoveCapCells      int           `yaml:"move_cap_cells"`
	SpawnRangeCells   int           `yaml:"spawn_range_cells"`
}

type ItemTuning struct {
	MantouLifetime     time.Duration `yaml:"mantou_lifetime"`
	MantouHeal         int           `yaml:"mantou_heal"`
	BombLifetime       time.Duration `yaml:"bomb_lifetime"`
	BombDamage         int           `yaml:"bomb_damage"`
	ExplosionFrames    int           `yaml:"explosion_frames"`
	ExplosionFrameTime time.Duration `yaml:"explosion_frame_time"`
	WallHookLifetime   time.Duration `yaml:"wallhook_lifetime"`
	PotionLifetime     time.Duration `yaml:"potion_lifetime"`
	PotionHeal         int           `yaml:"potion_heal"`
	ShoeLifetime       time.Duration `yaml:"shoe_lifetime"`
	BoxLifetime        time.Duration `yaml:"box_lifetime"`
}

type CowTuning struct {
	Health        int           `yaml:"health"`
	Speed         float64       `yaml:"speed"`
	MoveInterval  time.Duration `yaml:"move_interval"`
	PatrolRadius  int           `yaml:"patrol_radius"`
	MooInterval   time.Duration `yaml:"moo_interval"`
	MooRange      float64       `yaml:"moo_range"`
	ContactDamage int           `yaml:"contact_damage"`
	ContactWear   int           `yaml:"contact_wear"`
}

type HookTuning struct {
	RangeCells   float64       `yaml:"range_cells"`
	RawCapCells  int           `yaml:"raw_cap_cells"`
	PullDuration time.Duration `yaml:"pull_duration"`
}

// RewardTuning holds the mystery box weight table keyed by item kind name
type RewardTuning struct {
	Weights  map[string]float64 `yaml:"weights"`
	CountMin int                `yaml:"count_min"`
	CountMax int                `yaml:"count_max"`
}

type InventoryTuning struct {
	Slots int `yaml:"slots"`
}

// SpawnTuning lists spawn rules in budget order
type SpawnTuning struct {
	ViewportItemCap int            `yaml:"viewport_item_cap"`
	ViewportWidth   float64        `yaml:"viewport_width"`
	ViewportHeight  float64        `yaml:"viewport_height"`
	Rules           []SpawnRule    `yaml:"rules"`
	Initial         []InitialSpawn `yaml:"initial"`
}

// SpawnRule configures the periodic spawner of one item kind
type SpawnRule struct {
	Kind     string        `yaml:"kind"`
	Cap      int           `yaml:"cap"`
	Interval time.Duration `yaml:"interval"`
	MaxDelay time.Duration `yaml:"max_delay"`
	MinCells int           `yaml:"min_cells"`
	MaxCells int           `yaml:"max_cells"`
	Attempts int           `yaml:"attempts"`
}

// InitialSpawn is a one-shot placement scheduled at session start
type InitialSpawn struct {
	Kind string        `yaml:"kind"`
	At   time.Duration `yaml:"at"`
}

// Default returns the built-in tuning
func Default() Tuning {
	return Tuning{
		Player: PlayerTuning{
			Speed:             PlayerSpeed,
			InitialHP:         InitialHP,
			MaxHP:             MaxHP,
			DrainInterval:     HPDrainInterval,
			DrainAmount:       HPDrainAmount,
			KnockbackDuration: KnockbackDuration,
			KnockbackCells:    KnockbackCells,
			BoostMultiplier:   BoostMultiplier,
			BoostDuration:     BoostDuration,
			MoveCapCells:      MoveCapCells,
			SpawnRangeCells:   PlayerSpawnRangeCells,
		},
		Items: ItemTuning{
			MantouLifetime:     MantouLifetime,
			MantouHeal:         MantouHeal,
			BombLifetime:       BombLifetime,
			BombDamage:         BombDamage,
			ExplosionFrames:    ExplosionFrames,
			ExplosionFrameTime: ExplosionFrameDuration,
			WallHookLifetime:   WallHookLifetime,
			PotionLifetime:     HealthPotionLife,
			PotionHeal:         HealthPotionHeal,
			ShoeLifetime:       SpeedShoeLifetime,
			BoxLifetime:        MysteryBoxLifetime,
		},
		Cow: CowTuning{
			Health:        CowHealth,
			Speed:         CowSpeed,
			MoveInterval:  CowMoveInterval,
			PatrolRadius:  CowPatrolRadius,
			MooInterval:   CowMooInterval,
			MooRange:      CowMooRange,
			ContactDamage: CowContactDamage,
			ContactWear:   CowContactWear,
		},
		Hook: HookTuning{
			RangeCells:   HookRangeCells,
			RawCapCells:  HookRawCapCells,
			PullDuration: HookPullDuration,
		},
		Reward: RewardTuning{
			Weights: map[string]float64{
				"mantou":   RewardWeightMantou,
				"potion":   RewardWeightPotion,
				"wallhook": RewardWeightHook,
				"shoe":     RewardWeightShoe,
				"bomb":     RewardWeightBomb,
			},
			CountMin: RewardCountMin,
			CountMax: RewardCountMax,
		},
		Spawn: SpawnTuning{
			ViewportItemCap: ViewportItemCap,
			ViewportWidth:   ViewportWidth,
			ViewportHeight:  ViewportHeight,
			Rules: []SpawnRule{
				{Kind: "mantou", Cap: 20, Interval: 3 * time.Second, MaxDelay: 5 * time.Second, MinCells: 0, MaxCells: 10, Attempts: 20},
				{Kind: "bomb", Cap: 5, Interval: 5 * time.Second, MaxDelay: 8 * time.Second, MinCells: 0, MaxCells: 8, Attempts: 20},
				{Kind: "wallhook", Cap: 2, Interval: 10 * time.Second, MaxDelay: 15 * time.Second, MinCells: 5, MaxCells: 15, Attempts: 30},
				{Kind: "potion", Cap: 1, Interval: 15 * time.Second, MaxDelay: 20 * time.Second, MinCells: 6, MaxCells: 12, Attempts: 25},
				{Kind: "shoe", Cap: 1, Interval: 20 * time.Second, MaxDelay: 25 * time.Second, MinCells: 8, MaxCells: 15, Attempts: 30},
				{Kind: "cow", Cap: 3, Interval: 15 * time.Second, MaxDelay: 20 * time.Second, MinCells: 10, MaxCells: 20, Attempts: 30},
				{Kind: "box", Cap: 1, Interval: 25 * time.Second, MaxDelay: 30 * time.Second, MinCells: 10, MaxCells: 20, Attempts: 40},
			},
			Initial: []InitialSpawn{
				{Kind: "mantou", At: 0},
				{Kind: "mantou", At: 2 * time.Second},
				{Kind: "mantou", At: 4 * time.Second},
				{Kind: "bomb", At: 0},
				{Kind: "bomb", At: 2 * time.Second},
				{Kind: "wallhook", At: 5 * time.Second},
				{Kind: "shoe", At: 8 * time.Second},
				{Kind: "box", At: 10 * time.Second},
				{Kind: "cow", At: 12 * time.Second},
			},
		},
		Inventory: InventoryTuning{
			Slots: InventorySlots,
		},
	}
}
