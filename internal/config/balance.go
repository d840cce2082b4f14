package config

// Balance holds gameplay balance configuration. The auction and
// lifecycle constants are tuned game-balance values carried over as-is;
// do not re-derive them.
type Balance struct {
	// Quest board
	QuestSlots     int     `yaml:"quest_slots" json:"quest_slots"`
	SpawnRate      float64 `yaml:"spawn_rate" json:"spawn_rate"`
	VisibleTurnMin int     `yaml:"visible_turn_min" json:"visible_turn_min"`
	VisibleTurnMax int     `yaml:"visible_turn_max" json:"visible_turn_max"`

	// Quest economy
	BaseReward int     `yaml:"base_reward" json:"base_reward"`
	RewardMin  int     `yaml:"reward_min" json:"reward_min"`
	RewardMax  int     `yaml:"reward_max" json:"reward_max"`
	RewardVar  float64 `yaml:"reward_var" json:"reward_var"`
	BidMin     int     `yaml:"bid_min" json:"bid_min"`
	BidMax     int     `yaml:"bid_max" json:"bid_max"`

	// Mercenary generation
	StatRollMin  int     `yaml:"stat_roll_min" json:"stat_roll_min"`
	StatRollMax  int     `yaml:"stat_roll_max" json:"stat_roll_max"`
	StatBaseline int     `yaml:"stat_baseline" json:"stat_baseline"`
	SigningCoef  float64 `yaml:"signing_coef" json:"signing_coef"`
	WageCoef     float64 `yaml:"wage_coef" json:"wage_coef"`
	EconomyVar   float64 `yaml:"economy_var" json:"economy_var"`

	// Auction scoring
	PriceWeight       float64 `yaml:"price_weight" json:"price_weight"`
	FeasWeight        float64 `yaml:"feas_weight" json:"feas_weight"`
	RepWeight         float64 `yaml:"rep_weight" json:"rep_weight"`
	RivalBidSpread    float64 `yaml:"rival_bid_spread" json:"rival_bid_spread"`
	RivalBidsPerOffer int     `yaml:"rival_bids_per_offer" json:"rival_bids_per_offer"`

	// Quest lifecycle
	SuccessBase      float64 `yaml:"success_base" json:"success_base"`
	SuccessBonusCoef float64 `yaml:"success_bonus_coef" json:"success_bonus_coef"`
	ExpediteCoef     float64 `yaml:"expedite_coef" json:"expedite_coef"`
	DelayCoef        float64 `yaml:"delay_coef" json:"delay_coef"`
	RatioFloor       float64 `yaml:"ratio_floor" json:"ratio_floor"`
	RatioCeil        float64 `yaml:"ratio_ceil" json:"ratio_ceil"`
	LootDropChance   float64 `yaml:"loot_drop_chance" json:"loot_drop_chance"`

	// Mood upkeep
	FatiguePerTurn  int `yaml:"fatigue_per_turn" json:"fatigue_per_turn"`
	FatigueRecovery int `yaml:"fatigue_recovery" json:"fatigue_recovery"`

	// Named archive
	NamedCooldownMin int `yaml:"named_cooldown_min" json:"named_cooldown_min"`
	NamedCooldownMax int `yaml:"named_cooldown_max" json:"named_cooldown_max"`

	// Recruitment
	RecruitPoolSize int `yaml:"recruit_pool_size" json:"recruit_pool_size"`

	// Journal bounds
	JournalPerEntity int `yaml:"journal_per_entity" json:"journal_per_entity"`
	JournalFeed      int `yaml:"journal_feed" json:"journal_feed"`

	Stances map[string]Stance `yaml:"stances" json:"stances"`
}

// Stance is a per-quest policy profile trading loot and reputation
// upside against overdue risk.
type Stance struct {
	BonusLootChance float64 `yaml:"bonus_loot_chance" json:"bonus_loot_chance"`
	BonusLootMin    int     `yaml:"bonus_loot_min" json:"bonus_loot_min"`
	BonusLootMax    int     `yaml:"bonus_loot_max" json:"bonus_loot_max"`
	InjuryChance    float64 `yaml:"injury_chance" json:"injury_chance"`
	BaseOverdueProb float64 `yaml:"base_overdue_prob" json:"base_overdue_prob"`
	RepMultiplier   float64 `yaml:"rep_multiplier" json:"rep_multiplier"`
}

const (
	StanceMeticulous = "meticulous"
	StanceOnTime     = "on_time"
)

// Default returns the default balance configuration.
func Default() Balance {
	return Balance{
		QuestSlots:     6,
		SpawnRate:      0.6,
		VisibleTurnMin: 3,
		VisibleTurnMax: 6,

		BaseReward: 100,
		RewardMin:  50,
		RewardMax:  9999,
		RewardVar:  0.1,
		BidMin:     1,
		BidMax:     9999,

		StatRollMin:  4,
		StatRollMax:  12,
		StatBaseline: 3,
		SigningCoef:  2.0,
		WageCoef:     0.6,
		EconomyVar:   0.15,

		PriceWeight:       4.0,
		FeasWeight:        1.2,
		RepWeight:         0.8,
		RivalBidSpread:    0.15,
		RivalBidsPerOffer: 3,

		SuccessBase:      0.78,
		SuccessBonusCoef: 0.25,
		ExpediteCoef:     0.25,
		DelayCoef:        0.5,
		RatioFloor:       -0.6,
		RatioCeil:        1.2,
		LootDropChance:   0.2,

		FatiguePerTurn:  6,
		FatigueRecovery: 4,

		NamedCooldownMin: 8,
		NamedCooldownMax: 20,

		RecruitPoolSize: 5,

		JournalPerEntity: 12,
		JournalFeed:      60,

		Stances: map[string]Stance{
			StanceMeticulous: {
				BonusLootChance: 0.35,
				BonusLootMin:    10,
				BonusLootMax:    40,
				InjuryChance:    0.12,
				BaseOverdueProb: 0.15,
				RepMultiplier:   1.25,
			},
			StanceOnTime: {
				BonusLootChance: 0.15,
				BonusLootMin:    5,
				BonusLootMax:    20,
				InjuryChance:    0.08,
				BaseOverdueProb: 0.05,
				RepMultiplier:   1.0,
			},
		},
	}
}

// Casual returns easier balance for casual play.
func Casual() Balance {
	cfg := Default()
	cfg.SpawnRate = 0.8
	cfg.SuccessBase = 0.85
	cfg.FatiguePerTurn = 4
	cfg.LootDropChance = 0.3
	return cfg
}

// Hard returns harder balance for experienced players.
func Hard() Balance {
	cfg := Default()
	cfg.SpawnRate = 0.45
	cfg.SuccessBase = 0.7
	cfg.FatiguePerTurn = 8
	cfg.DelayCoef = 0.65
	cfg.LootDropChance = 0.12
	return cfg
}

// StanceOrDefault resolves a stance key, falling back to on_time for
// unknown keys so a stale snapshot never stalls a quest.
func (b Balance) StanceOrDefault(key string) Stance {
	if s, ok := b.Stances[key]; ok {
		return s
	}
	return b.Stances[StanceOnTime]
}
