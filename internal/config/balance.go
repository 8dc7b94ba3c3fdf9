package config

// Balance holds the simulation's numeric constants. These are treated as
// given configuration for behavioral parity, not as tunable design contract.
type Balance struct {
	// Starting state
	InitialEnvironment int `yaml:"initial_environment" json:"initial_environment"`
	InitialEconomy     int `yaml:"initial_economy" json:"initial_economy"`
	InitialSociety     int `yaml:"initial_society" json:"initial_society"`
	InitialCoins       int `yaml:"initial_coins" json:"initial_coins"`

	// Equilibrium weights
	WeightEnvironment float64 `yaml:"weight_environment" json:"weight_environment"`
	WeightEconomy     float64 `yaml:"weight_economy" json:"weight_economy"`
	WeightSociety     float64 `yaml:"weight_society" json:"weight_society"`

	// Overdevelopment coupling: economy running ahead of environment by more
	// than the margin costs the environment the penalty, after every effect.
	OverdevelopmentMargin  int `yaml:"overdevelopment_margin" json:"overdevelopment_margin"`
	OverdevelopmentPenalty int `yaml:"overdevelopment_penalty" json:"overdevelopment_penalty"`

	// Per-turn decay
	DecayEnvironment int `yaml:"decay_environment" json:"decay_environment"`
	DecayEconomy     int `yaml:"decay_economy" json:"decay_economy"`
	DecaySociety     int `yaml:"decay_society" json:"decay_society"`

	// Visitors and income
	VisitorRate          float64 `yaml:"visitor_rate" json:"visitor_rate"`
	IncomeBase           int     `yaml:"income_base" json:"income_base"`
	IncomeVisitorDivisor int     `yaml:"income_visitor_divisor" json:"income_visitor_divisor"`

	// Deck and turn limits
	DrawCount       int `yaml:"draw_count" json:"draw_count"`
	MaxPlaysPerTurn int `yaml:"max_plays_per_turn" json:"max_plays_per_turn"`
	DiscardRebate   int `yaml:"discard_rebate" json:"discard_rebate"`

	// Experience thresholds, ascending; index i is the cumulative XP needed
	// to reach level i+1.
	XPThresholds []int `yaml:"xp_thresholds" json:"xp_thresholds"`
	PlayXPFloor  int   `yaml:"play_xp_floor" json:"play_xp_floor"`

	// Termination
	GameOverEquilibrium float64 `yaml:"game_over_equilibrium" json:"game_over_equilibrium"`
	MaxDisasters        int     `yaml:"max_disasters" json:"max_disasters"`
	VictoryLevel        int     `yaml:"victory_level" json:"victory_level"`
	VictoryEquilibrium  float64 `yaml:"victory_equilibrium" json:"victory_equilibrium"`
	VictoryPillarFloor  int     `yaml:"victory_pillar_floor" json:"victory_pillar_floor"`
	VictoryVisitors     int     `yaml:"victory_visitors" json:"victory_visitors"`

	// Interaction scheduling
	CouncilChance float64 `yaml:"council_chance" json:"council_chance"`

	// Risky event resolution
	RiskFailureChance float64 `yaml:"risk_failure_chance" json:"risk_failure_chance"`
	RiskFailureScale  float64 `yaml:"risk_failure_scale" json:"risk_failure_scale"`

	// Rewards
	RewardOfferSize int           `yaml:"reward_offer_size" json:"reward_offer_size"`
	RarityWeights   RarityWeights `yaml:"rarity_weights" json:"rarity_weights"`

	// Profile scoring
	ProfileCategoryPoints int `yaml:"profile_category_points" json:"profile_category_points"`
	ProfileChoicePoints   int `yaml:"profile_choice_points" json:"profile_choice_points"`
	ProfileBalancedBonus  int `yaml:"profile_balanced_bonus" json:"profile_balanced_bonus"`
}

// RarityWeights are the reward-sampling weights per rarity tier; common
// weighted highest, legendary lowest.
type RarityWeights struct {
	Common    int `yaml:"common" json:"common"`
	Uncommon  int `yaml:"uncommon" json:"uncommon"`
	Rare      int `yaml:"rare" json:"rare"`
	Legendary int `yaml:"legendary" json:"legendary"`
}

// Default returns the default balance configuration.
func Default() Balance {
	return Balance{
		InitialEnvironment: 50,
		InitialEconomy:     50,
		InitialSociety:     50,
		InitialCoins:       10,

		WeightEnvironment: 0.4,
		WeightEconomy:     0.3,
		WeightSociety:     0.3,

		OverdevelopmentMargin:  30,
		OverdevelopmentPenalty: 3,

		DecayEnvironment: 4,
		DecayEconomy:     2,
		DecaySociety:     2,

		VisitorRate:          1.5,
		IncomeBase:           5,
		IncomeVisitorDivisor: 10,

		DrawCount:       5,
		MaxPlaysPerTurn: 3,
		DiscardRebate:   1,

		XPThresholds: []int{0, 100, 250, 450, 700},
		PlayXPFloor:  5,

		GameOverEquilibrium: 10,
		MaxDisasters:        5,
		VictoryLevel:        5,
		VictoryEquilibrium:  70,
		VictoryPillarFloor:  50,
		VictoryVisitors:     200,

		CouncilChance: 0.6,

		RiskFailureChance: 0.5,
		RiskFailureScale:  0.5,

		RewardOfferSize: 3,
		RarityWeights: RarityWeights{
			Common:    10,
			Uncommon:  6,
			Rare:      3,
			Legendary: 1,
		},

		ProfileCategoryPoints: 2,
		ProfileChoicePoints:   2,
		ProfileBalancedBonus:  1,
	}
}
