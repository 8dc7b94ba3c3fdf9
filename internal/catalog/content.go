package catalog

// Default returns the built-in content set. The numbers here are balance
// data, not engine contract; they can be replaced wholesale by a YAML
// catalog file.
func Default() *Catalog {
	c, err := New(defaultContent)
	if err != nil {
		// The built-in tables are validated by tests; a broken default
		// catalog is a programming error.
		panic(err)
	}
	return c
}

var defaultContent = Catalog{
	Cards: []Card{
		// Environment
		{ID: "tree_planting", Name: "Tree Planting", Description: "Volunteers plant native seedlings.", Cost: 2, Category: PillarEnvironment, Rarity: RarityCommon, Effect: Effect{Environment: 8, Economy: -1}},
		{ID: "native_garden", Name: "Native Garden", Description: "A pollinator garden by the entrance.", Cost: 1, Category: PillarEnvironment, Rarity: RarityCommon, Effect: Effect{Environment: 5}},
		{ID: "trail_restoration", Name: "Trail Restoration", Cost: 2, Category: PillarEnvironment, Rarity: RarityCommon, Effect: Effect{Environment: 6, Society: 1}},
		{ID: "recycling_program", Name: "Recycling Program", Cost: 3, Category: PillarEnvironment, Rarity: RarityUncommon, Effect: Effect{Environment: 7, Society: 2, XP: 2}},
		{ID: "wildlife_corridor", Name: "Wildlife Corridor", Cost: 4, Category: PillarEnvironment, Rarity: RarityRare, Effect: Effect{Environment: 12, Economy: -2}},
		{ID: "reforestation_drive", Name: "Reforestation Drive", Description: "A one-off replanting campaign.", Cost: 5, Category: PillarEnvironment, Rarity: RarityRare, Effect: Effect{Environment: 15, Economy: -3}, Exhaust: true},
		{ID: "solar_microgrid", Name: "Solar Microgrid", Cost: 6, Category: PillarEnvironment, Rarity: RarityLegendary, Effect: Effect{Environment: 10, Economy: 6}, MinLevel: 3},
		{ID: "mangrove_nursery", Name: "Mangrove Nursery", Cost: 3, Category: PillarEnvironment, Rarity: RarityUncommon, Effect: Effect{Environment: 9, Society: 1}, Biome: "coast"},
		{ID: "canopy_walk", Name: "Canopy Walk", Cost: 4, Category: PillarEnvironment, Rarity: RarityUncommon, Effect: Effect{Environment: 4, Economy: 5}, Biome: "rainforest"},
		{ID: "marsh_boardwalk", Name: "Marsh Boardwalk", Cost: 3, Category: PillarEnvironment, Rarity: RarityUncommon, Effect: Effect{Environment: 5, Economy: 4}, Biome: "wetlands"},

		// Economy
		{ID: "souvenir_stand", Name: "Souvenir Stand", Cost: 1, Category: PillarEconomy, Rarity: RarityCommon, Effect: Effect{Economy: 5, Environment: -1}},
		{ID: "food_market", Name: "Food Market", Cost: 2, Category: PillarEconomy, Rarity: RarityCommon, Effect: Effect{Economy: 6, Society: 1, Environment: -1}},
		{ID: "guided_tours", Name: "Guided Tours", Cost: 2, Category: PillarEconomy, Rarity: RarityCommon, Effect: Effect{Economy: 5, Society: 2}},
		{ID: "eco_lodge", Name: "Eco Lodge", Cost: 4, Category: PillarEconomy, Rarity: RarityUncommon, Effect: Effect{Economy: 8, Environment: -2, Coins: 2}},
		{ID: "visitor_center", Name: "Visitor Center", Cost: 5, Category: PillarEconomy, Rarity: RarityRare, Effect: Effect{Economy: 9, Society: 4, Environment: -1}, MinLevel: 2},
		{ID: "adventure_park", Name: "Adventure Park", Description: "Zip lines bring crowds, once.", Cost: 6, Category: PillarEconomy, Rarity: RarityRare, Effect: Effect{Economy: 12, Environment: -4}, Exhaust: true},
		{ID: "grand_festival", Name: "Grand Festival", Cost: 8, Category: PillarEconomy, Rarity: RarityLegendary, Effect: Effect{Economy: 14, Society: 6, Environment: -5, Coins: 5}, Exhaust: true, MinLevel: 4},
		{ID: "river_cruise", Name: "River Cruise", Cost: 4, Category: PillarEconomy, Rarity: RarityUncommon, Effect: Effect{Economy: 7, Environment: -2}, Biome: "wetlands"},

		// Society
		{ID: "school_visits", Name: "School Visits", Cost: 1, Category: PillarSociety, Rarity: RarityCommon, Effect: Effect{Society: 5, XP: 1}},
		{ID: "community_fair", Name: "Community Fair", Cost: 2, Category: PillarSociety, Rarity: RarityCommon, Effect: Effect{Society: 6, Economy: 1}},
		{ID: "artisan_workshop", Name: "Artisan Workshop", Cost: 2, Category: PillarSociety, Rarity: RarityCommon, Effect: Effect{Society: 5, Economy: 2}},
		{ID: "cultural_exchange", Name: "Cultural Exchange", Cost: 3, Category: PillarSociety, Rarity: RarityUncommon, Effect: Effect{Society: 8, Environment: 1}},
		{ID: "heritage_museum", Name: "Heritage Museum", Cost: 5, Category: PillarSociety, Rarity: RarityRare, Effect: Effect{Society: 10, Economy: 2}, MinLevel: 2},
		{ID: "volunteer_brigade", Name: "Volunteer Brigade", Cost: 3, Category: PillarSociety, Rarity: RarityUncommon, Effect: Effect{Society: 6, Environment: 3}},
		{ID: "founders_assembly", Name: "Founders Assembly", Cost: 7, Category: PillarSociety, Rarity: RarityLegendary, Effect: Effect{Society: 12, Environment: 4, Economy: 4}, Exhaust: true, MinLevel: 4},
		{ID: "fishing_cooperative", Name: "Fishing Cooperative", Cost: 3, Category: PillarSociety, Rarity: RarityUncommon, Effect: Effect{Society: 7, Economy: 2}, Biome: "coast"},
	},

	Events: []Event{
		{
			ID: "invasive_species", Name: "Invasive Species",
			Description: "An exotic vine is choking the understory.",
			Requires:    []Requirement{{Pillar: PillarEnvironment, Max: 70}},
			Choices: []Choice{
				{Label: "Hire ecologists", Kind: KindSmart, Effect: Effect{Environment: 6, Coins: -3}},
				{Label: "Volunteer weekend", Kind: KindQuick, Effect: Effect{Environment: 3, Society: 2}},
				{Label: "Introduce a predator", Kind: KindRisky, Effect: Effect{Environment: 10}},
			},
		},
		{
			ID: "tourism_boom", Name: "Tourism Boom",
			Description: "A travel show featured the park.",
			Requires:    []Requirement{{Pillar: PillarEconomy, Min: 40}},
			Choices: []Choice{
				{Label: "Cap daily visitors", Kind: KindSmart, Effect: Effect{Economy: 4, Environment: 2}},
				{Label: "Expand parking", Kind: KindQuick, Effect: Effect{Economy: 6, Environment: -3}},
				{Label: "Double ticket prices", Kind: KindRisky, Effect: Effect{Economy: 12, Society: -4, Coins: 6}},
			},
		},
		{
			ID: "protest_at_gates", Name: "Protest at the Gates",
			Description: "Residents feel shut out of park decisions.",
			Requires:    []Requirement{{Pillar: PillarSociety, Max: 50}},
			Choices: []Choice{
				{Label: "Open a dialogue", Kind: KindSmart, Effect: Effect{Society: 6}},
				{Label: "Hire security", Kind: KindRisky, Effect: Effect{Economy: 4, Society: -2}},
			},
		},
		{
			ID: "drought_season", Name: "Drought Season",
			Requires: []Requirement{{Pillar: PillarEnvironment, Max: 55}},
			Choices: []Choice{
				{Label: "Install drip irrigation", Kind: KindSmart, Effect: Effect{Environment: 5, Coins: -4}},
				{Label: "Ration water", Kind: KindQuick, Effect: Effect{Environment: 2, Society: -1}},
				{Label: "Truck in water", Kind: KindRisky, Effect: Effect{Environment: 8, Coins: -8}},
			},
		},
		{
			ID: "influencer_visit", Name: "Influencer Visit",
			Choices: []Choice{
				{Label: "Guided eco-tour", Kind: KindSmart, Effect: Effect{Society: 3, Economy: 3}},
				{Label: "Unsupervised access", Kind: KindRisky, Effect: Effect{Economy: 8, Environment: -3}},
			},
		},
		{
			ID: "grant_opportunity", Name: "Grant Opportunity",
			Requires: []Requirement{{Pillar: PillarSociety, Min: 30}},
			Choices: []Choice{
				{Label: "Full application", Kind: KindSmart, Effect: Effect{Coins: 8, XP: 3}},
				{Label: "Quick pitch", Kind: KindQuick, Effect: Effect{Coins: 4}},
			},
		},
	},

	Councils: []Council{
		{
			ID: "budget_review", Name: "Budget Review",
			Options: []Choice{
				{Label: "Fund conservation", Kind: KindSustainable, Effect: Effect{Environment: 5, Coins: -3}},
				{Label: "Balanced budget", Kind: KindNeutral, Effect: Effect{Environment: 2, Economy: 2, Society: 2}},
				{Label: "Marketing blitz", Kind: KindRisky, Effect: Effect{Economy: 7, Coins: -5}},
			},
		},
		{
			ID: "zoning_vote", Name: "Zoning Vote",
			Options: []Choice{
				{Label: "Protect the buffer zone", Kind: KindSustainable, Effect: Effect{Environment: 6, Economy: -2}},
				{Label: "Defer the decision", Kind: KindNeutral, Effect: Effect{Society: 1}},
				{Label: "Open new lots", Kind: KindRisky, Effect: Effect{Economy: 8, Environment: -4}},
			},
		},
		{
			ID: "ticket_pricing", Name: "Ticket Pricing",
			Options: []Choice{
				{Label: "Resident discounts", Kind: KindSustainable, Effect: Effect{Society: 5, Economy: -1}},
				{Label: "Keep prices", Kind: KindNeutral, Effect: Effect{Coins: 2}},
				{Label: "Peak surcharge", Kind: KindRisky, Effect: Effect{Coins: 6, Society: -3}},
			},
		},
		{
			ID: "education_policy", Name: "Education Policy",
			Options: []Choice{
				{Label: "Free school visits", Kind: KindSustainable, Effect: Effect{Society: 6, Coins: -2}},
				{Label: "Standard program", Kind: KindNeutral, Effect: Effect{Society: 3}},
			},
		},
		{
			ID: "transport_plan", Name: "Transport Plan",
			Options: []Choice{
				{Label: "Shuttle fleet", Kind: KindSustainable, Effect: Effect{Environment: 4, Society: 3, Coins: -4}},
				{Label: "Expand road access", Kind: KindRisky, Effect: Effect{Economy: 6, Environment: -5}},
			},
		},
	},

	// Threats are checked in this order; the first eligible one fires.
	Threats: []Threat{
		{ID: "ecosystem_collapse", Name: "Ecosystem Collapse", Pillar: PillarEnvironment, Threshold: 15, Effect: Effect{Economy: -8, Society: -4}},
		{ID: "market_crash", Name: "Market Crash", Pillar: PillarEconomy, Threshold: 15, Effect: Effect{Economy: -4, Coins: -8}},
		{ID: "community_exodus", Name: "Community Exodus", Pillar: PillarSociety, Threshold: 15, Effect: Effect{Society: -4, Economy: -5}},
		{ID: "wildfire", Name: "Wildfire", Pillar: PillarEnvironment, Threshold: 30, Effect: Effect{Environment: -6, Economy: -3}},
	},

	Biomes: []Biome{
		{ID: "rainforest", Name: "Atlantic Rainforest", StarterCards: []string{"canopy_walk", "recycling_program"}},
		{ID: "wetlands", Name: "Pantanal Wetlands", StarterCards: []string{"marsh_boardwalk", "river_cruise"}},
		{ID: "coast", Name: "Coastal Reserve", StarterCards: []string{"mangrove_nursery", "fishing_cooperative"}},
	},

	Starter: []string{
		"tree_planting", "tree_planting", "native_garden", "trail_restoration",
		"souvenir_stand", "guided_tours", "food_market",
		"school_visits", "community_fair", "artisan_workshop",
	},
}
