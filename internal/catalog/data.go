package catalog

var growthModels = []GrowthModel{
	{
		ID:   "temperate-herb",
		Name: "Temperate Herb",
		Stages: []GrowthStage{
			{ID: "germination", Name: "Germination", Icon: "💧", DayStart: 0, DayEnd: 14, Color: "#8B7355", Description: "Seeds absorbing water underground", WhatToExpect: "No visible changes yet. Keep the area slightly moist."},
			{ID: "sprout", Name: "Sprouting", Icon: "🌱", DayStart: 14, DayEnd: 30, Color: "#90EE90", Description: "First shoots emerge above soil", WhatToExpect: "Look for tiny pale green shoots. Very delicate stage."},
			{ID: "leafing", Name: "Leafing", Icon: "🍃", DayStart: 30, DayEnd: 60, Color: "#2ECC71", Description: "True leaves forming", WhatToExpect: "Plants are recognizable now. Thin if overcrowded."},
			{ID: "flowering", Name: "Flowering", Icon: "🌸", DayStart: 60, DayEnd: 90, Color: "#FF69B4", Description: "Flowers appearing", WhatToExpect: "Harvest flowers for tea or food. Leave 30% for pollinators."},
			{ID: "fruiting", Name: "Seeding", Icon: "🌻", DayStart: 90, DayEnd: 120, Color: "#F39C12", Description: "Seeds developing", WhatToExpect: "Harvest seeds when dry and brown."},
			{ID: "spread", Name: "Spreading", Icon: "🌬️", DayStart: 120, DayEnd: 365, Color: "#3498DB", Description: "Self-spreading via seed dispersal", WhatToExpect: "Expect new plants nearby next season."},
		},
	},
	{
		ID:   "temperate-shrub",
		Name: "Temperate Shrub",
		Stages: []GrowthStage{
			{ID: "germination", Name: "Germination", Icon: "💧", DayStart: 0, DayEnd: 21, Color: "#8B7355", Description: "Seeds stratifying", WhatToExpect: "Shrub seeds take longer. Be patient."},
			{ID: "sprout", Name: "Sprouting", Icon: "🌱", DayStart: 21, DayEnd: 45, Color: "#90EE90", Description: "First shoots emerging", WhatToExpect: "Tiny woody stems appearing."},
			{ID: "leafing", Name: "Establishing", Icon: "🍃", DayStart: 45, DayEnd: 120, Color: "#2ECC71", Description: "Building root system", WhatToExpect: "Slow above-ground growth. Roots are the priority."},
			{ID: "flowering", Name: "First Flowering", Icon: "🌸", DayStart: 365, DayEnd: 540, Color: "#FF69B4", Description: "First flowers year 2+", WhatToExpect: "Year 2: first flowers. Harvest sparingly."},
			{ID: "fruiting", Name: "Fruiting", Icon: "🫐", DayStart: 540, DayEnd: 730, Color: "#F39C12", Description: "First berries year 2-3", WhatToExpect: "Small first harvest. Doubles each year."},
			{ID: "spread", Name: "Established", Icon: "🌳", DayStart: 730, DayEnd: 3650, Color: "#3498DB", Description: "Mature, self-seeding shrub", WhatToExpect: "Colony forming. Divide or thin as needed."},
		},
	},
	{
		ID:   "tropical-fast",
		Name: "Tropical Fast-Growing",
		Stages: []GrowthStage{
			{ID: "germination", Name: "Germination", Icon: "💧", DayStart: 0, DayEnd: 7, Color: "#8B7355", Description: "Very fast germination", WhatToExpect: "Watch within the week."},
			{ID: "sprout", Name: "Sprouting", Icon: "🌱", DayStart: 7, DayEnd: 21, Color: "#90EE90", Description: "Rapid early growth", WhatToExpect: "Fast-growing shoots. Manage spacing."},
			{ID: "leafing", Name: "Canopy Building", Icon: "🌴", DayStart: 21, DayEnd: 60, Color: "#2ECC71", Description: "Rapid canopy development", WhatToExpect: "Harvest young leaves for nutrition."},
			{ID: "flowering", Name: "Flowering", Icon: "🌺", DayStart: 60, DayEnd: 90, Color: "#FF69B4", Description: "Flowers and pods forming", WhatToExpect: "Pods edible when young."},
			{ID: "fruiting", Name: "Pod Production", Icon: "🌿", DayStart: 90, DayEnd: 180, Color: "#F39C12", Description: "Continuous pod production", WhatToExpect: "Harvest continuously for best yield."},
			{ID: "spread", Name: "Established", Icon: "🌳", DayStart: 180, DayEnd: 1825, Color: "#3498DB", Description: "Established food forest layer", WhatToExpect: "Coppice to maintain productivity."},
		},
	},
	{
		ID:   "temperate-annual",
		Name: "Temperate Annual",
		Stages: []GrowthStage{
			{ID: "germination", Name: "Germination", Icon: "💧", DayStart: 0, DayEnd: 10, Color: "#8B7355", Description: "Fast germination", WhatToExpect: "Activity within 10 days."},
			{ID: "sprout", Name: "Sprouting", Icon: "🌱", DayStart: 10, DayEnd: 25, Color: "#90EE90", Description: "Seedlings establishing", WhatToExpect: "Thin to 30cm spacing if dense."},
			{ID: "leafing", Name: "Leafing", Icon: "🍃", DayStart: 25, DayEnd: 50, Color: "#2ECC71", Description: "Rapid leaf growth", WhatToExpect: "Harvest outer leaves. Peak nutrition."},
			{ID: "flowering", Name: "Flowering", Icon: "🌸", DayStart: 50, DayEnd: 80, Color: "#FF69B4", Description: "Going to seed", WhatToExpect: "Harvest now or let go to seed."},
			{ID: "fruiting", Name: "Seed Set", Icon: "🌾", DayStart: 80, DayEnd: 110, Color: "#F39C12", Description: "Seeds maturing", WhatToExpect: "Collect dry seeds for replanting."},
			{ID: "spread", Name: "Self-Sown", Icon: "🌬️", DayStart: 110, DayEnd: 365, Color: "#3498DB", Description: "Seeds shed naturally", WhatToExpect: "New plants will appear next spring."},
		},
	},
	{
		ID:   "temperate-vine",
		Name: "Temperate Vine",
		Stages: []GrowthStage{
			{ID: "germination", Name: "Germination", Icon: "💧", DayStart: 0, DayEnd: 14, Color: "#8B7355", Description: "Vine seeds germinating", WhatToExpect: "Keep moist. Takes up to 2 weeks."},
			{ID: "sprout", Name: "Sprouting", Icon: "🌱", DayStart: 14, DayEnd: 28, Color: "#90EE90", Description: "First tendrils emerging", WhatToExpect: "Provide a surface to climb."},
			{ID: "leafing", Name: "Climbing", Icon: "🍃", DayStart: 28, DayEnd: 60, Color: "#2ECC71", Description: "Rapid vertical growth", WhatToExpect: "Harvest young leaves and flowers."},
			{ID: "flowering", Name: "Flowering", Icon: "🌺", DayStart: 60, DayEnd: 90, Color: "#FF69B4", Description: "Prolific flowering", WhatToExpect: "Edible flowers! Leave some for pollinators."},
			{ID: "fruiting", Name: "Fruiting", Icon: "🍇", DayStart: 90, DayEnd: 150, Color: "#F39C12", Description: "Fruit and pods forming", WhatToExpect: "Harvest pods young and tender."},
			{ID: "spread", Name: "Self-Seeding", Icon: "🌬️", DayStart: 150, DayEnd: 365, Color: "#3498DB", Description: "Seeds spreading", WhatToExpect: "Will self-seed prolifically."},
		},
	},
}

var podTypes = []PodType{
	{ID: "pod-meadow-mix", Name: "Meadow Mix", Icon: "🌼", Description: "Hardy wildflowers and ground cover for open spaces", Plants: []string{"yarrow", "clover-red", "calendula", "dandelion"}, GrowthModelID: "temperate-herb", NutritionTags: []string{"vitamin-c", "antioxidants", "minerals"}, Difficulty: "easy", Color: "#7BC67E"},
	{ID: "pod-forest-edge", Name: "Forest Edge", Icon: "🌿", Description: "Shrubs and ground cover for forest margins", Plants: []string{"elderberry", "blackcurrant", "nettle", "wood-sorrel"}, GrowthModelID: "temperate-shrub", NutritionTags: []string{"vitamin-c", "iron", "antioxidants"}, Difficulty: "easy", Color: "#4A7C59"},
	{ID: "pod-herb-spiral", Name: "Herb Spiral", Icon: "🌱", Description: "Culinary and medicinal herbs for daily kitchen use", Plants: []string{"mint", "lemon-balm", "yarrow", "calendula"}, GrowthModelID: "temperate-herb", NutritionTags: []string{"antimicrobial", "digestive", "minerals"}, Difficulty: "easy", Color: "#A8D5A2"},
	{ID: "pod-tropical-canopy", Name: "Tropical Canopy", Icon: "🌴", Description: "Fast-growing tropical plants for warm climates", Plants: []string{"moringa", "sweet-potato", "amaranth"}, GrowthModelID: "tropical-fast", NutritionTags: []string{"protein", "iron", "vitamin-a"}, Difficulty: "easy", Color: "#F4A460"},
	{ID: "pod-grain-guild", Name: "Grain Guild", Icon: "🌾", Description: "Calorie-dense cereals and legumes", Plants: []string{"amaranth", "sunflower"}, GrowthModelID: "temperate-annual", NutritionTags: []string{"carbohydrates", "protein", "iron"}, Difficulty: "moderate", Color: "#DEB887"},
	{ID: "pod-vine-canopy", Name: "Vine Canopy", Icon: "🍇", Description: "Climbing plants for vertical growing", Plants: []string{"nasturtium"}, GrowthModelID: "temperate-vine", NutritionTags: []string{"vitamin-c", "protein"}, Difficulty: "easy", Color: "#9B59B6"},
}

var recipes = []Recipe{
	{ID: "r1", Name: "Spring Dandelion Salad", Icon: "🥗", Plants: []string{"dandelion", "clover-red", "nasturtium"}, Instructions: "Gather young leaves, rinse well. Toss with olive oil and lemon. Add flowers for color.", NutritionTags: []string{"vitamin-c", "iron", "calcium"}, Time: "5 min", Difficulty: "easy"},
	{ID: "r2", Name: "Nettle Iron Tea", Icon: "🫖", Plants: []string{"nettle", "mint", "lemon-balm"}, Instructions: "Use tongs to pick young nettle tops. Steep with mint and lemon balm for 10 min.", NutritionTags: []string{"iron", "minerals", "anti-inflammatory"}, Time: "15 min", Difficulty: "easy"},
	{ID: "r3", Name: "Elderflower Cordial", Icon: "🌸", Plants: []string{"elderberry"}, Instructions: "Collect 20 flower heads, steep in 1L hot water with sugar and lemon for 24h. Strain and bottle.", NutritionTags: []string{"vitamin-c", "antioxidants"}, Time: "overnight", Difficulty: "moderate"},
	{ID: "r4", Name: "Moringa Superfood Powder", Icon: "💚", Plants: []string{"moringa"}, Instructions: "Dry leaves in shade 3-5 days. Grind to powder. Add 1 tsp to smoothies or soups daily.", NutritionTags: []string{"protein", "iron", "calcium", "vitamin-a"}, Time: "5 days", Difficulty: "easy"},
	{ID: "r5", Name: "Calendula Healing Salve", Icon: "🌻", Plants: []string{"calendula"}, Instructions: "Infuse dried petals in olive oil for 2 weeks. Strain, mix with melted beeswax. Apply to skin.", NutritionTags: []string{"anti-inflammatory", "wound-healing"}, Time: "2 weeks", Difficulty: "moderate"},
	{ID: "r6", Name: "Amaranth Power Porridge", Icon: "🥣", Plants: []string{"amaranth"}, Instructions: "Toast seeds lightly. Simmer 1 cup in 2.5 cups water for 20 min. Add banana or honey to taste.", NutritionTags: []string{"protein", "calcium", "iron"}, Time: "25 min", Difficulty: "easy"},
	{ID: "r7", Name: "Nasturtium Capers", Icon: "🫙", Plants: []string{"nasturtium"}, Instructions: "Pickle green nasturtium seeds in vinegar, salt, and sugar for 2+ weeks. Use like capers in cooking.", NutritionTags: []string{"vitamin-c", "antimicrobial"}, Time: "2 weeks", Difficulty: "easy"},
	{ID: "r8", Name: "Forest Floor Soup", Icon: "🍲", Plants: []string{"nettle", "dandelion", "wood-sorrel"}, Instructions: "Saute onion, add young nettle and dandelion leaves, cover with stock. Simmer 15 min. Finish with sorrel.", NutritionTags: []string{"iron", "vitamin-c", "calcium"}, Time: "20 min", Difficulty: "easy"},
	{ID: "r9", Name: "Wild Sunflower Butter", Icon: "🌻", Plants: []string{"sunflower"}, Instructions: "Roast hulled seeds 10 min at 180C. Blend with a pinch of salt and oil until smooth.", NutritionTags: []string{"vitamin-e", "protein", "healthy-fats"}, Time: "20 min", Difficulty: "easy"},
	{ID: "r10", Name: "Yarrow First Aid Wash", Icon: "🩹", Plants: []string{"yarrow"}, Instructions: "Steep fresh yarrow flowers in boiling water for 10 min. Cool completely. Use to wash minor cuts.", NutritionTags: []string{"antimicrobial", "anti-inflammatory"}, Time: "15 min", Difficulty: "easy"},
}
