package catalog

// GrowthStage is one time-boxed phase of a growth model. DayStart is
// inclusive, DayEnd exclusive; within a model stages are ordered by
// DayStart ascending and never overlap, with the first stage starting at
// day 0. Gaps between stages are dormancy windows (temperate shrubs pause
// between establishing and first flowering); a throw stays in the prior
// stage until the next DayStart arrives. The last stage is open-ended: its
// DayEnd only bounds progress display.
type GrowthStage struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Icon         string `json:"icon"`
	DayStart     int    `json:"day_start"`
	DayEnd       int    `json:"day_end"`
	Color        string `json:"color"`
	Description  string `json:"description"`
	WhatToExpect string `json:"what_to_expect"`
}

// GrowthModel is a named ordered sequence of growth stages. Immutable
// reference data, loaded once at process start.
type GrowthModel struct {
	ID     string        `json:"id"`
	Name   string        `json:"name"`
	Stages []GrowthStage `json:"stages"`
}

type PodType struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Icon          string   `json:"icon"`
	Description   string   `json:"description"`
	Plants        []string `json:"plants"`
	GrowthModelID string   `json:"growth_model_id"`
	NutritionTags []string `json:"nutrition_tags"`
	Difficulty    string   `json:"difficulty"`
	Color         string   `json:"color"`
}

type Recipe struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Icon          string   `json:"icon"`
	Plants        []string `json:"plants"`
	Instructions  string   `json:"instructions"`
	NutritionTags []string `json:"nutrition_tags"`
	Time          string   `json:"time"`
	Difficulty    string   `json:"difficulty"`
}

// Catalog bundles the static reference data and its lookup indexes.
type Catalog struct {
	GrowthModels []GrowthModel
	PodTypes     []PodType
	Recipes      []Recipe

	modelsByID   map[string]GrowthModel
	podTypesByID map[string]PodType
}

// Default returns the built-in catalog with lookup indexes ready.
func Default() *Catalog {
	catalog := &Catalog{
		GrowthModels: growthModels,
		PodTypes:     podTypes,
		Recipes:      recipes,
		modelsByID:   make(map[string]GrowthModel, len(growthModels)),
		podTypesByID: make(map[string]PodType, len(podTypes)),
	}
	for _, model := range growthModels {
		catalog.modelsByID[model.ID] = model
	}
	for _, pod := range podTypes {
		catalog.podTypesByID[pod.ID] = pod
	}
	return catalog
}

func (c *Catalog) ModelByID(id string) (GrowthModel, bool) {
	model, ok := c.modelsByID[id]
	return model, ok
}

func (c *Catalog) PodTypeByID(id string) (PodType, bool) {
	pod, ok := c.podTypesByID[id]
	return pod, ok
}
