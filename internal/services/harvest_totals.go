package services

import (
	"sort"

	"github.com/edenpods/edenpods/internal/models"
)

// HarvestSummary aggregates harvests by their fixed gram mapping. Totals are
// the literal sum of per-harvest mapped grams.
type HarvestSummary struct {
	Count        int            `json:"count"`
	TotalGrams   int            `json:"total_grams"`
	GramsByPlant map[string]int `json:"grams_by_plant"`
}

// SummarizeHarvests totals a harvest set. Local and on-chain sets are never
// merged in storage; callers pass whichever combination the view needs.
func SummarizeHarvests(records []models.HarvestRecord) HarvestSummary {
	summary := HarvestSummary{GramsByPlant: make(map[string]int)}
	for _, record := range records {
		grams := models.QuantityGrams(record.QuantityClass)
		summary.Count++
		summary.TotalGrams += grams
		summary.GramsByPlant[record.PlantID] += grams
	}
	return summary
}

// OrderHarvests returns the records ordered by harvest time descending.
func OrderHarvests(records []models.HarvestRecord) []models.HarvestRecord {
	ordered := make([]models.HarvestRecord, 0, len(records))
	ordered = append(ordered, records...)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].HarvestedAt.After(ordered[j].HarvestedAt)
	})
	return ordered
}

// ObservedStageIDs returns the distinct stage ids a user has claimed to see
// for one throw. Display affordance only; stage state stays time-derived.
func ObservedStageIDs(observations []models.Observation, throwKey string) []string {
	seen := make(map[string]struct{})
	ids := make([]string, 0)
	for _, observation := range observations {
		if observation.ThrowKey != throwKey {
			continue
		}
		if _, ok := seen[observation.StageID]; ok {
			continue
		}
		seen[observation.StageID] = struct{}{}
		ids = append(ids, observation.StageID)
	}
	return ids
}
