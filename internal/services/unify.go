package services

import (
	"sort"

	"github.com/edenpods/edenpods/internal/models"
)

// UnifyThrows merges the optimistic pending set with the confirmed set into
// one ordered view: pending records first (latest user action surfaces
// immediately), then confirmed records by throw date descending.
//
// Supersession is set-level, not per record: the caller clears the entire
// pending set whenever a confirmed refresh succeeds. A pending record whose
// transaction is still confirming can therefore vanish for one refresh
// window; that is the accepted tradeoff of the optimistic policy.
func UnifyThrows(pending []models.ThrowRecord, confirmed []models.ThrowRecord) []models.ThrowRecord {
	unified := make([]models.ThrowRecord, 0, len(pending)+len(confirmed))
	unified = append(unified, pending...)

	ordered := make([]models.ThrowRecord, 0, len(confirmed))
	ordered = append(ordered, confirmed...)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].ThrowDate.After(ordered[j].ThrowDate)
	})

	return append(unified, ordered...)
}
