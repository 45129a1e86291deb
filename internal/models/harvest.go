package models

import "time"

const (
	QuantitySmall  = "small"
	QuantityMedium = "medium"
	QuantityLarge  = "large"
)

// Harvest is a locally logged harvest. On-chain harvests are decoded from
// ledger notes and kept as a separate set; the two are never merged.
type Harvest struct {
	ID            uint      `gorm:"primaryKey"`
	UserID        uint      `gorm:"not null;index"`
	ThrowKey      string    `gorm:"not null;index"`
	PlantID       string    `gorm:"not null"`
	QuantityClass string    `gorm:"not null;default:small"`
	HarvestedAt   time.Time `gorm:"not null"`
	Notes         string
	CreatedAt     time.Time
}

// HarvestRecord is the provenance-neutral view of a harvest. Confirmed
// records carry the ledger transaction id; local records carry none.
type HarvestRecord struct {
	TxID          string    `json:"tx_id,omitempty"`
	ThrowKey      string    `json:"throw_key"`
	PlantID       string    `json:"plant_id"`
	QuantityClass string    `json:"quantity_class"`
	Grams         int       `json:"grams"`
	HarvestedAt   time.Time `json:"harvested_at"`
	Notes         string    `json:"notes,omitempty"`
	ConfirmedAt   time.Time `json:"confirmed_at,omitempty"`
}

// Record converts a local harvest into its provenance-neutral view.
func (h Harvest) Record() HarvestRecord {
	return HarvestRecord{
		ThrowKey:      h.ThrowKey,
		PlantID:       h.PlantID,
		QuantityClass: h.QuantityClass,
		Grams:         QuantityGrams(h.QuantityClass),
		HarvestedAt:   h.HarvestedAt,
		Notes:         h.Notes,
	}
}

// QuantityGrams maps a quantity class to its nominal gram weight.
func QuantityGrams(class string) int {
	switch class {
	case QuantitySmall:
		return 50
	case QuantityMedium:
		return 150
	case QuantityLarge:
		return 400
	default:
		return 0
	}
}

// ValidQuantityClass reports whether class is one of the fixed enumeration.
func ValidQuantityClass(class string) bool {
	return QuantityGrams(class) > 0
}
