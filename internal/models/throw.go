package models

import (
	"fmt"
	"time"
)

// Throw is a locally created pod-throw record. Immutable once created.
type Throw struct {
	ID            uint      `gorm:"primaryKey"`
	UserID        uint      `gorm:"not null;index"`
	Key           string    `gorm:"uniqueIndex;not null"`
	PodTypeID     string    `gorm:"not null"`
	GrowthModelID string    `gorm:"not null"`
	ThrowDate     time.Time `gorm:"not null"`
	LocationLabel string
	Notes         string
	CreatedAt     time.Time
}

// ThrowRecord is the provenance-neutral view of a throw used by the
// unifier and the notification reconciler. Confirmed records carry the
// ledger asset id; pending records keep AsaID zero until superseded.
type ThrowRecord struct {
	Key           string    `json:"key"`
	AsaID         uint64    `json:"asa_id"`
	TxID          string    `json:"tx_id,omitempty"`
	PodTypeID     string    `json:"pod_type_id"`
	GrowthModelID string    `json:"growth_model_id"`
	ThrowDate     time.Time `json:"throw_date"`
	LocationLabel string    `json:"location_label"`
	Notes         string    `json:"notes,omitempty"`
	ThrownBy      string    `json:"thrown_by,omitempty"`
	ConfirmedAt   time.Time `json:"confirmed_at,omitempty"`
	Pending       bool      `json:"pending"`
	ExplorerURL   string    `json:"explorer_url,omitempty"`
}

// ChainThrowKey derives the stable record key for a confirmed throw from
// its ledger asset id. Repeated refreshes of the same asset must always
// produce the same key.
func ChainThrowKey(asaID uint64) string {
	return fmt.Sprintf("chain-%d", asaID)
}

// Record converts a local throw into its provenance-neutral view.
func (t Throw) Record() ThrowRecord {
	return ThrowRecord{
		Key:           t.Key,
		PodTypeID:     t.PodTypeID,
		GrowthModelID: t.GrowthModelID,
		ThrowDate:     t.ThrowDate,
		LocationLabel: t.LocationLabel,
		Notes:         t.Notes,
	}
}
