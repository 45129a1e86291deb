package models

import "time"

// Observation is a user-claimed sighting of a growth stage. Append-only;
// stage state stays time-derived, observations never feed the resolver.
type Observation struct {
	ID         uint      `gorm:"primaryKey"`
	UserID     uint      `gorm:"not null;index"`
	ThrowKey   string    `gorm:"not null;index"`
	StageID    string    `gorm:"not null"`
	ObservedAt time.Time `gorm:"not null"`
	Notes      string
}
