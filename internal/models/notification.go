package models

import "time"

// Notification is a generated stage-entry reminder. At most one exists per
// (user, throw key, stage) triple — two accounts watching the same wallet
// each keep their own reminders. Stages already elapsed at generation time
// are never backfilled.
type Notification struct {
	ID           uint      `gorm:"primaryKey"`
	UserID       uint      `gorm:"not null;index;uniqueIndex:uidx_throw_stage"`
	ThrowKey     string    `gorm:"not null;uniqueIndex:uidx_throw_stage"`
	StageID      string    `gorm:"not null;uniqueIndex:uidx_throw_stage"`
	StageName    string
	StageIcon    string
	Title        string
	Body         string
	ScheduledFor time.Time `gorm:"not null;index"`
	Read         bool      `gorm:"not null;default:false"`
	CreatedAt    time.Time
}
