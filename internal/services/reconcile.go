package services

import (
	"fmt"
	"time"

	"github.com/edenpods/edenpods/internal/catalog"
	"github.com/edenpods/edenpods/internal/models"
)

// ReconcileNotifications computes the notifications that must be created so
// that every record has its future stage reminders seeded. Reconciliation
// works at record granularity: a record whose key already appears among the
// existing notifications is skipped wholesale, so repeated runs against the
// same record set produce an empty delta. Records with an unknown growth
// model are skipped without affecting the rest.
//
// The caller persists the returned notifications merged with the existing
// set; nothing is mutated here.
func ReconcileNotifications(existing []models.Notification, records []models.ThrowRecord, cat *catalog.Catalog, now time.Time) []models.Notification {
	seededKeys := make(map[string]struct{}, len(existing))
	for _, notification := range existing {
		seededKeys[notification.ThrowKey] = struct{}{}
	}

	created := make([]models.Notification, 0)
	for _, record := range records {
		if _, seeded := seededKeys[record.Key]; seeded {
			continue
		}
		model, ok := cat.ModelByID(record.GrowthModelID)
		if !ok {
			continue
		}
		for _, projection := range ProjectNotifications(record.ThrowDate, model, now) {
			created = append(created, StageNotification(record.Key, projection, now))
		}
		seededKeys[record.Key] = struct{}{}
	}
	return created
}

// StageNotification builds the reminder entity for one projected stage
// entry. UserID is assigned by the persisting caller.
func StageNotification(throwKey string, projection StageProjection, now time.Time) models.Notification {
	stage := projection.Stage
	return models.Notification{
		ThrowKey:     throwKey,
		StageID:      stage.ID,
		StageName:    stage.Name,
		StageIcon:    stage.Icon,
		Title:        fmt.Sprintf("%s %s stage starting", stage.Icon, stage.Name),
		Body:         stage.WhatToExpect,
		ScheduledFor: projection.ScheduledFor,
		Read:         false,
		CreatedAt:    now,
	}
}
