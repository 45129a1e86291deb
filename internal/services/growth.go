package services

import (
	"time"

	"github.com/edenpods/edenpods/internal/catalog"
)

// StageStatus is the time-derived position of a throw in its lifecycle.
type StageStatus struct {
	Stage       catalog.GrowthStage `json:"stage"`
	StageIndex  int                 `json:"stage_index"`
	ElapsedDays int                 `json:"elapsed_days"`
	Progress    float64             `json:"progress"`
}

// ResolveStage computes the current stage for a throw started at throwDate.
// Callers supply now; the function never samples the wall clock. A throw
// dated in the future resolves to the first stage with zero progress.
func ResolveStage(throwDate time.Time, model catalog.GrowthModel, now time.Time) StageStatus {
	elapsedDays := int(now.Sub(throwDate).Hours() / 24)

	stageIndex := 0
	for index, stage := range model.Stages {
		if elapsedDays >= stage.DayStart {
			stageIndex = index
		}
	}

	stage := model.Stages[stageIndex]
	stageLength := stage.DayEnd - stage.DayStart
	if stageLength < 1 {
		stageLength = 1
	}

	progress := float64(elapsedDays-stage.DayStart) / float64(stageLength) * 100
	if progress < 0 {
		progress = 0
	}
	if progress > 100 {
		progress = 100
	}

	return StageStatus{
		Stage:       stage,
		StageIndex:  stageIndex,
		ElapsedDays: elapsedDays,
		Progress:    progress,
	}
}

// NextStage returns the stage immediately after the current one in model
// order, or ok=false when the throw is already in its last stage.
func NextStage(throwDate time.Time, model catalog.GrowthModel, now time.Time) (catalog.GrowthStage, bool) {
	status := ResolveStage(throwDate, model, now)
	if status.StageIndex+1 >= len(model.Stages) {
		return catalog.GrowthStage{}, false
	}
	return model.Stages[status.StageIndex+1], true
}

// StageProjection is a future stage entry with its scheduled moment.
type StageProjection struct {
	Stage        catalog.GrowthStage
	ScheduledFor time.Time
}

// ProjectNotifications lists every stage of the model whose entry moment
// (throwDate + DayStart days) has not yet passed, in model order. Stages
// already elapsed are skipped permanently: a throw logged six months late
// gets no backlog of reminders.
func ProjectNotifications(throwDate time.Time, model catalog.GrowthModel, now time.Time) []StageProjection {
	projections := make([]StageProjection, 0, len(model.Stages))
	for _, stage := range model.Stages {
		scheduledFor := throwDate.AddDate(0, 0, stage.DayStart)
		if scheduledFor.Before(now) {
			continue
		}
		projections = append(projections, StageProjection{
			Stage:        stage,
			ScheduledFor: scheduledFor,
		})
	}
	return projections
}
