package catalog

import "testing"

func TestStagesOrderedAndNonOverlapping(t *testing.T) {
	for _, model := range Default().GrowthModels {
		if len(model.Stages) == 0 {
			t.Fatalf("model %s has no stages", model.ID)
		}
		if model.Stages[0].DayStart != 0 {
			t.Fatalf("model %s: first stage starts at day %d, expected 0", model.ID, model.Stages[0].DayStart)
		}
		for i, stage := range model.Stages {
			if stage.DayEnd <= stage.DayStart {
				t.Fatalf("model %s: stage %s ends (%d) before it starts (%d)", model.ID, stage.ID, stage.DayEnd, stage.DayStart)
			}
			if i == 0 {
				continue
			}
			previous := model.Stages[i-1]
			if stage.DayStart <= previous.DayStart {
				t.Fatalf("model %s: stage %s does not start after %s", model.ID, stage.ID, previous.ID)
			}
			// Gaps are allowed (dormancy windows), overlaps are not.
			if stage.DayStart < previous.DayEnd {
				t.Fatalf("model %s: stage %s (starts %d) overlaps %s (ends %d)",
					model.ID, stage.ID, stage.DayStart, previous.ID, previous.DayEnd)
			}
		}
	}
}

// Temperate shrubs go dormant after establishing: leafing ends day 120 and
// flowering does not start until day 365. The window in between belongs to
// the leafing stage for resolution purposes.
func TestTemperateShrubDormancyGap(t *testing.T) {
	model, ok := Default().ModelByID("temperate-shrub")
	if !ok {
		t.Fatal("expected temperate-shrub model")
	}
	leafing := model.Stages[2]
	flowering := model.Stages[3]
	if leafing.DayEnd != 120 || flowering.DayStart != 365 {
		t.Fatalf("dormancy window changed: leafing ends %d, flowering starts %d", leafing.DayEnd, flowering.DayStart)
	}
}

func TestPodTypesReferenceKnownModels(t *testing.T) {
	catalog := Default()
	for _, pod := range catalog.PodTypes {
		if _, ok := catalog.ModelByID(pod.GrowthModelID); !ok {
			t.Fatalf("pod type %s references unknown growth model %s", pod.ID, pod.GrowthModelID)
		}
	}
}

func TestModelLookup(t *testing.T) {
	catalog := Default()

	model, ok := catalog.ModelByID("temperate-herb")
	if !ok {
		t.Fatal("expected temperate-herb model")
	}
	if len(model.Stages) != 6 {
		t.Fatalf("expected 6 stages, got %d", len(model.Stages))
	}

	if _, ok := catalog.ModelByID("arctic-moss"); ok {
		t.Fatal("unexpected lookup hit for unknown model")
	}
}
