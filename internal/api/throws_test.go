package api

import (
	"net/http"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/edenpods/edenpods/internal/models"
)

func TestCreateLocalThrowSeedsNotifications(t *testing.T) {
	ta := newTestApp(t)
	cookie := ta.registerUser(t, "gardener@example.com")

	resp, body := ta.request(t, http.MethodPost, "/api/throws", map[string]any{
		"pod_type_id":    "pod-meadow-mix",
		"throw_date":     ta.now.Format(time.RFC3339),
		"location_label": "Back garden",
	}, cookie)
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("create throw: status %d body %v", resp.StatusCode, body)
	}

	record, ok := body["record"].(map[string]any)
	if !ok {
		t.Fatalf("create throw returned no record: %v", body)
	}
	key, _ := record["key"].(string)
	if key == "" {
		t.Fatal("created throw has no key")
	}

	stage, ok := body["stage"].(map[string]any)
	if !ok {
		t.Fatalf("create throw returned no stage: %v", body)
	}
	if stage["elapsed_days"] != float64(0) {
		t.Fatalf("fresh throw elapsed days = %v", stage["elapsed_days"])
	}

	user, err := ta.repos.Users.FindByEmail("gardener@example.com")
	if err != nil || user == nil {
		t.Fatalf("load user: %v", err)
	}
	notifications, err := ta.repos.Notifications.ListByUser(user.ID)
	if err != nil {
		t.Fatalf("list notifications: %v", err)
	}
	// A throw started today gets a reminder for every stage of its model.
	if len(notifications) != 6 {
		t.Fatalf("expected 6 seeded notifications, got %d", len(notifications))
	}
	for _, notification := range notifications {
		if notification.ThrowKey != key {
			t.Fatalf("notification seeded for wrong key %q", notification.ThrowKey)
		}
		if notification.UserID != user.ID {
			t.Fatalf("notification seeded without user: %+v", notification)
		}
	}
}

func TestCreateThrowRejectsUnknownPodType(t *testing.T) {
	ta := newTestApp(t)
	cookie := ta.registerUser(t, "gardener@example.com")

	resp, _ := ta.request(t, http.MethodPost, "/api/throws", map[string]any{
		"pod_type_id": "pod-martian-moss",
	}, cookie)
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("unknown pod type: status %d", resp.StatusCode)
	}
}

func TestThrowDetailWithObservationsAndHarvests(t *testing.T) {
	ta := newTestApp(t)
	cookie := ta.registerUser(t, "gardener@example.com")

	_, body := ta.request(t, http.MethodPost, "/api/throws", map[string]any{
		"pod_type_id": "pod-meadow-mix",
		"throw_date":  ta.now.AddDate(0, 0, -45).Format(time.RFC3339),
	}, cookie)
	key := body["record"].(map[string]any)["key"].(string)

	resp, _ := ta.request(t, http.MethodPost, "/api/throws/"+key+"/observations", map[string]any{
		"stage_id": "leafing",
	}, cookie)
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("create observation: status %d", resp.StatusCode)
	}

	resp, _ = ta.request(t, http.MethodPost, "/api/throws/"+key+"/observations", map[string]any{
		"stage_id": "metamorphosis",
	}, cookie)
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("unknown stage observation: status %d", resp.StatusCode)
	}

	resp, _ = ta.request(t, http.MethodPost, "/api/throws/"+key+"/harvests", map[string]any{
		"plant_id":       "nettle",
		"quantity_class": "large",
	}, cookie)
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("create harvest: status %d", resp.StatusCode)
	}

	resp, _ = ta.request(t, http.MethodPost, "/api/throws/"+key+"/harvests", map[string]any{
		"plant_id":       "nettle",
		"quantity_class": "gigantic",
	}, cookie)
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("invalid quantity class: status %d", resp.StatusCode)
	}

	resp, detail := ta.request(t, http.MethodGet, "/api/throws/"+key, nil, cookie)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("throw detail: status %d", resp.StatusCode)
	}

	stage := detail["stage"].(map[string]any)["stage"].(map[string]any)
	if stage["id"] != "leafing" {
		t.Fatalf("45-day throw resolved to stage %v", stage["id"])
	}
	next := detail["next_stage"].(map[string]any)
	if next["id"] != "flowering" {
		t.Fatalf("next stage = %v", next["id"])
	}

	observed, _ := detail["observed_stage_ids"].([]any)
	if len(observed) != 1 || observed[0] != "leafing" {
		t.Fatalf("observed stage ids = %v", observed)
	}

	summary := detail["harvest_summary"].(map[string]any)
	if summary["total_grams"] != float64(400) {
		t.Fatalf("harvest total = %v", summary["total_grams"])
	}
}

func TestThrowDetailNotFound(t *testing.T) {
	ta := newTestApp(t)
	cookie := ta.registerUser(t, "gardener@example.com")

	resp, _ := ta.request(t, http.MethodGet, "/api/throws/no-such-key", nil, cookie)
	if resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("missing throw: status %d", resp.StatusCode)
	}
}

func TestRefreshUnifiesChainRecords(t *testing.T) {
	ta := newTestApp(t)
	cookie := ta.registerUser(t, "gardener@example.com")

	ta.ledger.throws = []models.ThrowRecord{{
		Key:           models.ChainThrowKey(101),
		AsaID:         101,
		PodTypeID:     "pod-meadow-mix",
		GrowthModelID: "temperate-herb",
		ThrowDate:     ta.now.AddDate(0, 0, -45),
		ConfirmedAt:   ta.now.AddDate(0, 0, -44),
	}}

	resp, _ := ta.request(t, http.MethodPost, "/api/refresh", nil, cookie)
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("refresh without wallet: status %d", resp.StatusCode)
	}

	resp, _ = ta.request(t, http.MethodPost, "/api/wallet", map[string]any{
		"address": "walletaddr",
	}, cookie)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("link wallet: status %d", resp.StatusCode)
	}

	resp, _ = ta.request(t, http.MethodPost, "/api/refresh", nil, cookie)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("refresh: status %d", resp.StatusCode)
	}

	resp, body := ta.request(t, http.MethodGet, "/api/throws", nil, cookie)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("list throws: status %d", resp.StatusCode)
	}
	throws, _ := body["throws"].([]any)
	if len(throws) != 1 {
		t.Fatalf("expected 1 unified throw, got %d", len(throws))
	}
	record := throws[0].(map[string]any)["record"].(map[string]any)
	if record["key"] != "chain-101" {
		t.Fatalf("unified record key = %v", record["key"])
	}

	user, err := ta.repos.Users.FindByEmail("gardener@example.com")
	if err != nil || user == nil {
		t.Fatalf("load user: %v", err)
	}
	notifications, err := ta.repos.Notifications.ListByUser(user.ID)
	if err != nil {
		t.Fatalf("list notifications: %v", err)
	}
	// 45 days in: only flowering, fruiting and spread remain ahead.
	if len(notifications) != 3 {
		t.Fatalf("expected 3 seeded notifications, got %d", len(notifications))
	}
}

func TestDueNotificationsEndpoint(t *testing.T) {
	ta := newTestApp(t)
	cookie := ta.registerUser(t, "gardener@example.com")

	user, err := ta.repos.Users.FindByEmail("gardener@example.com")
	if err != nil || user == nil {
		t.Fatalf("load user: %v", err)
	}
	if err := ta.repos.Notifications.CreateBatch([]models.Notification{
		{UserID: user.ID, ThrowKey: "t1", StageID: "sprout", ScheduledFor: ta.now.AddDate(0, 0, -1)},
		{UserID: user.ID, ThrowKey: "t1", StageID: "leafing", ScheduledFor: ta.now.AddDate(0, 0, 5)},
	}); err != nil {
		t.Fatalf("seed notifications: %v", err)
	}

	resp, body := ta.request(t, http.MethodGet, "/api/notifications/due", nil, cookie)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("due: status %d", resp.StatusCode)
	}
	due, _ := body["notifications"].([]any)
	if len(due) != 1 {
		t.Fatalf("expected 1 due notification, got %d", len(due))
	}

	resp, _ = ta.request(t, http.MethodPost, "/api/notifications/read-all", nil, cookie)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("read-all: status %d", resp.StatusCode)
	}

	_, body = ta.request(t, http.MethodGet, "/api/notifications/due", nil, cookie)
	due, _ = body["notifications"].([]any)
	if len(due) != 0 {
		t.Fatalf("expected no due notifications after read-all, got %d", len(due))
	}
}

func TestBirthrightEndpoint(t *testing.T) {
	ta := newTestApp(t)

	resp, body := ta.request(t, http.MethodGet, "/api/birthright?pods=2&years=3", nil, "")
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("birthright: status %d", resp.StatusCode)
	}
	projection, _ := body["projection"].([]any)
	if len(projection) != 4 {
		t.Fatalf("expected 4 projection rows, got %d", len(projection))
	}
	last := projection[3].(map[string]any)
	if last["pods"] != float64(16) {
		t.Fatalf("year 3 pods = %v", last["pods"])
	}

	resp, _ = ta.request(t, http.MethodGet, "/api/birthright?years=200", nil, "")
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("invalid years: status %d", resp.StatusCode)
	}
}
