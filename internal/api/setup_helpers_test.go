package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/edenpods/edenpods/internal/catalog"
	"github.com/edenpods/edenpods/internal/db"
	"github.com/edenpods/edenpods/internal/models"
	"github.com/edenpods/edenpods/internal/services"
)

type stubLedger struct {
	throws   []models.ThrowRecord
	harvests []models.HarvestRecord
	err      error
}

func (ledger *stubLedger) FetchThrows(ctx context.Context, address string) ([]models.ThrowRecord, error) {
	if ledger.err != nil {
		return nil, ledger.err
	}
	return ledger.throws, nil
}

func (ledger *stubLedger) FetchHarvests(ctx context.Context, address string) ([]models.HarvestRecord, error) {
	if ledger.err != nil {
		return nil, ledger.err
	}
	return ledger.harvests, nil
}

type testApp struct {
	app     *fiber.App
	handler *Handler
	repos   *db.Repositories
	ledger  *stubLedger
	now     time.Time
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	database, err := db.OpenSQLite(filepath.Join(t.TempDir(), "edenpods.db"))
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	repos := db.NewRepositories(database)
	ledger := &stubLedger{}
	cat := catalog.Default()

	refresh := services.NewRefreshService(ledger, repos.Notifications, cat)
	handler := NewHandler(repos, "test-secret", cat, refresh, nil, false)

	app := fiber.New()
	RegisterRoutes(app, handler)

	ta := &testApp{
		app:     app,
		handler: handler,
		repos:   repos,
		ledger:  ledger,
		now:     time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC),
	}
	// Both clocks read through ta.now so tests can advance time.
	refresh.SetClock(func() time.Time { return ta.now })
	handler.SetClock(func() time.Time { return ta.now })
	return ta
}

func (ta *testApp) request(t *testing.T, method string, path string, body any, cookie string) (*http.Response, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("encode request body: %v", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if cookie != "" {
		req.Header.Set("Cookie", cookie)
	}

	resp, err := ta.app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read response body: %v", err)
	}
	decoded := make(map[string]any)
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &decoded); err != nil {
			t.Fatalf("decode response %q: %v", string(raw), err)
		}
	}
	return resp, decoded
}

// registerUser creates an account and returns its auth cookie.
func (ta *testApp) registerUser(t *testing.T, email string) string {
	t.Helper()

	resp, _ := ta.request(t, http.MethodPost, "/api/auth/register", map[string]any{
		"email":    email,
		"password": "password123",
	}, "")
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("register %s: status %d", email, resp.StatusCode)
	}

	for _, cookie := range resp.Cookies() {
		if cookie.Name == authCookieName {
			return cookie.Name + "=" + cookie.Value
		}
	}
	t.Fatal("register response set no auth cookie")
	return ""
}
