package api

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestRegisterLoginAndMe(t *testing.T) {
	ta := newTestApp(t)
	cookie := ta.registerUser(t, "gardener@example.com")

	resp, body := ta.request(t, http.MethodGet, "/api/auth/me", nil, cookie)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("me: status %d", resp.StatusCode)
	}
	if body["email"] != "gardener@example.com" {
		t.Fatalf("me returned email %v", body["email"])
	}

	resp, _ = ta.request(t, http.MethodPost, "/api/auth/login", map[string]any{
		"email":    "Gardener@Example.com",
		"password": "password123",
	}, "")
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("login with unnormalized email: status %d", resp.StatusCode)
	}
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	ta := newTestApp(t)
	ta.registerUser(t, "gardener@example.com")

	resp, _ := ta.request(t, http.MethodPost, "/api/auth/register", map[string]any{
		"email":    "gardener@example.com",
		"password": "password123",
	}, "")
	if resp.StatusCode != fiber.StatusConflict {
		t.Fatalf("duplicate register: status %d", resp.StatusCode)
	}
}

func TestRegisterValidation(t *testing.T) {
	ta := newTestApp(t)

	cases := []map[string]any{
		{"email": "not-an-email", "password": "password123"},
		{"email": "ok@example.com", "password": "short"},
	}
	for _, payload := range cases {
		resp, _ := ta.request(t, http.MethodPost, "/api/auth/register", payload, "")
		if resp.StatusCode != fiber.StatusBadRequest {
			t.Fatalf("payload %v: status %d", payload, resp.StatusCode)
		}
	}
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	ta := newTestApp(t)
	ta.registerUser(t, "gardener@example.com")

	resp, _ := ta.request(t, http.MethodPost, "/api/auth/login", map[string]any{
		"email":    "gardener@example.com",
		"password": "wrong-password",
	}, "")
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("wrong password: status %d", resp.StatusCode)
	}
}

func TestAuthTokenExpiryFollowsHandlerClock(t *testing.T) {
	ta := newTestApp(t)
	cookie := ta.registerUser(t, "gardener@example.com")

	resp, _ := ta.request(t, http.MethodGet, "/api/auth/me", nil, cookie)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("me before expiry: status %d", resp.StatusCode)
	}

	// A month later the 30-day token is past its exp claim.
	ta.now = ta.now.AddDate(0, 0, 31)
	resp, _ = ta.request(t, http.MethodGet, "/api/auth/me", nil, cookie)
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("me after expiry: status %d", resp.StatusCode)
	}
}

func TestProtectedRoutesRequireAuth(t *testing.T) {
	ta := newTestApp(t)

	for _, path := range []string{"/api/throws", "/api/notifications", "/api/harvests"} {
		resp, _ := ta.request(t, http.MethodGet, path, nil, "")
		if resp.StatusCode != fiber.StatusUnauthorized {
			t.Fatalf("%s without cookie: status %d", path, resp.StatusCode)
		}
	}
}
