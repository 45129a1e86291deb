package db

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/edenpods/edenpods/internal/models"
)

func openTestDB(t *testing.T) *Repositories {
	t.Helper()
	database, err := OpenSQLite(filepath.Join(t.TempDir(), "edenpods.db"))
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	return NewRepositories(database)
}

func TestMigrationsBootstrapAndUserUniqueness(t *testing.T) {
	repos := openTestDB(t)

	user := &models.User{Email: "Gardener@Example.com", PasswordHash: "hash"}
	if err := repos.Users.Create(user); err != nil {
		t.Fatalf("create user: %v", err)
	}
	if user.Email != "gardener@example.com" {
		t.Fatalf("email not normalized on create: %q", user.Email)
	}

	exists, err := repos.Users.ExistsByEmail("  GARDENER@example.com ")
	if err != nil {
		t.Fatalf("ExistsByEmail: %v", err)
	}
	if !exists {
		t.Fatal("expected normalized lookup to find the user")
	}

	duplicate := &models.User{Email: "gardener@example.com", PasswordHash: "hash2"}
	if err := repos.Users.Create(duplicate); err == nil {
		t.Fatal("expected unique email constraint violation")
	}
}

func TestWalletListAndUpdate(t *testing.T) {
	repos := openTestDB(t)

	linked := &models.User{Email: "a@example.com", PasswordHash: "x"}
	unlinked := &models.User{Email: "b@example.com", PasswordHash: "x"}
	for _, u := range []*models.User{linked, unlinked} {
		if err := repos.Users.Create(u); err != nil {
			t.Fatalf("create user: %v", err)
		}
	}

	if err := repos.Users.UpdateWalletAddress(linked.ID, " WALLETADDR "); err != nil {
		t.Fatalf("UpdateWalletAddress: %v", err)
	}

	users, err := repos.Users.ListWithWallet()
	if err != nil {
		t.Fatalf("ListWithWallet: %v", err)
	}
	if len(users) != 1 {
		t.Fatalf("expected 1 linked user, got %d", len(users))
	}
	if users[0].WalletAddress != "WALLETADDR" {
		t.Fatalf("wallet address not trimmed: %q", users[0].WalletAddress)
	}
}

func TestNotificationBatchIsIdempotent(t *testing.T) {
	repos := openTestDB(t)

	user := &models.User{Email: "c@example.com", PasswordHash: "x"}
	if err := repos.Users.Create(user); err != nil {
		t.Fatalf("create user: %v", err)
	}

	batch := []models.Notification{{
		UserID:       user.ID,
		ThrowKey:     "chain-101",
		StageID:      "sprout",
		Title:        "Sprout stage starting",
		ScheduledFor: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
	}}
	if err := repos.Notifications.CreateBatch(batch); err != nil {
		t.Fatalf("first batch: %v", err)
	}
	// Same (throw, stage) pair again: conflict rows are silently skipped.
	if err := repos.Notifications.CreateBatch([]models.Notification{{
		UserID:       user.ID,
		ThrowKey:     "chain-101",
		StageID:      "sprout",
		Title:        "duplicate",
		ScheduledFor: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
	}}); err != nil {
		t.Fatalf("second batch: %v", err)
	}

	notifications, err := repos.Notifications.ListByUser(user.ID)
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(notifications) != 1 {
		t.Fatalf("expected 1 notification after duplicate batch, got %d", len(notifications))
	}

	// Uniqueness is scoped per user: a second account watching the same
	// wallet keeps its own reminder for the identical (throw, stage) pair.
	other := &models.User{Email: "d@example.com", PasswordHash: "x"}
	if err := repos.Users.Create(other); err != nil {
		t.Fatalf("create second user: %v", err)
	}
	if err := repos.Notifications.CreateBatch([]models.Notification{{
		UserID:       other.ID,
		ThrowKey:     "chain-101",
		StageID:      "sprout",
		Title:        "Sprout stage starting",
		ScheduledFor: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
	}}); err != nil {
		t.Fatalf("second user batch: %v", err)
	}
	otherNotifications, err := repos.Notifications.ListByUser(other.ID)
	if err != nil {
		t.Fatalf("ListByUser second user: %v", err)
	}
	if len(otherNotifications) != 1 {
		t.Fatalf("expected second user to keep its own notification, got %d", len(otherNotifications))
	}

	if err := repos.Notifications.MarkAllRead(user.ID); err != nil {
		t.Fatalf("MarkAllRead: %v", err)
	}
	notifications, err = repos.Notifications.ListByUser(user.ID)
	if err != nil {
		t.Fatalf("ListByUser after mark: %v", err)
	}
	if !notifications[0].Read {
		t.Fatal("expected notification marked read")
	}
}
