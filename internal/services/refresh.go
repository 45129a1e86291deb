package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/edenpods/edenpods/internal/catalog"
	"github.com/edenpods/edenpods/internal/models"
)

// ErrRefreshInFlight is returned when a refresh trigger overlaps one still
// running for the same user. The second trigger is dropped, not queued.
var ErrRefreshInFlight = errors.New("refresh already in flight")

// LedgerReader fetches confirmed records for a wallet address.
type LedgerReader interface {
	FetchThrows(ctx context.Context, address string) ([]models.ThrowRecord, error)
	FetchHarvests(ctx context.Context, address string) ([]models.HarvestRecord, error)
}

// NotificationStore persists reminder entities for the reconciler.
type NotificationStore interface {
	ListByUser(userID uint) ([]models.Notification, error)
	CreateBatch(notifications []models.Notification) error
}

// WalletLister enumerates users with a linked wallet, for the poller.
type WalletLister interface {
	ListWithWallet() ([]models.User, error)
}

type walletSession struct {
	confirmedThrows   []models.ThrowRecord
	confirmedHarvests []models.HarvestRecord
	pending           []models.ThrowRecord
	refreshedAt       time.Time
}

// RefreshService owns the per-user confirmed snapshot and pending set. A
// failed fetch leaves both untouched; a successful one replaces the
// snapshot, clears the pending set, and seeds notifications for any newly
// discovered records before the next due-filter evaluation.
type RefreshService struct {
	reader  LedgerReader
	store   NotificationStore
	catalog *catalog.Catalog
	clock   func() time.Time

	mu       sync.Mutex
	sessions map[uint]*walletSession
	inFlight map[uint]bool
}

func NewRefreshService(reader LedgerReader, store NotificationStore, cat *catalog.Catalog) *RefreshService {
	return &RefreshService{
		reader:   reader,
		store:    store,
		catalog:  cat,
		clock:    time.Now,
		sessions: make(map[uint]*walletSession),
		inFlight: make(map[uint]bool),
	}
}

// SetClock overrides the time source. Test hook.
func (service *RefreshService) SetClock(clock func() time.Time) {
	service.clock = clock
}

// AddPending registers an optimistic record shown until the next successful
// refresh supersedes it.
func (service *RefreshService) AddPending(userID uint, record models.ThrowRecord) {
	record.Pending = true
	service.mu.Lock()
	defer service.mu.Unlock()
	session := service.session(userID)
	session.pending = append([]models.ThrowRecord{record}, session.pending...)
}

// Throws returns the unified view: pending first, confirmed by throw date
// descending.
func (service *RefreshService) Throws(userID uint) []models.ThrowRecord {
	service.mu.Lock()
	defer service.mu.Unlock()
	session := service.session(userID)
	return UnifyThrows(session.pending, session.confirmedThrows)
}

// Harvests returns the confirmed on-chain harvest set.
func (service *RefreshService) Harvests(userID uint) []models.HarvestRecord {
	service.mu.Lock()
	defer service.mu.Unlock()
	session := service.session(userID)
	records := make([]models.HarvestRecord, 0, len(session.confirmedHarvests))
	return append(records, session.confirmedHarvests...)
}

// Refresh fetches the confirmed record sets for one user and reconciles
// notifications. Overlapping triggers are dropped with ErrRefreshInFlight.
// On fetch failure the previous snapshot and pending set stay untouched.
func (service *RefreshService) Refresh(ctx context.Context, userID uint, address string) error {
	service.mu.Lock()
	if service.inFlight[userID] {
		service.mu.Unlock()
		return ErrRefreshInFlight
	}
	service.inFlight[userID] = true
	service.mu.Unlock()

	defer func() {
		service.mu.Lock()
		delete(service.inFlight, userID)
		service.mu.Unlock()
	}()

	throws, err := service.reader.FetchThrows(ctx, address)
	if err != nil {
		return fmt.Errorf("fetch throws: %w", err)
	}
	harvests, err := service.reader.FetchHarvests(ctx, address)
	if err != nil {
		return fmt.Errorf("fetch harvests: %w", err)
	}

	resolvable := make([]models.ThrowRecord, 0, len(throws))
	for _, record := range throws {
		if _, ok := service.catalog.ModelByID(record.GrowthModelID); !ok {
			log.Printf("refresh: skipping asset %d with unknown growth model %q", record.AsaID, record.GrowthModelID)
			continue
		}
		resolvable = append(resolvable, record)
	}

	service.mu.Lock()
	session := service.session(userID)
	session.confirmedThrows = resolvable
	session.confirmedHarvests = harvests
	session.pending = nil
	session.refreshedAt = service.clock()
	service.mu.Unlock()

	return service.seedNotifications(userID, resolvable)
}

// seedNotifications backfills reminders for confirmed records the store has
// not seen yet. Runs to completion before Refresh returns, so the next
// due-filter evaluation sees the full set.
func (service *RefreshService) seedNotifications(userID uint, records []models.ThrowRecord) error {
	existing, err := service.store.ListByUser(userID)
	if err != nil {
		return fmt.Errorf("list notifications: %w", err)
	}

	created := ReconcileNotifications(existing, records, service.catalog, service.clock())
	if len(created) == 0 {
		return nil
	}
	for index := range created {
		created[index].UserID = userID
	}
	if err := service.store.CreateBatch(created); err != nil {
		return fmt.Errorf("persist notifications: %w", err)
	}
	return nil
}

// Start launches the poller: every interval it refreshes each user with a
// linked wallet. The observed client cadence is one minute.
func (service *RefreshService) Start(ctx context.Context, wallets WalletLister, interval time.Duration) {
	if interval <= 0 {
		interval = time.Minute
	}

	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()

		service.runOnce(ctx, wallets)
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				service.runOnce(ctx, wallets)
			}
		}
	}()
}

func (service *RefreshService) runOnce(ctx context.Context, wallets WalletLister) {
	users, err := wallets.ListWithWallet()
	if err != nil {
		log.Printf("refresh poll: list wallets failed: %v", err)
		return
	}

	for _, user := range users {
		if err := service.Refresh(ctx, user.ID, user.WalletAddress); err != nil {
			if errors.Is(err, ErrRefreshInFlight) {
				continue
			}
			log.Printf("refresh poll: user %d failed: %v", user.ID, err)
		}
	}
}

func (service *RefreshService) session(userID uint) *walletSession {
	session, ok := service.sessions[userID]
	if !ok {
		session = &walletSession{}
		service.sessions[userID] = session
	}
	return session
}
