package chain

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"time"

	"github.com/edenpods/edenpods/internal/models"
)

// Default public testnet endpoints. No API key required.
const (
	DefaultIndexerURL  = "https://testnet-idx.algonode.cloud"
	DefaultExplorerURL = "https://testnet.explorer.perawallet.app"
)

// Config carries the indexer client settings.
type Config struct {
	IndexerURL  string
	ExplorerURL string
	Timeout     time.Duration
	Cache       NoteCache
}

// Client reads confirmed eden records back out of the ledger through a
// block-explorer indexer. It implements services.LedgerReader.
type Client struct {
	baseURL     string
	explorerURL string
	http        *http.Client
	cache       NoteCache
}

func NewClient(cfg Config) *Client {
	if cfg.IndexerURL == "" {
		cfg.IndexerURL = DefaultIndexerURL
	}
	if cfg.ExplorerURL == "" {
		cfg.ExplorerURL = DefaultExplorerURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	cache := cfg.Cache
	if cache == nil {
		cache = noopNoteCache{}
	}
	return &Client{
		baseURL:     cfg.IndexerURL,
		explorerURL: cfg.ExplorerURL,
		http:        &http.Client{Timeout: cfg.Timeout},
		cache:       cache,
	}
}

type indexerAsset struct {
	Index uint64 `json:"index"`
}

type indexerTransaction struct {
	ID        string `json:"id"`
	Note      string `json:"note"`
	RoundTime int64  `json:"round-time"`
}

type assetsResponse struct {
	Assets []indexerAsset `json:"assets"`
}

type transactionsResponse struct {
	Transactions []indexerTransaction `json:"transactions"`
}

// FetchThrows lists the throws minted by the address: every asset it
// created whose latest config transaction carries a valid eden throw note.
// Assets with foreign or invalid notes are skipped; only transport or
// decode-the-response failures fail the fetch as a whole.
func (client *Client) FetchThrows(ctx context.Context, address string) ([]models.ThrowRecord, error) {
	var assets assetsResponse
	query := url.Values{"creator": {address}}
	if err := client.getJSON(ctx, "/v2/assets", query, &assets); err != nil {
		return nil, fmt.Errorf("search assets: %w", err)
	}

	records := make([]models.ThrowRecord, 0, len(assets.Assets))
	for _, asset := range assets.Assets {
		record, ok, err := client.fetchThrowRecord(ctx, asset.Index, address)
		if err != nil {
			return nil, err
		}
		if ok {
			records = append(records, record)
		}
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].ThrowDate.After(records[j].ThrowDate)
	})
	return records, nil
}

func (client *Client) fetchThrowRecord(ctx context.Context, asaID uint64, address string) (models.ThrowRecord, bool, error) {
	var transactions transactionsResponse
	if err := client.getAssetConfigTxns(ctx, asaID, &transactions); err != nil {
		return models.ThrowRecord{}, false, err
	}
	if len(transactions.Transactions) == 0 {
		return models.ThrowRecord{}, false, nil
	}

	// The latest config transaction carries the current metadata
	// (ARC-69 update pattern).
	latest := transactions.Transactions[len(transactions.Transactions)-1]
	note, ok := decodeTransactionNote(latest.Note)
	if !ok || note.Type != NoteTypeThrow {
		return models.ThrowRecord{}, false, nil
	}

	confirmedAt := time.Unix(latest.RoundTime, 0).UTC()
	return models.ThrowRecord{
		Key:           models.ChainThrowKey(asaID),
		AsaID:         asaID,
		TxID:          latest.ID,
		PodTypeID:     note.Throw.PodTypeID,
		GrowthModelID: note.Throw.GrowthModelID,
		ThrowDate:     note.Throw.ThrowDate,
		LocationLabel: note.Throw.LocationLabel,
		ThrownBy:      note.Throw.ThrownBy,
		ConfirmedAt:   confirmedAt,
		ExplorerURL:   client.ExplorerAssetURL(asaID),
	}, true, nil
}

// getAssetConfigTxns serves the per-asset transaction lookup from the note
// cache when possible; confirmed config transactions change rarely.
func (client *Client) getAssetConfigTxns(ctx context.Context, asaID uint64, out *transactionsResponse) error {
	cacheKey := "eden:asset-acfg:" + strconv.FormatUint(asaID, 10)
	if cached, ok := client.cache.Get(ctx, cacheKey); ok {
		if err := json.Unmarshal(cached, out); err == nil {
			return nil
		}
		log.Printf("indexer: discarding corrupt cache entry %s", cacheKey)
	}

	query := url.Values{
		"asset-id": {strconv.FormatUint(asaID, 10)},
		"tx-type":  {"acfg"},
	}
	body, err := client.get(ctx, "/v2/transactions", query)
	if err != nil {
		return fmt.Errorf("asset %d config txns: %w", asaID, err)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("asset %d config txns: decode: %w", asaID, err)
	}

	client.cache.Set(ctx, cacheKey, body)
	return nil
}

// FetchHarvests lists harvest records: zero-amount self-payments from the
// address carrying valid eden harvest notes.
func (client *Client) FetchHarvests(ctx context.Context, address string) ([]models.HarvestRecord, error) {
	var transactions transactionsResponse
	query := url.Values{
		"address":      {address},
		"address-role": {"sender"},
		"tx-type":      {"pay"},
	}
	if err := client.getJSON(ctx, "/v2/transactions", query, &transactions); err != nil {
		return nil, fmt.Errorf("search payment txns: %w", err)
	}

	records := make([]models.HarvestRecord, 0)
	for _, txn := range transactions.Transactions {
		note, ok := decodeTransactionNote(txn.Note)
		if !ok || note.Type != NoteTypeHarvest {
			continue
		}
		records = append(records, models.HarvestRecord{
			TxID:          txn.ID,
			ThrowKey:      models.ChainThrowKey(note.Harvest.ThrowAsaID),
			PlantID:       note.Harvest.PlantID,
			QuantityClass: note.Harvest.QuantityClass,
			Grams:         models.QuantityGrams(note.Harvest.QuantityClass),
			HarvestedAt:   note.Harvest.HarvestedAt,
			Notes:         note.Harvest.Notes,
			ConfirmedAt:   time.Unix(txn.RoundTime, 0).UTC(),
		})
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].HarvestedAt.After(records[j].HarvestedAt)
	})
	return records, nil
}

// decodeTransactionNote unwraps the base64 note field and strictly decodes
// it. Foreign and invalid notes both report !ok: one record never fails a
// whole fetch.
func decodeTransactionNote(noteB64 string) (Note, bool) {
	if noteB64 == "" {
		return Note{}, false
	}
	raw, err := base64.StdEncoding.DecodeString(noteB64)
	if err != nil {
		return Note{}, false
	}
	note, err := DecodeNote(raw)
	if err != nil {
		if errors.Is(err, ErrInvalidNote) {
			log.Printf("indexer: dropping invalid eden note: %v", err)
		}
		return Note{}, false
	}
	return note, true
}

func (client *Client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	body, err := client.get(ctx, path, query)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (client *Client) get(ctx context.Context, path string, query url.Values) ([]byte, error) {
	endpoint := client.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := client.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("indexer status %d: %s", resp.StatusCode, string(snippet))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	return body, nil
}
