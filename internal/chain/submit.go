package chain

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// SubmitResult identifies a confirmed write. AssetID is set only when an
// asset was created (throw mints); the id must stay stable across queries
// since notification reconciliation keys on it.
type SubmitResult struct {
	AssetID uint64 `json:"asset_id,omitempty"`
	TxID    string `json:"tx_id"`
}

// Submitter hands a fully formed note payload to the external signing and
// broadcast flow. The wallet handshake itself lives outside this service.
type Submitter interface {
	SubmitThrow(ctx context.Context, address string, note ThrowNote) (SubmitResult, error)
	SubmitHarvest(ctx context.Context, address string, note HarvestNote) (SubmitResult, error)
	SubmitObservation(ctx context.Context, address string, note ObservationNote) (SubmitResult, error)
}

// RelaySubmitter posts encoded notes to a signing relay that holds the
// session with the user's wallet and returns the confirmed ids.
type RelaySubmitter struct {
	baseURL string
	http    *http.Client
}

func NewRelaySubmitter(baseURL string, timeout time.Duration) *RelaySubmitter {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &RelaySubmitter{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

func (submitter *RelaySubmitter) SubmitThrow(ctx context.Context, address string, note ThrowNote) (SubmitResult, error) {
	encoded, err := EncodeThrowNote(note)
	if err != nil {
		return SubmitResult{}, err
	}
	return submitter.post(ctx, "/v1/mint-throw", address, encoded)
}

func (submitter *RelaySubmitter) SubmitHarvest(ctx context.Context, address string, note HarvestNote) (SubmitResult, error) {
	encoded, err := EncodeHarvestNote(note)
	if err != nil {
		return SubmitResult{}, err
	}
	return submitter.post(ctx, "/v1/record", address, encoded)
}

func (submitter *RelaySubmitter) SubmitObservation(ctx context.Context, address string, note ObservationNote) (SubmitResult, error) {
	encoded, err := EncodeObservationNote(note)
	if err != nil {
		return SubmitResult{}, err
	}
	return submitter.post(ctx, "/v1/record", address, encoded)
}

type relayRequest struct {
	Sender string          `json:"sender"`
	Note   json.RawMessage `json:"note"`
}

func (submitter *RelaySubmitter) post(ctx context.Context, path string, address string, note []byte) (SubmitResult, error) {
	payload, err := json.Marshal(relayRequest{Sender: address, Note: note})
	if err != nil {
		return SubmitResult{}, fmt.Errorf("encode relay request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, submitter.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return SubmitResult{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := submitter.http.Do(req)
	if err != nil {
		return SubmitResult{}, fmt.Errorf("relay request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return SubmitResult{}, fmt.Errorf("relay status %d: %s", resp.StatusCode, string(snippet))
	}

	var result SubmitResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return SubmitResult{}, fmt.Errorf("decode relay response: %w", err)
	}
	if result.TxID == "" {
		return SubmitResult{}, fmt.Errorf("relay returned no transaction id")
	}
	return result, nil
}
