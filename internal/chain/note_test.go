package chain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeThrowNote(t *testing.T) {
	throwDate := time.Date(2025, 4, 2, 9, 30, 0, 0, time.UTC)
	encoded, err := EncodeThrowNote(ThrowNote{
		PodTypeID:     "pod-meadow-mix",
		PodTypeName:   "Meadow Mix",
		PodTypeIcon:   "🌼",
		ThrowDate:     throwDate,
		LocationLabel: "Back garden",
		GrowthModelID: "temperate-herb",
		ThrownBy:      "WALLETADDR",
	})
	require.NoError(t, err)

	note, err := DecodeNote(encoded)
	require.NoError(t, err)
	require.Equal(t, NoteTypeThrow, note.Type)
	require.NotNil(t, note.Throw)
	assert.Equal(t, "pod-meadow-mix", note.Throw.PodTypeID)
	assert.Equal(t, "temperate-herb", note.Throw.GrowthModelID)
	assert.True(t, note.Throw.ThrowDate.Equal(throwDate))
	assert.Equal(t, "Back garden", note.Throw.LocationLabel)
}

func TestEncodeDecodeHarvestNote(t *testing.T) {
	harvestedAt := time.Date(2025, 7, 10, 18, 0, 0, 0, time.UTC)
	encoded, err := EncodeHarvestNote(HarvestNote{
		ThrowAsaID:    4411,
		PlantID:       "nettle",
		QuantityClass: "medium",
		HarvestedAt:   harvestedAt,
		Notes:         "first picking",
	})
	require.NoError(t, err)

	note, err := DecodeNote(encoded)
	require.NoError(t, err)
	require.Equal(t, NoteTypeHarvest, note.Type)
	assert.Equal(t, uint64(4411), note.Harvest.ThrowAsaID)
	assert.Equal(t, "medium", note.Harvest.QuantityClass)
}

func TestDecodeRejectsForeignNotes(t *testing.T) {
	cases := map[string]string{
		"not json":        "ping",
		"wrong standard":  `{"standard":"arc3","properties":{"eden_type":"throw"}}`,
		"no properties":   `{"standard":"arc69"}`,
		"no discriminant": `{"standard":"arc69","properties":{"podTypeId":"x"}}`,
	}
	for name, raw := range cases {
		_, err := DecodeNote([]byte(raw))
		assert.ErrorIs(t, err, ErrNotEdenNote, name)
	}
}

func TestDecodeRejectsMissingRequiredFields(t *testing.T) {
	cases := map[string]string{
		"throw without model": `{"standard":"arc69","properties":{"eden_type":"throw","podTypeId":"p","throwDate":"2025-04-02T09:30:00Z"}}`,
		"throw without date":  `{"standard":"arc69","properties":{"eden_type":"throw","podTypeId":"p","growthModelId":"temperate-herb"}}`,
		"throw with bad date": `{"standard":"arc69","properties":{"eden_type":"throw","podTypeId":"p","growthModelId":"temperate-herb","throwDate":"yesterday"}}`,
		"harvest without asa": `{"standard":"arc69","properties":{"eden_type":"harvest","plantId":"mint","quantityClass":"small","harvestedAt":"2025-04-02T09:30:00Z"}}`,
		"unknown eden type":   `{"standard":"arc69","properties":{"eden_type":"pruning"}}`,
	}
	for name, raw := range cases {
		_, err := DecodeNote([]byte(raw))
		assert.ErrorIs(t, err, ErrInvalidNote, name)
	}
}

func TestDecodeNeverDefaultsGrowthModel(t *testing.T) {
	// A silently defaulted model id would misclassify the whole
	// lifecycle, so an absent one must be a hard decode failure.
	raw := `{"standard":"arc69","properties":{"eden_type":"throw","podTypeId":"p","throwDate":"2025-04-02T09:30:00Z","growthModelId":""}}`
	_, err := DecodeNote([]byte(raw))
	require.ErrorIs(t, err, ErrInvalidNote)
}

func TestShortenAddress(t *testing.T) {
	assert.Equal(t, "ABCD...WXYZ", ShortenAddress("ABCDEFGHQRSTUVWXYZ", 4))
	assert.Equal(t, "", ShortenAddress("", 4))
	assert.Equal(t, "SHORT", ShortenAddress("SHORT", 4))
}
