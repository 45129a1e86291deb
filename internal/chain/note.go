package chain

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// Note types carried in the eden_type discriminant of an ARC-69 envelope.
const (
	NoteTypeThrow       = "throw"
	NoteTypeHarvest     = "harvest"
	NoteTypeObservation = "observation"
)

const (
	noteStandard = "arc69"
	noteVersion  = 1
	externalURL  = "https://edenpods.earth"
)

var (
	// ErrNotEdenNote marks notes that are valid JSON but not ours: wrong
	// standard, or no eden_type discriminant. Callers skip these silently.
	ErrNotEdenNote = errors.New("not an eden pods note")

	// ErrInvalidNote marks eden notes that fail strict validation. A
	// required field is missing or unparseable; the record is dropped,
	// never half-trusted with defaults.
	ErrInvalidNote = errors.New("invalid eden pods note")
)

// ThrowNote is the structured payload attached to an asset-create
// transaction when a throw is minted.
type ThrowNote struct {
	PodTypeID     string    `json:"podTypeId"`
	PodTypeName   string    `json:"podTypeName"`
	PodTypeIcon   string    `json:"podTypeIcon"`
	ThrowDate     time.Time `json:"throwDate"`
	LocationLabel string    `json:"locationLabel"`
	GrowthModelID string    `json:"growthModelId"`
	ThrownBy      string    `json:"thrownBy"`
}

// HarvestNote is attached to a zero-amount self-payment referencing the
// throw's asset id.
type HarvestNote struct {
	ThrowAsaID    uint64    `json:"throwAsaId"`
	PlantID       string    `json:"plantId"`
	QuantityClass string    `json:"quantityClass"`
	HarvestedAt   time.Time `json:"harvestedAt"`
	Notes         string    `json:"notes"`
}

// ObservationNote mirrors HarvestNote for stage sightings.
type ObservationNote struct {
	ThrowAsaID uint64    `json:"throwAsaId"`
	StageID    string    `json:"stageId"`
	ObservedAt time.Time `json:"observedAt"`
	Notes      string    `json:"notes"`
}

// Note is the decoded tagged union. Exactly one payload field is set,
// matching Type.
type Note struct {
	Type        string
	Throw       *ThrowNote
	Harvest     *HarvestNote
	Observation *ObservationNote
}

type noteEnvelope struct {
	Standard    string         `json:"standard"`
	Description string         `json:"description"`
	ExternalURL string         `json:"external_url"`
	Properties  map[string]any `json:"properties"`
}

var noteDescriptions = map[string]string{
	NoteTypeThrow:       "Eden Pods — Pod throw record",
	NoteTypeHarvest:     "Eden Pods — Harvest record",
	NoteTypeObservation: "Eden Pods — Growth observation",
}

// EncodeThrowNote serializes a throw payload into its ARC-69 envelope.
func EncodeThrowNote(note ThrowNote) ([]byte, error) {
	return encodeNote(NoteTypeThrow, map[string]any{
		"podTypeId":     note.PodTypeID,
		"podTypeName":   note.PodTypeName,
		"podTypeIcon":   note.PodTypeIcon,
		"throwDate":     note.ThrowDate.UTC().Format(time.RFC3339),
		"locationLabel": note.LocationLabel,
		"growthModelId": note.GrowthModelID,
		"thrownBy":      note.ThrownBy,
	})
}

// EncodeHarvestNote serializes a harvest payload into its ARC-69 envelope.
func EncodeHarvestNote(note HarvestNote) ([]byte, error) {
	return encodeNote(NoteTypeHarvest, map[string]any{
		"throwAsaId":    note.ThrowAsaID,
		"plantId":       note.PlantID,
		"quantityClass": note.QuantityClass,
		"harvestedAt":   note.HarvestedAt.UTC().Format(time.RFC3339),
		"notes":         note.Notes,
	})
}

// EncodeObservationNote serializes an observation payload.
func EncodeObservationNote(note ObservationNote) ([]byte, error) {
	return encodeNote(NoteTypeObservation, map[string]any{
		"throwAsaId": note.ThrowAsaID,
		"stageId":    note.StageID,
		"observedAt": note.ObservedAt.UTC().Format(time.RFC3339),
		"notes":      note.Notes,
	})
}

func encodeNote(noteType string, properties map[string]any) ([]byte, error) {
	properties["eden_type"] = noteType
	properties["eden_version"] = noteVersion
	envelope := noteEnvelope{
		Standard:    noteStandard,
		Description: noteDescriptions[noteType],
		ExternalURL: externalURL,
		Properties:  properties,
	}
	encoded, err := json.Marshal(envelope)
	if err != nil {
		return nil, fmt.Errorf("encode %s note: %w", noteType, err)
	}
	return encoded, nil
}

// DecodeNote strictly decodes a raw note. Non-eden notes return
// ErrNotEdenNote; eden notes missing required fields return ErrInvalidNote.
func DecodeNote(raw []byte) (Note, error) {
	var envelope noteEnvelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return Note{}, ErrNotEdenNote
	}
	if envelope.Standard != noteStandard || envelope.Properties == nil {
		return Note{}, ErrNotEdenNote
	}

	noteType, ok := envelope.Properties["eden_type"].(string)
	if !ok || noteType == "" {
		return Note{}, ErrNotEdenNote
	}

	switch noteType {
	case NoteTypeThrow:
		throw, err := decodeThrowProperties(envelope.Properties)
		if err != nil {
			return Note{}, err
		}
		return Note{Type: NoteTypeThrow, Throw: throw}, nil
	case NoteTypeHarvest:
		harvest, err := decodeHarvestProperties(envelope.Properties)
		if err != nil {
			return Note{}, err
		}
		return Note{Type: NoteTypeHarvest, Harvest: harvest}, nil
	case NoteTypeObservation:
		observation, err := decodeObservationProperties(envelope.Properties)
		if err != nil {
			return Note{}, err
		}
		return Note{Type: NoteTypeObservation, Observation: observation}, nil
	default:
		return Note{}, fmt.Errorf("%w: unknown eden_type %q", ErrInvalidNote, noteType)
	}
}

func decodeThrowProperties(properties map[string]any) (*ThrowNote, error) {
	podTypeID, err := requiredString(properties, "podTypeId")
	if err != nil {
		return nil, err
	}
	growthModelID, err := requiredString(properties, "growthModelId")
	if err != nil {
		return nil, err
	}
	throwDate, err := requiredTime(properties, "throwDate")
	if err != nil {
		return nil, err
	}

	return &ThrowNote{
		PodTypeID:     podTypeID,
		PodTypeName:   optionalString(properties, "podTypeName"),
		PodTypeIcon:   optionalString(properties, "podTypeIcon"),
		ThrowDate:     throwDate,
		LocationLabel: optionalString(properties, "locationLabel"),
		GrowthModelID: growthModelID,
		ThrownBy:      optionalString(properties, "thrownBy"),
	}, nil
}

func decodeHarvestProperties(properties map[string]any) (*HarvestNote, error) {
	throwAsaID, err := requiredUint(properties, "throwAsaId")
	if err != nil {
		return nil, err
	}
	plantID, err := requiredString(properties, "plantId")
	if err != nil {
		return nil, err
	}
	quantityClass, err := requiredString(properties, "quantityClass")
	if err != nil {
		return nil, err
	}
	harvestedAt, err := requiredTime(properties, "harvestedAt")
	if err != nil {
		return nil, err
	}

	return &HarvestNote{
		ThrowAsaID:    throwAsaID,
		PlantID:       plantID,
		QuantityClass: quantityClass,
		HarvestedAt:   harvestedAt,
		Notes:         optionalString(properties, "notes"),
	}, nil
}

func decodeObservationProperties(properties map[string]any) (*ObservationNote, error) {
	throwAsaID, err := requiredUint(properties, "throwAsaId")
	if err != nil {
		return nil, err
	}
	stageID, err := requiredString(properties, "stageId")
	if err != nil {
		return nil, err
	}
	observedAt, err := requiredTime(properties, "observedAt")
	if err != nil {
		return nil, err
	}

	return &ObservationNote{
		ThrowAsaID: throwAsaID,
		StageID:    stageID,
		ObservedAt: observedAt,
		Notes:      optionalString(properties, "notes"),
	}, nil
}

func requiredString(properties map[string]any, key string) (string, error) {
	value, ok := properties[key].(string)
	if !ok || value == "" {
		return "", fmt.Errorf("%w: missing %s", ErrInvalidNote, key)
	}
	return value, nil
}

func optionalString(properties map[string]any, key string) string {
	value, _ := properties[key].(string)
	return value
}

func requiredTime(properties map[string]any, key string) (time.Time, error) {
	raw, err := requiredString(properties, key)
	if err != nil {
		return time.Time{}, err
	}
	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: unparseable %s %q", ErrInvalidNote, key, raw)
	}
	return parsed, nil
}

func requiredUint(properties map[string]any, key string) (uint64, error) {
	// JSON numbers arrive as float64.
	value, ok := properties[key].(float64)
	if !ok || value <= 0 {
		return 0, fmt.Errorf("%w: missing %s", ErrInvalidNote, key)
	}
	return uint64(value), nil
}
