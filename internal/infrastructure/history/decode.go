package history

import (
	"encoding/json"

	"github.com/doeshing/pyrun/internal/domain"
)

// decodeEntries parses a persisted snapshot.
func decodeEntries(raw string) ([]domain.HistoryEntry, error) {
	var entries []domain.HistoryEntry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// decodeOrEmpty is decodeEntries with the empty log substituted on failure.
// History is non-critical, so a corrupt payload must never block a run.
func decodeOrEmpty(raw string) (entries []domain.HistoryEntry, ok bool) {
	if raw == "" {
		return []domain.HistoryEntry{}, true
	}
	entries, err := decodeEntries(raw)
	if err != nil {
		return []domain.HistoryEntry{}, false
	}
	if entries == nil {
		entries = []domain.HistoryEntry{}
	}
	return entries, true
}

func encodeEntries(entries []domain.HistoryEntry) (string, error) {
	data, err := json.Marshal(entries)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
