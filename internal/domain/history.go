package domain

import (
	"strings"
	"time"
)

// HistoryEntry is one previously submitted snippet.
type HistoryEntry struct {
	Code      string `json:"code"`
	Timestamp int64  `json:"timestamp"`
}

// NewHistoryEntry stamps code with the given time in epoch milliseconds.
func NewHistoryEntry(code string, now time.Time) HistoryEntry {
	return HistoryEntry{Code: code, Timestamp: now.UnixMilli()}
}

// Time converts the millisecond timestamp back to a time.Time.
func (e HistoryEntry) Time() time.Time {
	return time.UnixMilli(e.Timestamp)
}

// Title returns the first line of the code, cut to MaxTitleRunes.
func (e HistoryEntry) Title() string {
	line, _, _ := strings.Cut(e.Code, "\n")
	runes := []rune(line)
	if len(runes) > MaxTitleRunes {
		return string(runes[:MaxTitleRunes])
	}
	return line
}

// Multiline reports whether the code spans more than one line.
func (e HistoryEntry) Multiline() bool {
	return strings.Contains(e.Code, "\n")
}
