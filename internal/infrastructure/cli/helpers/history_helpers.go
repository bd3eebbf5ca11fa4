package helpers

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/doeshing/pyrun/internal/domain"
)

// ParseTimestamp parses a history entry id given on the command line.
func ParseTimestamp(arg string) (int64, error) {
	ts, err := strconv.ParseInt(strings.TrimSpace(arg), 10, 64)
	if err != nil || ts < 0 {
		return 0, fmt.Errorf("invalid entry id %q: expected a millisecond timestamp", arg)
	}
	return ts, nil
}

// RelativeTime renders t relative to now ("just now", "3 minutes ago").
func RelativeTime(t, now time.Time) string {
	if now.Sub(t) < time.Minute {
		return "just now"
	}
	return humanize.RelTime(t, now, "ago", "from now")
}

// FormatEntryRow renders one line of `history list`.
func FormatEntryRow(entry domain.HistoryEntry, now time.Time) string {
	title := entry.Title()
	if entry.Multiline() {
		title += " …"
	}
	return fmt.Sprintf("%d | %-14s | %s", entry.Timestamp, RelativeTime(entry.Time(), now), title)
}
