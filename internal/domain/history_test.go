package domain

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewHistoryEntryUsesMilliseconds(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 123_000_000, time.UTC)
	entry := NewHistoryEntry("print(1)", now)

	assert.Equal(t, now.UnixMilli(), entry.Timestamp)
	assert.True(t, entry.Time().Equal(now))
}

func TestHistoryEntryTitle(t *testing.T) {
	tests := []struct {
		name      string
		code      string
		title     string
		multiline bool
	}{
		{name: "single line", code: "print(1)", title: "print(1)"},
		{name: "first line only", code: "x = 1\nprint(x)", title: "x = 1", multiline: true},
		{name: "truncated", code: strings.Repeat("a", 120), title: strings.Repeat("a", MaxTitleRunes)},
		{name: "runes not bytes", code: strings.Repeat("é", 90), title: strings.Repeat("é", MaxTitleRunes)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := HistoryEntry{Code: tt.code}
			assert.Equal(t, tt.title, entry.Title())
			assert.Equal(t, tt.multiline, entry.Multiline())
		})
	}
}
