package history

import (
	"context"
	"fmt"
	"time"

	"github.com/doeshing/pyrun/internal/domain"
	"github.com/doeshing/pyrun/internal/ports"
)

// Store keeps the snippet log as one JSON snapshot under domain.HistoryKey.
// Every mutation rewrites the whole snapshot; there is no locking between
// the read and the write.
type Store struct {
	kv     ports.KeyValueStore
	key    string
	max    int
	now    func() time.Time
	logger ports.Logger
}

// Option customises a Store.
type Option func(*Store)

// WithClock overrides the time source used to stamp new entries.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithLogger attaches a logger for fail-soft recoveries.
func WithLogger(logger ports.Logger) Option {
	return func(s *Store) { s.logger = logger }
}

// WithKey stores the log under a different slot.
func WithKey(key string) Option {
	return func(s *Store) { s.key = key }
}

// NewStore wraps a key-value backend.
func NewStore(kv ports.KeyValueStore, opts ...Option) *Store {
	s := &Store{
		kv:  kv,
		key: domain.HistoryKey,
		max: domain.MaxEntries,
		now: time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load returns the log, most recent first. A missing or malformed
// payload yields an empty log; only storage errors are returned.
func (s *Store) Load(ctx context.Context) ([]domain.HistoryEntry, error) {
	raw, ok, err := s.kv.Get(ctx, s.key)
	if err != nil {
		return nil, fmt.Errorf("read history: %w", err)
	}
	if !ok {
		return []domain.HistoryEntry{}, nil
	}
	entries, decoded := decodeOrEmpty(raw)
	if !decoded && s.logger != nil {
		s.logger.Warn("history payload malformed, treating as empty", map[string]interface{}{
			"key":   s.key,
			"bytes": len(raw),
		})
	}
	return entries, nil
}

// Add records code at the front of the log, dropping any older entry with
// the same code and anything beyond the cap.
func (s *Store) Add(ctx context.Context, code string) error {
	entries, err := s.Load(ctx)
	if err != nil {
		return err
	}
	next := make([]domain.HistoryEntry, 0, len(entries)+1)
	next = append(next, domain.NewHistoryEntry(code, s.now()))
	for _, e := range entries {
		if e.Code != code {
			next = append(next, e)
		}
	}
	if len(next) > s.max {
		next = next[:s.max]
	}
	return s.persist(ctx, next)
}

// Remove drops every entry stamped with timestamp. Unknown timestamps are a no-op.
func (s *Store) Remove(ctx context.Context, timestamp int64) error {
	entries, err := s.Load(ctx)
	if err != nil {
		return err
	}
	kept := make([]domain.HistoryEntry, 0, len(entries))
	for _, e := range entries {
		if e.Timestamp != timestamp {
			kept = append(kept, e)
		}
	}
	return s.persist(ctx, kept)
}

// Clear deletes the history slot itself.
func (s *Store) Clear(ctx context.Context) error {
	if err := s.kv.Delete(ctx, s.key); err != nil {
		return fmt.Errorf("clear history: %w", err)
	}
	return nil
}

// Find returns the first entry stamped with timestamp.
func (s *Store) Find(ctx context.Context, timestamp int64) (domain.HistoryEntry, bool, error) {
	entries, err := s.Load(ctx)
	if err != nil {
		return domain.HistoryEntry{}, false, err
	}
	for _, e := range entries {
		if e.Timestamp == timestamp {
			return e, true, nil
		}
	}
	return domain.HistoryEntry{}, false, nil
}

func (s *Store) persist(ctx context.Context, entries []domain.HistoryEntry) error {
	raw, err := encodeEntries(entries)
	if err != nil {
		return err
	}
	if err := s.kv.Set(ctx, s.key, raw); err != nil {
		return fmt.Errorf("write history: %w", err)
	}
	return nil
}

var _ ports.HistoryStore = (*Store)(nil)
