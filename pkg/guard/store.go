package guard

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/dmitrymomot/guardstore/pkg/environment"
	"github.com/dmitrymomot/guardstore/pkg/logger"
	"github.com/dmitrymomot/guardstore/pkg/sanitizer"
	"github.com/dmitrymomot/guardstore/pkg/storage"
)

// MaxRecordLen is the upper bound, in bytes of serialized JSON, for a single
// record. Enforced before the write reaches the medium.
const MaxRecordLen = 5_000_000

// Store guards a storage.Backend with allow-list enforcement and
// sanitization. Safe for concurrent use to the extent the backend is; the
// store itself holds no mutable state.
type Store struct {
	backend storage.Backend
	log     *slog.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the diagnostics logger. Nil loggers are ignored.
func WithLogger(log *slog.Logger) Option {
	return func(s *Store) {
		if log != nil {
			s.log = log
		}
	}
}

// New creates a Store over the given backend. Without WithLogger all
// diagnostics are discarded.
func New(backend storage.Backend, opts ...Option) *Store {
	s := &Store{
		backend: backend,
		log:     slog.New(slog.DiscardHandler),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Get returns the sanitized value under key. The boolean reports presence:
// a rejected key, a missing record, a corrupted record and a failing medium
// all read as absent. A corrupted record is left in place.
func (s *Store) Get(ctx context.Context, key Key) (any, bool) {
	if !key.Allowed() {
		s.diag(ctx, slog.LevelWarn, "rejected key", logger.StorageKey(key.String()))
		return nil, false
	}

	raw, exists, err := s.backend.Read(ctx, key.String())
	if err != nil {
		s.diag(ctx, slog.LevelError, "read failed", logger.StorageKey(key.String()), logger.Error(err))
		return nil, false
	}
	if !exists {
		return nil, false
	}

	var value any
	if err := json.Unmarshal([]byte(raw), &value); err != nil {
		s.diag(ctx, slog.LevelWarn, "corrupted record", logger.StorageKey(key.String()), logger.Error(err))
		return nil, false
	}

	// Reads are sanitized defensively even though writes already were, to
	// cover records that predate a sanitizer change or were written by
	// another process.
	return sanitizer.Value(value), true
}

// Set sanitizes value, serializes it and writes it under key, overwriting any
// previous record. Returns false, leaving the medium untouched, on a rejected
// key, unserializable value, oversized record or failing medium.
func (s *Store) Set(ctx context.Context, key Key, value any) bool {
	if !key.Allowed() {
		s.diag(ctx, slog.LevelWarn, "rejected key", logger.StorageKey(key.String()))
		return false
	}

	data, err := json.Marshal(sanitizer.Value(value))
	if err != nil {
		s.diag(ctx, slog.LevelWarn, "unserializable value", logger.StorageKey(key.String()), logger.Error(err))
		return false
	}

	if len(data) > MaxRecordLen {
		s.diag(ctx, slog.LevelWarn, "record too large",
			logger.StorageKey(key.String()),
			logger.RecordSize(len(data)),
			slog.Int("limit", MaxRecordLen))
		return false
	}

	if err := s.backend.Write(ctx, key.String(), string(data)); err != nil {
		s.diag(ctx, slog.LevelError, "write failed", logger.StorageKey(key.String()), logger.Error(err))
		return false
	}

	return true
}

// Remove deletes the record under key, if any. Returns false on a rejected
// key or failing medium.
func (s *Store) Remove(ctx context.Context, key Key) bool {
	if !key.Allowed() {
		s.diag(ctx, slog.LevelWarn, "rejected key", logger.StorageKey(key.String()))
		return false
	}

	if err := s.backend.Delete(ctx, key.String()); err != nil {
		s.diag(ctx, slog.LevelError, "delete failed", logger.StorageKey(key.String()), logger.Error(err))
		return false
	}

	return true
}

// Clear deletes the record under every allow-listed key, present or not.
// Records under keys outside the allow-list are never touched. Returns false
// if any delete failed; the remaining deletes are still attempted.
func (s *Store) Clear(ctx context.Context) bool {
	ok := true
	for _, key := range allowedKeys {
		if err := s.backend.Delete(ctx, key.String()); err != nil {
			s.diag(ctx, slog.LevelError, "delete failed", logger.StorageKey(key.String()), logger.Error(err))
			ok = false
		}
	}
	return ok
}

// Keys returns the allow-listed keys that currently have a record, in
// allow-list order. A key whose presence cannot be determined is reported as
// absent.
func (s *Store) Keys(ctx context.Context) []Key {
	present := make([]Key, 0, len(allowedKeys))
	for _, key := range allowedKeys {
		exists, err := s.backend.Exists(ctx, key.String())
		if err != nil {
			s.diag(ctx, slog.LevelError, "presence check failed", logger.StorageKey(key.String()), logger.Error(err))
			continue
		}
		if exists {
			present = append(present, key)
		}
	}
	return present
}

// diag emits a diagnostic, but only when the context carries an explicit
// non-production environment. Callers must never depend on these messages.
func (s *Store) diag(ctx context.Context, level slog.Level, msg string, attrs ...any) {
	env := environment.FromContext(ctx)
	if env == "" || environment.IsProduction(ctx) {
		return
	}
	s.log.Log(ctx, level, msg, attrs...)
}
