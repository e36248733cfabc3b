package jsonfile

import (
	"bytes"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"hotel_reserva/internal/domain"
)

// Store persists one JSON array per slot under a single data directory.
// A degraded slot (unreadable, corrupt, or not an array) is logged and
// treated as empty so the system keeps running.
type Store struct{ dir string }

func New(dir string) *Store { return &Store{dir: dir} }

func (s *Store) path(slot string) string { return filepath.Join(s.dir, slot+".json") }

// ensure creates the data directory and an empty slot file when absent.
func (s *Store) ensure(slot string) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return err
	}
	p := s.path(slot)
	if _, err := os.Stat(p); errors.Is(err, fs.ErrNotExist) {
		return os.WriteFile(p, []byte("[]"), 0o644)
	} else if err != nil {
		return err
	}
	return nil
}

func (s *Store) Load(slot string) ([]domain.Record, error) {
	if err := s.ensure(slot); err != nil {
		return nil, err
	}

	b, err := os.ReadFile(s.path(slot))
	if err != nil {
		log.Error().Err(err).Str("slot", slot).Msg("slot unreadable, treating as empty")
		return []domain.Record{}, nil
	}
	if len(bytes.TrimSpace(b)) == 0 {
		return []domain.Record{}, nil
	}

	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		log.Error().Err(err).Str("slot", slot).Msg("slot corrupt, treating as empty")
		return []domain.Record{}, nil
	}
	items, ok := v.([]any)
	if !ok {
		log.Error().Str("slot", slot).Msg("slot content is not a list, treating as empty")
		return []domain.Record{}, nil
	}

	out := make([]domain.Record, 0, len(items))
	for _, it := range items {
		rec, ok := it.(map[string]any)
		if !ok {
			log.Warn().Str("slot", slot).Msg("skipping non-object item in slot")
			continue
		}
		out = append(out, rec)
	}
	return out, nil
}

// Save rewrites the whole slot. Not crash-safe: a write interrupted midway
// leaves a truncated file (single-process scope accepts this).
func (s *Store) Save(slot string, records []domain.Record) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return err
	}
	if records == nil {
		records = []domain.Record{}
	}
	b, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path(slot), b, 0o644)
}
