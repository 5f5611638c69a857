// Package jsonfile keeps saved vacancies in a single JSON array on disk.
//
// Every call reads the whole file and every change rewrites it. There is
// no locking: two processes sharing a file can overwrite each other.
package jsonfile

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"hh-vacancy-search/internal/models"

	"go.uber.org/zap"
)

const DefaultPath = "vacancies.json"

type Store struct {
	path   string
	data   []models.Vacancy
	logger *zap.Logger
}

// New binds a store to path. A missing file is created holding an empty
// array; an existing file is left as it is.
func New(path string, logger *zap.Logger) (*Store, error) {
	if path == "" {
		path = DefaultPath
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Store{
		path:   path,
		logger: logger,
	}

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("create storage dir: %w", err)
			}
		}
		if err := s.write(); err != nil {
			return nil, fmt.Errorf("init storage file: %w", err)
		}
		logger.Info("storage file created", zap.String("path", path))
	} else if err != nil {
		return nil, fmt.Errorf("stat storage file: %w", err)
	}

	s.load()
	return s, nil
}

func (s *Store) Path() string {
	return s.path
}

func (s *Store) Create(ctx context.Context, v models.Vacancy) (bool, error) {
	s.load()

	if s.index(v.ID) >= 0 {
		s.logger.Debug("vacancy already stored", zap.String("vacancy_id", v.ID))
		return false, nil
	}

	s.data = append(s.data, v)
	if err := s.write(); err != nil {
		return false, fmt.Errorf("create vacancy: %w", err)
	}

	s.logger.Debug("vacancy stored", zap.String("vacancy_id", v.ID))
	return true, nil
}

// Read returns every stored vacancy. A missing or malformed file reads as empty.
func (s *Store) Read(ctx context.Context) ([]models.Vacancy, error) {
	s.load()

	out := make([]models.Vacancy, len(s.data))
	copy(out, s.data)
	return out, nil
}

// Update replaces the whole stored entry that has v's ID.
func (s *Store) Update(ctx context.Context, v models.Vacancy) (bool, error) {
	s.load()

	i := s.index(v.ID)
	if i < 0 {
		return false, nil
	}

	s.data[i] = v
	if err := s.write(); err != nil {
		return false, fmt.Errorf("update vacancy: %w", err)
	}

	s.logger.Debug("vacancy updated", zap.String("vacancy_id", v.ID))
	return true, nil
}

// Delete drops every entry with id.
func (s *Store) Delete(ctx context.Context, id string) (bool, error) {
	s.load()

	kept := s.data[:0]
	for _, v := range s.data {
		if v.ID != id {
			kept = append(kept, v)
		}
	}
	removed := len(s.data) - len(kept)
	s.data = kept

	if removed == 0 {
		return false, nil
	}

	if err := s.write(); err != nil {
		return false, fmt.Errorf("delete vacancy: %w", err)
	}

	s.logger.Debug("vacancy deleted",
		zap.String("vacancy_id", id),
		zap.Int("removed", removed),
	)
	return true, nil
}

func (s *Store) index(id string) int {
	for i := range s.data {
		if s.data[i].ID == id {
			return i
		}
	}
	return -1
}

// load refreshes the mirror from disk, falling back to empty.
func (s *Store) load() {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.logger.Warn("failed to read storage file, using empty data",
				zap.String("path", s.path),
				zap.Error(err),
			)
		}
		s.data = []models.Vacancy{}
		return
	}

	var data []models.Vacancy
	if err := json.Unmarshal(raw, &data); err != nil {
		s.logger.Warn("malformed storage file, using empty data",
			zap.String("path", s.path),
			zap.Error(err),
		)
		s.data = []models.Vacancy{}
		return
	}

	if data == nil {
		data = []models.Vacancy{}
	}
	s.data = data
}

func (s *Store) write() error {
	data := s.data
	if data == nil {
		data = []models.Vacancy{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		return fmt.Errorf("encode vacancies: %w", err)
	}

	if err := os.WriteFile(s.path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write storage file: %w", err)
	}
	return nil
}
