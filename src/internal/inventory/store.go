package inventory

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"sync"

	"github.com/pelletier/go-toml/v2"

	apperrors "github.com/maksimkurb/mobile-manager/src/internal/errors"
	"github.com/maksimkurb/mobile-manager/src/internal/log"
	"github.com/maksimkurb/mobile-manager/src/internal/models"
)

// Store holds records in memory. It is safe for concurrent use.
type Store struct {
	mu      sync.RWMutex
	records map[int64]models.Mobile
}

// NewStore creates a store holding the given records.
func NewStore(initial ...models.Mobile) (*Store, error) {
	s := &Store{records: make(map[int64]models.Mobile)}
	for _, m := range initial {
		if _, err := s.Add(m); err != nil {
			return nil, err
		}
	}
	return s, nil
}

type seedFile struct {
	Mobiles []models.Mobile `toml:"mobile"`
}

// LoadSeed reads [[mobile]] tables from a TOML file.
func LoadSeed(path string) ([]models.Mobile, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}

	var seed seedFile
	if err := toml.Unmarshal(content, &seed); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return nil, fmt.Errorf("failed to parse seed file at line %d, column %d: %v", row, col, err)
		}
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}

	log.Debugf("Loaded %d mobiles from %s", len(seed.Mobiles), path)
	return seed.Mobiles, nil
}

// List returns all records ordered by id.
func (s *Store) List() []models.Mobile {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]models.Mobile, 0, len(s.records))
	for _, m := range s.records {
		result = append(result, m)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}

// Get returns one record or a NOT_FOUND error.
func (s *Store) Get(id int64) (models.Mobile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	m, ok := s.records[id]
	if !ok {
		return models.Mobile{}, apperrors.NewNotFoundError(fmt.Sprintf("mobile %d not found", id))
	}
	return m, nil
}

// Add inserts a record. ID 0 is replaced with the next free id; an existing
// id is a CONFLICT error.
func (s *Store) Add(m models.Mobile) (models.Mobile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if m.ID == 0 {
		m.ID = s.nextID()
	}
	if _, exists := s.records[m.ID]; exists {
		return models.Mobile{}, apperrors.NewConflictError(fmt.Sprintf("mobile %d already exists", m.ID))
	}

	s.records[m.ID] = m
	return m, nil
}

// Update replaces an existing record or returns NOT_FOUND.
func (s *Store) Update(m models.Mobile) (models.Mobile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.records[m.ID]; !exists {
		return models.Mobile{}, apperrors.NewNotFoundError(fmt.Sprintf("mobile %d not found", m.ID))
	}

	s.records[m.ID] = m
	return m, nil
}

// Delete removes a record or returns NOT_FOUND.
func (s *Store) Delete(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.records[id]; !exists {
		return apperrors.NewNotFoundError(fmt.Sprintf("mobile %d not found", id))
	}

	delete(s.records, id)
	return nil
}

// Len returns the number of records.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// nextID must be called with the write lock held.
func (s *Store) nextID() int64 {
	var maxID int64
	for id := range s.records {
		if id > maxID {
			maxID = id
		}
	}
	return maxID + 1
}
