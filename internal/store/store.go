// Package store persists the product collection in a single flat JSON file.
// Loads fail soft: a missing, unreadable, or malformed file degrades to an
// empty collection so the rest of the service keeps answering requests.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/tidwall/gjson"
	"go.uber.org/zap"

	"github.com/GamingStrider/Smart-electronic-appliances-suggestion/internal/models"
)

// ErrNotFound is returned when a product id is absent from the collection.
var ErrNotFound = errors.New("product not found")

// Store reads and writes the products file. A single mutex serializes
// load-modify-save so two simultaneous creates cannot lose an update; plain
// reads take no lock and always see a fully-written file thanks to the
// rename-on-save below.
type Store struct {
	path   string
	logger *zap.Logger
	mu     sync.Mutex
}

// New creates a store backed by the JSON file at path.
func New(path string, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{path: path, logger: logger}
}

// Load reads the full collection. Any failure — missing file, read error,
// malformed JSON — logs a warning and yields an empty slice rather than an
// error. Every record is normalized so facet keys always carry a value.
func (s *Store) Load() []models.Product {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warn("products file unreadable, serving empty catalog",
				zap.String("path", s.path), zap.Error(err))
		}
		return []models.Product{}
	}

	if !gjson.ValidBytes(data) {
		s.logger.Warn("products file is not valid JSON, serving empty catalog",
			zap.String("path", s.path))
		return []models.Product{}
	}

	var products []models.Product
	if err := json.Unmarshal(data, &products); err != nil {
		s.logger.Warn("products file does not decode as a product list, serving empty catalog",
			zap.String("path", s.path), zap.Error(err))
		return []models.Product{}
	}

	for i := range products {
		products[i].Normalize()
	}
	return products
}

// Save writes the whole collection, replacing the file via rename so readers
// never observe a partial write. No protection beyond that is provided.
func (s *Store) Save(products []models.Product) error {
	data, err := json.MarshalIndent(products, "", "  ")
	if err != nil {
		return fmt.Errorf("encode products: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".products-*.json")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write products: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace products file: %w", err)
	}
	return nil
}

// Add assigns the next id to p, appends it and rewrites the file, returning
// the stored product. The whole load-modify-save runs under the store mutex.
func (s *Store) Add(p models.Product) (models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	products := s.Load()
	p.ID = nextID(products)
	p.Normalize()

	products = append(products, p)
	if err := s.Save(products); err != nil {
		return models.Product{}, err
	}
	return p, nil
}

// FindByID returns the product with the given id, or ErrNotFound.
func (s *Store) FindByID(id int) (models.Product, error) {
	for _, p := range s.Load() {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Product{}, ErrNotFound
}

// nextID is max(existing ids) + 1, or 1 for an empty collection.
func nextID(products []models.Product) int {
	maxID := 0
	for i := range products {
		if products[i].ID > maxID {
			maxID = products[i].ID
		}
	}
	return maxID + 1
}
