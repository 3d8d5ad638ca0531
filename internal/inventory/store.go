package inventory

import (
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/muurk/mystore/internal/logging"
)

// Store is the ordered in-memory collection of products.
// Safe for concurrent use.
type Store struct {
	mu       sync.RWMutex
	products []Product
	newID    func() string
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithIDFunc replaces the ID generator. Tests use it for predictable IDs.
func WithIDFunc(fn func() string) StoreOption {
	return func(s *Store) {
		s.newID = fn
	}
}

// WithSeed appends the given products, in order, when the store is built.
func WithSeed(products ...Product) StoreOption {
	return func(s *Store) {
		s.products = append(s.products, products...)
	}
}

// NewStore creates a store. Seeded products are assigned fresh IDs.
func NewStore(opts ...StoreOption) *Store {
	s := &Store{newID: uuid.NewString}
	for _, opt := range opts {
		opt(s)
	}
	for i := range s.products {
		s.products[i].ID = s.newID()
	}
	return s
}

// Add appends p as the last record and returns the stored copy. The record
// always gets a fresh ID; any ID on p is ignored.
func (s *Store) Add(p Product) Product {
	s.mu.Lock()
	p.ID = s.newID()
	s.products = append(s.products, p)
	idx := len(s.products) - 1
	s.mu.Unlock()

	logging.LogStoreMutation("add", p.ID, idx)
	return p
}

// UpdateAt replaces the record at index. The record keeps its ID.
func (s *Store) UpdateAt(index int, p Product) error {
	s.mu.Lock()
	if index < 0 || index >= len(s.products) {
		n := len(s.products)
		s.mu.Unlock()
		return indexError("update", index, n)
	}
	p.ID = s.products[index].ID
	s.products[index] = p
	s.mu.Unlock()

	logging.LogStoreMutation("update", p.ID, index)
	return nil
}

// RemoveAt deletes the record at index and shifts later records down.
func (s *Store) RemoveAt(index int) (Product, error) {
	s.mu.Lock()
	if index < 0 || index >= len(s.products) {
		n := len(s.products)
		s.mu.Unlock()
		return Product{}, indexError("remove", index, n)
	}
	removed := s.products[index]
	s.products = append(s.products[:index:index], s.products[index+1:]...)
	s.mu.Unlock()

	logging.LogStoreMutation("remove", removed.ID, index)
	return removed, nil
}

// Update replaces the record with the given ID.
func (s *Store) Update(id string, p Product) error {
	s.mu.Lock()
	idx := s.indexOf(id)
	if idx < 0 {
		s.mu.Unlock()
		return notFoundError("update", id)
	}
	p.ID = id
	s.products[idx] = p
	s.mu.Unlock()

	logging.LogStoreMutation("update", id, idx)
	return nil
}

// Remove deletes the record with the given ID.
func (s *Store) Remove(id string) (Product, error) {
	s.mu.Lock()
	idx := s.indexOf(id)
	if idx < 0 {
		s.mu.Unlock()
		return Product{}, notFoundError("remove", id)
	}
	removed := s.products[idx]
	s.products = append(s.products[:idx:idx], s.products[idx+1:]...)
	s.mu.Unlock()

	logging.LogStoreMutation("remove", id, idx)
	return removed, nil
}

// Get returns the record with the given ID.
func (s *Store) Get(id string) (Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return Product{}, false
	}
	return s.products[idx], true
}

func (s *Store) indexOf(id string) int {
	if id == "" {
		return -1
	}
	for i, p := range s.products {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// All returns a copy of the records in store order.
func (s *Store) All() []Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Product, len(s.products))
	copy(out, s.products)
	return out
}

// Len returns the number of records.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.products)
}

// Categories returns the distinct categories in first-seen order, compared
// case-insensitively. Blank categories are skipped.
func (s *Store) Categories() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]bool)
	var out []string
	for _, p := range s.products {
		c := strings.TrimSpace(p.Category)
		key := strings.ToLower(c)
		if c == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, c)
	}
	return out
}
