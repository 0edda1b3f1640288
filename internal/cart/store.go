package cart

import (
	"log"
	"sync"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"

	"github.com/ytget/storefront/internal/model"
	"github.com/ytget/storefront/internal/storage"
)

// Store keeps cart lines in memory and writes the whole sequence to the
// persistence port after each mutation. Lines are never merged: adding the
// same product twice yields two lines.
type Store struct {
	lines    []model.Product
	mu       sync.RWMutex
	store    storage.Store
	onUpdate func([]model.Product) // callback for UI updates
}

// NewStore creates an empty cart backed by store. Call Hydrate to load the
// persisted lines.
func NewStore(store storage.Store) *Store {
	return &Store{store: store}
}

// SetUpdateCallback sets the function called with a snapshot after each change
func (s *Store) SetUpdateCallback(callback func([]model.Product)) {
	s.mu.Lock()
	s.onUpdate = callback
	s.mu.Unlock()
}

// Hydrate replaces the in-memory lines with the persisted cart. A missing or
// malformed record yields an empty cart.
func (s *Store) Hydrate() {
	lines, err := LoadPersisted(s.store)
	if err != nil {
		log.Printf("[cart] hydrate FAILED err=%v", err)
	}

	s.mu.Lock()
	s.lines = lines
	s.mu.Unlock()

	log.Printf("[cart] hydrated lines=%d", len(lines))
	s.notifyUpdate()
}

// Add appends a copy of product with quantity 1.
func (s *Store) Add(product model.Product) {
	s.mu.Lock()
	s.lines = append(s.lines, product.AsCartLine())
	s.mu.Unlock()

	log.Printf("[cart] add id=%d name=%q", product.ID, product.Name)
	s.persist()
	s.notifyUpdate()
}

// Remove drops every line with the product's ID, keeping the order of the rest.
func (s *Store) Remove(product model.Product) {
	s.mu.Lock()
	kept := s.lines[:0:0]
	for _, line := range s.lines {
		if line.ID != product.ID {
			kept = append(kept, line)
		}
	}
	removed := len(s.lines) - len(kept)
	s.lines = kept
	s.mu.Unlock()

	log.Printf("[cart] remove id=%d lines=%d", product.ID, removed)
	s.persist()
	s.notifyUpdate()
}

// Clear empties the cart and persists an empty list.
func (s *Store) Clear() {
	s.mu.Lock()
	s.lines = nil
	s.mu.Unlock()

	log.Printf("[cart] cleared")
	s.persist()
	s.notifyUpdate()
}

// Lines returns a copy of the cart lines in insertion order.
func (s *Store) Lines() []model.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot()
}

// Len returns the number of lines.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.lines)
}

// Total returns the sum of line totals.
func (s *Store) Total() decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return model.CartTotal(s.lines)
}

// Flush writes the in-memory lines to the store and returns the write error.
func (s *Store) Flush() error {
	lines := s.Lines()
	if err := storage.SaveJSON(s.store, storage.KeyCart, lines); err != nil {
		return errors.Wrapf(err, "save cart lines=%d", len(lines))
	}
	return nil
}

// persist writes the current lines. Failures are logged; memory stays authoritative.
func (s *Store) persist() {
	if err := s.Flush(); err != nil {
		log.Printf("[cart] persist FAILED err=%v", err)
	}
}

func (s *Store) notifyUpdate() {
	s.mu.RLock()
	callback := s.onUpdate
	lines := s.snapshot()
	s.mu.RUnlock()

	if callback != nil {
		callback(lines)
	}
}

// snapshot copies lines; callers hold the lock. Never returns nil so the
// persisted form is always a JSON array.
func (s *Store) snapshot() []model.Product {
	lines := make([]model.Product, len(s.lines))
	copy(lines, s.lines)
	return lines
}

// LoadPersisted reads the cart record straight from store. Absent records
// give an empty cart; a malformed record gives an empty cart and an error.
func LoadPersisted(store storage.Store) ([]model.Product, error) {
	var lines []model.Product
	if _, err := storage.LoadJSON(store, storage.KeyCart, &lines); err != nil {
		return []model.Product{}, err
	}
	if lines == nil {
		lines = []model.Product{}
	}
	return lines, nil
}
