package wishlist

import (
	"context"
	"sync"

	"github.com/abduulthecoder/fam-vans-parts-store/models"
)

// MemoryStore is an in-process Store. It backs tests and runs the storefront
// without Redis; the list does not survive a restart.
type MemoryStore struct {
	mu  sync.Mutex
	raw []byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Items(ctx context.Context) ([]models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return decode(s.raw)
}

func (s *MemoryStore) Add(ctx context.Context, p models.Product) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	items, err := decode(s.raw)
	if err != nil {
		return false, err
	}
	items, changed := addItem(items, p)
	if !changed {
		return false, nil
	}
	raw, err := encode(items)
	if err != nil {
		return false, err
	}
	s.raw = raw
	return true, nil
}

func (s *MemoryStore) Remove(ctx context.Context, partNumber string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	items, err := decode(s.raw)
	if err != nil {
		return false, err
	}
	items, changed := removeItem(items, partNumber)
	if !changed {
		return false, nil
	}
	raw, err := encode(items)
	if err != nil {
		return false, err
	}
	s.raw = raw
	return true, nil
}

func (s *MemoryStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.raw = nil
	return nil
}
