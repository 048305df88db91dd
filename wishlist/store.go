// Package wishlist persists product snapshots in an external key-value
// store. Entries are copies of the product at add time, not live references,
// and the whole list round-trips through JSON as a flat ordered sequence.
package wishlist

import (
	"context"
	"encoding/json"

	"github.com/abduulthecoder/fam-vans-parts-store/models"
)

// Store is the key-value collaborator behind the wishlist. Each mutation is
// a whole read-then-write of the serialized list; the single-tab usage model
// has no concurrent writers, so no store-side locking is assumed.
type Store interface {
	// Items returns the stored snapshots in insertion order.
	Items(ctx context.Context) ([]models.Product, error)
	// Add appends a snapshot of the product unless a snapshot with the same
	// part number is already present. Returns true when the list changed.
	Add(ctx context.Context, p models.Product) (bool, error)
	// Remove drops the snapshot with the given part number. Returns true
	// when the list changed.
	Remove(ctx context.Context, partNumber string) (bool, error)
	// Clear empties the wishlist.
	Clear(ctx context.Context) error
}

// Contains scans a snapshot list for a part number. Identity is the part
// number alone; snapshots are never compared structurally.
func Contains(items []models.Product, partNumber string) bool {
	for _, p := range items {
		if p.PartNumber == partNumber {
			return true
		}
	}
	return false
}

// encode serializes the list. An empty list encodes as "[]" so the stored
// value always parses back, never as null.
func encode(items []models.Product) ([]byte, error) {
	if items == nil {
		items = []models.Product{}
	}
	return json.Marshal(items)
}

// decode parses a stored list; empty input is an empty wishlist.
func decode(raw []byte) ([]models.Product, error) {
	if len(raw) == 0 {
		return []models.Product{}, nil
	}
	var items []models.Product
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = []models.Product{}
	}
	return items, nil
}

// addItem and removeItem hold the list semantics shared by every Store
// implementation so they can't drift between backends.
func addItem(items []models.Product, p models.Product) ([]models.Product, bool) {
	if Contains(items, p.PartNumber) {
		return items, false
	}
	return append(items, p), true
}

func removeItem(items []models.Product, partNumber string) ([]models.Product, bool) {
	for i, p := range items {
		if p.PartNumber == partNumber {
			return append(items[:i:i], items[i+1:]...), true
		}
	}
	return items, false
}
