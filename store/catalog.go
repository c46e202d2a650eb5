package store

import (
	"sync"

	"github.com/google/uuid"

	"github.com/dapizza/storefront/models"
)

// CatalogStore holds the authoritative menu item list in memory,
// seeded once at startup. There is no persistence; a restart loses
// every admin edit.
//
// Mutations with an unknown id are silent no-ops. Callers never need
// to check for failure.
type CatalogStore struct {
	mu    sync.RWMutex
	items []models.MenuItem
}

// NewCatalogStore builds a store from an initial item list. The seed
// slice is copied, so the caller keeps ownership of its own slice.
func NewCatalogStore(seed []models.MenuItem) *CatalogStore {
	items := make([]models.MenuItem, len(seed))
	copy(items, seed)
	return &CatalogStore{items: items}
}

// Add assigns a fresh unique id, appends the item and returns the
// stored record. Field values are taken as given, zero or negative
// prices included.
func (cs *CatalogStore) Add(input models.MenuItemInput) models.MenuItem {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	item := models.MenuItem{
		ID:          uuid.NewString(),
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Image:       input.Image,
		Category:    input.Category,
		Available:   input.Available,
		Ingredients: input.Ingredients,
		Size:        input.Size,
	}
	cs.items = append(cs.items, item)
	return item
}

// Update replaces the record with a matching id wholesale, keeping its
// position. Unknown ids are ignored; Update never inserts.
func (cs *CatalogStore) Update(item models.MenuItem) {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	for i := range cs.items {
		if cs.items[i].ID == item.ID {
			cs.items[i] = item
			return
		}
	}
}

// Remove deletes the record with the given id, if present.
func (cs *CatalogStore) Remove(id string) {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	for i := range cs.items {
		if cs.items[i].ID == id {
			cs.items = append(cs.items[:i], cs.items[i+1:]...)
			return
		}
	}
}

// ToggleAvailability flips the available flag of the matching record
// in place.
func (cs *CatalogStore) ToggleAvailability(id string) {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	for i := range cs.items {
		if cs.items[i].ID == id {
			cs.items[i].Available = !cs.items[i].Available
			return
		}
	}
}

// List returns items in insertion order. A category filters by exact,
// case-sensitive match; models.CategoryAll or the empty string returns
// everything. The returned slice is a copy.
func (cs *CatalogStore) List(category string) []models.MenuItem {
	cs.mu.RLock()
	defer cs.mu.RUnlock()

	if category == "" || category == models.CategoryAll {
		out := make([]models.MenuItem, len(cs.items))
		copy(out, cs.items)
		return out
	}

	out := make([]models.MenuItem, 0)
	for _, item := range cs.items {
		if item.Category == category {
			out = append(out, item)
		}
	}
	return out
}

// Get looks up a single item by id.
func (cs *CatalogStore) Get(id string) (models.MenuItem, bool) {
	cs.mu.RLock()
	defer cs.mu.RUnlock()

	for _, item := range cs.items {
		if item.ID == id {
			return item, true
		}
	}
	return models.MenuItem{}, false
}

// Len reports the current item count.
func (cs *CatalogStore) Len() int {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	return len(cs.items)
}
