package models

// Category is a display-only grouping shown as menu tabs. Catalog items
// reference categories by name with no referential integrity; an item
// may carry a category that appears in no Category list.
type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}
