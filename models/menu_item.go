package models

import "github.com/shopspring/decimal"

// CategoryAll is the filter value that bypasses category filtering
// entirely. An empty filter is treated the same way.
const CategoryAll = "all"

// Size labels a drink size. It is carried on menu items for display
// only; nothing in the storefront interprets it.
type Size string

const (
	SizeSmall  Size = "small"
	SizeMedium Size = "medium"
	SizeLarge  Size = "large"
)

// MenuItem is the canonical catalog record. IDs are assigned by the
// catalog store and never change afterwards.
type MenuItem struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Image       string          `json:"image"`
	Category    string          `json:"category"`
	Available   bool            `json:"available"`
	Ingredients []string        `json:"ingredients"`
	Size        Size            `json:"size,omitempty"`
}

// MenuItemInput is a MenuItem before the store has assigned it an id.
// No field is validated; a zero price is accepted as-is.
type MenuItemInput struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Image       string          `json:"image"`
	Category    string          `json:"category"`
	Available   bool            `json:"available"`
	Ingredients []string        `json:"ingredients"`
	Size        Size            `json:"size,omitempty"`
}
