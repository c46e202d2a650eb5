package models

import "github.com/shopspring/decimal"

// CartLine is one aggregated cart entry, keyed by the referenced menu
// item id. Name and price are a snapshot taken when the line was first
// created; later catalog edits do not touch them.
type CartLine struct {
	PizzaID   string          `json:"pizza_id"`
	PizzaName string          `json:"pizza_name"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
}

// CartState is the renderable cart: the drawer visibility flag plus the
// line list. Visibility is independent of line content.
type CartState struct {
	IsOpen bool       `json:"is_open"`
	Lines  []CartLine `json:"items"`
}
