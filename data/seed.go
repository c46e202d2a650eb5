// Package data holds the initial menu the storefront boots with. The
// catalog is volatile; every restart comes back to this list.
package data

import (
	"github.com/shopspring/decimal"

	"github.com/dapizza/storefront/models"
)

// Categories returns the tab list shown above the menu grid.
func Categories() []models.Category {
	return []models.Category{
		{ID: "espresso", Name: "Espresso", Description: "Classic espresso-based drinks"},
		{ID: "filter", Name: "Filter", Description: "Slow-brewed single origins"},
		{ID: "cold", Name: "Cold", Description: "Iced and freddo drinks"},
		{ID: "sweets", Name: "Sweets", Description: "Something next to the coffee"},
	}
}

// MenuItems returns the seed catalog. IDs here are fixed strings so the
// seed is stable across restarts; items created by the admin screen get
// generated ids instead.
func MenuItems() []models.MenuItem {
	return []models.MenuItem{
		{
			ID:          "espresso-single",
			Name:        "Espresso",
			Description: "Single shot, house blend",
			Price:       decimal.RequireFromString("2.00"),
			Image:       "/images/espresso.jpg",
			Category:    "Espresso",
			Available:   true,
			Ingredients: []string{"house blend"},
			Size:        models.SizeSmall,
		},
		{
			ID:          "cappuccino",
			Name:        "Cappuccino",
			Description: "Double shot with velvety milk foam",
			Price:       decimal.RequireFromString("3.20"),
			Image:       "/images/cappuccino.jpg",
			Category:    "Espresso",
			Available:   true,
			Ingredients: []string{"house blend", "fresh milk"},
			Size:        models.SizeMedium,
		},
		{
			ID:          "latte",
			Name:        "Latte",
			Description: "Espresso with steamed milk",
			Price:       decimal.RequireFromString("3.50"),
			Image:       "/images/latte.jpg",
			Category:    "Espresso",
			Available:   true,
			Ingredients: []string{"house blend", "fresh milk"},
			Size:        models.SizeLarge,
		},
		{
			ID:          "freddo-espresso",
			Name:        "Freddo Espresso",
			Description: "Double shot shaken over ice",
			Price:       decimal.RequireFromString("3.00"),
			Image:       "/images/freddo-espresso.jpg",
			Category:    "Cold",
			Available:   true,
			Ingredients: []string{"house blend", "ice"},
		},
		{
			ID:          "freddo-cappuccino",
			Name:        "Freddo Cappuccino",
			Description: "Freddo espresso topped with cold milk foam",
			Price:       decimal.RequireFromString("3.50"),
			Image:       "/images/freddo-cappuccino.jpg",
			Category:    "Cold",
			Available:   true,
			Ingredients: []string{"house blend", "fresh milk", "ice"},
		},
		{
			ID:          "v60",
			Name:        "V60 Single Origin",
			Description: "Pour-over, rotating single origin",
			Price:       decimal.RequireFromString("4.00"),
			Image:       "/images/v60.jpg",
			Category:    "Filter",
			Available:   true,
			Ingredients: []string{"single origin"},
		},
		{
			ID:          "portokalopita",
			Name:        "Portokalopita",
			Description: "Orange phyllo cake with syrup",
			Price:       decimal.RequireFromString("4.50"),
			Image:       "/images/portokalopita.jpg",
			Category:    "Sweets",
			Available:   false,
			Ingredients: []string{"phyllo", "orange", "syrup"},
		},
	}
}
