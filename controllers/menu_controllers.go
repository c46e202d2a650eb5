package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dapizza/storefront/events"
	"github.com/dapizza/storefront/models"
	"github.com/dapizza/storefront/store"
	"github.com/dapizza/storefront/utils"
)

type MenuController struct {
	Catalog *store.CatalogStore
}

func NewMenuController(catalog *store.CatalogStore) *MenuController {
	return &MenuController{Catalog: catalog}
}

// GetAllMenus returns the catalog in insertion order. An optional
// ?category= query filters by exact match; "all" or no value returns
// everything.
func (mc *MenuController) GetAllMenus(c *gin.Context) {
	category := c.Query("category")
	menus := mc.Catalog.List(category)

	utils.RespondJSON(c, http.StatusOK, "List of menus", menus)
}

// GetMenuByID
func (mc *MenuController) GetMenuByID(c *gin.Context) {
	id := c.Param("menu_id")

	menu, ok := mc.Catalog.Get(id)
	if !ok {
		utils.RespondError(c, http.StatusNotFound, errors.New("menu item not found"))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Menu detail", menu)
}

// CreateMenu adds a catalog item. The store assigns the id; field
// values are stored as given.
func (mc *MenuController) CreateMenu(c *gin.Context) {
	var input models.MenuItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	menu := mc.Catalog.Add(input)
	events.BroadcastMenuCreated(menu)

	utils.InfoLogger.Printf("Menu created: %s (%s)", menu.Name, menu.ID)
	utils.RespondJSON(c, http.StatusCreated, "Menu created", menu)
}

// UpdateMenu replaces the record wholesale. An unknown id leaves the
// catalog untouched and still answers 200; callers do not check for
// failure.
func (mc *MenuController) UpdateMenu(c *gin.Context) {
	id := c.Param("menu_id")

	var input models.MenuItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	mc.Catalog.Update(models.MenuItem{
		ID:          id,
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Image:       input.Image,
		Category:    input.Category,
		Available:   input.Available,
		Ingredients: input.Ingredients,
		Size:        input.Size,
	})

	if menu, ok := mc.Catalog.Get(id); ok {
		events.BroadcastMenuUpdated(menu)
		utils.RespondJSON(c, http.StatusOK, "Menu updated", menu)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Menu updated", nil)
}

// DeleteMenu removes the record if present. Cart lines referencing it
// keep their snapshot; there is no cascade.
func (mc *MenuController) DeleteMenu(c *gin.Context) {
	id := c.Param("menu_id")

	mc.Catalog.Remove(id)
	events.BroadcastMenuDeleted(id)

	utils.RespondJSON(c, http.StatusOK, "Menu deleted", gin.H{"menu_id": id})
}

// ToggleMenuAvailability flips the sold-out flag.
func (mc *MenuController) ToggleMenuAvailability(c *gin.Context) {
	id := c.Param("menu_id")

	mc.Catalog.ToggleAvailability(id)

	if menu, ok := mc.Catalog.Get(id); ok {
		events.BroadcastMenuAvailability(menu)
		utils.RespondJSON(c, http.StatusOK, "Menu availability toggled", menu)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Menu availability toggled", nil)
}
