package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dapizza/storefront/store"
	"github.com/dapizza/storefront/utils"
)

// CartController is the bridge between the catalog and the cart: adds
// go through the catalog so the line snapshots the current record, and
// unavailable items are refused here, not in the aggregator.
type CartController struct {
	Catalog *store.CatalogStore
	Cart    *store.CartAggregator
}

func NewCartController(catalog *store.CatalogStore, cart *store.CartAggregator) *CartController {
	return &CartController{Catalog: catalog, Cart: cart}
}

func (cc *CartController) cartPayload() gin.H {
	state := cc.Cart.State()
	total := cc.Cart.TotalPrice()
	return gin.H{
		"is_open":       state.IsOpen,
		"items":         state.Lines,
		"total_items":   cc.Cart.TotalItems(),
		"total_price":   total,
		"total_display": utils.FormatCurrencyEUR(total),
	}
}

// GetCart returns the drawer state plus derived totals.
func (cc *CartController) GetCart(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "Cart state", cc.cartPayload())
}

// AddCartItem merges a catalog item into the cart. Re-adding an id
// bumps the quantity of the existing line without refreshing its
// name/price snapshot.
func (cc *CartController) AddCartItem(c *gin.Context) {
	var body struct {
		MenuItemID string `json:"menu_item_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	item, ok := cc.Catalog.Get(body.MenuItemID)
	if !ok {
		utils.RespondError(c, http.StatusNotFound, errors.New("menu item not found"))
		return
	}
	if !item.Available {
		utils.RespondError(c, http.StatusConflict, errors.New("menu item is not available"))
		return
	}

	cc.Cart.AddItem(item)
	utils.RespondJSON(c, http.StatusOK, "Item added to cart", cc.cartPayload())
}

// RemoveCartItem deletes a line. Unknown ids answer 200; the cart
// treats them as a no-op.
func (cc *CartController) RemoveCartItem(c *gin.Context) {
	cc.Cart.RemoveItem(c.Param("pizza_id"))
	utils.RespondJSON(c, http.StatusOK, "Item removed from cart", cc.cartPayload())
}

// UpdateCartItem takes either an absolute quantity or a signed delta
// from the drawer's +/- controls. Both clamp at 1; lines are never
// deleted by a quantity change.
func (cc *CartController) UpdateCartItem(c *gin.Context) {
	var body struct {
		Quantity *int `json:"quantity"`
		Delta    *int `json:"delta"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	pizzaID := c.Param("pizza_id")
	switch {
	case body.Delta != nil:
		cc.Cart.AdjustQuantity(pizzaID, *body.Delta)
	case body.Quantity != nil:
		cc.Cart.UpdateQuantity(pizzaID, *body.Quantity)
	default:
		utils.RespondError(c, http.StatusBadRequest, errors.New("quantity or delta is required"))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Cart updated", cc.cartPayload())
}

// ToggleCart flips the drawer open/closed.
func (cc *CartController) ToggleCart(c *gin.Context) {
	cc.Cart.ToggleOpen()
	utils.RespondJSON(c, http.StatusOK, "Cart toggled", cc.cartPayload())
}

// CloseCart closes the drawer without touching the lines.
func (cc *CartController) CloseCart(c *gin.Context) {
	cc.Cart.Close()
	utils.RespondJSON(c, http.StatusOK, "Cart closed", cc.cartPayload())
}

// Checkout is the storefront's call to action. No payment or
// fulfilment happens; the order is logged, the cart emptied and the
// drawer closed.
func (cc *CartController) Checkout(c *gin.Context) {
	if cc.Cart.TotalItems() == 0 {
		utils.RespondError(c, http.StatusBadRequest, errors.New("cart is empty"))
		return
	}

	total := cc.Cart.TotalPrice()
	utils.InfoLogger.Printf("Checkout: %d items, total %s", cc.Cart.TotalItems(), utils.FormatCurrencyEUR(total))

	cc.Cart.Clear()
	cc.Cart.Close()

	utils.RespondJSON(c, http.StatusOK, "Order placed", gin.H{
		"total_price":   total,
		"total_display": utils.FormatCurrencyEUR(total),
	})
}
