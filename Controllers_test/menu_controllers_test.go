package Controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/dapizza/storefront/controllers"
	"github.com/dapizza/storefront/models"
	"github.com/dapizza/storefront/store"
	"github.com/dapizza/storefront/utils"
)

func TestMain(m *testing.M) {
	utils.InitLogger()
	os.Exit(m.Run())
}

func seedCatalog() *store.CatalogStore {
	return store.NewCatalogStore([]models.MenuItem{
		{ID: "c1", Name: "Freddo Espresso", Category: "Espresso", Price: decimal.RequireFromString("3.00"), Available: true},
		{ID: "c2", Name: "V60", Category: "Filter", Price: decimal.RequireFromString("4.00"), Available: true},
	})
}

func setupMenuRouter(catalog *store.CatalogStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.Default()
	menuCtrl := controllers.NewMenuController(catalog)
	router.GET("/menus", menuCtrl.GetAllMenus)
	router.GET("/menus/:menu_id", menuCtrl.GetMenuByID)
	router.POST("/menus", menuCtrl.CreateMenu)
	router.PUT("/menus/:menu_id", menuCtrl.UpdateMenu)
	router.DELETE("/menus/:menu_id", menuCtrl.DeleteMenu)
	router.PATCH("/menus/:menu_id/availability", menuCtrl.ToggleMenuAvailability)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, url string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var body *bytes.Buffer
	if payload != nil {
		raw, err := json.Marshal(payload)
		assert.NoError(t, err)
		body = bytes.NewBuffer(raw)
	} else {
		body = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequest(method, url, body)
	assert.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data, _ := resp["data"].(map[string]interface{})
	return data
}

func TestMenuCRUD(t *testing.T) {
	catalog := seedCatalog()
	router := setupMenuRouter(catalog)

	// Create
	payload := map[string]interface{}{
		"name":        "Mocha",
		"description": "Espresso with chocolate",
		"price":       "4.20",
		"category":    "Espresso",
		"available":   true,
		"ingredients": []string{"house blend", "chocolate", "fresh milk"},
	}
	w := doJSON(t, router, "POST", "/menus", payload)
	assert.Equal(t, http.StatusCreated, w.Code)

	data := decodeData(t, w)
	menuID, ok := data["id"].(string)
	assert.True(t, ok, "created menu must carry a store-assigned id")
	assert.NotEmpty(t, menuID)
	assert.Equal(t, 3, catalog.Len())

	// Get by id
	w = doJSON(t, router, "GET", "/menus/"+menuID, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Mocha", decodeData(t, w)["name"])

	// Update
	payload["name"] = "Mocha Grande"
	payload["price"] = "4.80"
	w = doJSON(t, router, "PUT", "/menus/"+menuID, payload)
	assert.Equal(t, http.StatusOK, w.Code)

	item, found := catalog.Get(menuID)
	assert.True(t, found)
	assert.Equal(t, "Mocha Grande", item.Name)
	assert.True(t, item.Price.Equal(decimal.RequireFromString("4.80")))

	// Delete
	w = doJSON(t, router, "DELETE", "/menus/"+menuID, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, "GET", "/menus/"+menuID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, 2, catalog.Len())
}

func TestMenuListWithCategoryFilter(t *testing.T) {
	router := setupMenuRouter(seedCatalog())

	var resp struct {
		Data []models.MenuItem `json:"data"`
	}

	// No filter -> everything in insertion order
	w := doJSON(t, router, "GET", "/menus", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Data, 2)
	assert.Equal(t, "c1", resp.Data[0].ID)
	assert.Equal(t, "c2", resp.Data[1].ID)

	// Sentinel behaves the same
	w = doJSON(t, router, "GET", "/menus?category=all", nil)
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Data, 2)

	// Exact match only
	w = doJSON(t, router, "GET", "/menus?category=Espresso", nil)
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Data, 1)
	assert.Equal(t, "c1", resp.Data[0].ID)

	w = doJSON(t, router, "GET", "/menus?category=espresso", nil)
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.Data)
}

func TestMenuUpdateUnknownIDIsTolerated(t *testing.T) {
	catalog := seedCatalog()
	router := setupMenuRouter(catalog)

	w := doJSON(t, router, "PUT", "/menus/ghost", map[string]interface{}{
		"name":  "Ghost",
		"price": "1.00",
	})

	// Tolerant semantics: 200, nothing inserted, nothing changed.
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 2, catalog.Len())
	_, found := catalog.Get("ghost")
	assert.False(t, found)
}

func TestMenuToggleAvailability(t *testing.T) {
	catalog := seedCatalog()
	router := setupMenuRouter(catalog)

	w := doJSON(t, router, "PATCH", "/menus/c1/availability", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	item, _ := catalog.Get("c1")
	assert.False(t, item.Available)

	// Unknown id: still 200, catalog untouched.
	w = doJSON(t, router, "PATCH", "/menus/ghost/availability", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 2, catalog.Len())
}
