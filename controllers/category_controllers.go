package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dapizza/storefront/models"
	"github.com/dapizza/storefront/utils"
)

// CategoryController serves the static tab list from the seed. The
// catalog does not enforce that item categories appear here.
type CategoryController struct {
	Categories []models.Category
}

func NewCategoryController(categories []models.Category) *CategoryController {
	return &CategoryController{Categories: categories}
}

// GetAllCategories
func (cc *CategoryController) GetAllCategories(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "All menu categories", cc.Categories)
}
