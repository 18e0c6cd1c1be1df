package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/SrikrishnaTophakhane/Srikrishna-Memmoire-WEBSITE/internal/catalog"
	"github.com/SrikrishnaTophakhane/Srikrishna-Memmoire-WEBSITE/internal/dto"
)

// ProductHandler serves the static catalog. A single endpoint multiplexes
// four query shapes, matching the original storefront's products API:
// by id, by category, free-text search, or the full catalog.
type ProductHandler struct{}

func NewProductHandler() *ProductHandler {
	return &ProductHandler{}
}

func (h *ProductHandler) Query(c *gin.Context) {
	if idParam := c.Query("id"); idParam != "" {
		id, err := strconv.Atoi(idParam)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product ID"})
			return
		}
		product, category := catalog.ProductByID(id)
		if product == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		c.JSON(http.StatusOK, dto.ProductDetailResponse{
			Product:  dto.ProductResponse{Product: *product, Category: category},
			Variants: catalog.Variants(product),
		})
		return
	}

	if category := c.Query("category"); category != "" {
		c.JSON(http.StatusOK, dto.CategoryProductsResponse{
			Category: catalog.CategoryName(category),
			Products: catalog.ProductsByCategory(category),
		})
		return
	}

	if search := c.Query("search"); search != "" {
		c.JSON(http.StatusOK, dto.SearchResponse{Products: catalog.Search(search)})
		return
	}

	c.JSON(http.StatusOK, dto.CatalogResponse{
		Categories: catalog.Categories(),
		Products:   catalog.AllProducts(),
	})
}
