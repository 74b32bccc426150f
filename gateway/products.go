package gateway

import (
	"net/http"
	"strconv"

	"github.com/example/storefront/pkg/service"
	"github.com/gin-gonic/gin"
)

func (g *Gateway) listProducts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "20"))

	result, err := g.catalog.List(c.Request.Context(), service.ProductFilter{
		Category: c.Query("category"),
		Search:   c.Query("search"),
		Page:     page,
		PerPage:  perPage,
	})
	if err != nil {
		respondError(c, err, "Failed to retrieve products")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Products retrieved successfully",
		"data":    result.Items,
		"pagination": gin.H{
			"page":     result.Page,
			"per_page": result.PerPage,
			"total":    result.Total,
			"pages":    result.Pages,
		},
	})
}

func (g *Gateway) getProduct(c *gin.Context) {
	product, err := g.catalog.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve product")
		return
	}

	respond(c, http.StatusOK, "Product retrieved successfully", product)
}

func (g *Gateway) listCategories(c *gin.Context) {
	categories, err := g.catalog.Categories(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to retrieve categories")
		return
	}

	respond(c, http.StatusOK, "Categories retrieved successfully", categories)
}
