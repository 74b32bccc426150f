package gateway

import (
	"net/http"

	"github.com/example/storefront/pkg/service"
	"github.com/gin-gonic/gin"
)

type orderItemRequest struct {
	Product struct {
		ID string `json:"id"`
	} `json:"product"`
	Quantity int `json:"quantity"`
}

type createOrderRequest struct {
	Items []orderItemRequest `json:"items"`
}

func (g *Gateway) createOrder(c *gin.Context) {
	var req createOrderRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid request body"})
		return
	}

	items := make([]service.CartItem, len(req.Items))
	for i, item := range req.Items {
		items[i] = service.CartItem{
			ProductID: item.Product.ID,
			Quantity:  item.Quantity,
		}
	}

	order, err := g.orders.Create(c.Request.Context(), currentUserID(c), items)
	if err != nil {
		respondError(c, err, "Failed to create order")
		return
	}

	respond(c, http.StatusCreated, "Order created successfully", order)
}

func (g *Gateway) listOrders(c *gin.Context) {
	orders, err := g.orders.List(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondError(c, err, "Failed to retrieve orders")
		return
	}

	respond(c, http.StatusOK, "Orders retrieved successfully", orders)
}

func (g *Gateway) getOrder(c *gin.Context) {
	order, err := g.orders.Get(c.Request.Context(), currentUserID(c), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve order")
		return
	}

	respond(c, http.StatusOK, "Order retrieved successfully", order)
}
