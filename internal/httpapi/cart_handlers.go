package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gearmart-be/internal/cart"
	"gearmart-be/internal/middleware"
)

type cartItemRequest struct {
	ProductID int64 `json:"product_id" binding:"required"`
	Quantity  int64 `json:"quantity" binding:"required"`
}

func (h *Handler) addToCart(c *gin.Context) {
	var req cartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "product_id and quantity are required"})
		return
	}

	err := h.Carts.AddToCart(c.Request.Context(), cart.AddParams{
		UserID:    middleware.UserID(c),
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "item added to cart"})
}

func (h *Handler) listCart(c *gin.Context) {
	lines, err := h.Carts.List(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, lines)
}

func (h *Handler) cartTotal(c *gin.Context) {
	total, err := h.Carts.Total(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"total": total})
}

func (h *Handler) updateCartItem(c *gin.Context) {
	productID, ok := parseID(c, "productId")
	if !ok {
		return
	}

	var req struct {
		Quantity int64 `json:"quantity" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "quantity is required"})
		return
	}

	err := h.Carts.UpdateQuantity(c.Request.Context(), cart.UpdateParams{
		UserID:    middleware.UserID(c),
		ProductID: productID,
		Quantity:  req.Quantity,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "cart updated"})
}

func (h *Handler) removeCartItem(c *gin.Context) {
	productID, ok := parseID(c, "productId")
	if !ok {
		return
	}

	if err := h.Carts.RemoveFromCart(c.Request.Context(), middleware.UserID(c), productID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "item removed"})
}
