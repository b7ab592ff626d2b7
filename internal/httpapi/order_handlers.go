package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gearmart-be/internal/middleware"
	"gearmart-be/internal/order"
	"gearmart-be/internal/user"
)

func (h *Handler) checkout(c *gin.Context) {
	var info order.ShippingInfo
	if err := c.ShouldBindJSON(&info); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid shipping payload"})
		return
	}

	result, err := h.Orders.Checkout(c.Request.Context(), middleware.UserID(c), info)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}

func (h *Handler) myOrders(c *gin.Context) {
	orders, err := h.Orders.ListByUser(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *Handler) getOrder(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	isAdmin := middleware.Role(c) == string(user.RoleAdmin)
	o, err := h.Orders.Get(c.Request.Context(), middleware.UserID(c), id, isAdmin)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, o)
}

func (h *Handler) orderReceipt(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	isAdmin := middleware.Role(c) == string(user.RoleAdmin)
	o, err := h.Orders.Get(c.Request.Context(), middleware.UserID(c), id, isAdmin)
	if err != nil {
		respondError(c, err)
		return
	}

	body, contentType, err := h.Receipts.Render(o)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Data(http.StatusOK, contentType, body)
}

func (h *Handler) paymentSuccess(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req struct {
		TransactionID string `json:"transaction_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "transaction_id is required"})
		return
	}

	if err := h.Orders.ConfirmPayment(c.Request.Context(), id, req.TransactionID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "payment recorded"})
}

func (h *Handler) listOrders(c *gin.Context) {
	orders, err := h.Orders.ListAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *Handler) updateOrderStatus(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req struct {
		Status        string `json:"status" binding:"required"`
		PaymentStatus string `json:"payment_status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status is required"})
		return
	}

	err := h.Orders.UpdateStatus(c.Request.Context(), id, order.Status(req.Status), req.PaymentStatus)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "order status updated"})
}

func (h *Handler) updateShippingStatus(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req struct {
		ShippingStatus string `json:"shipping_status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "shipping_status is required"})
		return
	}

	err := h.Orders.UpdateShippingStatus(c.Request.Context(), id, order.ShippingStatus(req.ShippingStatus))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "shipping status updated"})
}
