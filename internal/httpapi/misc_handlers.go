package httpapi

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"gearmart-be/internal/middleware"
)

func (h *Handler) addToWishlist(c *gin.Context) {
	var req struct {
		ProductID int64 `json:"product_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "product_id is required"})
		return
	}

	if err := h.Wishlist.Add(c.Request.Context(), middleware.UserID(c), req.ProductID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "added to wishlist"})
}

func (h *Handler) listWishlist(c *gin.Context) {
	items, err := h.Wishlist.List(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) removeFromWishlist(c *gin.Context) {
	productID, ok := parseID(c, "productId")
	if !ok {
		return
	}

	if err := h.Wishlist.Remove(c.Request.Context(), middleware.UserID(c), productID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "removed from wishlist"})
}

func (h *Handler) listNotifications(c *gin.Context) {
	notifications, err := h.Notifications.ListByUser(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, notifications)
}

func (h *Handler) markNotificationRead(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.Notifications.MarkRead(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "notification marked as read"})
}

func (h *Handler) submitFeedback(c *gin.Context) {
	var req struct {
		Message string `json:"message"`
		Rating  int    `json:"rating"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid feedback payload"})
		return
	}

	if err := h.Feedback.Submit(c.Request.Context(), middleware.UserID(c), req.Message, req.Rating); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "feedback submitted"})
}

func (h *Handler) listFeedback(c *gin.Context) {
	feedback, err := h.Feedback.ListAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, feedback)
}

func (h *Handler) abcAnalysis(c *gin.Context) {
	result, err := h.Analytics.ABCAnalysis(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *Handler) fsnAnalysis(c *gin.Context) {
	items, err := h.Analytics.FSNAnalysis(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) forecastSMA(c *gin.Context) {
	preds, err := h.Analytics.ForecastSMA(c.Request.Context(), time.Now())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, preds)
}

func (h *Handler) forecastEMA(c *gin.Context) {
	preds, err := h.Analytics.ForecastEMA(c.Request.Context(), time.Now())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, preds)
}

func (h *Handler) forecastRegression(c *gin.Context) {
	preds, err := h.Analytics.ForecastRegression(c.Request.Context(), time.Now())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, preds)
}

func (h *Handler) salesReport(c *gin.Context) {
	report, err := h.Analytics.SalesReport(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}
