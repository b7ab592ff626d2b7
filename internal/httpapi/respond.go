package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"gearmart-be/internal/analytics"
	"gearmart-be/internal/cart"
	"gearmart-be/internal/feedback"
	"gearmart-be/internal/logger"
	"gearmart-be/internal/notification"
	"gearmart-be/internal/order"
	"gearmart-be/internal/product"
	"gearmart-be/internal/user"
	"gearmart-be/internal/wishlist"
)

// respondError translates domain sentinel errors into HTTP status codes.
// Anything unmapped is a 500 with a generic body; the cause goes to the log
// only.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, user.ErrInvalidInput),
		errors.Is(err, user.ErrInvalidResetToken),
		errors.Is(err, product.ErrInvalidInput),
		errors.Is(err, cart.ErrInvalidQuantity),
		errors.Is(err, order.ErrCartEmpty),
		errors.Is(err, order.ErrInvalidStatus),
		errors.Is(err, order.ErrInvalidShippingStatus),
		errors.Is(err, order.ErrMissingPaymentDetails),
		errors.Is(err, feedback.ErrInvalidFeedback),
		errors.Is(err, analytics.ErrInsufficientData):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

	case errors.Is(err, user.ErrInvalidCredentials),
		errors.Is(err, order.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})

	case errors.Is(err, user.ErrNotApproved):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})

	case errors.Is(err, user.ErrUserNotFound),
		errors.Is(err, product.ErrProductNotFound),
		errors.Is(err, cart.ErrProductNotFound),
		errors.Is(err, cart.ErrCartLineNotFound),
		errors.Is(err, order.ErrCartNotFound),
		errors.Is(err, order.ErrOrderNotFound),
		errors.Is(err, notification.ErrNotificationNotFound),
		errors.Is(err, wishlist.ErrEntryNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})

	case errors.Is(err, user.ErrEmailExists),
		errors.Is(err, product.ErrDuplicateProduct),
		errors.Is(err, product.ErrStockConflict),
		errors.Is(err, cart.ErrInsufficientStock),
		errors.Is(err, order.ErrInsufficientStock),
		errors.Is(err, order.ErrInvalidTransition),
		errors.Is(err, wishlist.ErrAlreadyInWishlist):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})

	default:
		logger.FromCtx(c.Request.Context()).Error("unhandled request error",
			zap.String("path", c.FullPath()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
