package main

import (
	"context"
	"log"

	"go.uber.org/zap"

	"gearmart-be/internal/analytics"
	"gearmart-be/internal/cart"
	"gearmart-be/internal/config"
	"gearmart-be/internal/db"
	"gearmart-be/internal/feedback"
	"gearmart-be/internal/httpapi"
	"gearmart-be/internal/logger"
	"gearmart-be/internal/notification"
	"gearmart-be/internal/order"
	"gearmart-be/internal/pricing"
	"gearmart-be/internal/product"
	"gearmart-be/internal/user"
	"gearmart-be/internal/wishlist"
)

// logMailer stands in for the SMTP integration: it logs the reset link
// instead of sending it.
type logMailer struct{}

func (logMailer) SendPasswordReset(ctx context.Context, email, token string) error {
	logger.FromCtx(ctx).Info("password reset requested",
		zap.String("email", email), zap.String("token", token))
	return nil
}

func main() {
	cfg := config.LoadConfig()
	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	database := db.InitDB(cfg)
	defer database.Close()

	policy := pricing.DefaultPolicy()

	userSvc := user.NewService(user.NewRepository(database), logMailer{})
	productSvc := product.NewService(product.NewRepository(database))
	cartSvc := cart.NewService(cart.NewRepository(database), policy)
	notificationSvc := notification.NewService(notification.NewRepository(database))
	orderSvc := order.NewService(order.NewRepository(database), notificationSvc)
	wishlistSvc := wishlist.NewService(wishlist.NewRepository(database), policy)
	feedbackSvc := feedback.NewService(feedback.NewRepository(database))
	analyticsSvc := analytics.NewService(analytics.NewRepository(database))

	router := httpapi.NewRouter(&httpapi.Handler{
		Users:         userSvc,
		Products:      productSvc,
		Pricing:       policy,
		Carts:         cartSvc,
		Orders:        orderSvc,
		Notifications: notificationSvc,
		Wishlist:      wishlistSvc,
		Feedback:      feedbackSvc,
		Analytics:     analyticsSvc,
		Receipts:      httpapi.TextReceipt{},
	})

	logger.L().Info("server listening", zap.String("port", cfg.AppPort))
	log.Fatal(router.Run(":" + cfg.AppPort))
}
