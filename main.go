package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"resortly/config"
	"resortly/cron"
	"resortly/database"
	guestRepoPkg "resortly/database/repository/guest"
	menuRepoPkg "resortly/database/repository/menu"
	orderRepoPkg "resortly/database/repository/order"
	priceruleRepoPkg "resortly/database/repository/pricerule"
	reservationRepoPkg "resortly/database/repository/reservation"
	resourceRepoPkg "resortly/database/repository/resource"
	"resortly/handlers"
	"resortly/routes"
	"resortly/services/booking"
	"resortly/services/menu"
	"resortly/services/notification"
	"resortly/services/order"
	"resortly/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitSnapshotCache()

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	// repositories.
	reservationRepo := reservationRepoPkg.NewMongoReservationRepo()
	resourceRepo := resourceRepoPkg.NewMongoResourceRepo()
	priceRuleRepo := priceruleRepoPkg.NewMongoPriceRuleRepo()
	menuRepo := menuRepoPkg.NewMongoMenuRepo()
	orderRepo := orderRepoPkg.NewMongoOrderRepo()
	guestRepo := guestRepoPkg.NewMongoGuestRepo()

	// booking engine.
	availability := &booking.AvailabilityIndex{Reservations: reservationRepo}
	pricing := &booking.PriceRuleResolver{Rules: priceRuleRepo}
	ledger := &booking.CapacityLedger{
		Resources:    resourceRepo,
		Reservations: reservationRepo,
		Cache:        utils.GetSnapshotCacheClient(),
		SnapshotTTL:  time.Duration(config.AppConfig.SnapshotCacheTTL) * time.Second,
	}
	engine := &booking.Coordinator{
		Availability: availability,
		Pricing:      pricing,
		Ledger:       ledger,
		Resources:    resourceRepo,
		Reservations: reservationRepo,
	}

	// platform services.
	menuService := &menu.DefaultMenuService{Repo: menuRepo}
	orderService := &order.DefaultOrderService{Orders: orderRepo, Menu: menuRepo}
	notificationService := &notification.DefaultNotificationService{
		Guests: guestRepo,
		Sender: notification.LogSender{},
	}

	// reminder scheduling.
	reminderClient := cron.NewReminderClient()
	defer reminderClient.Close()
	cron.InitReminderWorker(notificationService, reservationRepo)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Booking:   handlers.NewBookingHandler(engine, reservationRepo, reminderClient, logger),
		Resources: handlers.NewResourceHandler(resourceRepo),
		PriceRule: handlers.NewPriceRuleHandler(priceRuleRepo),
		Menu:      handlers.NewMenuHandler(menuService),
		Orders:    handlers.NewOrderHandler(orderService),
		Guests:    handlers.NewGuestHandler(guestRepo),
	}

	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
