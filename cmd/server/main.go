package main

import (
	"context"

	"cinema-tickets/config"
	"cinema-tickets/internal/database"
	"cinema-tickets/internal/handler"
	"cinema-tickets/internal/service"
	"cinema-tickets/internal/thirdparty/paymentgateway"
	"cinema-tickets/internal/thirdparty/seatbooking"
	"cinema-tickets/pkg/logger"
	"cinema-tickets/pkg/metrics"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func main() {
	cfg := config.LoadConfig()
	log := logger.WithComponent("server")
	defer logger.L.Sync()

	pool, err := database.InitDatabase(&cfg.Database)
	if err != nil {
		log.Fatal("Failed to initialize database", zap.Error(err))
	}
	defer pool.Close()

	if err := database.EnsureSchema(context.Background(), pool); err != nil {
		log.Fatal("Failed to prepare database schema", zap.Error(err))
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		log.Fatal("Failed to initialize redis", zap.Error(err))
	}
	defer rdb.Close()

	ticketService := service.NewTicketService(
		cfg.Pricing,
		paymentgateway.NewPostgresTicketPaymentService(pool),
		seatbooking.NewRedisSeatReservationService(rdb),
	)

	router := gin.Default()
	router.Use(metrics.PrometheusMiddleware("cinema-tickets"))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	handler.RegisterHealthRoutes(router)
	handler.NewPurchaseHandler(ticketService).RegisterRoutes(router)

	log.Info("Server starting",
		zap.String("port", cfg.Server.Port),
		zap.Int("adult_price", cfg.Pricing.AdultPrice),
		zap.Int("child_price", cfg.Pricing.ChildPrice),
		zap.Int("max_tickets", cfg.Pricing.MaxTickets),
	)
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		log.Fatal("Server stopped", zap.Error(err))
	}
}
