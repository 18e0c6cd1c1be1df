package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"

	"github.com/SrikrishnaTophakhane/Srikrishna-Memmoire-WEBSITE/internal/config"
	"github.com/SrikrishnaTophakhane/Srikrishna-Memmoire-WEBSITE/internal/gateway"
	"github.com/SrikrishnaTophakhane/Srikrishna-Memmoire-WEBSITE/internal/handler"
	"github.com/SrikrishnaTophakhane/Srikrishna-Memmoire-WEBSITE/internal/middleware"
	"github.com/SrikrishnaTophakhane/Srikrishna-Memmoire-WEBSITE/internal/repository"
	"github.com/SrikrishnaTophakhane/Srikrishna-Memmoire-WEBSITE/internal/service"
	"github.com/SrikrishnaTophakhane/Srikrishna-Memmoire-WEBSITE/internal/storage"
	"github.com/SrikrishnaTophakhane/Srikrishna-Memmoire-WEBSITE/internal/worker"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Error("load config", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// PostgreSQL
	poolCfg, err := pgxpool.ParseConfig(cfg.DB.DSN())
	if err != nil {
		log.Error("parse db config", "error", err)
		os.Exit(1)
	}
	poolCfg.MaxConns = cfg.DB.MaxConns

	dbPool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		log.Error("connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	if err := dbPool.Ping(ctx); err != nil {
		log.Error("ping database", "error", err)
		os.Exit(1)
	}
	log.Info("connected to PostgreSQL")

	// Redis
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Error("connect to Redis", "error", err)
		os.Exit(1)
	}
	log.Info("connected to Redis")

	// RabbitMQ
	amqpConn, err := amqp.Dial(cfg.RabbitMQ.URL)
	if err != nil {
		log.Error("connect to RabbitMQ", "error", err)
		os.Exit(1)
	}
	defer amqpConn.Close()

	amqpCh, err := amqpConn.Channel()
	if err != nil {
		log.Error("open RabbitMQ channel", "error", err)
		os.Exit(1)
	}
	defer amqpCh.Close()

	if err := worker.SetupRabbitMQ(amqpCh); err != nil {
		log.Error("setup RabbitMQ", "error", err)
		os.Exit(1)
	}
	log.Info("connected to RabbitMQ")

	// Repositories
	userRepo := repository.NewUserRepository(dbPool)
	addressRepo := repository.NewAddressRepository(dbPool)
	cartRepo := repository.NewCartRepository(dbPool)
	orderRepo := repository.NewOrderRepository(dbPool)

	// Collaborators
	razorpay := gateway.NewClient(cfg.Razorpay)
	designStore := storage.NewDiskStore(cfg.Uploads)

	// Services
	authSvc := service.NewAuthService(userRepo, cfg.JWT.Secret, cfg.JWT.Expiration)
	cartSvc := service.NewCartService(cartRepo, redisClient)
	addressSvc := service.NewAddressService(addressRepo)
	orderSvc := service.NewOrderService(orderRepo)
	checkoutSvc := service.NewCheckoutService(orderRepo, cartRepo, addressRepo, razorpay, redisClient, amqpCh, cfg.Razorpay.Currency)
	uploadSvc := service.NewUploadService(designStore, cfg.Uploads.MaxSizeMB)

	// Handlers
	authH := handler.NewAuthHandler(authSvc)
	productH := handler.NewProductHandler()
	cartH := handler.NewCartHandler(cartSvc)
	addressH := handler.NewAddressHandler(addressSvc)
	orderH := handler.NewOrderHandler(orderSvc)
	checkoutH := handler.NewCheckoutHandler(checkoutSvc, cfg.Razorpay.KeyID, cfg.Razorpay.Currency)
	uploadH := handler.NewUploadHandler(uploadSvc)
	mockupH := handler.NewMockupHandler()
	healthH := handler.NewHealthHandler(dbPool, redisClient, amqpConn)

	// Worker
	fulfillmentWorker := worker.NewFulfillmentWorker(amqpCh, orderRepo, redisClient, log)

	// Router
	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	router.GET("/healthz", healthH.Healthz)
	router.GET("/readyz", healthH.Readyz)
	router.Static("/uploads", cfg.Uploads.Dir)

	v1 := router.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		auth.POST("/register", authH.Register)
		auth.POST("/login", authH.Login)

		v1.GET("/products", productH.Query)
		v1.GET("/payment/config", checkoutH.PaymentConfig)

		authed := v1.Group("", middleware.AuthMiddleware(cfg.JWT.Secret))
		{
			cart := authed.Group("/cart")
			cart.GET("", cartH.GetCart)
			cart.DELETE("", cartH.ClearCart)
			cart.POST("/items", cartH.AddItem)
			cart.PUT("/items/:id", cartH.UpdateItem)
			cart.DELETE("/items/:id", cartH.DeleteItem)

			addresses := authed.Group("/addresses")
			addresses.GET("", addressH.List)
			addresses.POST("", addressH.Create)
			addresses.POST("/:id/default", addressH.SetDefault)
			addresses.DELETE("/:id", addressH.Delete)

			orders := authed.Group("/orders")
			orders.GET("", orderH.ListOrders)
			orders.GET("/:id", orderH.GetOrder)
			orders.POST("/create", checkoutH.CreateOrder)
			orders.POST("/cancel", orderH.CancelOrder)

			authed.POST("/payment/verify", checkoutH.VerifyPayment)
			authed.POST("/uploads/designs", uploadH.UploadDesign)
			authed.POST("/mockups", mockupH.Generate)
		}
	}

	if err := fulfillmentWorker.Start(ctx); err != nil {
		log.Error("start fulfillment worker", "error", err)
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.Info("starting HTTP server", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown", "error", err)
	}

	fulfillmentWorker.Stop()
	time.Sleep(500 * time.Millisecond)
	cancel()
	log.Info("server stopped")
}
