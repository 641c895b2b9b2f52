package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bistro_backend/internal/config"
	"bistro_backend/internal/handler"
	"bistro_backend/internal/middleware"
	"bistro_backend/internal/repository"
	"bistro_backend/internal/service"
	"bistro_backend/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Tokens expire after two hours; expiry is the only invalidation path.
const tokenExpirationHours = 2

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found or error loading, relying on environment variables")
	}

	// --- Configuration ---
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// --- Database Connection ---
	client, err := config.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Disconnect(ctx); err != nil {
			log.Printf("Error disconnecting from database: %v", err)
		}
	}()

	colls := config.OpenCollections(client, cfg.DBName)

	// --- Initialize Utilities ---
	jwtUtil := utils.NewJWTUtil(cfg.TokenSecret, tokenExpirationHours)

	// --- Initialize Repositories ---
	userRepo := repository.NewUserRepository(colls.Users)
	menuRepo := repository.NewMenuRepository(colls.Menu)
	reviewRepo := repository.NewReviewRepository(colls.Reviews)
	cartRepo := repository.NewCartRepository(colls.Carts)
	paymentRepo := repository.NewPaymentRepository(colls.Payments)

	// --- Initialize Services ---
	userService := service.NewUserService(userRepo)
	menuService := service.NewMenuService(menuRepo)
	reviewService := service.NewReviewService(reviewRepo)
	cartService := service.NewCartService(cartRepo)
	paymentService := service.NewPaymentService(paymentRepo, service.NewStripeIntentClient(cfg.StripeSecret))

	// --- Initialize Handlers ---
	tokenHandler := handler.NewTokenHandler(jwtUtil)
	userHandler := handler.NewUserHandler(userService)
	menuHandler := handler.NewMenuHandler(menuService)
	reviewHandler := handler.NewReviewHandler(reviewService)
	cartHandler := handler.NewCartHandler(cartService)
	paymentHandler := handler.NewPaymentHandler(paymentService)

	// --- Setup Gin Router ---
	router := gin.Default()

	// CORS restricted to the configured frontend origin
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", cfg.CORSOrigin)
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, PATCH, DELETE")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	// --- Initialize Middlewares ---
	jwtAuthMW := middleware.JWTAuthMiddleware(jwtUtil)
	adminMW := middleware.AdminMiddleware(userService)

	// --- Register Routes ---
	api := router.Group("")
	tokenHandler.RegisterTokenRoutes(api)
	userHandler.RegisterUserRoutes(api, jwtAuthMW, adminMW)
	menuHandler.RegisterMenuRoutes(api, jwtAuthMW, adminMW)
	reviewHandler.RegisterReviewRoutes(api)
	cartHandler.RegisterCartRoutes(api)
	paymentHandler.RegisterPaymentRoutes(api)

	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "bistro server is running")
	})

	router.GET("/health", func(c *gin.Context) {
		if err := client.Ping(c.Request.Context(), readpref.Primary()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "db": "unhealthy"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "db": "healthy"})
	})

	// --- Start Server ---
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on port %s", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
