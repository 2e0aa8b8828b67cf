package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dangsuk1211/Website-banthucung/internal/auth"
	"github.com/dangsuk1211/Website-banthucung/internal/cache"
	"github.com/dangsuk1211/Website-banthucung/internal/catalog"
	"github.com/dangsuk1211/Website-banthucung/internal/checkout"
	"github.com/dangsuk1211/Website-banthucung/internal/events"
	"github.com/dangsuk1211/Website-banthucung/internal/repository"
	"github.com/dangsuk1211/Website-banthucung/internal/session"
	"github.com/dangsuk1211/Website-banthucung/internal/view"
	"github.com/dangsuk1211/Website-banthucung/internal/web"
)

func main() {
	// Configuration
	httpPort := getEnv("HTTP_PORT", "8080")
	mongoURI := getEnv("MONGO_URI", "mongodb://localhost:27017")
	mongoDBName := getEnv("MONGO_DB_NAME", "storefront")
	kafkaBrokers := strings.Split(getEnv("KAFKA_BROKERS", "localhost:9092"), ",")
	templateGlob := getEnv("TEMPLATE_GLOB", "web/templates/*.html")

	// Set up MongoDB connection
	ctx := context.Background()
	mongoDB, err := repository.ConnectMongoDB(ctx, mongoURI, mongoDBName)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	if err := repository.EnsureIndexes(ctx, mongoDB); err != nil {
		log.Fatalf("Failed to create indexes: %v", err)
	}
	log.Printf("Connected to MongoDB at %s", mongoURI)

	redisClient := redis.NewClient(&redis.Options{
		Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       0,
	})
	defer redisClient.Close()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatal("Redis connection failed:", err)
	}
	log.Printf("Redis ping succeeded")

	// Repositories and services
	products := repository.NewMongoProductRepository(mongoDB)
	orders := repository.NewMongoOrderRepository(mongoDB)
	users := repository.NewMongoUserRepository(mongoDB)

	sessions := session.NewRedisStore(redisClient, 0)
	catalogSvc := catalog.NewService(products, cache.NewRedisCache(redisClient))
	if err := catalogSvc.RefreshCache(ctx); err != nil {
		log.Printf("failed to flush catalog cache: %v", err)
	}
	authSvc := auth.NewService(users, auth.NewBcryptHasher())

	publisher := events.NewPublisher(kafkaBrokers...)
	defer publisher.Close()
	checkoutSvc := checkout.NewService(orders, sessions, session.NewLocker(), publisher)

	consumer := events.NewFulfillmentConsumer(orders, kafkaBrokers...)
	consumerCtx, stopConsumer := context.WithCancel(ctx)
	go consumer.Run(consumerCtx)

	renderer, err := view.NewHTMLRenderer(templateGlob)
	if err != nil {
		log.Fatalf("Failed to load templates: %v", err)
	}

	router := web.NewRouter(web.Deps{
		Catalog:  catalogSvc,
		Auth:     authSvc,
		Placer:   checkoutSvc,
		Orders:   orders,
		Sessions: sessions,
		Render:   renderer,
	})

	server := &http.Server{
		Addr:         ":" + httpPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Printf("Storefront listening on port %s", httpPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to serve: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down storefront...")
	stopConsumer()
	consumer.Close()

	shutdownCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("HTTP shutdown failed: %v", err)
	}
	mongoDB.Client().Disconnect(ctx)
	log.Println("Storefront stopped")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
