package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/redis/go-redis/v9"

	"github.com/railbook/railbook/internal/adapter/cache"
	"github.com/railbook/railbook/internal/adapter/handler"
	"github.com/railbook/railbook/internal/adapter/repository/memory"
	"github.com/railbook/railbook/internal/adapter/web"
	"github.com/railbook/railbook/internal/core/ports"
	"github.com/railbook/railbook/internal/core/services"
	"github.com/railbook/railbook/internal/platform/config"
)

func main() {
	cfg := config.Load()

	var seatCache ports.AvailabilityCache = cache.NewNoop()

	if cfg.RedisHost != "" {
		log.Printf("Connecting to Redis at %s:%s...", cfg.RedisHost, cfg.RedisPort)

		redisClient := redis.NewClient(&redis.Options{
			Addr: fmt.Sprintf("%s:%s", cfg.RedisHost, cfg.RedisPort),
			DB:   0,
		})

		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		log.Println("Redis connected successfully!")

		seatCache = cache.NewSeatCache(redisClient)
	} else {
		log.Println("REDIS_HOST not set, running without seat cache.")
	}

	catalog := memory.NewSeededTrainCatalog()
	store := memory.NewBookingStore()
	sequence := memory.NewPNRSequence()

	bookingService := services.NewBookingService(catalog, store, sequence, seatCache)
	queryService := services.NewQueryService(catalog, store, seatCache)

	router := mux.NewRouter()
	router.Use(handler.RequestID)

	handler.Register(router,
		handler.NewTrainHandler(queryService),
		handler.NewBookingHandler(bookingService, queryService))

	web.New(bookingService, queryService).Register(router)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Printf("Server starting on %s", cfg.HTTPAddr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server startup failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting")
}
