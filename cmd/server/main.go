/**
 * @description
 * Entry point for the website backend. It wires configuration, the
 * PostgreSQL storage facade, the optional Redis rate limiter, the
 * optional RabbitMQ lead-event producer, the admin auth service and the
 * HTTP router, then serves until interrupted.
 *
 * Every external system except the HTTP listener is optional at startup:
 * without DATABASE_URL the data endpoints answer 503, without REDIS_URL
 * form submissions are unthrottled, without RABBITMQ_URL lead events are
 * skipped. The marketing site must stay up even when a backing service
 * is down.
 */

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/phictor/leadcitymfb-sub000/internal/api"
	"github.com/phictor/leadcitymfb-sub000/internal/app"
	"github.com/phictor/leadcitymfb-sub000/internal/config"
	"github.com/phictor/leadcitymfb-sub000/internal/store"
	"github.com/phictor/leadcitymfb-sub000/pkg/rabbitmq"
)

func main() {
	// Load .env for local development; in production the platform
	// injects real environment variables.
	if err := godotenv.Load(); err != nil {
		log.Println("level=info component=main msg=\"no .env file found, using environment variables\"")
	}

	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("level=fatal component=main msg=\"could not load config\" err=%v", err)
	}

	ctx := context.Background()

	// Storage. A missing DATABASE_URL degrades the service instead of
	// killing it; data endpoints answer 503 until one is configured.
	var st store.Store
	if cfg.DatabaseURL == "" {
		log.Println("level=warn component=main msg=\"DATABASE_URL is not set; data endpoints will return 503\"")
	} else {
		pool, err := store.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("level=fatal component=main msg=\"unable to connect to database\" err=%v", err)
		}
		defer pool.Close()

		pg := store.NewPostgres(pool)
		if err := pg.EnsureSchema(ctx); err != nil {
			log.Fatalf("level=fatal component=main msg=\"unable to ensure schema\" err=%v", err)
		}
		if err := pg.SeedDefaults(ctx); err != nil {
			log.Fatalf("level=fatal component=main msg=\"unable to seed defaults\" err=%v", err)
		}
		st = pg
		log.Println("level=info component=main msg=\"database connection pool established\"")
	}

	// Redis rate limiter, optional.
	var limiter *app.FormRateLimiter
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Printf("level=warn component=main msg=\"invalid REDIS_URL; form rate limiting disabled\" err=%v", err)
		} else {
			client := redis.NewClient(opts)
			defer client.Close()
			limiter = app.NewFormRateLimiter(client, cfg.FormRateLimitPrefix)
			log.Println("level=info component=main msg=\"redis rate limiter enabled\"")
		}
	}

	// RabbitMQ lead-event producer, optional.
	var producer app.Publisher
	if cfg.RabbitMQURL != "" {
		p, err := rabbitmq.NewEventProducer(cfg.RabbitMQURL)
		if err != nil {
			log.Printf("level=warn component=main msg=\"could not connect to RabbitMQ; lead events disabled\" err=%v", err)
		} else {
			defer p.Close()
			producer = p
			log.Println("level=info component=main msg=\"rabbitmq event producer connected\"")
		}
	}

	if cfg.AdminJWTSecret == "" {
		log.Println("level=warn component=main msg=\"ADMIN_JWT_SECRET is not set; admin sessions will not survive restarts predictably\"")
	}

	authService := app.NewAuthService(st, cfg.AdminJWTSecret, time.Duration(cfg.AdminSessionTTLMinutes)*time.Minute)
	leadService := app.NewLeadService(st, producer, cfg.LeadEventExchange)
	handlers := api.NewHandlers(st, leadService, authService, limiter, cfg.FormRateLimitPerMinute)
	router := api.NewRouter(handlers, authService, cfg.Origins())

	server := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Printf("level=info component=main msg=\"starting server\" port=%s", cfg.ServerPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("level=fatal component=main msg=\"could not start server\" err=%v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("level=info component=main msg=\"shutting down server\"")

	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("level=fatal component=main msg=\"server forced to shutdown\" err=%v", err)
	}
	log.Println("level=info component=main msg=\"server exited\"")
}
