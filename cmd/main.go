package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/fakhrul62/product-recommendation-server/internal/config"
	"github.com/fakhrul62/product-recommendation-server/internal/database"
	"github.com/fakhrul62/product-recommendation-server/internal/health"
	"github.com/fakhrul62/product-recommendation-server/internal/jwt"
	"github.com/fakhrul62/product-recommendation-server/internal/logger"
	"github.com/fakhrul62/product-recommendation-server/internal/middlewares"
	"github.com/fakhrul62/product-recommendation-server/internal/repositories"
	"github.com/fakhrul62/product-recommendation-server/internal/routes"
	"github.com/fakhrul62/product-recommendation-server/internal/services"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

const healthProbeInterval = 10 * time.Second

//go:generate swag init --dir ../ --generalInfo cmd/main.go --output ../docs --parseInternal --exclude _examples

// @title Product Recommendation API
// @version 1.0.0
// @description Queries, recommendations and user accounts for the product recommendation app
// @host localhost:5000
// @BasePath /
// @schemes http https
// @securityDefinitions.apikey CookieAuth
// @in cookie
// @name token
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service Version: %s, Commit: %s, Build: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// run initializes the logger, MongoDB, the optional Redis denylist, Kafka
// publisher and gRPC health server, then serves HTTP until ctx is cancelled
// or a termination signal arrives.
func run(ctx context.Context, cfg *config.Config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.LogLevel, cfg.Production()); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	log := logger.Log
	log.Infof("Logger initialized with level %s", cfg.LogLevel)

	// Connect to MongoDB
	store, err := database.Connect(ctx, cfg.MongoURI, cfg.MongoDB, database.WithTransactions(cfg.MongoTransactions))
	if err != nil {
		return err
	}
	defer store.Close(context.Background())

	// Connect to Redis
	var (
		revocationStore   services.RevocationStore
		revocationChecker middlewares.RevocationChecker
	)
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("redis connection error: %w", err)
		}
		defer rdb.Close()

		revocations := repositories.NewSessionRevocationRepository(rdb)
		revocationStore, revocationChecker = revocations, revocations
		log.Infow("session revocation enabled", "addr", cfg.RedisAddr)
	} else {
		log.Warn("REDIS_ADDR not set, logout only clears the cookie")
	}

	// Kafka publisher
	var kafkaWriter services.KafkaWriter
	if len(cfg.KafkaBrokers) > 0 {
		kw := newKafkaWriter(cfg.KafkaBrokers, cfg.KafkaTopic)
		defer kw.Close()
		kafkaWriter = kw
		log.Infow("publishing recommendation events", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaTopic)
	}

	// Initialize JWT service
	tokens := jwt.New(jwt.WithSecretKey(cfg.JWTSecret), jwt.WithExpiration(cfg.JWTExp))

	// Initialize services
	querySvc := services.NewQueryService(
		repositories.NewQueryReadRepository(store.Queries()),
		repositories.NewQueryWriteRepository(store.Queries()),
	)
	recommendationSvc := services.NewRecommendationService(
		repositories.NewRecommendationReadRepository(store.Recommendations()),
		repositories.NewRecommendationWriteRepository(store.Recommendations()),
		querySvc,
		store,
		kafkaWriter,
	)
	userSvc := services.NewUserService(
		repositories.NewUserReadRepository(store.Users()),
		repositories.NewUserWriteRepository(store.Users()),
	)
	sessionSvc := services.NewSessionService(tokens, revocationStore)

	// Setup router
	router := routes.NewRouter(routes.Deps{
		Queries:         querySvc,
		Recommendations: recommendationSvc,
		Users:           userSvc,
		Sessions:        sessionSvc,
		Tokens:          tokens,
		Revocations:     revocationChecker,
		Production:      cfg.Production(),
		CORSOrigins:     cfg.CORSOrigins,
		SwaggerURL:      "/swagger/doc.json",
		Logger:          log,
	})

	srv := &http.Server{
		Addr:              net.JoinHostPort(cfg.AppHost, cfg.AppPort),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	errChan := make(chan error, 2)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	if cfg.GRPCHealthPort != "" {
		lis, err := net.Listen("tcp", net.JoinHostPort(cfg.AppHost, cfg.GRPCHealthPort))
		if err != nil {
			return fmt.Errorf("gRPC health listener: %w", err)
		}
		hs := health.New(store, healthProbeInterval)
		defer hs.Stop()

		go hs.Watch(ctxShutdown)
		go func() {
			if err := hs.Serve(lis); err != nil {
				errChan <- fmt.Errorf("gRPC health server failed: %w", err)
			}
		}()
	}

	go func() {
		log.Infof("HTTP server listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("HTTP server shutdown error", "error", err)
	}

	log.Info("HTTP server stopped gracefully")
	return nil
}

// newKafkaWriter returns a writer that keys messages to partitions by hash,
// keeping every event of one query in order.
func newKafkaWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
		BatchTimeout:           50 * time.Millisecond,
	}
}
