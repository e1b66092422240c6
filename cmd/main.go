package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/gw-currency-rates/internal/facades"
	"github.com/sbilibin2017/gw-currency-rates/internal/handlers"
	"github.com/sbilibin2017/gw-currency-rates/internal/logger"
	"github.com/sbilibin2017/gw-currency-rates/internal/middlewares"
	"github.com/sbilibin2017/gw-currency-rates/internal/repositories"
	"github.com/sbilibin2017/gw-currency-rates/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/sbilibin2017/gw-currency-rates/docs"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// config holds everything read from the environment at startup. It is
// constructed once and threaded into the components that need it; nothing
// reads the environment after this point.
type config struct {
	appHost  string
	appPort  string
	logLevel string
	apiToken string

	pgHost         string
	pgPort         int
	pgUser         string
	pgPassword     string
	pgDB           string
	pgMaxOpenConns int
	pgMaxIdleConns int

	redisHost     string
	redisPort     int
	redisDB       int
	redisPassword string
	cacheTTL      time.Duration

	kafkaAddr  string
	kafkaTopic string

	obsEndpoint  string
	obsRegion    string
	obsBucket    string
	obsAccessKey string
	obsSecretKey string
	obsLinkTTL   time.Duration

	shortenerURL string
}

// @title gw-currency-rates API
// @version 1.0.0
// @description Service for storing, querying and exporting currency rate records
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey ApiTokenAuth
// @in header
// @name API-Token
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns the
// application configuration. Redis, Kafka and object storage are optional:
// an empty host/bucket disables the corresponding capability.
func parseConfig(path string) (cfg config, err error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	cfg.appHost = getEnv("APP_HOST", "localhost")
	cfg.appPort = getEnv("APP_PORT", "8080")
	cfg.logLevel = getEnv("APP_LOG_LEVEL", "info")
	cfg.apiToken = getEnv("API_TOKEN", "default_token_for_development")

	// PostgreSQL config
	cfg.pgHost = getEnv("POSTGRES_HOST", "localhost")
	cfg.pgUser = getEnv("POSTGRES_USER", "user")
	cfg.pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.pgDB = getEnv("POSTGRES_DB", "database")
	if cfg.pgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if cfg.pgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if cfg.pgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// Redis config (latest-rates cache), disabled when REDIS_HOST is empty
	cfg.redisHost = getEnv("REDIS_HOST", "")
	if cfg.redisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if cfg.redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	cfg.redisPassword = getEnv("REDIS_PASSWORD", "")
	var cacheTTLSecond int
	if cacheTTLSecond, err = strconv.Atoi(getEnv("REDIS_CACHE_TTL_SECOND", "300")); err != nil {
		return
	}
	cfg.cacheTTL = time.Duration(cacheTTLSecond) * time.Second

	// Kafka config (mutation events), disabled when KAFKA_ADDR is empty
	cfg.kafkaAddr = getEnv("KAFKA_ADDR", "")
	cfg.kafkaTopic = getEnv("KAFKA_TOPIC", "currency-rate-events")

	// Object storage config, disabled when OBS_BUCKET is empty
	cfg.obsEndpoint = getEnv("OBS_ENDPOINT", "")
	cfg.obsRegion = getEnv("OBS_REGION", "ru-moscow-1")
	cfg.obsBucket = getEnv("OBS_BUCKET", "")
	cfg.obsAccessKey = getEnv("OBS_ACCESS_KEY", "")
	cfg.obsSecretKey = getEnv("OBS_SECRET_KEY", "")
	var linkTTLSecond int
	if linkTTLSecond, err = strconv.Atoi(getEnv("OBS_LINK_TTL_SECOND", "3600")); err != nil {
		return
	}
	cfg.obsLinkTTL = time.Duration(linkTTLSecond) * time.Second

	// URL shortener config
	cfg.shortenerURL = getEnv("SHORTENER_URL", "https://spoo.me/")

	return
}

// run initializes the logger, database, optional Redis/Kafka/object storage
// capabilities, and the HTTP server. It sets up routes, applies middleware,
// and handles graceful shutdown.
func run(ctx context.Context, cfg config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.logLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.pgUser, cfg.pgPassword, cfg.pgHost, cfg.pgPort, cfg.pgDB)
	logger.Log.Infof("Connecting to PostgreSQL at %s:%d", cfg.pgHost, cfg.pgPort)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		logger.Log.Fatal("PostgreSQL connection error:", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.pgMaxOpenConns)
	db.SetMaxIdleConns(cfg.pgMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		logger.Log.Fatal("PostgreSQL ping failed:", err)
	}
	if err := repositories.Bootstrap(ctx, db); err != nil {
		logger.Log.Fatal("failed to bootstrap rate schema:", err)
	}

	// Connect to Redis if configured
	var cache services.LatestRateCache
	if cfg.redisHost != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     fmt.Sprintf("%s:%d", cfg.redisHost, cfg.redisPort),
			Password: cfg.redisPassword,
			DB:       cfg.redisDB,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			logger.Log.Fatal("Redis connection error:", err)
		}
		defer rdb.Close()
		cache = repositories.NewLatestRateCacheRepository(rdb, cfg.cacheTTL)
	} else {
		logger.Log.Info("Redis not configured, latest-rates cache disabled")
	}

	// Create Kafka writer if configured
	var kafkaWriter services.KafkaWriter
	if cfg.kafkaAddr != "" {
		w := &kafka.Writer{
			Addr:     kafka.TCP(cfg.kafkaAddr),
			Topic:    cfg.kafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer w.Close()
		kafkaWriter = w
	} else {
		logger.Log.Info("Kafka not configured, rate events disabled")
	}

	// Create object storage facade if configured
	var storage services.ObjectPublisher
	if cfg.obsBucket != "" {
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
			awsconfig.WithRegion(cfg.obsRegion),
			awsconfig.WithCredentialsProvider(
				credentials.NewStaticCredentialsProvider(cfg.obsAccessKey, cfg.obsSecretKey, ""),
			),
		)
		if err != nil {
			logger.Log.Fatal("failed to load object storage config:", err)
		}
		s3Client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
			if cfg.obsEndpoint != "" {
				o.BaseEndpoint = aws.String(cfg.obsEndpoint)
				o.UsePathStyle = true
			}
		})
		storage = facades.NewObjectStorageFacade(s3Client, cfg.obsBucket, cfg.obsLinkTTL)
	} else {
		logger.Log.Warn("Object storage not configured, exports will produce no links")
	}

	shortener := facades.NewShortenerFacade(cfg.shortenerURL)

	// Initialize repositories
	rateReadRepo := repositories.NewRateReadRepository(db)
	rateWriteRepo := repositories.NewRateWriteRepository(db)

	// Initialize services
	exportService := services.NewExportService(rateReadRepo, storage, shortener)
	rateService := services.NewRateService(
		rateWriteRepo, rateWriteRepo, rateReadRepo, cache, exportService, kafkaWriter,
	)

	// Initialize handlers
	createRatesHandler := handlers.NewCreateRatesHandler(rateService)
	getRatesHandler := handlers.NewGetRatesHandler(exportService)
	deleteRatesHandler := handlers.NewDeleteRatesHandler(rateService)
	latestRatesHandler := handlers.NewGetLatestRatesHandler(rateService)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	// Public routes
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/swagger/index.html", http.StatusTemporaryRedirect)
	})
	r.Get("/currency-rates", getRatesHandler)
	r.Get("/currency-rates/latest", latestRatesHandler)

	// Protected routes with API token middleware
	authMiddleware := middlewares.TokenAuthMiddleware(cfg.apiToken)
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware)
		r.Post("/currency-rates", createRatesHandler)
		r.Delete("/currency-rates", deleteRatesHandler)
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.appHost, cfg.appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.appHost, cfg.appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", cfg.appHost, cfg.appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
