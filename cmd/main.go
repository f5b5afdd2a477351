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
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/gw-token-swap/internal/facades"
	"github.com/sbilibin2017/gw-token-swap/internal/handlers"
	"github.com/sbilibin2017/gw-token-swap/internal/jwt"
	"github.com/sbilibin2017/gw-token-swap/internal/logger"
	"github.com/sbilibin2017/gw-token-swap/internal/middlewares"
	"github.com/sbilibin2017/gw-token-swap/internal/repositories"
	"github.com/sbilibin2017/gw-token-swap/internal/services"
	"github.com/sbilibin2017/gw-token-swap/internal/sessions"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title gw-token-swap API
// @version 1.0.0
// @description Gateway for SOL/USDT token swaps: sessions, amount conversion, submission and history
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword, priceTTLSecond,
		kafkaBrokers, kafkaSwapTopic, kafkaNotifyTopic,
		engineBaseURL, engineTimeoutSecond,
		pollIntervalSecond, toggleSwapAtMs, toggleSettleMs,
		jwtSecret, jwtExpSecond,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword, priceTTLSecond,
		kafkaBrokers, kafkaSwapTopic, kafkaNotifyTopic,
		engineBaseURL, engineTimeoutSecond,
		pollIntervalSecond, toggleSwapAtMs, toggleSettleMs,
		jwtSecret, jwtExpSecond,
	); err != nil {
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

// parseConfig loads environment variables from a file and returns all
// application, database, Redis, Kafka, swap engine, polling, toggle,
// logging and JWT configuration.
func parseConfig(path string) (
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string, priceTTLSecond int,
	kafkaBrokers []string, kafkaSwapTopic, kafkaNotifyTopic string,
	engineBaseURL string, engineTimeoutSecond int,
	pollIntervalSecond, toggleSwapAtMs, toggleSettleMs int,
	jwtSecretKey string, jwtExpSecond int,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "8080")
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	pgHost = getEnv("POSTGRES_HOST", "localhost")
	pgUser = getEnv("POSTGRES_USER", "user")
	pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	pgDB = getEnv("POSTGRES_DB", "database")
	if pgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if pgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if pgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// Redis config
	redisHost = getEnv("REDIS_HOST", "localhost")
	if redisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	redisPassword = getEnv("REDIS_PASSWORD", "")
	if priceTTLSecond, err = strconv.Atoi(getEnv("PRICE_CACHE_TTL_SECOND", "60")); err != nil {
		return
	}

	// Kafka config
	kafkaBrokers = strings.Split(getEnv("KAFKA_BROKERS", "localhost:9092"), ",")
	kafkaSwapTopic = getEnv("KAFKA_SWAP_TOPIC", "swap-events")
	kafkaNotifyTopic = getEnv("KAFKA_NOTIFY_TOPIC", "swap-notifications")

	// Swap engine config
	engineBaseURL = getEnv("ENGINE_BASE_URL", "http://localhost:9090")
	if engineTimeoutSecond, err = strconv.Atoi(getEnv("ENGINE_TIMEOUT_SECOND", "10")); err != nil {
		return
	}

	// Balance polling and toggle timing
	if pollIntervalSecond, err = strconv.Atoi(getEnv("BALANCE_POLL_INTERVAL_SECOND", "5")); err != nil {
		return
	}
	if toggleSwapAtMs, err = strconv.Atoi(getEnv("TOGGLE_SWAP_AT_MS", "300")); err != nil {
		return
	}
	if toggleSettleMs, err = strconv.Atoi(getEnv("TOGGLE_SETTLE_MS", "600")); err != nil {
		return
	}

	// JWT config
	jwtSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if jwtExpSecond, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "3600")); err != nil {
		return
	}

	return
}

// run initializes the logger, database, Redis, Kafka, the swap engine
// client and the HTTP server. It sets up routes, applies middleware, and
// handles graceful shutdown.
func run(ctx context.Context,
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string, priceTTLSecond int,
	kafkaBrokers []string, kafkaSwapTopic, kafkaNotifyTopic string,
	engineBaseURL string, engineTimeoutSecond int,
	pollIntervalSecond, toggleSwapAtMs, toggleSettleMs int,
	jwtSecretKey string, jwtExpSecond int,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		pgUser, pgPassword, pgHost, pgPort, pgDB)
	logger.Log.Infof("Connecting to PostgreSQL at %s:%d", pgHost, pgPort)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		return fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(pgMaxOpenConns)
	db.SetMaxIdleConns(pgMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("PostgreSQL ping failed: %w", err)
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", redisHost, redisPort),
		Password: redisPassword,
		DB:       redisDB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("Redis connection error: %w", err)
	}
	defer rdb.Close()

	// Kafka writers for swap events and user notifications
	swapEventWriter := &kafka.Writer{
		Addr:     kafka.TCP(kafkaBrokers...),
		Topic:    kafkaSwapTopic,
		Balancer: &kafka.LeastBytes{},
	}
	defer swapEventWriter.Close()

	notifyWriter := &kafka.Writer{
		Addr:     kafka.TCP(kafkaBrokers...),
		Topic:    kafkaNotifyTopic,
		Balancer: &kafka.LeastBytes{},
	}
	defer notifyWriter.Close()

	// Swap engine client
	engine := facades.NewSwapEngineFacade(engineBaseURL, time.Duration(engineTimeoutSecond)*time.Second)

	// Initialize JWT service
	jwtService := jwt.New(
		jwt.WithSecretKey(jwtSecretKey),
		jwt.WithExpiration(time.Duration(jwtExpSecond)*time.Second),
	)

	// Initialize repositories
	priceCache := repositories.NewPriceCacheRepository(rdb, time.Duration(priceTTLSecond)*time.Second)
	orderWriter := repositories.NewSwapOrderWriterRepository(db, middlewares.GetTxFromContext)
	orderReader := repositories.NewSwapOrderReaderRepository(db)

	// Balance poller runs until shutdown
	pollerCtx, stopPoller := context.WithCancel(ctx)
	defer stopPoller()

	poller := services.NewBalancePoller(engine, priceCache, time.Duration(pollIntervalSecond)*time.Second)
	go poller.Run(pollerCtx)

	// Session store and services
	store := sessions.NewStore(
		time.Duration(toggleSwapAtMs)*time.Millisecond,
		time.Duration(toggleSettleMs)*time.Millisecond,
	)
	notifier := services.NewKafkaNotifier(notifyWriter)
	swapService := services.NewSwapService(engine, orderWriter, orderReader, notifier, swapEventWriter)

	// Initialize handlers
	balanceHandler := handlers.NewGetBalanceHandler(poller, jwtService)
	openSessionHandler := handlers.NewOpenSessionHandler(jwtService, store)
	closeSessionHandler := handlers.NewCloseSessionHandler(jwtService, store)
	setAmountHandler := handlers.NewSetAmountHandler(jwtService, store, poller)
	toggleHandler := handlers.NewToggleHandler(jwtService, store, poller)
	submitHandler := handlers.NewSubmitHandler(jwtService, store, swapService)
	historyHandler := handlers.NewSwapHistoryHandler(jwtService, swapService, store)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware)

	r.Route("/api/v1", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(middlewares.AuthMiddleware(jwtService))

			r.Get("/balance", balanceHandler)
			r.Get("/swap/history", historyHandler)

			r.Post("/swap/session", openSessionHandler)
			r.Delete("/swap/session", closeSessionHandler)
			r.Put("/swap/session/amount", setAmountHandler)
			r.Post("/swap/session/toggle", toggleHandler)
			r.With(middlewares.TxMiddleware(db)).Post("/swap/session/submit", submitHandler)
		})
	})

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", appHost, appPort)
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

	stopPoller()

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
