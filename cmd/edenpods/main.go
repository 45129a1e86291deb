package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/edenpods/edenpods/internal/api"
	"github.com/edenpods/edenpods/internal/catalog"
	"github.com/edenpods/edenpods/internal/chain"
	"github.com/edenpods/edenpods/internal/cli"
	"github.com/edenpods/edenpods/internal/db"
	"github.com/edenpods/edenpods/internal/services"
)

func main() {
	secretKey := getEnv("SECRET_KEY", "change_me_in_production")
	dbPath := getEnv("DB_PATH", filepath.Join("data", "edenpods.db"))

	if len(os.Args) > 1 && os.Args[1] == "reset-password" {
		if len(os.Args) < 3 {
			log.Fatal("usage: edenpods reset-password <email> [--prompt]")
		}
		prompt := len(os.Args) > 3 && os.Args[3] == "--prompt"
		if err := cli.RunResetPasswordCommand(dbPath, os.Args[2], prompt); err != nil {
			log.Fatalf("reset password failed: %v", err)
		}
		return
	}

	port := getEnv("PORT", "8080")
	indexerURL := getEnv("INDEXER_URL", chain.DefaultIndexerURL)
	explorerURL := getEnv("EXPLORER_URL", chain.DefaultExplorerURL)
	signerURL := getEnv("SIGNER_URL", "")
	redisAddr := getEnv("REDIS_ADDR", "")
	cookieSecure := getEnv("COOKIE_SECURE", "false") == "true"
	pollInterval := getEnvSeconds("POLL_INTERVAL_SECONDS", 60)

	database, err := db.OpenSQLite(dbPath)
	if err != nil {
		log.Fatalf("database init failed: %v", err)
	}
	repos := db.NewRepositories(database)

	var noteCache chain.NoteCache
	if redisAddr != "" {
		noteCache = chain.NewRedisNoteCache(redisAddr, 0)
		log.Printf("note cache: redis at %s", redisAddr)
	}

	ledger := chain.NewClient(chain.Config{
		IndexerURL:  indexerURL,
		ExplorerURL: explorerURL,
		Cache:       noteCache,
	})

	var submitter chain.Submitter
	if signerURL != "" {
		submitter = chain.NewRelaySubmitter(signerURL, 30*time.Second)
	}

	cat := catalog.Default()
	refresh := services.NewRefreshService(ledger, repos.Notifications, cat)
	handler := api.NewHandler(repos, secretKey, cat, refresh, submitter, cookieSecure)

	app := fiber.New(fiber.Config{
		AppName:               "Eden Pods",
		DisableStartupMessage: true,
	})
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())
	api.RegisterRoutes(app, handler)

	lifecycleCtx, cancelLifecycle := context.WithCancel(context.Background())
	defer cancelLifecycle()
	refresh.Start(lifecycleCtx, repos.Users, pollInterval)

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		cancelLifecycle()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Printf("server shutdown failed: %v", err)
		}
	}()

	log.Printf("Eden Pods listening on http://0.0.0.0:%s (db: %s, indexer: %s)", port, dbPath, indexerURL)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}

func getEnv(key string, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}

func getEnvSeconds(key string, fallback int) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return time.Duration(fallback) * time.Second
	}
	seconds, err := strconv.Atoi(raw)
	if err != nil || seconds <= 0 {
		log.Printf("invalid %s %q, using %ds", key, raw, fallback)
		return time.Duration(fallback) * time.Second
	}
	return time.Duration(seconds) * time.Second
}
