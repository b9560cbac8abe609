package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/iudanet/kodrf/internal/client/api"
	"github.com/iudanet/kodrf/internal/client/appdata"
	"github.com/iudanet/kodrf/internal/client/auth"
	"github.com/iudanet/kodrf/internal/client/cli"
	"github.com/iudanet/kodrf/internal/client/iocli"
	"github.com/iudanet/kodrf/internal/client/order"
	"github.com/iudanet/kodrf/internal/client/registry"
	"github.com/iudanet/kodrf/internal/client/schedule"
	"github.com/iudanet/kodrf/internal/client/session"
	"github.com/iudanet/kodrf/internal/client/storage/boltdb"
	"github.com/iudanet/kodrf/internal/config"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Глобальные флаги
	showVersion := flag.Bool("version", false, "Show version information")
	serverURL := flag.String("server", "", "Service URL (overrides KODRF_BASE_URL)")
	dbPath := flag.String("db", "", "Path to local database (overrides KODRF_DB_PATH)")
	configPath := flag.String("config", "", "Path to YAML config file")
	password := flag.String("password", "", "Password (not recommended, use KODRF_PASSWORD or -password-file)")
	passwordFile := flag.String("password-file", "", "Path to file containing password")

	flag.Parse()

	version := cli.Version{Version: Version, BuildDate: BuildDate, GitCommit: GitCommit}

	// Show version and exit if requested
	if *showVersion {
		printVersion(version)
		return 0
	}

	// Получаем команду
	args := flag.Args()
	if len(args) == 0 {
		cli.Usage(os.Stdout)
		return 1
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		return 1
	}
	if *serverURL != "" {
		cfg.BaseURL = *serverURL
	}
	if *dbPath != "" {
		cfg.DBPath = *dbPath
	}

	level, _ := config.ParseLevel(cfg.LogLevel)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Открываем BoltDB storage
	boltStorage, err := boltdb.New(ctx, cfg.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		return 1
	}
	defer func() {
		if err := boltStorage.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	// Создаем API клиент
	apiClient := api.NewClient(cfg.BaseURL, cfg.HTTPTimeout, logger)

	sessions := session.NewStore(boltStorage, logger)
	cache := appdata.NewCache(apiClient, sessions, boltStorage, logger)
	cache.Init(ctx)
	// фоновая сверка должна завершиться до закрытия базы
	defer cache.Wait()

	// nil интерфейс отключает реестр, типизированный nil сюда попадать не должен
	var business registry.BusinessRegistry
	if cfg.Dadata.Key != "" {
		business = registry.NewDadataClient(cfg.Dadata.URL, cfg.Dadata.Key, cfg.HTTPTimeout, logger)
	}
	var entrepreneur registry.EntrepreneurRegistry
	if cfg.FNS.Key != "" {
		entrepreneur = registry.NewFNSClient(cfg.FNS.URL, cfg.FNS.Key, cfg.HTTPTimeout, logger)
	}

	app := cli.New(
		iocli.NewStdio(),
		cache,
		auth.NewService(apiClient, cache, logger),
		schedule.NewProvider(apiClient, logger),
		registry.NewRegistry(apiClient, cache, business, entrepreneur, logger),
		order.NewWorkflow(apiClient, cache, logger),
		cli.Passwords{FromFile: *passwordFile, FromArgs: *password},
		version,
	)

	if err := app.Run(ctx, args[0], args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func printVersion(v cli.Version) {
	fmt.Printf("kodrf client\n")
	fmt.Printf("Version:    %s\n", v.Version)
	fmt.Printf("Build Date: %s\n", v.BuildDate)
	fmt.Printf("Git Commit: %s\n", v.GitCommit)
}
