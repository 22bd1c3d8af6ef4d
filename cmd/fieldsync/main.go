package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/mobo-open-source/fieldsync/internal/client/api"
	"github.com/mobo-open-source/fieldsync/internal/client/cli"
	"github.com/mobo-open-source/fieldsync/internal/client/config"
	"github.com/mobo-open-source/fieldsync/internal/client/netwatch"
	"github.com/mobo-open-source/fieldsync/internal/client/storage/boltdb"
	"github.com/mobo-open-source/fieldsync/internal/client/sync"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Глобальные флаги
	showVersion := flag.Bool("version", false, "Show version information")
	configPath := flag.String("config", "", "Path to config file (default ~/.fieldsync/config.toml)")
	serverURL := flag.String("server", "", "Server URL override")
	dbPath := flag.String("db", "", "Path to local database override")

	flag.Parse()

	// Show version and exit if requested
	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	// Получаем команду
	args := flag.Args()
	if len(args) == 0 {
		cli.PrintUsage()
		os.Exit(1)
	}

	command := args[0]

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	// Флаги имеют приоритет над файлом конфигурации
	if *serverURL != "" {
		cfg.ServerURL = *serverURL
	}
	if *dbPath != "" {
		cfg.DBPath = *dbPath
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid config: %v\n", err)
		os.Exit(1)
	}

	logger := newLogger(cfg.LogLevel)

	// Создаем контекст
	ctx := context.Background()

	// Открываем BoltDB storage
	boltStorage, err := boltdb.New(ctx, cfg.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := boltStorage.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	// Создаем API клиент и оракул доступности
	apiClient := api.NewClient(cfg.ServerURL)
	oracle := netwatch.New(apiClient, cfg.ProbeInterval, cfg.ProbeTimeout, logger)

	// Одиночный замер вместо фонового цикла: CLI-команда живёт недолго,
	// и ей достаточно актуального belief на момент запуска
	oracle.SampleNow(ctx)

	svc := sync.NewService(apiClient, boltStorage, boltStorage, oracle, cfg.DrainInterval, logger)

	// Выполняем команду
	switch command {
	case "status":
		if err := cli.RunStatus(ctx, svc); err != nil {
			fatal(err)
		}
	case "pending":
		if err := cli.RunPending(ctx, args[1:], svc); err != nil {
			fatal(err)
		}
	case "discard":
		if err := cli.RunDiscard(ctx, args[1:], svc); err != nil {
			fatal(err)
		}
	case "sync":
		if err := cli.RunSync(ctx, svc); err != nil {
			fatal(err)
		}
	case "show":
		if err := cli.RunShow(ctx, args[1:], svc); err != nil {
			fatal(err)
		}
	case "validate":
		if err := cli.RunValidate(ctx, args[1:], svc); err != nil {
			fatal(err)
		}
	case "cancel":
		if err := cli.RunCancel(ctx, args[1:], svc); err != nil {
			fatal(err)
		}
	case "edit":
		if err := cli.RunEdit(ctx, args[1:], svc); err != nil {
			fatal(err)
		}
	case "line":
		if err := cli.RunLine(ctx, args[1:], svc); err != nil {
			fatal(err)
		}
	case "resolve":
		if err := cli.RunResolve(ctx, args[1:], svc); err != nil {
			fatal(err)
		}
	case "refresh":
		if err := cli.RunRefresh(ctx, args[1:], svc); err != nil {
			fatal(err)
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		cli.PrintUsage()
		os.Exit(1)
	}
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: lvl,
	}))
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

func printVersion() {
	fmt.Printf("FieldSync Client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
