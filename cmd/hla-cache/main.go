package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/dustin/go-humanize"
	"go.uber.org/zap"

	"github.com/hai-def/hla-cache/internal/adapter/filesystem"
	"github.com/hai-def/hla-cache/internal/adapter/httpfetch"
	"github.com/hai-def/hla-cache/internal/adapter/jsonrecord"
	"github.com/hai-def/hla-cache/internal/adapter/sqlite"
	"github.com/hai-def/hla-cache/internal/config"
	"github.com/hai-def/hla-cache/internal/domain"
	"github.com/hai-def/hla-cache/internal/logger"
	"github.com/hai-def/hla-cache/internal/platform"
	"github.com/hai-def/hla-cache/internal/port"
	"github.com/hai-def/hla-cache/internal/service/cacher"
)

const version = "0.1.0"

const banner = "======================================================================"

func main() {
	configPath := flag.String("config", "", "Path to optional configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.Format); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	rootDir := cfg.Cache.RootDir
	if rootDir == "" {
		rootDir, err = platform.DefaultCacheDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to resolve cache directory: %v\n", err)
			os.Exit(1)
		}
	}

	switch flag.Arg(0) {
	case "", "setup":
		runSetup(cfg, rootDir)
	case "path":
		runPath(rootDir)
	case "history":
		runHistory(cfg, rootDir)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command %q. Commands: setup (default), path, history\n", flag.Arg(0))
		os.Exit(2)
	}
}

// runSetup performs fetch-and-cache and prints the setup banner.
// Exit code 0 on success, 1 on download failure.
func runSetup(cfg *config.Config, rootDir string) {
	zapLogger := logger.GetZapLogger()
	zapLogger.Info("starting hla-cache",
		zap.String("version", version),
		zap.String("cache_dir", rootDir),
	)

	fmt.Println(banner)
	fmt.Println("HLA DATABASE SETUP")
	fmt.Println(banner)
	fmt.Printf("\nCache directory: %s\n\n", rootDir)

	fs := filesystem.NewManagerWithBufferSize(rootDir, cfg.Download.GetChunkSize())
	if err := fs.EnsureRoot(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create cache directory: %v\n", err)
		os.Exit(1)
	}

	var history port.HistoryRepository
	if cfg.History.Enabled {
		store, err := sqlite.Open(historyPath(cfg, rootDir))
		if err != nil {
			// The ledger is advisory; setup proceeds without it
			zapLogger.Warn("failed to open history ledger", zap.Error(err))
		} else {
			history = store
			defer store.Close()
		}
	}

	svc := cacher.New(
		&cacher.Config{SourceURL: cfg.Download.URL},
		httpfetch.NewClient(cfg.Download.GetResponseTimeout()),
		fs,
		jsonrecord.NewStore(rootDir),
		history,
		zapLogger,
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fastaPath, err := svc.Ensure(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Download failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Println()
	fmt.Println(banner)
	fmt.Println("SETUP COMPLETE")
	fmt.Println(banner)
	fmt.Printf("\nDatabase: %s\n", fastaPath)
	fmt.Printf("\nRetrieve the path later with:\n  hla-cache path\n")
	fmt.Println(banner)
}

// runPath prints the cached database path from the config record.
// Exit code 1 when no usable record exists.
func runPath(rootDir string) {
	svc := cacher.New(
		&cacher.Config{},
		nil, // load path never fetches
		filesystem.NewManager(rootDir),
		jsonrecord.NewStore(rootDir),
		nil,
		logger.GetZapLogger(),
	)

	path, err := svc.CachedPath()
	switch {
	case errors.Is(err, domain.ErrNotConfigured):
		fmt.Fprintln(os.Stderr, "HLA database not set up. Run: hla-cache")
		os.Exit(1)
	case err != nil:
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(path)
}

// runHistory prints recent fetch attempts from the ledger
func runHistory(cfg *config.Config, rootDir string) {
	if !cfg.History.Enabled {
		fmt.Fprintln(os.Stderr, "History ledger is disabled in configuration")
		os.Exit(1)
	}

	store, err := sqlite.Open(historyPath(cfg, rootDir))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open history ledger: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	attempts, err := store.Recent(20)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to read history: %v\n", err)
		os.Exit(1)
	}
	if len(attempts) == 0 {
		fmt.Println("No fetch attempts recorded yet")
		return
	}

	for _, a := range attempts {
		line := fmt.Sprintf("%s  %-10s  %s",
			a.StartedAt.Format("2006-01-02 15:04:05"), a.Status, a.URL)
		if a.SizeBytes > 0 {
			line += "  " + humanize.IBytes(uint64(a.SizeBytes))
		}
		if a.Error != "" {
			line += "  " + strings.TrimSpace(a.Error)
		}
		fmt.Println(line)
	}
}

// historyPath returns the ledger location, defaulting into the cache root
func historyPath(cfg *config.Config, rootDir string) string {
	if cfg.History.Path != "" {
		return cfg.History.Path
	}
	return filepath.Join(rootDir, "history.db")
}
