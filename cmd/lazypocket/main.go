package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Joseda-hg/lazypocket/internal/config"
	"github.com/Joseda-hg/lazypocket/internal/db"
	"github.com/Joseda-hg/lazypocket/internal/ledger"
	"github.com/Joseda-hg/lazypocket/internal/logging"
	"github.com/Joseda-hg/lazypocket/internal/todo"
	"github.com/Joseda-hg/lazypocket/internal/tui"
	"github.com/Joseda-hg/lazypocket/internal/web"
	"github.com/mattn/go-isatty"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 5 * time.Second

func main() {
	configPathFlag := flag.String("config", "", "config file path")
	dbPathFlag := flag.String("db", "", "storage file path")
	backendFlag := flag.String("backend", "", "task storage backend (sqlite or bolt)")
	ledgerFlag := flag.String("ledger", "", "transaction source (static or sqlite)")
	webFlag := flag.Bool("web", false, "enable read-only web view")
	webOnlyFlag := flag.Bool("web-only", false, "run web view only")
	portFlag := flag.Int("port", 0, "web server port")
	logLevelFlag := flag.String("log-level", "", "log level (debug, info, warn, error)")
	flag.Parse()

	cfgPath, err := resolveConfigPath(*configPathFlag)
	if err != nil {
		log.Fatal(err)
	}

	fileCfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatal(err)
	}
	fileCfg.ResolvePaths(cfgPath)

	applyFlags := func(cfg *config.Config) {
		if *backendFlag != "" {
			cfg.Backend = *backendFlag
		}
		if *dbPathFlag != "" {
			if cfg.Backend == config.BackendBolt {
				cfg.BoltPath = *dbPathFlag
			} else {
				cfg.DBPath = *dbPathFlag
			}
		}
		if *ledgerFlag != "" {
			cfg.LedgerSource = *ledgerFlag
		}
		if *webFlag || *webOnlyFlag {
			cfg.WebEnabled = true
		}
		if *portFlag != 0 {
			cfg.WebPort = *portFlag
		}
		if *logLevelFlag != "" {
			cfg.LogLevel = *logLevelFlag
		}
	}

	// Flags are remembered in the config file; environment overrides only
	// apply to this run.
	applyFlags(&fileCfg)
	cfg := fileCfg.WithEnv()
	applyFlags(&cfg)

	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}
	if err := config.Save(cfgPath, fileCfg); err != nil {
		log.Fatal(err)
	}

	if !*webOnlyFlag && !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		log.Fatal("stdout is not a terminal; use -web-only to serve the web view without the TUI")
	}

	logger, closeLog, err := logging.New(logging.Config{
		Level:    cfg.LogLevel,
		Encoding: cfg.LogEncoding,
		Path:     cfg.LogPath,
	})
	if err != nil {
		log.Fatal(err)
	}

	if err := run(cfg, *webOnlyFlag, logger); err != nil {
		logger.Error("lazypocket stopped", zap.Error(err))
		_ = logger.Sync()
		_ = closeLog()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	_ = logger.Sync()
	_ = closeLog()
}

func run(cfg config.Config, webOnly bool, logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var sqlStore *db.Store
	if cfg.Backend == config.BackendSQLite || cfg.LedgerSource == config.LedgerSQLite {
		store, err := openStore(cfg.DBPath)
		if err != nil {
			return err
		}
		defer store.Close()
		sqlStore = store
	}

	var kv db.KV = sqlStore
	if cfg.Backend == config.BackendBolt {
		bolt, err := db.OpenBolt(cfg.BoltPath, "")
		if err != nil {
			return err
		}
		defer bolt.Close()
		kv = bolt
	}

	manager := todo.NewManager(todo.NewKVStorage(kv), todo.WithLogger(logger.Named("todo")))
	manager.Restore(ctx)

	var source ledger.Source = ledger.DemoTransactions()
	if cfg.LedgerSource == config.LedgerSQLite {
		source = sqlStore
	}
	viewer, err := ledger.NewViewer(source, cfg.Currency, logger.Named("ledger"))
	if err != nil {
		return err
	}
	if err := viewer.Load(ctx); err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)

	if cfg.WebEnabled {
		server := &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.WebPort),
			Handler:           web.NewServer(manager, viewer, logger.Named("web")).Handler(),
			ReadHeaderTimeout: 5 * time.Second,
		}
		g.Go(func() error {
			logger.Info("web server listening", zap.String("addr", server.Addr))
			if webOnly {
				fmt.Printf("Web server running at http://localhost%s\n", server.Addr)
			}
			if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("web server: %w", err)
			}
			return nil
		})
		g.Go(func() error {
			<-gctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		})
	}

	if !webOnly {
		g.Go(func() error {
			defer stop()
			return tui.Run(gctx, manager, viewer, logger.Named("tui"))
		})
	}

	return g.Wait()
}

func resolveConfigPath(flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	return config.DefaultConfigPath()
}

func openStore(dbPath string) (*db.Store, error) {
	if err := config.EnsureDir(dbPath); err != nil {
		return nil, err
	}

	sqlDB, err := db.Open(dbPath)
	if err != nil {
		return nil, err
	}

	return db.NewStore(sqlDB), nil
}
