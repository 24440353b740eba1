package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/jask/jaskfx/internal/config"
	"github.com/jask/jaskfx/internal/currency"
	"github.com/jask/jaskfx/internal/database"
	"github.com/jask/jaskfx/internal/database/repository"
	"github.com/jask/jaskfx/internal/engine"
	"github.com/jask/jaskfx/internal/logger"
	"github.com/jask/jaskfx/internal/prefs"
	"github.com/jask/jaskfx/internal/remote"
	"github.com/jask/jaskfx/internal/secrets"
	"github.com/jask/jaskfx/internal/tui"
)

// keyProvider names the access key in the secrets store.
const keyProvider = "currencylayer"

var (
	cfg config.Config
	log *logger.Logger
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "jaskfx",
		Short:        "Pick a currency pair from a live catalog",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if cfg, err = config.Load(); err != nil {
				return fmt.Errorf("config: %w", err)
			}
			log, err = logger.New(logger.Config{
				Level:       cfg.Log.Level,
				Development: cfg.Log.Development,
				Path:        cfg.Log.Path,
			})
			if err != nil {
				return fmt.Errorf("logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if log != nil {
				_ = log.Close()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd.Context())
		},
	}
	root.AddCommand(keyCmd(), statusCmd(), configCmd(), seedCmd(), resetCmd())
	return root
}

func openDB() (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
		return nil, fmt.Errorf("mkdir db dir: %w", err)
	}
	if err := database.RunMigrations(cfg.Database.Path); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	return db, nil
}

func runTUI(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()
	store := repository.NewCurrencyRepo(db)

	accessKey := resolveAccessKey(cfg)
	if accessKey == "" {
		log.Warnw("no access key configured, only the saved catalog is available")
	}
	client := remote.NewClient(cfg.Remote.BaseURL, accessKey,
		remote.WithSource(cfg.Remote.Source),
		remote.WithTimeout(cfg.Remote.Timeout),
	)

	def, err := currency.ParseDirection(cfg.UI.DefaultSort)
	if err != nil {
		log.Warnw("bad ui.default_sort, using ascending", "value", cfg.UI.DefaultSort)
		def = currency.Ascending
	}
	p, err := prefs.New("")
	if err != nil {
		log.Warnw("prefs unavailable", "error", err)
	}
	dir := def
	if p != nil {
		if v, err := p.LoadView(); err == nil {
			dir = v.Direction(def)
		} else {
			log.Warnw("load view prefs", "error", err)
		}
	}

	e := engine.New(engine.Options{
		Source:    client,
		Store:     store,
		Logger:    log,
		Direction: dir,
	})
	defer e.Close()

	app := tui.New(ctx, cfg, e, p, log)
	defer app.Close()

	if _, err := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(ctx)).Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}

// resolveAccessKey prefers the env var, then the secrets store, then the
// plain-text config value.
func resolveAccessKey(cfg config.Config) string {
	env := strings.TrimSpace(cfg.Remote.AccessKeyEnv)
	if env == "" {
		env = "JASKFX_ACCESS_KEY"
	}
	if v := strings.TrimSpace(os.Getenv(env)); v != "" {
		return v
	}
	if s, err := secrets.NewStore(""); err == nil {
		if k, err := s.Get(keyProvider); err == nil {
			return k
		}
	}
	return strings.TrimSpace(cfg.Remote.AccessKey)
}
