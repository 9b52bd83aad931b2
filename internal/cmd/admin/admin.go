package admin

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/yuvrajprajapati/gymshim/internal/admin"
	"github.com/yuvrajprajapati/gymshim/internal/platform/config"
	"github.com/yuvrajprajapati/gymshim/internal/platform/otel"
	"github.com/yuvrajprajapati/gymshim/internal/storage/media"
	"github.com/yuvrajprajapati/gymshim/internal/storage/sqlite"
)

const shutdownDrainMax = 10 * time.Second

// Config holds the admin command configuration. The password hash and
// JWT secret come from the environment only.
type Config struct {
	HTTPAddr     string `env:"GYMSHIM_ADMIN_HTTP_ADDR" envDefault:"localhost:8081"`
	DBPath       string `env:"GYMSHIM_DB_PATH" envDefault:"data/gym.db"`
	MediaRoot    string `env:"GYMSHIM_MEDIA_ROOT" envDefault:"data/media"`
	PasswordHash string `env:"GYMSHIM_ADMIN_PASSWORD_HASH"`
	JWTSecret    string `env:"GYMSHIM_ADMIN_JWT_SECRET"`
}

// ParseConfig loads configuration from the environment, then lets flags
// override it.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "SQLite database path")
	fs.StringVar(&cfg.MediaRoot, "media-root", cfg.MediaRoot, "uploaded media directory")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if cfg.PasswordHash == "" {
		return Config{}, errors.New("GYMSHIM_ADMIN_PASSWORD_HASH is required")
	}
	if cfg.JWTSecret == "" {
		return Config{}, errors.New("GYMSHIM_ADMIN_JWT_SECRET is required")
	}
	return cfg, nil
}

// Run starts the admin back-office server.
func Run(ctx context.Context, cfg Config) error {
	shutdownTracing, err := otel.Setup(ctx, "gymshim-admin")
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}
	defer func() {
		drainCtx, cancel := context.WithTimeout(context.Background(), shutdownDrainMax)
		defer cancel()
		if err := shutdownTracing(drainCtx); err != nil {
			log.Printf("shutdown tracing: %v", err)
		}
	}()

	store, err := sqlite.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Printf("close storage: %v", err)
		}
	}()

	mediaStore, err := media.NewStore(cfg.MediaRoot)
	if err != nil {
		return fmt.Errorf("open media store: %w", err)
	}

	server, err := admin.NewServer(admin.Config{
		HTTPAddr: cfg.HTTPAddr,
		Store:    store,
		Media:    mediaStore,
		Auth: admin.AuthConfig{
			PasswordHash: cfg.PasswordHash,
			JWTSecret:    []byte(cfg.JWTSecret),
		},
	})
	if err != nil {
		return fmt.Errorf("init admin server: %w", err)
	}

	if err := server.ListenAndServe(ctx); err != nil {
		return fmt.Errorf("serve admin: %w", err)
	}
	return nil
}
