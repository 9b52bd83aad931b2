package web

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/yuvrajprajapati/gymshim/internal/platform/config"
	"github.com/yuvrajprajapati/gymshim/internal/platform/otel"
	"github.com/yuvrajprajapati/gymshim/internal/seed"
	"github.com/yuvrajprajapati/gymshim/internal/storage/media"
	"github.com/yuvrajprajapati/gymshim/internal/storage/sqlite"
	"github.com/yuvrajprajapati/gymshim/internal/upi"
	"github.com/yuvrajprajapati/gymshim/internal/web/app"
)

const shutdownDrainMax = 10 * time.Second

// Config holds the web command configuration.
type Config struct {
	HTTPAddr     string `env:"GYMSHIM_WEB_HTTP_ADDR" envDefault:"localhost:8080"`
	DBPath       string `env:"GYMSHIM_DB_PATH" envDefault:"data/gym.db"`
	MediaRoot    string `env:"GYMSHIM_MEDIA_ROOT" envDefault:"data/media"`
	UPIVPA       string `env:"GYMSHIM_UPI_VPA" envDefault:"gymshim@upi"`
	UPIPayeeName string `env:"GYMSHIM_UPI_PAYEE_NAME" envDefault:"GYM-SHIM"`
	Seed         bool   `env:"GYMSHIM_WEB_SEED" envDefault:"false"`
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
	fs.StringVar(&cfg.UPIVPA, "upi-vpa", cfg.UPIVPA, "UPI virtual payment address for membership fees")
	fs.StringVar(&cfg.UPIPayeeName, "upi-payee-name", cfg.UPIPayeeName, "payee name shown in UPI apps")
	fs.BoolVar(&cfg.Seed, "seed", cfg.Seed, "create default membership plans before serving")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Run starts the public web server.
func Run(ctx context.Context, cfg Config) error {
	shutdownTracing, err := otel.Setup(ctx, "gymshim-web")
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

	if cfg.Seed {
		created, err := seed.Plans(ctx, store)
		if err != nil {
			return fmt.Errorf("seed plans: %w", err)
		}
		if created > 0 {
			log.Printf("seeded %d membership plans", created)
		}
	}

	server, err := app.NewServer(app.Config{
		HTTPAddr: cfg.HTTPAddr,
		Store:    store,
		Media:    mediaStore,
		Payee: upi.Payee{
			Address: cfg.UPIVPA,
			Name:    cfg.UPIPayeeName,
		},
	})
	if err != nil {
		return fmt.Errorf("init web server: %w", err)
	}

	if err := server.ListenAndServe(ctx); err != nil {
		return fmt.Errorf("serve web: %w", err)
	}
	return nil
}
