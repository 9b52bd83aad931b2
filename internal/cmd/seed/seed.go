package seed

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"

	"github.com/yuvrajprajapati/gymshim/internal/platform/config"
	"github.com/yuvrajprajapati/gymshim/internal/seed"
	"github.com/yuvrajprajapati/gymshim/internal/storage/sqlite"
)

// Config holds the seed command configuration.
type Config struct {
	DBPath       string `env:"GYMSHIM_DB_PATH" envDefault:"data/gym.db"`
	WithTrainers bool   `env:"GYMSHIM_SEED_TRAINERS" envDefault:"false"`
}

// ParseConfig loads configuration from the environment, then lets flags
// override it.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "SQLite database path")
	fs.BoolVar(&cfg.WithTrainers, "with-trainers", cfg.WithTrainers, "also create demo trainers on an empty roster")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Run seeds the default catalog and reports what was created.
func Run(ctx context.Context, cfg Config, out io.Writer) error {
	store, err := sqlite.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Printf("close storage: %v", err)
		}
	}()

	plans, err := seed.Plans(ctx, store)
	if err != nil {
		return fmt.Errorf("seed plans: %w", err)
	}
	fmt.Fprintf(out, "plans created: %d\n", plans)

	if cfg.WithTrainers {
		trainers, err := seed.Trainers(ctx, store)
		if err != nil {
			return fmt.Errorf("seed trainers: %w", err)
		}
		fmt.Fprintf(out, "trainers created: %d\n", trainers)
	}
	return nil
}
