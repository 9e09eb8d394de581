// Package eventlog parses event log command flags and runs the requested
// operation against a game's event log.
package eventlog

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jonmarkgo/condottieri-events/internal/event"
	entrypoint "github.com/jonmarkgo/condottieri-events/internal/platform/cmd"
	"github.com/jonmarkgo/condottieri-events/internal/render"
	"github.com/jonmarkgo/condottieri-events/internal/storage"
	"github.com/jonmarkgo/condottieri-events/internal/storage/sqlite"
)

// listPageSize bounds one storage read while paging through a game log.
const listPageSize = 500

// Config holds event log command configuration.
type Config struct {
	DBPath string `env:"CONDOTTIERI_EVENTS_DB_PATH" envDefault:"events.db"`
	Locale string `env:"CONDOTTIERI_EVENTS_LOCALE" envDefault:"en-US"`
	GameID string
	Purge  bool
	Year   int
	Season string
	Phase  string
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.DBPath, "db", cfg.DBPath, "Path to the event log database")
	fs.StringVar(&cfg.Locale, "locale", cfg.Locale, "Locale for rendered log lines")
	fs.StringVar(&cfg.GameID, "game", cfg.GameID, "Game to operate on")
	fs.BoolVar(&cfg.Purge, "purge", cfg.Purge, "Delete the game's log instead of listing it")
	fs.IntVar(&cfg.Year, "year", cfg.Year, "Restrict the listing to one game year")
	fs.StringVar(&cfg.Season, "season", cfg.Season, "Restrict the listing to one season (requires -year and -phase)")
	fs.StringVar(&cfg.Phase, "phase", cfg.Phase, "Restrict the listing to one phase (requires -year and -season)")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run executes the event log command.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceEventlog, func(ctx context.Context) error {
		return run(ctx, cfg, os.Stdout)
	})
}

func run(ctx context.Context, cfg Config, out io.Writer) error {
	if strings.TrimSpace(cfg.GameID) == "" {
		return fmt.Errorf("game id is required")
	}

	store, err := sqlite.Open(cfg.DBPath, event.NewRegistry())
	if err != nil {
		return err
	}
	defer store.Close()

	if cfg.Purge {
		return store.DeleteGameRecords(ctx, cfg.GameID)
	}
	return list(ctx, store, cfg, out)
}

func list(ctx context.Context, store storage.RecordStore, cfg Config, out io.Writer) error {
	renderer := render.New()

	if cfg.Year > 0 || cfg.Season != "" || cfg.Phase != "" {
		records, err := store.ListRecordsByTurn(ctx, cfg.GameID,
			cfg.Year, event.Season(cfg.Season), event.Phase(cfg.Phase))
		if err != nil {
			return err
		}
		return writeRecords(out, renderer, records, cfg.Locale)
	}

	var afterSeq uint64
	for {
		page, err := store.ListRecords(ctx, cfg.GameID, afterSeq, listPageSize)
		if err != nil {
			return err
		}
		if len(page) == 0 {
			return nil
		}
		if err := writeRecords(out, renderer, page, cfg.Locale); err != nil {
			return err
		}
		afterSeq = page[len(page)-1].Seq
		if len(page) < listPageSize {
			return nil
		}
	}
}

func writeRecords(out io.Writer, renderer *render.Renderer, records []event.Record, locale string) error {
	for _, rec := range records {
		line, err := renderer.Render(rec, locale)
		if err != nil {
			return fmt.Errorf("render record %d: %w", rec.Seq, err)
		}
		if _, err := fmt.Fprintf(out, "%s: %s\n", renderer.RenderHeader(rec, locale), line); err != nil {
			return err
		}
	}
	return nil
}
