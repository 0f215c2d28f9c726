// backfill-images is a one-off admin tool that uploads generated SVG
// placeholders for every catalog product without an image.
//
// Run: go run ./cmd/backfill-images
package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/spcustoms/catalog-image-backfill/internal/backfill"
	"github.com/spcustoms/catalog-image-backfill/internal/catalog"
)

func main() {
	// Optional .env in the working directory, same variables as the flags.
	_ = godotenv.Load()

	var (
		baseURL  string
		username string
		password string
		pageSize int
		delay    time.Duration
		dryRun   bool
	)

	flag.StringVar(&baseURL, "base-url", envOr("CATALOG_BASE_URL", catalog.DefaultBaseURL), "Catalog API base URL")
	flag.StringVar(&username, "username", envOr("CATALOG_USERNAME", "admin"), "Admin username")
	flag.StringVar(&password, "password", envOr("CATALOG_PASSWORD", "admin123"), "Admin password")
	flag.IntVar(&pageSize, "page-size", 50, "Products to fetch (single page, backend caps at 100)")
	flag.DurationVar(&delay, "delay", 100*time.Millisecond, "Pause between products")
	flag.BoolVar(&dryRun, "dry-run", false, "Walk the catalog without uploading")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	client := catalog.NewClient(catalog.ClientOpts{BaseURL: baseURL})
	backfiller := backfill.New(client, backfill.Opts{
		Username: username,
		Password: password,
		PageSize: pageSize,
		Delay:    delay,
		DryRun:   dryRun,
	})

	summary, err := backfiller.Run(ctx)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			log.Warn().Int("updated", summary.Updated).Msg("interrupted")
			os.Exit(1)
		}
		log.Fatal().Err(err).Msg("backfill failed")
	}

	log.Info().Int("updated", summary.Updated).Msg("done")
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
