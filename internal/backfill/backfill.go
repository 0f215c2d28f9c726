// Package backfill walks the product catalog and uploads a generated
// placeholder image for every product that has none.
package backfill

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/spcustoms/catalog-image-backfill/internal/catalog"
	"github.com/spcustoms/catalog-image-backfill/internal/placeholder"
)

// Client is the slice of the catalog API the backfiller needs.
type Client interface {
	Login(ctx context.Context, username, password string) (string, error)
	SetAuth(token string)
	ListProducts(ctx context.Context, pageSize int) ([]catalog.Product, error)
	GetProductImages(ctx context.Context, productID int) ([]catalog.ProductImage, error)
	UploadProductImage(ctx context.Context, productID int, upload catalog.ImageUpload) (string, error)
}

type Opts struct {
	Username string
	Password string
	PageSize int
	// Delay is the fixed pause between products, a crude rate limit for the
	// backend rather than a correctness mechanism.
	Delay  time.Duration
	DryRun bool
}

type Backfiller struct {
	client Client
	opts   Opts
}

// Summary reports what a run did.
type Summary struct {
	Seen    int
	Skipped int
	Updated int
	Failed  int
}

func New(client Client, opts Opts) *Backfiller {
	return &Backfiller{client: client, opts: opts}
}

// Run authenticates, fetches one page of products and uploads a placeholder
// for each product without images. Setup failures (login, product list)
// abort the run; per-product upload failures are logged and the walk
// continues. Products are processed strictly in list order.
func (b *Backfiller) Run(ctx context.Context) (Summary, error) {
	var summary Summary

	token, err := b.client.Login(ctx, b.opts.Username, b.opts.Password)
	if err != nil {
		return summary, err
	}
	b.client.SetAuth(token)
	log.Info().Msg("authenticated")

	products, err := b.client.ListProducts(ctx, b.opts.PageSize)
	if err != nil {
		return summary, err
	}
	log.Info().Int("count", len(products)).Msg("fetched products")

	for i, product := range products {
		summary.Seen++
		b.processProduct(ctx, product, &summary)

		// Last product doesn't need the trailing pause.
		if i == len(products)-1 {
			break
		}
		select {
		case <-ctx.Done():
			return summary, ctx.Err()
		case <-time.After(b.opts.Delay):
		}
	}

	log.Info().
		Int("seen", summary.Seen).
		Int("skipped", summary.Skipped).
		Int("updated", summary.Updated).
		Int("failed", summary.Failed).
		Msg("backfill finished")

	return summary, nil
}

func (b *Backfiller) processProduct(ctx context.Context, product catalog.Product, summary *Summary) {
	logger := log.With().Int("productId", product.ID).Str("name", product.Name).Logger()

	images, err := b.client.GetProductImages(ctx, product.ID)
	if err != nil {
		logger.Error().Err(err).Msg("failed to query existing images")
		summary.Failed++
		return
	}
	if len(images) > 0 {
		logger.Info().Int("images", len(images)).Msg("already has images, skipping")
		summary.Skipped++
		return
	}

	category := ""
	if product.Category != nil {
		category = product.Category.Name
	}
	color := placeholder.CategoryColor(category)
	svg := placeholder.ProductSVG(product.Name, color)

	upload := catalog.ImageUpload{
		ImageData:   placeholder.DataURI(svg),
		Filename:    placeholder.Filename(product.Name),
		ContentType: placeholder.ContentType,
		IsPrimary:   true,
		SortOrder:   0,
	}

	if b.opts.DryRun {
		logger.Info().Str("filename", upload.Filename).Str("color", color).Msg("dry run, would upload placeholder")
		summary.Updated++
		return
	}

	body, err := b.client.UploadProductImage(ctx, product.ID, upload)
	if err != nil {
		logger.Error().Err(err).Str("response", body).Msg("failed to upload placeholder")
		summary.Failed++
		return
	}

	logger.Info().Str("filename", upload.Filename).Str("color", color).Msg("uploaded placeholder")
	summary.Updated++
}
