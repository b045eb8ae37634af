package application

import (
	"context"
	"time"

	"shopopti-integration-layer/internal/domain"
	"shopopti-integration-layer/internal/ports"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"
)

var productsImported = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "shopopti_products_imported_total",
	Help: "Product import attempts by result.",
}, []string{"result"})

// ImportService performs bulk imports of product drafts into the catalog.
type ImportService struct {
	products ports.ProductRepository
	events   ports.EventPublisher
	logger   zerolog.Logger
}

// NewImportService creates a new import service
func NewImportService(
	products ports.ProductRepository,
	events ports.EventPublisher,
	logger zerolog.Logger,
) *ImportService {
	return &ImportService{
		products: products,
		events:   events,
		logger:   logger,
	}
}

// ImportProducts attempts to persist every draft in input order. A failed
// insert is counted and never halts the rest of the batch; the returned
// counts always add up to len(drafts).
func (s *ImportService) ImportProducts(ctx context.Context, drafts []domain.ProductDraft) domain.ImportResult {
	inserted := 0
	for i := range drafts {
		draft := drafts[i]

		insertCtx, cancel := context.WithTimeout(ctx, persistTimeout)
		err := s.products.Insert(insertCtx, &draft)
		cancel()

		if err != nil {
			s.logger.Warn().Err(err).Str("title", draft.Title).Msg("Failed to insert product")
			productsImported.WithLabelValues("failed").Inc()
			continue
		}
		inserted++
		productsImported.WithLabelValues("inserted").Inc()
	}

	result := domain.ImportResult{
		Inserted: inserted,
		Failed:   len(drafts) - inserted,
	}

	if len(drafts) > 0 {
		if err := s.events.Publish(ctx, domain.ChannelImportCompleted, domain.ImportEvent{
			Inserted:    result.Inserted,
			Failed:      result.Failed,
			CompletedAt: time.Now(),
		}); err != nil {
			s.logger.Warn().Err(err).Msg("Failed to publish import event")
		}
	}

	s.logger.Info().
		Int("inserted", result.Inserted).
		Int("failed", result.Failed).
		Msg("Product import completed")
	return result
}
