// Package pipeline implements the administrative operations that keep the
// remote keyword store, the compiled-in canonical table and the editor
// convergent: Migrate, Rebuild and Export. All three are idempotent and run
// out-of-band; the webhook path never waits on them.
package pipeline

import (
	"context"
	"errors"

	"github.com/guimashan/platfrom-sub000/internal/catalog"
	"github.com/guimashan/platfrom-sub000/internal/keyword"
	"github.com/guimashan/platfrom-sub000/internal/models"
)

// ErrNothingToExport is returned when the remote store is empty. An empty
// snapshot must never silently replace the compiled table.
var ErrNothingToExport = errors.New("remote store is empty, nothing to export")

// defaultBatchSize bounds how many records go into one atomic batch write.
const defaultBatchSize = 100

// KeywordStore is the slice of the remote store the pipeline needs.
type KeywordStore interface {
	CountKeywords(ctx context.Context) (int, error)
	DeleteAllKeywords(ctx context.Context) (int, error)
	InsertKeywordBatch(ctx context.Context, records []models.KeywordRecord) error
	ListAllKeywords(ctx context.Context) ([]models.KeywordRecord, error)
}

// Service runs the consistency pipeline against a keyword store.
type Service struct {
	store     KeywordStore
	catalog   *catalog.Catalog
	registry  *keyword.Registry
	batchSize int
}

// NewService creates a pipeline service.
func NewService(store KeywordStore, cat *catalog.Catalog, reg *keyword.Registry) *Service {
	return &Service{
		store:     store,
		catalog:   cat,
		registry:  reg,
		batchSize: defaultBatchSize,
	}
}

// insertAll writes records in batches. A failing batch is retried record by
// record so individual failures are isolated and reported while the
// remaining records still land.
func (s *Service) insertAll(ctx context.Context, records []models.KeywordRecord) (inserted int, failures []models.EntryFailure) {
	for start := 0; start < len(records); start += s.batchSize {
		end := start + s.batchSize
		if end > len(records) {
			end = len(records)
		}
		chunk := records[start:end]

		if err := s.store.InsertKeywordBatch(ctx, chunk); err == nil {
			inserted += len(chunk)
			continue
		}

		for i := range chunk {
			one := chunk[i : i+1]
			if err := s.store.InsertKeywordBatch(ctx, one); err != nil {
				failures = append(failures, models.EntryFailure{
					Keyword: chunk[i].Keyword,
					Error:   err.Error(),
				})
				continue
			}
			inserted++
		}
	}
	return inserted, failures
}

func statusFor(inserted int, failures []models.EntryFailure) string {
	switch {
	case len(failures) == 0:
		return models.StatusOK
	case inserted == 0:
		return models.StatusFailed
	default:
		return models.StatusPartial
	}
}
