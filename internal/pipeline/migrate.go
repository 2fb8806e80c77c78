package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/guimashan/platfrom-sub000/internal/models"
)

// Migrate seeds the remote store from the canonical table. A populated
// store aborts the run unless force is set; there is never a silent merge.
// When forcing, existing records are deleted before the canonical records
// are batch-inserted with system audit fields.
func (s *Service) Migrate(ctx context.Context, force bool) (models.MigrateReport, error) {
	report := models.MigrateReport{RanAt: time.Now()}

	count, err := s.store.CountKeywords(ctx)
	if err != nil {
		return report, fmt.Errorf("failed to inspect remote store: %w", err)
	}

	if count > 0 && !force {
		report.Status = models.StatusAborted
		report.ExistingCount = count
		return report, nil
	}

	if count > 0 {
		deleted, err := s.store.DeleteAllKeywords(ctx)
		if err != nil {
			return report, fmt.Errorf("failed to clear remote store: %w", err)
		}
		report.Deleted = deleted
	}

	records := s.catalog.Records()
	report.Inserted, report.Failures = s.insertAll(ctx, records)

	report.Categories = make(map[string]int)
	for _, rec := range records {
		report.Categories[rec.Category]++
	}
	for _, f := range report.Failures {
		// Breakdown counts what actually landed.
		for _, rec := range records {
			if rec.Keyword == f.Keyword {
				report.Categories[rec.Category]--
				break
			}
		}
	}

	report.Status = statusFor(report.Inserted, report.Failures)
	return report, nil
}
