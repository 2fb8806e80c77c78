package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/guimashan/platfrom-sub000/internal/catalog"
	"github.com/guimashan/platfrom-sub000/internal/keyword"
	"github.com/guimashan/platfrom-sub000/internal/models"
)

// Rebuild wipes the remote store and rewrites it entirely from the
// canonical table, independent of prior state. ComposedLink entries are
// resolved to absolute URLs here, so the remote store never holds an
// unresolved app reference. A per-entry failure (unknown LIFF app, write
// error) is recorded and does not abort the remaining entries.
func (s *Service) Rebuild(ctx context.Context) (models.RebuildReport, error) {
	report := models.RebuildReport{RanAt: time.Now()}

	deleted, err := s.store.DeleteAllKeywords(ctx)
	if err != nil {
		return report, fmt.Errorf("failed to clear remote store: %w", err)
	}
	report.Deleted = deleted

	entries := s.catalog.Entries()
	now := time.Now()

	records := make([]models.KeywordRecord, 0, len(entries))
	for _, e := range entries {
		action, err := s.registry.ResolveAction(e.Action)
		if err != nil {
			report.Failures = append(report.Failures, models.EntryFailure{
				Keyword: e.Keyword,
				Error:   err.Error(),
			})
			continue
		}

		records = append(records, models.KeywordRecord{
			Keyword:           e.Keyword,
			NormalizedKeyword: keyword.Normalize(e.Keyword),
			Aliases:           append([]string(nil), e.Aliases...),
			Category:          e.Category,
			Priority:          e.Priority,
			Enabled:           e.Enabled,
			Action:            action,
			ReplyPayload:      e.Reply,
			Description:       e.Description,
			CreatedBy:         catalog.SystemAuthor,
			CreatedAt:         now,
			UpdatedBy:         catalog.SystemAuthor,
			UpdatedAt:         now,
		})
	}

	inserted, failures := s.insertAll(ctx, records)
	report.Inserted = inserted
	report.Failures = append(report.Failures, failures...)

	report.Status = statusFor(report.Inserted, report.Failures)
	return report, nil
}
