package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/guimashan/platfrom-sub000/internal/catalog"
	"github.com/guimashan/platfrom-sub000/internal/models"
)

// categoryRank orders exported records: check-in first, then services,
// schedules, everything else. The ordering exists purely so successive
// exports diff cleanly; it carries no runtime meaning.
func categoryRank(category string) int {
	for i, c := range models.CategoryOrder {
		if c == category {
			return i
		}
	}
	return len(models.CategoryOrder)
}

var categoryConst = map[string]string{
	models.CategoryCheckin:  "models.CategoryCheckin",
	models.CategoryService:  "models.CategoryService",
	models.CategorySchedule: "models.CategorySchedule",
	models.CategoryOther:    "models.CategoryOther",
}

var actionConst = map[string]string{
	models.ActionDirectLink:   "models.ActionDirectLink",
	models.ActionComposedLink: "models.ActionComposedLink",
	models.ActionStaticText:   "models.ActionStaticText",
}

// Export reads every remote record and serializes a new canonical-table
// source snapshot for a maintainer to review and promote into the compiled
// fallback. Export never writes to the remote store; an empty store is an
// error, not an empty snapshot.
func (s *Service) Export(ctx context.Context) (models.ExportReport, error) {
	report := models.ExportReport{GeneratedAt: time.Now()}

	records, err := s.sortedRecords(ctx)
	if err != nil {
		return report, err
	}

	report.Count = len(records)
	report.Source = generateSource(records)
	return report, nil
}

// ExportJSON emits the same snapshot as a JSON entry list, the format the
// catalog override loader consumes.
func (s *Service) ExportJSON(ctx context.Context) ([]byte, error) {
	records, err := s.sortedRecords(ctx)
	if err != nil {
		return nil, err
	}

	entries := make([]catalog.Entry, 0, len(records))
	for _, rec := range records {
		entries = append(entries, recordToEntry(rec))
	}
	return json.MarshalIndent(entries, "", "  ")
}

func (s *Service) sortedRecords(ctx context.Context) ([]models.KeywordRecord, error) {
	records, err := s.store.ListAllKeywords(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read remote store: %w", err)
	}
	if len(records) == 0 {
		return nil, ErrNothingToExport
	}

	sort.SliceStable(records, func(i, j int) bool {
		ri, rj := categoryRank(records[i].Category), categoryRank(records[j].Category)
		if ri != rj {
			return ri < rj
		}
		return records[i].Keyword < records[j].Keyword
	})
	return records, nil
}

func recordToEntry(rec models.KeywordRecord) catalog.Entry {
	return catalog.Entry{
		Keyword:     rec.Keyword,
		Aliases:     append([]string(nil), rec.Aliases...),
		Category:    rec.Category,
		Priority:    rec.Priority,
		Enabled:     rec.Enabled,
		Action:      rec.Action,
		Reply:       rec.ReplyPayload,
		Description: rec.Description,
	}
}

// generateSource renders the records as the Go source of the catalog's
// compiled-in entry list.
func generateSource(records []models.KeywordRecord) string {
	var b strings.Builder

	b.WriteString("// Code generated by the keyword export pipeline; review before promoting.\n")
	b.WriteString("package catalog\n\n")
	b.WriteString("import \"github.com/guimashan/platfrom-sub000/internal/models\"\n\n")
	b.WriteString("var defaultEntries = []Entry{\n")

	lastCategory := ""
	for _, rec := range records {
		if rec.Category != lastCategory {
			if lastCategory != "" {
				b.WriteString("\n")
			}
			fmt.Fprintf(&b, "\t// %s\n", rec.Category)
			lastCategory = rec.Category
		}
		writeEntrySource(&b, rec)
	}

	b.WriteString("}\n")
	return b.String()
}

func writeEntrySource(b *strings.Builder, rec models.KeywordRecord) {
	b.WriteString("\t{\n")
	fmt.Fprintf(b, "\t\tKeyword:  %q,\n", rec.Keyword)

	if len(rec.Aliases) > 0 {
		quoted := make([]string, len(rec.Aliases))
		for i, a := range rec.Aliases {
			quoted[i] = fmt.Sprintf("%q", a)
		}
		fmt.Fprintf(b, "\t\tAliases:  []string{%s},\n", strings.Join(quoted, ", "))
	}

	fmt.Fprintf(b, "\t\tCategory: %s,\n", constOrQuoted(categoryConst, rec.Category))
	fmt.Fprintf(b, "\t\tPriority: %d,\n", rec.Priority)
	fmt.Fprintf(b, "\t\tEnabled:  %v,\n", rec.Enabled)
	fmt.Fprintf(b, "\t\tAction:   %s,\n", actionSource(rec.Action))

	b.WriteString("\t\tReply: models.ReplyPayload{\n")
	if rec.ReplyPayload.AltText != "" {
		fmt.Fprintf(b, "\t\t\tAltText: %q,\n", rec.ReplyPayload.AltText)
	}
	fmt.Fprintf(b, "\t\t\tText:    %q,\n", rec.ReplyPayload.Text)
	if rec.ReplyPayload.Label != "" {
		fmt.Fprintf(b, "\t\t\tLabel:   %q,\n", rec.ReplyPayload.Label)
	}
	b.WriteString("\t\t},\n")

	if rec.Description != "" {
		fmt.Fprintf(b, "\t\tDescription: %q,\n", rec.Description)
	}
	b.WriteString("\t},\n")
}

func actionSource(a models.Action) string {
	typ := constOrQuoted(actionConst, a.Type)
	switch a.Type {
	case models.ActionDirectLink:
		return fmt.Sprintf("models.Action{Type: %s, LIFFURL: %q}", typ, a.LIFFURL)
	case models.ActionComposedLink:
		if a.Path != "" {
			return fmt.Sprintf("models.Action{Type: %s, LIFFApp: %q, Path: %q}", typ, a.LIFFApp, a.Path)
		}
		return fmt.Sprintf("models.Action{Type: %s, LIFFApp: %q}", typ, a.LIFFApp)
	default:
		return fmt.Sprintf("models.Action{Type: %s}", typ)
	}
}

func constOrQuoted(consts map[string]string, value string) string {
	if name, ok := consts[value]; ok {
		return name
	}
	return fmt.Sprintf("%q", value)
}
