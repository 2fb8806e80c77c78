package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/guimashan/platfrom-sub000/internal/cache"
	"github.com/guimashan/platfrom-sub000/internal/config"
	"github.com/guimashan/platfrom-sub000/internal/db"
	"github.com/guimashan/platfrom-sub000/internal/keyword"
	"github.com/guimashan/platfrom-sub000/internal/models"
	"github.com/guimashan/platfrom-sub000/internal/pipeline"
	"github.com/guimashan/platfrom-sub000/internal/validation"
)

// AdminHandler serves the keyword editor API and the consistency pipeline
// endpoints.
type AdminHandler struct {
	db       *db.DB
	pipeline *pipeline.Service
	cache    *cache.ResolutionCache
	registry *keyword.Registry
	cfg      *config.Config
}

// NewAdminHandler creates a new admin handler.
func NewAdminHandler(database *db.DB, pipe *pipeline.Service, rc *cache.ResolutionCache,
	reg *keyword.Registry, cfg *config.Config) *AdminHandler {
	return &AdminHandler{
		db:       database,
		pipeline: pipe,
		cache:    rc,
		registry: reg,
		cfg:      cfg,
	}
}

// Dashboard renders the admin overview page.
func (h *AdminHandler) Dashboard(c fiber.Ctx) error {
	user, _ := c.Locals("user").(*models.User)

	records, err := h.db.ListAllKeywords(c.Context())
	if err != nil {
		log.Printf("Failed to list keywords for dashboard: %v", err)
	}

	size, fetchedAt, primed := h.cache.Stats()

	return c.Render("admin", fiber.Map{
		"Title":          "關鍵字管理",
		"User":           user,
		"Keywords":       records,
		"CacheSize":      size,
		"CacheFetchedAt": fetchedAt,
		"CachePrimed":    primed,
		"LIFFApps":       h.registry.Apps(),
	})
}

// ListKeywords returns every keyword record, including disabled ones.
func (h *AdminHandler) ListKeywords(c fiber.Ctx) error {
	records, err := h.db.ListAllKeywords(c.Context())
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to list keywords")
	}
	return jsonSuccess(c, records)
}

// CreateKeyword creates a keyword record through the editor path.
func (h *AdminHandler) CreateKeyword(c fiber.Ctx) error {
	user, _ := c.Locals("user").(*models.User)

	var rec models.KeywordRecord
	if err := c.Bind().Body(&rec); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	if msg, ok := h.validateRecord(&rec); !ok {
		return jsonError(c, fiber.StatusBadRequest, msg)
	}

	rec.CreatedBy = user.Email
	rec.UpdatedBy = user.Email

	if err := h.db.CreateKeyword(c.Context(), &rec); err != nil {
		if errors.Is(err, db.ErrDuplicateKeyword) {
			return jsonError(c, fiber.StatusConflict, "keyword already exists")
		}
		return jsonError(c, fiber.StatusInternalServerError, "failed to create keyword")
	}

	return jsonSuccess(c, rec)
}

// UpdateKeyword updates an existing keyword record.
func (h *AdminHandler) UpdateKeyword(c fiber.Ctx) error {
	user, _ := c.Locals("user").(*models.User)

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid keyword id")
	}

	var rec models.KeywordRecord
	if err := c.Bind().Body(&rec); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	rec.ID = id

	if msg, ok := h.validateRecord(&rec); !ok {
		return jsonError(c, fiber.StatusBadRequest, msg)
	}

	rec.UpdatedBy = user.Email

	if err := h.db.UpdateKeyword(c.Context(), &rec); err != nil {
		switch {
		case errors.Is(err, db.ErrKeywordNotFound):
			return jsonError(c, fiber.StatusNotFound, "keyword not found")
		case errors.Is(err, db.ErrDuplicateKeyword):
			return jsonError(c, fiber.StatusConflict, "keyword already exists")
		default:
			return jsonError(c, fiber.StatusInternalServerError, "failed to update keyword")
		}
	}

	return jsonSuccess(c, rec)
}

// DeleteKeyword removes a keyword record.
func (h *AdminHandler) DeleteKeyword(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid keyword id")
	}

	if err := h.db.DeleteKeyword(c.Context(), id); err != nil {
		if errors.Is(err, db.ErrKeywordNotFound) {
			return jsonError(c, fiber.StatusNotFound, "keyword not found")
		}
		return jsonError(c, fiber.StatusInternalServerError, "failed to delete keyword")
	}

	return jsonSuccess(c, fiber.Map{"deleted": id})
}

// Migrate seeds the remote store from the canonical table. A populated
// store without force=true aborts with the existing count.
func (h *AdminHandler) Migrate(c fiber.Ctx) error {
	force := fiber.Query(c, "force", false)

	report, err := h.pipeline.Migrate(c.Context(), force)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return c.Status(pipelineStatusCode(report.Status)).JSON(fiber.Map{
		"status": "ok",
		"data":   report,
	})
}

// Rebuild wipes and rewrites the remote store from the canonical table.
func (h *AdminHandler) Rebuild(c fiber.Ctx) error {
	report, err := h.pipeline.Rebuild(c.Context())
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return c.Status(pipelineStatusCode(report.Status)).JSON(fiber.Map{
		"status": "ok",
		"data":   report,
	})
}

// Export emits a fresh canonical-table snapshot. format=json produces the
// override snapshot; the default is Go source for the compiled table.
// download=true returns it as a file attachment.
func (h *AdminHandler) Export(c fiber.Ctx) error {
	download := fiber.Query(c, "download", false)
	format := fiber.Query(c, "format", "go")

	switch format {
	case "json":
		data, err := h.pipeline.ExportJSON(c.Context())
		if err != nil {
			return exportError(c, err)
		}
		if download {
			c.Set(fiber.HeaderContentDisposition, `attachment; filename="keywords.json"`)
		}
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)
		return c.Send(data)

	case "go":
		report, err := h.pipeline.Export(c.Context())
		if err != nil {
			return exportError(c, err)
		}
		if download {
			c.Set(fiber.HeaderContentDisposition, `attachment; filename="entries.go"`)
			c.Set(fiber.HeaderContentType, "text/plain; charset=utf-8")
			return c.SendString(report.Source)
		}
		return jsonSuccess(c, report)

	default:
		return jsonError(c, fiber.StatusBadRequest, "format must be go or json")
	}
}

func exportError(c fiber.Ctx, err error) error {
	if errors.Is(err, pipeline.ErrNothingToExport) {
		return jsonError(c, fiber.StatusNotFound, err.Error())
	}
	return jsonError(c, fiber.StatusInternalServerError, err.Error())
}

// pipelineStatusCode maps a report status to an HTTP status: 200 for full
// success, 207 for partial, 409 for a precondition abort, 500 for total
// failure.
func pipelineStatusCode(status string) int {
	switch status {
	case models.StatusOK:
		return fiber.StatusOK
	case models.StatusPartial:
		return fiber.StatusMultiStatus
	case models.StatusAborted:
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

// validateRecord applies the editor-boundary rules shared with the
// pipeline: printable keyword, known category, well-formed action.
func (h *AdminHandler) validateRecord(rec *models.KeywordRecord) (string, bool) {
	if !validation.ValidateKeyword(rec.Keyword) {
		return "invalid keyword", false
	}
	for _, alias := range rec.Aliases {
		if !validation.ValidateKeyword(alias) {
			return "invalid alias: " + alias, false
		}
	}

	valid := false
	for _, category := range models.CategoryOrder {
		if rec.Category == category {
			valid = true
			break
		}
	}
	if !valid {
		return "unknown category: " + rec.Category, false
	}

	if err := rec.Action.Validate(); err != nil {
		return err.Error(), false
	}

	switch rec.Action.Type {
	case models.ActionDirectLink:
		if ok, msg := validation.ValidateURL(rec.Action.LIFFURL); !ok {
			return msg, false
		}
	case models.ActionComposedLink:
		if !validation.ValidatePath(rec.Action.Path) {
			return "path must start with / or ?", false
		}
		if _, err := h.registry.ResolveURL(rec.Action.LIFFApp, rec.Action.Path); err != nil {
			return err.Error(), false
		}
	case models.ActionStaticText:
		if rec.ReplyPayload.Text == "" {
			return "reply text is required", false
		}
	}

	if rec.Action.Type != models.ActionStaticText && rec.ReplyPayload.Text == "" {
		return "reply text is required", false
	}

	return "", true
}
