package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v3"

	"github.com/guimashan/platfrom-sub000/internal/cache"
	"github.com/guimashan/platfrom-sub000/internal/catalog"
	"github.com/guimashan/platfrom-sub000/internal/config"
	"github.com/guimashan/platfrom-sub000/internal/keyword"
	"github.com/guimashan/platfrom-sub000/internal/line"
	"github.com/guimashan/platfrom-sub000/internal/metrics"
	"github.com/guimashan/platfrom-sub000/internal/models"
)

// WebhookHandler is the bot's front door: it verifies platform signatures,
// resolves inbound text against the keyword table and dispatches replies.
type WebhookHandler struct {
	cfg      *config.Config
	bot      *config.YAMLConfig
	cache    *cache.ResolutionCache
	catalog  *catalog.Catalog
	registry *keyword.Registry
	client   *line.Client
}

// NewWebhookHandler creates the webhook handler.
func NewWebhookHandler(cfg *config.Config, bot *config.YAMLConfig, rc *cache.ResolutionCache,
	cat *catalog.Catalog, reg *keyword.Registry, client *line.Client) *WebhookHandler {
	return &WebhookHandler{
		cfg:      cfg,
		bot:      bot,
		cache:    rc,
		catalog:  cat,
		registry: reg,
		client:   client,
	}
}

// Handle processes one webhook delivery. Signature verification runs over
// the exact raw body bytes before anything is parsed; a request that fails
// it is terminated immediately. An empty event batch is a valid
// connectivity probe and returns success without touching the matcher.
func (h *WebhookHandler) Handle(c fiber.Ctx) error {
	body := c.Body()
	signature := c.Get(line.SignatureHeader)

	if !line.ValidateSignature(h.cfg.ChannelSecret, body, signature) {
		return jsonError(c, fiber.StatusUnauthorized, "invalid signature")
	}

	var req models.WebhookRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "malformed event batch")
	}

	for _, event := range req.Events {
		switch event.Type {
		case models.EventTypeFollow:
			h.reply(c.Context(), event.ReplyToken, line.NewText(h.bot.WelcomeText))

		case models.EventTypeMessage:
			if event.Message == nil || event.Message.Type != models.MessageTypeText {
				continue
			}
			h.handleText(c.Context(), event)
		}
	}

	return jsonSuccess(c, fiber.Map{"events": len(req.Events)})
}

// handleText resolves one text message and replies. Resolution failures
// degrade to the platform default reply; the end user never sees an error.
func (h *WebhookHandler) handleText(ctx context.Context, event models.Event) {
	text := event.Message.Text
	if h.isSuppressed(text) {
		return
	}

	records, fromCatalog := h.records(ctx)

	match := keyword.Resolve(text, records)
	if match == nil && !fromCatalog && len(records) == 0 {
		// Healthy adapter but empty store: answer from the compiled table.
		records, fromCatalog = h.catalog.EnabledRecords(), true
		match = keyword.Resolve(text, records)
	}

	if match == nil {
		metrics.RecordMatch(keyword.Normalize(text), models.OutcomeDefault)
		h.reply(ctx, event.ReplyToken, h.defaultReply())
		return
	}

	outcome := string(match.Reason)
	if fromCatalog {
		outcome = models.OutcomeFallback
	}
	metrics.RecordMatch(match.Record.Keyword, outcome)

	msg, err := keyword.BuildReply(match.Record, h.registry)
	if err != nil {
		// Configuration error: reply omitted rather than replaced.
		log.Printf("Reply build failed for %q: %v", match.Record.Keyword, err)
		return
	}

	h.reply(ctx, event.ReplyToken, msg)
}

// records returns the current resolution snapshot, falling back to the
// compiled canonical table when the remote store is unusable. The second
// return reports whether the fallback was taken.
func (h *WebhookHandler) records(ctx context.Context) ([]models.KeywordRecord, bool) {
	records, err := h.cache.Get(ctx)
	if err != nil {
		if !errors.Is(err, cache.ErrUnavailable) {
			log.Printf("Keyword snapshot fetch failed: %v", err)
		}
		return h.catalog.EnabledRecords(), true
	}
	return records, false
}

// reply dispatches a message and logs failures. The platform's delivery
// retry must not fire for application-level reply failures, so the webhook
// response stays successful either way.
func (h *WebhookHandler) reply(ctx context.Context, replyToken string, msg line.Message) {
	if replyToken == "" {
		return
	}
	if err := h.client.Reply(ctx, replyToken, msg); err != nil {
		log.Printf("Reply dispatch failed: %v", err)
	}
}

// isSuppressed reports whether the text is one of our own automated
// notices echoed back; those never get an answer.
func (h *WebhookHandler) isSuppressed(text string) bool {
	trimmed := strings.TrimSpace(text)
	for _, prefix := range h.bot.SuppressedPrefixes {
		if strings.HasPrefix(trimmed, prefix) {
			return true
		}
	}
	return false
}

// defaultReply is the platform-wide answer for unmatched input: open the
// main entry app.
func (h *WebhookHandler) defaultReply() line.Message {
	url, err := h.registry.ResolveURL("home", "")
	if err != nil {
		return line.NewText(h.bot.WelcomeText)
	}
	return line.NewButtons(
		"龜馬山線上服務",
		"很抱歉，暫時無法理解您的訊息。請點選下方按鈕查看所有服務項目。",
		"查看服務",
		url,
	)
}
