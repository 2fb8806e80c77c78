package keyword

import (
	"fmt"

	"github.com/guimashan/platfrom-sub000/internal/line"
	"github.com/guimashan/platfrom-sub000/internal/models"
)

// BuildReply turns a matched record into an outbound message. Link actions
// become a single-button template; StaticText becomes a plain text message.
// ComposedLink resolution happens here, not in the matcher, so an unknown
// LIFF app surfaces as a hard error rather than a silently dropped match.
// BuildReply never invents a default; no-match handling belongs to the caller.
func BuildReply(rec models.KeywordRecord, reg *Registry) (line.Message, error) {
	switch rec.Action.Type {
	case models.ActionStaticText:
		return line.NewText(rec.ReplyPayload.Text), nil

	case models.ActionDirectLink:
		return buttonsFor(rec, rec.Action.LIFFURL), nil

	case models.ActionComposedLink:
		url, err := reg.ResolveURL(rec.Action.LIFFApp, rec.Action.Path)
		if err != nil {
			return nil, fmt.Errorf("keyword %q: %w", rec.Keyword, err)
		}
		return buttonsFor(rec, url), nil

	default:
		return nil, fmt.Errorf("keyword %q: %w", rec.Keyword, models.ErrInvalidAction)
	}
}

func buttonsFor(rec models.KeywordRecord, url string) line.TemplateMessage {
	altText := rec.ReplyPayload.AltText
	if altText == "" {
		altText = rec.ReplyPayload.Text
	}
	label := rec.ReplyPayload.Label
	if label == "" {
		label = "開啟"
	}
	return line.NewButtons(altText, rec.ReplyPayload.Text, label, url)
}
