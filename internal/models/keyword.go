package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Keyword categories, in the fixed order used by the export pipeline.
const (
	CategoryCheckin  = "checkin"
	CategoryService  = "service"
	CategorySchedule = "schedule"
	CategoryOther    = "other"
)

// CategoryOrder is the deterministic ordering used for exports and admin lists.
var CategoryOrder = []string{CategoryCheckin, CategoryService, CategorySchedule, CategoryOther}

// Action types. Exactly one shape is populated per record.
const (
	ActionDirectLink   = "direct"
	ActionComposedLink = "composed"
	ActionStaticText   = "text"
)

// Reply types as stored in the remote document.
const (
	ReplyTemplate = "template"
	ReplyText     = "text"
)

var ErrInvalidAction = errors.New("exactly one action shape must be populated")

// Action is the tagged union of the three reply actions a keyword can carry.
// DirectLink holds a fully-qualified URL in LIFFURL. ComposedLink holds a
// LIFF app name plus an app-relative path, resolved to a URL by the reply
// builder. StaticText carries no link at all.
type Action struct {
	Type    string `json:"type"`
	LIFFURL string `json:"liffUrl,omitempty"`
	LIFFApp string `json:"liffApp,omitempty"`
	Path    string `json:"path,omitempty"`
}

// Validate checks the one-of invariant for the action shape.
func (a Action) Validate() error {
	switch a.Type {
	case ActionDirectLink:
		if a.LIFFURL == "" || a.LIFFApp != "" || a.Path != "" {
			return ErrInvalidAction
		}
	case ActionComposedLink:
		if a.LIFFApp == "" || a.LIFFURL != "" {
			return ErrInvalidAction
		}
	case ActionStaticText:
		if a.LIFFURL != "" || a.LIFFApp != "" || a.Path != "" {
			return ErrInvalidAction
		}
	default:
		return ErrInvalidAction
	}
	return nil
}

// ReplyPayload holds the display fields for the outbound message.
// AltText and Label are required for link actions; StaticText uses Text only.
type ReplyPayload struct {
	AltText string `json:"altText,omitempty"`
	Text    string `json:"text"`
	Label   string `json:"label,omitempty"`
}

// KeywordRecord is the unit of routing: one trigger phrase (plus aliases)
// mapped to a reply action.
type KeywordRecord struct {
	ID                uuid.UUID    `json:"id"`
	Keyword           string       `json:"keyword"`
	NormalizedKeyword string       `json:"normalized_keyword"`
	Aliases           []string     `json:"aliases"`
	Category          string       `json:"category"`
	Priority          int          `json:"priority"`
	Enabled           bool         `json:"enabled"`
	Action            Action       `json:"action"`
	ReplyPayload      ReplyPayload `json:"reply_payload"`
	Description       string       `json:"description"`
	CreatedBy         string       `json:"created_by"`
	CreatedAt         time.Time    `json:"created_at"`
	UpdatedBy         string       `json:"updated_by"`
	UpdatedAt         time.Time    `json:"updated_at"`
}

// ReplyType returns the wire reply type implied by the action shape.
func (r *KeywordRecord) ReplyType() string {
	if r.Action.Type == ActionStaticText {
		return ReplyText
	}
	return ReplyTemplate
}
