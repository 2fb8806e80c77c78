// Package line implements the LINE Messaging API surface this service
// touches: webhook signature validation, outbound message shapes and the
// reply/push client.
package line

// Message is an outbound LINE message payload. The concrete shapes below
// marshal directly to the Messaging API wire format.
type Message interface {
	messageType() string
}

// TextMessage is a plain text reply.
type TextMessage struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

func (TextMessage) messageType() string { return "text" }

// NewText creates a plain text message.
func NewText(text string) TextMessage {
	return TextMessage{Type: "text", Text: text}
}

// TemplateMessage is a buttons-template reply with a single URI action.
type TemplateMessage struct {
	Type     string          `json:"type"`
	AltText  string          `json:"altText"`
	Template ButtonsTemplate `json:"template"`
}

func (TemplateMessage) messageType() string { return "template" }

// ButtonsTemplate is the template body of a TemplateMessage.
type ButtonsTemplate struct {
	Type    string      `json:"type"`
	Text    string      `json:"text"`
	Actions []URIAction `json:"actions"`
}

// URIAction is a template button that opens a URL.
type URIAction struct {
	Type  string `json:"type"`
	Label string `json:"label"`
	URI   string `json:"uri"`
}

// NewButtons creates a single-button template message linking to uri.
func NewButtons(altText, text, label, uri string) TemplateMessage {
	return TemplateMessage{
		Type:    "template",
		AltText: altText,
		Template: ButtonsTemplate{
			Type: "buttons",
			Text: text,
			Actions: []URIAction{
				{Type: "uri", Label: label, URI: uri},
			},
		},
	}
}
