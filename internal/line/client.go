package line

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/guimashan/platfrom-sub000/internal/config"
)

// DefaultEndpoint is the Messaging API base URL.
const DefaultEndpoint = "https://api.line.me"

// Client sends reply and push messages through the Messaging API.
type Client struct {
	cfg      *config.Config
	endpoint string
	http     *http.Client
	enabled  bool
}

// NewClient creates a messaging client. When no channel access token is
// configured the client is disabled and sends become logged no-ops, so the
// webhook path still works in local development.
func NewClient(cfg *config.Config) *Client {
	c := &Client{
		cfg:      cfg,
		endpoint: DefaultEndpoint,
		http:     &http.Client{Timeout: 10 * time.Second},
		enabled:  cfg.ChannelAccessToken != "",
	}

	if c.enabled {
		log.Println("LINE messaging client enabled")
	} else {
		log.Println("LINE messaging client disabled (CHANNEL_ACCESS_TOKEN not set)")
	}

	return c
}

// SetEndpoint overrides the API base URL. Used by tests.
func (c *Client) SetEndpoint(endpoint string) {
	c.endpoint = endpoint
}

// replyRequest is the wire shape of the reply endpoint body.
type replyRequest struct {
	ReplyToken string    `json:"replyToken"`
	Messages   []Message `json:"messages"`
}

// pushRequest is the wire shape of the push endpoint body.
type pushRequest struct {
	To       string    `json:"to"`
	Messages []Message `json:"messages"`
}

// Reply sends messages in answer to a webhook event. The reply token is
// single-use and expires quickly, so there is no retry; a failed reply is
// the caller's signal to log and move on.
func (c *Client) Reply(ctx context.Context, replyToken string, messages ...Message) error {
	if !c.enabled {
		log.Printf("LINE reply skipped (client disabled): token=%s messages=%d", replyToken, len(messages))
		return nil
	}
	return c.post(ctx, "/v2/bot/message/reply", replyRequest{
		ReplyToken: replyToken,
		Messages:   messages,
	})
}

// Push sends messages to a user outside a reply window.
func (c *Client) Push(ctx context.Context, to string, messages ...Message) error {
	if !c.enabled {
		log.Printf("LINE push skipped (client disabled): to=%s messages=%d", to, len(messages))
		return nil
	}
	return c.post(ctx, "/v2/bot/message/push", pushRequest{
		To:       to,
		Messages: messages,
	})
}

func (c *Client) post(ctx context.Context, path string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.ChannelAccessToken)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("line api %s returned %d: %s", path, resp.StatusCode, string(detail))
	}

	return nil
}
