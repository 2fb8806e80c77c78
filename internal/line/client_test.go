package line

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/guimashan/platfrom-sub000/internal/config"
)

func testClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := NewClient(&config.Config{ChannelAccessToken: "test-token"})
	client.SetEndpoint(srv.URL)
	return client, srv
}

func TestReply(t *testing.T) {
	var gotPath, gotAuth string
	var gotBody []byte

	client, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	})

	err := client.Reply(context.Background(), "reply-token-1", NewText("安太歲服務已開放報名"))
	if err != nil {
		t.Fatalf("Reply error: %v", err)
	}

	if gotPath != "/v2/bot/message/reply" {
		t.Errorf("path = %q", gotPath)
	}
	if gotAuth != "Bearer test-token" {
		t.Errorf("auth = %q", gotAuth)
	}

	var payload struct {
		ReplyToken string `json:"replyToken"`
		Messages   []struct {
			Type string `json:"type"`
			Text string `json:"text"`
		} `json:"messages"`
	}
	if err := json.Unmarshal(gotBody, &payload); err != nil {
		t.Fatalf("decode request body: %v", err)
	}
	if payload.ReplyToken != "reply-token-1" {
		t.Errorf("replyToken = %q", payload.ReplyToken)
	}
	if len(payload.Messages) != 1 || payload.Messages[0].Type != "text" {
		t.Errorf("messages = %+v", payload.Messages)
	}
}

func TestPush(t *testing.T) {
	var gotPath string
	client, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusOK)
	})

	if err := client.Push(context.Background(), "U12345", NewText("hello")); err != nil {
		t.Fatalf("Push error: %v", err)
	}
	if gotPath != "/v2/bot/message/push" {
		t.Errorf("path = %q", gotPath)
	}
}

func TestReplyAPIError(t *testing.T) {
	client, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message":"Invalid reply token"}`))
	})

	err := client.Reply(context.Background(), "expired-token", NewText("hi"))
	if err == nil {
		t.Fatal("Reply returned nil error for 400 response")
	}
	if !strings.Contains(err.Error(), "400") || !strings.Contains(err.Error(), "Invalid reply token") {
		t.Errorf("error = %v", err)
	}
}

func TestDisabledClientNoOps(t *testing.T) {
	client := NewClient(&config.Config{})

	if err := client.Reply(context.Background(), "token", NewText("hi")); err != nil {
		t.Errorf("disabled Reply error: %v", err)
	}
	if err := client.Push(context.Background(), "U12345", NewText("hi")); err != nil {
		t.Errorf("disabled Push error: %v", err)
	}
}
