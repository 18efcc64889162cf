package telegram_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"executive-assistant/pkg/telegram"
)

type recorded struct {
	method string
	body   map[string]any
}

type fakeAPI struct {
	mu    sync.Mutex
	calls []recorded
}

func (f *fakeAPI) serve(w http.ResponseWriter, r *http.Request) {
	method := r.URL.Path[strings.LastIndex(r.URL.Path, "/")+1:]
	var body map[string]any
	_ = json.NewDecoder(r.Body).Decode(&body)

	f.mu.Lock()
	f.calls = append(f.calls, recorded{method: method, body: body})
	f.mu.Unlock()

	switch body["text"] {
	case "cause_error":
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"ok": false, "description": "Bad Request: message text is empty"}`))
		return
	case "cause_500":
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	if body["url"] == "needs_secret" && body["secret_token"] != "s3" {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"ok": false, "description": "secret missing"}`))
		return
	}
	w.Write([]byte(`{"ok": true}`))
}

func newBot(t *testing.T) (*telegram.Bot, *fakeAPI) {
	t.Helper()
	api := &fakeAPI{}
	ts := httptest.NewServer(http.HandlerFunc(api.serve))
	t.Cleanup(ts.Close)

	bot := telegram.NewBot("test-token")
	bot.SetAPIURL(ts.URL)
	return bot, api
}

func TestBot_SetWebhook(t *testing.T) {
	ctx := context.Background()
	bot, api := newBot(t)

	require.NoError(t, bot.SetWebhook(ctx, "needs_secret", "s3"))
	err := bot.SetWebhook(ctx, "needs_secret", "")
	var apiErr *telegram.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "setWebhook", apiErr.Method)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "secret missing", apiErr.Description)

	_, hasSecret := api.calls[1].body["secret_token"]
	assert.False(t, hasSecret, "empty secret is omitted")
}

func TestBot_SendMessage(t *testing.T) {
	ctx := context.Background()

	t.Run("plain", func(t *testing.T) {
		bot, api := newBot(t)
		require.NoError(t, bot.SendMessage(ctx, 12345, "Olá"))
		require.Len(t, api.calls, 1)
		assert.Equal(t, "sendMessage", api.calls[0].method)
		assert.Equal(t, float64(12345), api.calls[0].body["chat_id"])
		assert.NotContains(t, api.calls[0].body, "parse_mode")
	})

	t.Run("markdown", func(t *testing.T) {
		bot, api := newBot(t)
		require.NoError(t, bot.SendMarkdown(ctx, 1, "*oi*"))
		assert.Equal(t, telegram.ParseModeMarkdown, api.calls[0].body["parse_mode"])
	})

	t.Run("long text is split", func(t *testing.T) {
		bot, api := newBot(t)
		line := strings.Repeat("a", 100) + "\n"
		require.NoError(t, bot.SendMessage(ctx, 1, strings.Repeat(line, 60)))
		assert.Len(t, api.calls, 2)
	})

	t.Run("api rejection", func(t *testing.T) {
		bot, _ := newBot(t)
		err := bot.SendMessage(ctx, 1, "cause_error")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "message text is empty")
	})

	t.Run("server error", func(t *testing.T) {
		bot, _ := newBot(t)
		err := bot.SendMessage(ctx, 1, "cause_500")
		var apiErr *telegram.APIError
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	})

	t.Run("unreachable", func(t *testing.T) {
		bot := telegram.NewBot("x")
		bot.SetAPIURL("http://127.0.0.1:1")
		assert.Error(t, bot.SendMessage(ctx, 1, "fail"))
	})
}

func TestBot_SendChatAction(t *testing.T) {
	bot, api := newBot(t)
	require.NoError(t, bot.SendChatAction(context.Background(), 7, telegram.ActionTyping))
	assert.Equal(t, "sendChatAction", api.calls[0].method)
	assert.Equal(t, "typing", api.calls[0].body["action"])
}

func TestSplitMessage(t *testing.T) {
	assert.Nil(t, telegram.SplitMessage("  ", 10))
	assert.Equal(t, []string{"curto"}, telegram.SplitMessage("curto", 10))

	chunks := telegram.SplitMessage("linha um\nlinha dois\nlinha três", 12)
	assert.Equal(t, []string{"linha um", "linha dois", "linha três"}, chunks)

	chunks = telegram.SplitMessage(strings.Repeat("é", 25), 10)
	require.Len(t, chunks, 3)
	assert.Equal(t, strings.Repeat("é", 10), chunks[0])
	assert.Equal(t, strings.Repeat("é", 5), chunks[2])
}
