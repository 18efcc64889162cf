package gmail_test

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"executive-assistant/pkg/gmail"
)

type rewriteTransport struct {
	Transport http.RoundTripper
	Host      string
}

func (t *rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.URL.Scheme = "http"
	req.URL.Host = t.Host
	return t.Transport.RoundTrip(req)
}

func newTestClient(t *testing.T, handler http.HandlerFunc, opts ...gmail.Option) *gmail.Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	httpClient := &http.Client{Transport: &rewriteTransport{
		Transport: http.DefaultTransport,
		Host:      strings.TrimPrefix(server.URL, "http://"),
	}}
	c, err := gmail.NewClientFromHTTP(context.Background(), httpClient, opts...)
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}
	return c
}

func TestClient_Send(t *testing.T) {
	var raw string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || !strings.HasSuffix(r.URL.Path, "/users/me/messages/send") {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		body, _ := io.ReadAll(r.Body)
		var msg struct {
			Raw string `json:"raw"`
		}
		_ = json.Unmarshal(body, &msg)
		decoded, err := base64.URLEncoding.DecodeString(msg.Raw)
		if err != nil {
			t.Errorf("raw is not base64url: %v", err)
		}
		raw = string(decoded)
		w.Write([]byte(`{"id":"m1"}`))
	}, gmail.WithSender("bot@example.com", "Apex"))

	err := c.Send(context.Background(), gmail.SendRequest{To: "boss@example.com", Subject: "Relatório", HTMLBody: "<p>ok</p>"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{"To: boss@example.com", "From: \"Apex\" <bot@example.com>", "text/html", "<p>ok</p>", "=?utf-8?q?"} {
		if !strings.Contains(raw, want) {
			t.Errorf("raw message missing %q:\n%s", want, raw)
		}
	}
}

func TestClient_SendEmptyRecipient(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected request")
	})
	if err := c.Send(context.Background(), gmail.SendRequest{Subject: "x"}); err == nil {
		t.Errorf("expected error for empty recipient")
	}
}

func TestClient_Search(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasSuffix(r.URL.Path, "/users/me/messages"):
			if q := r.URL.Query().Get("q"); q != "in:inbox is:unread subject:(passagem)" {
				t.Errorf("unexpected query %q", q)
			}
			if n := r.URL.Query().Get("maxResults"); n != "3" {
				t.Errorf("unexpected maxResults %q", n)
			}
			w.Write([]byte(`{"messages":[{"id":"a"}]}`))
		case strings.HasSuffix(r.URL.Path, "/users/me/messages/a"):
			w.Write([]byte(`{
				"id":"a",
				"snippet":"segue a passagem",
				"labelIds":["INBOX","UNREAD"],
				"payload":{"headers":[
					{"name":"From","value":"Ana <ana@example.com>"},
					{"name":"Subject","value":"=?UTF-8?Q?Passagem_a=C3=A9rea?="},
					{"name":"Date","value":"Mon, 02 Jan 2006 15:04:05 -0300"}
				]}
			}`))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	})

	msgs, err := c.Search(context.Background(), gmail.SearchRequest{Query: "subject:(passagem)", UnreadOnly: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(msgs) != 1 {
		t.Fatalf("expected 1 message, got %d", len(msgs))
	}
	m := msgs[0]
	if m.Subject != "Passagem aérea" || m.From != "Ana <ana@example.com>" || !m.Unread || m.Date.Year() != 2006 {
		t.Errorf("unexpected message: %+v", m)
	}
}

func TestBuildQuery(t *testing.T) {
	if got := gmail.BuildQuery("", false); got != "in:inbox" {
		t.Errorf("got %q", got)
	}
	if got := gmail.BuildQuery(" fatura ", true); got != "in:inbox is:unread fatura" {
		t.Errorf("got %q", got)
	}
}

func TestNewClientFromJSON(t *testing.T) {
	creds := `{"installed":{"client_id":"id","client_secret":"s","redirect_uris":["http://localhost"],"auth_uri":"https://accounts.google.com/o/oauth2/auth","token_uri":"https://oauth2.googleapis.com/token"}}`

	if _, err := gmail.NewClientFromJSON(context.Background(), []byte(`{"broken":true}`), []byte(`{}`)); err == nil {
		t.Errorf("expected credentials error")
	}
	if _, err := gmail.NewClientFromJSON(context.Background(), []byte(creds), []byte(`{"broken"`)); err == nil {
		t.Errorf("expected token error")
	}
	if _, err := gmail.NewClientFromJSON(context.Background(), []byte(creds), []byte(`{"access_token":"x","token_type":"Bearer"}`)); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
