package zoho

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"golang.org/x/oauth2"
)

// Client reads projects and tasks from the Zoho Projects REST API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	pageSize   int
}

// New builds a client whose transport refreshes the access token from the
// configured refresh token.
func New(ctx context.Context, cfg Config) (*Client, error) {
	if cfg.ClientID == "" || cfg.RefreshToken == "" {
		return nil, errors.New("zoho: client id and refresh token are required")
	}
	if cfg.PortalID == "" {
		return nil, errors.New("zoho: portal id is required")
	}

	accounts := strings.TrimRight(firstNonEmpty(cfg.AccountsURL, DefaultAccountsURL), "/")
	oauthCfg := &oauth2.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		Endpoint: oauth2.Endpoint{
			TokenURL:  accounts + tokenPath,
			AuthStyle: oauth2.AuthStyleInParams,
		},
	}
	ts := oauthCfg.TokenSource(ctx, &oauth2.Token{RefreshToken: cfg.RefreshToken})

	return NewClientFromHTTP(oauth2.NewClient(ctx, ts), cfg), nil
}

// NewClientFromHTTP creates a client over a pre-authorised HTTP client.
func NewClientFromHTTP(httpClient *http.Client, cfg Config) *Client {
	pageSize := cfg.PageSize
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	api := strings.TrimRight(firstNonEmpty(cfg.APIURL, DefaultAPIURL), "/")
	return &Client{
		httpClient: httpClient,
		baseURL:    fmt.Sprintf("%s/portal/%s", api, url.PathEscape(cfg.PortalID)),
		pageSize:   pageSize,
	}
}

// ListProjects returns every project of the portal.
func (c *Client) ListProjects(ctx context.Context) ([]Project, error) {
	var all []Project
	err := c.paginate(ctx, "/projects/", func(body []byte) (int, error) {
		var resp projectsResponse
		if err := json.Unmarshal(body, &resp); err != nil {
			return 0, fmt.Errorf("failed to decode projects: %w", err)
		}
		all = append(all, resp.Projects...)
		return len(resp.Projects), nil
	})
	return all, err
}

// ListTasks returns every task of a project.
func (c *Client) ListTasks(ctx context.Context, projectID string) ([]Task, error) {
	var all []Task
	endpoint := fmt.Sprintf("/projects/%s/tasks/", url.PathEscape(projectID))
	err := c.paginate(ctx, endpoint, func(body []byte) (int, error) {
		var resp tasksResponse
		if err := json.Unmarshal(body, &resp); err != nil {
			return 0, fmt.Errorf("failed to decode tasks: %w", err)
		}
		all = append(all, resp.Tasks...)
		return len(resp.Tasks), nil
	})
	return all, err
}

// paginate walks index/range pages until a short page. The API answers an
// empty page with 204.
func (c *Client) paginate(ctx context.Context, endpoint string, page func([]byte) (int, error)) error {
	for index := 0; ; index += c.pageSize {
		q := url.Values{}
		q.Set("index", fmt.Sprint(index))
		q.Set("range", fmt.Sprint(c.pageSize))

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+endpoint+"?"+q.Encode(), nil)
		if err != nil {
			return err
		}
		resp, err := c.httpClient.Do(req)
		if err != nil {
			return fmt.Errorf("zoho %s: %w", endpoint, err)
		}
		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			return fmt.Errorf("zoho %s: read body: %w", endpoint, err)
		}

		switch {
		case resp.StatusCode == http.StatusNoContent:
			return nil
		case resp.StatusCode != http.StatusOK:
			return &APIError{StatusCode: resp.StatusCode, Endpoint: endpoint, Body: string(body)}
		}

		n, err := page(body)
		if err != nil {
			return err
		}
		if n < c.pageSize {
			return nil
		}
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
