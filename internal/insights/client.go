// Package insights implements an authenticated client for the Red Hat Hybrid
// Cloud Console API. It exchanges an offline refresh token for short lived
// access tokens and attaches them to every request.
package insights

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"golang.org/x/oauth2"

	ierrors "github.com/redhatinsights/insights-mcp/internal/errors"
)

const (
	TokenEndpoint = "https://sso.redhat.com/auth/realms/redhat-external/protocol/openid-connect/token"
	APIBase       = "https://console.redhat.com/api"
	UserAgent     = "insights-mcp/1.0"
	ClientID      = "rhsm-api"
)

// Config holds the settings for a Client. Only RefreshToken is required.
type Config struct {
	RefreshToken  string
	TokenEndpoint string
	APIBase       string
	UserAgent     string
	ClientID      string
	HTTPClient    *http.Client
	Logger        *slog.Logger
}

func (c Config) withDefaults() Config {
	if c.TokenEndpoint == "" {
		c.TokenEndpoint = TokenEndpoint
	}
	if c.APIBase == "" {
		c.APIBase = APIBase
	}
	if c.UserAgent == "" {
		c.UserAgent = UserAgent
	}
	if c.ClientID == "" {
		c.ClientID = ClientID
	}
	if c.Logger == nil {
		c.Logger = slog.New(slog.DiscardHandler)
	}
	return c
}

// Client performs authenticated calls against the API base. It is safe for
// concurrent use: token refreshes are serialized by the underlying
// oauth2.ReuseTokenSource so at most one refresh is in flight.
type Client struct {
	apiBase    string
	httpClient *http.Client
	tokens     oauth2.TokenSource
	logger     *slog.Logger
}

// NewClient creates a Client holding only the refresh token. The first call
// always performs a refresh-token grant.
func NewClient(cfg Config) (*Client, error) {
	if cfg.RefreshToken == "" {
		return nil, errors.New("refresh token cannot be empty")
	}
	cfg = cfg.withDefaults()

	base := http.DefaultTransport
	if cfg.HTTPClient != nil && cfg.HTTPClient.Transport != nil {
		base = cfg.HTTPClient.Transport
	}
	httpClient := &http.Client{
		Transport: newUserAgentRoundTripper(cfg.UserAgent, base),
		// Redirects surface as status errors and never carry the bearer token.
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
	if cfg.HTTPClient != nil {
		httpClient.Timeout = cfg.HTTPClient.Timeout
	}

	oauthConfig := &oauth2.Config{
		ClientID: cfg.ClientID,
		Endpoint: oauth2.Endpoint{
			TokenURL:  cfg.TokenEndpoint,
			AuthStyle: oauth2.AuthStyleInParams,
		},
	}

	// The token source keeps this context for every refresh; it only carries
	// the HTTP client used to reach the token endpoint.
	tokenCtx := context.WithValue(context.Background(), oauth2.HTTPClient, httpClient)
	tokens := oauthConfig.TokenSource(tokenCtx, &oauth2.Token{RefreshToken: cfg.RefreshToken})

	return &Client{
		apiBase:    strings.TrimRight(cfg.APIBase, "/"),
		httpClient: httpClient,
		tokens:     &loggingTokenSource{src: tokens, logger: cfg.Logger},
		logger:     cfg.Logger,
	}, nil
}

// URL joins the API base and endpoint with exactly one separator.
func (c *Client) URL(endpoint string) string {
	return c.apiBase + "/" + strings.TrimLeft(endpoint, "/")
}

// Get issues a GET request with params encoded in the query string. Slice
// values are sent as repeated keys.
func (c *Client) Get(ctx context.Context, endpoint string, params map[string]any) (any, error) {
	target := c.URL(endpoint)
	if len(params) > 0 {
		target += "?" + encodeQuery(params).Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, ierrors.NewTransportError(http.MethodGet, endpoint, err)
	}
	return c.do(req, endpoint)
}

// Post issues a POST request with body encoded as JSON.
func (c *Client) Post(ctx context.Context, endpoint string, body any) (any, error) {
	var payload io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, ierrors.NewTransportError(http.MethodPost, endpoint, errors.Wrap(err, "encode request body"))
		}
		payload = bytes.NewReader(data)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.URL(endpoint), payload)
	if err != nil {
		return nil, ierrors.NewTransportError(http.MethodPost, endpoint, err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.do(req, endpoint)
}

// do ensures a valid access token, sends req and decodes the JSON response.
// The request is never retried; a 401 after a refresh surfaces as a status
// error.
func (c *Client) do(req *http.Request, endpoint string) (any, error) {
	token, err := c.token(req.Context())
	if err != nil {
		c.logger.Warn("token refresh failed", "method", req.Method, "endpoint", endpoint, "error", err)
		return nil, ierrors.NewRefreshError(err)
	}
	token.SetAuthHeader(req)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("request failed", "method", req.Method, "endpoint", endpoint, "error", err)
		return nil, ierrors.NewTransportError(req.Method, endpoint, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, ierrors.NewTransportError(req.Method, endpoint, errors.Wrap(err, "read response body"))
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Warn("unexpected status code", "method", req.Method, "endpoint", endpoint, "status", resp.StatusCode)
		return nil, ierrors.NewStatusError(req.Method, endpoint, resp.StatusCode, body)
	}

	var result any
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, ierrors.NewDecodeError(req.Method, endpoint, err)
	}
	c.logger.Debug("request completed", "method", req.Method, "endpoint", endpoint, "status", resp.StatusCode)
	return result, nil
}

// token returns a valid access token, giving up when ctx is done. A refresh
// already in flight keeps running and its token is cached for later calls.
func (c *Client) token(ctx context.Context) (*oauth2.Token, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	type result struct {
		tok *oauth2.Token
		err error
	}
	ch := make(chan result, 1)
	go func() {
		tok, err := c.tokens.Token()
		ch <- result{tok, err}
	}()
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case r := <-ch:
		return r.tok, r.err
	}
}

// Close releases idle connections held by the underlying transport.
func (c *Client) Close() error {
	c.httpClient.CloseIdleConnections()
	return nil
}

func encodeQuery(params map[string]any) url.Values {
	values := url.Values{}
	for key, value := range params {
		switch v := value.(type) {
		case nil:
		case []string:
			for _, s := range v {
				values.Add(key, s)
			}
		case []any:
			for _, s := range v {
				values.Add(key, formatValue(s))
			}
		default:
			values.Add(key, formatValue(v))
		}
	}
	return values
}

func formatValue(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return fmt.Sprint(t)
	}
}
