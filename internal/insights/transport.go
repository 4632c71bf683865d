package insights

import (
	"log/slog"
	"net/http"
	"sync"

	"golang.org/x/oauth2"
)

// userAgentRoundTripper stamps the identifying User-Agent header on every
// request, including the token endpoint calls made by oauth2.
type userAgentRoundTripper struct {
	transport http.RoundTripper
	userAgent string
}

func newUserAgentRoundTripper(userAgent string, base http.RoundTripper) http.RoundTripper {
	if base == nil {
		base = http.DefaultTransport
	}
	return &userAgentRoundTripper{
		transport: base,
		userAgent: userAgent,
	}
}

// RoundTrip implements the http.RoundTripper interface
func (rt *userAgentRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	// Clone the request to avoid modifying the original
	clonedReq := req.Clone(req.Context())
	clonedReq.Header.Set("User-Agent", rt.userAgent)
	return rt.transport.RoundTrip(clonedReq)
}

// CloseIdleConnections forwards to the wrapped transport so Client.Close can
// release pooled connections.
func (rt *userAgentRoundTripper) CloseIdleConnections() {
	type closeIdler interface{ CloseIdleConnections() }
	if c, ok := rt.transport.(closeIdler); ok {
		c.CloseIdleConnections()
	}
}

// loggingTokenSource records when a new access token was issued.
type loggingTokenSource struct {
	src     oauth2.TokenSource
	logger  *slog.Logger
	mu      sync.Mutex
	current string
}

func (s *loggingTokenSource) Token() (*oauth2.Token, error) {
	tok, err := s.src.Token()
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if tok.AccessToken != s.current {
		s.current = tok.AccessToken
		s.logger.Debug("access token refreshed", "expiry", tok.Expiry)
	}
	return tok, nil
}
