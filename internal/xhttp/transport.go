package xhttp

import (
	"fmt"
	"net/http"

	"github.com/garrettladley/tally/internal/version"
)

type tallyTransport struct {
	base      http.RoundTripper
	sessionID string
}

var _ http.RoundTripper = (*tallyTransport)(nil)

func (t *tallyTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.Header.Set(UserAgent, "tally/"+version.Get())
	req.Header.Set(version.Header, version.Get())
	if t.sessionID != "" {
		SetRequestHeaderSessionID(req, t.sessionID)
	}
	resp, err := t.base.RoundTrip(req)
	if err != nil {
		return nil, fmt.Errorf("failed to perform round trip: %w", err)
	}
	return resp, nil
}

type TransportOption func(*tallyTransport)

// WithSessionID tags every request with the client session, so service logs
// can group the requests of one running board.
func WithSessionID(id string) TransportOption {
	return func(t *tallyTransport) { t.sessionID = id }
}

func WithBase(base http.RoundTripper) TransportOption {
	return func(t *tallyTransport) { t.base = base }
}

// NewTransport returns an http.RoundTripper with standard tally headers.
func NewTransport(opts ...TransportOption) http.RoundTripper {
	t := &tallyTransport{base: http.DefaultTransport}
	for _, opt := range opts {
		opt(t)
	}
	return t
}
