package tally_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/garrettladley/tally/internal/client/tally"
	"github.com/garrettladley/tally/internal/client/tally/tallytest"
	"github.com/garrettladley/tally/internal/xslog"
)

func newClient(t *testing.T, srv *tallytest.Server) *tally.Client {
	t.Helper()
	return tally.New(srv.URL, tally.WithLogger(xslog.Discard()))
}

func TestClientList(t *testing.T) {
	t.Parallel()

	counters := []tally.Counter{{ID: 1, Label: "A", Value: 3}, {ID: 2, Label: "B", Value: -1}}
	causes := []tally.Cause{{Cause: "X", Value: 1, Color: "#ff0000"}}
	srv := tallytest.New(t, tallytest.WithCounters(counters...), tallytest.WithCauses(causes...))
	client := newClient(t, srv)

	gotCounters, err := client.Counters.List(t.Context())
	if err != nil {
		t.Fatalf("Counters.List() error = %v", err)
	}
	if diff := cmp.Diff(counters, gotCounters); diff != "" {
		t.Errorf("Counters.List() mismatch (-want +got):\n%s", diff)
	}

	gotCauses, err := client.Causes.List(t.Context())
	if err != nil {
		t.Fatalf("Causes.List() error = %v", err)
	}
	if diff := cmp.Diff(causes, gotCauses); diff != "" {
		t.Errorf("Causes.List() mismatch (-want +got):\n%s", diff)
	}
}

func TestClientListEmptyIsNotNil(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("null"))
	}))
	t.Cleanup(srv.Close)

	client := tally.New(srv.URL, tally.WithLogger(xslog.Discard()))
	got, err := client.Counters.List(t.Context())
	if err != nil {
		t.Fatalf("Counters.List() error = %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("Counters.List() = %#v, want empty non-nil slice", got)
	}
}

func TestClientWrites(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		call     func(ctx context.Context, c *tally.Client) error
		wantPath string
		wantBody map[string]any
	}{
		{
			name:     "increment counter",
			call:     func(ctx context.Context, c *tally.Client) error { return c.Counters.Increment(ctx, 1) },
			wantPath: "/increment",
			wantBody: map[string]any{"id": float64(1)},
		},
		{
			name:     "decrement counter",
			call:     func(ctx context.Context, c *tally.Client) error { return c.Counters.Decrement(ctx, 1) },
			wantPath: "/decrement",
			wantBody: map[string]any{"id": float64(1)},
		},
		{
			name:     "add person",
			call:     func(ctx context.Context, c *tally.Client) error { return c.Counters.Add(ctx, "Carol") },
			wantPath: "/add-person",
			wantBody: map[string]any{"label": "Carol"},
		},
		{
			name:     "remove person",
			call:     func(ctx context.Context, c *tally.Client) error { return c.Counters.Remove(ctx, 1) },
			wantPath: "/remove-person",
			wantBody: map[string]any{"id": float64(1)},
		},
		{
			name:     "increment cause",
			call:     func(ctx context.Context, c *tally.Client) error { return c.Causes.Increment(ctx, "X") },
			wantPath: "/increment-cause",
			wantBody: map[string]any{"cause": "X"},
		},
		{
			name:     "decrement cause",
			call:     func(ctx context.Context, c *tally.Client) error { return c.Causes.Decrement(ctx, "X") },
			wantPath: "/decrement-cause",
			wantBody: map[string]any{"cause": "X"},
		},
		{
			name:     "add cause",
			call:     func(ctx context.Context, c *tally.Client) error { return c.Causes.Add(ctx, "Y", "#1a2b3c") },
			wantPath: "/add-cause",
			wantBody: map[string]any{"cause": "Y", "color": "#1a2b3c"},
		},
		{
			name:     "remove cause",
			call:     func(ctx context.Context, c *tally.Client) error { return c.Causes.Remove(ctx, "X") },
			wantPath: "/remove-cause",
			wantBody: map[string]any{"cause": "X"},
		},
		{
			name:     "authenticate",
			call:     func(ctx context.Context, c *tally.Client) error { return c.Auth.Authenticate(ctx, "hunter2") },
			wantPath: "/auth",
			wantBody: map[string]any{"password": "hunter2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := tallytest.New(t,
				tallytest.WithCounters(tally.Counter{ID: 1, Label: "A"}),
				tallytest.WithCauses(tally.Cause{Cause: "X", Color: "#ff0000"}),
			)
			client := newClient(t, srv)

			if err := tt.call(t.Context(), client); err != nil {
				t.Fatalf("call error = %v", err)
			}

			reqs := srv.Requests()
			if len(reqs) != 1 {
				t.Fatalf("got %d requests, want exactly 1", len(reqs))
			}
			want := tallytest.Request{
				Method:      http.MethodPost,
				Path:        tt.wantPath,
				ContentType: "application/json",
				Body:        tt.wantBody,
			}
			if diff := cmp.Diff(want, reqs[0]); diff != "" {
				t.Errorf("request mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestClientAuthenticateErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		status      int
		message     string
		password    string
		wantDenied  bool
		wantService bool
		wantMessage string
	}{
		{
			name:     "correct password",
			password: "hunter2",
		},
		{
			name:       "wrong password",
			password:   "nope",
			wantDenied: true,
		},
		{
			name:        "service failure",
			status:      http.StatusInternalServerError,
			message:     "database unavailable",
			password:    "hunter2",
			wantService: true,
			wantMessage: "database unavailable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := tallytest.New(t)
			if tt.status != 0 {
				srv.Fail("/auth", tt.status, tt.message)
			}
			client := newClient(t, srv)

			err := client.Auth.Authenticate(t.Context(), tt.password)
			if got := errors.Is(err, tally.ErrAuthDenied); got != tt.wantDenied {
				t.Errorf("errors.Is(err, ErrAuthDenied) = %v, want %v (err = %v)", got, tt.wantDenied, err)
			}
			svcErr := tally.AsServiceError(err)
			if (svcErr != nil) != tt.wantService {
				t.Fatalf("AsServiceError(err) = %v, want service error %v", svcErr, tt.wantService)
			}
			if svcErr != nil && svcErr.Message != tt.wantMessage {
				t.Errorf("ServiceError.Message = %q, want %q", svcErr.Message, tt.wantMessage)
			}
			if !tt.wantDenied && !tt.wantService && err != nil {
				t.Errorf("Authenticate() error = %v, want nil", err)
			}
		})
	}
}

func TestClientUnauthorizedOutsideAuthIsServiceError(t *testing.T) {
	t.Parallel()

	srv := tallytest.New(t, tallytest.WithCounters(tally.Counter{ID: 1, Label: "A"}))
	srv.Fail("/increment", http.StatusUnauthorized, "edit not allowed")
	client := newClient(t, srv)

	err := client.Counters.Increment(t.Context(), 1)
	if errors.Is(err, tally.ErrAuthDenied) {
		t.Fatalf("Increment() error = %v, must not be ErrAuthDenied", err)
	}
	svcErr := tally.AsServiceError(err)
	if svcErr == nil {
		t.Fatalf("Increment() error = %v, want *ServiceError", err)
	}
	if svcErr.StatusCode != http.StatusUnauthorized || svcErr.Op != tally.OpIncrementCounter {
		t.Errorf("ServiceError = %+v, want 401 on %s", svcErr, tally.OpIncrementCounter)
	}
}

func TestClientServiceErrorMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		body        string
		wantMessage string
	}{
		{name: "message field", body: `{"message":"nope"}`, wantMessage: "nope"},
		{name: "error field", body: `{"error":"bad_thing"}`, wantMessage: "bad_thing"},
		{name: "plain text body", body: "boom", wantMessage: "Bad Gateway"},
		{name: "empty body", body: "", wantMessage: "Bad Gateway"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusBadGateway)
				_, _ = w.Write([]byte(tt.body))
			}))
			t.Cleanup(srv.Close)

			client := tally.New(srv.URL, tally.WithLogger(xslog.Discard()))
			_, err := client.Causes.List(t.Context())
			svcErr := tally.AsServiceError(err)
			if svcErr == nil {
				t.Fatalf("Causes.List() error = %v, want *ServiceError", err)
			}
			if svcErr.Message != tt.wantMessage {
				t.Errorf("Message = %q, want %q", svcErr.Message, tt.wantMessage)
			}
		})
	}
}

func TestClientMalformedReadBody(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("{not json"))
	}))
	t.Cleanup(srv.Close)

	client := tally.New(srv.URL, tally.WithLogger(xslog.Discard()))
	_, err := client.Counters.List(t.Context())
	if svcErr := tally.AsServiceError(err); svcErr == nil || svcErr.Cause == nil {
		t.Fatalf("Counters.List() error = %v, want *ServiceError with decode cause", err)
	}
}

func TestClientTransportError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	client := tally.New(url, tally.WithLogger(xslog.Discard()))

	_, err := client.Counters.List(t.Context())
	if !tally.IsTransport(err) {
		t.Fatalf("Counters.List() error = %v, want *TransportError", err)
	}

	err = client.Auth.Authenticate(t.Context(), "hunter2")
	if !tally.IsTransport(err) || errors.Is(err, tally.ErrAuthDenied) {
		t.Fatalf("Authenticate() error = %v, want *TransportError", err)
	}
}
