// Package tallytest provides an in-memory counting service for tests.
package tallytest

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"slices"
	"sync"
	"testing"

	go_json "github.com/goccy/go-json"

	"github.com/garrettladley/tally/internal/client/tally"
	"github.com/garrettladley/tally/internal/xhttp"
)

// Request is one call recorded by the fake service.
type Request struct {
	Method      string
	Path        string
	ContentType string
	Body        map[string]any
}

type failure struct {
	status  int
	message string
}

type Server struct {
	*httptest.Server

	mu       sync.Mutex
	counters []tally.Counter
	causes   []tally.Cause
	nextID   int64
	password string
	requests []Request
	failures map[string]failure
}

type Option func(*Server)

func WithCounters(counters ...tally.Counter) Option {
	return func(s *Server) {
		s.counters = slices.Clone(counters)
		for _, c := range counters {
			s.nextID = max(s.nextID, c.ID)
		}
	}
}

func WithCauses(causes ...tally.Cause) Option {
	return func(s *Server) { s.causes = slices.Clone(causes) }
}

func WithPassword(password string) Option {
	return func(s *Server) { s.password = password }
}

// New starts a fake service that is closed when the test ends.
func New(t testing.TB, opts ...Option) *Server {
	t.Helper()

	s := &Server{
		counters: []tally.Counter{},
		causes:   []tally.Cause{},
		password: "hunter2",
		failures: make(map[string]failure),
	}
	for _, opt := range opts {
		opt(s)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /counters", s.listCounters)
	mux.HandleFunc("GET /causes", s.listCauses)
	mux.HandleFunc("POST /auth", s.auth)
	mux.HandleFunc("POST /increment", s.adjustCounter(1))
	mux.HandleFunc("POST /decrement", s.adjustCounter(-1))
	mux.HandleFunc("POST /increment-cause", s.adjustCause(1))
	mux.HandleFunc("POST /decrement-cause", s.adjustCause(-1))
	mux.HandleFunc("POST /add-person", s.addPerson)
	mux.HandleFunc("POST /remove-person", s.removePerson)
	mux.HandleFunc("POST /add-cause", s.addCause)
	mux.HandleFunc("POST /remove-cause", s.removeCause)

	s.Server = httptest.NewServer(s.record(mux))
	t.Cleanup(s.Close)
	return s
}

// Fail makes every following request to path answer status with message.
func (s *Server) Fail(path string, status int, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[path] = failure{status: status, message: message}
}

// Recover undoes Fail for path.
func (s *Server) Recover(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.failures, path)
}

func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.requests)
}

// Count returns how many requests hit path.
func (s *Server) Count(path string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int
	for _, r := range s.requests {
		if r.Path == path {
			n++
		}
	}
	return n
}

func (s *Server) ResetRequests() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests = nil
}

func (s *Server) Counters() []tally.Counter {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.counters)
}

func (s *Server) Causes() []tally.Cause {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.causes)
}

// SetCounters replaces the service-side counters, simulating another editor.
func (s *Server) SetCounters(counters ...tally.Counter) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counters = slices.Clone(counters)
}

func (s *Server) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)

		var body map[string]any
		if len(raw) > 0 {
			_ = go_json.Unmarshal(raw, &body)
		}

		s.mu.Lock()
		s.requests = append(s.requests, Request{
			Method:      r.Method,
			Path:        r.URL.Path,
			ContentType: r.Header.Get(xhttp.ContentType),
			Body:        body,
		})
		f, failing := s.failures[r.URL.Path]
		s.mu.Unlock()

		if failing {
			xhttp.WriteMessage(w, f.status, f.message)
			return
		}

		r.Body = io.NopCloser(bytes.NewReader(raw))
		next.ServeHTTP(w, r)
	})
}

func (s *Server) listCounters(w http.ResponseWriter, _ *http.Request) {
	xhttp.WriteOK(w, s.Counters())
}

func (s *Server) listCauses(w http.ResponseWriter, _ *http.Request) {
	xhttp.WriteOK(w, s.Causes())
}

func (s *Server) auth(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Password string `json:"password"`
	}
	if !decode(w, r, &req) {
		return
	}
	if req.Password != s.password {
		xhttp.WriteMessage(w, http.StatusUnauthorized, "incorrect password")
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (s *Server) adjustCounter(delta int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			ID int64 `json:"id"`
		}
		if !decode(w, r, &req) {
			return
		}

		s.mu.Lock()
		defer s.mu.Unlock()
		idx := slices.IndexFunc(s.counters, func(c tally.Counter) bool { return c.ID == req.ID })
		if idx == -1 {
			xhttp.WriteMessage(w, http.StatusNotFound, "counter not found")
			return
		}
		s.counters[idx].Value += delta
		w.WriteHeader(http.StatusOK)
	}
}

func (s *Server) adjustCause(delta int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Cause string `json:"cause"`
		}
		if !decode(w, r, &req) {
			return
		}

		s.mu.Lock()
		defer s.mu.Unlock()
		idx := slices.IndexFunc(s.causes, func(c tally.Cause) bool { return c.Cause == req.Cause })
		if idx == -1 {
			xhttp.WriteMessage(w, http.StatusNotFound, "cause not found")
			return
		}
		s.causes[idx].Value += delta
		w.WriteHeader(http.StatusOK)
	}
}

func (s *Server) addPerson(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Label string `json:"label"`
	}
	if !decode(w, r, &req) {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	s.counters = append(s.counters, tally.Counter{ID: s.nextID, Label: req.Label})
	w.WriteHeader(http.StatusCreated)
}

func (s *Server) removePerson(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ID int64 `json:"id"`
	}
	if !decode(w, r, &req) {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.counters = slices.DeleteFunc(s.counters, func(c tally.Counter) bool { return c.ID == req.ID })
	w.WriteHeader(http.StatusOK)
}

func (s *Server) addCause(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Cause string `json:"cause"`
		Color string `json:"color"`
	}
	if !decode(w, r, &req) {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if slices.ContainsFunc(s.causes, func(c tally.Cause) bool { return c.Cause == req.Cause }) {
		xhttp.WriteMessage(w, http.StatusConflict, "cause already exists")
		return
	}
	s.causes = append(s.causes, tally.Cause{Cause: req.Cause, Color: req.Color})
	w.WriteHeader(http.StatusCreated)
}

func (s *Server) removeCause(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Cause string `json:"cause"`
	}
	if !decode(w, r, &req) {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.causes = slices.DeleteFunc(s.causes, func(c tally.Cause) bool { return c.Cause == req.Cause })
	w.WriteHeader(http.StatusOK)
}

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := go_json.NewDecoder(r.Body).Decode(v); err != nil {
		xhttp.WriteMessage(w, http.StatusBadRequest, "malformed body")
		return false
	}
	return true
}
