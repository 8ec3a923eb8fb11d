// Package auth holds the edit-authorization state of a running board.
//
// A Session starts Unauthenticated. A password exchange with the counting
// service moves it to Authenticated, or to Denied with a reason the user can
// read. Nothing is persisted: a new process starts Unauthenticated again, and
// the password is only held for the duration of a single exchange.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/garrettladley/tally/internal/client/tally"
	"github.com/garrettladley/tally/internal/xslog"
)

// ReasonIncorrectPassword is the Denied reason for a rejected password.
const ReasonIncorrectPassword = "Incorrect Password"

type State uint

const (
	Unauthenticated State = iota
	Authenticated
	Denied
)

func (s State) String() string {
	switch s {
	case Unauthenticated:
		return "unauthenticated"
	case Authenticated:
		return "authenticated"
	case Denied:
		return "denied"
	default:
		return fmt.Sprintf("state(%d)", uint(s))
	}
}

// Authenticator exchanges a password with the counting service.
type Authenticator interface {
	Authenticate(ctx context.Context, password string) error
}

type Session struct {
	auth   Authenticator
	logger *slog.Logger

	mu     sync.RWMutex
	state  State
	reason string
}

func NewSession(auth Authenticator, logger *slog.Logger) *Session {
	return &Session{auth: auth, logger: logger}
}

// Login performs one password exchange and returns the resulting state.
// The session does not keep the password.
func (s *Session) Login(ctx context.Context, password string) State {
	err := s.auth.Authenticate(ctx, password)

	s.mu.Lock()
	defer s.mu.Unlock()

	switch {
	case err == nil:
		s.state, s.reason = Authenticated, ""
		s.logger.InfoContext(ctx, "edit session granted")
	case errors.Is(err, tally.ErrAuthDenied):
		s.state, s.reason = Denied, ReasonIncorrectPassword
		s.logger.WarnContext(ctx, "edit session denied", xslog.State(s.state.String()))
	default:
		s.state, s.reason = Denied, denialReason(err)
		s.logger.WarnContext(ctx, "password exchange failed", xslog.Error(err))
	}

	return s.state
}

// Edit signals that the user changed the password input. A pending denial is
// cleared so the message disappears as soon as they start typing again.
func (s *Session) Edit() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == Denied {
		s.state, s.reason = Unauthenticated, ""
	}
}

// Exit leaves edit mode locally. The service is not contacted.
func (s *Session) Exit() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state, s.reason = Unauthenticated, ""
}

func (s *Session) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Reason is the human-readable message for a Denied session, empty otherwise.
func (s *Session) Reason() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.reason
}

// CanEdit reports whether mutating controls should be enabled.
func (s *Session) CanEdit() bool {
	return s.State() == Authenticated
}

func denialReason(err error) string {
	if svcErr := tally.AsServiceError(err); svcErr != nil {
		return svcErr.Message
	}
	var te *tally.TransportError
	if errors.As(err, &te) {
		return fmt.Sprintf("Error submitting password: %v", te.Err)
	}
	return fmt.Sprintf("Error submitting password: %v", err)
}
