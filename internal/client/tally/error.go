package tally

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	go_json "github.com/goccy/go-json"
)

const (
	OpListCounters     = "list_counters"
	OpListCauses       = "list_causes"
	OpAuthenticate     = "authenticate"
	OpIncrementCounter = "increment_counter"
	OpDecrementCounter = "decrement_counter"
	OpIncrementCause   = "increment_cause"
	OpDecrementCause   = "decrement_cause"
	OpAddPerson        = "add_person"
	OpRemovePerson     = "remove_person"
	OpAddCause         = "add_cause"
	OpRemoveCause      = "remove_cause"
)

// ErrAuthDenied is returned by AuthService.Authenticate when the service
// answers 401.
var ErrAuthDenied = errors.New("tally: incorrect password")

// TransportError means no response was received: network, DNS or timeout.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("tally %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// ServiceError is any non-success response other than a rejected password.
type ServiceError struct {
	Op         string
	StatusCode int
	Message    string
	Cause      error
}

func (e *ServiceError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("tally %s: %d %s: %v", e.Op, e.StatusCode, e.Message, e.Cause)
	}
	return fmt.Sprintf("tally %s: %d %s", e.Op, e.StatusCode, e.Message)
}

func (e *ServiceError) Unwrap() error { return e.Cause }

func IsTransport(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}

func AsServiceError(err error) *ServiceError {
	var se *ServiceError
	if errors.As(err, &se) {
		return se
	}
	return nil
}

func parseServiceError(op string, resp *http.Response) error {
	fallback := http.StatusText(resp.StatusCode)
	if fallback == "" {
		fallback = resp.Status
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil || len(body) == 0 {
		return &ServiceError{Op: op, StatusCode: resp.StatusCode, Message: fallback}
	}

	var errResp struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := go_json.Unmarshal(body, &errResp); err != nil {
		return &ServiceError{Op: op, StatusCode: resp.StatusCode, Message: fallback}
	}

	msg := errResp.Message
	if msg == "" {
		msg = errResp.Error
	}
	if msg == "" {
		msg = fallback
	}

	return &ServiceError{Op: op, StatusCode: resp.StatusCode, Message: msg}
}
