package tally

import "context"

type CounterService interface {
	List(ctx context.Context) ([]Counter, error)
	Increment(ctx context.Context, id int64) error
	Decrement(ctx context.Context, id int64) error
	Add(ctx context.Context, label string) error
	Remove(ctx context.Context, id int64) error
}

type CauseService interface {
	List(ctx context.Context) ([]Cause, error)
	Increment(ctx context.Context, cause string) error
	Decrement(ctx context.Context, cause string) error
	Add(ctx context.Context, cause string, color string) error
	Remove(ctx context.Context, cause string) error
}

type AuthService interface {
	// Authenticate exchanges a password for edit capability. It returns
	// ErrAuthDenied when the service rejects the password.
	Authenticate(ctx context.Context, password string) error
}
