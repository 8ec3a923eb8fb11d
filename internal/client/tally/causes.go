package tally

import (
	"context"
	"net/http"
)

type causeService struct {
	client *Client
}

func (s *causeService) List(ctx context.Context) ([]Cause, error) {
	const route = "/causes"

	var causes []Cause
	if err := s.client.do(ctx, OpListCauses, http.MethodGet, route, nil, &causes); err != nil {
		return nil, err
	}
	if causes == nil {
		causes = []Cause{}
	}
	return causes, nil
}

func (s *causeService) Increment(ctx context.Context, cause string) error {
	const route = "/increment-cause"
	return s.client.do(ctx, OpIncrementCause, http.MethodPost, route, causeRequest{Cause: cause}, nil)
}

func (s *causeService) Decrement(ctx context.Context, cause string) error {
	const route = "/decrement-cause"
	return s.client.do(ctx, OpDecrementCause, http.MethodPost, route, causeRequest{Cause: cause}, nil)
}

func (s *causeService) Add(ctx context.Context, cause string, color string) error {
	const route = "/add-cause"
	return s.client.do(ctx, OpAddCause, http.MethodPost, route, addCauseRequest{Cause: cause, Color: color}, nil)
}

func (s *causeService) Remove(ctx context.Context, cause string) error {
	const route = "/remove-cause"
	return s.client.do(ctx, OpRemoveCause, http.MethodPost, route, causeRequest{Cause: cause}, nil)
}
