package tally

import (
	"context"
	"net/http"
)

type counterService struct {
	client *Client
}

func (s *counterService) List(ctx context.Context) ([]Counter, error) {
	const route = "/counters"

	var counters []Counter
	if err := s.client.do(ctx, OpListCounters, http.MethodGet, route, nil, &counters); err != nil {
		return nil, err
	}
	if counters == nil {
		counters = []Counter{}
	}
	return counters, nil
}

func (s *counterService) Increment(ctx context.Context, id int64) error {
	const route = "/increment"
	return s.client.do(ctx, OpIncrementCounter, http.MethodPost, route, idRequest{ID: id}, nil)
}

func (s *counterService) Decrement(ctx context.Context, id int64) error {
	const route = "/decrement"
	return s.client.do(ctx, OpDecrementCounter, http.MethodPost, route, idRequest{ID: id}, nil)
}

func (s *counterService) Add(ctx context.Context, label string) error {
	const route = "/add-person"
	return s.client.do(ctx, OpAddPerson, http.MethodPost, route, addPersonRequest{Label: label}, nil)
}

func (s *counterService) Remove(ctx context.Context, id int64) error {
	const route = "/remove-person"
	return s.client.do(ctx, OpRemovePerson, http.MethodPost, route, idRequest{ID: id}, nil)
}
