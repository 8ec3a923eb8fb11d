package tally

import (
	"context"
	"errors"
	"net/http"
)

type authService struct {
	client *Client
}

func (s *authService) Authenticate(ctx context.Context, password string) error {
	const route = "/auth"

	err := s.client.do(ctx, OpAuthenticate, http.MethodPost, route, authRequest{Password: password}, nil)

	var svcErr *ServiceError
	if errors.As(err, &svcErr) && svcErr.StatusCode == http.StatusUnauthorized {
		return ErrAuthDenied
	}
	return err
}
