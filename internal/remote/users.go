package remote

import (
	"context"
	"net/http"

	"wokstore/internal/domain"
	"wokstore/internal/service"
)

type UserSource struct {
	client *Client
}

func NewUserSource(client *Client) *UserSource {
	return &UserSource{client: client}
}

func (s *UserSource) Register(ctx context.Context, data domain.RegisterData) (*domain.AuthResponse, error) {
	var resp domain.AuthResponse
	if err := s.client.do(ctx, http.MethodPost, "/register", data, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *UserSource) Login(ctx context.Context, creds domain.Credentials) (*domain.AuthResponse, error) {
	var resp domain.AuthResponse
	if err := s.client.do(ctx, http.MethodPost, "/login", creds, &resp); err != nil {
		if IsStatus(err, http.StatusUnauthorized) {
			return nil, service.ErrInvalidCredentials
		}
		return nil, err
	}
	return &resp, nil
}

func (s *UserSource) Logout(ctx context.Context) error {
	return s.client.do(ctx, http.MethodPost, "/logout", nil, nil)
}

func (s *UserSource) GetProfile(ctx context.Context, userID string) (*domain.User, error) {
	var user domain.User
	if err := s.client.do(ctx, http.MethodGet, "/users/"+userID, nil, &user); err != nil {
		if IsStatus(err, http.StatusNotFound) {
			return nil, service.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *UserSource) UpdateProfile(ctx context.Context, userID string, patch domain.UserPatch) (*domain.User, error) {
	var user domain.User
	if err := s.client.do(ctx, http.MethodPut, "/users/"+userID, patch, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

var _ service.UserSource = (*UserSource)(nil)
