package fixture

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"wokstore/internal/domain"
	"wokstore/internal/service"
)

// UserSource accepts any non-empty credential pair and hands back a canned
// profile, the way the frontend mock did before the users service shipped.
type UserSource struct {
	mu   sync.Mutex
	user domain.User
}

func NewUserSource() *UserSource {
	return &UserSource{
		user: domain.User{
			ID:        "1",
			Email:     "usuario@wokstore.pe",
			FirstName: "Juan",
			LastName:  "Pérez",
			Phone:     "987654321",
			Role:      domain.RoleCustomer,
			Address: &domain.Address{
				Street:    "Av. Larco 123",
				District:  "Miraflores",
				City:      "Lima",
				Reference: "Frente al parque",
			},
		},
	}
}

func (s *UserSource) Register(ctx context.Context, data domain.RegisterData) (*domain.AuthResponse, error) {
	simulateLatency(ctx)

	if data.Email == "" || data.Password == "" {
		return nil, service.ErrInvalidCredentials
	}

	user := domain.User{
		ID:        uuid.NewString(),
		Email:     data.Email,
		FirstName: data.FirstName,
		LastName:  data.LastName,
		Phone:     data.Phone,
		Role:      domain.RoleCustomer,
	}

	s.mu.Lock()
	s.user = user
	s.mu.Unlock()

	return &domain.AuthResponse{User: user, Token: "mock-token-" + uuid.NewString()}, nil
}

func (s *UserSource) Login(ctx context.Context, creds domain.Credentials) (*domain.AuthResponse, error) {
	simulateLatency(ctx)

	if creds.Email == "" || creds.Password == "" {
		return nil, service.ErrInvalidCredentials
	}

	s.mu.Lock()
	user := s.user
	s.mu.Unlock()

	return &domain.AuthResponse{User: user, Token: "mock-token-" + uuid.NewString()}, nil
}

func (s *UserSource) Logout(ctx context.Context) error {
	return nil
}

func (s *UserSource) GetProfile(ctx context.Context, userID string) (*domain.User, error) {
	simulateLatency(ctx)

	s.mu.Lock()
	user := s.user
	s.mu.Unlock()
	return &user, nil
}

func (s *UserSource) UpdateProfile(ctx context.Context, userID string, patch domain.UserPatch) (*domain.User, error) {
	simulateLatency(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if patch.Email != nil {
		s.user.Email = *patch.Email
	}
	if patch.FirstName != nil {
		s.user.FirstName = *patch.FirstName
	}
	if patch.LastName != nil {
		s.user.LastName = *patch.LastName
	}
	if patch.Phone != nil {
		s.user.Phone = *patch.Phone
	}
	if patch.Address != nil {
		s.user.Address = patch.Address
	}

	user := s.user
	return &user, nil
}

var _ service.UserSource = (*UserSource)(nil)
