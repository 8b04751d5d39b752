package fixture

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wokstore/internal/domain"
	"wokstore/internal/service"
)

func TestUsersLoginRequiresCredentials(t *testing.T) {
	users := NewUserSource()
	ctx := context.Background()

	_, err := users.Login(ctx, domain.Credentials{Email: "usuario@wokstore.pe"})
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)

	resp, err := users.Login(ctx, domain.Credentials{Email: "usuario@wokstore.pe", Password: "x"})
	require.NoError(t, err)
	assert.Equal(t, "Juan", resp.User.FirstName)
	assert.Contains(t, resp.Token, "mock-token-")
}

func TestUsersRegisterReplacesProfile(t *testing.T) {
	users := NewUserSource()
	ctx := context.Background()

	resp, err := users.Register(ctx, domain.RegisterData{
		Email: "nuevo@wokstore.pe", Password: "secret",
		FirstName: "Ana", LastName: "García",
	})
	require.NoError(t, err)
	assert.Equal(t, "Ana", resp.User.FirstName)

	profile, err := users.GetProfile(ctx, resp.User.ID)
	require.NoError(t, err)
	assert.Equal(t, "nuevo@wokstore.pe", profile.Email)
}

func TestUsersUpdateProfileMergesPatch(t *testing.T) {
	users := NewUserSource()
	ctx := context.Background()

	phone := "999888777"
	updated, err := users.UpdateProfile(ctx, "1", domain.UserPatch{Phone: &phone})
	require.NoError(t, err)

	assert.Equal(t, "999888777", updated.Phone)
	assert.Equal(t, "Juan", updated.FirstName)
	require.NotNil(t, updated.Address)
	assert.Equal(t, "Av. Larco 123", updated.Address.Street)
}
