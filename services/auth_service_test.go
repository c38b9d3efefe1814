package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/projectflow-simple/apperrors"
	"github.com/projectflow-simple/dto"
	"github.com/projectflow-simple/models"
	"github.com/projectflow-simple/repositories"
)

func newUserFixture() models.User {
	return models.User{ID: "u1", Email: "jordan@example.com", Name: "Jordan"}
}

func TestSessionTokenRoundtrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	svc := NewAuthService(repositories.NewMemoryStore())
	user, err := svc.UpsertUser("jordan@example.com", "Jordan", "github")
	require.NoError(t, err)

	token, expiresAt, err := GenerateSessionToken(user)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.False(t, expiresAt.IsZero())

	claims, err := ValidateSessionToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "jordan@example.com", claims.Email)
	assert.Equal(t, "Jordan", claims.UserDetails)
}

func TestGenerateSessionTokenRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, _, err := GenerateSessionToken(newUserFixture())
	assert.Error(t, err)
}

func TestValidateSessionTokenRejectsWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "first-secret")
	token, _, err := GenerateSessionToken(newUserFixture())
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "second-secret")
	_, err = ValidateSessionToken(token)
	assert.Error(t, err)
}

func TestValidateSessionTokenRejectsGarbage(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	_, err := ValidateSessionToken("not-a-jwt")
	assert.Error(t, err)
}

func TestUpsertUserUpdatesExisting(t *testing.T) {
	svc := NewAuthService(repositories.NewMemoryStore())

	first, err := svc.UpsertUser("sam@example.com", "Sam", "github")
	require.NoError(t, err)

	second, err := svc.UpsertUser("sam@example.com", "Samuel", "google")
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "Samuel", second.Name)
	assert.Equal(t, "google", second.Provider)
}

func TestDevLogin(t *testing.T) {
	svc := NewAuthService(repositories.NewMemoryStore())

	_, err := svc.RegisterDevUser("dev@example.com", "Dev User", "password")
	require.NoError(t, err)

	user, err := svc.DevLogin(dto.DevLoginRequest{Email: "dev@example.com", Password: "password"})
	require.NoError(t, err)
	assert.Equal(t, "dev@example.com", user.Email)

	_, err = svc.DevLogin(dto.DevLoginRequest{Email: "dev@example.com", Password: "wrong"})
	require.Error(t, err)
	assert.Equal(t, "Invalid email or password", err.Error())

	_, err = svc.DevLogin(dto.DevLoginRequest{Email: "nobody@example.com", Password: "password"})
	require.Error(t, err)
	assert.Equal(t, "Invalid email or password", err.Error())
}

func TestRegisterDevUserRejectsDuplicateEmail(t *testing.T) {
	svc := NewAuthService(repositories.NewMemoryStore())

	_, err := svc.RegisterDevUser("dev@example.com", "Dev User", "password")
	require.NoError(t, err)

	_, err = svc.RegisterDevUser("dev@example.com", "Other", "password")
	assert.True(t, apperrors.IsValidation(err))
}
