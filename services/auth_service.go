package services

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/projectflow-simple/apperrors"
	"github.com/projectflow-simple/dto"
	"github.com/projectflow-simple/models"
	"github.com/projectflow-simple/repositories"
)

// AuthService resolves identities into session tokens. The token lives
// in an HTTP-only cookie and carries no provider credentials; the
// redirect dance itself happens in lib/identity.
type AuthService struct {
	store *repositories.Store
}

// NewAuthService creates a new auth service instance
func NewAuthService(store *repositories.Store) *AuthService {
	return &AuthService{store: store}
}

// UpsertUser records the identity returned by the provider, matching
// on email.
func (s *AuthService) UpsertUser(email, name, provider string) (models.User, error) {
	user, err := s.store.Users.FindByEmail(email)
	if err != nil {
		if !apperrors.IsNotFound(err) {
			return models.User{}, err
		}
		return s.store.Users.Create(models.User{
			Email:    email,
			Name:     name,
			Provider: provider,
		})
	}

	user.Name = name
	user.Provider = provider
	return s.store.Users.Update(user)
}

// RegisterDevUser creates a dev-provider account with a bcrypt-hashed
// password. Only the seed path calls this.
func (s *AuthService) RegisterDevUser(email, name, password string) (models.User, error) {
	if _, err := s.store.Users.FindByEmail(email); err == nil {
		return models.User{}, apperrors.NewValidation("Email already registered")
	} else if !apperrors.IsNotFound(err) {
		return models.User{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, apperrors.NewStore(err)
	}
	return s.store.Users.Create(models.User{
		Email:    email,
		Name:     name,
		Provider: "dev",
		Password: string(hashed),
	})
}

// DevLogin authenticates a dev-provider account and returns the user
// on success. Wrong email and wrong password are indistinguishable to
// the caller.
func (s *AuthService) DevLogin(req dto.DevLoginRequest) (models.User, error) {
	user, err := s.store.Users.FindByEmail(req.Email)
	if err != nil {
		return models.User{}, apperrors.NewValidation("Invalid email or password")
	}
	if user.Password == "" {
		return models.User{}, apperrors.NewValidation("Invalid email or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return models.User{}, apperrors.NewValidation("Invalid email or password")
	}
	return user, nil
}

// GenerateSessionToken mints the JWT carried by the session cookie.
func GenerateSessionToken(user models.User) (string, time.Time, error) {
	secretKey := os.Getenv("JWT_SECRET")
	if secretKey == "" {
		return "", time.Time{}, errors.New("JWT_SECRET not set in environment")
	}

	expiresAt := time.Now().Add(24 * time.Hour)

	claims := dto.TokenClaims{
		UserID:      user.ID,
		Email:       user.Email,
		UserDetails: user.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(secretKey))
	if err != nil {
		return "", time.Time{}, err
	}
	return tokenString, expiresAt, nil
}

// ValidateSessionToken parses and verifies a session JWT and returns
// its claims.
func ValidateSessionToken(tokenString string) (*dto.TokenClaims, error) {
	secretKey := os.Getenv("JWT_SECRET")
	if secretKey == "" {
		return nil, errors.New("JWT_SECRET not set in environment")
	}

	token, err := jwt.ParseWithClaims(tokenString, &dto.TokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secretKey), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	claims, ok := token.Claims.(*dto.TokenClaims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}
