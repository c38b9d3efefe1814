package dto

import (
	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims represents our custom JWT claims carried in the session
// cookie
type TokenClaims struct {
	UserID      string `json:"userId"`
	Email       string `json:"email"`
	UserDetails string `json:"userDetails"`
	jwt.RegisteredClaims
}

// ClientPrincipal is the introspection view of a signed-in user
type ClientPrincipal struct {
	UserID           string `json:"userId"`
	UserDetails      string `json:"userDetails"`
	IdentityProvider string `json:"identityProvider,omitempty"`
}

// SessionResponse is the body of the session introspection endpoint.
// ClientPrincipal is null when nobody is signed in; the endpoint
// itself always answers 200.
type SessionResponse struct {
	ClientPrincipal *ClientPrincipal `json:"clientPrincipal"`
}

// DevLoginRequest represents dev-provider login credentials
type DevLoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}
