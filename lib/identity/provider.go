// Package identity wraps the external identity provider. The
// application never parses provider tokens itself: it begins a
// redirect, exchanges the callback code and asks the provider who the
// user is. Session state lives in our own cookie afterwards.
package identity

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"golang.org/x/oauth2"

	"github.com/projectflow-simple/config"
)

// UserInfo is the provider's answer to "who is this token".
type UserInfo struct {
	Subject string `json:"sub"`
	Email   string `json:"email"`
	Name    string `json:"name"`
}

// Provider is the redirect-based authentication capability: begin a
// login, finish it with the callback code, and begin a logout.
type Provider interface {
	// AuthCodeURL returns the provider authorize URL the browser is
	// redirected to. state is round-tripped for CSRF protection.
	AuthCodeURL(state string) string
	// Exchange trades the callback code for a provider token.
	Exchange(ctx context.Context, code string) (*oauth2.Token, error)
	// FetchUserInfo resolves the token into a user identity.
	FetchUserInfo(ctx context.Context, token *oauth2.Token) (UserInfo, error)
	// LogoutURL is where the browser goes to end the provider session.
	// Empty means the provider has no logout endpoint.
	LogoutURL() string
	// Name identifies the provider in user records.
	Name() string
}

// OAuthProvider implements Provider over a standard OAuth2
// authorization-code flow with a userinfo endpoint.
type OAuthProvider struct {
	config      *oauth2.Config
	userInfoURL string
	logoutURL   string
	name        string
}

// NewOAuthProviderFromEnv builds the provider from OAUTH_* environment
// variables. Returns an error when the flow cannot work because the
// client id or endpoints are missing.
func NewOAuthProviderFromEnv() (*OAuthProvider, error) {
	clientID := config.GetEnv("OAUTH_CLIENT_ID", "")
	authURL := config.GetEnv("OAUTH_AUTH_URL", "")
	tokenURL := config.GetEnv("OAUTH_TOKEN_URL", "")
	if clientID == "" || authURL == "" || tokenURL == "" {
		return nil, fmt.Errorf("identity provider not configured: OAUTH_CLIENT_ID, OAUTH_AUTH_URL and OAUTH_TOKEN_URL are required")
	}

	return &OAuthProvider{
		config: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: config.GetEnv("OAUTH_CLIENT_SECRET", ""),
			Endpoint: oauth2.Endpoint{
				AuthURL:  authURL,
				TokenURL: tokenURL,
			},
			RedirectURL: config.GetEnv("OAUTH_REDIRECT_URL", "http://localhost:8080/api/auth/callback"),
			Scopes:      []string{"openid", "profile", "email"},
		},
		userInfoURL: config.GetEnv("OAUTH_USERINFO_URL", ""),
		logoutURL:   config.GetEnv("OAUTH_LOGOUT_URL", ""),
		name:        config.GetEnv("OAUTH_PROVIDER_NAME", "oauth"),
	}, nil
}

func (p *OAuthProvider) AuthCodeURL(state string) string {
	return p.config.AuthCodeURL(state, oauth2.AccessTypeOnline)
}

func (p *OAuthProvider) Exchange(ctx context.Context, code string) (*oauth2.Token, error) {
	token, err := p.config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange authorization code: %w", err)
	}
	return token, nil
}

func (p *OAuthProvider) FetchUserInfo(ctx context.Context, token *oauth2.Token) (UserInfo, error) {
	var info UserInfo
	if p.userInfoURL == "" {
		return info, fmt.Errorf("identity provider has no userinfo endpoint configured")
	}

	// config.Client handles the bearer header and token refresh.
	client := p.config.Client(ctx, token)
	resp, err := client.Get(p.userInfoURL)
	if err != nil {
		return info, fmt.Errorf("failed to fetch userinfo: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return info, fmt.Errorf("userinfo endpoint returned %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return info, fmt.Errorf("failed to decode userinfo: %w", err)
	}
	if info.Email == "" {
		return info, fmt.Errorf("userinfo response carries no email")
	}
	if info.Name == "" {
		info.Name = info.Email
	}
	return info, nil
}

func (p *OAuthProvider) LogoutURL() string {
	return p.logoutURL
}

func (p *OAuthProvider) Name() string {
	return p.name
}
