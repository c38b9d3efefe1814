package client

import (
	"context"
	"sync"

	"github.com/projectflow-simple/dto"
)

// SessionState is the auth-context state machine: Unknown while the
// introspection call is in flight, then Authenticated or
// Unauthenticated.
type SessionState int

const (
	StateUnknown SessionState = iota
	StateAuthenticated
	StateUnauthenticated
)

func (s SessionState) String() string {
	switch s {
	case StateAuthenticated:
		return "authenticated"
	case StateUnauthenticated:
		return "unauthenticated"
	default:
		return "unknown"
	}
}

// SessionContext resolves "is there a signed-in user" through the
// introspection endpoint and exposes the redirect entry points.
// Consumers must treat StateUnknown as a loading state and permit no
// protected action until it resolves. Login and logout complete
// out-of-band: the provider redirect lands on a fresh page load whose
// first Refresh re-runs the check.
type SessionContext struct {
	client *Client

	mu        sync.Mutex
	state     SessionState
	principal *dto.ClientPrincipal
}

// NewSessionContext starts in StateUnknown; call Refresh to resolve.
func NewSessionContext(c *Client) *SessionContext {
	return &SessionContext{client: c, state: StateUnknown}
}

// Refresh performs one session introspection call and settles the
// state. A failed check resolves to Unauthenticated (and returns the
// error) rather than staying Unknown forever.
func (s *SessionContext) Refresh(ctx context.Context) error {
	session, err := s.client.GetSession(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.state = StateUnauthenticated
		s.principal = nil
		return err
	}
	if session.ClientPrincipal == nil {
		s.state = StateUnauthenticated
		s.principal = nil
		return nil
	}
	s.state = StateAuthenticated
	s.principal = session.ClientPrincipal
	return nil
}

// State returns the current session state.
func (s *SessionContext) State() SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Principal returns the signed-in user, or nil outside
// StateAuthenticated.
func (s *SessionContext) Principal() *dto.ClientPrincipal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.principal
}

// LoginURL is where a consumer sends the browser to begin the
// redirect-based login.
func (s *SessionContext) LoginURL() string {
	return s.client.baseURL + "/api/auth/login"
}

// LogoutURL is where a consumer sends the browser to sign out.
func (s *SessionContext) LogoutURL() string {
	return s.client.baseURL + "/api/auth/logout"
}
