package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/projectflow-simple/dto"
	"github.com/projectflow-simple/lib/identity"
	"github.com/projectflow-simple/middleware"
	"github.com/projectflow-simple/models"
	"github.com/projectflow-simple/repositories"
	"github.com/projectflow-simple/services"
)

const stateCookieName = "pf_oauth_state"

// AuthController owns the session surface: introspection, the
// redirect-based provider flow and the optional dev login.
type AuthController struct {
	service  *services.AuthService
	provider identity.Provider
	devAuth  bool
}

// NewAuthController creates a new auth controller instance. provider
// may be nil when only the dev login is configured.
func NewAuthController(store *repositories.Store, provider identity.Provider, devAuth bool) *AuthController {
	return &AuthController{
		service:  services.NewAuthService(store),
		provider: provider,
		devAuth:  devAuth,
	}
}

// RegisterRoutes registers session endpoints.
func (ctl *AuthController) RegisterRoutes(router *gin.RouterGroup) {
	group := router.Group("/auth")
	{
		group.GET("/me", ctl.Me)
		group.GET("/login", ctl.Login)
		group.GET("/callback", ctl.Callback)
		group.GET("/logout", ctl.Logout)
		if ctl.devAuth {
			group.POST("/dev/login", ctl.DevLogin)
		}
	}
}

// Me is the session introspection endpoint. It always answers 200; a
// missing or invalid session is a null clientPrincipal, never an
// error.
func (ctl *AuthController) Me(c *gin.Context) {
	token := middleware.SessionToken(c)
	if token == "" {
		c.JSON(http.StatusOK, dto.SessionResponse{ClientPrincipal: nil})
		return
	}

	claims, err := services.ValidateSessionToken(token)
	if err != nil {
		c.JSON(http.StatusOK, dto.SessionResponse{ClientPrincipal: nil})
		return
	}

	c.JSON(http.StatusOK, dto.SessionResponse{ClientPrincipal: &dto.ClientPrincipal{
		UserID:      claims.UserID,
		UserDetails: claims.UserDetails,
	}})
}

// Login begins the redirect flow at the identity provider.
func (ctl *AuthController) Login(c *gin.Context) {
	if ctl.provider == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Identity provider not configured"})
		return
	}

	state := uuid.NewString()
	c.SetCookie(stateCookieName, state, int((10 * time.Minute).Seconds()), "/", "", false, true)
	c.Redirect(http.StatusFound, ctl.provider.AuthCodeURL(state))
}

// Callback finishes the redirect flow: state check, code exchange,
// userinfo fetch, user upsert, session cookie, then back to the app.
func (ctl *AuthController) Callback(c *gin.Context) {
	if ctl.provider == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Identity provider not configured"})
		return
	}

	state, err := c.Cookie(stateCookieName)
	if err != nil || state == "" || state != c.Query("state") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid login state"})
		return
	}
	c.SetCookie(stateCookieName, "", -1, "/", "", false, true)

	code := c.Query("code")
	if code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Authorization code is required"})
		return
	}

	token, err := ctl.provider.Exchange(c.Request.Context(), code)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	info, err := ctl.provider.FetchUserInfo(c.Request.Context(), token)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	user, err := ctl.service.UpsertUser(info.Email, info.Name, ctl.provider.Name())
	if err != nil {
		respondError(c, err)
		return
	}

	if err := ctl.setSessionCookie(c, user); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Redirect(http.StatusFound, "/")
}

// Logout clears the session cookie and hands the browser to the
// provider's sign-out page when one is configured.
func (ctl *AuthController) Logout(c *gin.Context) {
	c.SetCookie(middleware.SessionCookieName(), "", -1, "/", "", false, true)

	target := "/"
	if ctl.provider != nil && ctl.provider.LogoutURL() != "" {
		target = ctl.provider.LogoutURL()
	}
	c.Redirect(http.StatusFound, target)
}

// DevLogin authenticates against the local dev accounts and sets the
// same session cookie the redirect flow would.
func (ctl *AuthController) DevLogin(c *gin.Context) {
	var req dto.DevLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password are required"})
		return
	}

	user, err := ctl.service.DevLogin(req)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	if err := ctl.setSessionCookie(c, user); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.SessionResponse{ClientPrincipal: &dto.ClientPrincipal{
		UserID:           user.ID,
		UserDetails:      user.Name,
		IdentityProvider: "dev",
	}})
}

func (ctl *AuthController) setSessionCookie(c *gin.Context, user models.User) error {
	token, expiresAt, err := services.GenerateSessionToken(user)
	if err != nil {
		return err
	}
	maxAge := int(time.Until(expiresAt).Seconds())
	c.SetCookie(middleware.SessionCookieName(), token, maxAge, "/", "", false, true)
	return nil
}
