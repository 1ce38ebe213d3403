package handlers

import (
	"net/http"

	portssvc "github.com/SaPok5/prs-sub001/internal/core/ports/services"
	"github.com/SaPok5/prs-sub001/internal/dto"
	"github.com/SaPok5/prs-sub001/internal/platform/config"
	"github.com/SaPok5/prs-sub001/internal/utils"
	"github.com/gin-gonic/gin"
)

const oauthStateCookie = "oauth_state"

// googleOAuthHandler handles the Google sign-in redirect flow.
type googleOAuthHandler struct {
	googleService portssvc.GoogleOAuthSvcFacade
	cfg           *config.Config
}

func newGoogleOAuthHandler(gs portssvc.GoogleOAuthSvcFacade, cfg *config.Config) *googleOAuthHandler {
	return &googleOAuthHandler{googleService: gs, cfg: cfg}
}

func registerGoogleOAuthRoutes(rg *gin.RouterGroup, cfg *config.Config, gs portssvc.GoogleOAuthSvcFacade) {
	h := newGoogleOAuthHandler(gs, cfg)

	google := rg.Group("/google")
	{
		google.GET("", h.redirectToGoogle)
		google.GET("/callback", h.callback)
	}
}

// redirectToGoogle godoc
// @Summary Start Google sign-in
// @Description Redirects the browser to the Google consent screen. A state cookie guards the callback against CSRF.
// @Tags auth
// @Success 307 "Redirect to Google"
// @Failure 500 {object} ErrorResponse
// @Router /auth/google [get]
func (h *googleOAuthHandler) redirectToGoogle(c *gin.Context) {
	state, err := utils.GenerateSecureRandomString(16)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to initiate sign-in"})
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(oauthStateCookie, state, 300, "/api/v1/auth/google", "", h.cfg.IsProduction, true)
	c.Redirect(http.StatusTemporaryRedirect, h.googleService.AuthCodeURL(state))
}

// callback godoc
// @Summary Google sign-in callback
// @Description Exchanges the authorization code, logs in the matching user and returns tokens like a password login.
// @Tags auth
// @Produce json
// @Param state query string true "CSRF state"
// @Param code query string true "Authorization code"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /auth/google/callback [get]
func (h *googleOAuthHandler) callback(c *gin.Context) {
	expectedState, err := c.Cookie(oauthStateCookie)
	if err != nil || expectedState == "" || c.Query("state") != expectedState {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid OAuth state"})
		return
	}
	c.SetCookie(oauthStateCookie, "", -1, "/api/v1/auth/google", "", h.cfg.IsProduction, true)

	code := c.Query("code")
	if code == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Authorization code missing"})
		return
	}

	user, accessToken, refreshToken, err := h.googleService.HandleCallback(c.Request.Context(), code)
	if err != nil {
		respondWithError(c, err, "Google sign-in failed")
		return
	}

	maxAge := int(h.cfg.RefreshTokenExpiryDuration.Seconds())
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(h.cfg.RefreshTokenCookieName, user.UserID+":"+refreshToken, maxAge,
		h.cfg.RefreshTokenCookiePath, "", h.cfg.IsProduction, true)

	c.JSON(http.StatusOK, dto.LoginResponse{
		AccessToken: accessToken,
		TokenType:   "Bearer",
		ExpiresIn:   int64(h.cfg.JWTExpiryDuration.Seconds()),
		User:        dto.ToUserResponse(user),
	})
}
