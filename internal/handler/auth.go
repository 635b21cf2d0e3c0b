package handler

import (
	"errors"
	"net/http"

	"github.com/MoultonFarm-Sumner/washshed-sub000/internal/apierror"
	"github.com/MoultonFarm-Sumner/washshed-sub000/internal/config"
	"github.com/MoultonFarm-Sumner/washshed-sub000/internal/dto"
	"github.com/MoultonFarm-Sumner/washshed-sub000/internal/middleware"
	"github.com/MoultonFarm-Sumner/washshed-sub000/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	svc service.AuthService
	cfg *config.Config
}

func NewAuthHandler(svc service.AuthService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{svc: svc, cfg: cfg}
}

// Login godoc
// @Summary Unlock the site with the shared password
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.LoginRequest true "Password"
// @Success 200 {object} dto.LoginResponse
// @Failure 401 {object} apierror.APIError
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindAndValidate(c, &req) {
		return
	}

	token, passwordWasSet, err := h.svc.Login(c.Request.Context(), req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidPassword) {
			c.JSON(http.StatusUnauthorized, apierror.New("invalid password"))
			return
		}
		c.JSON(http.StatusInternalServerError, apierror.New("login failed"))
		return
	}

	h.setSessionCookie(c, token)
	c.JSON(http.StatusOK, dto.LoginResponse{IsAuthenticated: true, PasswordWasSet: passwordWasSet})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	h.clearSessionCookie(c)
	c.JSON(http.StatusOK, gin.H{"isAuthenticated": false})
}

// ChangePassword rotates the site password and re-issues the caller's
// session. Every other open session dies with the old password fingerprint.
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var req dto.ChangePasswordRequest
	if !bindAndValidate(c, &req) {
		return
	}

	token, err := h.svc.ChangePassword(c.Request.Context(), req.CurrentPassword, req.NewPassword)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidPassword):
			c.JSON(http.StatusUnauthorized, apierror.New("invalid password"))
		case errors.Is(err, service.ErrPasswordNotSet):
			c.JSON(http.StatusBadRequest, apierror.New("no password has been set yet"))
		default:
			c.JSON(http.StatusInternalServerError, apierror.New("could not change password"))
		}
		return
	}

	h.setSessionCookie(c, token)
	c.JSON(http.StatusOK, gin.H{"changed": true})
}

// Check reports the gate state without requiring a session. An invalid or
// expired cookie is cleared so the client stops resending it.
func (h *AuthHandler) Check(c *gin.Context) {
	ctx := c.Request.Context()

	passwordSet, err := h.svc.PasswordSet(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("could not check auth state"))
		return
	}

	token, _ := c.Cookie(middleware.AuthCookie)
	authenticated := h.svc.VerifySession(ctx, token)
	if !authenticated && token != "" {
		h.clearSessionCookie(c)
	}

	c.JSON(http.StatusOK, dto.AuthCheckResponse{
		IsAuthenticated: authenticated,
		PasswordSet:     passwordSet,
	})
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, token string) {
	maxAge := h.cfg.SessionTTLHours * 3600
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.AuthCookie, token, maxAge, "/", "", h.cfg.Env == "production", true)
}

func (h *AuthHandler) clearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.AuthCookie, "", -1, "/", "", h.cfg.Env == "production", true)
}
