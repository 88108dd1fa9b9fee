package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gracechapel/church-management-backend/config"
	"github.com/gracechapel/church-management-backend/internal/apperror"
)

const SessionCookie = "session"

type Handler struct {
	service Service
	cfg     *config.Config
}

func NewHandler(s Service, cfg *config.Config) *Handler {
	return &Handler{service: s, cfg: cfg}
}

func (h *Handler) setSessionCookie(c *gin.Context, token string) {
	maxAge := h.cfg.SessionTTLHours * 3600
	c.SetCookie(SessionCookie, token, maxAge, "/", h.cfg.CookieDomain, h.cfg.CookieSecure, true)
}

func (h *Handler) clearSessionCookie(c *gin.Context) {
	c.SetCookie(SessionCookie, "", -1, "/", h.cfg.CookieDomain, h.cfg.CookieSecure, true)
}

// =============================
// Sign up
// =============================

type signUpRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) SignUp(c *gin.Context) {
	var req signUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	u, token, err := h.service.Register(c.Request.Context(), RegisterInput(req), c.ClientIP())
	if err != nil {
		apperror.Respond(c, err)
		return
	}

	h.setSessionCookie(c, token)
	c.JSON(http.StatusCreated, u)
}

// =============================
// Login
// =============================

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	u, token, err := h.service.Login(c.Request.Context(), LoginInput(req), c.ClientIP())
	if err != nil {
		if errors.Is(err, apperror.ErrUnauthorized) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid username or password"})
			return
		}
		apperror.Respond(c, err)
		return
	}

	h.setSessionCookie(c, token)
	c.JSON(http.StatusOK, u)
}

// =============================
// Session check
// =============================

func (h *Handler) CheckSession(c *gin.Context) {
	token, err := c.Cookie(SessionCookie)
	if err != nil || token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	u, err := h.service.CheckSession(c.Request.Context(), token)
	if err != nil {
		if errors.Is(err, apperror.ErrUnauthorized) {
			h.clearSessionCookie(c)
		}
		apperror.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

// =============================
// Logout
// =============================

func (h *Handler) Logout(c *gin.Context) {
	token, err := c.Cookie(SessionCookie)
	if err != nil || token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	if err := h.service.Logout(c.Request.Context(), token); err != nil {
		apperror.Respond(c, err)
		return
	}

	h.clearSessionCookie(c)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}
