package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/Uchencho/Bar-Zubi/internal/auth"
	"github.com/Uchencho/Bar-Zubi/internal/errs"
	"github.com/Uchencho/Bar-Zubi/internal/models"
	"github.com/Uchencho/Bar-Zubi/internal/utils"
	"github.com/gin-gonic/gin"
)

// RefreshCookieName is the HTTP-only cookie carrying the refresh token.
// The refresh token is never read from a header and never written to a
// response body.
const RefreshCookieName = "refresh"

// AccountStore is the account directory contract consumed by the HTTP
// surface. Implemented by repo.AccountRepo; tests substitute a fake.
type AccountStore interface {
	Create(ctx context.Context, acc *models.Account) error
	GetByUsername(ctx context.Context, username string) (*models.Account, error)
	List(ctx context.Context) ([]models.Account, error)
}

type AuthHandler struct {
	accounts     AccountStore
	sessions     *auth.Sessions
	refreshTTL   time.Duration
	cookieSecure bool
}

type RegisterRequest struct {
	Username    string  `json:"username" binding:"required"`
	Email       string  `json:"email" binding:"required,email"`
	PhoneNumber *string `json:"phone_number"`
	Password    string  `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func NewAuthHandler(accounts AccountStore, sessions *auth.Sessions, refreshTTL time.Duration, cookieSecure bool) *AuthHandler {
	return &AuthHandler{
		accounts:     accounts,
		sessions:     sessions,
		refreshTTL:   refreshTTL,
		cookieSecure: cookieSecure,
	}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, err.Error())
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		utils.RespondError(c, utils.NewAppError(http.StatusInternalServerError, "INTERNAL_ERROR", "could not secure password", nil))
		return
	}

	acc := &models.Account{
		Username:     req.Username,
		Email:        req.Email,
		PhoneNumber:  req.PhoneNumber,
		PasswordHash: hash,
		IsActive:     true,
	}
	if err := h.accounts.Create(c.Request.Context(), acc); err != nil {
		if errors.Is(err, errs.ErrDuplicateAccount) {
			utils.RespondError(c, utils.NewAppError(http.StatusBadRequest, "DUPLICATE_ACCOUNT", "username or email already registered", nil))
			return
		}
		utils.RespondError(c, utils.NewAppError(http.StatusInternalServerError, "INTERNAL_ERROR", "could not create account", nil))
		return
	}

	c.JSON(http.StatusOK, acc)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, err.Error())
		return
	}

	acc, err := h.sessions.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		utils.RespondError(c, utils.NewAppError(http.StatusBadRequest, "INVALID_CREDENTIALS", "invalid credentials", nil))
		return
	}

	access, err := h.sessions.IssueAccessToken(acc.Username)
	if err != nil {
		utils.RespondError(c, utils.NewAppError(http.StatusInternalServerError, "INTERNAL_ERROR", "could not generate token", nil))
		return
	}
	refresh, err := h.sessions.IssueRefreshToken(acc.Username)
	if err != nil {
		utils.RespondError(c, utils.NewAppError(http.StatusInternalServerError, "INTERNAL_ERROR", "could not generate token", nil))
		return
	}

	h.setRefreshCookie(c, refresh)
	c.JSON(http.StatusOK, gin.H{
		"username":     acc.Username,
		"email":        acc.Email,
		"phone_number": acc.PhoneNumber,
		"is_active":    acc.IsActive,
		"is_superuser": acc.IsSuperuser,
		"access_token": access,
		"token_type":   "Bearer",
	})
}

// Refresh rotates the refresh cookie and mints a new access token. The
// previous refresh token stays structurally valid until it expires; tokens
// are stateless and there is no denylist.
func (h *AuthHandler) Refresh(c *gin.Context) {
	username, ok := h.refreshSubject(c)
	if !ok {
		return
	}

	access, err := h.sessions.IssueAccessToken(username)
	if err != nil {
		utils.RespondError(c, utils.NewAppError(http.StatusInternalServerError, "INTERNAL_ERROR", "could not generate token", nil))
		return
	}
	refresh, err := h.sessions.IssueRefreshToken(username)
	if err != nil {
		utils.RespondError(c, utils.NewAppError(http.StatusInternalServerError, "INTERNAL_ERROR", "could not generate token", nil))
		return
	}

	h.setRefreshCookie(c, refresh)
	c.JSON(http.StatusCreated, gin.H{
		"access_token": access,
		"token_type":   "Bearer",
	})
}

// Logout requires a valid refresh cookie and expires it client-side.
// There is no server-side session record to delete.
func (h *AuthHandler) Logout(c *gin.Context) {
	if _, ok := h.refreshSubject(c); !ok {
		return
	}

	h.clearRefreshCookie(c)
	c.Status(http.StatusNoContent)
}

// refreshSubject reads and validates the refresh cookie, responding 400 on
// any failure. The refresh token is accepted from the cookie only.
func (h *AuthHandler) refreshSubject(c *gin.Context) (string, bool) {
	cookie, err := c.Cookie(RefreshCookieName)
	if err != nil || cookie == "" {
		utils.RespondError(c, utils.NewAppError(http.StatusBadRequest, "INVALID_REFRESH_TOKEN", "missing refresh cookie", nil))
		return "", false
	}

	username, err := h.sessions.CheckAuth(cookie)
	if err != nil {
		utils.RespondError(c, utils.NewAppError(http.StatusBadRequest, "INVALID_REFRESH_TOKEN", "invalid or expired refresh cookie", nil))
		return "", false
	}
	return username, true
}

func (h *AuthHandler) setRefreshCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(RefreshCookieName, token, int(h.refreshTTL.Seconds()), "/", "", h.cookieSecure, true)
}

func (h *AuthHandler) clearRefreshCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(RefreshCookieName, "", -1, "/", "", h.cookieSecure, true)
}
