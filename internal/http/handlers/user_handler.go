package handlers

import (
	"net/http"

	"github.com/Uchencho/Bar-Zubi/internal/http/middleware"
	"github.com/Uchencho/Bar-Zubi/internal/utils"
	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	accounts AccountStore
}

func NewUserHandler(accounts AccountStore) *UserHandler {
	return &UserHandler{accounts: accounts}
}

// List returns all registered accounts. Password hashes never serialize.
func (h *UserHandler) List(c *gin.Context) {
	accounts, err := h.accounts.List(c.Request.Context())
	if err != nil {
		utils.RespondError(c, utils.NewAppError(http.StatusInternalServerError, "INTERNAL_ERROR", "could not list accounts", nil))
		return
	}
	c.JSON(http.StatusOK, accounts)
}

// Me returns the account of the authenticated token subject.
func (h *UserHandler) Me(c *gin.Context) {
	username := c.GetString(middleware.ContextUsername)
	if username == "" {
		utils.RespondError(c, utils.NewAppError(http.StatusUnauthorized, "UNAUTHORIZED", "missing user", nil))
		return
	}

	acc, err := h.accounts.GetByUsername(c.Request.Context(), username)
	if err != nil {
		utils.RespondError(c, utils.NewAppError(http.StatusUnauthorized, "UNAUTHORIZED", "account not found", nil))
		return
	}
	c.JSON(http.StatusOK, acc)
}
