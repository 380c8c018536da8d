package handlers

import (
	"net/http"

	"github.com/expensex/expensex-api/models"
	"github.com/expensex/expensex-api/store"
	"github.com/expensex/expensex-api/utils"
	"github.com/gin-gonic/gin"
)

type SessionHandler struct {
	Store *store.Store
}

func NewSessionHandler(s *store.Store) *SessionHandler {
	return &SessionHandler{Store: s}
}

func (h *SessionHandler) GetSession(c *gin.Context) {
	resp := models.SessionResponse{IsLoading: h.Store.IsLoading()}
	if id, ok := h.Store.CurrentIdentity(); ok {
		resp.User = &id
		resp.IsAdmin = id.IsAdmin()
	}
	c.JSON(http.StatusOK, resp)
}

func (h *SessionHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password are required"})
		return
	}

	result, err := h.Store.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		utils.SafeError("Login failed for %s: %v", req.Email, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to sign in"})
		return
	}
	if !result.Success {
		c.JSON(http.StatusUnauthorized, result)
		return
	}

	c.JSON(http.StatusOK, result)
}

// Signup checks the form rules of the signup page; the store itself accepts
// any input.
func (h *SessionHandler) Signup(c *gin.Context) {
	var req models.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Email, full name and a password of at least 6 characters are required",
		})
		return
	}

	result, err := h.Store.Signup(c.Request.Context(), req.Email, req.Password, req.FullName)
	if err != nil {
		utils.SafeError("Signup failed for %s: %v", req.Email, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create account"})
		return
	}
	if !result.Success {
		c.JSON(http.StatusConflict, result)
		return
	}

	c.JSON(http.StatusCreated, result)
}

func (h *SessionHandler) Logout(c *gin.Context) {
	if err := h.Store.Logout(c.Request.Context()); err != nil {
		utils.SafeError("Failed to clear persisted session: %v", err)
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}
