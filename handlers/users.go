package handlers

import (
	"errors"
	"net/http"

	"github.com/expensex/expensex-api/models"
	"github.com/expensex/expensex-api/services"
	"github.com/expensex/expensex-api/utils"
	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	Directory *services.DirectoryService
}

func NewUserHandler(directory *services.DirectoryService) *UserHandler {
	return &UserHandler{Directory: directory}
}

// directoryError maps service errors to the directory's status codes and
// messages. Unknown errors are logged and become fallback (a 500).
func directoryError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, services.ErrMissingFields):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email and full name are required"})
	case errors.Is(err, services.ErrEmailTaken):
		c.JSON(http.StatusBadRequest, gin.H{"error": "User with this email already exists"})
	case errors.Is(err, services.ErrEmailInUse):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email already in use"})
	case errors.Is(err, services.ErrMissingID):
		c.JSON(http.StatusBadRequest, gin.H{"error": "User ID is required"})
	case errors.Is(err, services.ErrInvalidID):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid User ID"})
	case errors.Is(err, services.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
	default:
		utils.SafeError("%s: %v", fallback, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}

func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.Directory.List(c.Request.Context())
	if err != nil {
		directoryError(c, err, "Failed to fetch users")
		return
	}
	c.JSON(http.StatusOK, models.UsersResponse{Users: users})
}

func (h *UserHandler) CreateUser(c *gin.Context) {
	var req models.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	user, err := h.Directory.Create(c.Request.Context(), req)
	if err != nil {
		directoryError(c, err, "Failed to create user")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"user": user})
}

func (h *UserHandler) UpdateUser(c *gin.Context) {
	var req models.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	user, err := h.Directory.Update(c.Request.Context(), req)
	if err != nil {
		directoryError(c, err, "Failed to update user")
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

func (h *UserHandler) DeleteUser(c *gin.Context) {
	if err := h.Directory.Delete(c.Request.Context(), c.Query("id")); err != nil {
		directoryError(c, err, "Failed to delete user")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}
