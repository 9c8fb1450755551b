package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tasnim/scholarhub/internal/app/models"
	"github.com/tasnim/scholarhub/internal/app/models/dto"
	"github.com/tasnim/scholarhub/internal/app/repositories"
	"github.com/tasnim/scholarhub/internal/middleware"
)

// UserController handles user-related operations
type UserController struct {
	users repositories.UserStore
}

// NewUserController creates a new UserController
func NewUserController(users repositories.UserStore) *UserController {
	return &UserController{
		users: users,
	}
}

// GetAllUsers lists every registered user
// @Summary List users
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.User
// @Failure 401 {object} dto.MessageResponse
// @Failure 403 {object} dto.MessageResponse
// @Router /users [get]
func (c *UserController) GetAllUsers(ctx *gin.Context) {
	users, err := c.users.FindAll(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, users)
}

// GetUserRole reports the privileged role flags for an email. Callers may
// only ask about their own identity.
// @Summary Get role flags for an email
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param email path string true "User email"
// @Success 200 {object} dto.RoleResponse
// @Failure 403 {object} dto.MessageResponse "Email does not match the token identity"
// @Router /users/role/{email} [get]
func (c *UserController) GetUserRole(ctx *gin.Context) {
	email := ctx.Param("email")
	if email != ctx.GetString(middleware.ContextEmailKey) {
		ctx.JSON(http.StatusForbidden, dto.NewMessage("forbidden access"))
		return
	}

	user, err := c.users.FindByEmail(ctx.Request.Context(), email)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	response := dto.RoleResponse{}
	if user != nil {
		response.Admin = user.Role == models.RoleAdmin
		response.Moderator = user.Role == models.RoleModerator
	}

	ctx.JSON(http.StatusOK, response)
}

// CreateUser registers a user on first sign-in. Creation is idempotent by
// email: a second sign-up reports the existing record without inserting.
// @Summary Register a user
// @Tags users
// @Accept json
// @Produce json
// @Param request body models.User true "User document"
// @Success 200 {object} dto.InsertResponse
// @Failure 400 {object} dto.MessageResponse
// @Router /users [post]
func (c *UserController) CreateUser(ctx *gin.Context) {
	var user models.User
	if err := ctx.ShouldBindJSON(&user); err != nil || user.Email == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewMessage("a user email is required"))
		return
	}

	existing, err := c.users.FindByEmail(ctx.Request.Context(), user.Email)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if existing != nil {
		ctx.JSON(http.StatusOK, dto.InsertResponse{
			Message:    "User already exists",
			InsertedID: nil,
		})
		return
	}

	if user.Role == "" {
		user.Role = models.RoleUser
	}

	insertedID, err := c.users.Insert(ctx.Request.Context(), &user)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.InsertResponse{InsertedID: &insertedID})
}

// UpdateUserRole changes a user's role. Only the role field is accepted.
// @Summary Update a user's role
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "User id"
// @Param request body dto.RolePatchRequest true "New role"
// @Success 200 {object} dto.UpdateResponse
// @Failure 400 {object} dto.MessageResponse
// @Failure 403 {object} dto.MessageResponse
// @Router /users/role/{id} [patch]
func (c *UserController) UpdateUserRole(ctx *gin.Context) {
	var req dto.RolePatchRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewMessage("a role is required"))
		return
	}

	role := models.Role(req.Role)
	if !role.IsValid() {
		ctx.JSON(http.StatusBadRequest, dto.NewMessage("unknown role: "+req.Role))
		return
	}

	result, err := c.users.UpdateRole(ctx.Request.Context(), ctx.Param("id"), role)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, result)
}

// DeleteUser removes a user by id
// @Summary Delete a user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path string true "User id"
// @Success 200 {object} dto.DeleteResponse
// @Failure 403 {object} dto.MessageResponse
// @Router /users/{id} [delete]
func (c *UserController) DeleteUser(ctx *gin.Context) {
	deleted, err := c.users.Delete(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.DeleteResponse{DeletedCount: deleted})
}
