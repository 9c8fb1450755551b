package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tasnim/scholarhub/internal/app/models/dto"
	"github.com/tasnim/scholarhub/internal/middleware"
	"github.com/tasnim/scholarhub/internal/pkg/auth"
)

// AuthController issues access tokens for the frontend session
type AuthController struct {
	jwtService *auth.JWTService
}

// NewAuthController creates a new AuthController
func NewAuthController(jwtService *auth.JWTService) *AuthController {
	return &AuthController{
		jwtService: jwtService,
	}
}

// CreateToken signs the posted identity claims into a short-lived access token
// @Summary Issue an access token
// @Description Signs the posted identity payload into a 2 hour JWT
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.TokenRequest true "Identity claims"
// @Success 200 {object} dto.TokenResponse
// @Failure 400 {object} dto.MessageResponse "Invalid identity payload"
// @Router /jwt [post]
func (c *AuthController) CreateToken(ctx *gin.Context) {
	var req dto.TokenRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewMessage("a valid email is required"))
		return
	}

	token, err := c.jwtService.GenerateToken(req.Email, req.Name)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.TokenResponse{Token: token})
}
