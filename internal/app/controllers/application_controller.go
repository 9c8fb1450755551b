package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/tasnim/scholarhub/internal/app/models/dto"
	"github.com/tasnim/scholarhub/internal/app/repositories"
	"github.com/tasnim/scholarhub/internal/middleware"
	"github.com/tasnim/scholarhub/internal/pkg/helpers"
)

// ApplicationController handles scholarship application operations
type ApplicationController struct {
	applications repositories.ApplicationStore
}

// NewApplicationController creates a new ApplicationController
func NewApplicationController(applications repositories.ApplicationStore) *ApplicationController {
	return &ApplicationController{
		applications: applications,
	}
}

// GetApplications lists applications, optionally filtered by owner email
func (c *ApplicationController) GetApplications(ctx *gin.Context) {
	filter := helpers.NewFilter().
		Eq("userEmail", ctx.Query("email")).
		Build()

	applications, err := c.applications.Find(ctx.Request.Context(), filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, applications)
}

// GetApplicationByID retrieves a single application
func (c *ApplicationController) GetApplicationByID(ctx *gin.Context) {
	application, err := c.applications.FindByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, application)
}

// CreateApplication stores a submitted application verbatim. The form
// fields vary per scholarship, so no shape is imposed beyond valid JSON.
func (c *ApplicationController) CreateApplication(ctx *gin.Context) {
	var payload map[string]interface{}
	if err := ctx.ShouldBindJSON(&payload); err != nil || len(payload) == 0 {
		ctx.JSON(http.StatusBadRequest, dto.NewMessage("invalid application payload"))
		return
	}

	insertedID, err := c.applications.Insert(ctx.Request.Context(), bson.M(payload))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.InsertResponse{InsertedID: &insertedID})
}

// UpdateApplication replaces the posted fields on an application. The
// document id is immutable and stripped from the update set.
func (c *ApplicationController) UpdateApplication(ctx *gin.Context) {
	var payload map[string]interface{}
	if err := ctx.ShouldBindJSON(&payload); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewMessage("invalid update payload"))
		return
	}

	set := helpers.StripImmutable(payload)
	if len(set) == 0 {
		ctx.JSON(http.StatusBadRequest, dto.NewMessage("no updatable fields in payload"))
		return
	}

	result, err := c.applications.Update(ctx.Request.Context(), ctx.Param("id"), set)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, result)
}

// DeleteApplication removes an application by id
func (c *ApplicationController) DeleteApplication(ctx *gin.Context) {
	deleted, err := c.applications.Delete(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.DeleteResponse{DeletedCount: deleted})
}
