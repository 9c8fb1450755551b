package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tasnim/scholarhub/internal/app/models"
	"github.com/tasnim/scholarhub/internal/app/models/dto"
	"github.com/tasnim/scholarhub/internal/app/repositories"
	"github.com/tasnim/scholarhub/internal/middleware"
	"github.com/tasnim/scholarhub/internal/pkg/helpers"
)

// topScholarshipsLimit caps the derived top-scholarships read
const topScholarshipsLimit = 6

// ScholarshipController handles scholarship listing operations
type ScholarshipController struct {
	scholarships repositories.ScholarshipStore
}

// NewScholarshipController creates a new ScholarshipController
func NewScholarshipController(scholarships repositories.ScholarshipStore) *ScholarshipController {
	return &ScholarshipController{
		scholarships: scholarships,
	}
}

// GetAllScholarships lists every scholarship
// @Summary List scholarships
// @Tags scholarships
// @Produce json
// @Success 200 {array} models.Scholarship
// @Router /scholar [get]
func (c *ScholarshipController) GetAllScholarships(ctx *gin.Context) {
	scholarships, err := c.scholarships.FindAll(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, scholarships)
}

// GetTopScholarships lists up to six listings, cheapest application fee
// first and most recently posted first within equal fees
// @Summary List top scholarships
// @Tags scholarships
// @Produce json
// @Success 200 {array} models.Scholarship
// @Router /scholar/top [get]
func (c *ScholarshipController) GetTopScholarships(ctx *gin.Context) {
	scholarships, err := c.scholarships.FindTop(ctx.Request.Context(), topScholarshipsLimit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, scholarships)
}

// GetScholarshipByID retrieves a single scholarship
// @Summary Get scholarship by id
// @Tags scholarships
// @Produce json
// @Param id path string true "Scholarship id"
// @Success 200 {object} models.Scholarship
// @Failure 404 {object} dto.MessageResponse
// @Router /scholar/{id} [get]
func (c *ScholarshipController) GetScholarshipByID(ctx *gin.Context) {
	scholarship, err := c.scholarships.FindByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, scholarship)
}

// CreateScholarship inserts a new listing. Binding to the scholarship
// model acts as the allow-list: unknown payload fields never reach storage.
// @Summary Create a scholarship
// @Tags scholarships
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.Scholarship true "Scholarship listing"
// @Success 200 {object} dto.InsertResponse
// @Failure 400 {object} dto.MessageResponse
// @Failure 403 {object} dto.MessageResponse
// @Router /scholar [post]
func (c *ScholarshipController) CreateScholarship(ctx *gin.Context) {
	var scholarship models.Scholarship
	if err := ctx.ShouldBindJSON(&scholarship); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewMessage("invalid scholarship payload"))
		return
	}

	if scholarship.ScholarshipName == "" || scholarship.UniversityName == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewMessage("scholarshipName and universityName are required"))
		return
	}

	insertedID, err := c.scholarships.Insert(ctx.Request.Context(), &scholarship)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.InsertResponse{InsertedID: &insertedID})
}

// UpdateScholarship applies a partial update restricted to the allow-listed
// fields; anything else in the payload is silently dropped
// @Summary Update a scholarship
// @Tags scholarships
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Scholarship id"
// @Param request body object true "Fields to update"
// @Success 200 {object} dto.UpdateResponse
// @Failure 400 {object} dto.MessageResponse
// @Failure 403 {object} dto.MessageResponse
// @Router /scholar/{id} [patch]
func (c *ScholarshipController) UpdateScholarship(ctx *gin.Context) {
	var payload map[string]interface{}
	if err := ctx.ShouldBindJSON(&payload); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewMessage("invalid update payload"))
		return
	}

	set := helpers.ProjectAllowed(payload, models.ScholarshipUpdateAllowList)
	if len(set) == 0 {
		ctx.JSON(http.StatusBadRequest, dto.NewMessage("no updatable fields in payload"))
		return
	}

	result, err := c.scholarships.Update(ctx.Request.Context(), ctx.Param("id"), set)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, result)
}

// DeleteScholarship removes a listing by id
// @Summary Delete a scholarship
// @Tags scholarships
// @Produce json
// @Security BearerAuth
// @Param id path string true "Scholarship id"
// @Success 200 {object} dto.DeleteResponse
// @Failure 403 {object} dto.MessageResponse
// @Router /scholar/{id} [delete]
func (c *ScholarshipController) DeleteScholarship(ctx *gin.Context) {
	deleted, err := c.scholarships.Delete(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.DeleteResponse{DeletedCount: deleted})
}
