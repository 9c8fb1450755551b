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

// ReviewController handles review operations
type ReviewController struct {
	reviews repositories.ReviewStore
}

// NewReviewController creates a new ReviewController
func NewReviewController(reviews repositories.ReviewStore) *ReviewController {
	return &ReviewController{
		reviews: reviews,
	}
}

// GetReviews lists reviews, optionally filtered by university id and
// reviewer email
func (c *ReviewController) GetReviews(ctx *gin.Context) {
	filter := helpers.NewFilter().
		Eq("universityId", ctx.Query("universityId")).
		Eq("userEmail", ctx.Query("email")).
		Build()

	reviews, err := c.reviews.Find(ctx.Request.Context(), filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, reviews)
}

// CreateReview stores a new review. The reviewer email defaults to the
// token identity when the payload omits it.
func (c *ReviewController) CreateReview(ctx *gin.Context) {
	var review models.Review
	if err := ctx.ShouldBindJSON(&review); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewMessage("invalid review payload"))
		return
	}

	if review.UserEmail == "" {
		review.UserEmail = ctx.GetString(middleware.ContextEmailKey)
	}

	insertedID, err := c.reviews.Insert(ctx.Request.Context(), &review)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.InsertResponse{InsertedID: &insertedID})
}

// UpdateReview revises a review; only rating, comment and date may change
func (c *ReviewController) UpdateReview(ctx *gin.Context) {
	var payload map[string]interface{}
	if err := ctx.ShouldBindJSON(&payload); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewMessage("invalid update payload"))
		return
	}

	set := helpers.ProjectAllowed(payload, models.ReviewUpdateAllowList)
	if len(set) == 0 {
		ctx.JSON(http.StatusBadRequest, dto.NewMessage("no updatable fields in payload"))
		return
	}

	result, err := c.reviews.Update(ctx.Request.Context(), ctx.Param("id"), set)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, result)
}

// DeleteReview removes a review by id
func (c *ReviewController) DeleteReview(ctx *gin.Context) {
	deleted, err := c.reviews.Delete(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.DeleteResponse{DeletedCount: deleted})
}
