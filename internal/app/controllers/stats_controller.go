package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/tasnim/scholarhub/internal/app/models"
	"github.com/tasnim/scholarhub/internal/app/models/dto"
	"github.com/tasnim/scholarhub/internal/app/repositories"
	"github.com/tasnim/scholarhub/internal/middleware"
)

// StatsController computes dashboard aggregates. Counts are computed per
// request; nothing is memoized.
type StatsController struct {
	applications repositories.ApplicationStore
	reviews      repositories.ReviewStore
	scholarships repositories.ScholarshipStore
	users        repositories.UserStore
}

// NewStatsController creates a new StatsController
func NewStatsController(
	applications repositories.ApplicationStore,
	reviews repositories.ReviewStore,
	scholarships repositories.ScholarshipStore,
	users repositories.UserStore,
) *StatsController {
	return &StatsController{
		applications: applications,
		reviews:      reviews,
		scholarships: scholarships,
		users:        users,
	}
}

// GetUserStats aggregates one applicant's dashboard counts. Callers may
// only read their own stats.
func (c *StatsController) GetUserStats(ctx *gin.Context) {
	email := ctx.Param("email")
	if email != ctx.GetString(middleware.ContextEmailKey) {
		ctx.JSON(http.StatusForbidden, dto.NewMessage("forbidden access"))
		return
	}

	reqCtx := ctx.Request.Context()

	total, err := c.applications.Count(reqCtx, bson.M{"userEmail": email})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	completed, err := c.applications.Count(reqCtx, bson.M{
		"userEmail":         email,
		"applicationStatus": models.ApplicationStatusCompleted,
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	processing, err := c.applications.Count(reqCtx, bson.M{
		"userEmail":         email,
		"applicationStatus": models.ApplicationStatusProcessing,
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	reviews, err := c.reviews.Count(reqCtx, bson.M{"userEmail": email})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.UserStatsResponse{
		TotalApplications: total,
		Completed:         completed,
		Processing:        processing,
		Reviews:           reviews,
	})
}

// GetAdminStats aggregates platform-wide counts for the admin dashboard
func (c *StatsController) GetAdminStats(ctx *gin.Context) {
	reqCtx := ctx.Request.Context()

	totalScholarships, err := c.scholarships.EstimatedCount(reqCtx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	totalReviews, err := c.reviews.EstimatedCount(reqCtx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	applications, err := c.applications.EstimatedCount(reqCtx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	applicants, err := c.users.CountByRole(reqCtx, models.RoleUser)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.AdminStatsResponse{
		TotalScholarships: totalScholarships,
		TotalReviews:      totalReviews,
		Applications:      applications,
		TotalApplicants:   applicants,
	})
}
