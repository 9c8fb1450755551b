package controllers

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/tasnim/scholarhub/internal/app/models"
	"github.com/tasnim/scholarhub/internal/app/models/dto"
)

// statsApplicationStore answers count queries the way the stats handler
// issues them: with and without an applicationStatus clause
type statsApplicationStore struct {
	stubApplicationStore
	total     int64
	byStatus  map[string]int64
	estimated int64
}

func (s *statsApplicationStore) Count(ctx context.Context, filter bson.M) (int64, error) {
	if status, ok := filter["applicationStatus"]; ok {
		return s.byStatus[status.(string)], nil
	}
	return s.total, nil
}

func (s *statsApplicationStore) EstimatedCount(ctx context.Context) (int64, error) {
	return s.estimated, nil
}

func newStatsRouter(
	apps *statsApplicationStore,
	reviews *stubReviewStore,
	scholarships *stubScholarshipStore,
	users *stubUserStore,
	tokenEmail string,
) *gin.Engine {
	c := NewStatsController(apps, reviews, scholarships, users)
	router := gin.New()
	router.Use(identityMiddleware(tokenEmail))
	router.GET("/userDashboard/stats/:email", c.GetUserStats)
	router.GET("/admin-stats", c.GetAdminStats)
	return router
}

func TestGetUserStatsRejectsForeignEmail(t *testing.T) {
	router := newStatsRouter(&statsApplicationStore{}, &stubReviewStore{}, &stubScholarshipStore{}, &stubUserStore{}, "me@example.com")

	rec := performJSON(t, router, http.MethodGet, "/userDashboard/stats/other@example.com", nil)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestGetUserStatsAggregatesCounts(t *testing.T) {
	apps := &statsApplicationStore{
		total: 3,
		byStatus: map[string]int64{
			models.ApplicationStatusCompleted:  1,
			models.ApplicationStatusProcessing: 1,
		},
	}
	reviews := &stubReviewStore{countValue: 2}
	router := newStatsRouter(apps, reviews, &stubScholarshipStore{}, &stubUserStore{}, "me@example.com")

	rec := performJSON(t, router, http.MethodGet, "/userDashboard/stats/me@example.com", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	stats := decodeJSON[dto.UserStatsResponse](t, rec)
	assert.Equal(t, dto.UserStatsResponse{
		TotalApplications: 3,
		Completed:         1,
		Processing:        1,
		Reviews:           2,
	}, stats)
}

func TestGetAdminStatsAggregatesCounts(t *testing.T) {
	apps := &statsApplicationStore{estimated: 40}
	reviews := &stubReviewStore{estimated: 25}
	scholarships := &stubScholarshipStore{fixtures: scholarshipFixtures()}
	users := &stubUserStore{applicantCount: 12}
	router := newStatsRouter(apps, reviews, scholarships, users, "admin@example.com")

	rec := performJSON(t, router, http.MethodGet, "/admin-stats", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	stats := decodeJSON[dto.AdminStatsResponse](t, rec)
	assert.Equal(t, dto.AdminStatsResponse{
		TotalScholarships: 7,
		TotalReviews:      25,
		Applications:      40,
		TotalApplicants:   12,
	}, stats)
}
