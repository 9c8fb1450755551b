package controllers

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/tasnim/scholarhub/internal/app/models/dto"
	"github.com/tasnim/scholarhub/internal/pkg/apperrors"
)

type stubApplicationStore struct {
	docs          []bson.M
	lastFilter    bson.M
	lastInsert    bson.M
	lastUpdateSet bson.M
}

func (s *stubApplicationStore) Find(ctx context.Context, filter bson.M) ([]bson.M, error) {
	s.lastFilter = filter
	return s.docs, nil
}

func (s *stubApplicationStore) FindByID(ctx context.Context, id string) (bson.M, error) {
	return nil, apperrors.ErrApplicationNotFound
}

func (s *stubApplicationStore) Insert(ctx context.Context, doc bson.M) (string, error) {
	s.lastInsert = doc
	return "65f000000000000000000003", nil
}

func (s *stubApplicationStore) Update(ctx context.Context, id string, set bson.M) (*dto.UpdateResponse, error) {
	s.lastUpdateSet = set
	return &dto.UpdateResponse{MatchedCount: 1, ModifiedCount: 1}, nil
}

func (s *stubApplicationStore) Delete(ctx context.Context, id string) (int64, error) {
	return 0, nil
}

func (s *stubApplicationStore) Count(ctx context.Context, filter bson.M) (int64, error) {
	return 0, nil
}

func (s *stubApplicationStore) EstimatedCount(ctx context.Context) (int64, error) {
	return int64(len(s.docs)), nil
}

func newApplicationRouter(store *stubApplicationStore) *gin.Engine {
	c := NewApplicationController(store)
	router := gin.New()
	router.GET("/scholarApplied", c.GetApplications)
	router.GET("/scholarApplied/:id", c.GetApplicationByID)
	router.POST("/scholarApplied", c.CreateApplication)
	router.PUT("/scholarApplied/:id", c.UpdateApplication)
	router.DELETE("/scholarApplied/:id", c.DeleteApplication)
	return router
}

func TestGetApplicationsWithoutFilterMatchesAll(t *testing.T) {
	store := &stubApplicationStore{docs: []bson.M{}}
	router := newApplicationRouter(store)

	rec := performJSON(t, router, http.MethodGet, "/scholarApplied", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, bson.M{}, store.lastFilter)
}

func TestGetApplicationsFiltersByEmail(t *testing.T) {
	store := &stubApplicationStore{docs: []bson.M{}}
	router := newApplicationRouter(store)

	rec := performJSON(t, router, http.MethodGet, "/scholarApplied?email=student%40example.com", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, bson.M{"userEmail": "student@example.com"}, store.lastFilter)
}

func TestGetApplicationByIDNotFound(t *testing.T) {
	store := &stubApplicationStore{}
	router := newApplicationRouter(store)

	rec := performJSON(t, router, http.MethodGet, "/scholarApplied/65f000000000000000000099", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateApplicationStoresBodyVerbatim(t *testing.T) {
	store := &stubApplicationStore{}
	router := newApplicationRouter(store)

	payload := map[string]interface{}{
		"userEmail":         "student@example.com",
		"applicationStatus": "processing",
		"sscResult":         "5.00",
	}
	rec := performJSON(t, router, http.MethodPost, "/scholarApplied", payload)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "student@example.com", store.lastInsert["userEmail"])
	assert.Equal(t, "5.00", store.lastInsert["sscResult"])
}

func TestUpdateApplicationStripsDocumentID(t *testing.T) {
	store := &stubApplicationStore{}
	router := newApplicationRouter(store)

	rec := performJSON(t, router, http.MethodPut, "/scholarApplied/65f000000000000000000003",
		map[string]interface{}{
			"_id":               "tampered",
			"applicationStatus": "completed",
		})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, bson.M{"applicationStatus": "completed"}, store.lastUpdateSet)
}

func TestDeleteApplicationMissingIDStillSucceeds(t *testing.T) {
	store := &stubApplicationStore{}
	router := newApplicationRouter(store)

	rec := performJSON(t, router, http.MethodDelete, "/scholarApplied/65f000000000000000000003", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decodeJSON[dto.DeleteResponse](t, rec)
	assert.Zero(t, resp.DeletedCount)
}
