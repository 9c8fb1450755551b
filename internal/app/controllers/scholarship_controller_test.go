package controllers

import (
	"context"
	"net/http"
	"sort"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/tasnim/scholarhub/internal/app/models"
	"github.com/tasnim/scholarhub/internal/app/models/dto"
	"github.com/tasnim/scholarhub/internal/pkg/apperrors"
)

type stubScholarshipStore struct {
	fixtures      []models.Scholarship
	receivedLimit int64
	lastUpdateSet bson.M
}

func (s *stubScholarshipStore) FindAll(ctx context.Context) ([]models.Scholarship, error) {
	return s.fixtures, nil
}

// FindTop mirrors the store contract: fee ascending, post date descending,
// capped at limit
func (s *stubScholarshipStore) FindTop(ctx context.Context, limit int64) ([]models.Scholarship, error) {
	s.receivedLimit = limit

	sorted := append([]models.Scholarship{}, s.fixtures...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].ApplicationFees != sorted[j].ApplicationFees {
			return sorted[i].ApplicationFees < sorted[j].ApplicationFees
		}
		return sorted[i].ScholarshipPostDate > sorted[j].ScholarshipPostDate
	})

	if int64(len(sorted)) > limit {
		sorted = sorted[:limit]
	}
	return sorted, nil
}

func (s *stubScholarshipStore) FindByID(ctx context.Context, id string) (*models.Scholarship, error) {
	for i := range s.fixtures {
		if s.fixtures[i].ID.Hex() == id {
			return &s.fixtures[i], nil
		}
	}
	return nil, apperrors.ErrScholarshipNotFound
}

func (s *stubScholarshipStore) Insert(ctx context.Context, scholarship *models.Scholarship) (string, error) {
	return "65f000000000000000000002", nil
}

func (s *stubScholarshipStore) Update(ctx context.Context, id string, set bson.M) (*dto.UpdateResponse, error) {
	s.lastUpdateSet = set
	return &dto.UpdateResponse{MatchedCount: 1, ModifiedCount: 1}, nil
}

func (s *stubScholarshipStore) Delete(ctx context.Context, id string) (int64, error) {
	return 0, nil
}

func (s *stubScholarshipStore) EstimatedCount(ctx context.Context) (int64, error) {
	return int64(len(s.fixtures)), nil
}

func scholarshipFixtures() []models.Scholarship {
	return []models.Scholarship{
		{ScholarshipName: "A", UniversityName: "U1", ApplicationFees: 50, ScholarshipPostDate: "2024-01-01"},
		{ScholarshipName: "B", UniversityName: "U2", ApplicationFees: 10, ScholarshipPostDate: "2024-03-01"},
		{ScholarshipName: "C", UniversityName: "U3", ApplicationFees: 10, ScholarshipPostDate: "2024-05-01"},
		{ScholarshipName: "D", UniversityName: "U4", ApplicationFees: 25, ScholarshipPostDate: "2024-02-01"},
		{ScholarshipName: "E", UniversityName: "U5", ApplicationFees: 80, ScholarshipPostDate: "2024-04-01"},
		{ScholarshipName: "F", UniversityName: "U6", ApplicationFees: 15, ScholarshipPostDate: "2024-01-15"},
		{ScholarshipName: "G", UniversityName: "U7", ApplicationFees: 5, ScholarshipPostDate: "2024-06-01"},
	}
}

func newScholarshipRouter(store *stubScholarshipStore) *gin.Engine {
	c := NewScholarshipController(store)
	router := gin.New()
	router.GET("/scholar/top", c.GetTopScholarships)
	router.GET("/scholar/:id", c.GetScholarshipByID)
	router.POST("/scholar", c.CreateScholarship)
	router.PATCH("/scholar/:id", c.UpdateScholarship)
	router.DELETE("/scholar/:id", c.DeleteScholarship)
	return router
}

func TestGetTopScholarshipsOrderingAndCap(t *testing.T) {
	store := &stubScholarshipStore{fixtures: scholarshipFixtures()}
	router := newScholarshipRouter(store)

	rec := performJSON(t, router, http.MethodGet, "/scholar/top", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 6, store.receivedLimit)

	top := decodeJSON[[]models.Scholarship](t, rec)
	require.LessOrEqual(t, len(top), 6)

	for i := 1; i < len(top); i++ {
		prev, cur := top[i-1], top[i]
		assert.LessOrEqual(t, prev.ApplicationFees, cur.ApplicationFees)
		if prev.ApplicationFees == cur.ApplicationFees {
			assert.GreaterOrEqual(t, prev.ScholarshipPostDate, cur.ScholarshipPostDate)
		}
	}
}

func TestGetScholarshipByIDNotFound(t *testing.T) {
	store := &stubScholarshipStore{}
	router := newScholarshipRouter(store)

	rec := performJSON(t, router, http.MethodGet, "/scholar/65f000000000000000000099", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "message")
}

func TestCreateScholarshipRequiresNames(t *testing.T) {
	store := &stubScholarshipStore{}
	router := newScholarshipRouter(store)

	rec := performJSON(t, router, http.MethodPost, "/scholar", map[string]interface{}{
		"applicationFees": 20,
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateScholarshipDropsUnknownFields(t *testing.T) {
	store := &stubScholarshipStore{}
	router := newScholarshipRouter(store)

	rec := performJSON(t, router, http.MethodPatch, "/scholar/65f000000000000000000002",
		map[string]interface{}{
			"scholarshipName": "Renamed",
			"tuitionFees":     1200,
			"role":            "admin",
			"_id":             "tampered",
		})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, bson.M{
		"scholarshipName": "Renamed",
		"tuitionFees":     float64(1200),
	}, store.lastUpdateSet)
}

func TestUpdateScholarshipWithNoAllowedFields(t *testing.T) {
	store := &stubScholarshipStore{}
	router := newScholarshipRouter(store)

	rec := performJSON(t, router, http.MethodPatch, "/scholar/65f000000000000000000002",
		map[string]interface{}{"role": "admin"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, store.lastUpdateSet)
}

func TestDeleteScholarshipMissingIDStillSucceeds(t *testing.T) {
	store := &stubScholarshipStore{}
	router := newScholarshipRouter(store)

	rec := performJSON(t, router, http.MethodDelete, "/scholar/65f000000000000000000002", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decodeJSON[dto.DeleteResponse](t, rec)
	assert.Zero(t, resp.DeletedCount)
}
