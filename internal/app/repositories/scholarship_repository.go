package repositories

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/tasnim/scholarhub/internal/app/models"
	"github.com/tasnim/scholarhub/internal/app/models/dto"
	"github.com/tasnim/scholarhub/internal/pkg/apperrors"
)

// ScholarshipRepository handles database operations for scholarship listings
type ScholarshipRepository struct {
	collection *mongo.Collection
}

// NewScholarshipRepository creates a new scholarship repository
func NewScholarshipRepository(database *mongo.Database) *ScholarshipRepository {
	return &ScholarshipRepository{
		collection: database.Collection(ScholarshipsCollection),
	}
}

// FindAll retrieves all scholarship listings
func (r *ScholarshipRepository) FindAll(ctx context.Context) ([]models.Scholarship, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("error retrieving scholarships: %w", err)
	}
	defer cursor.Close(ctx)

	scholarships := []models.Scholarship{}
	if err := cursor.All(ctx, &scholarships); err != nil {
		return nil, fmt.Errorf("error decoding scholarships: %w", err)
	}

	return scholarships, nil
}

// FindTop retrieves up to limit listings ordered by ascending application
// fee and, within equal fee, most recent post date first
func (r *ScholarshipRepository) FindTop(ctx context.Context, limit int64) ([]models.Scholarship, error) {
	opts := options.Find().
		SetSort(bson.D{
			{Key: "applicationFees", Value: 1},
			{Key: "scholarshipPostDate", Value: -1},
		}).
		SetLimit(limit)

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("error retrieving top scholarships: %w", err)
	}
	defer cursor.Close(ctx)

	scholarships := []models.Scholarship{}
	if err := cursor.All(ctx, &scholarships); err != nil {
		return nil, fmt.Errorf("error decoding top scholarships: %w", err)
	}

	return scholarships, nil
}

// FindByID retrieves a scholarship by id
func (r *ScholarshipRepository) FindByID(ctx context.Context, id string) (*models.Scholarship, error) {
	oid, err := objectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	var scholarship models.Scholarship
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&scholarship)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrScholarshipNotFound
		}
		return nil, fmt.Errorf("error retrieving scholarship: %w", err)
	}

	return &scholarship, nil
}

// Insert creates a new scholarship listing
func (r *ScholarshipRepository) Insert(ctx context.Context, scholarship *models.Scholarship) (string, error) {
	result, err := r.collection.InsertOne(ctx, scholarship)
	if err != nil {
		return "", fmt.Errorf("error inserting scholarship: %w", err)
	}

	return insertedHex(result), nil
}

// Update applies an already allow-listed partial update to a listing
func (r *ScholarshipRepository) Update(ctx context.Context, id string, set bson.M) (*dto.UpdateResponse, error) {
	oid, err := objectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	result, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": set},
	)
	if err != nil {
		return nil, fmt.Errorf("error updating scholarship: %w", err)
	}

	return updateResponse(result), nil
}

// Delete removes a scholarship by id
func (r *ScholarshipRepository) Delete(ctx context.Context, id string) (int64, error) {
	oid, err := objectIDFromHex(id)
	if err != nil {
		return 0, err
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return 0, fmt.Errorf("error deleting scholarship: %w", err)
	}

	return result.DeletedCount, nil
}

// EstimatedCount returns the approximate number of listings
func (r *ScholarshipRepository) EstimatedCount(ctx context.Context) (int64, error) {
	count, err := r.collection.EstimatedDocumentCount(ctx)
	if err != nil {
		return 0, fmt.Errorf("error counting scholarships: %w", err)
	}

	return count, nil
}
