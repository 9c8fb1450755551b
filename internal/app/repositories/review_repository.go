package repositories

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/tasnim/scholarhub/internal/app/models"
	"github.com/tasnim/scholarhub/internal/app/models/dto"
)

// ReviewRepository handles database operations for reviews
type ReviewRepository struct {
	collection *mongo.Collection
}

// NewReviewRepository creates a new review repository
func NewReviewRepository(database *mongo.Database) *ReviewRepository {
	return &ReviewRepository{
		collection: database.Collection(ReviewsCollection),
	}
}

// Find retrieves reviews matching the filter
func (r *ReviewRepository) Find(ctx context.Context, filter bson.M) ([]models.Review, error) {
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error retrieving reviews: %w", err)
	}
	defer cursor.Close(ctx)

	reviews := []models.Review{}
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, fmt.Errorf("error decoding reviews: %w", err)
	}

	return reviews, nil
}

// Insert creates a new review
func (r *ReviewRepository) Insert(ctx context.Context, review *models.Review) (string, error) {
	result, err := r.collection.InsertOne(ctx, review)
	if err != nil {
		return "", fmt.Errorf("error inserting review: %w", err)
	}

	return insertedHex(result), nil
}

// Update applies an already allow-listed partial update to a review
func (r *ReviewRepository) Update(ctx context.Context, id string, set bson.M) (*dto.UpdateResponse, error) {
	oid, err := objectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	result, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": set},
	)
	if err != nil {
		return nil, fmt.Errorf("error updating review: %w", err)
	}

	return updateResponse(result), nil
}

// Delete removes a review by id
func (r *ReviewRepository) Delete(ctx context.Context, id string) (int64, error) {
	oid, err := objectIDFromHex(id)
	if err != nil {
		return 0, err
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return 0, fmt.Errorf("error deleting review: %w", err)
	}

	return result.DeletedCount, nil
}

// Count counts reviews matching the filter
func (r *ReviewRepository) Count(ctx context.Context, filter bson.M) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("error counting reviews: %w", err)
	}

	return count, nil
}

// EstimatedCount returns the approximate number of reviews
func (r *ReviewRepository) EstimatedCount(ctx context.Context) (int64, error) {
	count, err := r.collection.EstimatedDocumentCount(ctx)
	if err != nil {
		return 0, fmt.Errorf("error counting reviews: %w", err)
	}

	return count, nil
}
