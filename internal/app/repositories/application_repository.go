package repositories

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/tasnim/scholarhub/internal/app/models/dto"
	"github.com/tasnim/scholarhub/internal/pkg/apperrors"
)

// ApplicationRepository handles database operations for submitted
// applications. Application documents carry arbitrary form fields, so they
// are stored and returned as raw bson maps.
type ApplicationRepository struct {
	collection *mongo.Collection
}

// NewApplicationRepository creates a new application repository
func NewApplicationRepository(database *mongo.Database) *ApplicationRepository {
	return &ApplicationRepository{
		collection: database.Collection(ApplicationsCollection),
	}
}

// Find retrieves applications matching the filter
func (r *ApplicationRepository) Find(ctx context.Context, filter bson.M) ([]bson.M, error) {
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error retrieving applications: %w", err)
	}
	defer cursor.Close(ctx)

	applications := []bson.M{}
	if err := cursor.All(ctx, &applications); err != nil {
		return nil, fmt.Errorf("error decoding applications: %w", err)
	}

	return applications, nil
}

// FindByID retrieves an application by id
func (r *ApplicationRepository) FindByID(ctx context.Context, id string) (bson.M, error) {
	oid, err := objectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	var application bson.M
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&application)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrApplicationNotFound
		}
		return nil, fmt.Errorf("error retrieving application: %w", err)
	}

	return application, nil
}

// Insert stores a submitted application verbatim
func (r *ApplicationRepository) Insert(ctx context.Context, doc bson.M) (string, error) {
	result, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("error inserting application: %w", err)
	}

	return insertedHex(result), nil
}

// Update sets the given fields on an application
func (r *ApplicationRepository) Update(ctx context.Context, id string, set bson.M) (*dto.UpdateResponse, error) {
	oid, err := objectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	result, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": set},
	)
	if err != nil {
		return nil, fmt.Errorf("error updating application: %w", err)
	}

	return updateResponse(result), nil
}

// Delete removes an application by id
func (r *ApplicationRepository) Delete(ctx context.Context, id string) (int64, error) {
	oid, err := objectIDFromHex(id)
	if err != nil {
		return 0, err
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return 0, fmt.Errorf("error deleting application: %w", err)
	}

	return result.DeletedCount, nil
}

// Count counts applications matching the filter
func (r *ApplicationRepository) Count(ctx context.Context, filter bson.M) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("error counting applications: %w", err)
	}

	return count, nil
}

// EstimatedCount returns the approximate number of applications
func (r *ApplicationRepository) EstimatedCount(ctx context.Context) (int64, error) {
	count, err := r.collection.EstimatedDocumentCount(ctx)
	if err != nil {
		return 0, fmt.Errorf("error counting applications: %w", err)
	}

	return count, nil
}
