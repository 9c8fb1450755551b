package repositories

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/tasnim/scholarhub/internal/app/models"
)

// PaymentRepository handles database operations for recorded payments
type PaymentRepository struct {
	collection *mongo.Collection
}

// NewPaymentRepository creates a new payment repository
func NewPaymentRepository(database *mongo.Database) *PaymentRepository {
	return &PaymentRepository{
		collection: database.Collection(PaymentsCollection),
	}
}

// FindByEmail retrieves all payments recorded for a student
func (r *PaymentRepository) FindByEmail(ctx context.Context, email string) ([]models.Payment, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"studentEmail": email})
	if err != nil {
		return nil, fmt.Errorf("error retrieving payments: %w", err)
	}
	defer cursor.Close(ctx)

	payments := []models.Payment{}
	if err := cursor.All(ctx, &payments); err != nil {
		return nil, fmt.Errorf("error decoding payments: %w", err)
	}

	return payments, nil
}

// Insert records a completed payment
func (r *PaymentRepository) Insert(ctx context.Context, payment *models.Payment) (string, error) {
	result, err := r.collection.InsertOne(ctx, payment)
	if err != nil {
		return "", fmt.Errorf("error inserting payment: %w", err)
	}

	return insertedHex(result), nil
}
