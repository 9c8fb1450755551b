package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/tasnim/scholarhub/internal/app/models"
	"github.com/tasnim/scholarhub/internal/app/models/dto"
	"github.com/tasnim/scholarhub/internal/pkg/apperrors"
)

// Collection names in the scholarship database
const (
	UsersCollection        = "users"
	ScholarshipsCollection = "scholars"
	ApplicationsCollection = "applied"
	ReviewsCollection      = "reviews"
	PaymentsCollection     = "payments"
)

// UserStore is the data access surface for the users collection
type UserStore interface {
	FindAll(ctx context.Context) ([]models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Insert(ctx context.Context, user *models.User) (string, error)
	UpdateRole(ctx context.Context, id string, role models.Role) (*dto.UpdateResponse, error)
	Delete(ctx context.Context, id string) (int64, error)
	CountByRole(ctx context.Context, role models.Role) (int64, error)
}

// ScholarshipStore is the data access surface for the scholars collection
type ScholarshipStore interface {
	FindAll(ctx context.Context) ([]models.Scholarship, error)
	FindTop(ctx context.Context, limit int64) ([]models.Scholarship, error)
	FindByID(ctx context.Context, id string) (*models.Scholarship, error)
	Insert(ctx context.Context, scholarship *models.Scholarship) (string, error)
	Update(ctx context.Context, id string, set bson.M) (*dto.UpdateResponse, error)
	Delete(ctx context.Context, id string) (int64, error)
	EstimatedCount(ctx context.Context) (int64, error)
}

// ApplicationStore is the data access surface for the applied collection.
// Applications are schema-flexible, so documents are raw bson maps.
type ApplicationStore interface {
	Find(ctx context.Context, filter bson.M) ([]bson.M, error)
	FindByID(ctx context.Context, id string) (bson.M, error)
	Insert(ctx context.Context, doc bson.M) (string, error)
	Update(ctx context.Context, id string, set bson.M) (*dto.UpdateResponse, error)
	Delete(ctx context.Context, id string) (int64, error)
	Count(ctx context.Context, filter bson.M) (int64, error)
	EstimatedCount(ctx context.Context) (int64, error)
}

// ReviewStore is the data access surface for the reviews collection
type ReviewStore interface {
	Find(ctx context.Context, filter bson.M) ([]models.Review, error)
	Insert(ctx context.Context, review *models.Review) (string, error)
	Update(ctx context.Context, id string, set bson.M) (*dto.UpdateResponse, error)
	Delete(ctx context.Context, id string) (int64, error)
	Count(ctx context.Context, filter bson.M) (int64, error)
	EstimatedCount(ctx context.Context) (int64, error)
}

// PaymentStore is the data access surface for the payments collection
type PaymentStore interface {
	FindByEmail(ctx context.Context, email string) ([]models.Payment, error)
	Insert(ctx context.Context, payment *models.Payment) (string, error)
}

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository        *UserRepository
	ScholarshipRepository *ScholarshipRepository
	ApplicationRepository *ApplicationRepository
	ReviewRepository      *ReviewRepository
	PaymentRepository     *PaymentRepository
}

// NewRepositories initializes all repositories over the shared database handle
func NewRepositories(database *mongo.Database) *Repositories {
	return &Repositories{
		UserRepository:        NewUserRepository(database),
		ScholarshipRepository: NewScholarshipRepository(database),
		ApplicationRepository: NewApplicationRepository(database),
		ReviewRepository:      NewReviewRepository(database),
		PaymentRepository:     NewPaymentRepository(database),
	}
}

// objectIDFromHex parses a path id into an ObjectID, mapping parse failures
// to the validation error the handlers surface as 400
func objectIDFromHex(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, apperrors.NewCustomError(apperrors.ErrInvalidObjectID, "invalid id: "+id)
	}
	return oid, nil
}

// updateResponse converts a driver update result into the wire shape
func updateResponse(result *mongo.UpdateResult) *dto.UpdateResponse {
	return &dto.UpdateResponse{
		MatchedCount:  result.MatchedCount,
		ModifiedCount: result.ModifiedCount,
	}
}

// insertedHex renders the driver's inserted id as a hex string
func insertedHex(result *mongo.InsertOneResult) string {
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		return oid.Hex()
	}
	return ""
}
