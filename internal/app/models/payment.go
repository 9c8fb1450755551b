package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment defines a document in the 'payments' collection, recorded after
// a successful payment-intent round trip with the provider.
type Payment struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	StudentEmail  string             `bson:"studentEmail" json:"studentEmail"`
	StudentName   string             `bson:"studentName,omitempty" json:"studentName,omitempty"`
	ScholarshipID string             `bson:"scholarshipId,omitempty" json:"scholarshipId,omitempty"`
	Amount        float64            `bson:"amount" json:"amount"`
	TransactionID string             `bson:"transactionId,omitempty" json:"transactionId,omitempty"`
	Date          string             `bson:"date,omitempty" json:"date,omitempty"`
}
