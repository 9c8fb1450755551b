package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Review defines a document in the 'reviews' collection. UniversityID
// references the reviewed scholarship's university by external id; no
// foreign-key enforcement exists.
type Review struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	UniversityID    string             `bson:"universityId" json:"universityId"`
	UniversityName  string             `bson:"universityName,omitempty" json:"universityName,omitempty"`
	ScholarshipName string             `bson:"scholarshipName,omitempty" json:"scholarshipName,omitempty"`
	UserEmail       string             `bson:"userEmail" json:"userEmail"`
	UserName        string             `bson:"userName,omitempty" json:"userName,omitempty"`
	UserImage       string             `bson:"userImage,omitempty" json:"userImage,omitempty"`
	Rating          float64            `bson:"rating" json:"rating"`
	Comment         string             `bson:"comment" json:"comment"`
	Date            string             `bson:"date" json:"date"`
}

// ReviewUpdateAllowList restricts partial updates to the fields a reviewer
// may revise.
var ReviewUpdateAllowList = []string{
	"rating",
	"comment",
	"date",
}
