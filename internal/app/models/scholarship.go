package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Scholarship defines a document in the 'scholars' collection
type Scholarship struct {
	ID                  primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	ScholarshipName     string             `bson:"scholarshipName" json:"scholarshipName"`
	UniversityName      string             `bson:"universityName" json:"universityName"`
	UniversityImage     string             `bson:"universityImage,omitempty" json:"universityImage,omitempty"`
	UniversityCountry   string             `bson:"universityCountry" json:"universityCountry"`
	UniversityCity      string             `bson:"universityCity" json:"universityCity"`
	UniversityRank      int                `bson:"universityRank,omitempty" json:"universityRank,omitempty"`
	SubjectCategory     string             `bson:"subjectCategory,omitempty" json:"subjectCategory,omitempty"`
	ScholarshipCategory string             `bson:"scholarshipCategory,omitempty" json:"scholarshipCategory,omitempty"`
	Degree              string             `bson:"degree,omitempty" json:"degree,omitempty"`
	TuitionFees         float64            `bson:"tuitionFees,omitempty" json:"tuitionFees,omitempty"`
	ApplicationFees     float64            `bson:"applicationFees" json:"applicationFees"`
	ServiceCharge       float64            `bson:"serviceCharge,omitempty" json:"serviceCharge,omitempty"`
	ApplicationDeadline string             `bson:"applicationDeadline" json:"applicationDeadline"`
	ScholarshipPostDate string             `bson:"scholarshipPostDate" json:"scholarshipPostDate"`
	PostedEmail         string             `bson:"postedEmail,omitempty" json:"postedEmail,omitempty"`
}

// ScholarshipUpdateAllowList is the set of fields a partial update may
// touch; anything else in the payload is dropped.
var ScholarshipUpdateAllowList = []string{
	"scholarshipName",
	"applicationDeadline",
	"applicationFees",
	"postedEmail",
	"scholarshipCategory",
	"scholarshipPostDate",
	"serviceCharge",
	"subjectCategory",
	"tuitionFees",
	"universityCity",
	"universityCountry",
	"universityName",
	"universityRank",
}
