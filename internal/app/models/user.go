package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role represents a user's access level
type Role string

const (
	// RoleUser is the default role for signed-up applicants
	RoleUser Role = "user"
	// RoleModerator can manage scholarship listings
	RoleModerator Role = "moderator"
	// RoleAdmin can manage users and listings
	RoleAdmin Role = "admin"
)

// IsValid reports whether the role is one of the known values
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleModerator, RoleAdmin:
		return true
	}
	return false
}

// User defines a document in the 'users' collection. At most one record
// exists per email.
type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name     string             `bson:"name,omitempty" json:"name,omitempty"`
	Email    string             `bson:"email" json:"email"`
	PhotoURL string             `bson:"photoURL,omitempty" json:"photoURL,omitempty"`
	Role     Role               `bson:"role,omitempty" json:"role,omitempty"`
}
