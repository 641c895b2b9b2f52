package model

import "go.mongodb.org/mongo-driver/bson/primitive"

const (
	RoleAdmin = "admin"
)

// User represents a registered user. Role is absent for regular users and
// set to "admin" by the promote operation.
type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email    string             `bson:"email" json:"email"`
	Name     string             `bson:"name,omitempty" json:"name,omitempty"`
	PhotoURL string             `bson:"photoURL,omitempty" json:"photoURL,omitempty"`
	Role     string             `bson:"role,omitempty" json:"role,omitempty"`
}

// IsAdmin reports whether the user holds the admin role. A missing role
// field means a regular user.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}
