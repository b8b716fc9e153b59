// internal/domain/user.go
package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents an account in the user collection.
// The expense service only ever reads users, never mutates them.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Username     string             `bson:"username" json:"username"`
	Fullname     string             `bson:"fullname" json:"fullname"`
	PasswordHash string             `bson:"password" json:"-"`
}

// Session is a server-side login session referenced by the session cookie.
type Session struct {
	Token     string             `bson:"_id" json:"-"`
	UserID    primitive.ObjectID `bson:"userId" json:"userId"`
	ExpiresAt time.Time          `bson:"expiresAt" json:"expiresAt"`
}

// NewUser creates a new User instance with an already-hashed password.
func NewUser(username, fullname, passwordHash string) *User {
	return &User{
		Username:     username,
		Fullname:     fullname,
		PasswordHash: passwordHash,
	}
}
