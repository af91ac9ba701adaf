package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is a primary identity record. Email is unique case-insensitively
// across users and EMAIL-provider accounts.
type User struct {
	ID               primitive.ObjectID  `bson:"_id,omitempty" json:"_id"`
	Name             string              `bson:"name" json:"name"`
	Email            string              `bson:"email" json:"email"`
	Password         string              `bson:"password" json:"-"`
	IsActive         bool                `bson:"isActive" json:"isActive"`
	CurrentWorkspace *primitive.ObjectID `bson:"currentWorkspace,omitempty" json:"currentWorkspace,omitempty"`
	CreatedAt        time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt        time.Time           `bson:"updatedAt" json:"updatedAt"`
}
