package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Provider identifies how an account authenticates.
type Provider string

const (
	ProviderEmail    Provider = "EMAIL"
	ProviderGoogle   Provider = "GOOGLE"
	ProviderGithub   Provider = "GITHUB"
	ProviderFacebook Provider = "FACEBOOK"
)

// Account links a user to an authentication provider. For the EMAIL
// provider, ProviderID mirrors the owning user's email.
type Account struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	UserID     primitive.ObjectID `bson:"userId" json:"userId"`
	Provider   Provider           `bson:"provider" json:"provider"`
	ProviderID string             `bson:"providerId" json:"providerId"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
}
