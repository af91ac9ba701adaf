package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Workspace owns its member and project records by reference. The owner
// must also appear as a member holding the OWNER role.
type Workspace struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description" json:"description"`
	Owner       primitive.ObjectID `bson:"owner" json:"owner"`
	InviteCode  string             `bson:"inviteCode" json:"inviteCode"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}
