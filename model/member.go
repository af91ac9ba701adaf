package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Member joins a user to a workspace with a role reference. The
// (UserID, WorkspaceID) pair is unique.
type Member struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	UserID      primitive.ObjectID `bson:"userId" json:"userId"`
	WorkspaceID primitive.ObjectID `bson:"workspaceId" json:"workspaceId"`
	Role        primitive.ObjectID `bson:"role" json:"role"`
	JoinedAt    time.Time          `bson:"joinedAt" json:"joinedAt"`
}
