package model

import (
	"go.mongodb.org/mongo-driver/v2/bson"
)

const (
	RoleAdmin = "admin"

	TierBronze = "Bronze"
	TierGold   = "Gold"
)

type User struct {
	ID           bson.ObjectID `json:"id"           bson:"_id,omitempty"`
	Name         string        `json:"name"         bson:"name"`
	Email        string        `json:"email"        bson:"email"`
	Role         string        `json:"role,omitempty" bson:"role,omitempty"`
	Subscription string        `json:"subscription" bson:"subscription"`
	Timestamp    int64         `json:"timestamp"    bson:"timestamp"`
}
