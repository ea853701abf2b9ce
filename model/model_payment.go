package model

import (
	"go.mongodb.org/mongo-driver/v2/bson"
)

type Payment struct {
	ID        bson.ObjectID `json:"id"        bson:"_id,omitempty"`
	Email     string        `json:"email"     bson:"email"`
	Price     float64       `json:"price"     bson:"price"`
	Timestamp int64         `json:"timestamp" bson:"timestamp"`
}
