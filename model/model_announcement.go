package model

import (
	"go.mongodb.org/mongo-driver/v2/bson"
)

type Announcement struct {
	ID        bson.ObjectID `json:"id"           bson:"_id,omitempty"`
	Text      string        `json:"announcement" bson:"announcement"`
	Timestamp int64         `json:"timestamp"    bson:"timestamp"`
}
