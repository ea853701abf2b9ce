package model

import (
	"go.mongodb.org/mongo-driver/v2/bson"
)

// Report marks a comment as soft-hidden pending moderation.
type Report struct {
	Feedback string `json:"feedback" bson:"feedback"`
}

type Comment struct {
	ID     bson.ObjectID `json:"id"      bson:"_id,omitempty"`
	PostID bson.ObjectID `json:"postId"  bson:"post_id"`
	Email  string        `json:"email"   bson:"email"`
	Text   string        `json:"comment" bson:"comment"`
	Report *Report       `json:"report,omitempty" bson:"report,omitempty"`
}

func (c *Comment) Reported() bool { return c.Report != nil }
