package model

import (
	"go.mongodb.org/mongo-driver/v2/bson"
)

type FeedAuthor struct {
	Name  string `json:"name"  bson:"name"`
	Email string `json:"email" bson:"email"`
}

// FeedPost is the denormalized row served to clients: the post joined with
// its author record and resolved tag documents, plus the vote tally.
type FeedPost struct {
	ID         bson.ObjectID   `json:"_id"        bson:"_id"`
	Title      string          `json:"title"      bson:"title"`
	Body       string          `json:"body"       bson:"body"`
	Author     FeedAuthor      `json:"author"     bson:"author"`
	Tags       []Tag           `json:"tags"       bson:"tags"`
	UpVotes    []VoteRecord    `json:"upvotes"    bson:"upvotes"`
	DownVotes  []VoteRecord    `json:"downvotes"  bson:"downvotes"`
	Comments   []bson.ObjectID `json:"comments"   bson:"comments"`
	TotalVotes int             `json:"totalVotes" bson:"totalVotes"`
	Timestamp  int64           `json:"timestamp"  bson:"timestamp"`
}

// CommentView is a comment joined with its author record.
type CommentView struct {
	ID      bson.ObjectID `json:"_id"     bson:"_id"`
	PostID  bson.ObjectID `json:"postId"  bson:"post_id"`
	Comment string        `json:"comment" bson:"comment"`
	Author  FeedAuthor    `json:"author"  bson:"author"`
}
