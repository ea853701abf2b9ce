package model

import (
	"go.mongodb.org/mongo-driver/v2/bson"
)

// VoteRecord is one entry in a post's upvote or downvote list. Votes are
// append-only and carry no dedup: the same email may appear more than once.
type VoteRecord struct {
	Email string `json:"email" bson:"email"`
}

type Post struct {
	ID        bson.ObjectID   `json:"id"        bson:"_id,omitempty"`
	Email     string          `json:"email"     bson:"email"`
	Name      string          `json:"name"      bson:"name"`
	Title     string          `json:"title"     bson:"title"`
	Body      string          `json:"body"      bson:"body"`
	Tags      []bson.ObjectID `json:"tags"      bson:"tags"`
	UpVotes   []VoteRecord    `json:"upvotes"   bson:"upvotes"`
	DownVotes []VoteRecord    `json:"downvotes" bson:"downvotes"`
	Comments  []bson.ObjectID `json:"comments"  bson:"comments"`
	Timestamp int64           `json:"timestamp" bson:"timestamp"`
}

// FeedOptions narrows and pages the post feed.
type FeedOptions struct {
	Tags []bson.ObjectID
	Sort string // "popularity" or "" (newest first)
	Page int64
	Size int64
}

const SortPopularity = "popularity"
