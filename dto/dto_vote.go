package dto

const (
	VoteUp   = "upvote"
	VoteDown = "downvote"
)

type VoteRequest struct {
	VoteType  string `json:"vote_type"` // "upvote" | "downvote"
	UserEmail string `json:"user_email"`
}
