package services

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"postpulse/dto"
	"postpulse/internal/repository"
)

// Vote appends a vote record to the target post. Votes accumulate: the same
// email may vote any number of times, matching the stored-list semantics.
// Validation failures answer 200 with a message body, not a 4xx — the
// convention the frontend was built against.
func Vote(ctx context.Context, posts repository.PostRepository, postID bson.ObjectID, body dto.VoteRequest) (int, any) {
	field, ok := voteField(body.VoteType)
	if !ok {
		return statusOK(), dto.ErrorResponse{Message: "vote_type must be either 'upvote' or 'downvote'"}
	}
	if body.UserEmail == "" {
		return statusOK(), dto.ErrorResponse{Message: "user_email is required"}
	}

	if err := posts.PushVote(ctx, postID, field, body.UserEmail); err != nil {
		return statusInternalError(), dto.ErrorResponse{Message: err.Error()}
	}
	return statusOK(), bson.M{
		"acknowledged": true,
		"vote_type":    body.VoteType,
	}
}

func voteField(voteType string) (string, bool) {
	switch voteType {
	case dto.VoteUp:
		return repository.FieldUpVotes, true
	case dto.VoteDown:
		return repository.FieldDownVotes, true
	default:
		return "", false
	}
}

func statusOK() int            { return 200 }
func statusInternalError() int { return 500 }
