package services

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"postpulse/internal/repository"
	"postpulse/model"
)

// AddComment inserts the comment document, then appends its id to the parent
// post's comment list. The two writes are independent: a crash between them
// leaves a comment without a backlink. That gap is tolerated, not repaired.
func AddComment(ctx context.Context, comments repository.CommentRepository, posts repository.PostRepository, c model.Comment) (model.Comment, error) {
	id, err := comments.Insert(ctx, c)
	if err != nil {
		return model.Comment{}, err
	}
	c.ID = id

	if err := posts.PushCommentID(ctx, c.PostID, id); err != nil {
		return model.Comment{}, err
	}
	return c, nil
}

// ReportComment soft-hides a comment: the report flag is set and the id is
// pulled from the parent post's list, so the default comment listing no
// longer sees it. Returns false when the comment does not exist.
func ReportComment(ctx context.Context, comments repository.CommentRepository, posts repository.PostRepository, id bson.ObjectID, feedback string) (bool, error) {
	c, err := comments.Get(ctx, id)
	if err != nil {
		return false, err
	}
	if c == nil {
		return false, nil
	}

	if err := comments.SetReport(ctx, id, feedback); err != nil {
		return false, err
	}
	if err := posts.PullCommentID(ctx, c.PostID, id); err != nil {
		return false, err
	}
	return true, nil
}

// RestoreComment undoes a report. The id is pushed back at the end of the
// post's list, not at its original position.
func RestoreComment(ctx context.Context, comments repository.CommentRepository, posts repository.PostRepository, id bson.ObjectID) (bool, error) {
	c, err := comments.Get(ctx, id)
	if err != nil {
		return false, err
	}
	if c == nil {
		return false, nil
	}

	if err := comments.ClearReport(ctx, id); err != nil {
		return false, err
	}
	if err := posts.PushCommentID(ctx, c.PostID, id); err != nil {
		return false, err
	}
	return true, nil
}
