package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"postpulse/model"
)

// Vote list fields on a post document.
const (
	FieldUpVotes   = "upvotes"
	FieldDownVotes = "downvotes"
)

type PostRepository interface {
	Create(ctx context.Context, p model.Post) (bson.ObjectID, error)
	Get(ctx context.Context, id bson.ObjectID) (*model.Post, error)
	ListByAuthor(ctx context.Context, email string, page, size int64) ([]model.Post, error)
	CountByAuthor(ctx context.Context, email string) (int64, error)
	EstimatedCount(ctx context.Context) (int64, error)

	// PushVote appends a vote record to the named list, creating the post
	// document if the id does not resolve (upsert).
	PushVote(ctx context.Context, postID bson.ObjectID, field, voterEmail string) error

	PushCommentID(ctx context.Context, postID, commentID bson.ObjectID) error
	PullCommentID(ctx context.Context, postID, commentID bson.ObjectID) error
}

type mongoPostRepo struct {
	col *mongo.Collection
}

func NewMongoPostRepo(db *mongo.Database) PostRepository {
	return &mongoPostRepo{col: db.Collection("posts")}
}

func (r *mongoPostRepo) Create(ctx context.Context, p model.Post) (bson.ObjectID, error) {
	res, err := r.col.InsertOne(ctx, p)
	if err != nil {
		return bson.NilObjectID, err
	}
	return res.InsertedID.(bson.ObjectID), nil
}

func (r *mongoPostRepo) Get(ctx context.Context, id bson.ObjectID) (*model.Post, error) {
	var p model.Post
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *mongoPostRepo) ListByAuthor(ctx context.Context, email string, page, size int64) ([]model.Post, error) {
	if size <= 0 {
		return []model.Post{}, nil
	}
	if page < 0 {
		page = 0
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetSkip(page * size).
		SetLimit(size)

	cur, err := r.col.Find(ctx, bson.M{"email": email}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	posts := []model.Post{}
	if err := cur.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *mongoPostRepo) CountByAuthor(ctx context.Context, email string) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{"email": email})
}

func (r *mongoPostRepo) EstimatedCount(ctx context.Context) (int64, error) {
	return r.col.EstimatedDocumentCount(ctx)
}

func (r *mongoPostRepo) PushVote(ctx context.Context, postID bson.ObjectID, field, voterEmail string) error {
	_, err := r.col.UpdateOne(ctx,
		bson.M{"_id": postID},
		bson.M{"$push": bson.M{field: model.VoteRecord{Email: voterEmail}}},
		options.UpdateOne().SetUpsert(true),
	)
	return err
}

func (r *mongoPostRepo) PushCommentID(ctx context.Context, postID, commentID bson.ObjectID) error {
	_, err := r.col.UpdateOne(ctx,
		bson.M{"_id": postID},
		bson.M{"$push": bson.M{"comments": commentID}},
	)
	return err
}

func (r *mongoPostRepo) PullCommentID(ctx context.Context, postID, commentID bson.ObjectID) error {
	_, err := r.col.UpdateOne(ctx,
		bson.M{"_id": postID},
		bson.M{"$pull": bson.M{"comments": commentID}},
	)
	return err
}
