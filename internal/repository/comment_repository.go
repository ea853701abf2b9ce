package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"postpulse/model"
)

type CommentRepository interface {
	Insert(ctx context.Context, c model.Comment) (bson.ObjectID, error)
	Get(ctx context.Context, id bson.ObjectID) (*model.Comment, error)
	Delete(ctx context.Context, id bson.ObjectID) error

	// ListByIDs returns author-joined views of the given comments. A comment
	// whose author record is gone drops out, same as the post feed.
	ListByIDs(ctx context.Context, ids []bson.ObjectID) ([]model.CommentView, error)
	ListAll(ctx context.Context) ([]model.CommentView, error)

	ListReported(ctx context.Context, page, size int64) ([]model.Comment, error)
	SetReport(ctx context.Context, id bson.ObjectID, feedback string) error
	ClearReport(ctx context.Context, id bson.ObjectID) error
}

type mongoCommentRepo struct {
	col *mongo.Collection
}

func NewMongoCommentRepo(db *mongo.Database) CommentRepository {
	return &mongoCommentRepo{col: db.Collection("comments")}
}

func (r *mongoCommentRepo) Insert(ctx context.Context, c model.Comment) (bson.ObjectID, error) {
	res, err := r.col.InsertOne(ctx, c)
	if err != nil {
		return bson.NilObjectID, err
	}
	return res.InsertedID.(bson.ObjectID), nil
}

func (r *mongoCommentRepo) Get(ctx context.Context, id bson.ObjectID) (*model.Comment, error) {
	var c model.Comment
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&c)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *mongoCommentRepo) Delete(ctx context.Context, id bson.ObjectID) error {
	_, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

func commentJoinStages() mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: StageLookup, Value: bson.M{
			KeyFrom:         "users",
			KeyLocalField:   "email",
			KeyForeignField: "email",
			KeyAs:           "author",
		}}},
		{{Key: StageUnwind, Value: bson.M{"path": "$author"}}},
		{{Key: StageProject, Value: bson.M{
			"_id":     1,
			"post_id": 1,
			"comment": 1,
			"author": bson.M{
				"name":  "$author.name",
				"email": "$author.email",
			},
		}}},
	}
}

func (r *mongoCommentRepo) listJoined(ctx context.Context, match bson.M) ([]model.CommentView, error) {
	pipe := mongo.Pipeline{{{Key: StageMatch, Value: match}}}
	pipe = append(pipe, commentJoinStages()...)

	cur, err := r.col.Aggregate(ctx, pipe, options.Aggregate())
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	views := []model.CommentView{}
	if err := cur.All(ctx, &views); err != nil {
		return nil, err
	}
	return views, nil
}

func (r *mongoCommentRepo) ListByIDs(ctx context.Context, ids []bson.ObjectID) ([]model.CommentView, error) {
	if len(ids) == 0 {
		return []model.CommentView{}, nil
	}
	return r.listJoined(ctx, bson.M{"_id": bson.M{"$in": ids}})
}

func (r *mongoCommentRepo) ListAll(ctx context.Context) ([]model.CommentView, error) {
	return r.listJoined(ctx, bson.M{})
}

func (r *mongoCommentRepo) ListReported(ctx context.Context, page, size int64) ([]model.Comment, error) {
	if size <= 0 {
		return []model.Comment{}, nil
	}
	if page < 0 {
		page = 0
	}
	opts := options.Find().
		SetSkip(page * size).
		SetLimit(size)

	cur, err := r.col.Find(ctx, bson.M{"report": bson.M{"$exists": true}}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	comments := []model.Comment{}
	if err := cur.All(ctx, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

func (r *mongoCommentRepo) SetReport(ctx context.Context, id bson.ObjectID, feedback string) error {
	_, err := r.col.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"report": model.Report{Feedback: feedback}}},
	)
	return err
}

func (r *mongoCommentRepo) ClearReport(ctx context.Context, id bson.ObjectID) error {
	_, err := r.col.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$unset": bson.M{"report": ""}},
	)
	return err
}
