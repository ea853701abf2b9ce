package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"postpulse/model"
)

type TagRepository interface {
	List(ctx context.Context) ([]model.Tag, error)
	Insert(ctx context.Context, t model.Tag) (bson.ObjectID, error)
}

type mongoTagRepo struct {
	col *mongo.Collection
}

func NewMongoTagRepo(db *mongo.Database) TagRepository {
	return &mongoTagRepo{col: db.Collection("tags")}
}

func (r *mongoTagRepo) List(ctx context.Context) ([]model.Tag, error) {
	cur, err := r.col.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	tags := []model.Tag{}
	if err := cur.All(ctx, &tags); err != nil {
		return nil, err
	}
	return tags, nil
}

func (r *mongoTagRepo) Insert(ctx context.Context, t model.Tag) (bson.ObjectID, error) {
	res, err := r.col.InsertOne(ctx, t)
	if err != nil {
		return bson.NilObjectID, err
	}
	return res.InsertedID.(bson.ObjectID), nil
}
