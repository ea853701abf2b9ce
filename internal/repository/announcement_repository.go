package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"postpulse/model"
)

type AnnouncementRepository interface {
	Insert(ctx context.Context, a model.Announcement) (bson.ObjectID, error)
	// ListSince returns announcements at or after the given unix-millisecond
	// timestamp, newest first.
	ListSince(ctx context.Context, sinceMillis int64) ([]model.Announcement, error)
}

type mongoAnnouncementRepo struct {
	col *mongo.Collection
}

func NewMongoAnnouncementRepo(db *mongo.Database) AnnouncementRepository {
	return &mongoAnnouncementRepo{col: db.Collection("announcements")}
}

func (r *mongoAnnouncementRepo) Insert(ctx context.Context, a model.Announcement) (bson.ObjectID, error) {
	res, err := r.col.InsertOne(ctx, a)
	if err != nil {
		return bson.NilObjectID, err
	}
	return res.InsertedID.(bson.ObjectID), nil
}

func (r *mongoAnnouncementRepo) ListSince(ctx context.Context, sinceMillis int64) ([]model.Announcement, error) {
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}})

	cur, err := r.col.Find(ctx, bson.M{"timestamp": bson.M{"$gte": sinceMillis}}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	items := []model.Announcement{}
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}
