package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"postpulse/model"
)

type PaymentRepository interface {
	Insert(ctx context.Context, p model.Payment) (bson.ObjectID, error)
}

type mongoPaymentRepo struct {
	col *mongo.Collection
}

func NewMongoPaymentRepo(db *mongo.Database) PaymentRepository {
	return &mongoPaymentRepo{col: db.Collection("payments")}
}

func (r *mongoPaymentRepo) Insert(ctx context.Context, p model.Payment) (bson.ObjectID, error) {
	res, err := r.col.InsertOne(ctx, p)
	if err != nil {
		return bson.NilObjectID, err
	}
	return res.InsertedID.(bson.ObjectID), nil
}
