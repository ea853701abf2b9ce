package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"postpulse/internal/repository"
	"postpulse/model"
)

// CompletePayment records the payment and upgrades the payer to Gold.
func CompletePayment(ctx context.Context, payments repository.PaymentRepository, users repository.UserRepository, email string, price float64) (bson.ObjectID, error) {
	id, err := payments.Insert(ctx, model.Payment{
		Email:     email,
		Price:     price,
		Timestamp: time.Now().UnixMilli(),
	})
	if err != nil {
		return bson.NilObjectID, err
	}

	if err := users.SetSubscription(ctx, email, model.TierGold); err != nil {
		return bson.NilObjectID, err
	}
	return id, nil
}
