package services

import (
	"context"

	"postpulse/configs"
	"postpulse/internal/repository"
	"postpulse/model"
)

// CanPost is the subscription gate: Bronze-tier users are capped at
// configs.BronzePostLimit posts; everyone else is unlimited. Advisory only —
// post creation does not re-check, so a racing create can slip past the cap.
func CanPost(ctx context.Context, users repository.UserRepository, posts repository.PostRepository, email string) (bool, error) {
	user, err := users.FindByEmail(ctx, email)
	if err != nil {
		return false, err
	}
	if user == nil || user.Subscription != model.TierBronze {
		return true, nil
	}

	count, err := posts.CountByAuthor(ctx, email)
	if err != nil {
		return false, err
	}
	return count < configs.BronzePostLimit, nil
}
