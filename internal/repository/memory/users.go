package memory

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"

	"postpulse/internal/repository"
	"postpulse/model"
)

// ErrDuplicateEmail mirrors the unique email index on the users collection.
var ErrDuplicateEmail = errors.New("duplicate email")

type Users struct {
	s *Store
}

var _ repository.UserRepository = (*Users)(nil)

func (r *Users) FindByEmail(_ context.Context, email string) (*model.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.reads++
	u, ok := r.s.users[email]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r *Users) Insert(_ context.Context, u model.User) (bson.ObjectID, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, exists := r.s.users[u.Email]; exists {
		return bson.NilObjectID, ErrDuplicateEmail
	}
	if u.ID.IsZero() {
		u.ID = bson.NewObjectID()
	}
	r.s.users[u.Email] = u
	return u.ID, nil
}

func (r *Users) List(_ context.Context) ([]model.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.reads++
	users := make([]model.User, 0, len(r.s.users))
	for _, u := range r.s.users {
		users = append(users, u)
	}
	return users, nil
}

func (r *Users) SetRole(_ context.Context, email, role string) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[email]
	if !ok {
		return 0, nil
	}
	u.Role = role
	r.s.users[email] = u
	return 1, nil
}

func (r *Users) SetSubscription(_ context.Context, email, tier string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[email]
	if !ok {
		return nil
	}
	u.Subscription = tier
	r.s.users[email] = u
	return nil
}
