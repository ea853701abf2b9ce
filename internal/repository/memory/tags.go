package memory

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"postpulse/internal/repository"
	"postpulse/model"
)

type Tags struct {
	s *Store
}

var _ repository.TagRepository = (*Tags)(nil)

func (r *Tags) List(_ context.Context) ([]model.Tag, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.reads++
	tags := make([]model.Tag, 0, len(r.s.tags))
	for _, t := range r.s.tags {
		tags = append(tags, t)
	}
	return tags, nil
}

func (r *Tags) Insert(_ context.Context, t model.Tag) (bson.ObjectID, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if t.ID.IsZero() {
		t.ID = bson.NewObjectID()
	}
	r.s.tags[t.ID] = t
	return t.ID, nil
}
