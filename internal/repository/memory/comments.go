package memory

import (
	"context"
	"sort"

	"go.mongodb.org/mongo-driver/v2/bson"

	"postpulse/internal/repository"
	"postpulse/model"
)

type Comments struct {
	s *Store
}

var _ repository.CommentRepository = (*Comments)(nil)

func (r *Comments) Insert(_ context.Context, c model.Comment) (bson.ObjectID, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if c.ID.IsZero() {
		c.ID = bson.NewObjectID()
	}
	r.s.comments[c.ID] = c
	return c.ID, nil
}

func (r *Comments) Get(_ context.Context, id bson.ObjectID) (*model.Comment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.reads++
	c, ok := r.s.comments[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r *Comments) Delete(_ context.Context, id bson.ObjectID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.comments, id)
	return nil
}

func (r *Comments) view(c model.Comment) (model.CommentView, bool) {
	author, ok := r.s.users[c.Email]
	if !ok {
		return model.CommentView{}, false
	}
	return model.CommentView{
		ID:      c.ID,
		PostID:  c.PostID,
		Comment: c.Text,
		Author:  model.FeedAuthor{Name: author.Name, Email: author.Email},
	}, true
}

func (r *Comments) ListByIDs(_ context.Context, ids []bson.ObjectID) ([]model.CommentView, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.reads++
	views := []model.CommentView{}
	for _, id := range ids {
		c, ok := r.s.comments[id]
		if !ok {
			continue
		}
		if v, ok := r.view(c); ok {
			views = append(views, v)
		}
	}
	return views, nil
}

func (r *Comments) ListAll(_ context.Context) ([]model.CommentView, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.reads++
	views := []model.CommentView{}
	for _, c := range r.s.comments {
		if v, ok := r.view(c); ok {
			views = append(views, v)
		}
	}
	return views, nil
}

func (r *Comments) ListReported(_ context.Context, page, size int64) ([]model.Comment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.reads++
	reported := []model.Comment{}
	for _, c := range r.s.comments {
		if c.Reported() {
			reported = append(reported, c)
		}
	}
	sort.SliceStable(reported, func(i, j int) bool {
		return reported[i].ID.Hex() < reported[j].ID.Hex()
	})
	return paginate(reported, page, size), nil
}

func (r *Comments) SetReport(_ context.Context, id bson.ObjectID, feedback string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.comments[id]
	if !ok {
		return nil
	}
	c.Report = &model.Report{Feedback: feedback}
	r.s.comments[id] = c
	return nil
}

func (r *Comments) ClearReport(_ context.Context, id bson.ObjectID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.comments[id]
	if !ok {
		return nil
	}
	c.Report = nil
	r.s.comments[id] = c
	return nil
}
