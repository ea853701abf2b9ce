package memory

import (
	"context"
	"errors"
	"sort"

	"go.mongodb.org/mongo-driver/v2/bson"

	"postpulse/internal/repository"
	"postpulse/model"
)

type Posts struct {
	s *Store
}

var _ repository.PostRepository = (*Posts)(nil)

func (r *Posts) Create(_ context.Context, p model.Post) (bson.ObjectID, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if p.ID.IsZero() {
		p.ID = bson.NewObjectID()
	}
	r.s.posts[p.ID] = p
	return p.ID, nil
}

func (r *Posts) Get(_ context.Context, id bson.ObjectID) (*model.Post, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.reads++
	p, ok := r.s.posts[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *Posts) ListByAuthor(_ context.Context, email string, page, size int64) ([]model.Post, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.reads++
	var posts []model.Post
	for _, p := range r.s.posts {
		if p.Email == email {
			posts = append(posts, p)
		}
	}
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].Timestamp > posts[j].Timestamp
	})
	return paginate(posts, page, size), nil
}

func (r *Posts) CountByAuthor(_ context.Context, email string) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.reads++
	var n int64
	for _, p := range r.s.posts {
		if p.Email == email {
			n++
		}
	}
	return n, nil
}

func (r *Posts) EstimatedCount(_ context.Context) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.reads++
	return int64(len(r.s.posts)), nil
}

func (r *Posts) PushVote(_ context.Context, postID bson.ObjectID, field, voterEmail string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.posts[postID]
	if !ok {
		// Upsert: a vote against a dangling id creates the document.
		p = model.Post{ID: postID}
	}
	switch field {
	case repository.FieldUpVotes:
		p.UpVotes = append(p.UpVotes, model.VoteRecord{Email: voterEmail})
	case repository.FieldDownVotes:
		p.DownVotes = append(p.DownVotes, model.VoteRecord{Email: voterEmail})
	default:
		return errors.New("unknown vote field: " + field)
	}
	r.s.posts[postID] = p
	return nil
}

func (r *Posts) PushCommentID(_ context.Context, postID, commentID bson.ObjectID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.posts[postID]
	if !ok {
		return nil
	}
	p.Comments = append(p.Comments, commentID)
	r.s.posts[postID] = p
	return nil
}

func (r *Posts) PullCommentID(_ context.Context, postID, commentID bson.ObjectID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.posts[postID]
	if !ok {
		return nil
	}
	kept := make([]bson.ObjectID, 0, len(p.Comments))
	for _, id := range p.Comments {
		if id != commentID {
			kept = append(kept, id)
		}
	}
	p.Comments = kept
	r.s.posts[postID] = p
	return nil
}
