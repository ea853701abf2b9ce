package memory

import (
	"context"
	"sort"

	"go.mongodb.org/mongo-driver/v2/bson"

	"postpulse/internal/repository"
	"postpulse/model"
)

type Feed struct {
	s *Store
}

var _ repository.FeedRepository = (*Feed)(nil)

// join resolves one post the way the aggregation pipeline does. The author
// join is inner: a post whose email resolves to no user is dropped.
func (r *Feed) join(p model.Post) (model.FeedPost, bool) {
	author, ok := r.s.users[p.Email]
	if !ok {
		return model.FeedPost{}, false
	}
	tags := []model.Tag{}
	for _, tid := range p.Tags {
		if t, ok := r.s.tags[tid]; ok {
			tags = append(tags, t)
		}
	}
	up := p.UpVotes
	if up == nil {
		up = []model.VoteRecord{}
	}
	down := p.DownVotes
	if down == nil {
		down = []model.VoteRecord{}
	}
	comments := p.Comments
	if comments == nil {
		comments = []bson.ObjectID{}
	}
	return model.FeedPost{
		ID:         p.ID,
		Title:      p.Title,
		Body:       p.Body,
		Author:     model.FeedAuthor{Name: author.Name, Email: author.Email},
		Tags:       tags,
		UpVotes:    up,
		DownVotes:  down,
		Comments:   comments,
		TotalVotes: len(up) - len(down),
		Timestamp:  p.Timestamp,
	}, true
}

func hasAnyTag(post model.Post, filter []bson.ObjectID) bool {
	for _, want := range filter {
		for _, have := range post.Tags {
			if have == want {
				return true
			}
		}
	}
	return false
}

func (r *Feed) List(_ context.Context, opts model.FeedOptions) ([]model.FeedPost, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.reads++
	if opts.Size <= 0 {
		return []model.FeedPost{}, nil
	}

	rows := []model.FeedPost{}
	for _, p := range r.s.posts {
		if len(opts.Tags) > 0 && !hasAnyTag(p, opts.Tags) {
			continue
		}
		if row, ok := r.join(p); ok {
			rows = append(rows, row)
		}
	}

	if opts.Sort == model.SortPopularity {
		sort.SliceStable(rows, func(i, j int) bool {
			return rows[i].TotalVotes > rows[j].TotalVotes
		})
	} else {
		sort.SliceStable(rows, func(i, j int) bool {
			return rows[i].Timestamp > rows[j].Timestamp
		})
	}
	return paginate(rows, opts.Page, opts.Size), nil
}

func (r *Feed) Get(_ context.Context, id bson.ObjectID) (*model.FeedPost, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.reads++
	p, ok := r.s.posts[id]
	if !ok {
		return nil, nil
	}
	row, ok := r.join(p)
	if !ok {
		return nil, nil
	}
	return &row, nil
}
