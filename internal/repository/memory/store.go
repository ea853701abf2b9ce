// Package memory holds in-memory implementations of the repository
// interfaces. They mirror the Mongo semantics closely enough to stand in for
// the store in tests and local runs: inner-join feed semantics, vote-push
// upsert, unique email on insert.
package memory

import (
	"sync"

	"go.mongodb.org/mongo-driver/v2/bson"

	"postpulse/model"
)

// Store is the shared state behind the per-entity repositories. The feed
// repository needs to see users, tags and posts at once, so they live in one
// struct guarded by one mutex.
type Store struct {
	mu            sync.Mutex
	users         map[string]model.User // keyed by email
	tags          map[bson.ObjectID]model.Tag
	posts         map[bson.ObjectID]model.Post
	comments      map[bson.ObjectID]model.Comment
	payments      []model.Payment
	announcements []model.Announcement

	// reads counts store read operations; the unauthorized-access tests
	// assert the gates reject before any read happens.
	reads int
}

func NewStore() *Store {
	return &Store{
		users:    make(map[string]model.User),
		tags:     make(map[bson.ObjectID]model.Tag),
		posts:    make(map[bson.ObjectID]model.Post),
		comments: make(map[bson.ObjectID]model.Comment),
	}
}

func (s *Store) Users() *Users                 { return &Users{s} }
func (s *Store) Tags() *Tags                   { return &Tags{s} }
func (s *Store) Posts() *Posts                 { return &Posts{s} }
func (s *Store) Feed() *Feed                   { return &Feed{s} }
func (s *Store) Comments() *Comments           { return &Comments{s} }
func (s *Store) Payments() *Payments           { return &Payments{s} }
func (s *Store) Announcements() *Announcements { return &Announcements{s} }

// ReadCount reports how many read operations have hit the store.
func (s *Store) ReadCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reads
}

func paginate[T any](items []T, page, size int64) []T {
	if size <= 0 {
		return []T{}
	}
	if page < 0 {
		page = 0
	}
	start := page * size
	if start >= int64(len(items)) {
		return []T{}
	}
	end := start + size
	if end > int64(len(items)) {
		end = int64(len(items))
	}
	return items[start:end]
}
