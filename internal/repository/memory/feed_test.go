package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"postpulse/model"
)

func seedUser(t *testing.T, s *Store, email, name string) {
	t.Helper()
	_, err := s.Users().Insert(context.Background(), model.User{
		Name:         name,
		Email:        email,
		Subscription: model.TierBronze,
	})
	require.NoError(t, err)
}

func seedTag(t *testing.T, s *Store, name string) bson.ObjectID {
	t.Helper()
	id, err := s.Tags().Insert(context.Background(), model.Tag{Name: name})
	require.NoError(t, err)
	return id
}

func seedPost(t *testing.T, s *Store, p model.Post) bson.ObjectID {
	t.Helper()
	id, err := s.Posts().Create(context.Background(), p)
	require.NoError(t, err)
	return id
}

func votes(emails ...string) []model.VoteRecord {
	out := make([]model.VoteRecord, 0, len(emails))
	for _, e := range emails {
		out = append(out, model.VoteRecord{Email: e})
	}
	return out
}

func TestFeedList(t *testing.T) {
	ctx := context.Background()

	t.Run("popularity order follows the vote tally", func(t *testing.T) {
		s := NewStore()
		seedUser(t, s, "a@x.com", "A")

		// net votes: first +1, second +3, third -1
		seedPost(t, s, model.Post{Email: "a@x.com", Title: "one", UpVotes: votes("v1", "v2"), DownVotes: votes("v3"), Timestamp: 1})
		seedPost(t, s, model.Post{Email: "a@x.com", Title: "two", UpVotes: votes("v1", "v2", "v3"), Timestamp: 2})
		seedPost(t, s, model.Post{Email: "a@x.com", Title: "three", DownVotes: votes("v1"), Timestamp: 3})

		rows, err := s.Feed().List(ctx, model.FeedOptions{Sort: model.SortPopularity, Page: 0, Size: 10})
		require.NoError(t, err)
		require.Len(t, rows, 3)
		assert.Equal(t, "two", rows[0].Title)
		assert.Equal(t, "one", rows[1].Title)
		assert.Equal(t, "three", rows[2].Title)
		assert.Equal(t, 3, rows[0].TotalVotes)
		assert.Equal(t, -1, rows[2].TotalVotes)
	})

	t.Run("default order is newest first", func(t *testing.T) {
		s := NewStore()
		seedUser(t, s, "a@x.com", "A")
		seedPost(t, s, model.Post{Email: "a@x.com", Title: "old", Timestamp: 100})
		seedPost(t, s, model.Post{Email: "a@x.com", Title: "new", Timestamp: 200})

		rows, err := s.Feed().List(ctx, model.FeedOptions{Page: 0, Size: 10})
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, "new", rows[0].Title)
	})

	t.Run("pagination skips page times size", func(t *testing.T) {
		s := NewStore()
		seedUser(t, s, "a@x.com", "A")
		for i := 1; i <= 5; i++ {
			seedPost(t, s, model.Post{Email: "a@x.com", Title: string(rune('a' + i - 1)), Timestamp: int64(100 - i)})
		}

		// Ranked by recency: a, b, c, d, e. Page 1 of size 2 is the 3rd and
		// 4th rows.
		rows, err := s.Feed().List(ctx, model.FeedOptions{Page: 1, Size: 2})
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, "c", rows[0].Title)
		assert.Equal(t, "d", rows[1].Title)
	})

	t.Run("zero size is an empty page", func(t *testing.T) {
		s := NewStore()
		seedUser(t, s, "a@x.com", "A")
		seedPost(t, s, model.Post{Email: "a@x.com", Timestamp: 1})

		rows, err := s.Feed().List(ctx, model.FeedOptions{Page: 0, Size: 0})
		require.NoError(t, err)
		assert.Empty(t, rows)
	})

	t.Run("tag filter is set membership across the filter set", func(t *testing.T) {
		s := NewStore()
		seedUser(t, s, "a@x.com", "A")
		golang := seedTag(t, s, "golang")
		news := seedTag(t, s, "news")
		misc := seedTag(t, s, "misc")

		seedPost(t, s, model.Post{Email: "a@x.com", Title: "go", Tags: []bson.ObjectID{golang}, Timestamp: 3})
		seedPost(t, s, model.Post{Email: "a@x.com", Title: "daily", Tags: []bson.ObjectID{news, misc}, Timestamp: 2})
		seedPost(t, s, model.Post{Email: "a@x.com", Title: "other", Tags: []bson.ObjectID{misc}, Timestamp: 1})

		rows, err := s.Feed().List(ctx, model.FeedOptions{Tags: []bson.ObjectID{golang, news}, Page: 0, Size: 10})
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, "go", rows[0].Title)
		assert.Equal(t, "daily", rows[1].Title)
	})

	t.Run("post with unresolved author is dropped", func(t *testing.T) {
		s := NewStore()
		seedUser(t, s, "a@x.com", "A")
		seedPost(t, s, model.Post{Email: "a@x.com", Title: "kept", Timestamp: 2})
		seedPost(t, s, model.Post{Email: "ghost@x.com", Title: "orphan", Timestamp: 1})

		rows, err := s.Feed().List(ctx, model.FeedOptions{Page: 0, Size: 10})
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "kept", rows[0].Title)
		assert.Equal(t, "A", rows[0].Author.Name)
	})
}

func TestFeedGet(t *testing.T) {
	ctx := context.Background()

	t.Run("resolves every stored tag reference", func(t *testing.T) {
		s := NewStore()
		seedUser(t, s, "a@x.com", "A")
		t1 := seedTag(t, s, "one")
		t2 := seedTag(t, s, "two")
		id := seedPost(t, s, model.Post{Email: "a@x.com", Tags: []bson.ObjectID{t1, t2}, Timestamp: 1})

		row, err := s.Feed().Get(ctx, id)
		require.NoError(t, err)
		require.NotNil(t, row)
		assert.Len(t, row.Tags, 2)

		// Idempotent read.
		again, err := s.Feed().Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, row.ID, again.ID)
		assert.Len(t, again.Tags, 2)
	})

	t.Run("missing id resolves to nil", func(t *testing.T) {
		s := NewStore()
		row, err := s.Feed().Get(ctx, bson.NewObjectID())
		require.NoError(t, err)
		assert.Nil(t, row)
	})
}
