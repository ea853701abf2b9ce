package handlers_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"postpulse/configs"
	"postpulse/internal/repository/memory"
	"postpulse/internal/routes"
	"postpulse/internal/token"
	"postpulse/model"
)

const testSecret = "test-secret"

type fakeIntents struct {
	lastAmount int64
}

func (f *fakeIntents) CreateIntent(_ context.Context, amountCents int64) (string, error) {
	f.lastAmount = amountCents
	return "cs_test_123", nil
}

func newTestApp() (*fiber.App, *memory.Store, *fakeIntents) {
	store := memory.NewStore()
	intents := &fakeIntents{}
	app := fiber.New()
	routes.Register(app, routes.Deps{
		Users:         store.Users(),
		Tags:          store.Tags(),
		Posts:         store.Posts(),
		Feed:          store.Feed(),
		Comments:      store.Comments(),
		Payments:      store.Payments(),
		Announcements: store.Announcements(),
		Intents:       intents,
		Secret:        testSecret,
		Production:    false,
	})
	return app, store, intents
}

func sessionCookie(t *testing.T, email string) *http.Cookie {
	t.Helper()
	tok, err := token.Issue(testSecret, email, "", time.Hour)
	require.NoError(t, err)
	return &http.Cookie{Name: configs.CookieName, Value: tok}
}

func jsonReq(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, out))
}

func TestLogin(t *testing.T) {
	t.Run("issues the session cookie", func(t *testing.T) {
		app, _, _ := newTestApp()
		resp, err := app.Test(jsonReq(http.MethodPost, "/jwt", `{"email":"a@x.com","name":"A"}`))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var cookie *http.Cookie
		for _, c := range resp.Cookies() {
			if c.Name == configs.CookieName {
				cookie = c
			}
		}
		require.NotNil(t, cookie)
		assert.True(t, cookie.HttpOnly)
		assert.False(t, cookie.Secure) // dev mode

		claims, err := token.Verify(testSecret, cookie.Value)
		require.NoError(t, err)
		assert.Equal(t, "a@x.com", claims.Email)
	})

	t.Run("email is required", func(t *testing.T) {
		app, _, _ := newTestApp()
		resp, err := app.Test(jsonReq(http.MethodPost, "/jwt", `{"name":"A"}`))
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("logout expires the cookie", func(t *testing.T) {
		app, _, _ := newTestApp()
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/logout", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var cookie *http.Cookie
		for _, c := range resp.Cookies() {
			if c.Name == configs.CookieName {
				cookie = c
			}
		}
		require.NotNil(t, cookie)
		assert.Empty(t, cookie.Value)
		assert.True(t, cookie.Expires.Before(time.Now()))
	})
}

func TestAuthGates(t *testing.T) {
	t.Run("admin route without cookie is rejected before any store read", func(t *testing.T) {
		app, store, _ := newTestApp()
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/users", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		assert.Zero(t, store.ReadCount())
	})

	t.Run("session without admin role is rejected", func(t *testing.T) {
		app, store, _ := newTestApp()
		_, err := store.Users().Insert(context.Background(), model.User{Email: "u@x.com", Subscription: model.TierBronze})
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/users", nil)
		req.AddCookie(sessionCookie(t, "u@x.com"))
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("admin passes both gates", func(t *testing.T) {
		app, store, _ := newTestApp()
		_, err := store.Users().Insert(context.Background(), model.User{Email: "adm@x.com", Role: model.RoleAdmin})
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/users", nil)
		req.AddCookie(sessionCookie(t, "adm@x.com"))
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("expired token is rejected", func(t *testing.T) {
		app, _, _ := newTestApp()
		tok, err := token.Issue(testSecret, "u@x.com", "", -time.Minute)
		require.NoError(t, err)

		req := jsonReq(http.MethodPost, "/posts", `{"email":"u@x.com","title":"t"}`)
		req.AddCookie(&http.Cookie{Name: configs.CookieName, Value: tok})
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}

func TestRegistration(t *testing.T) {
	app, store, _ := newTestApp()

	resp, err := app.Test(jsonReq(http.MethodPost, "/users", `{"email":"new@x.com","name":"N"}`))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var first map[string]any
	decodeBody(t, resp, &first)
	assert.NotEmpty(t, first["insertedId"])

	stored, err := store.Users().FindByEmail(context.Background(), "new@x.com")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, model.TierBronze, stored.Subscription)
	firstTimestamp := stored.Timestamp

	// Second registration is a no-op with insertedId null.
	resp, err = app.Test(jsonReq(http.MethodPost, "/users", `{"email":"new@x.com","name":"N"}`))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var second map[string]any
	decodeBody(t, resp, &second)
	assert.Equal(t, "User already exists", second["message"])
	assert.Nil(t, second["insertedId"])

	stored, err = store.Users().FindByEmail(context.Background(), "new@x.com")
	require.NoError(t, err)
	assert.Equal(t, firstTimestamp, stored.Timestamp)
}

func TestVotes(t *testing.T) {
	t.Run("unknown vote_type answers 200 with a message", func(t *testing.T) {
		app, store, _ := newTestApp()
		id, err := store.Posts().Create(context.Background(), model.Post{Email: "a@x.com"})
		require.NoError(t, err)

		resp, err := app.Test(jsonReq(http.MethodPost, "/votes/"+id.Hex(), `{"vote_type":"sideways","user_email":"v@x.com"}`))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body map[string]any
		decodeBody(t, resp, &body)
		assert.Contains(t, body["message"], "vote_type")
	})

	t.Run("upvote is appended", func(t *testing.T) {
		app, store, _ := newTestApp()
		id, err := store.Posts().Create(context.Background(), model.Post{Email: "a@x.com"})
		require.NoError(t, err)

		resp, err := app.Test(jsonReq(http.MethodPost, "/votes/"+id.Hex(), `{"vote_type":"upvote","user_email":"v@x.com"}`))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		p, err := store.Posts().Get(context.Background(), id)
		require.NoError(t, err)
		require.Len(t, p.UpVotes, 1)
		assert.Equal(t, "v@x.com", p.UpVotes[0].Email)
	})

	t.Run("bad post id fails closed", func(t *testing.T) {
		app, _, _ := newTestApp()
		resp, err := app.Test(jsonReq(http.MethodPost, "/votes/not-hex", `{"vote_type":"upvote","user_email":"v@x.com"}`))
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestPostAbility(t *testing.T) {
	app, store, _ := newTestApp()
	ctx := context.Background()
	_, err := store.Users().Insert(ctx, model.User{Email: "b@x.com", Subscription: model.TierBronze})
	require.NoError(t, err)
	for i := 0; i < 4; i++ {
		_, err := store.Posts().Create(ctx, model.Post{Email: "b@x.com", Timestamp: int64(i)})
		require.NoError(t, err)
	}

	var body map[string]bool

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/post-ability/b@x.com", nil))
	require.NoError(t, err)
	decodeBody(t, resp, &body)
	assert.True(t, body["status"])

	_, err = store.Posts().Create(ctx, model.Post{Email: "b@x.com", Timestamp: 5})
	require.NoError(t, err)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/post-ability/b@x.com", nil))
	require.NoError(t, err)
	decodeBody(t, resp, &body)
	assert.False(t, body["status"])
}

func TestFeedEndpoint(t *testing.T) {
	t.Run("absent size yields an empty page", func(t *testing.T) {
		app, store, _ := newTestApp()
		ctx := context.Background()
		_, err := store.Users().Insert(ctx, model.User{Email: "a@x.com", Name: "A"})
		require.NoError(t, err)
		_, err = store.Posts().Create(ctx, model.Post{Email: "a@x.com", Timestamp: 1})
		require.NoError(t, err)

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/posts", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var rows []model.FeedPost
		decodeBody(t, resp, &rows)
		assert.Empty(t, rows)
	})

	t.Run("bad tag filter fails closed", func(t *testing.T) {
		app, _, _ := newTestApp()
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/posts?tags=nothex&size=5", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("serves the joined page", func(t *testing.T) {
		app, store, _ := newTestApp()
		ctx := context.Background()
		_, err := store.Users().Insert(ctx, model.User{Email: "a@x.com", Name: "A"})
		require.NoError(t, err)
		_, err = store.Posts().Create(ctx, model.Post{Email: "a@x.com", Title: "hello", Timestamp: 1})
		require.NoError(t, err)

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/posts?page=0&size=10", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var rows []model.FeedPost
		decodeBody(t, resp, &rows)
		require.Len(t, rows, 1)
		assert.Equal(t, "hello", rows[0].Title)
		assert.Equal(t, "A", rows[0].Author.Name)
	})
}

func TestPaymentIntent(t *testing.T) {
	t.Run("missing price answers 200 with a message", func(t *testing.T) {
		app, _, _ := newTestApp()
		req := jsonReq(http.MethodPost, "/create-payment-intent", `{}`)
		req.AddCookie(sessionCookie(t, "u@x.com"))
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body map[string]any
		decodeBody(t, resp, &body)
		assert.Equal(t, "price is required", body["message"])
	})

	t.Run("delegates to the provider in cents", func(t *testing.T) {
		app, _, intents := newTestApp()
		req := jsonReq(http.MethodPost, "/create-payment-intent", `{"price":19.99}`)
		req.AddCookie(sessionCookie(t, "u@x.com"))
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body map[string]any
		decodeBody(t, resp, &body)
		assert.Equal(t, "cs_test_123", body["clientSecret"])
		assert.EqualValues(t, 1999, intents.lastAmount)
	})

	t.Run("completion upgrades the payer to gold", func(t *testing.T) {
		app, store, _ := newTestApp()
		ctx := context.Background()
		_, err := store.Users().Insert(ctx, model.User{Email: "u@x.com", Subscription: model.TierBronze})
		require.NoError(t, err)

		req := jsonReq(http.MethodPost, "/payments", `{"email":"u@x.com","price":19.99}`)
		req.AddCookie(sessionCookie(t, "u@x.com"))
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		u, err := store.Users().FindByEmail(ctx, "u@x.com")
		require.NoError(t, err)
		assert.Equal(t, model.TierGold, u.Subscription)
	})
}

func TestCommentsEndpoint(t *testing.T) {
	app, store, _ := newTestApp()
	ctx := context.Background()
	_, err := store.Users().Insert(ctx, model.User{Email: "c@x.com", Name: "C"})
	require.NoError(t, err)
	postID, err := store.Posts().Create(ctx, model.Post{Email: "c@x.com", Timestamp: 1})
	require.NoError(t, err)

	req := jsonReq(http.MethodPost, "/comments", `{"postId":"`+postID.Hex()+`","email":"c@x.com","comment":"hi"}`)
	req.AddCookie(sessionCookie(t, "c@x.com"))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/comments/"+postID.Hex(), nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var views []model.CommentView
	decodeBody(t, resp, &views)
	require.Len(t, views, 1)
	assert.Equal(t, "hi", views[0].Comment)
	assert.Equal(t, "C", views[0].Author.Name)
}
