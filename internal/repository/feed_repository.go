package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"postpulse/model"
)

// ===== MongoDB stage/keyword constants =====
const (
	StageMatch     = "$match"
	StageLookup    = "$lookup"
	StageUnwind    = "$unwind"
	StageAddFields = "$addFields"
	StageProject   = "$project"
	StageSort      = "$sort"
	StageSkip      = "$skip"
	StageLimit     = "$limit"

	KeyFrom         = "from"
	KeyLocalField   = "localField"
	KeyForeignField = "foreignField"
	KeyAs           = "as"
)

// FeedRepository produces the joined post feed: posts with resolved author
// and tag documents, vote tallies, ordering and pagination.
type FeedRepository interface {
	List(ctx context.Context, opts model.FeedOptions) ([]model.FeedPost, error)
	Get(ctx context.Context, id bson.ObjectID) (*model.FeedPost, error)
}

type mongoFeedRepo struct {
	col *mongo.Collection
}

func NewMongoFeedRepo(db *mongo.Database) FeedRepository {
	return &mongoFeedRepo{col: db.Collection("posts")}
}

// joinStages is the shared join/tally shape of the feed and the single-post
// fetch. The author lookup unwinds without preserveNullAndEmptyArrays: a post
// whose author record no longer resolves drops out of the result. The tag
// lookup joins the whole reference array in one stage; order of the resolved
// tags is not defined.
func joinStages() mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: StageLookup, Value: bson.M{
			KeyFrom:         "users",
			KeyLocalField:   "email",
			KeyForeignField: "email",
			KeyAs:           "author",
		}}},
		{{Key: StageUnwind, Value: bson.M{"path": "$author"}}},

		{{Key: StageLookup, Value: bson.M{
			KeyFrom:         "tags",
			KeyLocalField:   "tags",
			KeyForeignField: "_id",
			KeyAs:           "tags",
		}}},

		// Vote lists may be absent on upserted posts; treat missing as empty.
		{{Key: StageAddFields, Value: bson.M{
			"totalVotes": bson.M{"$subtract": bson.A{
				bson.M{"$size": bson.M{"$ifNull": bson.A{"$upvotes", bson.A{}}}},
				bson.M{"$size": bson.M{"$ifNull": bson.A{"$downvotes", bson.A{}}}},
			}},
		}}},

		{{Key: StageProject, Value: bson.M{
			"_id":       1,
			"title":     1,
			"body":      1,
			"tags":      1,
			"upvotes":   bson.M{"$ifNull": bson.A{"$upvotes", bson.A{}}},
			"downvotes": bson.M{"$ifNull": bson.A{"$downvotes", bson.A{}}},
			"comments":  bson.M{"$ifNull": bson.A{"$comments", bson.A{}}},
			"timestamp": 1,
			"totalVotes": 1,
			"author": bson.M{
				"name":  "$author.name",
				"email": "$author.email",
			},
		}}},
	}
}

func (r *mongoFeedRepo) List(ctx context.Context, opts model.FeedOptions) ([]model.FeedPost, error) {
	// A zero page size is the documented degenerate case: an empty page,
	// answered without a store round trip ($limit: 0 is not a legal stage).
	if opts.Size <= 0 {
		return []model.FeedPost{}, nil
	}
	page := opts.Page
	if page < 0 {
		page = 0
	}

	match := bson.M{}
	if len(opts.Tags) > 0 {
		match["tags"] = bson.M{"$in": opts.Tags}
	}

	pipe := mongo.Pipeline{{{Key: StageMatch, Value: match}}}
	pipe = append(pipe, joinStages()...)

	sort := bson.D{{Key: "timestamp", Value: -1}}
	if opts.Sort == model.SortPopularity {
		sort = bson.D{{Key: "totalVotes", Value: -1}}
	}
	pipe = append(pipe,
		bson.D{{Key: StageSort, Value: sort}},
		bson.D{{Key: StageSkip, Value: page * opts.Size}},
		bson.D{{Key: StageLimit, Value: opts.Size}},
	)

	cur, err := r.col.Aggregate(ctx, pipe, options.Aggregate())
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	items := []model.FeedPost{}
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *mongoFeedRepo) Get(ctx context.Context, id bson.ObjectID) (*model.FeedPost, error) {
	pipe := mongo.Pipeline{{{Key: StageMatch, Value: bson.M{"_id": id}}}}
	pipe = append(pipe, joinStages()...)

	cur, err := r.col.Aggregate(ctx, pipe, options.Aggregate())
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var items []model.FeedPost
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, nil
	}
	return &items[0], nil
}
