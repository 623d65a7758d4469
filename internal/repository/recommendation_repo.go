package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"moodwellness/internal/model"
)

// RecommendationRepo handles MongoDB operations for solution usage events
type RecommendationRepo interface {
	Create(ctx context.Context, rec *model.Recommendation) error
	RatingsBySolution(ctx context.Context, solutionID int64) ([]int, error)
	FeedbackStats(ctx context.Context, solutionID int64) ([]model.FeedbackBucket, error)
	CountAcceptedByUser(ctx context.Context, userID int64) (int64, error)
	UsageBySolution(ctx context.Context, userID int64) (map[int64]int64, error)
}

type recommendationRepo struct {
	collection *mongo.Collection
}

// NewRecommendationRepo creates a new recommendation repository
func NewRecommendationRepo(db *mongo.Database) RecommendationRepo {
	return &recommendationRepo{
		collection: db.Collection("recommendations"),
	}
}

func (r *recommendationRepo) Create(ctx context.Context, rec *model.Recommendation) error {
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now()
	}

	result, err := r.collection.InsertOne(ctx, rec)
	if err != nil {
		return err
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		rec.ID = oid.Hex()
	}
	return nil
}

// RatingsBySolution returns every effectiveness rating recorded for a
// solution, for the running-average recompute.
func (r *recommendationRepo) RatingsBySolution(ctx context.Context, solutionID int64) ([]int, error) {
	cursor, err := r.collection.Find(ctx, bson.M{
		"solution_id":          solutionID,
		"effectiveness_rating": bson.M{"$exists": true, "$ne": nil},
	})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rows []struct {
		Rating int `bson:"effectiveness_rating"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, err
	}
	ratings := make([]int, len(rows))
	for i, row := range rows {
		ratings[i] = row.Rating
	}
	return ratings, nil
}

func (r *recommendationRepo) FeedbackStats(ctx context.Context, solutionID int64) ([]model.FeedbackBucket, error) {
	pipeline := []bson.M{
		{"$match": bson.M{
			"solution_id":          solutionID,
			"effectiveness_rating": bson.M{"$exists": true, "$ne": nil},
		}},
		{"$group": bson.M{
			"_id":   "$effectiveness_rating",
			"count": bson.M{"$sum": 1},
		}},
		{"$sort": bson.M{"_id": 1}},
	}
	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var buckets []model.FeedbackBucket
	if err := cursor.All(ctx, &buckets); err != nil {
		return nil, err
	}
	return buckets, nil
}

func (r *recommendationRepo) CountAcceptedByUser(ctx context.Context, userID int64) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"user_id": userID, "is_accepted": true})
}

// UsageBySolution counts a user's usage events per solution id
func (r *recommendationRepo) UsageBySolution(ctx context.Context, userID int64) (map[int64]int64, error) {
	pipeline := []bson.M{
		{"$match": bson.M{"user_id": userID}},
		{"$group": bson.M{
			"_id":   "$solution_id",
			"count": bson.M{"$sum": 1},
		}},
	}
	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rows []struct {
		SolutionID int64 `bson:"_id"`
		Count      int64 `bson:"count"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, err
	}
	usage := make(map[int64]int64, len(rows))
	for _, row := range rows {
		usage[row.SolutionID] = row.Count
	}
	return usage, nil
}
