package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"moodwellness/internal/model"
)

// AssessmentRepo handles MongoDB operations for persisted assessments
type AssessmentRepo interface {
	Create(ctx context.Context, assessment *model.Assessment) error
	ListByUser(ctx context.Context, userID int64, limit, offset int) ([]model.Assessment, error)
	CountByUser(ctx context.Context, userID int64) (int64, error)
	LatestByUser(ctx context.Context, userID int64) (*model.Assessment, error)
	DatesByUser(ctx context.Context, userID int64, since time.Time) ([]time.Time, error)
	StatsByEmotion(ctx context.Context, since time.Time) ([]model.EmotionStat, int64, error)
}

type assessmentRepo struct {
	collection *mongo.Collection
}

// NewAssessmentRepo creates a new assessment repository
func NewAssessmentRepo(db *mongo.Database) AssessmentRepo {
	return &assessmentRepo{
		collection: db.Collection("assessments"),
	}
}

func (r *assessmentRepo) Create(ctx context.Context, assessment *model.Assessment) error {
	if assessment.CreatedAt.IsZero() {
		assessment.CreatedAt = time.Now()
	}

	result, err := r.collection.InsertOne(ctx, assessment)
	if err != nil {
		return err
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		assessment.ID = oid.Hex()
	}
	return nil
}

func (r *assessmentRepo) ListByUser(ctx context.Context, userID int64, limit, offset int) ([]model.Assessment, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64(offset)).
		SetLimit(int64(limit))
	cursor, err := r.collection.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var assessments []model.Assessment
	if err := cursor.All(ctx, &assessments); err != nil {
		return nil, err
	}
	return assessments, nil
}

func (r *assessmentRepo) CountByUser(ctx context.Context, userID int64) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"user_id": userID})
}

func (r *assessmentRepo) LatestByUser(ctx context.Context, userID int64) (*model.Assessment, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "created_at", Value: -1}})
	var assessment model.Assessment
	err := r.collection.FindOne(ctx, bson.M{"user_id": userID}, opts).Decode(&assessment)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &assessment, nil
}

// DatesByUser returns creation timestamps newest first, for streak math
func (r *assessmentRepo) DatesByUser(ctx context.Context, userID int64, since time.Time) ([]time.Time, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetProjection(bson.M{"created_at": 1})
	cursor, err := r.collection.Find(ctx, bson.M{
		"user_id":    userID,
		"created_at": bson.M{"$gte": since},
	}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rows []struct {
		CreatedAt time.Time `bson:"created_at"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, err
	}
	dates := make([]time.Time, len(rows))
	for i, row := range rows {
		dates[i] = row.CreatedAt
	}
	return dates, nil
}

// StatsByEmotion groups assessments since the cutoff by primary emotion,
// counting occurrences and averaging intensity.
func (r *assessmentRepo) StatsByEmotion(ctx context.Context, since time.Time) ([]model.EmotionStat, int64, error) {
	pipeline := []bson.M{
		{"$match": bson.M{"created_at": bson.M{"$gte": since}}},
		{"$group": bson.M{
			"_id":           "$primary_emotion",
			"count":         bson.M{"$sum": 1},
			"avg_intensity": bson.M{"$avg": "$intensity_level"},
		}},
		{"$sort": bson.M{"count": -1}},
	}
	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var stats []model.EmotionStat
	if err := cursor.All(ctx, &stats); err != nil {
		return nil, 0, err
	}

	var total int64
	for _, s := range stats {
		total += s.Count
	}
	return stats, total, nil
}
