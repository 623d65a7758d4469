package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"moodwellness/internal/model"
)

// EmotionRepo handles MongoDB operations for the emotion category catalog
// and its display tags
type EmotionRepo interface {
	List(ctx context.Context) ([]model.EmotionCategory, error)
	ListTags(ctx context.Context) ([]model.EmotionTag, error)
	UpsertMany(ctx context.Context, categories []model.EmotionCategory) error
	UpsertTags(ctx context.Context, tags []model.EmotionTag) error
}

type emotionRepo struct {
	collection *mongo.Collection
	tags       *mongo.Collection
}

// NewEmotionRepo creates a new emotion category repository
func NewEmotionRepo(db *mongo.Database) EmotionRepo {
	return &emotionRepo{
		collection: db.Collection("emotion_categories"),
		tags:       db.Collection("emotion_tags"),
	}
}

func (r *emotionRepo) List(ctx context.Context) ([]model.EmotionCategory, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var categories []model.EmotionCategory
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// ListTags returns all tags ordered by category, strongest intensity first
func (r *emotionRepo) ListTags(ctx context.Context) ([]model.EmotionTag, error) {
	opts := options.Find().SetSort(bson.D{
		{Key: "category_id", Value: 1},
		{Key: "intensity_level", Value: -1},
	})
	cursor, err := r.tags.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var tags []model.EmotionTag
	if err := cursor.All(ctx, &tags); err != nil {
		return nil, err
	}
	return tags, nil
}

func (r *emotionRepo) UpsertMany(ctx context.Context, categories []model.EmotionCategory) error {
	for _, c := range categories {
		_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": c.ID}, c,
			options.Replace().SetUpsert(true))
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *emotionRepo) UpsertTags(ctx context.Context, tags []model.EmotionTag) error {
	for _, t := range tags {
		_, err := r.tags.ReplaceOne(ctx, bson.M{"_id": t.ID}, t,
			options.Replace().SetUpsert(true))
		if err != nil {
			return err
		}
	}
	return nil
}
