package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"moodwellness/internal/model"
)

// QuestionRepo handles MongoDB operations for the question catalog
type QuestionRepo interface {
	ListActive(ctx context.Context) ([]model.Question, error)
	UpsertMany(ctx context.Context, questions []model.Question) error
}

type questionRepo struct {
	collection *mongo.Collection
}

// NewQuestionRepo creates a new question repository
func NewQuestionRepo(db *mongo.Database) QuestionRepo {
	return &questionRepo{
		collection: db.Collection("questions"),
	}
}

func (r *questionRepo) ListActive(ctx context.Context) ([]model.Question, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{"is_active": true}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var questions []model.Question
	if err := cursor.All(ctx, &questions); err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *questionRepo) UpsertMany(ctx context.Context, questions []model.Question) error {
	for _, q := range questions {
		_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": q.ID}, q,
			options.Replace().SetUpsert(true))
		if err != nil {
			return err
		}
	}
	return nil
}
