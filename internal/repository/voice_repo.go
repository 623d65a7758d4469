package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"moodwellness/internal/model"
)

// VoiceRepo handles MongoDB operations for analyzed voice transcripts
type VoiceRepo interface {
	Create(ctx context.Context, record *model.VoiceRecord) error
}

type voiceRepo struct {
	collection *mongo.Collection
}

// NewVoiceRepo creates a new voice record repository
func NewVoiceRepo(db *mongo.Database) VoiceRepo {
	return &voiceRepo{
		collection: db.Collection("voice_records"),
	}
}

func (r *voiceRepo) Create(ctx context.Context, record *model.VoiceRecord) error {
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now()
	}

	result, err := r.collection.InsertOne(ctx, record)
	if err != nil {
		return err
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		record.ID = oid.Hex()
	}
	return nil
}
