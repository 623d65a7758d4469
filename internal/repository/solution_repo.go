package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"moodwellness/internal/model"
)

// SolutionFilter narrows a by-type listing. Difficulty matches exactly,
// MaxDuration is an upper bound in minutes; zero means no filter.
type SolutionFilter struct {
	Difficulty  int
	MaxDuration int
}

// SolutionRepo handles MongoDB operations for solutions, their types and
// the emotion-to-solution mapping table.
type SolutionRepo interface {
	ListTypes(ctx context.Context) ([]model.SolutionType, error)
	GetType(ctx context.Context, id int64) (*model.SolutionType, error)
	GetByID(ctx context.Context, id int64) (*model.Solution, error)
	GetManyByIDs(ctx context.Context, ids []int64) ([]model.Solution, error)
	ListByType(ctx context.Context, typeID int64, filter SolutionFilter) ([]model.Solution, error)
	ListPopular(ctx context.Context, limit int) ([]model.Solution, error)
	MappingsByEmotion(ctx context.Context, emotionID int64) ([]model.SolutionMapping, error)
	IncrementUsage(ctx context.Context, id int64) error
	SetEffectiveness(ctx context.Context, id int64, score float64) error
	UpsertTypes(ctx context.Context, types []model.SolutionType) error
	UpsertSolutions(ctx context.Context, solutions []model.Solution) error
	ReplaceMappings(ctx context.Context, mappings []model.SolutionMapping) error
}

type solutionRepo struct {
	types     *mongo.Collection
	solutions *mongo.Collection
	mappings  *mongo.Collection
}

// NewSolutionRepo creates a new solution repository
func NewSolutionRepo(db *mongo.Database) SolutionRepo {
	return &solutionRepo{
		types:     db.Collection("solution_types"),
		solutions: db.Collection("solutions"),
		mappings:  db.Collection("solution_mappings"),
	}
}

func (r *solutionRepo) ListTypes(ctx context.Context) ([]model.SolutionType, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cursor, err := r.types.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var types []model.SolutionType
	if err := cursor.All(ctx, &types); err != nil {
		return nil, err
	}
	return types, nil
}

func (r *solutionRepo) GetType(ctx context.Context, id int64) (*model.SolutionType, error) {
	var t model.SolutionType
	err := r.types.FindOne(ctx, bson.M{"_id": id}).Decode(&t)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *solutionRepo) GetByID(ctx context.Context, id int64) (*model.Solution, error) {
	var s model.Solution
	err := r.solutions.FindOne(ctx, bson.M{"_id": id, "is_active": true}).Decode(&s)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *solutionRepo) GetManyByIDs(ctx context.Context, ids []int64) ([]model.Solution, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	cursor, err := r.solutions.Find(ctx, bson.M{"_id": bson.M{"$in": ids}, "is_active": true})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var solutions []model.Solution
	if err := cursor.All(ctx, &solutions); err != nil {
		return nil, err
	}
	return solutions, nil
}

func (r *solutionRepo) ListByType(ctx context.Context, typeID int64, filter SolutionFilter) ([]model.Solution, error) {
	query := bson.M{"type_id": typeID, "is_active": true}
	if filter.Difficulty > 0 {
		query["difficulty_level"] = filter.Difficulty
	}
	if filter.MaxDuration > 0 {
		query["duration_minutes"] = bson.M{"$lte": filter.MaxDuration}
	}

	opts := options.Find().SetSort(bson.D{
		{Key: "effectiveness_score", Value: -1},
		{Key: "usage_count", Value: -1},
	})
	cursor, err := r.solutions.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var solutions []model.Solution
	if err := cursor.All(ctx, &solutions); err != nil {
		return nil, err
	}
	return solutions, nil
}

// ListPopular is the Mongo fallback for the popularity leaderboard, used
// when the Redis ZSET is cold.
func (r *solutionRepo) ListPopular(ctx context.Context, limit int) ([]model.Solution, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "usage_count", Value: -1}}).
		SetLimit(int64(limit))
	cursor, err := r.solutions.Find(ctx, bson.M{"is_active": true}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var solutions []model.Solution
	if err := cursor.All(ctx, &solutions); err != nil {
		return nil, err
	}
	return solutions, nil
}

func (r *solutionRepo) MappingsByEmotion(ctx context.Context, emotionID int64) ([]model.SolutionMapping, error) {
	opts := options.Find().SetSort(bson.D{
		{Key: "effectiveness_weight", Value: -1},
		{Key: "priority_order", Value: 1},
	})
	cursor, err := r.mappings.Find(ctx, bson.M{"emotion_category_id": emotionID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var mappings []model.SolutionMapping
	if err := cursor.All(ctx, &mappings); err != nil {
		return nil, err
	}
	return mappings, nil
}

// IncrementUsage bumps the usage counter server-side so concurrent usage
// events never lose increments.
func (r *solutionRepo) IncrementUsage(ctx context.Context, id int64) error {
	_, err := r.solutions.UpdateOne(ctx, bson.M{"_id": id},
		bson.M{"$inc": bson.M{"usage_count": 1}})
	return err
}

func (r *solutionRepo) SetEffectiveness(ctx context.Context, id int64, score float64) error {
	_, err := r.solutions.UpdateOne(ctx, bson.M{"_id": id},
		bson.M{"$set": bson.M{"effectiveness_score": score}})
	return err
}

func (r *solutionRepo) UpsertTypes(ctx context.Context, types []model.SolutionType) error {
	for _, t := range types {
		_, err := r.types.ReplaceOne(ctx, bson.M{"_id": t.ID}, t,
			options.Replace().SetUpsert(true))
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *solutionRepo) UpsertSolutions(ctx context.Context, solutions []model.Solution) error {
	for _, s := range solutions {
		_, err := r.solutions.ReplaceOne(ctx, bson.M{"_id": s.ID}, s,
			options.Replace().SetUpsert(true))
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *solutionRepo) ReplaceMappings(ctx context.Context, mappings []model.SolutionMapping) error {
	if _, err := r.mappings.DeleteMany(ctx, bson.M{}); err != nil {
		return err
	}
	docs := make([]interface{}, len(mappings))
	for i, m := range mappings {
		docs[i] = m
	}
	_, err := r.mappings.InsertMany(ctx, docs)
	return err
}
