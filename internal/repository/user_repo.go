package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"moodwellness/internal/model"
)

// UserRepo handles MongoDB operations for user accounts
type UserRepo interface {
	GetByID(ctx context.Context, id int64) (*model.User, error)
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	Create(ctx context.Context, user *model.User) error
	EnsureExists(ctx context.Context, id int64) error
}

type userRepo struct {
	users    *mongo.Collection
	counters *mongo.Collection
}

// NewUserRepo creates a new user repository
func NewUserRepo(db *mongo.Database) UserRepo {
	return &userRepo{
		users:    db.Collection("users"),
		counters: db.Collection("counters"),
	}
}

func (r *userRepo) GetByID(ctx context.Context, id int64) (*model.User, error) {
	var user model.User
	err := r.users.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	var user model.User
	err := r.users.FindOne(ctx, bson.M{"username": username}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Create assigns the next id from the counters collection and inserts the
// user. The counter bump is atomic, so concurrent registrations cannot
// collide on an id.
func (r *userRepo) Create(ctx context.Context, user *model.User) error {
	id, err := r.nextID(ctx)
	if err != nil {
		return err
	}
	user.ID = id
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}

	_, err = r.users.InsertOne(ctx, user)
	return err
}

// EnsureExists upserts a minimal placeholder account, so usage events from
// clients without a registered account still attach to a user document.
func (r *userRepo) EnsureExists(ctx context.Context, id int64) error {
	_, err := r.users.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$setOnInsert": bson.M{
			"username":   "",
			"created_at": time.Now(),
		}},
		options.Update().SetUpsert(true))
	return err
}

func (r *userRepo) nextID(ctx context.Context) (int64, error) {
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var counter struct {
		Seq int64 `bson:"seq"`
	}
	err := r.counters.FindOneAndUpdate(ctx,
		bson.M{"_id": "users"},
		bson.M{"$inc": bson.M{"seq": 1}},
		opts).Decode(&counter)
	if err != nil {
		return 0, err
	}
	return counter.Seq, nil
}
