package mongodb

import (
	"context"
	"errors"
	"fmt"

	"github.com/lkohler/citysignal/internal/domain/apperr"
	"github.com/lkohler/citysignal/internal/domain/contract"
	"github.com/lkohler/citysignal/internal/domain/entity"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoUserRepository struct {
	collection *mongo.Collection
}

func NewMongoUserRepository(collection *mongo.Collection) *MongoUserRepository {
	return &MongoUserRepository{collection: collection}
}

// EnsureIndexes creates the unique index on username. Duplicate inserts and
// updates then fail at the store instead of racing an application-level check.
func (r *MongoUserRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create username index: %w", err)
	}
	return nil
}

// buildUserFilter creates a BSON filter from a UserFilter. Count and List
// each call it so the two evaluations never share a query value.
func buildUserFilter(filter contract.UserFilter) bson.M {
	query := bson.M{}
	if filter.Honorific != nil {
		query["honorific"] = *filter.Honorific
	}
	return query
}

func (r *MongoUserRepository) Create(ctx context.Context, user *entity.User) (*entity.User, error) {
	res, err := r.collection.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, apperr.NewValidationError("username", "is already taken")
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	user.ID = res.InsertedID.(primitive.ObjectID)
	return user, nil
}

func (r *MongoUserRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*entity.User, error) {
	var user entity.User
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &apperr.NotFoundError{Resource: "user", ID: id.Hex()}
		}
		return nil, fmt.Errorf("failed to retrieve user: %w", err)
	}
	return &user, nil
}

func (r *MongoUserRepository) List(ctx context.Context, filter contract.UserFilter, skip, limit int64) ([]*entity.User, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "lastname", Value: 1}}).
		SetSkip(skip).
		SetLimit(limit)

	cursor, err := r.collection.Find(ctx, buildUserFilter(filter), opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve users: %w", err)
	}
	defer cursor.Close(ctx)

	users := []*entity.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("failed to decode users: %w", err)
	}
	return users, nil
}

func (r *MongoUserRepository) Count(ctx context.Context, filter contract.UserFilter) (int64, error) {
	total, err := r.collection.CountDocuments(ctx, buildUserFilter(filter))
	if err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return total, nil
}

// Update applies only the given fields and returns the updated user.
func (r *MongoUserRepository) Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) (*entity.User, error) {
	filter := bson.M{"_id": id}
	res, err := r.collection.UpdateOne(ctx, filter, bson.M{"$set": updates})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, apperr.NewValidationError("username", "is already taken")
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, &apperr.NotFoundError{Resource: "user", ID: id.Hex()}
	}

	var updated entity.User
	if err := r.collection.FindOne(ctx, filter).Decode(&updated); err != nil {
		return nil, fmt.Errorf("failed to reload user: %w", err)
	}
	return &updated, nil
}

// Replace overwrites the whole document; fields absent from the given user
// are cleared by the replacement.
func (r *MongoUserRepository) Replace(ctx context.Context, user *entity.User) (*entity.User, error) {
	res, err := r.collection.ReplaceOne(ctx, bson.M{"_id": user.ID}, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, apperr.NewValidationError("username", "is already taken")
		}
		return nil, fmt.Errorf("failed to replace user: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, &apperr.NotFoundError{Resource: "user", ID: user.ID.Hex()}
	}
	return user, nil
}

func (r *MongoUserRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if res.DeletedCount == 0 {
		return &apperr.NotFoundError{Resource: "user", ID: id.Hex()}
	}
	return nil
}
