package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lkohler/citysignal/internal/domain/apperr"
	"github.com/lkohler/citysignal/internal/domain/contract"
	"github.com/lkohler/citysignal/internal/domain/entity"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoIssueRepository struct {
	collection *mongo.Collection
}

func NewMongoIssueRepository(db *mongo.Database) *MongoIssueRepository {
	return &MongoIssueRepository{collection: db.Collection("issues")}
}

// buildIssueFilter creates a BSON filter from an IssueFilter. It is invoked
// independently by Count and List: the two evaluations of one request must
// be built from the same filter value, never from a shared query object.
func buildIssueFilter(filter contract.IssueFilter) bson.M {
	query := bson.M{}
	if filter.FilterByCreator {
		// An empty creator set is a real predicate and matches nothing.
		query["creator"] = bson.M{"$in": filter.Creators}
	}
	if filter.Statement != nil {
		query["statement"] = *filter.Statement
	}
	return query
}

// populateStages joins the creator reference with the users collection,
// keeping issues that have no creator.
func populateStages() []bson.D {
	return []bson.D{
		{{Key: "$lookup", Value: bson.M{
			"from":         "users",
			"localField":   "creator",
			"foreignField": "_id",
			"as":           "creatorDoc",
		}}},
		{{Key: "$unwind", Value: bson.M{
			"path":                       "$creatorDoc",
			"preserveNullAndEmptyArrays": true,
		}}},
	}
}

func (r *MongoIssueRepository) Create(ctx context.Context, issue *entity.Issue) (*entity.Issue, error) {
	now := time.Now()
	issue.CreatedAt = now
	issue.UpdatedAt = now
	if issue.Tags == nil {
		issue.Tags = []string{}
	}

	res, err := r.collection.InsertOne(ctx, issue)
	if err != nil {
		return nil, fmt.Errorf("failed to create issue: %w", err)
	}
	issue.ID = res.InsertedID.(primitive.ObjectID)
	return issue, nil
}

func (r *MongoIssueRepository) GetByID(ctx context.Context, id primitive.ObjectID, populate bool) (*entity.Issue, error) {
	if !populate {
		var issue entity.Issue
		err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&issue)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return nil, &apperr.NotFoundError{Resource: "issue", ID: id.Hex()}
			}
			return nil, fmt.Errorf("failed to retrieve issue: %w", err)
		}
		return &issue, nil
	}

	pipeline := mongo.Pipeline{bson.D{{Key: "$match", Value: bson.M{"_id": id}}}}
	pipeline = append(pipeline, populateStages()...)

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve issue: %w", err)
	}
	defer cursor.Close(ctx)

	var issues []*entity.Issue
	if err := cursor.All(ctx, &issues); err != nil {
		return nil, fmt.Errorf("failed to decode issue: %w", err)
	}
	if len(issues) == 0 {
		return nil, &apperr.NotFoundError{Resource: "issue", ID: id.Hex()}
	}
	return issues[0], nil
}

// List retrieves one page of issues sorted by title, optionally joining the
// creator documents.
func (r *MongoIssueRepository) List(ctx context.Context, filter contract.IssueFilter, skip, limit int64, populate bool) ([]*entity.Issue, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: buildIssueFilter(filter)}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "title", Value: 1}}}},
		bson.D{{Key: "$skip", Value: skip}},
		bson.D{{Key: "$limit", Value: limit}},
	}
	if populate {
		pipeline = append(pipeline, populateStages()...)
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve issues: %w", err)
	}
	defer cursor.Close(ctx)

	issues := []*entity.Issue{}
	if err := cursor.All(ctx, &issues); err != nil {
		return nil, fmt.Errorf("failed to decode issues: %w", err)
	}
	return issues, nil
}

func (r *MongoIssueRepository) Count(ctx context.Context, filter contract.IssueFilter) (int64, error) {
	total, err := r.collection.CountDocuments(ctx, buildIssueFilter(filter))
	if err != nil {
		return 0, fmt.Errorf("failed to count issues: %w", err)
	}
	return total, nil
}

// Update applies only the given fields, stamps updatedAt and returns the
// updated issue.
func (r *MongoIssueRepository) Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) (*entity.Issue, error) {
	updates["updatedAt"] = time.Now()
	filter := bson.M{"_id": id}

	res, err := r.collection.UpdateOne(ctx, filter, bson.M{"$set": updates})
	if err != nil {
		return nil, fmt.Errorf("failed to update issue: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, &apperr.NotFoundError{Resource: "issue", ID: id.Hex()}
	}

	var updated entity.Issue
	if err := r.collection.FindOne(ctx, filter).Decode(&updated); err != nil {
		return nil, fmt.Errorf("failed to reload issue: %w", err)
	}
	return &updated, nil
}

func (r *MongoIssueRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete issue: %w", err)
	}
	if res.DeletedCount == 0 {
		return &apperr.NotFoundError{Resource: "issue", ID: id.Hex()}
	}
	return nil
}

// CountByCreators groups the issues created by the given users and counts
// them per creator. Creators without issues are absent from the result. An
// empty input short-circuits: matching on an empty set would otherwise
// aggregate nothing useful, and the caller always has zero counts to merge.
func (r *MongoIssueRepository) CountByCreators(ctx context.Context, creatorIDs []primitive.ObjectID) (map[primitive.ObjectID]int64, error) {
	counts := make(map[primitive.ObjectID]int64)
	if len(creatorIDs) == 0 {
		return counts, nil
	}

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"creator": bson.M{"$in": creatorIDs}}}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id":   "$creator",
			"count": bson.M{"$sum": 1},
		}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to count issues by creator: %w", err)
	}
	defer cursor.Close(ctx)

	var results []struct {
		CreatorID primitive.ObjectID `bson:"_id"`
		Count     int64              `bson:"count"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("failed to decode creator counts: %w", err)
	}
	for _, res := range results {
		counts[res.CreatorID] = res.Count
	}
	return counts, nil
}

func (r *MongoIssueRepository) ExistsWithCreator(ctx context.Context, userID primitive.ObjectID) (bool, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"creator": userID}, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("failed to check for referencing issues: %w", err)
	}
	return count > 0, nil
}
