package mongodb

import (
	"testing"

	"github.com/lkohler/citysignal/internal/domain/contract"
	"github.com/lkohler/citysignal/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestBuildIssueFilter_Empty(t *testing.T) {
	assert.Equal(t, bson.M{}, buildIssueFilter(contract.IssueFilter{}))
}

func TestBuildIssueFilter_Creators(t *testing.T) {
	ids := []primitive.ObjectID{primitive.NewObjectID(), primitive.NewObjectID()}
	filter := contract.IssueFilter{Creators: ids, FilterByCreator: true}

	assert.Equal(t, bson.M{"creator": bson.M{"$in": ids}}, buildIssueFilter(filter))
}

func TestBuildIssueFilter_EmptyCreatorSetMatchesNothing(t *testing.T) {
	// An all-invalid multi-value creator filter ends up as an empty set,
	// which must stay a predicate rather than disappear.
	filter := contract.IssueFilter{Creators: []primitive.ObjectID{}, FilterByCreator: true}

	assert.Equal(t, bson.M{"creator": bson.M{"$in": []primitive.ObjectID{}}}, buildIssueFilter(filter))
}

func TestBuildIssueFilter_Statement(t *testing.T) {
	done := entity.StatementDone
	filter := contract.IssueFilter{Statement: &done}

	assert.Equal(t, bson.M{"statement": entity.StatementDone}, buildIssueFilter(filter))
}

func TestBuildIssueFilter_IndependentEvaluations(t *testing.T) {
	done := entity.StatementDone
	filter := contract.IssueFilter{Statement: &done}

	first := buildIssueFilter(filter)
	second := buildIssueFilter(filter)

	// The count and the fetch must each get their own query value.
	assert.Equal(t, first, second)
	first["statement"] = entity.StatementUntouched
	assert.Equal(t, bson.M{"statement": entity.StatementDone}, second)
}

func TestBuildUserFilter(t *testing.T) {
	assert.Equal(t, bson.M{}, buildUserFilter(contract.UserFilter{}))

	dr := entity.HonorificDr
	assert.Equal(t, bson.M{"honorific": entity.HonorificDr}, buildUserFilter(contract.UserFilter{Honorific: &dr}))
}
