package dto_test

import (
	"testing"

	"github.com/lkohler/citysignal/internal/domain/entity"
	"github.com/lkohler/citysignal/internal/handler/http/dto"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestToUserResponses_FillsZeroCounts(t *testing.T) {
	users := []*entity.User{
		{ID: primitive.NewObjectID(), Username: "ada"},
		{ID: primitive.NewObjectID(), Username: "bo_"},
		{ID: primitive.NewObjectID(), Username: "cyd"},
	}
	// The aggregation only yields entries for creators with at least one
	// issue; the middle user has none.
	counts := map[primitive.ObjectID]int64{
		users[0].ID: 3,
		users[2].ID: 5,
	}

	responses := dto.ToUserResponses(users, counts)

	assert.Len(t, responses, 3)
	assert.Equal(t, int64(3), *responses[0].CreatedIssuesCount)
	assert.Equal(t, int64(0), *responses[1].CreatedIssuesCount)
	assert.Equal(t, int64(5), *responses[2].CreatedIssuesCount)
}

func TestToUserResponse_OmitsCountWhenNotAggregated(t *testing.T) {
	user := &entity.User{ID: primitive.NewObjectID(), Username: "ada"}
	resp := dto.ToUserResponse(user, nil)
	assert.Nil(t, resp.CreatedIssuesCount)
	assert.Equal(t, user.ID.Hex(), resp.ID)
}

func TestUpdateUserRequest_ToUpdates_LeafLevelAddress(t *testing.T) {
	firstname := "Jeanne"
	city := "Geneva"
	req := dto.UpdateUserRequest{
		Firstname: &firstname,
		Address:   &dto.AddressPatch{City: &city},
	}

	updates := req.ToUpdates()

	assert.Equal(t, map[string]interface{}{
		"firstname":    "Jeanne",
		"address.city": "Geneva",
	}, updates)
}
