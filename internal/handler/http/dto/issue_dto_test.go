package dto_test

import (
	"testing"

	"github.com/lkohler/citysignal/internal/domain/entity"
	"github.com/lkohler/citysignal/internal/handler/http/dto"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestToIssueResponse_CreatorHrefWhenNotPopulated(t *testing.T) {
	creatorID := primitive.NewObjectID()
	issue := &entity.Issue{
		ID:        primitive.NewObjectID(),
		Title:     "Pothole",
		CreatorID: &creatorID,
	}

	resp := dto.ToIssueResponse(issue)

	assert.Nil(t, resp.Creator)
	assert.Equal(t, "/users/"+creatorID.Hex(), resp.CreatorHref)
	assert.NotNil(t, resp.Tags)
}

func TestToIssueResponse_EmbedsPopulatedCreator(t *testing.T) {
	creator := &entity.User{ID: primitive.NewObjectID(), Username: "ada"}
	issue := &entity.Issue{
		ID:        primitive.NewObjectID(),
		Title:     "Pothole",
		CreatorID: &creator.ID,
		Creator:   creator,
	}

	resp := dto.ToIssueResponse(issue)

	assert.Empty(t, resp.CreatorHref)
	assert.NotNil(t, resp.Creator)
	assert.Equal(t, "ada", resp.Creator.Username)
	assert.Nil(t, resp.Creator.CreatedIssuesCount)
}

func TestToIssueResponse_NoCreator(t *testing.T) {
	resp := dto.ToIssueResponse(&entity.Issue{ID: primitive.NewObjectID()})
	assert.Nil(t, resp.Creator)
	assert.Empty(t, resp.CreatorHref)
}

func TestUpdateIssueRequest_CreatorRefPrefersHref(t *testing.T) {
	raw := "abc"
	href := "/users/def"
	req := dto.UpdateIssueRequest{Creator: &raw, CreatorHref: &href}
	assert.Equal(t, &href, req.CreatorRef())

	assert.Nil(t, dto.UpdateIssueRequest{}.CreatorRef())
}
