package dto

import (
	"time"

	"github.com/lkohler/citysignal/internal/domain/entity"
)

// CreateIssueRequest defines the payload for creating an issue. The creator
// may be supplied as a raw ID in "creator" or as a hyperlink in
// "creatorHref"; the hyperlink wins when both are present.
type CreateIssueRequest struct {
	Title       string   `json:"title" binding:"required,min=3,max=25"`
	ImageURL    string   `json:"imageUrl" binding:"omitempty,max=500"`
	Description string   `json:"description" binding:"required,min=3,max=250"`
	Latitude    *float64 `json:"latitude" binding:"required"`
	Longitude   *float64 `json:"longitude" binding:"required"`
	Statement   string   `json:"statement" binding:"omitempty,oneof=Untouched InProgress Done"`
	Importance  bool     `json:"importance"`
	Tags        []string `json:"tags"`
	Creator     string   `json:"creator"`
	CreatorHref string   `json:"creatorHref"`
}

func (r CreateIssueRequest) ToEntity() *entity.Issue {
	return &entity.Issue{
		Title:       r.Title,
		ImageURL:    r.ImageURL,
		Description: r.Description,
		Latitude:    *r.Latitude,
		Longitude:   *r.Longitude,
		Statement:   entity.Statement(r.Statement),
		Importance:  r.Importance,
		Tags:        r.Tags,
	}
}

// CreatorRef returns the creator reference to resolve, empty when the
// request names no creator.
func (r CreateIssueRequest) CreatorRef() string {
	if r.CreatorHref != "" {
		return r.CreatorHref
	}
	return r.Creator
}

// UpdateIssueRequest defines the payload for a partial issue update. Only
// non-nil fields are applied; a nil Tags slice means the field was absent.
type UpdateIssueRequest struct {
	Title       *string  `json:"title" binding:"omitempty,min=3,max=25"`
	ImageURL    *string  `json:"imageUrl" binding:"omitempty,max=500"`
	Description *string  `json:"description" binding:"omitempty,min=3,max=250"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	Statement   *string  `json:"statement" binding:"omitempty,oneof=Untouched InProgress Done"`
	Importance  *bool    `json:"importance"`
	Tags        []string `json:"tags"`
	Creator     *string  `json:"creator"`
	CreatorHref *string  `json:"creatorHref"`
}

// ToUpdates converts the request to a field update map, creator excluded:
// reference resolution needs a store lookup and happens in the usecase.
func (r UpdateIssueRequest) ToUpdates() map[string]interface{} {
	updates := make(map[string]interface{})
	if r.Title != nil {
		updates["title"] = *r.Title
	}
	if r.ImageURL != nil {
		updates["imageUrl"] = *r.ImageURL
	}
	if r.Description != nil {
		updates["description"] = *r.Description
	}
	if r.Latitude != nil {
		updates["latitude"] = *r.Latitude
	}
	if r.Longitude != nil {
		updates["longitude"] = *r.Longitude
	}
	if r.Statement != nil {
		updates["statement"] = *r.Statement
	}
	if r.Importance != nil {
		updates["importance"] = *r.Importance
	}
	if r.Tags != nil {
		updates["tags"] = r.Tags
	}
	return updates
}

// CreatorRef returns the creator reference to re-resolve, or nil when the
// request does not touch the creator.
func (r UpdateIssueRequest) CreatorRef() *string {
	if r.CreatorHref != nil {
		return r.CreatorHref
	}
	return r.Creator
}

// IssueResponse is the external representation of an issue. Exactly one of
// Creator and CreatorHref is set when the issue has a creator: the embedded
// document when it was populated, the hyperlink otherwise.
type IssueResponse struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	ImageURL    string        `json:"imageUrl,omitempty"`
	Description string        `json:"description"`
	Latitude    float64       `json:"latitude"`
	Longitude   float64       `json:"longitude"`
	Statement   string        `json:"statement"`
	Importance  bool          `json:"importance"`
	Tags        []string      `json:"tags"`
	Creator     *UserResponse `json:"creator,omitempty"`
	CreatorHref string        `json:"creatorHref,omitempty"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}

func ToIssueResponse(issue *entity.Issue) IssueResponse {
	resp := IssueResponse{
		ID:          issue.ID.Hex(),
		Title:       issue.Title,
		ImageURL:    issue.ImageURL,
		Description: issue.Description,
		Latitude:    issue.Latitude,
		Longitude:   issue.Longitude,
		Statement:   string(issue.Statement),
		Importance:  issue.Importance,
		Tags:        issue.Tags,
		CreatedAt:   issue.CreatedAt,
		UpdatedAt:   issue.UpdatedAt,
	}
	if resp.Tags == nil {
		resp.Tags = []string{}
	}
	if issue.Creator != nil {
		creator := ToUserResponse(issue.Creator, nil)
		resp.Creator = &creator
	} else if issue.CreatorID != nil {
		resp.CreatorHref = issue.CreatorHref()
	}
	return resp
}

func ToIssueResponses(issues []*entity.Issue) []IssueResponse {
	responses := make([]IssueResponse, 0, len(issues))
	for _, issue := range issues {
		responses = append(responses, ToIssueResponse(issue))
	}
	return responses
}
