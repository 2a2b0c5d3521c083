package contract

import (
	"context"

	"github.com/lkohler/citysignal/internal/domain/entity"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// IIssueRepository provides methods for managing issue documents in the store.
type IIssueRepository interface {
	Create(ctx context.Context, issue *entity.Issue) (*entity.Issue, error)
	// GetByID loads one issue; with populate the creator reference is
	// replaced by the referenced user document.
	GetByID(ctx context.Context, id primitive.ObjectID, populate bool) (*entity.Issue, error)
	List(ctx context.Context, filter IssueFilter, skip, limit int64, populate bool) ([]*entity.Issue, error)
	Count(ctx context.Context, filter IssueFilter) (int64, error)
	Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) (*entity.Issue, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	// CountByCreators groups issues by creator and counts them. Creators
	// with no issues are absent from the result; an empty input returns an
	// empty map without touching the store.
	CountByCreators(ctx context.Context, creatorIDs []primitive.ObjectID) (map[primitive.ObjectID]int64, error)
	// ExistsWithCreator reports whether any issue references the given user.
	ExistsWithCreator(ctx context.Context, userID primitive.ObjectID) (bool, error)
}

// IssueFilter encapsulates the filter predicates for issue listing.
// FilterByCreator distinguishes "no creator filter" from "filter on an
// empty set of creators", which matches nothing.
type IssueFilter struct {
	Creators        []primitive.ObjectID
	FilterByCreator bool
	Statement       *entity.Statement
}
