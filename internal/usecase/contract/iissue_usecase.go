package usecasecontract

import (
	"context"

	"github.com/lkohler/citysignal/internal/domain/entity"
)

// IIssueUseCase defines the interface for issue-related operations.
type IIssueUseCase interface {
	// Create stores a new issue. creatorRef may be a raw user ID or a
	// "/users/<id>" hyperlink; an unparseable reference leaves the issue
	// without a creator, a well-formed one must reference an existing user.
	Create(ctx context.Context, issue *entity.Issue, creatorRef string) (*entity.Issue, error)
	GetByID(ctx context.Context, id string, populate bool) (*entity.Issue, error)
	// List returns one page of issues and the total matching the filter.
	List(ctx context.Context, opts IssueListOptions) ([]*entity.Issue, int64, error)
	// Update applies a partial update. A non-nil creatorRef re-resolves the
	// creator reference, clearing it when unparseable.
	Update(ctx context.Context, id string, updates map[string]interface{}, creatorRef *string) (*entity.Issue, error)
	Delete(ctx context.Context, id string) error
}

// IssueListOptions carries the raw filter tokens from the request along with
// pagination bounds. Malformed tokens are dropped, never rejected.
type IssueListOptions struct {
	Creators  []string
	Statement string
	Skip      int64
	Limit     int64
	Populate  bool
}
