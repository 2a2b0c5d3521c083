package mocks

import (
	"context"

	"github.com/lkohler/citysignal/internal/domain/apperr"
	"github.com/lkohler/citysignal/internal/domain/entity"
	usecasecontract "github.com/lkohler/citysignal/internal/usecase/contract"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MockIssueUsecase is a mock implementation of the issue usecase interface
type MockIssueUsecase struct {
	// Control mock behavior
	ShouldFailCreateCreator bool
	ShouldFailGet           bool
	ShouldFailDelete        bool

	// Return values
	MockIssue  entity.Issue
	MockIssues []*entity.Issue
	MockTotal  int64

	// Captured arguments for assertions
	LastCreatorRef       string
	LastUpdateCreatorRef *string
	LastUpdates          map[string]interface{}
	LastListOptions      usecasecontract.IssueListOptions
}

// Ensure MockIssueUsecase implements the usecase contract
var _ usecasecontract.IIssueUseCase = (*MockIssueUsecase)(nil)

func NewMockIssueUsecase() *MockIssueUsecase {
	return &MockIssueUsecase{
		MockIssue: entity.Issue{
			ID:          primitive.NewObjectID(),
			Title:       "Broken street light",
			Description: "The light at the corner flickers all night",
			Latitude:    46.519,
			Longitude:   6.633,
			Statement:   entity.StatementUntouched,
			Tags:        []string{"light"},
		},
	}
}

func (m *MockIssueUsecase) Create(ctx context.Context, issue *entity.Issue, creatorRef string) (*entity.Issue, error) {
	if m.ShouldFailCreateCreator {
		return nil, apperr.NewValidationError("creatorHref", "does not reference a user that exists")
	}
	m.LastCreatorRef = creatorRef
	created := *issue
	created.ID = m.MockIssue.ID
	if created.Statement == "" {
		created.Statement = entity.StatementUntouched
	}
	return &created, nil
}

func (m *MockIssueUsecase) GetByID(ctx context.Context, id string, populate bool) (*entity.Issue, error) {
	if m.ShouldFailGet {
		return nil, &apperr.NotFoundError{Resource: "issue", ID: id}
	}
	return &m.MockIssue, nil
}

func (m *MockIssueUsecase) List(ctx context.Context, opts usecasecontract.IssueListOptions) ([]*entity.Issue, int64, error) {
	m.LastListOptions = opts
	return m.MockIssues, m.MockTotal, nil
}

func (m *MockIssueUsecase) Update(ctx context.Context, id string, updates map[string]interface{}, creatorRef *string) (*entity.Issue, error) {
	m.LastUpdates = updates
	m.LastUpdateCreatorRef = creatorRef
	return &m.MockIssue, nil
}

func (m *MockIssueUsecase) Delete(ctx context.Context, id string) error {
	if m.ShouldFailDelete {
		return &apperr.NotFoundError{Resource: "issue", ID: id}
	}
	return nil
}
