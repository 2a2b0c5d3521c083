package mocks

import (
	"context"

	"github.com/lkohler/citysignal/internal/domain/apperr"
	"github.com/lkohler/citysignal/internal/domain/entity"
	usecasecontract "github.com/lkohler/citysignal/internal/usecase/contract"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MockUserUsecase is a mock implementation of the user usecase interface
type MockUserUsecase struct {
	// Control mock behavior
	ShouldFailCreateDuplicate bool
	ShouldFailGet             bool
	ShouldFailUpdate          bool
	ShouldFailDeleteConflict  bool
	ShouldFailDeleteNotFound  bool

	// Return values
	MockUser   entity.User
	MockUsers  []*entity.User
	MockCounts map[primitive.ObjectID]int64
	MockTotal  int64

	// Captured arguments for assertions
	LastHonorific string
	LastSkip      int64
	LastLimit     int64
	LastUpdates   map[string]interface{}
	LastReplaced  *entity.User
}

// Ensure MockUserUsecase implements the usecase contract
var _ usecasecontract.IUserUseCase = (*MockUserUsecase)(nil)

func NewMockUserUsecase() *MockUserUsecase {
	id := primitive.NewObjectID()
	return &MockUserUsecase{
		MockUser: entity.User{
			ID:        id,
			Username:  "jdoe",
			Lastname:  "Doering",
			Firstname: "Jeanne",
			Honorific: entity.HonorificMs,
			Address:   entity.Address{Road: "Main Street", City: "Lausanne"},
		},
		MockCounts: map[primitive.ObjectID]int64{},
	}
}

func (m *MockUserUsecase) Create(ctx context.Context, user *entity.User) (*entity.User, error) {
	if m.ShouldFailCreateDuplicate {
		return nil, apperr.NewValidationError("username", "is already taken")
	}
	created := *user
	created.ID = m.MockUser.ID
	return &created, nil
}

func (m *MockUserUsecase) GetByID(ctx context.Context, id string) (*entity.User, int64, error) {
	if m.ShouldFailGet {
		return nil, 0, &apperr.NotFoundError{Resource: "user", ID: id}
	}
	return &m.MockUser, m.MockCounts[m.MockUser.ID], nil
}

func (m *MockUserUsecase) List(ctx context.Context, honorific string, skip, limit int64) ([]*entity.User, map[primitive.ObjectID]int64, int64, error) {
	m.LastHonorific = honorific
	m.LastSkip = skip
	m.LastLimit = limit
	return m.MockUsers, m.MockCounts, m.MockTotal, nil
}

func (m *MockUserUsecase) Update(ctx context.Context, id string, updates map[string]interface{}) (*entity.User, error) {
	if m.ShouldFailUpdate {
		return nil, &apperr.NotFoundError{Resource: "user", ID: id}
	}
	m.LastUpdates = updates
	return &m.MockUser, nil
}

func (m *MockUserUsecase) Replace(ctx context.Context, id string, user *entity.User) (*entity.User, error) {
	m.LastReplaced = user
	replaced := *user
	replaced.ID = m.MockUser.ID
	return &replaced, nil
}

func (m *MockUserUsecase) Delete(ctx context.Context, id string) error {
	if m.ShouldFailDeleteConflict {
		return &apperr.ConflictError{Message: "User " + id + " cannot be deleted while issues reference them"}
	}
	if m.ShouldFailDeleteNotFound {
		return &apperr.NotFoundError{Resource: "user", ID: id}
	}
	return nil
}
