package usecasecontract

import (
	"context"

	"github.com/lkohler/citysignal/internal/domain/entity"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// IUserUseCase defines the interface for user-related operations.
type IUserUseCase interface {
	Create(ctx context.Context, user *entity.User) (*entity.User, error)
	// GetByID returns the user together with the number of issues they
	// created.
	GetByID(ctx context.Context, id string) (*entity.User, int64, error)
	// List returns one page of users, the per-creator issue counts for that
	// page, and the total number of users matching the filter. An
	// unrecognized honorific token disables the filter.
	List(ctx context.Context, honorific string, skip, limit int64) ([]*entity.User, map[primitive.ObjectID]int64, int64, error)
	// Update applies a partial update; only the given fields change.
	Update(ctx context.Context, id string, updates map[string]interface{}) (*entity.User, error)
	// Replace overwrites every mutable field from the given user.
	Replace(ctx context.Context, id string, user *entity.User) (*entity.User, error)
	// Delete removes the user unless an issue still references them.
	Delete(ctx context.Context, id string) error
}
