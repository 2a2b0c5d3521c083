package contract

import (
	"context"

	"github.com/lkohler/citysignal/internal/domain/entity"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// IUserRepository provides methods for managing user documents in the store.
type IUserRepository interface {
	// EnsureIndexes creates the unique username index. Must be called once
	// at startup; the index is what makes concurrent duplicate creations
	// fail instead of both succeeding.
	EnsureIndexes(ctx context.Context) error
	Create(ctx context.Context, user *entity.User) (*entity.User, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*entity.User, error)
	List(ctx context.Context, filter UserFilter, skip, limit int64) ([]*entity.User, error)
	Count(ctx context.Context, filter UserFilter) (int64, error)
	// Update applies only the given fields; nested address fields use
	// "address.<leaf>" keys so siblings are left untouched.
	Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) (*entity.User, error)
	// Replace overwrites the whole document, clearing fields absent from it.
	Replace(ctx context.Context, user *entity.User) (*entity.User, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// UserFilter encapsulates the filter predicates for user listing. The
// repository builds a fresh store query from it on every evaluation.
type UserFilter struct {
	Honorific *entity.Honorific
}
