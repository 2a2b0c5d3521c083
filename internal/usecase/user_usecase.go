package usecase

import (
	"context"

	"github.com/lkohler/citysignal/internal/domain/apperr"
	"github.com/lkohler/citysignal/internal/domain/contract"
	"github.com/lkohler/citysignal/internal/domain/entity"
	usecasecontract "github.com/lkohler/citysignal/internal/usecase/contract"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserUsecase implements the user operations: creation under the unique
// username constraint, listing with the created-issue aggregation, partial
// and full updates, and reference-protected deletion.
type UserUsecase struct {
	userRepo  contract.IUserRepository
	issueRepo contract.IIssueRepository
	logger    usecasecontract.IAppLogger
}

var _ usecasecontract.IUserUseCase = (*UserUsecase)(nil)

func NewUserUsecase(userRepo contract.IUserRepository, issueRepo contract.IIssueRepository, logger usecasecontract.IAppLogger) *UserUsecase {
	return &UserUsecase{
		userRepo:  userRepo,
		issueRepo: issueRepo,
		logger:    logger,
	}
}

func (uc *UserUsecase) Create(ctx context.Context, user *entity.User) (*entity.User, error) {
	created, err := uc.userRepo.Create(ctx, user)
	if err != nil {
		return nil, err
	}
	uc.logger.Infof("Created user %q", created.Username)
	return created, nil
}

func (uc *UserUsecase) GetByID(ctx context.Context, id string) (*entity.User, int64, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// A malformed ID can never match a document; skip the lookup.
		return nil, 0, &apperr.NotFoundError{Resource: "user", ID: id}
	}

	user, err := uc.userRepo.GetByID(ctx, oid)
	if err != nil {
		return nil, 0, err
	}
	counts, err := uc.issueRepo.CountByCreators(ctx, []primitive.ObjectID{oid})
	if err != nil {
		return nil, 0, err
	}
	return user, counts[oid], nil
}

func (uc *UserUsecase) List(ctx context.Context, honorific string, skip, limit int64) ([]*entity.User, map[primitive.ObjectID]int64, int64, error) {
	filter := contract.UserFilter{}
	if h, ok := entity.ParseHonorific(honorific); ok {
		filter.Honorific = &h
	}

	total, err := uc.userRepo.Count(ctx, filter)
	if err != nil {
		return nil, nil, 0, err
	}
	users, err := uc.userRepo.List(ctx, filter, skip, limit)
	if err != nil {
		return nil, nil, 0, err
	}

	ids := make([]primitive.ObjectID, 0, len(users))
	for _, user := range users {
		ids = append(ids, user.ID)
	}
	counts, err := uc.issueRepo.CountByCreators(ctx, ids)
	if err != nil {
		return nil, nil, 0, err
	}
	return users, counts, total, nil
}

func (uc *UserUsecase) Update(ctx context.Context, id string, updates map[string]interface{}) (*entity.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, &apperr.NotFoundError{Resource: "user", ID: id}
	}
	if len(updates) == 0 {
		// Nothing to change; an empty $set is not a legal store operation.
		return uc.userRepo.GetByID(ctx, oid)
	}

	updated, err := uc.userRepo.Update(ctx, oid, updates)
	if err != nil {
		return nil, err
	}
	uc.logger.Infof("Updated user %q", updated.Username)
	return updated, nil
}

func (uc *UserUsecase) Replace(ctx context.Context, id string, user *entity.User) (*entity.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, &apperr.NotFoundError{Resource: "user", ID: id}
	}

	user.ID = oid
	replaced, err := uc.userRepo.Replace(ctx, user)
	if err != nil {
		return nil, err
	}
	uc.logger.Infof("Replaced user %q", replaced.Username)
	return replaced, nil
}

// Delete removes a user, refusing while any issue still references them as
// creator. The check and the delete are two store operations; the gap is an
// accepted limitation of the reference model.
func (uc *UserUsecase) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return &apperr.NotFoundError{Resource: "user", ID: id}
	}

	referenced, err := uc.issueRepo.ExistsWithCreator(ctx, oid)
	if err != nil {
		return err
	}
	if referenced {
		return &apperr.ConflictError{Message: "User " + id + " cannot be deleted while issues reference them"}
	}

	if err := uc.userRepo.Delete(ctx, oid); err != nil {
		return err
	}
	uc.logger.Infof("Deleted user %s", id)
	return nil
}
