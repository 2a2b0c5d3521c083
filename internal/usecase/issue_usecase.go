package usecase

import (
	"context"
	"errors"

	"github.com/lkohler/citysignal/internal/domain/apperr"
	"github.com/lkohler/citysignal/internal/domain/contract"
	"github.com/lkohler/citysignal/internal/domain/entity"
	usecasecontract "github.com/lkohler/citysignal/internal/usecase/contract"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// IssueUsecase implements the issue operations: creation with creator
// reference resolution, filtered and paginated listing with optional creator
// population, partial updates and unconditional deletion.
type IssueUsecase struct {
	issueRepo contract.IIssueRepository
	userRepo  contract.IUserRepository
	logger    usecasecontract.IAppLogger
}

var _ usecasecontract.IIssueUseCase = (*IssueUsecase)(nil)

func NewIssueUsecase(issueRepo contract.IIssueRepository, userRepo contract.IUserRepository, logger usecasecontract.IAppLogger) *IssueUsecase {
	return &IssueUsecase{
		issueRepo: issueRepo,
		userRepo:  userRepo,
		logger:    logger,
	}
}

// resolveCreator turns a raw ID or "/users/<id>" hyperlink into a creator
// reference. An unparseable reference clears the creator instead of failing
// the write; a well-formed reference to a missing user is a validation
// error reported on creatorHref, the field the client actually sent.
func (uc *IssueUsecase) resolveCreator(ctx context.Context, ref string) (*primitive.ObjectID, error) {
	oid := entity.ParseCreatorRef(ref)
	if oid == nil {
		return nil, nil
	}

	if _, err := uc.userRepo.GetByID(ctx, *oid); err != nil {
		var notFound *apperr.NotFoundError
		if errors.As(err, &notFound) {
			return nil, apperr.NewValidationError("creatorHref", "does not reference a user that exists")
		}
		return nil, err
	}
	return oid, nil
}

func (uc *IssueUsecase) Create(ctx context.Context, issue *entity.Issue, creatorRef string) (*entity.Issue, error) {
	if creatorRef != "" {
		creatorID, err := uc.resolveCreator(ctx, creatorRef)
		if err != nil {
			return nil, err
		}
		issue.CreatorID = creatorID
	}
	if issue.Statement == "" {
		issue.Statement = entity.StatementUntouched
	}

	created, err := uc.issueRepo.Create(ctx, issue)
	if err != nil {
		return nil, err
	}
	uc.logger.Infof("Created issue %q", created.Title)
	return created, nil
}

func (uc *IssueUsecase) GetByID(ctx context.Context, id string, populate bool) (*entity.Issue, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, &apperr.NotFoundError{Resource: "issue", ID: id}
	}
	return uc.issueRepo.GetByID(ctx, oid, populate)
}

func (uc *IssueUsecase) List(ctx context.Context, opts usecasecontract.IssueListOptions) ([]*entity.Issue, int64, error) {
	filter := buildIssueListFilter(opts)

	total, err := uc.issueRepo.Count(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	issues, err := uc.issueRepo.List(ctx, filter, opts.Skip, opts.Limit, opts.Populate)
	if err != nil {
		return nil, 0, err
	}
	return issues, total, nil
}

// buildIssueListFilter translates raw filter tokens into predicates with the
// lenient policy: a single malformed creator ID disables the creator filter,
// while malformed IDs in a multi-value filter are dropped from the set (an
// all-malformed set then matches nothing). Unrecognized statement tokens are
// ignored.
func buildIssueListFilter(opts usecasecontract.IssueListOptions) contract.IssueFilter {
	filter := contract.IssueFilter{}

	switch len(opts.Creators) {
	case 0:
	case 1:
		if oid, err := primitive.ObjectIDFromHex(opts.Creators[0]); err == nil {
			filter.Creators = []primitive.ObjectID{oid}
			filter.FilterByCreator = true
		}
	default:
		valid := make([]primitive.ObjectID, 0, len(opts.Creators))
		for _, raw := range opts.Creators {
			if oid, err := primitive.ObjectIDFromHex(raw); err == nil {
				valid = append(valid, oid)
			}
		}
		filter.Creators = valid
		filter.FilterByCreator = true
	}

	if statement, ok := entity.ParseStatement(opts.Statement); ok {
		filter.Statement = &statement
	}
	return filter
}

func (uc *IssueUsecase) Update(ctx context.Context, id string, updates map[string]interface{}, creatorRef *string) (*entity.Issue, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, &apperr.NotFoundError{Resource: "issue", ID: id}
	}

	if creatorRef != nil {
		creatorID, err := uc.resolveCreator(ctx, *creatorRef)
		if err != nil {
			return nil, err
		}
		if creatorID != nil {
			updates["creator"] = *creatorID
		} else {
			updates["creator"] = nil
		}
	}
	if len(updates) == 0 {
		return uc.issueRepo.GetByID(ctx, oid, false)
	}

	updated, err := uc.issueRepo.Update(ctx, oid, updates)
	if err != nil {
		return nil, err
	}
	uc.logger.Infof("Updated issue %q", updated.Title)
	return updated, nil
}

func (uc *IssueUsecase) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return &apperr.NotFoundError{Resource: "issue", ID: id}
	}

	if err := uc.issueRepo.Delete(ctx, oid); err != nil {
		return err
	}
	uc.logger.Infof("Deleted issue %s", id)
	return nil
}
