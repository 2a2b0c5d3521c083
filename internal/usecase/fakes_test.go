package usecase_test

import (
	"context"
	"sort"
	"time"

	"github.com/lkohler/citysignal/internal/domain/apperr"
	"github.com/lkohler/citysignal/internal/domain/contract"
	"github.com/lkohler/citysignal/internal/domain/entity"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type nopLogger struct{}

func (nopLogger) Debugf(string, ...interface{}) {}
func (nopLogger) Infof(string, ...interface{})  {}
func (nopLogger) Warnf(string, ...interface{})  {}
func (nopLogger) Errorf(string, ...interface{}) {}
func (nopLogger) Fatalf(string, ...interface{}) {}

// fakeUserRepo is an in-memory stand-in for the Mongo user repository,
// mirroring its behavior: unique usernames, lastname-ordered listing and
// leaf-level address updates.
type fakeUserRepo struct {
	users map[primitive.ObjectID]*entity.User
}

var _ contract.IUserRepository = (*fakeUserRepo)(nil)

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[primitive.ObjectID]*entity.User)}
}

func cloneUser(u *entity.User) *entity.User {
	clone := *u
	return &clone
}

func (r *fakeUserRepo) EnsureIndexes(ctx context.Context) error { return nil }

func (r *fakeUserRepo) usernameTaken(username string, except primitive.ObjectID) bool {
	for id, u := range r.users {
		if u.Username == username && id != except {
			return true
		}
	}
	return false
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) (*entity.User, error) {
	if r.usernameTaken(user.Username, primitive.NilObjectID) {
		return nil, apperr.NewValidationError("username", "is already taken")
	}
	stored := cloneUser(user)
	stored.ID = primitive.NewObjectID()
	r.users[stored.ID] = stored
	return cloneUser(stored), nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*entity.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, &apperr.NotFoundError{Resource: "user", ID: id.Hex()}
	}
	return cloneUser(user), nil
}

func (r *fakeUserRepo) matching(filter contract.UserFilter) []*entity.User {
	matched := make([]*entity.User, 0, len(r.users))
	for _, u := range r.users {
		if filter.Honorific != nil && u.Honorific != *filter.Honorific {
			continue
		}
		matched = append(matched, u)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].Lastname < matched[j].Lastname })
	return matched
}

func (r *fakeUserRepo) List(ctx context.Context, filter contract.UserFilter, skip, limit int64) ([]*entity.User, error) {
	matched := r.matching(filter)
	if skip > int64(len(matched)) {
		skip = int64(len(matched))
	}
	matched = matched[skip:]
	if limit < int64(len(matched)) {
		matched = matched[:limit]
	}
	page := make([]*entity.User, 0, len(matched))
	for _, u := range matched {
		page = append(page, cloneUser(u))
	}
	return page, nil
}

func (r *fakeUserRepo) Count(ctx context.Context, filter contract.UserFilter) (int64, error) {
	return int64(len(r.matching(filter))), nil
}

func (r *fakeUserRepo) Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) (*entity.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, &apperr.NotFoundError{Resource: "user", ID: id.Hex()}
	}
	if username, ok := updates["username"].(string); ok && r.usernameTaken(username, id) {
		return nil, apperr.NewValidationError("username", "is already taken")
	}
	for key, value := range updates {
		switch key {
		case "username":
			user.Username = value.(string)
		case "lastname":
			user.Lastname = value.(string)
		case "firstname":
			user.Firstname = value.(string)
		case "honorific":
			user.Honorific = entity.Honorific(value.(string))
		case "age":
			age := value.(int)
			user.Age = &age
		case "address.road":
			user.Address.Road = value.(string)
		case "address.number":
			number := value.(int)
			user.Address.Number = &number
		case "address.city":
			user.Address.City = value.(string)
		}
	}
	return cloneUser(user), nil
}

func (r *fakeUserRepo) Replace(ctx context.Context, user *entity.User) (*entity.User, error) {
	if _, ok := r.users[user.ID]; !ok {
		return nil, &apperr.NotFoundError{Resource: "user", ID: user.ID.Hex()}
	}
	if r.usernameTaken(user.Username, user.ID) {
		return nil, apperr.NewValidationError("username", "is already taken")
	}
	r.users[user.ID] = cloneUser(user)
	return cloneUser(user), nil
}

func (r *fakeUserRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	if _, ok := r.users[id]; !ok {
		return &apperr.NotFoundError{Resource: "user", ID: id.Hex()}
	}
	delete(r.users, id)
	return nil
}

// fakeIssueRepo is the in-memory counterpart of the Mongo issue repository,
// with title-ordered listing, creator population out of the linked user repo
// and per-creator count grouping.
type fakeIssueRepo struct {
	issues map[primitive.ObjectID]*entity.Issue
	users  *fakeUserRepo
}

var _ contract.IIssueRepository = (*fakeIssueRepo)(nil)

func newFakeIssueRepo(users *fakeUserRepo) *fakeIssueRepo {
	return &fakeIssueRepo{
		issues: make(map[primitive.ObjectID]*entity.Issue),
		users:  users,
	}
}

func cloneIssue(i *entity.Issue) *entity.Issue {
	clone := *i
	return &clone
}

func (r *fakeIssueRepo) populate(issue *entity.Issue) {
	if issue.CreatorID == nil {
		return
	}
	if creator, ok := r.users.users[*issue.CreatorID]; ok {
		issue.Creator = cloneUser(creator)
	}
}

func (r *fakeIssueRepo) Create(ctx context.Context, issue *entity.Issue) (*entity.Issue, error) {
	stored := cloneIssue(issue)
	stored.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	stored.CreatedAt = now
	stored.UpdatedAt = now
	if stored.Tags == nil {
		stored.Tags = []string{}
	}
	r.issues[stored.ID] = stored
	return cloneIssue(stored), nil
}

func (r *fakeIssueRepo) GetByID(ctx context.Context, id primitive.ObjectID, populate bool) (*entity.Issue, error) {
	issue, ok := r.issues[id]
	if !ok {
		return nil, &apperr.NotFoundError{Resource: "issue", ID: id.Hex()}
	}
	result := cloneIssue(issue)
	if populate {
		r.populate(result)
	}
	return result, nil
}

func (r *fakeIssueRepo) matching(filter contract.IssueFilter) []*entity.Issue {
	matched := make([]*entity.Issue, 0, len(r.issues))
	for _, issue := range r.issues {
		if filter.FilterByCreator {
			if issue.CreatorID == nil {
				continue
			}
			found := false
			for _, id := range filter.Creators {
				if *issue.CreatorID == id {
					found = true
					break
				}
			}
			if !found {
				continue
			}
		}
		if filter.Statement != nil && issue.Statement != *filter.Statement {
			continue
		}
		matched = append(matched, issue)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].Title < matched[j].Title })
	return matched
}

func (r *fakeIssueRepo) List(ctx context.Context, filter contract.IssueFilter, skip, limit int64, populate bool) ([]*entity.Issue, error) {
	matched := r.matching(filter)
	if skip > int64(len(matched)) {
		skip = int64(len(matched))
	}
	matched = matched[skip:]
	if limit < int64(len(matched)) {
		matched = matched[:limit]
	}
	page := make([]*entity.Issue, 0, len(matched))
	for _, issue := range matched {
		result := cloneIssue(issue)
		if populate {
			r.populate(result)
		}
		page = append(page, result)
	}
	return page, nil
}

func (r *fakeIssueRepo) Count(ctx context.Context, filter contract.IssueFilter) (int64, error) {
	return int64(len(r.matching(filter))), nil
}

func (r *fakeIssueRepo) Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) (*entity.Issue, error) {
	issue, ok := r.issues[id]
	if !ok {
		return nil, &apperr.NotFoundError{Resource: "issue", ID: id.Hex()}
	}
	issue.UpdatedAt = time.Now().UTC()
	for key, value := range updates {
		switch key {
		case "title":
			issue.Title = value.(string)
		case "imageUrl":
			issue.ImageURL = value.(string)
		case "description":
			issue.Description = value.(string)
		case "latitude":
			issue.Latitude = value.(float64)
		case "longitude":
			issue.Longitude = value.(float64)
		case "statement":
			issue.Statement = entity.Statement(value.(string))
		case "importance":
			issue.Importance = value.(bool)
		case "tags":
			issue.Tags = value.([]string)
		case "creator":
			if value == nil {
				issue.CreatorID = nil
			} else {
				oid := value.(primitive.ObjectID)
				issue.CreatorID = &oid
			}
		case "updatedAt":
			issue.UpdatedAt = value.(time.Time)
		}
	}
	return cloneIssue(issue), nil
}

func (r *fakeIssueRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	if _, ok := r.issues[id]; !ok {
		return &apperr.NotFoundError{Resource: "issue", ID: id.Hex()}
	}
	delete(r.issues, id)
	return nil
}

func (r *fakeIssueRepo) CountByCreators(ctx context.Context, creatorIDs []primitive.ObjectID) (map[primitive.ObjectID]int64, error) {
	counts := make(map[primitive.ObjectID]int64)
	if len(creatorIDs) == 0 {
		return counts, nil
	}
	wanted := make(map[primitive.ObjectID]bool, len(creatorIDs))
	for _, id := range creatorIDs {
		wanted[id] = true
	}
	for _, issue := range r.issues {
		if issue.CreatorID != nil && wanted[*issue.CreatorID] {
			counts[*issue.CreatorID]++
		}
	}
	return counts, nil
}

func (r *fakeIssueRepo) ExistsWithCreator(ctx context.Context, userID primitive.ObjectID) (bool, error) {
	for _, issue := range r.issues {
		if issue.CreatorID != nil && *issue.CreatorID == userID {
			return true, nil
		}
	}
	return false, nil
}
