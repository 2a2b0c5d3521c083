package dto

import (
	"github.com/lkohler/citysignal/internal/domain/entity"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AddressRequest is the nested address payload for creation and full update.
type AddressRequest struct {
	Road   string `json:"road" binding:"required"`
	Number *int   `json:"number"`
	City   string `json:"city" binding:"required"`
}

// CreateUserRequest defines the payload for creating a user. The same shape
// is bound for PUT: required fields must be present, optional ones clear
// when absent.
type CreateUserRequest struct {
	Username  string         `json:"username" binding:"required,min=3,max=25"`
	Lastname  string         `json:"lastname" binding:"required,min=3,max=25"`
	Firstname string         `json:"firstname" binding:"required,min=3,max=25"`
	Honorific string         `json:"honorific" binding:"required,oneof=Mr Mrs Ms Dr"`
	Age       *int           `json:"age" binding:"omitempty,gte=0,lte=140"`
	Address   AddressRequest `json:"address"`
}

func (r CreateUserRequest) ToEntity() *entity.User {
	return &entity.User{
		Username:  r.Username,
		Lastname:  r.Lastname,
		Firstname: r.Firstname,
		Honorific: entity.Honorific(r.Honorific),
		Age:       r.Age,
		Address: entity.Address{
			Road:   r.Address.Road,
			Number: r.Address.Number,
			City:   r.Address.City,
		},
	}
}

// UpdateUserRequest defines the payload for a partial user update. Only
// non-nil fields are applied.
type UpdateUserRequest struct {
	Username  *string       `json:"username" binding:"omitempty,min=3,max=25"`
	Lastname  *string       `json:"lastname" binding:"omitempty,min=3,max=25"`
	Firstname *string       `json:"firstname" binding:"omitempty,min=3,max=25"`
	Honorific *string       `json:"honorific" binding:"omitempty,oneof=Mr Mrs Ms Dr"`
	Age       *int          `json:"age" binding:"omitempty,gte=0,lte=140"`
	Address   *AddressPatch `json:"address"`
}

// AddressPatch merges into the stored address at the leaf level.
type AddressPatch struct {
	Road   *string `json:"road"`
	Number *int    `json:"number"`
	City   *string `json:"city"`
}

// ToUpdates converts the request to a field update map. Nested address
// fields use dot paths so the store merges leaves instead of replacing the
// whole object.
func (r UpdateUserRequest) ToUpdates() map[string]interface{} {
	updates := make(map[string]interface{})
	if r.Username != nil {
		updates["username"] = *r.Username
	}
	if r.Lastname != nil {
		updates["lastname"] = *r.Lastname
	}
	if r.Firstname != nil {
		updates["firstname"] = *r.Firstname
	}
	if r.Honorific != nil {
		updates["honorific"] = *r.Honorific
	}
	if r.Age != nil {
		updates["age"] = *r.Age
	}
	if r.Address != nil {
		if r.Address.Road != nil {
			updates["address.road"] = *r.Address.Road
		}
		if r.Address.Number != nil {
			updates["address.number"] = *r.Address.Number
		}
		if r.Address.City != nil {
			updates["address.city"] = *r.Address.City
		}
	}
	return updates
}

// UserResponse is the external representation of a user.
type UserResponse struct {
	ID                 string          `json:"id"`
	Username           string          `json:"username"`
	Lastname           string          `json:"lastname"`
	Firstname          string          `json:"firstname"`
	Honorific          string          `json:"honorific"`
	Age                *int            `json:"age,omitempty"`
	Address            AddressResponse `json:"address"`
	CreatedIssuesCount *int64          `json:"createdIssuesCount,omitempty"`
}

type AddressResponse struct {
	Road   string `json:"road"`
	Number *int   `json:"number,omitempty"`
	City   string `json:"city"`
}

// ToUserResponse converts a user entity to its external representation,
// attaching the created-issue count when the aggregation produced one.
func ToUserResponse(user *entity.User, createdIssues *int64) UserResponse {
	return UserResponse{
		ID:        user.ID.Hex(),
		Username:  user.Username,
		Lastname:  user.Lastname,
		Firstname: user.Firstname,
		Honorific: string(user.Honorific),
		Age:       user.Age,
		Address: AddressResponse{
			Road:   user.Address.Road,
			Number: user.Address.Number,
			City:   user.Address.City,
		},
		CreatedIssuesCount: createdIssues,
	}
}

// ToUserResponses merges the aggregation result into the serialized users.
// Users absent from the counts map get an explicit zero.
func ToUserResponses(users []*entity.User, counts map[primitive.ObjectID]int64) []UserResponse {
	responses := make([]UserResponse, 0, len(users))
	for _, user := range users {
		count := counts[user.ID]
		responses = append(responses, ToUserResponse(user, &count))
	}
	return responses
}
