package entity

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents a registered user who can report issues
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Username  string             `bson:"username" json:"username"`
	Lastname  string             `bson:"lastname" json:"lastname"`
	Firstname string             `bson:"firstname" json:"firstname"`
	Honorific Honorific          `bson:"honorific" json:"honorific"`
	Age       *int               `bson:"age,omitempty" json:"age,omitempty"`
	Address   Address            `bson:"address" json:"address"`
}

// Address is the structured postal address of a user.
type Address struct {
	Road   string `bson:"road" json:"road"`
	Number *int   `bson:"number,omitempty" json:"number,omitempty"`
	City   string `bson:"city" json:"city"`
}

// Honorific represents the title of a user
type Honorific string

const (
	HonorificMr  Honorific = "Mr"
	HonorificMrs Honorific = "Mrs"
	HonorificMs  Honorific = "Ms"
	HonorificDr  Honorific = "Dr"
)

// ParseHonorific returns the Honorific matching the given token, or false
// when the token is not one of the accepted values.
func ParseHonorific(s string) (Honorific, bool) {
	switch Honorific(s) {
	case HonorificMr, HonorificMrs, HonorificMs, HonorificDr:
		return Honorific(s), true
	}
	return "", false
}
