package entity

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Issue represents a location-tagged civic report created by a user
type Issue struct {
	ID          primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	Title       string              `bson:"title" json:"title"`
	ImageURL    string              `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	Description string              `bson:"description" json:"description"`
	Latitude    float64             `bson:"latitude" json:"latitude"`
	Longitude   float64             `bson:"longitude" json:"longitude"`
	Statement   Statement           `bson:"statement" json:"statement"`
	Importance  bool                `bson:"importance" json:"importance"`
	Tags        []string            `bson:"tags" json:"tags"`
	CreatorID   *primitive.ObjectID `bson:"creator,omitempty" json:"-"`
	Creator     *User               `bson:"creatorDoc,omitempty" json:"-"`
	CreatedAt   time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time           `bson:"updatedAt" json:"updatedAt"`
}

// CreatorHref returns the hyperlink to the issue's creator. The result is
// only meaningful when the issue has a creator.
func (i *Issue) CreatorHref() string {
	if i.Creator != nil {
		return userHrefPrefix + i.Creator.ID.Hex()
	}
	if i.CreatorID != nil {
		return userHrefPrefix + i.CreatorID.Hex()
	}
	return ""
}

const userHrefPrefix = "/users/"

// ParseCreatorRef resolves a creator reference supplied either as a raw
// document ID or as a "/users/<id>" hyperlink. An unparseable reference
// yields nil: the reference is cleared instead of failing the whole write.
func ParseCreatorRef(ref string) *primitive.ObjectID {
	id := strings.TrimPrefix(ref, userHrefPrefix)
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil
	}
	return &oid
}

// Statement represents the handling status of an issue
type Statement string

const (
	StatementUntouched  Statement = "Untouched"
	StatementInProgress Statement = "InProgress"
	StatementDone       Statement = "Done"
)

// ParseStatement returns the Statement matching the given token, or false
// when the token is not one of the accepted values.
func ParseStatement(s string) (Statement, bool) {
	switch Statement(s) {
	case StatementUntouched, StatementInProgress, StatementDone:
		return Statement(s), true
	}
	return "", false
}
