package domain

import (
	"time"

	"github.com/google/uuid"
)

// UserID uniquely identifies a user within the system.
// It is a thin wrapper around uuid.UUID to provide type safety at the domain layer.
type UserID uuid.UUID

// String returns the canonical textual form of the id.
func (id UserID) String() string { return uuid.UUID(id).String() }

// IsZero reports whether id is the zero value, which is used for anonymous callers.
func (id UserID) IsZero() bool { return id == UserID{} }

// ParseUserID parses the textual form of a user id.
func ParseUserID(s string) (UserID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UserID{}, err //nolint: wrapcheck
	}

	return UserID(id), nil
}

// User is a registered account. IsSubscribed is relative to the user viewing
// the record and is false for anonymous viewers.
type User struct {
	ID        UserID
	Email     string
	Username  string
	FirstName string
	LastName  string

	IsSubscribed bool

	CreatedAt time.Time
}

// Subscription is an author followed by a user, together with a preview of
// the author's recipes.
type Subscription struct {
	Author User
	// Recipes holds the newest recipes of the author, possibly truncated.
	Recipes []Recipe
	// RecipesCount is the total number of recipes of the author.
	RecipesCount int
}
