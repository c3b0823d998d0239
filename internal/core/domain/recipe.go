package domain

import (
	"errors"
	"time"
)

var ErrRecipeNotFound = errors.New("recipe not found")
var ErrForbidden = errors.New("access forbidden")

// Recipe is the core aggregate. Owner holds the owning user's username and is
// immutable after creation; Date is stamped by the store on every create or
// update.
type Recipe struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Ingredients []string  `json:"ingredients"`
	Directions  []string  `json:"directions"`
	Date        time.Time `json:"date"`
	Owner       string    `json:"-"`
}

// OwnedBy reports whether the recipe belongs to the user with the given
// username. Ownership is compared by the stable username, not by object
// identity.
func (r *Recipe) OwnedBy(userName string) bool {
	return r.Owner == userName
}
