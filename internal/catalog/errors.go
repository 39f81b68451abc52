package catalog

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for catalog loading and maintenance.
var (
	// ErrNotFound indicates the catalog file does not exist.
	ErrNotFound = errors.New("data file not found")
	// ErrInvalidFormat indicates the file is not a recognized catalog shape.
	ErrInvalidFormat = errors.New("invalid data file format: expected { items: MenuItem[] } or MenuItem[]")
	// ErrEmptyIngredient indicates the ingredient text is empty after trimming.
	ErrEmptyIngredient = errors.New("ingredient cannot be empty")
	// ErrItemNotFound indicates no menu item matches the requested name.
	ErrItemNotFound = errors.New("menu item not found")
	// ErrDuplicateIngredient indicates the ingredient already exists somewhere in the catalog.
	ErrDuplicateIngredient = errors.New("ingredient already exists somewhere in the menu")
)

// ConflictError records a global uniqueness violation along with the items
// that already carry the ingredient.
type ConflictError struct {
	Ingredient string
	Items      []string
}

// Error returns a message naming the ingredient and, when known, its owners.
func (e *ConflictError) Error() string {
	msg := fmt.Sprintf("%s: %q", ErrDuplicateIngredient.Error(), e.Ingredient)
	if len(e.Items) > 0 {
		msg += " (in " + strings.Join(e.Items, ", ") + ")"
	}
	return msg
}

// Unwrap returns ErrDuplicateIngredient for use with errors.Is.
func (e *ConflictError) Unwrap() error {
	return ErrDuplicateIngredient
}
