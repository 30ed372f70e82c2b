package queries

import (
	"errors"

	"pickup/internal/pkg/guard"
)

var ErrSuggestStreetsQueryIsNotConstructed = errors.New(
	"SuggestStreetsQuery must be created via NewSuggestStreetsQuery constructor",
)

// SuggestStreetsQuery looks up capital street names starting with the typed text.
type SuggestStreetsQuery struct {
	prefix string

	guard guard.ConstructorGuard
}

// NewSuggestStreetsQuery accepts any text; a blank prefix simply matches nothing.
func NewSuggestStreetsQuery(prefix string) SuggestStreetsQuery {
	return SuggestStreetsQuery{
		prefix: prefix,
		guard:  guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q SuggestStreetsQuery) Validate() error {
	return q.guard.Validate(ErrSuggestStreetsQueryIsNotConstructed)
}

// Prefix returns the text typed so far.
func (q SuggestStreetsQuery) Prefix() string {
	return q.prefix
}
