package queries

import (
	"context"

	"pickup/internal/core/domain/model/address"
)

// SuggestStreetsQueryHandler serves street autocompletion from the built-in
// reference list. It never fails for a constructed query.
type SuggestStreetsQueryHandler struct{}

// NewSuggestStreetsQueryHandler creates a handler over the static street list.
func NewSuggestStreetsQueryHandler() SuggestStreetsQueryHandler {
	return SuggestStreetsQueryHandler{}
}

// Handle returns matching streets, never nil, so the client always gets a JSON array.
func (h SuggestStreetsQueryHandler) Handle(_ context.Context, query SuggestStreetsQuery) ([]string, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	streets := address.SuggestStreets(query.Prefix())
	if streets == nil {
		streets = []string{}
	}
	return streets, nil
}
