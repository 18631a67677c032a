package school

import "errors"

// School is a tenant. Immutable after creation.
type School struct {
	ID        int64  `json:"id"`
	Reference string `json:"reference"`
	Name      string `json:"name"`
}

// ErrNotFound is returned when no school exists for the given filter.
var ErrNotFound = errors.New("school not found")
