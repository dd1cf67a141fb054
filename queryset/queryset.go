// Package queryset provides the lookup sources relation fields resolve
// objects through: an interface for keyword-filtered single-object fetches,
// an in-memory implementation for tests and fixtures, and a database/sql
// implementation.
package queryset

import (
	"context"

	"github.com/friendsofgo/errors"
)

// Sentinel errors reported by Get. Relation fields translate these into
// validation errors; anything else propagates as-is.
var (
	ErrObjectDoesNotExist = errors.New("queryset: object does not exist")
	ErrMultipleObjects    = errors.New("queryset: multiple objects returned")
	ErrInvalidFilter      = errors.New("queryset: invalid filter")
)

// Queryset fetches a single object matching all given attribute filters.
// Model returns a zero value of the object type the queryset yields, used
// for metadata introspection.
type Queryset interface {
	Get(ctx context.Context, filters map[string]any) (any, error)
	Model() any
}
