package fields

import (
	"context"
	"sort"
	"strings"

	"github.com/friendsofgo/errors"
	"github.com/spf13/cast"

	"github.com/restkit/fields/meta"
	"github.com/restkit/fields/queryset"
)

// MultiSlugRelatedField represents a relation identified by a unique set of
// named attributes on the target rather than a single primary key.
type MultiSlugRelatedField struct {
	baseField
	qs         queryset.Queryset
	slugFields []string
}

// NewMultiSlugRelatedField builds the field. slugFields is the composite
// key; an empty key set panics.
func NewMultiSlugRelatedField(qs queryset.Queryset, slugFields []string, opts ...Option) *MultiSlugRelatedField {
	if len(slugFields) == 0 {
		panic("fields: MultiSlugRelatedField requires at least one slug field")
	}
	return &MultiSlugRelatedField{
		baseField:  newBaseField(opts...),
		qs:         qs,
		slugFields: slugFields,
	}
}

// SlugFields returns the configured composite key names.
func (f *MultiSlugRelatedField) SlugFields() []string { return f.slugFields }

// InternalValue resolves the object matching the submitted composite key.
// The input must be a map whose key set equals the slug set exactly.
func (f *MultiSlugRelatedField) InternalValue(ctx context.Context, data any) (any, error) {
	if f.readOnly {
		return nil, errReadOnly
	}
	m, ok := data.(map[string]any)
	if !ok {
		return nil, validationErrorf(CodeInvalid, "Invalid value.")
	}
	if len(m) != len(f.slugFields) {
		return nil, validationErrorf(CodeInvalid, "Invalid value.")
	}
	for _, name := range f.slugFields {
		if _, ok := m[name]; !ok {
			return nil, validationErrorf(CodeInvalid, "Invalid value.")
		}
	}
	obj, err := f.qs.Get(ctx, m)
	switch {
	case err == nil:
		return obj, nil
	case errors.Is(err, queryset.ErrObjectDoesNotExist):
		return nil, validationErrorf(CodeDoesNotExist, "Object with %s does not exist.", lookupClauses(m))
	case errors.Is(err, queryset.ErrInvalidFilter):
		return nil, validationErrorf(CodeInvalid, "Invalid value.")
	default:
		return nil, err
	}
}

// Representation maps each slug field name to the corresponding attribute
// value read off the resolved object.
func (f *MultiSlugRelatedField) Representation(value any) (any, error) {
	out := make(map[string]any, len(f.slugFields))
	for _, name := range f.slugFields {
		v, err := meta.Attribute(value, name)
		if err != nil {
			return nil, err
		}
		out[name] = v
	}
	return out, nil
}

// lookupClauses renders the attempted lookup as "k=v" pairs, sorted by key
// so error messages are deterministic.
func lookupClauses(filters map[string]any) string {
	clauses := make([]string, 0, len(filters))
	for k, v := range filters {
		clauses = append(clauses, k+"="+cast.ToString(v))
	}
	sort.Strings(clauses)
	return strings.Join(clauses, " ")
}
