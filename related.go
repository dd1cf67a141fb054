package fields

import (
	"context"
	"reflect"

	"github.com/friendsofgo/errors"

	"github.com/restkit/fields/meta"
	"github.com/restkit/fields/queryset"
)

// PrimaryKeyRelatedField represents a relation by the target's primary key.
type PrimaryKeyRelatedField struct {
	baseField
	qs     queryset.Queryset
	pkName string
}

// PKOption configures primary-key relation fields.
type PKOption func(*PrimaryKeyRelatedField)

// WithPKName sets the attribute holding the target's primary key.
// Defaults to "id".
func WithPKName(name string) PKOption {
	return func(f *PrimaryKeyRelatedField) { f.pkName = name }
}

// WithPKFieldOptions applies common field options.
func WithPKFieldOptions(opts ...Option) PKOption {
	return func(f *PrimaryKeyRelatedField) {
		for _, o := range opts {
			o(&f.config)
		}
	}
}

func NewPrimaryKeyRelatedField(qs queryset.Queryset, opts ...PKOption) *PrimaryKeyRelatedField {
	f := &PrimaryKeyRelatedField{baseField: newBaseField(), qs: qs, pkName: "id"}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Queryset returns the lookup source, which may be nil for fields that
// resolve their model from the owning serializer.
func (f *PrimaryKeyRelatedField) Queryset() queryset.Queryset { return f.qs }

// InternalValue resolves the object whose primary key equals data.
func (f *PrimaryKeyRelatedField) InternalValue(ctx context.Context, data any) (any, error) {
	if f.readOnly {
		return nil, errReadOnly
	}
	if f.qs == nil {
		panic("fields: PrimaryKeyRelatedField requires a queryset for inbound conversion")
	}
	if !isScalar(data) {
		return nil, validationErrorf(CodeIncorrectType, "Incorrect type. Expected pk value, received %T.", data)
	}
	obj, err := f.qs.Get(ctx, map[string]any{f.pkName: data})
	switch {
	case err == nil:
		return obj, nil
	case errors.Is(err, queryset.ErrObjectDoesNotExist):
		return nil, validationErrorf(CodeDoesNotExist, "Invalid pk \"%v\" - object does not exist.", data)
	case errors.Is(err, queryset.ErrInvalidFilter):
		return nil, validationErrorf(CodeIncorrectType, "Incorrect type. Expected pk value, received %T.", data)
	default:
		return nil, err
	}
}

// Representation returns the related object's primary key. A scalar value
// is assumed to already be the primary key and passes through.
func (f *PrimaryKeyRelatedField) Representation(value any) (any, error) {
	if value == nil || isScalar(value) {
		return value, nil
	}
	return meta.Attribute(value, f.pkName)
}

func isScalar(v any) bool {
	switch v.(type) {
	case string, bool,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return true
	}
	if v == nil {
		return false
	}
	switch reflect.TypeOf(v).Kind() {
	case reflect.String, reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}
