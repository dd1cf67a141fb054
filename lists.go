package fields

import (
	"context"
	"reflect"

	"github.com/spf13/cast"
)

// StringListField converts values to and from []string, element by element.
type StringListField struct{ baseField }

func NewStringListField(opts ...Option) *StringListField {
	return &StringListField{baseField: newBaseField(opts...)}
}

func (f *StringListField) Representation(value any) (any, error) {
	return stringSlice(value)
}

func (f *StringListField) InternalValue(_ context.Context, data any) (any, error) {
	if f.readOnly {
		return nil, errReadOnly
	}
	return stringSlice(data)
}

// IntegerListField converts values to and from []int64, element by element.
type IntegerListField struct{ baseField }

func NewIntegerListField(opts ...Option) *IntegerListField {
	return &IntegerListField{baseField: newBaseField(opts...)}
}

func (f *IntegerListField) Representation(value any) (any, error) {
	return int64Slice(value)
}

func (f *IntegerListField) InternalValue(_ context.Context, data any) (any, error) {
	if f.readOnly {
		return nil, errReadOnly
	}
	return int64Slice(data)
}

func elements(value any) ([]any, *ValidationError) {
	if value == nil {
		return nil, validationErrorf(CodeInvalid, "Expected a list, got null.")
	}
	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, validationErrorf(CodeInvalid, "Expected a list, got %T.", value)
	}
	out := make([]any, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		out[i] = rv.Index(i).Interface()
	}
	return out, nil
}

func stringSlice(value any) (any, error) {
	items, verr := elements(value)
	if verr != nil {
		return nil, verr
	}
	out := make([]string, len(items))
	for i, item := range items {
		s, err := cast.ToStringE(item)
		if err != nil {
			return nil, validationErrorf(CodeInvalid, "Element %d is not a valid string: %v.", i, item)
		}
		out[i] = s
	}
	return out, nil
}

func int64Slice(value any) (any, error) {
	items, verr := elements(value)
	if verr != nil {
		return nil, verr
	}
	out := make([]int64, len(items))
	for i, item := range items {
		n, err := cast.ToInt64E(item)
		if err != nil {
			return nil, validationErrorf(CodeInvalid, "Element %d is not a valid integer: %v.", i, item)
		}
		out[i] = n
	}
	return out, nil
}
