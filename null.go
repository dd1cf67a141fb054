package fields

import (
	"context"
	"database/sql/driver"
	"reflect"

	boilertypes "github.com/aarondl/sqlboiler/v4/types"
)

// IsNullField is a read-only probe reporting whether the underlying value is
// absent. Absence covers untyped nil, nil pointers/interfaces/maps/slices,
// invalid null.* wrappers and any other driver.Valuer yielding NULL, and
// empty sqlboiler JSON columns.
type IsNullField struct{ baseField }

func NewIsNullField(opts ...Option) *IsNullField {
	f := &IsNullField{baseField: newBaseField(opts...)}
	f.readOnly = true
	return f
}

func (f *IsNullField) Representation(value any) (any, error) {
	return IsNull(value), nil
}

func (f *IsNullField) InternalValue(context.Context, any) (any, error) {
	return nil, errReadOnly
}

// IsNotNullField is the exact logical complement of IsNullField.
type IsNotNullField struct{ baseField }

func NewIsNotNullField(opts ...Option) *IsNotNullField {
	f := &IsNotNullField{baseField: newBaseField(opts...)}
	f.readOnly = true
	return f
}

func (f *IsNotNullField) Representation(value any) (any, error) {
	return !IsNull(value), nil
}

func (f *IsNotNullField) InternalValue(context.Context, any) (any, error) {
	return nil, errReadOnly
}

// IsNull reports whether value represents an absent database value.
func IsNull(value any) bool {
	if value == nil {
		return true
	}
	if j, ok := value.(boilertypes.JSON); ok {
		return len(j) == 0
	}
	if v, ok := value.(driver.Valuer); ok {
		dv, err := v.Value()
		return err == nil && dv == nil
	}
	switch rv := reflect.ValueOf(value); rv.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func:
		return rv.IsNil()
	}
	return false
}
