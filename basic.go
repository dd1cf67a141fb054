package fields

import (
	"context"
	"database/sql/driver"
	"time"

	"github.com/spf13/cast"
)

// Leaf field types. These are the building blocks the type registry hands
// out when ComplexPKRelatedField synthesizes sub-fields from model metadata,
// and they are usable directly on a Serializer.

// unwrapValuer unwraps database null wrappers (null.String, null.Int64 and
// friends) to their driver value so leaf fields convert the inner value.
// NULL unwraps to nil.
func unwrapValuer(value any) any {
	if v, ok := value.(driver.Valuer); ok {
		if dv, err := v.Value(); err == nil {
			return dv
		}
	}
	return value
}

// StringField converts values to and from strings.
type StringField struct{ baseField }

func NewStringField(opts ...Option) *StringField {
	return &StringField{baseField: newBaseField(opts...)}
}

func (f *StringField) Representation(value any) (any, error) {
	value = unwrapValuer(value)
	if value == nil {
		return nil, nil
	}
	s, err := cast.ToStringE(value)
	if err != nil {
		return nil, validationErrorf(CodeInvalid, "Not a valid string: %v.", value)
	}
	return s, nil
}

func (f *StringField) InternalValue(_ context.Context, data any) (any, error) {
	if f.readOnly {
		return nil, errReadOnly
	}
	s, err := cast.ToStringE(unwrapValuer(data))
	if err != nil {
		return nil, validationErrorf(CodeInvalid, "Not a valid string: %v.", data)
	}
	return s, nil
}

// IntegerField converts values to and from int64.
type IntegerField struct{ baseField }

func NewIntegerField(opts ...Option) *IntegerField {
	return &IntegerField{baseField: newBaseField(opts...)}
}

func (f *IntegerField) Representation(value any) (any, error) {
	value = unwrapValuer(value)
	if value == nil {
		return nil, nil
	}
	n, err := cast.ToInt64E(value)
	if err != nil {
		return nil, validationErrorf(CodeInvalid, "Not a valid integer: %v.", value)
	}
	return n, nil
}

func (f *IntegerField) InternalValue(_ context.Context, data any) (any, error) {
	if f.readOnly {
		return nil, errReadOnly
	}
	n, err := cast.ToInt64E(unwrapValuer(data))
	if err != nil {
		return nil, validationErrorf(CodeInvalid, "Not a valid integer: %v.", data)
	}
	return n, nil
}

// FloatField converts values to and from float64.
type FloatField struct{ baseField }

func NewFloatField(opts ...Option) *FloatField {
	return &FloatField{baseField: newBaseField(opts...)}
}

func (f *FloatField) Representation(value any) (any, error) {
	value = unwrapValuer(value)
	if value == nil {
		return nil, nil
	}
	n, err := cast.ToFloat64E(value)
	if err != nil {
		return nil, validationErrorf(CodeInvalid, "Not a valid number: %v.", value)
	}
	return n, nil
}

func (f *FloatField) InternalValue(_ context.Context, data any) (any, error) {
	if f.readOnly {
		return nil, errReadOnly
	}
	n, err := cast.ToFloat64E(unwrapValuer(data))
	if err != nil {
		return nil, validationErrorf(CodeInvalid, "Not a valid number: %v.", data)
	}
	return n, nil
}

// BooleanField converts values to and from bool.
type BooleanField struct{ baseField }

func NewBooleanField(opts ...Option) *BooleanField {
	return &BooleanField{baseField: newBaseField(opts...)}
}

func (f *BooleanField) Representation(value any) (any, error) {
	value = unwrapValuer(value)
	if value == nil {
		return nil, nil
	}
	b, err := cast.ToBoolE(value)
	if err != nil {
		return nil, validationErrorf(CodeInvalid, "Must be a valid boolean.")
	}
	return b, nil
}

func (f *BooleanField) InternalValue(_ context.Context, data any) (any, error) {
	if f.readOnly {
		return nil, errReadOnly
	}
	b, err := cast.ToBoolE(unwrapValuer(data))
	if err != nil {
		return nil, validationErrorf(CodeInvalid, "Must be a valid boolean.")
	}
	return b, nil
}

// TimeField converts values to and from time.Time, rendering RFC 3339.
type TimeField struct{ baseField }

func NewTimeField(opts ...Option) *TimeField {
	return &TimeField{baseField: newBaseField(opts...)}
}

func (f *TimeField) Representation(value any) (any, error) {
	value = unwrapValuer(value)
	if value == nil {
		return nil, nil
	}
	t, err := cast.ToTimeE(value)
	if err != nil {
		return nil, validationErrorf(CodeInvalid, "Not a valid datetime: %v.", value)
	}
	return t.Format(time.RFC3339), nil
}

func (f *TimeField) InternalValue(_ context.Context, data any) (any, error) {
	if f.readOnly {
		return nil, errReadOnly
	}
	t, err := cast.ToTimeE(unwrapValuer(data))
	if err != nil {
		return nil, validationErrorf(CodeInvalid, "Not a valid datetime: %v.", data)
	}
	return t, nil
}
