package fields

import (
	"context"
	"fmt"

	"github.com/spf13/cast"
)

// Choice is one (value, label) pair of a choice set.
type Choice struct {
	Value any
	Label string
}

// DisplayChoiceField serializes raw values into their display labels and
// deserializes submitted labels back into raw values.
//
// Two derived mappings are built once at construction: stringified value →
// label for outbound, and stringified label → value for inbound. Keying on
// string representations lets integer-valued choice sets accept either
// integer or string input while still producing the underlying value.
type DisplayChoiceField struct {
	baseField
	choices     []Choice
	valueLabels map[string]string
	labelValues map[string]any
}

// NewDisplayChoiceField builds the field from an ordered choice set. Two
// choices sharing a stringified value or a stringified label would make the
// reverse mappings ambiguous; that is a configuration error and panics.
func NewDisplayChoiceField(choices []Choice, opts ...Option) *DisplayChoiceField {
	f := &DisplayChoiceField{
		baseField:   newBaseField(opts...),
		choices:     choices,
		valueLabels: make(map[string]string, len(choices)),
		labelValues: make(map[string]any, len(choices)),
	}
	for _, c := range choices {
		vk := cast.ToString(c.Value)
		lk := cast.ToString(c.Label)
		if _, dup := f.valueLabels[vk]; dup {
			panic(fmt.Sprintf("fields: duplicate choice value %q", vk))
		}
		if _, dup := f.labelValues[lk]; dup {
			panic(fmt.Sprintf("fields: duplicate choice label %q", lk))
		}
		f.valueLabels[vk] = c.Label
		f.labelValues[lk] = c.Value
	}
	return f
}

// Choices returns the configured choice set in order.
func (f *DisplayChoiceField) Choices() []Choice { return f.choices }

// Representation maps a raw value to its display label. Empty-string and nil
// values pass through unchanged, and values with no configured label fall
// back to the raw value.
func (f *DisplayChoiceField) Representation(value any) (any, error) {
	if value == nil || value == "" {
		return value, nil
	}
	if label, ok := f.valueLabels[cast.ToString(value)]; ok {
		return label, nil
	}
	return value, nil
}

// InternalValue maps a submitted label back to its underlying raw value.
func (f *DisplayChoiceField) InternalValue(_ context.Context, data any) (any, error) {
	if f.readOnly {
		return nil, errReadOnly
	}
	if v, ok := f.labelValues[cast.ToString(data)]; ok {
		return v, nil
	}
	return nil, validationErrorf(CodeInvalidChoice, "%q is not a valid choice.", cast.ToString(data))
}
