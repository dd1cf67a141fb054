package queryset

import (
	"context"

	"github.com/friendsofgo/errors"
	"github.com/spf13/cast"

	"github.com/restkit/fields/meta"
)

// Memory is a slice-backed Queryset. Filters are matched by comparing the
// stringified attribute value against the stringified filter value, so
// integer and string inputs both match integer columns.
type Memory struct {
	model any
	items []any
}

// NewMemory builds a Memory queryset over items. model is a zero value of
// the item type.
func NewMemory(model any, items ...any) *Memory {
	return &Memory{model: model, items: items}
}

func (m *Memory) Model() any { return m.model }

func (m *Memory) Get(_ context.Context, filters map[string]any) (any, error) {
	var found any
	matches := 0
	for _, item := range m.items {
		ok, err := m.matches(item, filters)
		if err != nil {
			return nil, err
		}
		if ok {
			found = item
			matches++
			if matches > 1 {
				return nil, ErrMultipleObjects
			}
		}
	}
	if matches == 0 {
		return nil, ErrObjectDoesNotExist
	}
	return found, nil
}

func (m *Memory) matches(item any, filters map[string]any) (bool, error) {
	for name, want := range filters {
		got, err := meta.Attribute(item, name)
		if err != nil {
			return false, errors.Wrap(ErrInvalidFilter, err.Error())
		}
		wantStr, err := cast.ToStringE(want)
		if err != nil {
			return false, errors.Wrapf(ErrInvalidFilter, "filter %q: %v", name, err)
		}
		gotStr, err := cast.ToStringE(got)
		if err != nil {
			return false, nil
		}
		if gotStr != wantStr {
			return false, nil
		}
	}
	return true, nil
}
