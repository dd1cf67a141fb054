package fields

import (
	"reflect"

	"github.com/friendsofgo/errors"
)

// SerializeMany serializes every element of a slice of model instances.
// Per-instance fields such as SequenceField advance across the whole pass,
// so record counters number the slice 1..n.
func (s *Serializer) SerializeMany(instances any) ([]map[string]any, error) {
	rv := reflect.ValueOf(instances)
	if rv.Kind() == reflect.Ptr {
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, errors.Errorf("fields: SerializeMany expects a slice, got %T", instances)
	}
	out := make([]map[string]any, 0, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		rep, err := s.Serialize(rv.Index(i).Interface())
		if err != nil {
			return nil, errors.Wrapf(err, "serializing element %d", i)
		}
		out = append(out, rep)
	}
	return out, nil
}
