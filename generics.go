package fields

import (
	"github.com/friendsofgo/errors"
	"github.com/goccy/go-json"
)

// Generic helpers as top-level functions (methods cannot have type parameters).

// RenderAs serializes an instance and decodes the representation into a
// strongly typed wire struct via a JSON round-trip. For non-aligned
// structures, consume the map from Serialize directly instead.
func RenderAs[Output any](s *Serializer, instance any) (*Output, error) {
	data, err := s.Render(instance)
	if err != nil {
		return nil, err
	}
	var out Output
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, errors.Wrap(err, "fields: unmarshal failed")
	}
	return &out, nil
}

// RenderManyAs is RenderAs over a slice of instances.
func RenderManyAs[Output any](s *Serializer, instances any) ([]Output, error) {
	reps, err := s.SerializeMany(instances)
	if err != nil {
		return nil, err
	}
	data, err := json.Marshal(reps)
	if err != nil {
		return nil, errors.Wrap(err, "fields: marshal failed")
	}
	var out []Output
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, errors.Wrap(err, "fields: unmarshal failed")
	}
	return out, nil
}
