package fields

import (
	"context"

	"github.com/friendsofgo/errors"
	"github.com/goccy/go-json"

	"github.com/restkit/fields/meta"
)

// Serializer binds named fields and drives the per-record, per-field
// conversion contract: attribute resolution and Representation outbound,
// InternalValue inbound.
//
// A Serializer (and the fields bound to it) is request-scoped state: build a
// fresh one per serialization pass and do not share it across goroutines.
type Serializer struct {
	model  any
	names  []string
	fields map[string]Field
	logger Logger
}

// SerializerOption configures a Serializer.
type SerializerOption func(*Serializer)

// WithModel declares the model type serialized, as an example value.
// Required only by fields that introspect the serializer's model.
func WithModel(model any) SerializerOption {
	return func(s *Serializer) { s.model = model }
}

// WithLogger attaches a logger for bind and conversion tracing.
func WithLogger(l Logger) SerializerOption {
	return func(s *Serializer) { s.logger = l }
}

func NewSerializer(opts ...SerializerOption) *Serializer {
	s := &Serializer{fields: make(map[string]Field), logger: NopLogger()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// AddField binds a field under name. The name becomes the field's default
// source. Rebinding a name is a programmer error and panics.
func (s *Serializer) AddField(name string, f Field) *Serializer {
	if _, dup := s.fields[name]; dup {
		panic("fields: field already bound: " + name)
	}
	if b, ok := f.(bindable); ok {
		b.bind(name, s)
	}
	s.names = append(s.names, name)
	s.fields[name] = f
	s.logger.Debug("bound field", "name", name)
	return s
}

// Fields returns the bound field names in binding order.
func (s *Serializer) Fields() []string { return append([]string(nil), s.names...) }

// Field returns the field bound under name.
func (s *Serializer) Field(name string) (Field, bool) {
	f, ok := s.fields[name]
	return f, ok
}

// Serialize converts one model instance into its wire representation.
func (s *Serializer) Serialize(instance any) (map[string]any, error) {
	out := make(map[string]any, len(s.names))
	for _, name := range s.names {
		f := s.fields[name]
		value, err := s.resolve(f, instance)
		if err != nil {
			return nil, errors.Wrapf(err, "serializing field %q", name)
		}
		rep, err := f.Representation(value)
		if err != nil {
			return nil, errors.Wrapf(err, "serializing field %q", name)
		}
		out[name] = rep
	}
	return out, nil
}

func (s *Serializer) resolve(f Field, instance any) (any, error) {
	if ar, ok := f.(attributeResolver); ok {
		return ar.attribute(instance)
	}
	src := ""
	if sf, ok := f.(interface{ Source() string }); ok {
		src = sf.Source()
	}
	if src == "" || src == SourceAll {
		return instance, nil
	}
	return meta.Attribute(instance, src)
}

// Deserialize validates wire input and converts it into internal values
// keyed by each field's source. Read-only fields and absent keys are
// skipped. The first failing field aborts with its ValidationError wrapped
// under the field name.
func (s *Serializer) Deserialize(ctx context.Context, data map[string]any) (map[string]any, error) {
	out := make(map[string]any, len(s.names))
	for _, name := range s.names {
		f := s.fields[name]
		if ro, ok := f.(interface{ ReadOnly() bool }); ok && ro.ReadOnly() {
			continue
		}
		raw, present := data[name]
		if !present {
			continue
		}
		value, err := f.InternalValue(ctx, raw)
		if err != nil {
			return nil, errors.Wrapf(err, "field %q", name)
		}
		key := name
		if sf, ok := f.(interface{ Source() string }); ok && sf.Source() != "" && sf.Source() != SourceAll {
			key = sf.Source()
		}
		out[key] = value
	}
	return out, nil
}

// Render serializes an instance straight to JSON.
func (s *Serializer) Render(instance any) ([]byte, error) {
	rep, err := s.Serialize(instance)
	if err != nil {
		return nil, err
	}
	data, err := json.Marshal(rep)
	if err != nil {
		return nil, errors.Wrap(err, "fields: marshal failed")
	}
	return data, nil
}
