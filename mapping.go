package fields

import (
	"reflect"
	"sync/atomic"
	"time"

	"github.com/aarondl/null/v8"
	boilertypes "github.com/aarondl/sqlboiler/v4/types"
	"github.com/google/uuid"
)

// FieldConstructor builds a field instance for a synthesized sub-field.
type FieldConstructor func(opts ...Option) Field

// typeRegistry maps model attribute types to field constructors, by exact
// type first, then by reflect kind. Swapped atomically (copy-on-write) so
// registration is safe alongside concurrent lookups.
type typeRegistry struct {
	exact map[reflect.Type]FieldConstructor
	kinds map[reflect.Kind]FieldConstructor
}

var registry atomic.Value // holds *typeRegistry

func init() {
	reg := &typeRegistry{
		exact: map[reflect.Type]FieldConstructor{
			reflect.TypeOf(time.Time{}):        func(opts ...Option) Field { return NewTimeField(opts...) },
			reflect.TypeOf(uuid.UUID{}):        func(opts ...Option) Field { return NewStringField(opts...) },
			reflect.TypeOf(null.String{}):      func(opts ...Option) Field { return NewStringField(opts...) },
			reflect.TypeOf(null.Int{}):         func(opts ...Option) Field { return NewIntegerField(opts...) },
			reflect.TypeOf(null.Int64{}):       func(opts ...Option) Field { return NewIntegerField(opts...) },
			reflect.TypeOf(null.Float64{}):     func(opts ...Option) Field { return NewFloatField(opts...) },
			reflect.TypeOf(null.Bool{}):        func(opts ...Option) Field { return NewBooleanField(opts...) },
			reflect.TypeOf(null.Time{}):        func(opts ...Option) Field { return NewTimeField(opts...) },
			reflect.TypeOf(boilertypes.JSON{}): func(opts ...Option) Field { return NewStringField(opts...) },
		},
		kinds: map[reflect.Kind]FieldConstructor{
			reflect.String:  func(opts ...Option) Field { return NewStringField(opts...) },
			reflect.Int:     func(opts ...Option) Field { return NewIntegerField(opts...) },
			reflect.Int8:    func(opts ...Option) Field { return NewIntegerField(opts...) },
			reflect.Int16:   func(opts ...Option) Field { return NewIntegerField(opts...) },
			reflect.Int32:   func(opts ...Option) Field { return NewIntegerField(opts...) },
			reflect.Int64:   func(opts ...Option) Field { return NewIntegerField(opts...) },
			reflect.Uint:    func(opts ...Option) Field { return NewIntegerField(opts...) },
			reflect.Uint8:   func(opts ...Option) Field { return NewIntegerField(opts...) },
			reflect.Uint16:  func(opts ...Option) Field { return NewIntegerField(opts...) },
			reflect.Uint32:  func(opts ...Option) Field { return NewIntegerField(opts...) },
			reflect.Uint64:  func(opts ...Option) Field { return NewIntegerField(opts...) },
			reflect.Float32: func(opts ...Option) Field { return NewFloatField(opts...) },
			reflect.Float64: func(opts ...Option) Field { return NewFloatField(opts...) },
			reflect.Bool:    func(opts ...Option) Field { return NewBooleanField(opts...) },
		},
	}
	registry.Store(reg)
}

// RegisterFieldType maps an attribute type (given as an example value) to a
// field constructor, overriding any previous mapping for that exact type.
func RegisterFieldType(example any, ctor FieldConstructor) {
	old := registry.Load().(*typeRegistry)
	reg := &typeRegistry{
		exact: make(map[reflect.Type]FieldConstructor, len(old.exact)+1),
		kinds: make(map[reflect.Kind]FieldConstructor, len(old.kinds)),
	}
	for k, v := range old.exact {
		reg.exact[k] = v
	}
	for k, v := range old.kinds {
		reg.kinds[k] = v
	}
	reg.exact[reflect.TypeOf(example)] = ctor
	registry.Store(reg)
}

// fieldFor resolves the constructor for an attribute type: exact match,
// then pointer element, then kind.
func fieldFor(t reflect.Type) (FieldConstructor, bool) {
	reg := registry.Load().(*typeRegistry)
	if ctor, ok := reg.exact[t]; ok {
		return ctor, true
	}
	if t.Kind() == reflect.Ptr {
		return fieldFor(t.Elem())
	}
	ctor, ok := reg.kinds[t.Kind()]
	return ctor, ok
}
