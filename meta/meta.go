// Package meta provides cached reflection metadata over model struct types:
// per-field descriptors (name, JSON name, label, help text, Go type) and
// dotted attribute-path resolution off model instances. It is the statically
// typed stand-in for run-time model introspection.
package meta

import (
	"reflect"
	"strings"
	"sync"

	"github.com/friendsofgo/errors"
	"github.com/go-openapi/inflect"
)

// FieldDescriptor describes one exported field of a model struct.
type FieldDescriptor struct {
	Name     string // Go field name
	JSONName string // name from the json tag, if any
	Label    string // label tag, or the humanized field name
	HelpText string // help tag
	Type     reflect.Type
	index    []int
}

// StructMeta is the cached metadata of one struct type.
type StructMeta struct {
	typ        reflect.Type
	fields     []FieldDescriptor
	byName     map[string]*FieldDescriptor
	byJSONName map[string]*FieldDescriptor
}

var cache sync.Map // map[reflect.Type]*StructMeta

// Describe returns the (cached) metadata for a model value or type.
// Pointers are dereferenced; non-struct types are an error.
func Describe(model any) (*StructMeta, error) {
	if model == nil {
		return nil, errors.New("meta: model must not be nil")
	}
	t, ok := model.(reflect.Type)
	if !ok {
		t = reflect.TypeOf(model)
	}
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil, errors.Errorf("meta: %s is not a struct type", t)
	}
	if cached, ok := cache.Load(t); ok {
		return cached.(*StructMeta), nil
	}
	m := &StructMeta{
		typ:        t,
		byName:     make(map[string]*FieldDescriptor),
		byJSONName: make(map[string]*FieldDescriptor),
	}
	buildFields(t, m, nil)
	for i := range m.fields {
		fd := &m.fields[i]
		m.byName[fd.Name] = fd
		if fd.JSONName != "" {
			m.byJSONName[fd.JSONName] = fd
		}
	}
	actual, _ := cache.LoadOrStore(t, m)
	return actual.(*StructMeta), nil
}

func buildFields(t reflect.Type, m *StructMeta, prefix []int) {
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		idx := append(append([]int(nil), prefix...), i)
		if f.Anonymous {
			ft := f.Type
			if ft.Kind() == reflect.Ptr {
				ft = ft.Elem()
			}
			if ft.Kind() == reflect.Struct {
				buildFields(ft, m, idx)
				continue
			}
		}
		if f.PkgPath != "" {
			continue
		}
		jsonName := ""
		if jt, ok := f.Tag.Lookup("json"); ok {
			if comma := strings.IndexByte(jt, ','); comma >= 0 {
				jt = jt[:comma]
			}
			if jt != "-" {
				jsonName = jt
			}
		}
		label := f.Tag.Get("label")
		if label == "" {
			if jsonName != "" {
				label = inflect.Humanize(jsonName)
			} else {
				label = inflect.Humanize(inflect.Underscore(f.Name))
			}
		}
		m.fields = append(m.fields, FieldDescriptor{
			Name:     f.Name,
			JSONName: jsonName,
			Label:    label,
			HelpText: f.Tag.Get("help"),
			Type:     f.Type,
			index:    idx,
		})
	}
}

// Type returns the described struct type.
func (m *StructMeta) Type() reflect.Type { return m.typ }

// Fields returns the descriptors in declaration order.
func (m *StructMeta) Fields() []FieldDescriptor { return m.fields }

// Field looks a descriptor up by Go field name, then by JSON name.
func (m *StructMeta) Field(name string) (*FieldDescriptor, bool) {
	if fd, ok := m.byName[name]; ok {
		return fd, true
	}
	fd, ok := m.byJSONName[name]
	return fd, ok
}

// value walks the descriptor's index path off a struct value, stopping at
// nil embedded pointers.
func (fd *FieldDescriptor) value(v reflect.Value) (reflect.Value, bool) {
	for i, x := range fd.index {
		if i > 0 && v.Kind() == reflect.Ptr {
			if v.IsNil() {
				return reflect.Value{}, false
			}
			v = v.Elem()
		}
		v = v.Field(x)
	}
	return v, true
}

// AddressOf returns a pointer to the described field within ptr, which must
// be a reflect.Value holding a pointer to a struct of the described type.
// Nil embedded pointers along the path are allocated. Used for sql row
// scanning.
func AddressOf(ptr reflect.Value, fd *FieldDescriptor) (any, error) {
	if ptr.Kind() != reflect.Ptr || ptr.IsNil() {
		return nil, errors.New("meta: AddressOf requires a non-nil struct pointer")
	}
	v := ptr.Elem()
	for i, x := range fd.index {
		if i > 0 && v.Kind() == reflect.Ptr {
			if v.IsNil() {
				v.Set(reflect.New(v.Type().Elem()))
			}
			v = v.Elem()
		}
		v = v.Field(x)
	}
	if !v.CanAddr() {
		return nil, errors.Errorf("meta: field %s is not addressable", fd.Name)
	}
	return v.Addr().Interface(), nil
}

// Attribute resolves a dotted attribute path off an instance. Each segment
// is matched against Go field names and JSON names; map[string]any segments
// are looked up by key. Traversing through a nil pointer yields nil; a
// segment that matches nothing is an error.
func Attribute(instance any, path string) (any, error) {
	cur := instance
	for _, seg := range strings.Split(path, ".") {
		if cur == nil {
			return nil, nil
		}
		if m, ok := cur.(map[string]any); ok {
			v, ok := m[seg]
			if !ok {
				return nil, errors.Errorf("meta: map has no key %q in path %q", seg, path)
			}
			cur = v
			continue
		}
		sm, err := Describe(cur)
		if err != nil {
			return nil, errors.Wrapf(err, "meta: resolving %q", path)
		}
		fd, ok := sm.Field(seg)
		if !ok {
			return nil, errors.Errorf("meta: %s has no attribute %q", sm.typ, seg)
		}
		rv := reflect.ValueOf(cur)
		for rv.Kind() == reflect.Ptr {
			if rv.IsNil() {
				return nil, nil
			}
			rv = rv.Elem()
		}
		fv, ok := fd.value(rv)
		if !ok {
			return nil, nil
		}
		cur = fv.Interface()
	}
	return cur, nil
}
