package fields

import (
	"context"
	"fmt"
	"reflect"
	"sync"

	"github.com/restkit/fields/meta"
	"github.com/restkit/fields/queryset"
)

// ComplexPKRelatedField extends PrimaryKeyRelatedField to also emit a
// display label and a configurable set of extra attributes read off the
// related object.
//
// Configuration uses the fluent style:
//
//	fields.NewComplexPKRelatedField(authors).
//	    DisplayField("name").
//	    ExtraFields("name", "active")
//
// The queryset may be nil when the field is bound to a Serializer with a
// model; the related type is then taken from the model attribute the field
// sources from.
type ComplexPKRelatedField struct {
	PrimaryKeyRelatedField

	pkFieldName      string
	displayField     string
	displayFieldName string
	extraFields      []string

	fieldsOnce sync.Once
	subFields  map[string]Field
	instance   any
}

func NewComplexPKRelatedField(qs queryset.Queryset, opts ...Option) *ComplexPKRelatedField {
	f := &ComplexPKRelatedField{
		PrimaryKeyRelatedField: *NewPrimaryKeyRelatedField(qs),
		pkFieldName:            "id",
		displayFieldName:       "label",
	}
	for _, opt := range opts {
		opt(&f.config)
	}
	return f
}

// PKFieldName sets both the wire key the primary key is emitted under and
// the model attribute it is resolved from. Defaults to "id".
func (f *ComplexPKRelatedField) PKFieldName(name string) *ComplexPKRelatedField {
	f.pkFieldName = name
	f.pkName = name
	return f
}

// DisplayField sets the related-model attribute used as the display value.
// When unset, the object's default string form is used.
func (f *ComplexPKRelatedField) DisplayField(name string) *ComplexPKRelatedField {
	f.displayField = name
	return f
}

// DisplayFieldName sets the wire key the display value is emitted under.
// Defaults to "label".
func (f *ComplexPKRelatedField) DisplayFieldName(name string) *ComplexPKRelatedField {
	f.displayFieldName = name
	return f
}

// ExtraFields sets the related-model attribute names exposed alongside the
// primary key. Names not present on the related model are skipped.
func (f *ComplexPKRelatedField) ExtraFields(names ...string) *ComplexPKRelatedField {
	f.extraFields = names
	return f
}

// Fields returns the synthesized name → sub-field map, computed once on
// first access from the related model's metadata and cached for the life of
// the field.
func (f *ComplexPKRelatedField) Fields() map[string]Field {
	f.fieldsOnce.Do(func() { f.subFields = f.buildFields() })
	return f.subFields
}

func (f *ComplexPKRelatedField) buildFields() map[string]Field {
	related := f.relatedMeta()
	out := make(map[string]Field)
	if f.displayField != "" && !f.hasExtra(f.displayField) {
		out[f.displayFieldName] = NewStringField(WithSource(f.displayField), WithReadOnly(true))
	}
	for _, name := range f.extraFields {
		if name == f.pkFieldName {
			continue
		}
		fd, ok := related.Field(name)
		if !ok {
			continue
		}
		ctor, ok := fieldFor(fd.Type)
		if !ok {
			continue
		}
		out[name] = ctor(
			WithSource(name),
			WithReadOnly(true),
			WithLabel(fd.Label),
			WithHelpText(fd.HelpText),
		)
	}
	return out
}

// relatedMeta resolves the related model's metadata from the queryset, or
// failing that from the owning serializer's model attribute the field
// sources from. Missing both is a programmer error.
func (f *ComplexPKRelatedField) relatedMeta() *meta.StructMeta {
	if f.qs != nil {
		sm, err := meta.Describe(f.qs.Model())
		if err != nil {
			panic("fields: ComplexPKRelatedField queryset model: " + err.Error())
		}
		return sm
	}
	if f.parent == nil || f.parent.model == nil {
		panic(fmt.Sprintf("fields: ComplexPKRelatedField %q requires a queryset or a serializer with a model", f.fieldName))
	}
	sm, err := meta.Describe(f.parent.model)
	if err != nil {
		panic("fields: ComplexPKRelatedField serializer model: " + err.Error())
	}
	fd, ok := sm.Field(f.source)
	if !ok {
		panic(fmt.Sprintf("fields: model %s has no attribute %q for ComplexPKRelatedField %q", sm.Type(), f.source, f.fieldName))
	}
	t := fd.Type
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	related, err := meta.Describe(t)
	if err != nil {
		panic("fields: ComplexPKRelatedField related model: " + err.Error())
	}
	return related
}

// attribute caches the instance being serialized for reuse during
// representation, then resolves the field's source off it.
func (f *ComplexPKRelatedField) attribute(instance any) (any, error) {
	f.instance = instance
	if f.source == "" || f.source == SourceAll {
		return instance, nil
	}
	return meta.Attribute(instance, f.source)
}

// InternalValue accepts either a bare primary-key value or a map carrying
// the key under the configured name, and delegates resolution to the base
// primary-key contract.
func (f *ComplexPKRelatedField) InternalValue(ctx context.Context, data any) (any, error) {
	if m, ok := data.(map[string]any); ok {
		if v, ok := m[f.pkFieldName]; ok {
			data = v
		}
	}
	return f.PrimaryKeyRelatedField.InternalValue(ctx, data)
}

// Representation emits the primary key under its configured name, the
// display value under the display key unless extras already cover it, and
// every extra attribute under its own name. Extra attributes missing on the
// concrete instance are an error here even though unknown names were
// skipped at schema build.
func (f *ComplexPKRelatedField) Representation(value any) (any, error) {
	attrObj := value
	if f.instance != nil && f.source != "" && f.source != SourceAll {
		if v, err := meta.Attribute(f.instance, f.source); err == nil && v != nil {
			attrObj = v
		}
	}
	pk, err := f.PrimaryKeyRelatedField.Representation(value)
	if err != nil {
		return nil, err
	}
	data := map[string]any{f.pkFieldName: pk}
	if !f.hasExtra(f.displayFieldName) {
		if f.displayField != "" {
			display, err := meta.Attribute(attrObj, f.displayField)
			if err != nil {
				return nil, err
			}
			data[f.displayFieldName] = display
		} else {
			data[f.displayFieldName] = stringify(attrObj)
		}
	}
	for _, name := range f.extraFields {
		v, err := meta.Attribute(attrObj, name)
		if err != nil {
			return nil, err
		}
		data[name] = v
	}
	return data, nil
}

func (f *ComplexPKRelatedField) hasExtra(name string) bool {
	for _, n := range f.extraFields {
		if n == name {
			return true
		}
	}
	return false
}

func stringify(v any) string {
	if s, ok := v.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%v", v)
}
