package fields

import "context"

// Field is the two-method contract every serializer field implements.
//
// Representation converts a model attribute value to a wire-representable
// value. InternalValue validates wire input and converts it back to a value
// assignable to the model attribute. Inbound conversion takes a context
// because relation fields resolve objects through a lookup source.
type Field interface {
	Representation(value any) (any, error)
	InternalValue(ctx context.Context, data any) (any, error)
}

// SourceAll marks a field whose source is the whole instance rather than a
// single attribute.
const SourceAll = "*"

type config struct {
	source   string
	readOnly bool
	label    string
	helpText string
}

// Option configures the common per-field settings shared by all field types.
type Option func(*config)

// WithSource sets the attribute path read off the model instance, e.g.
// "name" or "author.name". Defaults to the name the field is bound under.
func WithSource(path string) Option { return func(c *config) { c.source = path } }

// WithReadOnly marks the field outbound-only.
func WithReadOnly(v bool) Option { return func(c *config) { c.readOnly = v } }

// WithLabel sets the human-readable label attached to the field.
func WithLabel(s string) Option { return func(c *config) { c.label = s } }

// WithHelpText sets the help text attached to the field.
func WithHelpText(s string) Option { return func(c *config) { c.helpText = s } }

// baseField carries the common configuration and binding state. Every field
// type embeds it.
type baseField struct {
	config
	fieldName string
	parent    *Serializer
}

func newBaseField(opts ...Option) baseField {
	var c config
	for _, f := range opts {
		f(&c)
	}
	return baseField{config: c}
}

func (b *baseField) Source() string   { return b.source }
func (b *baseField) ReadOnly() bool   { return b.readOnly }
func (b *baseField) Label() string    { return b.label }
func (b *baseField) HelpText() string { return b.helpText }

// bind is called by the owning Serializer when the field is added. The bound
// name becomes the default source.
func (b *baseField) bind(name string, parent *Serializer) {
	b.fieldName = name
	b.parent = parent
	if b.source == "" {
		b.source = name
	}
}

type bindable interface {
	bind(name string, parent *Serializer)
}

// attributeResolver lets a field take over attribute resolution for its own
// source path during serialization.
type attributeResolver interface {
	attribute(instance any) (any, error)
}
