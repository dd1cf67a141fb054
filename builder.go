package fields

// Builder provides a fluent API to construct a Serializer with its model,
// logger and fields declared up front.
type Builder struct {
	opts   []SerializerOption
	names  []string
	fields map[string]Field
}

// NewBuilder creates a new builder.
func NewBuilder() *Builder {
	return &Builder{fields: make(map[string]Field)}
}

// Model declares the serialized model type, as an example value.
func (b *Builder) Model(model any) *Builder {
	b.opts = append(b.opts, WithModel(model))
	return b
}

// Logger attaches a logger to the built serializer.
func (b *Builder) Logger(l Logger) *Builder {
	b.opts = append(b.opts, WithLogger(l))
	return b
}

// Field declares a field bound under name.
func (b *Builder) Field(name string, f Field) *Builder {
	if _, dup := b.fields[name]; dup {
		panic("fields: field already declared: " + name)
	}
	b.names = append(b.names, name)
	b.fields[name] = f
	return b
}

// Build constructs the Serializer and binds all declared fields in
// declaration order.
func (b *Builder) Build() *Serializer {
	s := NewSerializer(b.opts...)
	for _, name := range b.names {
		s.AddField(name, b.fields[name])
	}
	return s
}
