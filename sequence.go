package fields

import "context"

// SequenceField is a read-only field that outputs an incrementing number,
// one per record serialized. The counter lives on the field instance, so a
// fresh Serializer (and with it a fresh field) per serialization pass is the
// reset boundary. Not safe for use from multiple goroutines; create one per
// pass.
type SequenceField struct {
	baseField
	step int64
	cur  int64
}

// NewSequenceField returns a SequenceField counting start, start+step, …
// The source is always the whole instance and the field is always read-only.
func NewSequenceField(start, step int64, opts ...Option) *SequenceField {
	f := &SequenceField{baseField: newBaseField(opts...), step: step, cur: start}
	f.source = SourceAll
	f.readOnly = true
	return f
}

func (f *SequenceField) Representation(any) (any, error) {
	cur := f.cur
	f.cur += f.step
	return cur, nil
}

func (f *SequenceField) InternalValue(context.Context, any) (any, error) {
	return nil, errReadOnly
}
