// Package fields provides serializer field types that convert between
// in-memory model attribute values and wire-representable values, and back
// with validation.
//
// Each field implements the two-method contract: Representation for
// outbound conversion and InternalValue for inbound conversion. A
// Serializer binds named fields, resolves each field's source attribute
// path off a model instance, and invokes the contract per record per field.
//
// Basic Usage
//
//	s := fields.NewBuilder().
//	    Model(&Book{}).
//	    Field("row", fields.NewSequenceField(1, 1)).
//	    Field("title", fields.NewStringField()).
//	    Field("status", fields.NewDisplayChoiceField([]fields.Choice{
//	        {Value: 1, Label: "Draft"},
//	        {Value: 2, Label: "Published"},
//	    })).
//	    Build()
//	rep, err := s.Serialize(&book)
//
// # Field Types
//
// Beyond the leaf fields (StringField, IntegerField, FloatField,
// BooleanField, TimeField) and the typed list fields, the package provides:
//
//   - SequenceField: a read-only incrementing row counter
//   - DisplayChoiceField: raw value ↔ display label mapping
//   - IsNullField / IsNotNullField: read-only null-presence probes
//   - PrimaryKeyRelatedField: a relation addressed by primary key
//   - MultiSlugRelatedField: a relation addressed by a composite natural key
//   - ComplexPKRelatedField: a primary-key relation that also emits a
//     display label and extra attributes from the related object
//
// Relation fields resolve objects through a queryset.Queryset lookup
// source; see the queryset package for the in-memory and database/sql
// implementations.
//
// # Error Handling
//
// Failed inbound conversions return *ValidationError with a stable code
// ("invalid", "invalid_choice", "does_not_exist", "incorrect_type").
// Misconfiguration (duplicate choices, empty slug sets, a relation field
// with neither queryset nor serializer model) panics at construction or
// bind time, never during a conversion call.
//
// # Concurrency
//
// Field instances and the Serializer carry per-pass state (the sequence
// counter, lazily computed sub-field maps, cached instances): build a fresh
// serializer per serialization pass. The shared caches behind the scenes
// (struct metadata, the type registry) are safe for concurrent use.
package fields
