// Package gen implements the model emitter.
//
// Generation uses text/template + go/format. Every classified model gets the
// same behavioral surface regardless of its field-structure variant; a
// FieldAddressing strategy supplies the only parts that differ (constructor
// parameter names, the composite literal, how dynamic-mapping entries are
// addressed, the schema call and per-field bridge exposure).
//
// Emitted per model:
//   - New<T> constructor, one argument per field in declaration order
//   - Equal / Compare (only equality operators are implemented)
//   - ModelDict / Dict, JSON, Parse<T>Raw
//   - <T>Schema / <T>SchemaJSON, <T>Validators
//   - MarshalJSON / UnmarshalJSON for positional models (JSON arrays)
//   - bridge registration in an init function
package gen
