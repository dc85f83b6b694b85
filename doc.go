// Package ordantic is the runtime support layer imported by code that the
// ordantic generator emits for model types.
//
// Generated models rely on:
//   - ModelDicter / ToModelDict: recursive conversion to dynamic mappings
//     (map[string]any for named fields, []any for positional fields)
//   - Encode / Decode / MarshalTuple / UnmarshalTuple: the JSON text codec
//   - Describe / DescribeTuple: the schema generator
//   - ValidatorSequence: the single-pass validator hook
//   - Error: the single runtime error kind
//
// Models are declared with a directive and generated with `ordantic gen`:
//
//	//ordantic:model
//	type ExampleModel struct {
//		Name   string `json:"name"`
//		Number int64  `json:"number"`
//	}
package ordantic
