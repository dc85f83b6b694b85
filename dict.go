package ordantic

import "reflect"

// ModelDicter is implemented by generated models. ModelDict returns a
// dynamic mapping: map[string]any for named fields, []any for positional
// fields, each value converted with ToModelDict.
type ModelDicter interface {
	ModelDict() (any, error)
}

var modelDicterType = reflect.TypeFor[ModelDicter]()

// ToModelDict converts v to its dynamic representation. Models (and values
// whose pointer is a model) use their ModelDict; slices, arrays and
// string-keyed maps of models are converted element-wise. Every other value
// is returned unchanged.
func ToModelDict(v any) (any, error) {
	if v == nil {
		return nil, nil
	}

	return convert(reflect.ValueOf(v))
}

func convert(rv reflect.Value) (any, error) {
	if d, ok := dicter(rv); ok {
		if d == nil {
			return nil, nil
		}

		return d.ModelDict()
	}

	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() || !holdsModels(rv.Type().Elem()) {
			break
		}

		out := make([]any, rv.Len())
		for i := range out {
			item, err := convert(rv.Index(i))
			if err != nil {
				return nil, err
			}

			out[i] = item
		}

		return out, nil
	case reflect.Map:
		if rv.IsNil() || rv.Type().Key().Kind() != reflect.String || !holdsModels(rv.Type().Elem()) {
			break
		}

		out := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			item, err := convert(iter.Value())
			if err != nil {
				return nil, err
			}

			out[iter.Key().String()] = item
		}

		return out, nil
	}

	return rv.Interface(), nil
}

// dicter returns the ModelDicter behind rv. A nil model pointer yields
// (nil, true).
func dicter(rv reflect.Value) (ModelDicter, bool) {
	if !rv.IsValid() {
		return nil, false
	}

	if rv.Type().Implements(modelDicterType) {
		if (rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface) && rv.IsNil() {
			return nil, true
		}

		return rv.Interface().(ModelDicter), true
	}

	if reflect.PointerTo(rv.Type()).Implements(modelDicterType) {
		ptr := reflect.New(rv.Type())
		ptr.Elem().Set(rv)

		return ptr.Interface().(ModelDicter), true
	}

	return nil, false
}

func holdsModels(t reflect.Type) bool {
	return t.Implements(modelDicterType) || reflect.PointerTo(t).Implements(modelDicterType)
}
