package bridge

import (
	"fmt"
	"math"
	"reflect"
)

// ArgError reports an argument that cannot be bound.
type ArgError struct {
	Index int    // argument position, -1 for arity errors
	Want  string // expected type or count
	Got   any
}

func (e *ArgError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("bridge: expected %s arguments, got %v", e.Want, e.Got)
	}

	return fmt.Sprintf("bridge: argument %d: expected %s, got %T", e.Index, e.Want, e.Got)
}

// CheckArity fails unless exactly n arguments were passed.
func CheckArity(args []any, n int) error {
	if len(args) != n {
		return &ArgError{Index: -1, Want: fmt.Sprint(n), Got: len(args)}
	}

	return nil
}

// Bind assigns args to targets position by position. Targets must be
// pointers; see Assign for the accepted conversions.
func Bind(args []any, targets ...any) error {
	if err := CheckArity(args, len(targets)); err != nil {
		return err
	}

	for i, t := range targets {
		if err := assign(reflect.ValueOf(t).Elem(), args[i]); err != nil {
			if ae, ok := err.(*ArgError); ok {
				ae.Index = i
			}

			return err
		}
	}

	return nil
}

// Assign stores value into dst. Values of the exact type are stored as is,
// nil is accepted for nilable types and numeric values are converted
// between numeric kinds when the value survives the conversion. Truncated
// fractions, overflow and sign changes fail; float to float conversions may
// round but must stay finite.
func Assign[T any](dst *T, value any) error {
	return assign(reflect.ValueOf(dst).Elem(), value)
}

func assign(dst reflect.Value, value any) error {
	t := dst.Type()

	if value == nil {
		if nilable(t.Kind()) {
			dst.SetZero()
			return nil
		}

		return &ArgError{Want: t.String(), Got: value}
	}

	v := reflect.ValueOf(value)
	switch {
	case v.Type().AssignableTo(t):
		dst.Set(v)
	case numeric(v.Kind()) && numeric(t.Kind()) && v.CanConvert(t):
		conv := v.Convert(t)
		if !lossless(v, conv) {
			return &ArgError{Want: t.String(), Got: value}
		}

		dst.Set(conv)
	default:
		return &ArgError{Want: t.String(), Got: value}
	}

	return nil
}

// Self returns the receiver as *M.
func Self[M any](self any) (*M, error) {
	m, ok := self.(*M)
	if !ok || m == nil {
		return nil, &ArgError{Want: reflect.TypeFor[*M]().String(), Got: self}
	}

	return m, nil
}

// Accessor exposes the field ref points at under name.
func Accessor[M, F any](name string, ref func(*M) *F) Field {
	return Field{
		Name: name,
		Get: func(self any) (any, error) {
			m, err := Self[M](self)
			if err != nil {
				return nil, err
			}

			return *ref(m), nil
		},
		Set: func(self, value any) error {
			m, err := Self[M](self)
			if err != nil {
				return err
			}

			return Assign(ref(m), value)
		},
	}
}

// Method0 adapts a method without arguments.
func Method0[M, R any](fn func(*M) (R, error)) Method {
	return func(self any, args ...any) (any, error) {
		m, err := Self[M](self)
		if err != nil {
			return nil, err
		}

		if err := CheckArity(args, 0); err != nil {
			return nil, err
		}

		return fn(m)
	}
}

// Method2 adapts a method with two arguments.
func Method2[M, A, B, R any](fn func(*M, A, B) (R, error)) Method {
	return func(self any, args ...any) (any, error) {
		m, err := Self[M](self)
		if err != nil {
			return nil, err
		}

		var (
			a A
			b B
		)
		if err := Bind(args, &a, &b); err != nil {
			return nil, err
		}

		return fn(m, a, b)
	}
}

// ClassMethod0 adapts a class accessor without arguments.
func ClassMethod0[R any](fn func() (R, error)) ClassMethod {
	return func(args ...any) (any, error) {
		if err := CheckArity(args, 0); err != nil {
			return nil, err
		}

		return fn()
	}
}

// ClassMethod1 adapts a class accessor with one argument.
func ClassMethod1[A, R any](fn func(A) (R, error)) ClassMethod {
	return func(args ...any) (any, error) {
		var a A
		if err := Bind(args, &a); err != nil {
			return nil, err
		}

		return fn(a)
	}
}

func nilable(k reflect.Kind) bool {
	switch k {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return true
	default:
		return false
	}
}

func numeric(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}

// lossless reports whether conv, converted from v, still holds v's value.
func lossless(v, conv reflect.Value) bool {
	if isFloat(v.Kind()) && isFloat(conv.Kind()) {
		return !math.IsInf(conv.Float(), 0) || math.IsInf(v.Float(), 0)
	}

	if negative(v) != negative(conv) {
		return false
	}

	return conv.Convert(v.Type()).Equal(v)
}

func negative(v reflect.Value) bool {
	switch {
	case v.CanInt():
		return v.Int() < 0
	case v.CanFloat():
		return v.Float() < 0
	default:
		return false
	}
}

func isFloat(k reflect.Kind) bool {
	return k == reflect.Float32 || k == reflect.Float64
}
