package ordantic

import (
	"fmt"
	"reflect"
)

//go:generate go tool stringer -type=CompareOp -trimprefix=Op -output=compareop_string.go

// CompareOp is a rich-comparison operator. Values follow the foreign
// runtime's numbering (less-than is 0).
type CompareOp int

const (
	OpLt CompareOp = iota
	OpLe
	OpEq
	OpNe
	OpGt
	OpGe
)

// Compare answers op for two values whose equality is already known.
// Only OpEq and OpNe are supported; anything else fails with
// ErrNotImplemented.
func Compare(op CompareOp, equal bool) (bool, error) {
	switch op {
	case OpEq:
		return equal, nil
	case OpNe:
		return !equal, nil
	default:
		return false, newError(MsgNotImplemented, fmt.Errorf("comparison operator %s", op))
	}
}

// StructuralEqual reports whether a and b are deeply equal.
func StructuralEqual(a, b any) bool {
	return reflect.DeepEqual(a, b)
}
