package common

import (
	"path"
	"strconv"
	"strings"
)

// UnknownStr is returned by String methods for values outside their enum.
const UnknownStr = "unknown"

// PkgAlias returns the package alias (last element of path) for a given package path.
// Returns empty string if pkgPath is empty.
func PkgAlias(pkgPath string) string {
	if pkgPath == "" {
		return ""
	}

	return path.Base(pkgPath)
}

// Unquote unquotes a Go string literal (import paths, struct tags).
// Malformed literals are returned with surrounding quotes trimmed.
func Unquote(lit string) string {
	p, err := strconv.Unquote(lit)
	if err != nil {
		return strings.Trim(lit, "\"`")
	}

	return p
}
