package gen

import (
	"go/token"
	"strconv"
	"unicode"
	"unicode/utf8"
)

// predeclared identifiers that generated parameters must not shadow.
var predeclared = map[string]bool{
	"any": true, "bool": true, "byte": true, "comparable": true, "complex64": true,
	"complex128": true, "error": true, "float32": true, "float64": true, "int": true,
	"int8": true, "int16": true, "int32": true, "int64": true, "rune": true,
	"string": true, "uint": true, "uint8": true, "uint16": true, "uint32": true,
	"uint64": true, "uintptr": true, "true": true, "false": true, "iota": true,
	"nil": true, "append": true, "cap": true, "clear": true, "close": true,
	"complex": true, "copy": true, "delete": true, "imag": true, "len": true,
	"make": true, "max": true, "min": true, "new": true, "panic": true,
	"print": true, "println": true, "real": true, "recover": true,
}

// lowerCamel lowers the leading initialism or letter: Name -> name,
// ID -> id, URLPath -> urlPath.
func lowerCamel(s string) string {
	runes := []rune(s)

	n := 0
	for n < len(runes) && unicode.IsUpper(runes[n]) {
		n++
	}

	switch {
	case n == 0:
		return s
	case n == 1 || n == len(runes):
		// Single capital or an all-caps identifier.
	case unicode.IsLetter(runes[n]):
		// Keep the capital that starts the next word: URLPath -> urlPath.
		n--
	}

	for i := range n {
		runes[i] = unicode.ToLower(runes[i])
	}

	return string(runes)
}

// exportAs returns name with its first letter upper-cased when exported is
// true and lower-cased otherwise.
func exportAs(name string, exported bool) string {
	r, size := utf8.DecodeRuneInString(name)
	if exported {
		return string(unicode.ToUpper(r)) + name[size:]
	}

	return string(unicode.ToLower(r)) + name[size:]
}

// scope hands out identifiers that are unique within one generated function
// and never collide with keywords, predeclared names or reserved locals.
type scope struct {
	used map[string]bool
}

func newScope(reserved ...string) *scope {
	s := &scope{used: make(map[string]bool)}
	for _, r := range reserved {
		s.used[r] = true
	}

	return s
}

func (s *scope) name(base string) string {
	if base == "" || base == "_" {
		base = "v"
	}

	if token.IsKeyword(base) || predeclared[base] {
		base += "_"
	}

	name := base
	for i := 2; s.used[name]; i++ {
		name = base + strconv.Itoa(i)
	}

	s.used[name] = true

	return name
}

// funcName builds a package-level function name for a model, keeping the
// model's exportedness: ("New", "Pair", "") -> "NewPair", and for an
// unexported type ("New", "pair", "") -> "newPair".
func funcName(prefix, typeName, suffix string) string {
	exported := token.IsExported(typeName)
	if prefix == "" {
		return exportAs(typeName, exported) + suffix
	}

	return exportAs(prefix, exported) + exportAs(typeName, true) + suffix
}

// quote returns s as a Go string literal.
func quote(s string) string {
	return strconv.Quote(s)
}
