package gen

import (
	"os"
	"path/filepath"
	"strings"
)

// unformattedSuffix replaces ".go" on the sidecar so the broken source does
// not become part of the package it sits in.
const unformattedSuffix = ".go.unformatted"

// keepUnformatted saves the template output that go/format rejected next to
// where the formatted file would have gone and returns the sidecar path.
func keepUnformatted(dir, filename string, content []byte) (string, error) {
	if dir == "" || filename == "" {
		return "", nil
	}

	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return "", err
	}

	path := filepath.Join(dir, strings.TrimSuffix(filename, ".go")+unformattedSuffix)

	return path, os.WriteFile(path, content, filePerm)
}
