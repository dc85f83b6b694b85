package gen

import (
	"fmt"
	"os"
	"path/filepath"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// WriteFiles writes all generated files into their directories, creating
// directories that don't exist. It returns the written paths.
func WriteFiles(files []GeneratedFile) ([]string, error) {
	paths := make([]string, 0, len(files))

	for _, file := range files {
		err := os.MkdirAll(file.Dir, dirPerm)
		if err != nil {
			return paths, fmt.Errorf("creating output directory: %w", err)
		}

		outputPath := filepath.Join(file.Dir, file.Filename)

		err = os.WriteFile(outputPath, file.Content, filePerm)
		if err != nil {
			return paths, fmt.Errorf("writing file %s: %w", file.Filename, err)
		}

		paths = append(paths, outputPath)
	}

	return paths, nil
}
