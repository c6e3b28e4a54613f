package catalog

import (
	"fmt"
	"os"
	"path/filepath"
)

// InputFileName is the conventional input file name checked during discovery.
const InputFileName = "input.csv"

// DiscoverInputFile locates the input CSV. If explicit is provided it is
// used directly (must exist). Otherwise a deterministic set of well-known
// locations is checked relative to the current working directory.
//
// Search order:
//  1. Explicit flag value (must exist)
//  2. <inputDir>/input.csv
//  3. ./input.csv
func DiscoverInputFile(explicit, inputDir string) (string, error) {
	if explicit != "" {
		abs, err := filepath.Abs(explicit)
		if err != nil {
			return "", fmt.Errorf("resolving input file path: %w", err)
		}
		if _, err := os.Stat(abs); err != nil {
			return "", fmt.Errorf("input file not found: %s", explicit)
		}
		return abs, nil
	}

	candidates := []string{
		filepath.Join(inputDir, InputFileName),
		InputFileName,
	}
	for _, rel := range candidates {
		abs, err := filepath.Abs(rel)
		if err != nil {
			continue
		}
		if _, err := os.Stat(abs); err == nil {
			return abs, nil
		}
	}

	return "", fmt.Errorf("no input file found (searched %s and ./%s)", candidates[0], InputFileName)
}
