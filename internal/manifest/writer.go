package manifest

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Write persists the manifest as indented JSON in dir.
func Write(m *RunManifest, dir string) error {
	// Marshal with 4-space indent
	data, err := json.MarshalIndent(m, "", "    ")
	if err != nil {
		return fmt.Errorf("marshal manifest: %w", err)
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create manifest dir: %w", err)
	}

	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write manifest file: %w", err)
	}

	return nil
}
