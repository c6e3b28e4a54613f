package manifest

import "time"

// SchemaVersion identifies the manifest document layout.
const SchemaVersion = 1

// FileName is the manifest file written into the output directory.
const FileName = "run-manifest.json"

// SkippedRow records an input row dropped after its image generation failed.
type SkippedRow struct {
	Index int    `json:"index"`
	Theme string `json:"theme"`
}

// RunManifest summarizes a finished batch.
// Written next to the output CSV, never read back.
type RunManifest struct {
	SchemaVersion int          `json:"schema_version"`
	SessionID     string       `json:"session_id"`
	StartedAt     string       `json:"started_at"`
	FinishedAt    string       `json:"finished_at"`
	TotalRows     int          `json:"total_rows"`
	Persisted     int          `json:"persisted"`
	Skipped       int          `json:"skipped"`
	SkippedRows   []SkippedRow `json:"skipped_rows"`
	OutputFile    string       `json:"output_file"`
}

// Timestamp formats t the way manifest timestamps are stored.
func Timestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
