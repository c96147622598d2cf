package trace

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Manifest contains metadata about a directory of generated trace files.
type Manifest struct {
	Version     int         `json:"version"`
	Compression string      `json:"compression"`
	GeneratedAt time.Time   `json:"generated_at"`
	Traces      []TraceInfo `json:"traces"`
}

// TraceInfo describes one generated trace file.
type TraceInfo struct {
	Key      string `json:"key"`
	Filename string `json:"filename"`
	Requests int    `json:"requests"`
}

const manifestFilename = "manifest.json"

// WriteManifest writes the manifest to the output directory.
func WriteManifest(dir string, m *Manifest) error {
	path := filepath.Join(dir, manifestFilename)
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling manifest: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing manifest: %w", err)
	}
	return nil
}

// ReadManifest reads the manifest from a trace directory.
func ReadManifest(dir string) (*Manifest, error) {
	path := filepath.Join(dir, manifestFilename)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}
	return &m, nil
}
