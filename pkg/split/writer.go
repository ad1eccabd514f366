package split

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/dom-json-toolkit/domtrim/pkg/errors"
	"github.com/dom-json-toolkit/domtrim/pkg/tree"
)

// ChunkInfo describes one written chunk file.
type ChunkInfo struct {
	File  string `json:"file"`
	Bytes int    `json:"bytes"`
}

// Manifest describes a written chunk set.
type Manifest struct {
	SetID      string      `json:"set_id"`
	ChunkCount int         `json:"chunk_count"`
	TotalBytes int         `json:"total_bytes"`
	Chunks     []ChunkInfo `json:"chunks"`
}

// WriteChunks writes chunk_N.json files (1-based) plus a manifest.json
// into dir, creating it if needed.
func WriteChunks(dir string, chunks []tree.Node) (*Manifest, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.IOError(fmt.Sprintf("creating output dir %s", dir), err)
	}

	m := &Manifest{
		SetID:      uuid.New().String(),
		ChunkCount: len(chunks),
	}
	for i, chunk := range chunks {
		name := fmt.Sprintf("chunk_%d.json", i+1)
		path := filepath.Join(dir, name)
		f, err := os.Create(path)
		if err != nil {
			return nil, errors.IOError(fmt.Sprintf("creating %s", path), err)
		}
		if err := tree.Encode(f, chunk, tree.Indented); err != nil {
			f.Close()
			return nil, errors.IOError(fmt.Sprintf("writing %s", path), err)
		}
		if err := f.Close(); err != nil {
			return nil, errors.IOError(fmt.Sprintf("closing %s", path), err)
		}
		size := tree.Size(chunk)
		m.Chunks = append(m.Chunks, ChunkInfo{File: name, Bytes: size})
		m.TotalBytes += size
	}

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, err
	}
	manifestPath := filepath.Join(dir, "manifest.json")
	if err := os.WriteFile(manifestPath, append(data, '\n'), 0o644); err != nil {
		return nil, errors.IOError(fmt.Sprintf("writing %s", manifestPath), err)
	}
	return m, nil
}
