// Package store keeps raw feed bodies on disk so the server and the dev
// tooling can run without hammering the upstream API. Only raw fetch bodies
// live here; ranked candidates and prompts are always recomputed.
package store

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

type SnapshotStore struct {
	Root string // e.g. "data/raw"
}

func NewSnapshotStore(root string) *SnapshotStore {
	return &SnapshotStore{Root: root}
}

func (s *SnapshotStore) Path(rel string) string {
	return filepath.Join(s.Root, rel)
}

func (s *SnapshotStore) Exists(rel string) bool {
	_, err := os.Stat(s.Path(rel))
	return err == nil
}

// Fresh reports whether rel exists and is younger than ttl.
// ttl <= 0 means any existing snapshot counts as fresh.
func (s *SnapshotStore) Fresh(rel string, ttl time.Duration) bool {
	info, err := os.Stat(s.Path(rel))
	if err != nil {
		return false
	}
	if ttl <= 0 {
		return true
	}
	return time.Since(info.ModTime()) < ttl
}

// Write stores body under rel. When prettyJSON is set and the body parses as
// JSON it is re-indented before writing; CSV and unparseable bodies are
// written verbatim.
func (s *SnapshotStore) Write(rel string, body []byte, prettyJSON bool) error {
	path := s.Path(rel)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	if prettyJSON {
		var v any
		if err := json.Unmarshal(body, &v); err == nil {
			buf := &bytes.Buffer{}
			enc := json.NewEncoder(buf)
			enc.SetIndent("", "  ")
			_ = enc.Encode(v)
			body = buf.Bytes()
		}
	}

	return os.WriteFile(path, body, 0o644)
}

func (s *SnapshotStore) Read(rel string) ([]byte, error) {
	return os.ReadFile(s.Path(rel))
}
