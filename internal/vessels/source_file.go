package vessels

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"marineval/pkg/platform/sentinel"
)

// FileSource reads vessel names from a JSON array on disk. Non-string
// entries are dropped; blanks are handled by registry construction.
type FileSource struct {
	path string
}

// NewFileSource constructs a source for the given path.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Names reads and decodes the backing file.
func (s *FileSource) Names(_ context.Context) ([]string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read vessel list %q: %v: %w", s.path, err, sentinel.ErrUnavailable)
	}
	var raw []any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode vessel list %q: %v: %w", s.path, err, sentinel.ErrCorrupt)
	}
	names := make([]string, 0, len(raw))
	for _, item := range raw {
		if name, ok := item.(string); ok {
			names = append(names, name)
		}
	}
	return names, nil
}
