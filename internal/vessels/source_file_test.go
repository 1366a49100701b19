package vessels

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"marineval/pkg/platform/sentinel"
)

type FileSourceSuite struct {
	suite.Suite
	ctx context.Context
}

func (s *FileSourceSuite) SetupSuite() {
	s.ctx = context.Background()
}

func TestFileSourceSuite(t *testing.T) {
	suite.Run(t, new(FileSourceSuite))
}

func (s *FileSourceSuite) writeFile(content string) string {
	path := filepath.Join(s.T().TempDir(), "vessels.json")
	s.Require().NoError(os.WriteFile(path, []byte(content), 0o600))
	return path
}

func (s *FileSourceSuite) TestReadsJSONArray() {
	path := s.writeFile(`["Sea Breeze", "Ocean Queen"]`)

	names, err := NewFileSource(path).Names(s.ctx)
	s.Require().NoError(err)
	s.Equal([]string{"Sea Breeze", "Ocean Queen"}, names)
}

func (s *FileSourceSuite) TestNonStringEntriesAreDropped() {
	path := s.writeFile(`["Sea Breeze", 42, null, {"name": "x"}, "Ocean Queen"]`)

	names, err := NewFileSource(path).Names(s.ctx)
	s.Require().NoError(err)
	s.Equal([]string{"Sea Breeze", "Ocean Queen"}, names)
}

func (s *FileSourceSuite) TestMissingFileIsUnavailable() {
	_, err := NewFileSource(filepath.Join(s.T().TempDir(), "absent.json")).Names(s.ctx)
	s.Require().ErrorIs(err, sentinel.ErrUnavailable)
}

func (s *FileSourceSuite) TestCorruptFile() {
	s.Run("invalid JSON", func() {
		path := s.writeFile(`{broken`)
		_, err := NewFileSource(path).Names(s.ctx)
		s.Require().ErrorIs(err, sentinel.ErrCorrupt)
	})

	s.Run("not an array", func() {
		path := s.writeFile(`{"vessels": []}`)
		_, err := NewFileSource(path).Names(s.ctx)
		s.Require().ErrorIs(err, sentinel.ErrCorrupt)
	})
}

func (s *FileSourceSuite) TestLoadDegradesToEmptyRegistry() {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	registry := Load(s.ctx, NewFileSource("/nonexistent/vessels.json"), logger)
	s.Require().NotNil(registry)
	s.True(registry.IsEmpty())
	s.False(registry.Contains("Sea Breeze"))
}

func (s *FileSourceSuite) TestLoadBuildsRegistry() {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	path := s.writeFile(`["Sea Breeze", "sea breeze", "", "Ocean Queen"]`)

	registry := Load(s.ctx, NewFileSource(path), logger)
	s.Equal(2, registry.Size())
	s.True(registry.Contains("SEA BREEZE"))
}
