package ingest

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dd0wney/cluso-social/pkg/social"
	"github.com/golang/snappy"
)

// FileSource reads the delimited format from a local file. Paths ending in
// ".sz" are decoded as snappy framed streams.
type FileSource struct {
	Path string
}

// NewFileSource creates a FileSource for path.
func NewFileSource(path string) *FileSource {
	return &FileSource{Path: path}
}

func (s *FileSource) Kind() string { return KindFile }

// Load parses the file.
func (s *FileSource) Load(ctx context.Context) ([]social.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", s.Path, err)
	}
	defer f.Close()

	records, err := ParseCSV(decompress(s.Path, f))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", s.Path, err)
	}
	return records, nil
}

// decompress wraps r in a snappy reader when name carries the ".sz" suffix.
func decompress(name string, r io.Reader) io.Reader {
	if strings.HasSuffix(name, ".sz") {
		return snappy.NewReader(r)
	}
	return r
}
