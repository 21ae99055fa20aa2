package datasource

import (
	"context"
	"io"
	"os"
)

type fileSource struct {
	path string
}

// NewFileSource reads a collection from a local file
func NewFileSource(path string) Source {
	return &fileSource{path: path}
}

func (s *fileSource) Name() string {
	return s.path
}

func (s *fileSource) Read(ctx context.Context) ([]byte, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return io.ReadAll(f)
}
