package feed

import (
	"context"
	"fmt"
	"os"

	"go-jobboard-backend/internal/domain"
)

// FileSource reads the jobs resource from a local JSON file.
type FileSource struct {
	Path    string
	decoder *decoder
}

func NewFileSource(path string) *FileSource {
	return &FileSource{Path: path, decoder: newDecoder()}
}

func (s *FileSource) Fetch(ctx context.Context) ([]domain.Job, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSourceTransport, err)
	}
	body, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSourceTransport, err)
	}
	return s.decoder.decode(body)
}
