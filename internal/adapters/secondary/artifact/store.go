package artifact

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"salary-prediction-api/internal/core/domain"
	ports "salary-prediction-api/internal/core/ports/output"
)

type fileStore struct{}

// NewFileStore creates an artifact store backed by the local filesystem
func NewFileStore() ports.ArtifactStore {
	return &fileStore{}
}

func (s *fileStore) Load(ctx context.Context, path string) (*domain.LinearModel, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", domain.ErrArtifactNotFound, path)
		}
		return nil, fmt.Errorf("read artifact: %w", err)
	}

	var model domain.LinearModel
	if err := json.Unmarshal(data, &model); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", domain.ErrInvalidArtifact, path, err)
	}

	if err := model.Validate(); err != nil {
		return nil, err
	}

	return &model, nil
}

func (s *fileStore) Exists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
