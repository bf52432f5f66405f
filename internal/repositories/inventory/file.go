package inventory

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/KirkDiggler/echosheet/internal/entities/echosheet"
	"github.com/KirkDiggler/echosheet/internal/errors"
)

// FileConfig contains configuration for the JSON file inventory repository.
type FileConfig struct {
	// Path of the JSON document holding a single inventory
	Path string
}

// Validate validates the FileConfig.
func (cfg *FileConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Path == "" {
		return errors.InvalidArgument("path cannot be empty")
	}
	return nil
}

type fileRepository struct {
	mu   sync.Mutex
	path string
}

// NewFile creates a repository over one JSON file. The file holds one
// inventory, so every character ID reads and writes the same document.
func NewFile(cfg *FileConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &fileRepository{path: cfg.Path}, nil
}

func (r *fileRepository) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := os.ReadFile(r.path)
	if os.IsNotExist(err) {
		return nil, errors.NotFoundf("inventory file %s not found", r.path)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", r.path)
	}

	var inv echosheet.Inventory
	if err := json.Unmarshal(data, &inv); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse "+r.path)
	}

	return &GetOutput{Inventory: inv}, nil
}

func (r *fileRepository) Update(_ context.Context, input UpdateInput) (*UpdateOutput, error) {
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	data, err := json.MarshalIndent(input.Inventory, "", "  ")
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal inventory")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// Write then rename so a failed write never truncates the old file
	tmp, err := os.CreateTemp(filepath.Dir(r.path), filepath.Base(r.path)+".*")
	if err != nil {
		return nil, errors.Wrapf(err, "failed to write %s", r.path)
	}
	defer os.Remove(tmp.Name()) // nolint:errcheck // gone after a successful rename

	if _, err := tmp.Write(append(data, '\n')); err != nil {
		_ = tmp.Close() // nolint:errcheck // write error wins
		return nil, errors.Wrapf(err, "failed to write %s", r.path)
	}
	if err := tmp.Close(); err != nil {
		return nil, errors.Wrapf(err, "failed to write %s", r.path)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return nil, errors.Wrapf(err, "failed to write %s", r.path)
	}
	if err := os.Rename(tmp.Name(), r.path); err != nil {
		return nil, errors.Wrapf(err, "failed to write %s", r.path)
	}

	return &UpdateOutput{Inventory: input.Inventory.Clone()}, nil
}

func (r *fileRepository) Delete(_ context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if err := os.Remove(r.path); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFoundf("inventory file %s not found", r.path)
		}
		return nil, errors.Wrapf(err, "failed to delete %s", r.path)
	}

	return &DeleteOutput{}, nil
}
