package character

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/KirkDiggler/quest-chronicles/internal/errors"
	"github.com/KirkDiggler/quest-chronicles/internal/pkg/clock"
	"github.com/KirkDiggler/quest-chronicles/internal/savefile"
)

const saveFileSuffix = "_save.txt"

type fileRepository struct {
	dir   string
	clock clock.Clock
}

// FileConfig contains configuration for the filesystem character repository
type FileConfig struct {
	Dir   string
	Clock clock.Clock
}

// Validate validates the FileConfig
func (cfg *FileConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("Dir", cfg.Dir, vb)
	return vb.Build()
}

// NewFile creates a repository that keeps one <name>_save.txt per character
func NewFile(cfg *FileConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &fileRepository{
		dir:   cfg.Dir,
		clock: c,
	}, nil
}

func (r *fileRepository) path(name string) string {
	return filepath.Join(r.dir, name+saveFileSuffix)
}

func (r *fileRepository) Save(ctx context.Context, input *SaveInput) (*SaveOutput, error) {
	if err := validateSaveInput(input); err != nil {
		return nil, err
	}

	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeCorrupted, "cannot create save directory %s", r.dir)
	}

	// Write to a temp file and rename so a failed save never truncates the old one
	path := r.path(input.Character.Name)
	tmp, err := os.CreateTemp(r.dir, ".save-*")
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeCorrupted, "cannot create save file")
	}
	defer func() {
		_ = os.Remove(tmp.Name())
	}()

	if _, err := tmp.WriteString(savefile.Encode(input.Character)); err != nil {
		_ = tmp.Close()
		return nil, errors.WrapWithCodef(err, errors.CodeCorrupted, "cannot write save for %s", input.Character.Name)
	}
	if err := tmp.Close(); err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeCorrupted, "cannot write save for %s", input.Character.Name)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeCorrupted, "cannot replace save for %s", input.Character.Name)
	}

	slog.DebugContext(ctx, "Saved character to file",
		"name", input.Character.Name,
		"path", path,
	)

	return &SaveOutput{SavedAt: r.clock.Now()}, nil
}

func (r *fileRepository) Load(ctx context.Context, input *LoadInput) (*LoadOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateName(input.Name); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(r.path(input.Name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.CharacterNotFoundf("no save file for %s", input.Name)
		}
		return nil, errors.WrapWithCodef(err, errors.CodeCorrupted, "could not read save file for %s", input.Name)
	}

	c, err := savefile.Decode(string(data))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to decode save for %s", input.Name)
	}

	slog.DebugContext(ctx, "Loaded character from file", "name", input.Name)
	return &LoadOutput{Character: c}, nil
}

func (r *fileRepository) List(_ context.Context, _ *ListInput) (*ListOutput, error) {
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return &ListOutput{Names: []string{}}, nil
		}
		return nil, errors.WrapWithCode(err, errors.CodeCorrupted, "could not read save directory")
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if name, ok := strings.CutSuffix(entry.Name(), saveFileSuffix); ok && name != "" {
			names = append(names, name)
		}
	}
	slices.Sort(names)

	return &ListOutput{Names: names}, nil
}

func (r *fileRepository) Delete(ctx context.Context, input *DeleteInput) (*DeleteOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateName(input.Name); err != nil {
		return nil, err
	}

	if err := os.Remove(r.path(input.Name)); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.CharacterNotFoundf("no save file for %s", input.Name)
		}
		return nil, errors.WrapWithCodef(err, errors.CodeCorrupted, "could not delete save for %s", input.Name)
	}

	slog.InfoContext(ctx, "Deleted character save", "name", input.Name)
	return &DeleteOutput{}, nil
}
