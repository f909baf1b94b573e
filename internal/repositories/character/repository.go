// Package character provides the interface for character persistence
package character

//go:generate mockgen -destination=mock/mock_repository.go -package=charactermock github.com/KirkDiggler/quest-chronicles/internal/repositories/character Repository

import (
	"context"
	"strings"
	"time"

	"github.com/KirkDiggler/quest-chronicles/internal/entities"
	"github.com/KirkDiggler/quest-chronicles/internal/errors"
)

// Repository defines the interface for character persistence. Every backend
// stores the save text produced by the savefile package, keyed by name.
type Repository interface {
	// Save writes the character, replacing any previous save
	// Returns errors.InvalidArgument for a nil character or unusable name
	// Returns errors.Corrupted if the storage medium cannot be written
	Save(ctx context.Context, input *SaveInput) (*SaveOutput, error)

	// Load reads a character by name. Equipped slots hold item IDs only.
	// Returns errors.CharacterNotFound if no save exists
	// Returns errors.Corrupted if the save cannot be read
	// Returns errors.InvalidSaveData if the save text is malformed
	Load(ctx context.Context, input *LoadInput) (*LoadOutput, error)

	// List returns the names of all saved characters, sorted
	List(ctx context.Context, input *ListInput) (*ListOutput, error)

	// Delete removes a save
	// Returns errors.CharacterNotFound if no save exists
	Delete(ctx context.Context, input *DeleteInput) (*DeleteOutput, error)
}

// SaveInput defines the input for saving a character
type SaveInput struct {
	Character *entities.Character
}

// SaveOutput defines the output for saving a character
type SaveOutput struct {
	// Revision identifies this save. Backends without revisions leave it empty.
	Revision string
	SavedAt  time.Time
}

// LoadInput defines the input for loading a character
type LoadInput struct {
	Name string
}

// LoadOutput defines the output for loading a character
type LoadOutput struct {
	Character *entities.Character
}

// ListInput defines the input for listing saves
type ListInput struct{}

// ListOutput defines the output for listing saves
type ListOutput struct {
	Names []string
}

// DeleteInput defines the input for deleting a save
type DeleteInput struct {
	Name string
}

// DeleteOutput defines the output for deleting a save
type DeleteOutput struct{}

const (
	errCharacterNil = "character cannot be nil"
	errNameEmpty    = "character name cannot be empty"
)

// validateName rejects names that cannot be used as a storage key
func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errors.InvalidArgument(errNameEmpty)
	}
	if strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return errors.InvalidArgumentf("character name %q contains path characters", name)
	}
	return nil
}

func validateSaveInput(input *SaveInput) error {
	if input == nil || input.Character == nil {
		return errors.InvalidArgument(errCharacterNil)
	}
	return validateName(input.Character.Name)
}
