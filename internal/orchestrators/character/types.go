package character

import (
	"time"

	"github.com/KirkDiggler/quest-chronicles/internal/entities"
)

// CreateCharacterInput defines the request for creating a character
type CreateCharacterInput struct {
	Name  string
	Class entities.Class
}

// CreateCharacterOutput defines the response for creating a character
type CreateCharacterOutput struct {
	Character *entities.Character
}

// GainExperienceInput defines the request for granting experience.
// An Amount of zero settles any level ups already paid for.
type GainExperienceInput struct {
	Character *entities.Character
	Amount    int
}

// GainExperienceOutput defines the response for granting experience
type GainExperienceOutput struct {
	Level        int
	LevelsGained int
}

// AddGoldInput defines the request for changing gold
type AddGoldInput struct {
	Character *entities.Character
	Delta     int
}

// AddGoldOutput defines the response for changing gold
type AddGoldOutput struct {
	Gold int
}

// HealInput defines the request for healing
type HealInput struct {
	Character *entities.Character
	Amount    int
}

// HealOutput defines the response for healing
type HealOutput struct {
	Healed int
}

// ReviveInput defines the request for reviving
type ReviveInput struct {
	Character *entities.Character
}

// ReviveOutput defines the response for reviving
type ReviveOutput struct {
	Health int
}

// SaveCharacterInput defines the request for saving
type SaveCharacterInput struct {
	Character *entities.Character
}

// SaveCharacterOutput defines the response for saving
type SaveCharacterOutput struct {
	Revision string
	SavedAt  time.Time
}

// LoadCharacterInput defines the request for loading. Items is needed to
// restore equipped item effects.
type LoadCharacterInput struct {
	Name  string
	Items entities.ItemCatalog
}

// LoadCharacterOutput defines the response for loading
type LoadCharacterOutput struct {
	Character *entities.Character
}

// ListSavedCharactersInput defines the request for listing saves
type ListSavedCharactersInput struct{}

// ListSavedCharactersOutput defines the response for listing saves
type ListSavedCharactersOutput struct {
	Names []string
}

// DeleteCharacterInput defines the request for deleting a save
type DeleteCharacterInput struct {
	Name string
}

// DeleteCharacterOutput defines the response for deleting a save
type DeleteCharacterOutput struct{}

// ValidateCharacterInput defines the request for validating a character
type ValidateCharacterInput struct {
	Character *entities.Character
}

// ValidateCharacterOutput defines the response for validating a character
type ValidateCharacterOutput struct{}
