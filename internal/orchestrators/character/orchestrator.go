// Package character implements the character orchestrator: creation,
// leveling, gold and health bookkeeping, and save management.
package character

import (
	"context"
	"log/slog"
	"strings"

	"github.com/KirkDiggler/quest-chronicles/internal/entities"
	"github.com/KirkDiggler/quest-chronicles/internal/errors"
	characterrepo "github.com/KirkDiggler/quest-chronicles/internal/repositories/character"
	"github.com/KirkDiggler/quest-chronicles/internal/savefile"
)

const (
	// XPPerLevel times the current level is the experience needed to level up
	XPPerLevel = 100

	// Gains applied on each level up
	LevelUpMaxHealth = 10
	LevelUpStrength  = 2
	LevelUpMagic     = 2

	errCharacterRequired = "character is required"
)

// Service defines the interface for character operations
type Service interface {
	// Creation and progression
	CreateCharacter(ctx context.Context, input *CreateCharacterInput) (*CreateCharacterOutput, error)
	GainExperience(ctx context.Context, input *GainExperienceInput) (*GainExperienceOutput, error)
	AddGold(ctx context.Context, input *AddGoldInput) (*AddGoldOutput, error)
	Heal(ctx context.Context, input *HealInput) (*HealOutput, error)
	Revive(ctx context.Context, input *ReviveInput) (*ReviveOutput, error)

	// Persistence
	SaveCharacter(ctx context.Context, input *SaveCharacterInput) (*SaveCharacterOutput, error)
	LoadCharacter(ctx context.Context, input *LoadCharacterInput) (*LoadCharacterOutput, error)
	ListSavedCharacters(ctx context.Context, input *ListSavedCharactersInput) (*ListSavedCharactersOutput, error)
	DeleteCharacter(ctx context.Context, input *DeleteCharacterInput) (*DeleteCharacterOutput, error)
	ValidateCharacter(ctx context.Context, input *ValidateCharacterInput) (*ValidateCharacterOutput, error)
}

// Config holds the dependencies for the character orchestrator
type Config struct {
	CharacterRepo characterrepo.Repository
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.CharacterRepo == nil {
		vb.RequiredField("CharacterRepo")
	}

	return vb.Build()
}

type orchestrator struct {
	characterRepo characterrepo.Repository
}

// NewOrchestrator creates a new character orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		characterRepo: cfg.CharacterRepo,
	}, nil
}

// CreateCharacter builds a level 1 character from the class table
func (o *orchestrator) CreateCharacter(ctx context.Context, input *CreateCharacterInput) (*CreateCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, errors.InvalidArgument("character name is required")
	}
	if strings.ContainsAny(name, "\r\n") {
		return nil, errors.InvalidArgument("character name must be a single line")
	}

	stats, ok := entities.BaseStatsFor(input.Class)
	if !ok {
		return nil, errors.InvalidClassf("invalid class: %s", input.Class).
			WithMeta("class", string(input.Class))
	}

	c := &entities.Character{
		Name:            name,
		Class:           input.Class,
		Level:           entities.StartingLevel,
		Health:          stats.Health,
		MaxHealth:       stats.Health,
		Strength:        stats.Strength,
		Magic:           stats.Magic,
		Experience:      0,
		Gold:            entities.StartingGold,
		Inventory:       []string{},
		ActiveQuests:    []string{},
		CompletedQuests: []string{},
	}

	slog.InfoContext(ctx, "Character created",
		"name", c.Name,
		"class", c.Class,
	)

	return &CreateCharacterOutput{Character: c}, nil
}

// GainExperience adds experience and applies every level up it pays for
func (o *orchestrator) GainExperience(ctx context.Context, input *GainExperienceInput) (*GainExperienceOutput, error) {
	if input == nil || input.Character == nil {
		return nil, errors.InvalidArgument(errCharacterRequired)
	}
	c := input.Character

	if input.Amount < 0 {
		return nil, errors.InvalidAmountf("experience amount must not be negative: %d", input.Amount)
	}
	if c.IsDead() {
		return nil, errors.CharacterDeadf("%s is dead and cannot gain experience", c.Name)
	}

	startLevel := c.Level
	c.Experience += input.Amount
	for c.Experience >= c.Level*XPPerLevel {
		c.Experience -= c.Level * XPPerLevel
		c.Level++
		c.MaxHealth += LevelUpMaxHealth
		c.Strength += LevelUpStrength
		c.Magic += LevelUpMagic
		c.Health = c.MaxHealth
	}

	if c.Level > startLevel {
		slog.InfoContext(ctx, "Character leveled up",
			"name", c.Name,
			"from", startLevel,
			"to", c.Level,
		)
	}

	return &GainExperienceOutput{
		Level:        c.Level,
		LevelsGained: c.Level - startLevel,
	}, nil
}

// AddGold applies a signed gold delta
func (o *orchestrator) AddGold(_ context.Context, input *AddGoldInput) (*AddGoldOutput, error) {
	if input == nil || input.Character == nil {
		return nil, errors.InvalidArgument(errCharacterRequired)
	}
	c := input.Character

	newGold := c.Gold + input.Delta
	if newGold < 0 {
		return nil, errors.InvalidAmountf("gold cannot go negative: have %d, change %d", c.Gold, input.Delta)
	}
	c.Gold = newGold

	return &AddGoldOutput{Gold: c.Gold}, nil
}

// Heal restores health up to the maximum and reports how much was applied
func (o *orchestrator) Heal(_ context.Context, input *HealInput) (*HealOutput, error) {
	if input == nil || input.Character == nil {
		return nil, errors.InvalidArgument(errCharacterRequired)
	}
	if input.Amount < 0 {
		return nil, errors.InvalidAmountf("heal amount must not be negative: %d", input.Amount)
	}

	return &HealOutput{Healed: heal(input.Character, input.Amount)}, nil
}

// heal clamps health to max_health and returns the applied delta
func heal(c *entities.Character, amount int) int {
	before := c.Health
	c.Health = min(c.Health+amount, c.MaxHealth)
	return c.Health - before
}

// Revive brings a character back at half health, at least 1
func (o *orchestrator) Revive(ctx context.Context, input *ReviveInput) (*ReviveOutput, error) {
	if input == nil || input.Character == nil {
		return nil, errors.InvalidArgument(errCharacterRequired)
	}
	c := input.Character

	c.Health = max(c.MaxHealth/2, 1)

	slog.InfoContext(ctx, "Character revived",
		"name", c.Name,
		"health", c.Health,
	)

	return &ReviveOutput{Health: c.Health}, nil
}

// SaveCharacter validates and persists a character
func (o *orchestrator) SaveCharacter(ctx context.Context, input *SaveCharacterInput) (*SaveCharacterOutput, error) {
	if input == nil || input.Character == nil {
		return nil, errors.InvalidArgument(errCharacterRequired)
	}

	if err := savefile.Validate(input.Character); err != nil {
		return nil, errors.Wrapf(err, "refusing to save %s", input.Character.Name)
	}

	out, err := o.characterRepo.Save(ctx, &characterrepo.SaveInput{Character: input.Character})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to save %s", input.Character.Name)
	}

	return &SaveCharacterOutput{
		Revision: out.Revision,
		SavedAt:  out.SavedAt,
	}, nil
}

// LoadCharacter reads a save, checks it, and restores equipped item effects
func (o *orchestrator) LoadCharacter(ctx context.Context, input *LoadCharacterInput) (*LoadCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if strings.TrimSpace(input.Name) == "" {
		return nil, errors.InvalidArgument("character name is required")
	}

	out, err := o.characterRepo.Load(ctx, &characterrepo.LoadInput{Name: input.Name})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load %s", input.Name)
	}
	c := out.Character

	if err := savefile.Validate(c); err != nil {
		return nil, errors.Wrapf(err, "save for %s is invalid", input.Name)
	}
	if err := savefile.Rehydrate(c, input.Items); err != nil {
		return nil, errors.Wrapf(err, "save for %s is invalid", input.Name)
	}

	slog.DebugContext(ctx, "Character loaded",
		"name", c.Name,
		"level", c.Level,
	)

	return &LoadCharacterOutput{Character: c}, nil
}

// ListSavedCharacters returns the names of all saves
func (o *orchestrator) ListSavedCharacters(ctx context.Context, _ *ListSavedCharactersInput) (*ListSavedCharactersOutput, error) {
	out, err := o.characterRepo.List(ctx, &characterrepo.ListInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list saves")
	}

	return &ListSavedCharactersOutput{Names: out.Names}, nil
}

// DeleteCharacter removes a save
func (o *orchestrator) DeleteCharacter(ctx context.Context, input *DeleteCharacterInput) (*DeleteCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if strings.TrimSpace(input.Name) == "" {
		return nil, errors.InvalidArgument("character name is required")
	}

	if _, err := o.characterRepo.Delete(ctx, &characterrepo.DeleteInput{Name: input.Name}); err != nil {
		return nil, errors.Wrapf(err, "failed to delete %s", input.Name)
	}

	return &DeleteCharacterOutput{}, nil
}

// ValidateCharacter checks fields and invariants without saving
func (o *orchestrator) ValidateCharacter(_ context.Context, input *ValidateCharacterInput) (*ValidateCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := savefile.Validate(input.Character); err != nil {
		return nil, err
	}

	return &ValidateCharacterOutput{}, nil
}
