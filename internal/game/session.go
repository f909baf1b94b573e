// Package game holds the session object a front end drives: the loaded
// catalogs, the orchestrators built on them, and one lock per character.
package game

import (
	"context"
	"log/slog"
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/quest-chronicles/internal/entities"
	"github.com/KirkDiggler/quest-chronicles/internal/errors"
	"github.com/KirkDiggler/quest-chronicles/internal/gamedata"
	"github.com/KirkDiggler/quest-chronicles/internal/orchestrators/character"
	"github.com/KirkDiggler/quest-chronicles/internal/orchestrators/combat"
	"github.com/KirkDiggler/quest-chronicles/internal/orchestrators/inventory"
	"github.com/KirkDiggler/quest-chronicles/internal/orchestrators/quest"
	"github.com/KirkDiggler/quest-chronicles/internal/pkg/idgen"
)

// Config holds the dependencies for a session
type Config struct {
	Catalogs   *gamedata.Catalogs
	Characters character.Service

	// Combat dependencies. EventBus defaults to a fresh bus.
	Roller      dice.Roller
	IDGenerator idgen.Generator
	EventBus    events.EventBus
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Catalogs == nil {
		vb.RequiredField("Catalogs")
	}
	if c.Characters == nil {
		vb.RequiredField("Characters")
	}
	if c.Roller == nil {
		vb.RequiredField("Roller")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

// Session is the explicit game state shared by every command
type Session struct {
	Characters character.Service
	Inventory  inventory.Service
	Quests     quest.Service
	Combat     combat.Service

	catalogs *gamedata.Catalogs
	eventBus events.EventBus

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// New builds a session. The quest catalog's prerequisite graph is checked
// here, so a cyclic catalog never reaches play.
func New(cfg *Config) (*Session, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	bus := cfg.EventBus
	if bus == nil {
		bus = events.NewBus()
	}

	inventorySvc, err := inventory.NewOrchestrator(&inventory.Config{Items: cfg.Catalogs.Items})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create inventory orchestrator")
	}
	questSvc, err := quest.NewOrchestrator(&quest.Config{Quests: cfg.Catalogs.Quests})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create quest orchestrator")
	}
	combatSvc, err := combat.NewOrchestrator(&combat.Config{
		Roller:      cfg.Roller,
		IDGenerator: cfg.IDGenerator,
		EventBus:    bus,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create combat orchestrator")
	}

	return &Session{
		Characters: cfg.Characters,
		Inventory:  inventorySvc,
		Quests:     questSvc,
		Combat:     combatSvc,
		catalogs:   cfg.Catalogs,
		eventBus:   bus,
		locks:      make(map[string]*sync.Mutex),
	}, nil
}

// Catalogs returns the read-only catalogs
func (s *Session) Catalogs() *gamedata.Catalogs {
	return s.catalogs
}

// EventBus is where combat events are published
func (s *Session) EventBus() events.EventBus {
	return s.eventBus
}

// NewCharacter creates and saves a character. The name must be free.
func (s *Session) NewCharacter(ctx context.Context, name string, class entities.Class) (*entities.Character, error) {
	lock := s.lockFor(name)
	lock.Lock()
	defer lock.Unlock()

	created, err := s.Characters.CreateCharacter(ctx, &character.CreateCharacterInput{Name: name, Class: class})
	if err != nil {
		return nil, err
	}
	c := created.Character

	_, err = s.Characters.LoadCharacter(ctx, &character.LoadCharacterInput{Name: c.Name, Items: s.catalogs.Items})
	switch {
	case err == nil:
		return nil, errors.AlreadyExistsf("a save for %s already exists", c.Name)
	case !errors.IsCharacterNotFound(err):
		return nil, err
	}

	if _, err := s.Characters.SaveCharacter(ctx, &character.SaveCharacterInput{Character: c}); err != nil {
		return nil, err
	}

	return c, nil
}

// Load reads a character without holding its lock
func (s *Session) Load(ctx context.Context, name string) (*entities.Character, error) {
	out, err := s.Characters.LoadCharacter(ctx, &character.LoadCharacterInput{Name: name, Items: s.catalogs.Items})
	if err != nil {
		return nil, err
	}
	return out.Character, nil
}

// Play loads a character under its lock, runs fn, and saves the result if
// fn succeeds. On failure nothing is saved.
func (s *Session) Play(ctx context.Context, name string, fn func(ctx context.Context, c *entities.Character) error) (*entities.Character, error) {
	lock := s.lockFor(name)
	lock.Lock()
	defer lock.Unlock()

	c, err := s.Load(ctx, name)
	if err != nil {
		return nil, err
	}
	if err := fn(ctx, c); err != nil {
		return nil, err
	}
	if _, err := s.Characters.SaveCharacter(ctx, &character.SaveCharacterInput{Character: c}); err != nil {
		return nil, err
	}

	return c, nil
}

// QuestCompletion reports a completed quest and any level ups it paid for
type QuestCompletion struct {
	Quest        *entities.Quest
	Reward       entities.Reward
	Level        int
	LevelsGained int
}

// CompleteQuest completes a quest and then settles the experience it
// granted into level ups. A dead character keeps the raw experience.
func (s *Session) CompleteQuest(ctx context.Context, c *entities.Character, questID string) (*QuestCompletion, error) {
	done, err := s.Quests.CompleteQuest(ctx, &quest.CompleteQuestInput{Character: c, QuestID: questID})
	if err != nil {
		return nil, err
	}

	out := &QuestCompletion{Quest: done.Quest, Reward: done.Reward, Level: c.Level}
	if c.IsDead() {
		return out, nil
	}

	gained, err := s.Characters.GainExperience(ctx, &character.GainExperienceInput{Character: c})
	if err != nil {
		return nil, err
	}
	out.Level = gained.Level
	out.LevelsGained = gained.LevelsGained

	return out, nil
}

func (s *Session) lockFor(name string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	lock, ok := s.locks[name]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[name] = lock
		slog.Debug("Created character lock", "name", name)
	}
	return lock
}
