package gamedata

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/KirkDiggler/quest-chronicles/internal/errors"
)

const defaultQuests = `QUEST_ID: start
TITLE: First Steps
DESCRIPTION: Your adventure begins.
REWARD_XP: 50
REWARD_GOLD: 20
REQUIRED_LEVEL: 1
PREREQUISITE: NONE

`

const defaultItems = `ITEM_ID: potion_small
NAME: Small Potion
TYPE: consumable
EFFECT: health:20
COST: 25
DESCRIPTION: Restores 20 HP.

`

// CreateDefaultDataFiles writes a starter quest and item file into dir.
// Existing files are left alone.
func CreateDefaultDataFiles(ctx context.Context, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.WrapWithCodef(err, errors.CodeCorrupted, "cannot create data directory %s", dir)
	}

	files := []struct {
		name    string
		content string
	}{
		{QuestsFile, defaultQuests},
		{ItemsFile, defaultItems},
	}

	for _, f := range files {
		path := filepath.Join(dir, f.name)
		if _, err := os.Stat(path); err == nil {
			continue
		}

		if err := os.WriteFile(path, []byte(f.content), 0o644); err != nil {
			return errors.WrapWithCodef(err, errors.CodeCorrupted, "could not write %s", path)
		}
		slog.InfoContext(ctx, "Created default data file", "path", path)
	}

	return nil
}
