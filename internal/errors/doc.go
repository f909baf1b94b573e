// Package errors provides the structured error type shared by every part of
// quest-chronicles.
//
// Every failure carries a Code naming the condition (INVENTORY_FULL,
// QUEST_NOT_ACTIVE, CHARACTER_DEAD, ...), a human readable message, an
// optional cause and optional metadata. All codes describe recoverable
// conditions; the caller decides whether to retry, prompt again or abort.
//
// # Basic Usage
//
// Creating errors:
//
//	err := errors.InventoryFull("inventory is full")
//	err := errors.QuestNotFoundf("quest %s not found", questID)
//
// Adding metadata:
//
//	err := errors.ItemNotFoundf("item %s not in inventory", itemID).
//	    WithMeta("character", char.Name)
//
// Wrapping errors:
//
//	if err := repo.Get(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to load character")
//	}
//
// Changing error semantics:
//
//	if os.IsNotExist(err) {
//	    return errors.WrapWithCode(err, errors.CodeMissingDataFile, "quest file not found")
//	}
//
// # Error Checking
//
//	if errors.IsInventoryFull(err) {
//	    // tell the player to drop something
//	}
//
//	code := errors.GetCode(err)
//	message := errors.GetMessage(err)
//
// # Validation Errors
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("name", input.Name, vb)
//	errors.ValidateRange("level", input.Level, 1, 100, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
//
// BuildWithCode returns the same aggregated error under a domain code, for
// example CodeInvalidDataFormat when a catalog record fails validation.
package errors
