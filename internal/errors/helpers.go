package errors

import (
	"errors"
)

// As is a wrapper around errors.As that works with our Error type
func As(err error, target **Error) bool {
	return errors.As(err, target)
}

// Is checks if an error is of a specific type
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// GetCode extracts the error code from an error
func GetCode(err error) Code {
	if err == nil {
		return CodeOK
	}

	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Code
	}

	return CodeInternal
}

// GetMeta extracts metadata from an error
func GetMeta(err error) map[string]any {
	if err == nil {
		return nil
	}

	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Meta
	}

	return nil
}

// GetMessage extracts the user-friendly message from an error
func GetMessage(err error) string {
	if err == nil {
		return ""
	}

	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Message
	}

	return err.Error()
}

// Type checking helpers

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return GetCode(err) == CodeNotFound
}

// IsInvalidArgument checks if an error is an invalid argument error
func IsInvalidArgument(err error) bool {
	return GetCode(err) == CodeInvalidArgument
}

// IsAlreadyExists checks if an error is an already exists error
func IsAlreadyExists(err error) bool {
	return GetCode(err) == CodeAlreadyExists
}

// IsInternal checks if an error is an internal error
func IsInternal(err error) bool {
	return GetCode(err) == CodeInternal
}

// IsInvalidClass checks if an error is an invalid character class error
func IsInvalidClass(err error) bool {
	return GetCode(err) == CodeInvalidClass
}

// IsCharacterDead checks if an error is a character dead error
func IsCharacterDead(err error) bool {
	return GetCode(err) == CodeCharacterDead
}

// IsCharacterNotFound checks if an error is a character not found error
func IsCharacterNotFound(err error) bool {
	return GetCode(err) == CodeCharacterNotFound
}

// IsInvalidAmount checks if an error is an invalid amount error
func IsInvalidAmount(err error) bool {
	return GetCode(err) == CodeInvalidAmount
}

// IsInsufficientGold checks if an error is an insufficient gold error
func IsInsufficientGold(err error) bool {
	return GetCode(err) == CodeInsufficientGold
}

// IsInventoryFull checks if an error is an inventory full error
func IsInventoryFull(err error) bool {
	return GetCode(err) == CodeInventoryFull
}

// IsItemNotFound checks if an error is an item not found error
func IsItemNotFound(err error) bool {
	return GetCode(err) == CodeItemNotFound
}

// IsInvalidItemType checks if an error is an invalid item type error
func IsInvalidItemType(err error) bool {
	return GetCode(err) == CodeInvalidItemType
}

// IsInvalidEffectFormat checks if an error is an invalid effect format error
func IsInvalidEffectFormat(err error) bool {
	return GetCode(err) == CodeInvalidEffectFormat
}

// IsQuestNotFound checks if an error is a quest not found error
func IsQuestNotFound(err error) bool {
	return GetCode(err) == CodeQuestNotFound
}

// IsInsufficientLevel checks if an error is an insufficient level error
func IsInsufficientLevel(err error) bool {
	return GetCode(err) == CodeInsufficientLevel
}

// IsPrerequisiteNotMet checks if an error is a prerequisite not met error
func IsPrerequisiteNotMet(err error) bool {
	return GetCode(err) == CodePrerequisiteNotMet
}

// IsAlreadyCompleted checks if an error is an already completed error
func IsAlreadyCompleted(err error) bool {
	return GetCode(err) == CodeAlreadyCompleted
}

// IsAlreadyActive checks if an error is an already active error
func IsAlreadyActive(err error) bool {
	return GetCode(err) == CodeAlreadyActive
}

// IsQuestNotActive checks if an error is a quest not active error
func IsQuestNotActive(err error) bool {
	return GetCode(err) == CodeQuestNotActive
}

// IsCyclicPrerequisite checks if an error is a cyclic prerequisite error
func IsCyclicPrerequisite(err error) bool {
	return GetCode(err) == CodeCyclicPrerequisite
}

// IsInvalidTarget checks if an error is an invalid target error
func IsInvalidTarget(err error) bool {
	return GetCode(err) == CodeInvalidTarget
}

// IsCombatNotActive checks if an error is a combat not active error
func IsCombatNotActive(err error) bool {
	return GetCode(err) == CodeCombatNotActive
}

// IsInvalidDataFormat checks if an error is an invalid data format error
func IsInvalidDataFormat(err error) bool {
	return GetCode(err) == CodeInvalidDataFormat
}

// IsMissingDataFile checks if an error is a missing data file error
func IsMissingDataFile(err error) bool {
	return GetCode(err) == CodeMissingDataFile
}

// IsCorrupted checks if an error is a corrupted data error
func IsCorrupted(err error) bool {
	return GetCode(err) == CodeCorrupted
}

// IsInvalidSaveData checks if an error is an invalid save data error
func IsInvalidSaveData(err error) bool {
	return GetCode(err) == CodeInvalidSaveData
}
