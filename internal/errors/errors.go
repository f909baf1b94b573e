package errors

import (
	"errors"
	"fmt"
	"maps"
)

// Error represents a structured error with code, message, and metadata
type Error struct {
	Code    Code           `json:"code"`
	Message string         `json:"message"`
	Cause   error          `json:"-"`
	Meta    map[string]any `json:"meta,omitempty"`
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is checks if the target error is of the same type
func (e *Error) Is(target error) bool {
	var targetErr *Error
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// WithMeta adds metadata to the error
func (e *Error) WithMeta(key string, value any) *Error {
	if e.Meta == nil {
		e.Meta = make(map[string]any)
	}
	e.Meta[key] = value
	return e
}

// WithMetaMap adds multiple metadata entries
func (e *Error) WithMetaMap(meta map[string]any) *Error {
	if e.Meta == nil {
		e.Meta = make(map[string]any)
	}
	maps.Copy(e.Meta, meta)
	return e
}

// New creates a new error with the given code and message
func New(code Code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Newf creates a new error with a formatted message
func Newf(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap wraps an existing error, preserving its code if it's an Error
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	var existingErr *Error
	if errors.As(err, &existingErr) {
		return &Error{
			Code:    existingErr.Code,
			Message: message,
			Cause:   err,
			Meta:    existingErr.Meta,
		}
	}

	return &Error{
		Code:    CodeInternal,
		Message: message,
		Cause:   err,
	}
}

// Wrapf wraps an error with a formatted message
func Wrapf(err error, format string, args ...any) *Error {
	return Wrap(err, fmt.Sprintf(format, args...))
}

// WrapWithCode wraps an error with a specific code
func WrapWithCode(err error, code Code, message string) *Error {
	if err == nil {
		return nil
	}

	var existingErr *Error
	meta := make(map[string]any)
	if errors.As(err, &existingErr) && existingErr.Meta != nil {
		maps.Copy(meta, existingErr.Meta)
	}

	return &Error{
		Code:    code,
		Message: message,
		Cause:   err,
		Meta:    meta,
	}
}

// WrapWithCodef wraps an error with a specific code and formatted message
func WrapWithCodef(err error, code Code, format string, args ...any) *Error {
	return WrapWithCode(err, code, fmt.Sprintf(format, args...))
}

// Constructor functions for common error types

// NotFound creates a not found error
func NotFound(message string) *Error {
	return New(CodeNotFound, message)
}

// NotFoundf creates a not found error with formatted message
func NotFoundf(format string, args ...any) *Error {
	return Newf(CodeNotFound, format, args...)
}

// InvalidArgument creates an invalid argument error
func InvalidArgument(message string) *Error {
	return New(CodeInvalidArgument, message)
}

// InvalidArgumentf creates an invalid argument error with formatted message
func InvalidArgumentf(format string, args ...any) *Error {
	return Newf(CodeInvalidArgument, format, args...)
}

// AlreadyExists creates an already exists error
func AlreadyExists(message string) *Error {
	return New(CodeAlreadyExists, message)
}

// AlreadyExistsf creates an already exists error with formatted message
func AlreadyExistsf(format string, args ...any) *Error {
	return Newf(CodeAlreadyExists, format, args...)
}

// Internal creates an internal error
func Internal(message string) *Error {
	return New(CodeInternal, message)
}

// Internalf creates an internal error with formatted message
func Internalf(format string, args ...any) *Error {
	return Newf(CodeInternal, format, args...)
}

// InvalidClass creates an invalid character class error
func InvalidClass(message string) *Error {
	return New(CodeInvalidClass, message)
}

// InvalidClassf creates an invalid character class error with formatted message
func InvalidClassf(format string, args ...any) *Error {
	return Newf(CodeInvalidClass, format, args...)
}

// CharacterDead creates a character dead error
func CharacterDead(message string) *Error {
	return New(CodeCharacterDead, message)
}

// CharacterDeadf creates a character dead error with formatted message
func CharacterDeadf(format string, args ...any) *Error {
	return Newf(CodeCharacterDead, format, args...)
}

// CharacterNotFound creates a character not found error
func CharacterNotFound(message string) *Error {
	return New(CodeCharacterNotFound, message)
}

// CharacterNotFoundf creates a character not found error with formatted message
func CharacterNotFoundf(format string, args ...any) *Error {
	return Newf(CodeCharacterNotFound, format, args...)
}

// InvalidAmount creates an invalid amount error
func InvalidAmount(message string) *Error {
	return New(CodeInvalidAmount, message)
}

// InvalidAmountf creates an invalid amount error with formatted message
func InvalidAmountf(format string, args ...any) *Error {
	return Newf(CodeInvalidAmount, format, args...)
}

// InsufficientGold creates an insufficient gold error
func InsufficientGold(message string) *Error {
	return New(CodeInsufficientGold, message)
}

// InsufficientGoldf creates an insufficient gold error with formatted message
func InsufficientGoldf(format string, args ...any) *Error {
	return Newf(CodeInsufficientGold, format, args...)
}

// InventoryFull creates an inventory full error
func InventoryFull(message string) *Error {
	return New(CodeInventoryFull, message)
}

// InventoryFullf creates an inventory full error with formatted message
func InventoryFullf(format string, args ...any) *Error {
	return Newf(CodeInventoryFull, format, args...)
}

// ItemNotFound creates an item not found error
func ItemNotFound(message string) *Error {
	return New(CodeItemNotFound, message)
}

// ItemNotFoundf creates an item not found error with formatted message
func ItemNotFoundf(format string, args ...any) *Error {
	return Newf(CodeItemNotFound, format, args...)
}

// InvalidItemType creates an invalid item type error
func InvalidItemType(message string) *Error {
	return New(CodeInvalidItemType, message)
}

// InvalidItemTypef creates an invalid item type error with formatted message
func InvalidItemTypef(format string, args ...any) *Error {
	return Newf(CodeInvalidItemType, format, args...)
}

// InvalidEffectFormat creates an invalid effect format error
func InvalidEffectFormat(message string) *Error {
	return New(CodeInvalidEffectFormat, message)
}

// InvalidEffectFormatf creates an invalid effect format error with formatted message
func InvalidEffectFormatf(format string, args ...any) *Error {
	return Newf(CodeInvalidEffectFormat, format, args...)
}

// QuestNotFound creates a quest not found error
func QuestNotFound(message string) *Error {
	return New(CodeQuestNotFound, message)
}

// QuestNotFoundf creates a quest not found error with formatted message
func QuestNotFoundf(format string, args ...any) *Error {
	return Newf(CodeQuestNotFound, format, args...)
}

// InsufficientLevel creates an insufficient level error
func InsufficientLevel(message string) *Error {
	return New(CodeInsufficientLevel, message)
}

// InsufficientLevelf creates an insufficient level error with formatted message
func InsufficientLevelf(format string, args ...any) *Error {
	return Newf(CodeInsufficientLevel, format, args...)
}

// PrerequisiteNotMet creates a prerequisite not met error
func PrerequisiteNotMet(message string) *Error {
	return New(CodePrerequisiteNotMet, message)
}

// PrerequisiteNotMetf creates a prerequisite not met error with formatted message
func PrerequisiteNotMetf(format string, args ...any) *Error {
	return Newf(CodePrerequisiteNotMet, format, args...)
}

// AlreadyCompleted creates an already completed error
func AlreadyCompleted(message string) *Error {
	return New(CodeAlreadyCompleted, message)
}

// AlreadyCompletedf creates an already completed error with formatted message
func AlreadyCompletedf(format string, args ...any) *Error {
	return Newf(CodeAlreadyCompleted, format, args...)
}

// AlreadyActive creates an already active error
func AlreadyActive(message string) *Error {
	return New(CodeAlreadyActive, message)
}

// AlreadyActivef creates an already active error with formatted message
func AlreadyActivef(format string, args ...any) *Error {
	return Newf(CodeAlreadyActive, format, args...)
}

// QuestNotActive creates a quest not active error
func QuestNotActive(message string) *Error {
	return New(CodeQuestNotActive, message)
}

// QuestNotActivef creates a quest not active error with formatted message
func QuestNotActivef(format string, args ...any) *Error {
	return Newf(CodeQuestNotActive, format, args...)
}

// CyclicPrerequisite creates a cyclic prerequisite error
func CyclicPrerequisite(message string) *Error {
	return New(CodeCyclicPrerequisite, message)
}

// CyclicPrerequisitef creates a cyclic prerequisite error with formatted message
func CyclicPrerequisitef(format string, args ...any) *Error {
	return Newf(CodeCyclicPrerequisite, format, args...)
}

// InvalidTarget creates an invalid target error
func InvalidTarget(message string) *Error {
	return New(CodeInvalidTarget, message)
}

// InvalidTargetf creates an invalid target error with formatted message
func InvalidTargetf(format string, args ...any) *Error {
	return Newf(CodeInvalidTarget, format, args...)
}

// CombatNotActive creates a combat not active error
func CombatNotActive(message string) *Error {
	return New(CodeCombatNotActive, message)
}

// CombatNotActivef creates a combat not active error with formatted message
func CombatNotActivef(format string, args ...any) *Error {
	return Newf(CodeCombatNotActive, format, args...)
}

// InvalidDataFormat creates an invalid data format error
func InvalidDataFormat(message string) *Error {
	return New(CodeInvalidDataFormat, message)
}

// InvalidDataFormatf creates an invalid data format error with formatted message
func InvalidDataFormatf(format string, args ...any) *Error {
	return Newf(CodeInvalidDataFormat, format, args...)
}

// MissingDataFile creates a missing data file error
func MissingDataFile(message string) *Error {
	return New(CodeMissingDataFile, message)
}

// MissingDataFilef creates a missing data file error with formatted message
func MissingDataFilef(format string, args ...any) *Error {
	return Newf(CodeMissingDataFile, format, args...)
}

// Corrupted creates a corrupted data error
func Corrupted(message string) *Error {
	return New(CodeCorrupted, message)
}

// Corruptedf creates a corrupted data error with formatted message
func Corruptedf(format string, args ...any) *Error {
	return Newf(CodeCorrupted, format, args...)
}

// InvalidSaveData creates an invalid save data error
func InvalidSaveData(message string) *Error {
	return New(CodeInvalidSaveData, message)
}

// InvalidSaveDataf creates an invalid save data error with formatted message
func InvalidSaveDataf(format string, args ...any) *Error {
	return Newf(CodeInvalidSaveData, format, args...)
}
