package errors

// Code represents an error code
type Code string

// Generic error codes
const (
	CodeOK              Code = "OK"
	CodeInvalidArgument Code = "INVALID_ARGUMENT"
	CodeNotFound        Code = "NOT_FOUND"
	CodeAlreadyExists   Code = "ALREADY_EXISTS"
	CodeInternal        Code = "INTERNAL"
)

// Character error codes
const (
	CodeInvalidClass      Code = "INVALID_CLASS"
	CodeCharacterDead     Code = "CHARACTER_DEAD"
	CodeCharacterNotFound Code = "CHARACTER_NOT_FOUND"
	CodeInvalidAmount     Code = "INVALID_AMOUNT"
)

// Inventory and economy error codes
const (
	CodeInsufficientGold    Code = "INSUFFICIENT_GOLD"
	CodeInventoryFull       Code = "INVENTORY_FULL"
	CodeItemNotFound        Code = "ITEM_NOT_FOUND"
	CodeInvalidItemType     Code = "INVALID_ITEM_TYPE"
	CodeInvalidEffectFormat Code = "INVALID_EFFECT_FORMAT"
)

// Quest error codes
const (
	CodeQuestNotFound      Code = "QUEST_NOT_FOUND"
	CodeInsufficientLevel  Code = "INSUFFICIENT_LEVEL"
	CodePrerequisiteNotMet Code = "PREREQUISITE_NOT_MET"
	CodeAlreadyCompleted   Code = "ALREADY_COMPLETED"
	CodeAlreadyActive      Code = "ALREADY_ACTIVE"
	CodeQuestNotActive     Code = "QUEST_NOT_ACTIVE"
	CodeCyclicPrerequisite Code = "CYCLIC_PREREQUISITE"
)

// Combat error codes
const (
	CodeInvalidTarget   Code = "INVALID_TARGET"
	CodeCombatNotActive Code = "COMBAT_NOT_ACTIVE"
)

// Data and save file error codes
const (
	CodeInvalidDataFormat Code = "INVALID_DATA_FORMAT"
	CodeMissingDataFile   Code = "MISSING_DATA_FILE"
	CodeCorrupted         Code = "CORRUPTED"
	CodeInvalidSaveData   Code = "INVALID_SAVE_DATA"
)

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}
