package domain

// ConsoleState represents the current interaction state of the console
type ConsoleState string

const (
	StateHome               ConsoleState = "home"
	StateWaitingWord        ConsoleState = "waiting_word"
	StateWaitingTranslation ConsoleState = "waiting_translation"
	StateConfirmDelete      ConsoleState = "confirm_delete"
	StateConfirmReset       ConsoleState = "confirm_reset"
	StatePlaying            ConsoleState = "playing"
)

// StateData holds temporary data for the current state
type StateData struct {
	State       ConsoleState
	CurrentWord string // word being added or deleted
	TwoPlayer   bool   // mode of the active round, used by reset
}
