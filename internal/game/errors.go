package game

import "errors"

// Validation rejections. These are expected domain conditions: the
// command is refused with a named reason and no state is mutated.
var (
	ErrQuestNotFound     = errors.New("quest not found")
	ErrQuestNotReady     = errors.New("quest is not open for bids")
	ErrQuestNotAwarded   = errors.New("quest is not awarded")
	ErrBidOutOfRange     = errors.New("bid amount out of range")
	ErrUnknownStance     = errors.New("unknown stance")
	ErrEmptyParty        = errors.New("party is empty")
	ErrMercNotFound      = errors.New("mercenary not found")
	ErrMercBusy          = errors.New("mercenary is busy")
	ErrCandidateNotFound = errors.New("candidate not found")
	ErrAlreadyHired      = errors.New("candidate already hired")
	ErrInsufficientGold  = errors.New("insufficient gold")
)
