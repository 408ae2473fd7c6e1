package evaluation

import "errors"

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrWrongPhase        = errors.New("operation not allowed in current phase")
	ErrSessionClosed     = errors.New("session cancelled")
	ErrInconsistentScore = errors.New("score does not match answered questions")
)
