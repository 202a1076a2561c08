package interview

import "errors"

var (
	ErrInvalidCategory          = errors.New("invalid category")
	ErrQuestionGenerationFailed = errors.New("not enough questions for category")
	ErrSessionNotFound          = errors.New("interview not found")
	ErrSessionAlreadyCompleted  = errors.New("interview already completed")
	ErrNoQuestionsRemaining     = errors.New("no questions remaining")
	ErrSessionInProgress        = errors.New("interview still in progress")
)
