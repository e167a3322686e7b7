package domain

import "errors"

var (
	ErrConfigNotFound    = errors.New("config not found")
	ErrUnknownAuthChoice = errors.New("unknown auth choice")
	ErrPromptAborted     = errors.New("prompt aborted")
	ErrSecretNotFound    = errors.New("secret not found")
)
