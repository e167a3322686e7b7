package ports

import "context"

type SelectOption struct {
	Value string
	Label string
	Hint  string
}

type SelectRequest struct {
	Message string
	Options []SelectOption
}

type TextRequest struct {
	Message     string
	Placeholder string
	Mask        bool
}

// Prompter drives one interaction at a time; every call blocks until the user answers.
type Prompter interface {
	Select(ctx context.Context, req SelectRequest) (string, error)
	Note(ctx context.Context, message string, title string) error
	Text(ctx context.Context, req TextRequest) (string, error)
}
