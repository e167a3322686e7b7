package domain

import "strings"

// WelcomeSystemInstruction is prepended to the first turn of a new user's session.
var WelcomeSystemInstruction = strings.Join([]string{
	"[First-time user — welcome them]",
	"This is the user's very first message to you.",
	"Start your response with a short, warm welcome (2-3 sentences).",
	"Briefly mention a few things you can help with:",
	"answering questions, summarizing links, writing and editing text,",
	"weather, reminders, notes, web search, and code tasks.",
	"Then answer their actual message below.",
	"Keep the welcome concise — don't overwhelm them.",
}, " ")
