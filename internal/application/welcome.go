package application

import (
	"strings"

	"github.com/bnema/agent-onboard/internal/domain"
)

// WelcomeEvents returns the system events for a first turn: the welcome
// instruction when the starter set is on and the session is new.
func WelcomeEvents(config domain.Config, newSession bool) []string {
	if !newSession || !config.Skills.StarterSet {
		return nil
	}

	return []string{domain.WelcomeSystemInstruction}
}

// PrependSystemEvents puts each event on its own "System:" line ahead of body.
func PrependSystemEvents(events []string, body string) string {
	if len(events) == 0 {
		return body
	}

	var b strings.Builder
	for _, event := range events {
		event = strings.TrimSpace(event)
		if event == "" {
			continue
		}
		b.WriteString("System: ")
		b.WriteString(event)
		b.WriteString("\n")
	}
	if b.Len() == 0 {
		return body
	}

	b.WriteString("\n")
	b.WriteString(body)
	return b.String()
}
