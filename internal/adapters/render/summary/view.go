package summary

import (
	"fmt"
	"strings"

	"github.com/bnema/agent-onboard/internal/application"
	"github.com/bnema/agent-onboard/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

type RenderOptions struct {
	ConfigPath string
	// ShowAllSkills lists skills that were not included, with what they miss.
	ShowAllSkills bool
}

func renderView(result application.OnboardResult, opts RenderOptions, s styles) string {
	lines := []string{
		s.title.Render("Onboarding complete"),
	}
	if opts.ConfigPath != "" {
		lines = append(lines, s.header.Render("config: "+opts.ConfigPath))
	}

	lines = append(lines, s.section.Render(renderAuth(result, s)))
	lines = append(lines, s.section.Render(RenderSkills(result.Skills, opts.ShowAllSkills, s)))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderAuth(result application.OnboardResult, s styles) string {
	if result.Choice.IsSkip() || result.Profile == nil {
		return lipgloss.JoinHorizontal(lipgloss.Top,
			s.label.Render("auth: "),
			s.empty.Render("skipped, run onboard again to sign in"),
		)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, s.label.Render("auth: "), s.value.Render(string(result.Choice))),
		s.label.Render(fmt.Sprintf("provider: %s (%s)", result.Profile.Provider, methodLabel(result.Profile.Method))),
		s.label.Render("credential: "+credentialLabel(result.Profile.SecretRef)),
	)
}

// RenderSkills lists included skills, and the rest when all is set.
func RenderSkills(statuses []application.SkillStatus, all bool, s styles) string {
	included := 0
	lines := make([]string, 0, len(statuses)+1)
	for _, status := range statuses {
		if status.Included {
			included++
			lines = append(lines, s.included.Render("  ✓ "+status.Skill.Key))
			continue
		}
		if all {
			lines = append(lines, s.missing.Render(fmt.Sprintf("  · %s%s", status.Skill.Key, missingSuffix(status.Missing))))
		}
	}

	header := s.label.Render(fmt.Sprintf("skills: %d included", included))
	if len(lines) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, header, s.empty.Render("  none"))
	}

	return lipgloss.JoinVertical(lipgloss.Left, append([]string{header}, lines...)...)
}

// RenderSkillList renders a standalone skill listing with default styles.
func RenderSkillList(statuses []application.SkillStatus, all bool) string {
	return RenderSkills(statuses, all, newStyles())
}

func methodLabel(method domain.AuthMethod) string {
	switch method {
	case domain.AuthMethodAPIKey:
		return "API key"
	case domain.AuthMethodOAuth:
		return "OAuth"
	case domain.AuthMethodToken:
		return "token"
	case "":
		return "none"
	default:
		return string(method)
	}
}

func credentialLabel(ref string) string {
	switch {
	case ref == "":
		return "pending sign-in"
	case strings.HasPrefix(ref, "env:"):
		return "from $" + strings.TrimPrefix(ref, "env:")
	default:
		return "stored as " + ref
	}
}

func missingSuffix(missing []string) string {
	if len(missing) == 0 {
		return ""
	}

	return " (missing " + strings.Join(missing, ", ") + ")"
}
