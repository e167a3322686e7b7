package application

import (
	"os"
	"os/exec"
	"runtime"
	"slices"

	"github.com/bnema/agent-onboard/internal/domain"
)

// Environment answers the runtime questions skill requirements ask.
type Environment struct {
	GOOS      string
	LookPath  func(file string) (string, error)
	LookupEnv func(key string) (string, bool)
}

func SystemEnvironment() Environment {
	return Environment{
		GOOS:      runtime.GOOS,
		LookPath:  exec.LookPath,
		LookupEnv: os.LookupEnv,
	}
}

func (e Environment) withDefaults() Environment {
	system := SystemEnvironment()
	if e.GOOS == "" {
		e.GOOS = system.GOOS
	}
	if e.LookPath == nil {
		e.LookPath = system.LookPath
	}
	if e.LookupEnv == nil {
		e.LookupEnv = system.LookupEnv
	}
	return e
}

var skillRegistry = []domain.Skill{
	{Key: "weather", Description: "Current weather and forecasts", Requires: domain.SkillRequirements{Bins: []string{"curl"}}},
	{Key: "summarize", Description: "Summarize links, files and videos", Requires: domain.SkillRequirements{Bins: []string{"summarize"}}},
	{Key: "github", Description: "Issues, PRs and CI through gh", Requires: domain.SkillRequirements{Bins: []string{"gh"}}},
	{Key: "session-logs", Description: "Search past session logs", Requires: domain.SkillRequirements{Bins: []string{"jq", "rg"}}},
	{Key: "canvas", Description: "Render HTML canvases"},
	{Key: "skill-creator", Description: "Create and package new skills"},
	{Key: "healthcheck", Description: "Check the agent's own setup"},
	{Key: "nano-pdf", Description: "Edit PDFs with natural language", Requires: domain.SkillRequirements{Bins: []string{"nano-pdf"}}},
	{Key: "video-frames", Description: "Extract frames from videos", Requires: domain.SkillRequirements{Bins: []string{"ffmpeg"}}},
	{Key: "gifgrep", Description: "Search GIF providers", Requires: domain.SkillRequirements{Bins: []string{"gifgrep"}}},
	{Key: "openai-whisper-api", Description: "Transcribe audio with Whisper", Requires: domain.SkillRequirements{Bins: []string{"curl"}, Env: []string{"OPENAI_API_KEY"}}},
	{Key: "openai-image-gen", Description: "Generate images", Requires: domain.SkillRequirements{Env: []string{"OPENAI_API_KEY"}}},
	{Key: "notion", Description: "Read and write Notion pages", Requires: domain.SkillRequirements{Env: []string{"NOTION_API_KEY"}}},
	{Key: "apple-notes", Description: "Manage Apple Notes", Requires: domain.SkillRequirements{Bins: []string{"memo"}, OS: []string{"darwin"}}},
	{Key: "apple-reminders", Description: "Manage Apple Reminders", Requires: domain.SkillRequirements{Bins: []string{"remindctl"}, OS: []string{"darwin"}}},
	{Key: "goplaces", Description: "Look up places with Google Places", Requires: domain.SkillRequirements{Bins: []string{"goplaces"}, Env: []string{"GOOGLE_PLACES_API_KEY"}}},
	{Key: "coding-agent", Description: "Delegate coding tasks to another agent", Requires: domain.SkillRequirements{Bins: []string{"codex"}}},
	{Key: "tmux", Description: "Drive tmux sessions", Requires: domain.SkillRequirements{Bins: []string{"tmux"}}},
}

// Skills returns the known skills in registry order.
func Skills() []domain.Skill {
	return slices.Clone(skillRegistry)
}

// ApplyDefaultStarterSkills turns on the starter set, keeping every other skill setting.
func ApplyDefaultStarterSkills(config domain.Config) domain.Config {
	config.Skills.StarterSet = true
	config.Skills.Enabled = slices.Clone(config.Skills.Enabled)
	config.Skills.Disabled = slices.Clone(config.Skills.Disabled)
	return config
}

// ShouldIncludeSkill applies explicit disables first, then explicit enables,
// then auto-includes starter skills whose requirements are met.
func ShouldIncludeSkill(skill domain.Skill, skills domain.SkillsConfig, env Environment) bool {
	if slices.Contains(skills.Disabled, skill.Key) {
		return false
	}
	if slices.Contains(skills.Enabled, skill.Key) {
		return true
	}
	if !skills.StarterSet || !domain.IsStarterSkill(skill.Key) {
		return false
	}

	return len(MissingRequirements(skill.Requires, env)) == 0
}

// MissingRequirements lists unmet requirements as "bin:x", "env:X" or "os:y".
func MissingRequirements(req domain.SkillRequirements, env Environment) []string {
	if req.IsEmpty() {
		return nil
	}
	env = env.withDefaults()

	var missing []string
	if len(req.OS) > 0 && !slices.Contains(req.OS, env.GOOS) {
		for _, goos := range req.OS {
			missing = append(missing, "os:"+goos)
		}
	}
	for _, bin := range req.Bins {
		if _, err := env.LookPath(bin); err != nil {
			missing = append(missing, "bin:"+bin)
		}
	}
	for _, key := range req.Env {
		if value, ok := env.LookupEnv(key); !ok || value == "" {
			missing = append(missing, "env:"+key)
		}
	}

	return missing
}

type SkillStatus struct {
	Skill    domain.Skill
	Starter  bool
	Included bool
	Missing  []string
}

func SkillStatuses(skills domain.SkillsConfig, env Environment) []SkillStatus {
	statuses := make([]SkillStatus, 0, len(skillRegistry))
	for _, skill := range skillRegistry {
		statuses = append(statuses, SkillStatus{
			Skill:    skill,
			Starter:  domain.IsStarterSkill(skill.Key),
			Included: ShouldIncludeSkill(skill, skills, env),
			Missing:  MissingRequirements(skill.Requires, env),
		})
	}

	return statuses
}
