package domain

type Skill struct {
	Key         string
	Description string
	Requires    SkillRequirements
}

type SkillRequirements struct {
	Bins []string
	Env  []string
	// OS restricts the skill to these GOOS values when non-empty.
	OS []string
}

func (r SkillRequirements) IsEmpty() bool {
	return len(r.Bins) == 0 && len(r.Env) == 0 && len(r.OS) == 0
}

// StarterSkillKeys are the skills enabled for new users when the starter set is on.
var StarterSkillKeys = []string{
	"weather",
	"summarize",
	"github",
	"session-logs",
	"canvas",
	"skill-creator",
	"healthcheck",
	"nano-pdf",
	"video-frames",
	"gifgrep",
	"openai-whisper-api",
	"openai-image-gen",
	"notion",
	"apple-notes",
	"apple-reminders",
	"goplaces",
}

var starterSkillKeySet = func() map[string]struct{} {
	set := make(map[string]struct{}, len(StarterSkillKeys))
	for _, key := range StarterSkillKeys {
		set[key] = struct{}{}
	}
	return set
}()

func IsStarterSkill(key string) bool {
	_, ok := starterSkillKeySet[key]
	return ok
}
