package domain

type AuthMethod string

const (
	AuthMethodAPIKey AuthMethod = "api_key"
	AuthMethodOAuth  AuthMethod = "oauth"
	AuthMethodToken  AuthMethod = "token"
)

// AuthChoice identifies a concrete authentication method, or AuthChoiceSkip.
type AuthChoice string

const AuthChoiceSkip AuthChoice = "skip"

func (c AuthChoice) IsSkip() bool {
	return c == AuthChoiceSkip
}

type AuthOption struct {
	Value AuthChoice
	Label string
	Hint  string
}

// AuthGroup is one provider and the auth methods it offers, in display order.
type AuthGroup struct {
	ID      string
	Label   string
	Hint    string
	Options []AuthOption
}

func (g AuthGroup) HasOptions() bool {
	return len(g.Options) > 0
}

// AuthProfile records a completed auth choice for a provider.
type AuthProfile struct {
	Provider  string
	Choice    AuthChoice
	Method    AuthMethod
	SecretRef string
}
