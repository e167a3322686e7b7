package ports

import (
	"context"

	"github.com/bnema/agent-onboard/internal/domain"
)

type ConfigRepository interface {
	Load(ctx context.Context) (domain.Config, error)
	Save(ctx context.Context, config domain.Config) error
}
