package ports

import (
	"context"

	"github.com/bnema/avd-sessions-cli/internal/domain"
)

type RunJournal interface {
	Append(ctx context.Context, record domain.RunRecord) error
	List(ctx context.Context) ([]domain.RunRecord, error)
	GetByID(ctx context.Context, id string) (domain.RunRecord, error)
}
