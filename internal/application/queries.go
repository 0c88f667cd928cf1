package application

import (
	"context"
	"fmt"
	"sort"

	"github.com/bnema/avd-sessions-cli/internal/domain"
)

type RunHistoryQuery struct {
	Limit int
}

// RunHistory returns past run records, most recent first. A Limit of
// zero or less returns everything.
func (s *DisconnectService) RunHistory(ctx context.Context, query RunHistoryQuery) ([]domain.RunRecord, error) {
	if s.journal == nil {
		return nil, nil
	}

	records, err := s.journal.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list run records: %w", err)
	}

	sort.Slice(records, func(i, j int) bool {
		if records[i].FinishedAt.Equal(records[j].FinishedAt) {
			return records[i].ID < records[j].ID
		}
		return records[i].FinishedAt.After(records[j].FinishedAt)
	})

	if query.Limit > 0 && len(records) > query.Limit {
		records = records[:query.Limit]
	}

	return records, nil
}

// RunByID looks up a single journaled run.
func (s *DisconnectService) RunByID(ctx context.Context, id string) (domain.RunRecord, error) {
	if s.journal == nil {
		return domain.RunRecord{}, domain.ErrRunNotFound
	}

	return s.journal.GetByID(ctx, id)
}
