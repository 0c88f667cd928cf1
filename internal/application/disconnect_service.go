package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/avd-sessions-cli/internal/domain"
	"github.com/bnema/avd-sessions-cli/internal/ports"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// DisconnectService walks every session host of a pool, matches the
// target user's sessions and force-disconnects them one at a time. The
// journal is optional; a nil journal disables run history.
type DisconnectService struct {
	client  ports.PoolClient
	journal ports.RunJournal
	clock   ports.Clock
}

func NewDisconnectService(client ports.PoolClient, journal ports.RunJournal, clock ports.Clock) *DisconnectService {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &DisconnectService{
		client:  client,
		journal: journal,
		clock:   clock,
	}
}

// DisconnectUser runs one full traversal. Pool-level failures (the
// credential probe and the host listing) abort the run; a failure
// enumerating a single host only skips that host, and a failed
// disconnect only marks that session. The returned summary covers
// every visited host even when no session matched.
func (s *DisconnectService) DisconnectUser(ctx context.Context, cmd DisconnectUserCommand) (domain.RunSummary, error) {
	if err := cmd.Validate(); err != nil {
		return domain.RunSummary{}, err
	}

	if err := s.client.VerifyPool(ctx, cmd.Pool); err != nil {
		return domain.RunSummary{}, fmt.Errorf("verify pool access: %w", err)
	}

	hosts, err := s.client.ListSessionHosts(ctx, cmd.Pool)
	if err != nil {
		return domain.RunSummary{}, fmt.Errorf("list session hosts: %w", err)
	}

	report := domain.NewRunReport(cmd.Pool, cmd.UserPrincipalName, s.clock.Now())

	for _, host := range hosts {
		if err := ctx.Err(); err != nil {
			return domain.RunSummary{}, err
		}

		name := host.ShortName()
		sessions, err := s.client.ListUserSessions(ctx, cmd.Pool, name)
		if err != nil {
			log.WithFields(log.Fields{"pool": cmd.Pool.String(), "host": name, "error": err}).Warning("Skipping host, session listing failed")
			report.RecordHostError(name, err)
			continue
		}

		matched := domain.MatchSessions(sessions, cmd.UserPrincipalName)
		report.RecordHostResult(name, len(sessions), len(matched))

		for _, session := range matched {
			outcome := s.disconnectSession(ctx, cmd.Pool, name, session)
			if !outcome.Succeeded() {
				log.WithFields(log.Fields{"host": name, "session": outcome.Session, "error": outcome.Detail}).Warning("Disconnect failed")
			}
			report.RecordDisconnect(outcome)
		}
	}

	summary := report.Finalize(s.clock.Now())
	s.appendJournal(ctx, summary)

	return summary, nil
}

// disconnectSession applies the two-tier disconnect. The primary
// attempt sends the session id exactly as enumeration returned it. On
// failure the id is reduced to its final path segment and the call is
// retried exactly once; the fallback exists to absorb the id format
// varying between backends, not to retry transient faults. The
// fallback error supersedes the primary one.
func (s *DisconnectService) disconnectSession(ctx context.Context, pool domain.Pool, host string, session domain.UserSession) domain.DisconnectOutcome {
	outcome := domain.DisconnectOutcome{
		Host:    host,
		Session: session.ID,
		User:    session.UserPrincipalName,
	}

	primaryErr := s.client.RemoveUserSession(ctx, pool, host, session.ID)
	if primaryErr == nil {
		outcome.Result = domain.DisconnectResultPrimary
		return outcome
	}

	if skipFallback(primaryErr) {
		outcome.Result = domain.DisconnectResultFailed
		outcome.Detail = primaryErr.Error()
		return outcome
	}

	log.WithFields(log.Fields{"host": host, "session": session.ID, "error": primaryErr}).Debug("Primary disconnect failed, retrying with normalized session id")

	fallbackErr := s.client.RemoveUserSession(ctx, pool, host, session.ID.Normalized())
	if fallbackErr == nil {
		outcome.Result = domain.DisconnectResultFallback
		return outcome
	}

	outcome.Result = domain.DisconnectResultFailed
	outcome.Detail = fallbackErr.Error()

	return outcome
}

func (s *DisconnectService) appendJournal(ctx context.Context, summary domain.RunSummary) {
	if s.journal == nil {
		return
	}

	record := domain.NewRunRecord(uuid.NewString(), summary)
	if err := s.journal.Append(ctx, record); err != nil {
		log.WithFields(log.Fields{"run": record.ID, "error": err}).Warning("Journal append failed")
	}
}

func skipFallback(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
