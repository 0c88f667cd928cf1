package domain

import "time"

// HostResult is the enumeration status of one visited host. Err is the
// enumeration failure message; when set, SessionsSeen and Matched stay
// zero because the host was skipped.
type HostResult struct {
	Host         string
	SessionsSeen int
	Matched      int
	Err          string
}

func (h HostResult) Failed() bool {
	return h.Err != ""
}

// RunReport accumulates per-host results and per-session outcomes over
// a single traversal. It is owned by one goroutine and needs no
// locking.
type RunReport struct {
	pool      Pool
	user      string
	startedAt time.Time
	hosts     []HostResult
	outcomes  []DisconnectOutcome
}

func NewRunReport(pool Pool, userPrincipalName string, startedAt time.Time) *RunReport {
	return &RunReport{
		pool:      pool,
		user:      userPrincipalName,
		startedAt: startedAt,
	}
}

func (r *RunReport) RecordHostResult(host string, sessionsSeen, matched int) {
	r.hosts = append(r.hosts, HostResult{
		Host:         host,
		SessionsSeen: sessionsSeen,
		Matched:      matched,
	})
}

func (r *RunReport) RecordHostError(host string, err error) {
	result := HostResult{Host: host}
	if err != nil {
		result.Err = err.Error()
	}
	r.hosts = append(r.hosts, result)
}

// RecordDisconnect stores the outcome of one matched session. Exactly
// one outcome is recorded per matched session no matter how many
// attempts it took.
func (r *RunReport) RecordDisconnect(outcome DisconnectOutcome) {
	r.outcomes = append(r.outcomes, outcome)
}

func (r *RunReport) Finalize(finishedAt time.Time) RunSummary {
	summary := RunSummary{
		Pool:       r.pool,
		User:       r.user,
		StartedAt:  r.startedAt,
		FinishedAt: finishedAt,
		Hosts:      r.hosts,
		Outcomes:   r.outcomes,
	}

	for _, host := range r.hosts {
		summary.HostsVisited++
		if host.Failed() {
			summary.HostsFailed++
			continue
		}
		summary.SessionsInspected += host.SessionsSeen
		summary.SessionsMatched += host.Matched
	}

	for _, outcome := range r.outcomes {
		switch outcome.Result {
		case DisconnectResultPrimary:
			summary.DisconnectedPrimary++
		case DisconnectResultFallback:
			summary.DisconnectedFallback++
		case DisconnectResultFailed:
			summary.Failed++
		}
	}

	summary.AnyMatchFound = summary.SessionsMatched > 0

	return summary
}

// RunSummary is the aggregate view of a completed traversal.
type RunSummary struct {
	Pool       Pool
	User       string
	StartedAt  time.Time
	FinishedAt time.Time

	HostsVisited         int
	HostsFailed          int
	SessionsInspected    int
	SessionsMatched      int
	DisconnectedPrimary  int
	DisconnectedFallback int
	Failed               int
	AnyMatchFound        bool

	Hosts    []HostResult
	Outcomes []DisconnectOutcome
}

func (s RunSummary) Duration() time.Duration {
	if s.FinishedAt.Before(s.StartedAt) {
		return 0
	}
	return s.FinishedAt.Sub(s.StartedAt)
}

// RunRecord is the durable trace of one run kept in the journal.
type RunRecord struct {
	ID                   string
	User                 string
	Pool                 Pool
	StartedAt            time.Time
	FinishedAt           time.Time
	HostsVisited         int
	HostsFailed          int
	SessionsMatched      int
	DisconnectedPrimary  int
	DisconnectedFallback int
	Failed               int
}

func NewRunRecord(id string, summary RunSummary) RunRecord {
	return RunRecord{
		ID:                   id,
		User:                 summary.User,
		Pool:                 summary.Pool,
		StartedAt:            summary.StartedAt,
		FinishedAt:           summary.FinishedAt,
		HostsVisited:         summary.HostsVisited,
		HostsFailed:          summary.HostsFailed,
		SessionsMatched:      summary.SessionsMatched,
		DisconnectedPrimary:  summary.DisconnectedPrimary,
		DisconnectedFallback: summary.DisconnectedFallback,
		Failed:               summary.Failed,
	}
}
