package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLastSegment(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
	}{
		{name: "qualified host name", path: "pool-01/avd-host-3.corp.example.com", want: "avd-host-3.corp.example.com"},
		{name: "full resource path", path: "/subscriptions/s/resourceGroups/rg/providers/Microsoft.DesktopVirtualization/hostPools/p/sessionHosts/h/userSessions/42", want: "42"},
		{name: "bare id unchanged", path: "42", want: "42"},
		{name: "trailing slash ignored", path: "hostPools/p/", want: "p"},
		{name: "empty", path: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LastSegment(tt.path))
		})
	}
}

func TestSessionIDNormalized(t *testing.T) {
	qualified := SessionID("/subscriptions/s/resourceGroups/rg/providers/Microsoft.DesktopVirtualization/hostPools/p/sessionHosts/h/userSessions/7")
	assert.Equal(t, SessionID("7"), qualified.Normalized())

	bare := SessionID("7")
	assert.Equal(t, bare, bare.Normalized())
}

func TestSessionHostShortName(t *testing.T) {
	host := SessionHost{Name: "prod-01/avd-host-2.corp.example.com"}
	assert.Equal(t, "avd-host-2.corp.example.com", host.ShortName())

	unqualified := SessionHost{Name: "avd-host-2"}
	assert.Equal(t, "avd-host-2", unqualified.ShortName())
}

func TestPoolValidate(t *testing.T) {
	tests := []struct {
		name    string
		pool    Pool
		wantErr string
	}{
		{name: "valid", pool: Pool{ResourceGroup: "rg-desktops", Name: "prod-01"}},
		{name: "missing resource group", pool: Pool{Name: "prod-01"}, wantErr: "resource group is required"},
		{name: "missing pool name", pool: Pool{ResourceGroup: "rg-desktops"}, wantErr: "host pool name is required"},
		{name: "whitespace pool name", pool: Pool{ResourceGroup: "rg-desktops", Name: "  "}, wantErr: "host pool name is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.pool.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}

func TestMatchSessionsExactMatch(t *testing.T) {
	sessions := []UserSession{
		{ID: "1", UserPrincipalName: "alice@example.com", State: SessionStateActive},
		{ID: "2", UserPrincipalName: "bob@example.com", State: SessionStateActive},
		{ID: "3", UserPrincipalName: "Alice@example.com", State: SessionStateDisconnected},
		{ID: "4", UserPrincipalName: "alice@example.com ", State: SessionStateActive},
	}

	matched := MatchSessions(sessions, "alice@example.com")

	require.Len(t, matched, 1)
	assert.Equal(t, SessionID("1"), matched[0].ID)
}

func TestMatchSessionsEmptyInput(t *testing.T) {
	assert.Empty(t, MatchSessions(nil, "alice@example.com"))
	assert.Empty(t, MatchSessions([]UserSession{}, "alice@example.com"))
}

func TestParseSessionState(t *testing.T) {
	assert.Equal(t, SessionStateActive, ParseSessionState("Active"))
	assert.Equal(t, SessionStateDisconnected, ParseSessionState("Disconnected"))
	assert.Equal(t, SessionStatePending, ParseSessionState("Pending"))
	assert.Equal(t, SessionStateUnknown, ParseSessionState("LogOff"))
	assert.Equal(t, SessionStateUnknown, ParseSessionState(""))
}

func TestDisconnectOutcomeSucceeded(t *testing.T) {
	assert.True(t, DisconnectOutcome{Result: DisconnectResultPrimary}.Succeeded())
	assert.True(t, DisconnectOutcome{Result: DisconnectResultFallback}.Succeeded())
	assert.False(t, DisconnectOutcome{Result: DisconnectResultFailed}.Succeeded())
}

func TestRunReportFinalizeCounters(t *testing.T) {
	started := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	report := NewRunReport(Pool{ResourceGroup: "rg", Name: "prod-01"}, "alice@example.com", started)

	report.RecordHostResult("host-a", 2, 1)
	report.RecordHostError("host-b", errors.New("listing sessions timed out"))
	report.RecordHostResult("host-c", 3, 2)

	report.RecordDisconnect(DisconnectOutcome{Host: "host-a", Session: "1", Result: DisconnectResultPrimary})
	report.RecordDisconnect(DisconnectOutcome{Host: "host-c", Session: "2", Result: DisconnectResultFallback})
	report.RecordDisconnect(DisconnectOutcome{Host: "host-c", Session: "3", Result: DisconnectResultFailed, Detail: "session already gone"})

	summary := report.Finalize(started.Add(3 * time.Second))

	assert.Equal(t, 3, summary.HostsVisited)
	assert.Equal(t, 1, summary.HostsFailed)
	assert.Equal(t, 5, summary.SessionsInspected)
	assert.Equal(t, 3, summary.SessionsMatched)
	assert.Equal(t, 1, summary.DisconnectedPrimary)
	assert.Equal(t, 1, summary.DisconnectedFallback)
	assert.Equal(t, 1, summary.Failed)
	assert.True(t, summary.AnyMatchFound)
	assert.Equal(t, 3*time.Second, summary.Duration())

	require.Len(t, summary.Hosts, 3)
	assert.True(t, summary.Hosts[1].Failed())
	assert.Equal(t, "listing sessions timed out", summary.Hosts[1].Err)
}

func TestRunReportFinalizeNoMatches(t *testing.T) {
	report := NewRunReport(Pool{ResourceGroup: "rg", Name: "prod-01"}, "alice@example.com", time.Now())

	report.RecordHostResult("host-a", 4, 0)
	report.RecordHostResult("host-b", 0, 0)

	summary := report.Finalize(time.Now())

	assert.False(t, summary.AnyMatchFound)
	assert.Equal(t, 4, summary.SessionsInspected)
	assert.Zero(t, summary.SessionsMatched)
	assert.Empty(t, summary.Outcomes)
}

func TestNewRunRecordCopiesCounters(t *testing.T) {
	summary := RunSummary{
		Pool:                 Pool{ResourceGroup: "rg", Name: "prod-01"},
		User:                 "alice@example.com",
		StartedAt:            time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC),
		FinishedAt:           time.Date(2026, 3, 2, 9, 0, 4, 0, time.UTC),
		HostsVisited:         2,
		HostsFailed:          1,
		SessionsMatched:      2,
		DisconnectedPrimary:  1,
		DisconnectedFallback: 1,
	}

	record := NewRunRecord("run-123", summary)

	assert.Equal(t, "run-123", record.ID)
	assert.Equal(t, summary.User, record.User)
	assert.Equal(t, summary.Pool, record.Pool)
	assert.Equal(t, summary.HostsVisited, record.HostsVisited)
	assert.Equal(t, summary.HostsFailed, record.HostsFailed)
	assert.Equal(t, summary.DisconnectedPrimary, record.DisconnectedPrimary)
	assert.Equal(t, summary.DisconnectedFallback, record.DisconnectedFallback)
}
