package report

import (
	"fmt"
	"time"

	"github.com/bnema/avd-sessions-cli/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

func renderView(summary domain.RunSummary, s styles) string {
	lines := []string{
		s.title.Render("Session Disconnect Report"),
		s.header.Render(fmt.Sprintf("pool: %s  user: %s", summary.Pool, summary.User)),
		s.section.Render(renderHosts(summary, s)),
	}

	if !summary.AnyMatchFound {
		lines = append(lines,
			s.section.Render(s.empty.Render(fmt.Sprintf("No active sessions for %s in this pool.", summary.User))),
			s.section.Render(renderTotals(summary, s)),
		)
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	lines = append(lines,
		s.section.Render(renderOutcomes(summary, s)),
		s.section.Render(renderTotals(summary, s)),
	)

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderHosts(summary domain.RunSummary, s styles) string {
	parts := []string{
		s.detail.Render(fmt.Sprintf("hosts: %d", summary.HostsVisited)),
	}

	for _, host := range summary.Hosts {
		parts = append(parts, hostLine(host, s))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func hostLine(host domain.HostResult, s styles) string {
	name := s.host.Render(host.Host)
	if host.Failed() {
		return lipgloss.JoinHorizontal(
			lipgloss.Top,
			name,
			" ",
			s.warning.Render("skipped"),
			" ",
			s.meta.Render(fmt.Sprintf("(%s)", host.Err)),
		)
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		name,
		" ",
		s.detail.Render(fmt.Sprintf("%d sessions, %d matched", host.SessionsSeen, host.Matched)),
	)
}

func renderOutcomes(summary domain.RunSummary, s styles) string {
	parts := make([]string, 0, len(summary.Outcomes))
	for _, outcome := range summary.Outcomes {
		parts = append(parts, outcomeLine(outcome, s))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func outcomeLine(outcome domain.DisconnectOutcome, s styles) string {
	segments := []string{
		s.detail.Render(fmt.Sprintf("%s/%s", outcome.Host, outcome.Session)),
		" ",
		resultLabel(outcome, s),
	}

	if outcome.Detail != "" {
		segments = append(segments, " ", s.meta.Render(fmt.Sprintf("(%s)", outcome.Detail)))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, segments...)
}

func resultLabel(outcome domain.DisconnectOutcome, s styles) string {
	switch outcome.Result {
	case domain.DisconnectResultPrimary:
		return s.ok.Render("disconnected")
	case domain.DisconnectResultFallback:
		return s.fallback.Render("disconnected (normalized id)")
	case domain.DisconnectResultFailed:
		return s.warning.Render("failed")
	default:
		return s.detail.Render(string(outcome.Result))
	}
}

func renderTotals(summary domain.RunSummary, s styles) string {
	parts := []string{
		s.detail.Render(fmt.Sprintf(
			"matched %d of %d sessions across %d hosts",
			summary.SessionsMatched,
			summary.SessionsInspected,
			summary.HostsVisited,
		)),
		s.detail.Render(fmt.Sprintf(
			"disconnected: %d, fallback: %d, failed: %d",
			summary.DisconnectedPrimary,
			summary.DisconnectedFallback,
			summary.Failed,
		)),
		s.meta.Render(fmt.Sprintf("completed in %s", formatDuration(summary.Duration()))),
	}

	if summary.HostsFailed > 0 {
		parts = append(parts, s.warning.Render(fmt.Sprintf("%d host(s) could not be enumerated", summary.HostsFailed)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func formatDuration(d time.Duration) string {
	if d <= 0 {
		return "0s"
	}
	if d < time.Second {
		return d.Round(time.Millisecond).String()
	}

	return d.Round(100 * time.Millisecond).String()
}
