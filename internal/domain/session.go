package domain

import "time"

type SessionID string

// Normalized reduces a session identifier to its final path segment,
// the same rule used for host names. Identifiers that are already bare
// come back unchanged.
func (id SessionID) Normalized() SessionID {
	return SessionID(LastSegment(string(id)))
}

type SessionState string

const (
	SessionStateActive       SessionState = "Active"
	SessionStateDisconnected SessionState = "Disconnected"
	SessionStatePending      SessionState = "Pending"
	SessionStateUnknown      SessionState = "Unknown"
)

// ParseSessionState maps a wire value onto the known states. Values the
// API may grow later come back as Unknown rather than failing.
func ParseSessionState(raw string) SessionState {
	switch SessionState(raw) {
	case SessionStateActive, SessionStateDisconnected, SessionStatePending:
		return SessionState(raw)
	default:
		return SessionStateUnknown
	}
}

// UserSession is one user's desktop session on a session host, as seen
// during enumeration. ID keeps whatever shape the API returned, fully
// qualified or bare.
type UserSession struct {
	ID                SessionID
	Host              string
	UserPrincipalName string
	State             SessionState
	ApplicationType   string
	CreatedAt         time.Time
}

// MatchSessions returns the sessions owned by the given principal. The
// comparison is an exact string match; principal names are compared as
// the API returned them, without case or whitespace normalization.
func MatchSessions(sessions []UserSession, userPrincipalName string) []UserSession {
	matched := make([]UserSession, 0, len(sessions))
	for _, session := range sessions {
		if session.UserPrincipalName != userPrincipalName {
			continue
		}
		matched = append(matched, session)
	}

	return matched
}
