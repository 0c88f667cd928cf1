package domain

type DisconnectResult string

const (
	DisconnectResultPrimary  DisconnectResult = "disconnected"
	DisconnectResultFallback DisconnectResult = "disconnected_fallback"
	DisconnectResultFailed   DisconnectResult = "failed"
)

// DisconnectOutcome records the final word on one matched session.
// Detail carries the error of the last attempt and is empty on success;
// when the fallback ran, its error supersedes the primary one.
type DisconnectOutcome struct {
	Host    string
	Session SessionID
	User    string
	Result  DisconnectResult
	Detail  string
}

func (o DisconnectOutcome) Succeeded() bool {
	return o.Result == DisconnectResultPrimary || o.Result == DisconnectResultFallback
}
