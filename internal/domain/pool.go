package domain

import (
	"fmt"
	"strings"
	"time"
)

type PoolName string
type ResourceGroup string

// Pool identifies a host pool inside a resource group. It is the
// immutable coordinate pair every remote call is scoped to.
type Pool struct {
	ResourceGroup ResourceGroup
	Name          PoolName
}

func (p Pool) Validate() error {
	if strings.TrimSpace(string(p.ResourceGroup)) == "" {
		return fmt.Errorf("resource group is required")
	}
	if strings.TrimSpace(string(p.Name)) == "" {
		return fmt.Errorf("host pool name is required")
	}

	return nil
}

func (p Pool) String() string {
	return fmt.Sprintf("%s/%s", p.ResourceGroup, p.Name)
}

// SessionHost is a read-only snapshot of one machine registered to a
// pool. Name keeps the value exactly as the API returned it, which may
// be qualified as "pool/host.domain".
type SessionHost struct {
	Name          string
	Status        string
	AgentVersion  string
	Sessions      int
	LastHeartbeat time.Time
}

// ShortName is the host identifier used on session-level calls.
func (h SessionHost) ShortName() string {
	return LastSegment(h.Name)
}

// LastSegment returns the final path segment of a resource identifier.
// Bare values without a separator are returned unchanged.
func LastSegment(path string) string {
	trimmed := strings.TrimRight(path, "/")
	if idx := strings.LastIndex(trimmed, "/"); idx >= 0 {
		return trimmed[idx+1:]
	}

	return trimmed
}
