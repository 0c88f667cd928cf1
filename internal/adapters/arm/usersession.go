package arm

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/bnema/avd-sessions-cli/internal/domain"
)

type userSessionList struct {
	Value    []userSessionEntry `json:"value"`
	NextLink string             `json:"nextLink"`
}

type userSessionEntry struct {
	ID         string                `json:"id"`
	Name       string                `json:"name"`
	Properties userSessionProperties `json:"properties"`
}

type userSessionProperties struct {
	UserPrincipalName string    `json:"userPrincipalName"`
	SessionState      string    `json:"sessionState"`
	ApplicationType   string    `json:"applicationType"`
	CreateTime        time.Time `json:"createTime"`
}

// ListUserSessions returns the sessions currently known on one host.
func (c *Client) ListUserSessions(ctx context.Context, pool domain.Pool, host string) ([]domain.UserSession, error) {
	endpoint := c.endpoint(c.hostPath(pool, host) + "/userSessions")
	sessions := make([]domain.UserSession, 0, 8)

	for endpoint != "" {
		body, err := c.getJSON(ctx, endpoint)
		if err != nil {
			return nil, fmt.Errorf("fetch user sessions page: %w", err)
		}

		var page userSessionList
		if err := json.Unmarshal(body, &page); err != nil {
			return nil, fmt.Errorf("decode user sessions page: %w", err)
		}

		for _, entry := range page.Value {
			sessions = append(sessions, toUserSession(entry, host))
		}

		endpoint = page.NextLink
	}

	return sessions, nil
}

// RemoveUserSession issues the forced disconnect. Exactly one request,
// never retried, so the caller stays in control of how many
// state-changing attempts a session sees.
func (c *Client) RemoveUserSession(ctx context.Context, pool domain.Pool, host string, id domain.SessionID) error {
	endpoint := c.endpoint(c.sessionPath(pool, host, id)) + "&force=true"

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, endpoint, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("perform request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return responseError(resp.StatusCode, body)
	}

	return nil
}

// toUserSession keeps the identifier exactly as the API returned it.
// Some backends return a bare numeric id, others the full resource
// path; the disconnect fallback depends on seeing the raw value.
func toUserSession(entry userSessionEntry, host string) domain.UserSession {
	id := entry.ID
	if id == "" {
		id = entry.Name
	}

	return domain.UserSession{
		ID:                domain.SessionID(id),
		Host:              host,
		UserPrincipalName: entry.Properties.UserPrincipalName,
		State:             domain.ParseSessionState(entry.Properties.SessionState),
		ApplicationType:   entry.Properties.ApplicationType,
		CreatedAt:         entry.Properties.CreateTime,
	}
}
