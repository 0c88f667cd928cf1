package arm

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/bnema/avd-sessions-cli/internal/domain"
)

type sessionHostList struct {
	Value    []sessionHostEntry `json:"value"`
	NextLink string             `json:"nextLink"`
}

type sessionHostEntry struct {
	ID         string                `json:"id"`
	Name       string                `json:"name"`
	Properties sessionHostProperties `json:"properties"`
}

type sessionHostProperties struct {
	Status        string    `json:"status"`
	AgentVersion  string    `json:"agentVersion"`
	Sessions      int       `json:"sessions"`
	LastHeartBeat time.Time `json:"lastHeartBeat"`
}

// VerifyPool is the credential and connectivity probe issued once
// before enumeration. It is a single attempt, no retries, and maps the
// probe statuses onto the domain sentinels.
func (c *Client) VerifyPool(ctx context.Context, pool domain.Pool) error {
	if strings.TrimSpace(c.token) == "" {
		return domain.ErrMissingToken
	}
	if strings.TrimSpace(c.subscriptionID) == "" {
		return domain.ErrMissingSubscription
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint(c.poolPath(pool)), nil)
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

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode <= 299:
		return nil
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return fmt.Errorf("%w: %v", domain.ErrUnauthorized, responseError(resp.StatusCode, body))
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%w: %s", domain.ErrPoolNotFound, pool.String())
	default:
		return responseError(resp.StatusCode, body)
	}
}

// ListSessionHosts returns every host registered to the pool,
// following nextLink pagination to the end.
func (c *Client) ListSessionHosts(ctx context.Context, pool domain.Pool) ([]domain.SessionHost, error) {
	endpoint := c.endpoint(c.poolPath(pool) + "/sessionHosts")
	hosts := make([]domain.SessionHost, 0, 16)

	for endpoint != "" {
		body, err := c.getJSON(ctx, endpoint)
		if err != nil {
			return nil, fmt.Errorf("fetch session hosts page: %w", err)
		}

		var page sessionHostList
		if err := json.Unmarshal(body, &page); err != nil {
			return nil, fmt.Errorf("decode session hosts page: %w", err)
		}

		for _, entry := range page.Value {
			hosts = append(hosts, toSessionHost(entry))
		}

		endpoint = page.NextLink
	}

	return hosts, nil
}

func toSessionHost(entry sessionHostEntry) domain.SessionHost {
	name := entry.Name
	if name == "" {
		name = entry.ID
	}

	return domain.SessionHost{
		Name:          name,
		Status:        entry.Properties.Status,
		AgentVersion:  entry.Properties.AgentVersion,
		Sessions:      entry.Properties.Sessions,
		LastHeartbeat: entry.Properties.LastHeartBeat,
	}
}
