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
	"github.com/bnema/avd-sessions-cli/internal/ports"
	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

const (
	DefaultBaseURL    = "https://management.azure.com"
	DefaultAPIVersion = "2024-04-03"

	maxResponseBytes = 1 << 20
	retryMaxElapsed  = 30 * time.Second
)

type Config struct {
	BaseURL        string
	SubscriptionID string
	Token          string
	APIVersion     string
	HTTPClient     *http.Client
}

// Client talks to the desktop-virtualization resource provider of the
// management API. Credentials are checked by VerifyPool, not at
// construction, so building a client never fails.
type Client struct {
	httpClient     *http.Client
	baseURL        string
	subscriptionID string
	token          string
	apiVersion     string
}

var _ ports.PoolClient = (*Client)(nil)

func NewClient(cfg Config) *Client {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	apiVersion := cfg.APIVersion
	if apiVersion == "" {
		apiVersion = DefaultAPIVersion
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{
		httpClient:     httpClient,
		baseURL:        baseURL,
		subscriptionID: cfg.SubscriptionID,
		token:          cfg.Token,
		apiVersion:     apiVersion,
	}
}

func (c *Client) endpoint(path string) string {
	return c.baseURL + path + "?api-version=" + c.apiVersion
}

func (c *Client) poolPath(pool domain.Pool) string {
	return fmt.Sprintf("/subscriptions/%s/resourceGroups/%s/providers/Microsoft.DesktopVirtualization/hostPools/%s",
		c.subscriptionID, pool.ResourceGroup, pool.Name)
}

func (c *Client) hostPath(pool domain.Pool, host string) string {
	return c.poolPath(pool) + "/sessionHosts/" + host
}

// sessionPath splices the session id into the path verbatim. Ids that
// are not bare (full resource paths) produce an invalid route and the
// server rejects them synchronously.
func (c *Client) sessionPath(pool domain.Pool, host string, id domain.SessionID) string {
	return c.hostPath(pool, host) + "/userSessions/" + string(id)
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("x-ms-client-request-id", uuid.NewString())
	req.Header.Set("User-Agent", "avds/cli")
}

// getJSON fetches one resource page. Throttling and server errors are
// retried with exponential backoff; everything else fails immediately.
// Only reads go through here, the disconnect call must not be retried.
func (c *Client) getJSON(ctx context.Context, endpoint string) ([]byte, error) {
	var body []byte

	b := backoff.NewExponentialBackOff()
	b.MaxElapsedTime = retryMaxElapsed

	notify := func(err error, _ time.Duration) {
		log.WithFields(log.Fields{"url": endpoint, "error": err}).Warning("Retrying management API request")
	}

	retry := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("create request: %w", err))
		}
		c.setHeaders(req)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return fmt.Errorf("perform request: %w", err)
		}
		defer resp.Body.Close()

		payload, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
		if err != nil {
			return fmt.Errorf("read response: %w", err)
		}

		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			err := responseError(resp.StatusCode, payload)
			if retryableStatus(resp.StatusCode) {
				return err
			}
			return backoff.Permanent(err)
		}

		body = payload
		return nil
	}

	if err := backoff.RetryNotify(retry, backoff.WithContext(b, ctx), notify); err != nil {
		return nil, err
	}

	return body, nil
}

type errorEnvelope struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func responseError(status int, body []byte) error {
	var envelope errorEnvelope
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error.Code != "" {
		return fmt.Errorf("status %d: %s: %s", status, envelope.Error.Code, envelope.Error.Message)
	}

	return fmt.Errorf("status %d: %s", status, strings.TrimSpace(string(body)))
}

func retryableStatus(status int) bool {
	return status == http.StatusTooManyRequests || status >= 500
}
