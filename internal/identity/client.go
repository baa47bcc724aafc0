package identity

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/linguaflow/scorereport/internal/auth"
	"github.com/linguaflow/scorereport/internal/logger"
)

// Client resolves bearer tokens against the auth provider's userinfo endpoint.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a remote identity resolver for the given auth provider URL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

type userinfoResp struct {
	ID   string `json:"id"`
	Role string `json:"role"`
}

// Resolve exchanges the request's bearer token for the caller identity.
// A missing token or a 401 from the provider resolves to no identity rather
// than an error.
func (c *Client) Resolve(r *http.Request) (*auth.Identity, error) {
	token := bearerToken(r)
	if token == "" {
		return nil, nil
	}
	return c.lookup(r.Context(), token)
}

func (c *Client) lookup(ctx context.Context, token string) (*auth.Identity, error) {
	log := logger.FromContext(ctx)
	url := c.baseURL + "/userinfo"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Error().Err(err).Msg("userinfo request failed")
		return nil, err
	}
	defer resp.Body.Close()

	log.Debug().Int("status", resp.StatusCode).Dur("duration", time.Since(start)).Msg("userinfo response received")

	switch {
	case resp.StatusCode == http.StatusOK:
		var out userinfoResp
		if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
			log.Error().Err(err).Msg("failed to decode userinfo response")
			return nil, err
		}
		if out.ID == "" {
			return nil, nil
		}
		return &auth.Identity{UserID: out.ID, Role: out.Role}, nil
	case resp.StatusCode == http.StatusUnauthorized:
		return nil, nil
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		log.Error().Int("status", resp.StatusCode).Str("body", string(body)).Msg("userinfo request rejected")
		return nil, fmt.Errorf("userinfo status %d", resp.StatusCode)
	}
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if len(header) > len(prefix) && strings.EqualFold(header[:len(prefix)], prefix) {
		return header[len(prefix):]
	}
	return ""
}

// Ensure Client implements the interface
var _ Resolver = (*Client)(nil)
