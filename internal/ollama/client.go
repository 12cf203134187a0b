// Package ollama talks to the local runtime at its two boundaries: the HTTP
// control plane (model listing, readiness) and the command-line tool (create,
// pull, serve). Both are consumed as black boxes.
package ollama

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"llmctl/pkg/types"
)

// ErrUnreachable is the single failure mode the client reports. Connection
// refused, DNS failure, timeout, non-2xx status, malformed bodies and bodies
// missing the models field all collapse into it: the retry policy is
// identical for every one of them, so callers must not distinguish reasons.
var ErrUnreachable = errors.New("ollama unreachable")

const (
	// DefaultTimeout bounds interactive calls.
	DefaultTimeout = 30 * time.Second
	// LivenessTimeout bounds quick is-it-up probes.
	LivenessTimeout = 5 * time.Second
)

// Client performs single HTTP round trips against the runtime control plane.
// It never retries; retries belong to the Poller.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient returns a client for the given base URL (e.g. http://127.0.0.1:11434).
// timeout caps every call; <=0 falls back to DefaultTimeout.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{baseURL: baseURL, http: &http.Client{Timeout: timeout}}
}

// Models lists the models currently known to the runtime in exactly one
// network round trip. Any failure returns ErrUnreachable.
func (c *Client) Models(ctx context.Context) ([]types.Model, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/tags", nil)
	if err != nil {
		return nil, ErrUnreachable
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, ErrUnreachable
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, ErrUnreachable
	}
	var tags types.TagsResponse
	if err := json.NewDecoder(resp.Body).Decode(&tags); err != nil || tags.Models == nil {
		// A 2xx body without the models field is not a tags response.
		return nil, ErrUnreachable
	}
	return *tags.Models, nil
}

// Names returns the current model set keyed by name, for membership checks.
func (c *Client) Names(ctx context.Context) (map[string]struct{}, error) {
	models, err := c.Models(ctx)
	if err != nil {
		return nil, err
	}
	set := make(map[string]struct{}, len(models))
	for _, m := range models {
		set[m.Name] = struct{}{}
	}
	return set, nil
}

// Reachable reports whether the runtime answered a single probe within
// LivenessTimeout.
func (c *Client) Reachable(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, LivenessTimeout)
	defer cancel()
	_, err := c.Models(ctx)
	return err == nil
}
