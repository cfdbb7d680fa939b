package linkedin

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

// Fetcher is the read-only profile-fetch collaborator the normalizer
// pipeline consumes. Authentication, sessions and rate limits are the
// implementation's concern; callers only read.
type Fetcher interface {
	Profile(ctx context.Context, publicID string) (*Profile, error)
	ContactInfo(ctx context.Context, publicID string) (*ContactInfo, error)
}

// Client calls an already-authenticated profile-fetch service that fronts
// the source API and returns its nested source-specific structures.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

func NewClient() *Client {
	base := os.Getenv("PROFILE_SERVICE_URL")
	if base == "" {
		base = "http://profile-service:8000"
	}
	return &Client{BaseURL: base, HTTP: &http.Client{Timeout: 60 * time.Second}}
}

func NewClientWithBaseURL(base string) *Client {
	if base == "" {
		return NewClient()
	}
	return &Client{BaseURL: base, HTTP: &http.Client{Timeout: 60 * time.Second}}
}

// doGetWithRetry performs an HTTP GET against the given path with
// retry/backoff.
func (c *Client) doGetWithRetry(ctx context.Context, path string) (*http.Response, error) {
	attempts := 3
	var lastErr error
	for i := 0; i < attempts; i++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+path, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Accept", "application/json")

		resp, err := c.HTTP.Do(req)
		if err == nil {
			return resp, nil
		}
		lastErr = err
		// exponential backoff before retrying
		if i < attempts-1 {
			backoff := time.Duration(1<<i) * time.Second
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
	}
	return nil, lastErr
}

func (c *Client) getJSON(ctx context.Context, path string, out interface{}) error {
	resp, err := c.doGetWithRetry(ctx, path)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("profile-service returned status %d for %s", resp.StatusCode, path)
	}
	return json.Unmarshal(body, out)
}

// Profile fetches one member profile snapshot.
func (c *Client) Profile(ctx context.Context, publicID string) (*Profile, error) {
	var p Profile
	if err := c.getJSON(ctx, "/v1/profiles/"+publicID, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// ContactInfo fetches the contact-details view. Callers should treat a
// failure here as "no contact info", not as a fatal error.
func (c *Client) ContactInfo(ctx context.Context, publicID string) (*ContactInfo, error) {
	var ci ContactInfo
	if err := c.getJSON(ctx, "/v1/profiles/"+publicID+"/contact-info", &ci); err != nil {
		return nil, err
	}
	return &ci, nil
}
