// Package api provides an HTTP client for the six-cities REST API.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"sixcities/internal/offer"
	"sixcities/internal/review"
	"sixcities/internal/user"
)

// TokenSource supplies the current session token. An empty token means
// no Authorization header is attached.
type TokenSource interface {
	Token() string
}

// StaticToken is a TokenSource holding a fixed token.
type StaticToken string

// Token returns the stored token.
func (t StaticToken) Token() string { return string(t) }

// StatusError is a non-2xx response from the server.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("server error: %s", http.StatusText(e.Code))
}

// IsNotFound returns true if err is a 404 response.
func IsNotFound(err error) bool {
	var se *StatusError
	return errors.As(err, &se) && se.Code == http.StatusNotFound
}

// IsUnauthorized returns true if err is a 401 response.
func IsUnauthorized(err error) bool {
	var se *StatusError
	return errors.As(err, &se) && se.Code == http.StatusUnauthorized
}

// Client is an HTTP client for the six-cities API.
type Client struct {
	baseURL    string
	tokens     TokenSource
	httpClient *http.Client
}

// New creates a new API client. tokens may be nil for anonymous use.
func New(baseURL string, tokens TokenSource) *Client {
	return &Client{
		baseURL:    baseURL,
		tokens:     tokens,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// Offers returns all offers across all cities.
func (c *Client) Offers(ctx context.Context) ([]offer.Offer, error) {
	var offers []offer.Offer
	if err := c.get(ctx, "/offers", &offers); err != nil {
		return nil, err
	}
	return offers, nil
}

// Offer returns a single offer with its detail fields.
func (c *Client) Offer(ctx context.Context, id string) (*offer.Offer, error) {
	var o offer.Offer
	if err := c.get(ctx, "/offers/"+id, &o); err != nil {
		return nil, err
	}
	return &o, nil
}

// Nearby returns offers close to the given offer.
func (c *Client) Nearby(ctx context.Context, id string) ([]offer.Offer, error) {
	var offers []offer.Offer
	if err := c.get(ctx, "/offers/"+id+"/nearby", &offers); err != nil {
		return nil, err
	}
	return offers, nil
}

// Comments returns the comments for an offer.
func (c *Client) Comments(ctx context.Context, id string) ([]review.Comment, error) {
	var comments []review.Comment
	if err := c.get(ctx, "/comments/"+id, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

// PostComment submits a review and returns the server's copy of it.
func (c *Client) PostComment(ctx context.Context, id string, draft review.Draft) (*review.Comment, error) {
	var comment review.Comment
	if err := c.post(ctx, "/comments/"+id, draft, &comment); err != nil {
		return nil, err
	}
	return &comment, nil
}

// CheckAuth validates the stored token and returns the session profile.
func (c *Client) CheckAuth(ctx context.Context) (*user.Profile, error) {
	var p user.Profile
	if err := c.get(ctx, "/login", &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Login authenticates with email and password. The returned profile
// carries the new session token.
func (c *Client) Login(ctx context.Context, email, password string) (*user.Profile, error) {
	body := map[string]string{"email": email, "password": password}
	var p user.Profile
	if err := c.post(ctx, "/login", body, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Logout invalidates the current session on the server.
func (c *Client) Logout(ctx context.Context) error {
	return c.doDelete(ctx, "/logout")
}

// Favorites returns the offers the current user has favorited.
func (c *Client) Favorites(ctx context.Context) ([]offer.Offer, error) {
	var offers []offer.Offer
	if err := c.get(ctx, "/favorite", &offers); err != nil {
		return nil, err
	}
	return offers, nil
}

// SetFavorite sets the favorite flag on an offer and returns the full
// updated offer as confirmed by the server.
func (c *Client) SetFavorite(ctx context.Context, id string, on bool) (*offer.Offer, error) {
	status := 0
	if on {
		status = 1
	}
	var o offer.Offer
	if err := c.post(ctx, fmt.Sprintf("/favorite/%s/%d", id, status), nil, &o); err != nil {
		return nil, err
	}
	return &o, nil
}

// get performs a GET request and decodes the response.
func (c *Client) get(ctx context.Context, path string, result interface{}) error {
	req, err := http.NewRequestWithContext(ctx, "GET", c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	return c.do(req, result)
}

// post performs a POST request with a JSON body and decodes the response.
func (c *Client) post(ctx context.Context, path string, body interface{}, result interface{}) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshaling request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.do(req, result)
}

// doDelete performs a DELETE request.
func (c *Client) doDelete(ctx context.Context, path string) error {
	req, err := http.NewRequestWithContext(ctx, "DELETE", c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	return c.do(req, nil)
}

// do executes an HTTP request with auth header and handles errors.
func (c *Client) do(req *http.Request, result interface{}) error {
	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			fmt.Printf("warning: closing response body: %v\n", cerr)
		}
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode >= 400 {
		se := &StatusError{Code: resp.StatusCode}
		var errResp struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(respBody, &errResp) == nil && errResp.Error != "" {
			se.Message = errResp.Error
		}
		return se
	}

	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}

	return nil
}
