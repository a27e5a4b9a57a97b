// Package client wraps the habit server's JSON API. Every operation is one
// round trip; the client holds no cache. Callers re-fetch the collection
// after a mutation instead of patching local state.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"habitgrid/internal/habit"
)

// Client talks to a habit server over HTTP JSON.
type Client struct {
	baseURL string
	httpc   *http.Client
	logger  *log.Logger
}

// New creates a client for the server at baseURL.
func New(baseURL string, logger *log.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: 10 * time.Second},
		logger:  logger,
	}
}

type habitsResponse struct {
	Habits habit.Collection `json:"habits"`
}

// FetchAll retrieves the full collection. On failure it returns an empty
// collection alongside the error, so rendering can proceed with "no habits"
// while the caller surfaces the failure distinctly from an empty list.
func (c *Client) FetchAll(ctx context.Context) (habit.Collection, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/habits", nil)
	if err != nil {
		return habit.Collection{}, err
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		c.logger.Warn("fetch habits failed", "error", err)
		return habit.Collection{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err := fmt.Errorf("server returned %s", resp.Status)
		c.logger.Warn("fetch habits failed", "error", err)
		return habit.Collection{}, err
	}

	var body habitsResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return habit.Collection{}, fmt.Errorf("decode habits response: %w", err)
	}
	if body.Habits == nil {
		body.Habits = habit.Collection{}
	}
	return body.Habits, nil
}

// Toggle flips completion of the habit for the given day (create-if-absent,
// else invert). The caller observes the new state by re-fetching.
func (c *Client) Toggle(ctx context.Context, name, day string) error {
	return c.post(ctx, "/api/habits", map[string]string{"habit": name, "date": day})
}

// Create inserts a new habit with the default color and no history. The
// server silently no-ops on a duplicate name.
func (c *Client) Create(ctx context.Context, name string) error {
	return c.post(ctx, "/api/habits/new", map[string]string{"habit": name})
}

// Rename renames a habit in place, carrying history and color over. An empty
// or unchanged new name is a client-side no-op: no request is issued.
func (c *Client) Rename(ctx context.Context, oldName, newName string) error {
	newName = strings.TrimSpace(newName)
	if newName == "" || newName == oldName {
		return nil
	}
	return c.post(ctx, "/api/habits/rename", map[string]string{"old": oldName, "new": newName})
}

// Recolor sets the habit's display color. The color must be a #rrggbb hex
// string; invalid input is rejected without a request.
func (c *Client) Recolor(ctx context.Context, name, color string) error {
	if !habit.ValidColor(color) {
		return fmt.Errorf("invalid color %q", color)
	}
	return c.post(ctx, "/api/habits/color", map[string]string{"habit": name, "color": color})
}

// Delete removes the habit and its entire history. Confirmation is the
// caller's responsibility.
func (c *Client) Delete(ctx context.Context, name string) error {
	return c.post(ctx, "/api/habits/delete", map[string]string{"habit": name})
}

// Motivation fetches the once-per-load motivational message.
func (c *Client) Motivation(ctx context.Context) (string, error) {
	var body struct {
		Motivation string `json:"motivation"`
	}
	if err := c.getJSON(ctx, "/api/motivation", &body); err != nil {
		return "", err
	}
	return body.Motivation, nil
}

// Chat sends a message to the assistant endpoint and returns its reply.
func (c *Client) Chat(ctx context.Context, message string) (string, error) {
	payload, err := json.Marshal(map[string]string{"message": message})
	if err != nil {
		return "", err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/chat", bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("server returned %s", resp.Status)
	}
	var body struct {
		Reply string `json:"reply"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("decode chat response: %w", err)
	}
	return body.Reply, nil
}

// Health probes the server's health endpoint.
func (c *Client) Health(ctx context.Context) error {
	var body struct {
		Status string `json:"status"`
	}
	return c.getJSON(ctx, "/health", &body)
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	resp, err := c.httpc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("server returned %s", resp.Status)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *Client) post(ctx context.Context, path string, body map[string]string) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		c.logger.Warn("mutation failed", "path", path, "error", err)
		return err
	}
	defer resp.Body.Close()

	// Responses carry the refreshed snapshot; callers re-fetch instead,
	// so the body is drained and discarded.
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= http.StatusBadRequest {
		err := fmt.Errorf("server returned %s", resp.Status)
		c.logger.Warn("mutation failed", "path", path, "error", err)
		return err
	}
	return nil
}
