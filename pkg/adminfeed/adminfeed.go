// Package adminfeed is a polling client for the admin notification feed.
// It refreshes on a fixed interval, applies mutations optimistically to its
// local snapshot and reconciles on the next poll.
package adminfeed

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"
)

// DefaultInterval is the poll cadence of the admin panel.
const DefaultInterval = 15 * time.Second

// ContactItem is one contact-type entry in the unread feed.
type ContactItem struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Subject   string `json:"subject"`
	CreatedAt string `json:"created_at"`
}

// TestimonialItem is one testimonial-type entry in the unread feed.
type TestimonialItem struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Rating    int    `json:"rating"`
	CreatedAt string `json:"created_at"`
}

// Feed is the unread snapshot the badge and dropdown render from.
type Feed struct {
	Count            int               `json:"count"`
	ContactItems     []ContactItem     `json:"contact_items"`
	TestimonialItems []TestimonialItem `json:"testimonial_items"`
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *apiError       `json:"error"`
}

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *apiError) Error() string {
	return fmt.Sprintf("adminfeed: %s: %s", e.Code, e.Message)
}

// Option configures a Client.
type Option func(*Client)

// WithInterval overrides the poll cadence.
func WithInterval(d time.Duration) Option {
	return func(c *Client) { c.interval = d }
}

// WithHTTPClient swaps the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithOnUpdate registers a callback invoked with every fresh snapshot,
// including optimistic ones. It runs on the polling goroutine.
func WithOnUpdate(fn func(Feed)) Option {
	return func(c *Client) { c.onUpdate = fn }
}

// Client polls GET /api/admin/notifications and exposes the latest feed.
// All methods are safe for concurrent use.
type Client struct {
	baseURL  string
	token    string
	http     *http.Client
	interval time.Duration
	onUpdate func(Feed)

	mu   sync.Mutex
	feed Feed
}

// New builds a client. baseURL is the API root, e.g. "http://localhost:8080".
func New(baseURL, token string, opts ...Option) *Client {
	c := &Client{
		baseURL:  baseURL,
		token:    token,
		http:     &http.Client{Timeout: 10 * time.Second},
		interval: DefaultInterval,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Start polls until ctx is cancelled. The first fetch happens immediately;
// later fetches fire on the interval regardless of how long each one takes.
// A failed poll keeps the previous snapshot.
func (c *Client) Start(ctx context.Context) error {
	if err := c.poll(ctx); err != nil && ctx.Err() != nil {
		return ctx.Err()
	}

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			_ = c.poll(ctx)
		}
	}
}

// Refresh fetches one snapshot outside the polling loop.
func (c *Client) Refresh(ctx context.Context) error {
	return c.poll(ctx)
}

// Snapshot returns a copy of the latest feed.
func (c *Client) Snapshot() Feed {
	c.mu.Lock()
	defer c.mu.Unlock()
	return copyFeed(c.feed)
}

// MarkRead marks one notification read and drops it from the local snapshot
// once the server confirms.
func (c *Client) MarkRead(ctx context.Context, notificationID string) error {
	err := c.action(ctx, map[string]string{"action": "markRead", "id": notificationID})
	if err != nil {
		return err
	}
	c.removeItem(notificationID)
	return nil
}

// MarkAllRead clears the whole feed once the server confirms.
func (c *Client) MarkAllRead(ctx context.Context) error {
	if err := c.action(ctx, map[string]string{"action": "markAllRead"}); err != nil {
		return err
	}
	c.update(Feed{ContactItems: []ContactItem{}, TestimonialItems: []TestimonialItem{}})
	return nil
}

// MarkMessageRead advances the underlying contact message to Read. The feed
// itself is untouched; the related notification stays until marked read.
func (c *Client) MarkMessageRead(ctx context.Context, messageID string) error {
	return c.action(ctx, map[string]string{"action": "markMessageRead", "message_id": messageID})
}

// ApproveTestimonial approves the referenced testimonial.
func (c *Client) ApproveTestimonial(ctx context.Context, testimonialID string) error {
	return c.action(ctx, map[string]string{"action": "approveTestimonial", "id": testimonialID})
}

// RejectTestimonial rejects the referenced testimonial.
func (c *Client) RejectTestimonial(ctx context.Context, testimonialID string) error {
	return c.action(ctx, map[string]string{"action": "rejectTestimonial", "id": testimonialID})
}

func (c *Client) poll(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/admin/notifications", nil)
	if err != nil {
		return err
	}

	var feed Feed
	if err := c.do(req, &feed); err != nil {
		return err
	}
	c.update(feed)
	return nil
}

func (c *Client) action(ctx context.Context, body map[string]string) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/api/admin/notifications", bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, nil)
}

func (c *Client) do(req *http.Request, out any) error {
	req.Header.Set("Authorization", "Bearer "+c.token)

	res, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	var env envelope
	if err := json.NewDecoder(res.Body).Decode(&env); err != nil {
		return fmt.Errorf("adminfeed: decode response: %w", err)
	}
	if !env.Success {
		if env.Error != nil {
			return env.Error
		}
		return fmt.Errorf("adminfeed: request failed with status %d", res.StatusCode)
	}
	if out != nil {
		return json.Unmarshal(env.Data, out)
	}
	return nil
}

func (c *Client) update(feed Feed) {
	feed.Count = len(feed.ContactItems) + len(feed.TestimonialItems)

	c.mu.Lock()
	c.feed = feed
	snapshot := copyFeed(feed)
	c.mu.Unlock()

	if c.onUpdate != nil {
		c.onUpdate(snapshot)
	}
}

func (c *Client) removeItem(notificationID string) {
	c.mu.Lock()
	next := Feed{
		ContactItems:     make([]ContactItem, 0, len(c.feed.ContactItems)),
		TestimonialItems: make([]TestimonialItem, 0, len(c.feed.TestimonialItems)),
	}
	for _, item := range c.feed.ContactItems {
		if item.ID != notificationID {
			next.ContactItems = append(next.ContactItems, item)
		}
	}
	for _, item := range c.feed.TestimonialItems {
		if item.ID != notificationID {
			next.TestimonialItems = append(next.TestimonialItems, item)
		}
	}
	c.mu.Unlock()

	c.update(next)
}

func copyFeed(f Feed) Feed {
	out := Feed{
		Count:            f.Count,
		ContactItems:     make([]ContactItem, len(f.ContactItems)),
		TestimonialItems: make([]TestimonialItem, len(f.TestimonialItems)),
	}
	copy(out.ContactItems, f.ContactItems)
	copy(out.TestimonialItems, f.TestimonialItems)
	return out
}
