package adminfeed

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// feedServer fakes the admin notifications endpoint. It records mutation
// actions and serves a mutable feed.
type feedServer struct {
	mu      sync.Mutex
	feed    Feed
	actions []map[string]string
	token   string
}

func (s *feedServer) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer "+s.token {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]any{
				"success": false,
				"error":   map[string]string{"code": "UNAUTHORIZED", "message": "missing bearer token"},
			})
			return
		}

		s.mu.Lock()
		defer s.mu.Unlock()

		switch r.Method {
		case http.MethodGet:
			_ = json.NewEncoder(w).Encode(map[string]any{"success": true, "data": s.feed})
		case http.MethodPost:
			var action map[string]string
			_ = json.NewDecoder(r.Body).Decode(&action)
			s.actions = append(s.actions, action)
			_ = json.NewEncoder(w).Encode(map[string]any{"success": true, "data": map[string]string{"status": "ok"}})
		}
	}
}

func newTestPair(t *testing.T, feed Feed) (*feedServer, *Client, func()) {
	t.Helper()

	fs := &feedServer{feed: feed, token: "tkn"}
	srv := httptest.NewServer(fs.handler())
	client := New(srv.URL, "tkn")
	return fs, client, srv.Close
}

func TestRefresh_PopulatesSnapshot(t *testing.T) {
	_, client, done := newTestPair(t, Feed{
		ContactItems:     []ContactItem{{ID: "n1", Name: "New message from Jordan", Subject: "Hi"}},
		TestimonialItems: []TestimonialItem{{ID: "n2", Name: "Mara V.", Rating: 5}},
	})
	defer done()

	require.NoError(t, client.Refresh(context.Background()))

	snap := client.Snapshot()
	assert.Equal(t, 2, snap.Count)
	require.Len(t, snap.ContactItems, 1)
	assert.Equal(t, "n1", snap.ContactItems[0].ID)
	require.Len(t, snap.TestimonialItems, 1)
	assert.Equal(t, 5, snap.TestimonialItems[0].Rating)
}

func TestMarkRead_OptimisticallyRemovesItem(t *testing.T) {
	fs, client, done := newTestPair(t, Feed{
		ContactItems: []ContactItem{{ID: "n1"}, {ID: "n2"}},
	})
	defer done()

	ctx := context.Background()
	require.NoError(t, client.Refresh(ctx))
	require.NoError(t, client.MarkRead(ctx, "n1"))

	snap := client.Snapshot()
	assert.Equal(t, 1, snap.Count)
	require.Len(t, snap.ContactItems, 1)
	assert.Equal(t, "n2", snap.ContactItems[0].ID)

	require.Len(t, fs.actions, 1)
	assert.Equal(t, "markRead", fs.actions[0]["action"])
	assert.Equal(t, "n1", fs.actions[0]["id"])
}

func TestMarkRead_ServerErrorKeepsSnapshot(t *testing.T) {
	_, client, done := newTestPair(t, Feed{ContactItems: []ContactItem{{ID: "n1"}}})
	defer done()

	ctx := context.Background()
	require.NoError(t, client.Refresh(ctx))

	// Break auth so the action fails.
	client.token = "wrong"
	err := client.MarkRead(ctx, "n1")
	require.Error(t, err)

	snap := client.Snapshot()
	assert.Equal(t, 1, snap.Count, "failed action must not touch the local feed")
}

func TestMarkAllRead_ClearsSnapshot(t *testing.T) {
	fs, client, done := newTestPair(t, Feed{
		ContactItems:     []ContactItem{{ID: "n1"}},
		TestimonialItems: []TestimonialItem{{ID: "n2"}},
	})
	defer done()

	ctx := context.Background()
	require.NoError(t, client.Refresh(ctx))
	require.NoError(t, client.MarkAllRead(ctx))

	snap := client.Snapshot()
	assert.Zero(t, snap.Count)
	assert.Empty(t, snap.ContactItems)
	assert.Empty(t, snap.TestimonialItems)

	require.Len(t, fs.actions, 1)
	assert.Equal(t, "markAllRead", fs.actions[0]["action"])
}

func TestModerationActions_SendCorrectBodies(t *testing.T) {
	fs, client, done := newTestPair(t, Feed{})
	defer done()

	ctx := context.Background()
	require.NoError(t, client.ApproveTestimonial(ctx, "t1"))
	require.NoError(t, client.RejectTestimonial(ctx, "t2"))
	require.NoError(t, client.MarkMessageRead(ctx, "m1"))

	require.Len(t, fs.actions, 3)
	assert.Equal(t, map[string]string{"action": "approveTestimonial", "id": "t1"}, fs.actions[0])
	assert.Equal(t, map[string]string{"action": "rejectTestimonial", "id": "t2"}, fs.actions[1])
	assert.Equal(t, map[string]string{"action": "markMessageRead", "message_id": "m1"}, fs.actions[2])
}

func TestStart_PollsOnInterval(t *testing.T) {
	fs, _, done := newTestPair(t, Feed{ContactItems: []ContactItem{{ID: "n1"}}})
	defer done()

	srv := httptest.NewServer(fs.handler())
	defer srv.Close()

	var mu sync.Mutex
	updates := 0
	client := New(srv.URL, "tkn",
		WithInterval(20*time.Millisecond),
		WithOnUpdate(func(Feed) {
			mu.Lock()
			updates++
			mu.Unlock()
		}),
	)

	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Millisecond)
	defer cancel()

	err := client.Start(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	mu.Lock()
	defer mu.Unlock()
	assert.GreaterOrEqual(t, updates, 2, "expected the immediate fetch plus interval polls")

	snap := client.Snapshot()
	assert.Equal(t, 1, snap.Count)
}

func TestErrorEnvelopeSurfacesCode(t *testing.T) {
	_, client, done := newTestPair(t, Feed{})
	defer done()

	client.token = "wrong"
	err := client.Refresh(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "UNAUTHORIZED")
}
