package fragment

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"github.com/htmltag-dev/htmltag/el"
	"github.com/htmltag-dev/htmltag/pkg/tag"
)

// liveTestServer serves a counter fragment whose value the test can
// bump between invalidations.
func liveTestServer(t *testing.T) (*httptest.Server, *Hub, *atomic.Int64) {
	t.Helper()

	var n atomic.Int64
	reg := NewRegistry()
	reg.MustRegister("counter", func(ctx context.Context, params Params) (*tag.Tag, error) {
		return el.Span(el.Class("count"), strconv.FormatInt(n.Load(), 10)), nil
	})

	hub := NewHub(reg, LiveConfig{Logger: discardLogger()})
	r := chi.NewRouter()
	r.Mount("/live", hub.Handler())

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	t.Cleanup(hub.Close)
	return srv, hub, &n
}

func dialLive(t *testing.T, srv *httptest.Server, path string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + path
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("Dial(%s) error: %v", url, err)
	}
	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readFrame(t *testing.T, conn *websocket.Conn) string {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, msg, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("ReadMessage() error: %v", err)
	}
	return string(msg)
}

func TestHubSendsInitialAndInvalidatedState(t *testing.T) {
	srv, hub, n := liveTestServer(t)
	conn := dialLive(t, srv, "/live/counter")

	if got, want := readFrame(t, conn), `<span class="count">0</span>`; got != want {
		t.Fatalf("initial frame = %q, want %q", got, want)
	}
	if got := hub.Connections("counter"); got != 1 {
		t.Fatalf("Connections() = %d, want 1", got)
	}

	n.Store(1)
	if sent := hub.Invalidate("counter"); sent != 1 {
		t.Fatalf("Invalidate() sent to %d connections, want 1", sent)
	}
	if got, want := readFrame(t, conn), `<span class="count">1</span>`; got != want {
		t.Fatalf("invalidated frame = %q, want %q", got, want)
	}
}

func TestHubDropsClosedConnections(t *testing.T) {
	srv, hub, _ := liveTestServer(t)
	conn := dialLive(t, srv, "/live/counter")
	readFrame(t, conn)

	conn.Close()

	// The read loop notices the closure asynchronously.
	deadline := time.Now().Add(2 * time.Second)
	for hub.Connections("counter") != 0 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	if got := hub.Connections("counter"); got != 0 {
		t.Fatalf("Connections() = %d after close, want 0", got)
	}
	if sent := hub.Invalidate("counter"); sent != 0 {
		t.Errorf("Invalidate() sent to %d connections, want 0", sent)
	}
}

func TestHubRejectsUnknownFragment(t *testing.T) {
	srv, _, _ := liveTestServer(t)

	resp, err := http.Get(srv.URL + "/live/ghost")
	if err != nil {
		t.Fatalf("GET error: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}
}

func TestHubMultipleSubscribers(t *testing.T) {
	srv, hub, n := liveTestServer(t)

	first := dialLive(t, srv, "/live/counter")
	second := dialLive(t, srv, "/live/counter")
	readFrame(t, first)
	readFrame(t, second)

	if got := hub.Connections("counter"); got != 2 {
		t.Fatalf("Connections() = %d, want 2", got)
	}

	n.Store(7)
	if sent := hub.Invalidate("counter"); sent != 2 {
		t.Fatalf("Invalidate() sent to %d connections, want 2", sent)
	}
	for _, conn := range []*websocket.Conn{first, second} {
		if got := readFrame(t, conn); !strings.Contains(got, ">7<") {
			t.Errorf("frame = %q, want counter value 7", got)
		}
	}
}
