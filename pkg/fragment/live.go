package fragment

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"github.com/htmltag-dev/htmltag/pkg/render"
)

// Live connection defaults.
const (
	defaultReadTimeout  = 60 * time.Second
	defaultWriteTimeout = 10 * time.Second
	defaultPingInterval = 30 * time.Second
)

// LiveConfig controls the live fragment hub.
type LiveConfig struct {
	// ReadTimeout is how long a connection may stay silent before it is
	// dropped. Pongs count as activity. Default 60s.
	ReadTimeout time.Duration

	// WriteTimeout bounds each outgoing write. Default 10s.
	WriteTimeout time.Duration

	// PingInterval is how often pings are sent. Must be shorter than
	// ReadTimeout. Default 30s.
	PingInterval time.Duration

	// Logger receives connection lifecycle events. Defaults to
	// slog.Default().
	Logger *slog.Logger

	// Renderer turns produced trees into HTML. Defaults to the compact
	// renderer.
	Renderer *render.Renderer

	// Codec, when set, enables signed params tokens on the subscribe
	// request, same as the HTTP handler.
	Codec *Codec

	// CheckOrigin overrides the upgrader's origin check. Leave nil to
	// use the gorilla default (same origin only).
	CheckOrigin func(r *http.Request) bool
}

// Hub pushes re-rendered fragments to WebSocket subscribers. Each
// connection subscribes to one fragment with one set of params; calling
// Invalidate re-renders the fragment for every subscriber and sends the
// fresh HTML as a text frame.
type Hub struct {
	reg      *Registry
	config   LiveConfig
	upgrader websocket.Upgrader

	mu    sync.RWMutex
	conns map[string]map[*liveConn]struct{}
}

// NewHub creates a hub serving fragments from reg.
func NewHub(reg *Registry, config LiveConfig) *Hub {
	if config.ReadTimeout <= 0 {
		config.ReadTimeout = defaultReadTimeout
	}
	if config.WriteTimeout <= 0 {
		config.WriteTimeout = defaultWriteTimeout
	}
	if config.PingInterval <= 0 {
		config.PingInterval = defaultPingInterval
	}
	if config.Logger == nil {
		config.Logger = slog.Default()
	}
	if config.Renderer == nil {
		config.Renderer = render.NewRenderer(render.Config{})
	}

	return &Hub{
		reg:    reg,
		config: config,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     config.CheckOrigin,
		},
		conns: make(map[string]map[*liveConn]struct{}),
	}
}

// Handler routes GET /{name} relative to its mount point, upgrading
// each request to a WebSocket subscription:
//
//	r.Mount("/live", hub.Handler())
func (h *Hub) Handler() http.Handler {
	r := chi.NewRouter()
	r.Get("/{name}", h.serveLive)
	return r
}

func (h *Hub) serveLive(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if _, ok := h.reg.Lookup(name); !ok {
		http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
		return
	}

	params, err := h.subscribeParams(r)
	if err != nil {
		h.config.Logger.Warn("live subscribe rejected",
			"fragment", name,
			"error", err)
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already written the error response.
		h.config.Logger.Error("websocket upgrade failed",
			"fragment", name,
			"error", err)
		return
	}

	c := &liveConn{
		conn:   conn,
		name:   name,
		params: params,
		done:   make(chan struct{}),
	}
	h.add(c)
	h.config.Logger.Info("live subscribed", "fragment", name)

	// Send the current state so subscribers do not wait for the first
	// invalidation.
	if html, err := h.renderFragment(r.Context(), name, params); err == nil {
		if err := c.send(html, h.config.WriteTimeout); err != nil {
			h.remove(c)
			return
		}
	} else {
		h.config.Logger.Error("initial live render failed",
			"fragment", name,
			"error", err)
	}

	go c.writeLoop(h)
	go c.readLoop(h)
}

// subscribeParams mirrors the HTTP handler's params extraction.
func (h *Hub) subscribeParams(r *http.Request) (Params, error) {
	q := r.URL.Query()
	token := q.Get(tokenParam)
	if token == "" {
		return ParamsFromQuery(q), nil
	}
	if h.config.Codec == nil {
		return nil, ErrInvalidToken
	}
	return h.config.Codec.Decode(token)
}

// Invalidate re-renders name for every subscriber and sends the result.
// It returns the number of connections that received the update.
// Producers run with a background context; a subscriber whose send
// fails is dropped.
func (h *Hub) Invalidate(name string) int {
	h.mu.RLock()
	set := h.conns[name]
	conns := make([]*liveConn, 0, len(set))
	for c := range set {
		conns = append(conns, c)
	}
	h.mu.RUnlock()

	if len(conns) == 0 {
		return 0
	}
	RecordInvalidation()

	ctx := context.Background()
	sent := 0
	for _, c := range conns {
		// Params differ per subscriber, so each gets its own render.
		html, err := h.renderFragment(ctx, name, c.params)
		if err != nil {
			h.config.Logger.Error("live render failed",
				"fragment", name,
				"error", err)
			continue
		}
		if err := c.send(html, h.config.WriteTimeout); err != nil {
			h.config.Logger.Error("live send failed",
				"fragment", name,
				"error", err)
			RecordLiveSendError()
			h.remove(c)
			continue
		}
		sent++
	}
	return sent
}

// Connections returns the number of open subscriptions for name.
func (h *Hub) Connections(name string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.conns[name])
}

// Close drops every connection. The hub is unusable afterwards only in
// the sense that subscribers are gone; new subscriptions still work.
func (h *Hub) Close() {
	h.mu.Lock()
	var all []*liveConn
	for _, set := range h.conns {
		for c := range set {
			all = append(all, c)
		}
	}
	h.conns = make(map[string]map[*liveConn]struct{})
	h.mu.Unlock()

	for _, c := range all {
		c.close()
		RecordLiveDisconnect()
	}
}

func (h *Hub) renderFragment(ctx context.Context, name string, params Params) (string, error) {
	root, err := h.reg.Produce(ctx, name, params)
	if err != nil {
		return "", err
	}
	if root == nil {
		return "", nil
	}
	return h.config.Renderer.RenderToString(root)
}

func (h *Hub) add(c *liveConn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	set, ok := h.conns[c.name]
	if !ok {
		set = make(map[*liveConn]struct{})
		h.conns[c.name] = set
	}
	set[c] = struct{}{}
	RecordLiveConnect()
}

// remove unregisters and closes the connection. Map presence is the
// latch, so concurrent removes decrement the gauge once.
func (h *Hub) remove(c *liveConn) {
	h.mu.Lock()
	set, ok := h.conns[c.name]
	if ok {
		if _, present := set[c]; present {
			delete(set, c)
			if len(set) == 0 {
				delete(h.conns, c.name)
			}
		} else {
			ok = false
		}
	}
	h.mu.Unlock()

	c.close()
	if ok {
		RecordLiveDisconnect()
	}
}

// liveConn is one subscriber connection.
type liveConn struct {
	conn   *websocket.Conn
	name   string
	params Params

	mu     sync.Mutex
	closed bool
	done   chan struct{}
}

// send writes one text frame. Safe for concurrent use.
func (c *liveConn) send(html string, timeout time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return websocket.ErrCloseSent
	}
	c.conn.SetWriteDeadline(time.Now().Add(timeout))
	return c.conn.WriteMessage(websocket.TextMessage, []byte(html))
}

func (c *liveConn) close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	close(c.done)
	c.conn.Close()
}

// readLoop consumes inbound frames until the connection dies. Clients
// are not expected to send anything; the read keeps control frames
// flowing and notices closure.
func (c *liveConn) readLoop(h *Hub) {
	defer h.remove(c)

	c.conn.SetReadDeadline(time.Now().Add(h.config.ReadTimeout))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(h.config.ReadTimeout))
		return nil
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err,
				websocket.CloseGoingAway,
				websocket.CloseAbnormalClosure,
				websocket.CloseNormalClosure) {
				h.config.Logger.Error("websocket read error",
					"fragment", c.name,
					"error", err)
			}
			return
		}
		c.conn.SetReadDeadline(time.Now().Add(h.config.ReadTimeout))
	}
}

// writeLoop sends pings until the connection closes.
func (c *liveConn) writeLoop(h *Hub) {
	ticker := time.NewTicker(h.config.PingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			deadline := time.Now().Add(h.config.WriteTimeout)
			if err := c.conn.WriteControl(websocket.PingMessage, nil, deadline); err != nil {
				h.remove(c)
				return
			}
		case <-c.done:
			return
		}
	}
}
