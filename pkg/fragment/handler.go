package fragment

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/htmltag-dev/htmltag/pkg/render"
)

// HandlerConfig controls the fragment HTTP handler.
type HandlerConfig struct {
	// Logger receives one line per request. Defaults to slog.Default().
	Logger *slog.Logger

	// Renderer turns produced trees into HTML. Defaults to the compact
	// renderer.
	Renderer *render.Renderer

	// Codec, when set, enables signed params tokens. Requests carrying
	// a token parameter are rejected when no codec is configured.
	Codec *Codec
}

// HandlerOption mutates the handler configuration.
type HandlerOption func(*HandlerConfig)

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) HandlerOption {
	return func(c *HandlerConfig) {
		c.Logger = logger
	}
}

// WithRenderer sets the renderer used for responses.
func WithRenderer(r *render.Renderer) HandlerOption {
	return func(c *HandlerConfig) {
		c.Renderer = r
	}
}

// WithCodec enables signed params tokens.
func WithCodec(codec *Codec) HandlerOption {
	return func(c *HandlerConfig) {
		c.Codec = codec
	}
}

func defaultHandlerConfig() HandlerConfig {
	return HandlerConfig{
		Logger:   slog.Default(),
		Renderer: render.NewRenderer(render.Config{}),
	}
}

// Handler serves registered fragments as HTML. It routes GET /{name}
// relative to its mount point:
//
//	r.Mount("/fragments", fragment.Handler(reg, fragment.WithCodec(codec)))
//
// Unknown names return 404, unusable parameters 400, and producer
// failures 500. The response body on errors is plain text.
func Handler(reg *Registry, opts ...HandlerOption) http.Handler {
	config := defaultHandlerConfig()
	for _, opt := range opts {
		opt(&config)
	}

	h := &handler{reg: reg, config: config}

	r := chi.NewRouter()
	r.Get("/{name}", h.serveFragment)
	return r
}

type handler struct {
	reg    *Registry
	config HandlerConfig
}

func (h *handler) serveFragment(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	start := time.Now()

	params, err := h.requestParams(r)
	if err != nil {
		h.fail(w, name, err)
		return
	}

	root, err := h.reg.Produce(r.Context(), name, params)
	if err != nil {
		h.fail(w, name, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if root == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	if err := h.config.Renderer.RenderToWriter(w, root); err != nil {
		// Headers are out; all we can do is log.
		h.config.Logger.Error("fragment write failed",
			"fragment", name,
			"error", err)
		return
	}

	h.config.Logger.Info("fragment rendered",
		"fragment", name,
		"duration", time.Since(start))
}

// requestParams extracts Params from the query string, preferring a
// signed token when one is present.
func (h *handler) requestParams(r *http.Request) (Params, error) {
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

// fail maps an error to a status code and logs it.
func (h *handler) fail(w http.ResponseWriter, name string, err error) {
	status := http.StatusInternalServerError
	switch {
	case IsNotFound(err):
		status = http.StatusNotFound
	case IsBadParams(err):
		status = http.StatusBadRequest
	}

	if status == http.StatusInternalServerError {
		h.config.Logger.Error("fragment failed",
			"fragment", name,
			"error", err)
	} else {
		h.config.Logger.Warn("fragment rejected",
			"fragment", name,
			"status", status,
			"error", err)
	}

	http.Error(w, http.StatusText(status), status)
}
