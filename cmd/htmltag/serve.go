package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/htmltag-dev/htmltag/internal/config"
	"github.com/htmltag-dev/htmltag/internal/errors"
	"github.com/htmltag-dev/htmltag/internal/gallery"
	"github.com/htmltag-dev/htmltag/pkg/fragment"
	"github.com/htmltag-dev/htmltag/pkg/publish"
	"github.com/htmltag-dev/htmltag/pkg/render"
)

func serveCmd() *cobra.Command {
	var (
		port int
		host string
		tick time.Duration
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the fragment gallery",
		Long: `Serve the built-in gallery pages and fragments over HTTP.

The server exposes:
  • Gallery pages at /
  • Rendered fragments at /fragments/{name}
  • Live fragments over WebSocket at /live/{name}
  • Prometheus metrics at /metrics

Examples:
  htmltag serve
  htmltag serve --port=8080
  htmltag serve --tick=5s`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(port, host, tick)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to serve on (default from htmltag.json)")
	cmd.Flags().StringVarP(&host, "host", "H", "", "Host to bind to (default from htmltag.json)")
	cmd.Flags().DurationVar(&tick, "tick", time.Second, "Clock fragment refresh interval (0 disables)")

	return cmd
}

func runServe(port int, host string, tick time.Duration) error {
	// Load config
	cfg, err := config.LoadFromWorkingDir()
	if err != nil {
		return err
	}

	// Apply command-line overrides
	if port > 0 {
		cfg.Server.Port = port
	}
	if host != "" {
		cfg.Server.Host = host
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := cfg.Logger()
	renderer := render.NewRenderer(cfg.RendererConfig())

	// Register gallery fragments
	reg := fragment.NewRegistry()
	if err := gallery.Register(reg); err != nil {
		return err
	}

	// Params token codec, when a signing key is configured
	var codec *fragment.Codec
	if key := cfg.SigningKey(); key != "" {
		codec, err = fragment.NewCodec([]byte(key))
		if err != nil {
			return errors.New("E142").Wrap(err)
		}
	} else {
		warn("No signing key configured, signed params tokens are disabled")
	}

	hub := fragment.NewHub(reg, fragment.LiveConfig{
		Logger:   logger,
		Renderer: renderer,
		Codec:    codec,
	})

	r := chi.NewRouter()
	r.Use(fragment.Metrics())
	r.Use(fragment.OpenTelemetry())
	r.Mount("/fragments", fragment.Handler(reg,
		fragment.WithLogger(logger),
		fragment.WithRenderer(renderer),
		fragment.WithCodec(codec),
	))
	r.Mount("/live", hub.Handler())
	r.Handle("/metrics", promhttp.Handler())

	// Dev serving keeps source asset names; exports fingerprint them.
	pages := gallery.Pages(publish.NewPassthroughResolver("/"))
	sheetCSS := gallery.Sheet().String()
	r.Get("/"+gallery.SheetPath, func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "text/css; charset=utf-8")
		io.WriteString(w, sheetCSS)
	})
	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		servePage(w, req, renderer, pages, "index.html")
	})
	r.Get("/{page}", func(w http.ResponseWriter, req *http.Request) {
		servePage(w, req, renderer, pages, chi.URLParam(req, "page"))
	})

	// Handle signals
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigCh
		cancel()
	}()

	// Refresh the clock fragment on every tick
	if tick > 0 {
		go func() {
			ticker := time.NewTicker(tick)
			defer ticker.Stop()
			for {
				select {
				case <-ticker.C:
					hub.Invalidate("clock")
				case <-ctx.Done():
					return
				}
			}
		}()
	}

	srv := &http.Server{Addr: cfg.Addr(), Handler: r}
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	printBanner()
	fmt.Println()
	info("Gallery:    %s/", cfg.URL())
	info("Fragments:  %s/fragments/{name}", cfg.URL())
	info("Live:       ws://%s/live/{name}", cfg.Addr())
	info("Metrics:    %s/metrics", cfg.URL())
	fmt.Println()
	for _, name := range reg.Names() {
		info("fragment: %s", name)
	}
	fmt.Println()

	select {
	case err := <-errCh:
		return errors.New("E141").
			WithDetail("Could not listen on " + cfg.Addr()).
			Wrap(err)
	case <-ctx.Done():
	}

	fmt.Println("\n\n  Shutting down...")
	hub.Close()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	return srv.Shutdown(shutdownCtx)
}

// servePage renders a gallery page or responds 404.
func servePage(w http.ResponseWriter, r *http.Request, renderer *render.Renderer, pages map[string]render.PageData, name string) {
	page, ok := pages[name]
	if !ok {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := renderer.RenderPage(w, page); err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}
