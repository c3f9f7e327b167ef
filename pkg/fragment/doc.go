// Package fragment serves named tag trees over HTTP.
//
// A Producer is a function that builds one fragment from request
// parameters. Producers are registered by name and exposed by Handler
// as GET /{name} routes, rendering to text/html:
//
//	reg := fragment.NewRegistry()
//	reg.Register("clock", func(ctx context.Context, p fragment.Params) (*tag.Tag, error) {
//	    return el.Time_(el.Class("clock"), time.Now().Format(time.RFC3339)), nil
//	})
//
//	r := chi.NewRouter()
//	r.Mount("/fragments", fragment.Handler(reg))
//
// # Parameters
//
// Plain query parameters become Params as-is. With a Codec configured,
// clients may instead send a single signed token (msgpack payload with
// an HMAC signature) in the token query parameter; tampered tokens are
// rejected before the producer runs.
//
// # Observability
//
// Metrics and OpenTelemetry return standard net/http middleware
// producing Prometheus counters and histograms per fragment and
// OpenTelemetry server spans. Both are opt-in and wired by the caller.
//
// # Live updates
//
// Hub upgrades GET /{name} to a WebSocket, sends the rendered fragment,
// and re-sends it whenever Invalidate is called with that fragment's
// name, so a page can keep a fragment current without polling.
package fragment
