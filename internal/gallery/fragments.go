package gallery

import (
	"context"
	"time"

	"github.com/htmltag-dev/htmltag/el"
	"github.com/htmltag-dev/htmltag/pkg/fragment"
	"github.com/htmltag-dev/htmltag/pkg/tag"
)

// now is swapped out in tests.
var now = time.Now

// maxItems caps the items fragment so a query parameter cannot demand
// an unbounded render.
const maxItems = 50

// Register adds the built-in demo fragments to reg.
//
// Fragments registered:
//   - clock: current server time; params tz (IANA zone) and layout
//   - greeting: a salutation; param who
//   - items: first n demo inventory rows; param n
func Register(reg *fragment.Registry) error {
	if err := reg.Register("clock", clockFragment); err != nil {
		return err
	}
	if err := reg.Register("greeting", greetingFragment); err != nil {
		return err
	}
	return reg.Register("items", itemsFragment)
}

func clockFragment(ctx context.Context, params fragment.Params) (*tag.Tag, error) {
	loc := time.UTC
	if name := params.Get("tz", ""); name != "" {
		// Unknown zones fall back to UTC rather than failing the
		// request.
		if l, err := time.LoadLocation(name); err == nil {
			loc = l
		}
	}
	layout := params.Get("layout", time.RFC3339)

	t := now().In(loc)
	return el.Time_(
		el.Class("clock"),
		el.Datetime(t.Format(time.RFC3339)),
		t.Format(layout),
	), nil
}

func greetingFragment(ctx context.Context, params fragment.Params) (*tag.Tag, error) {
	who := params.Get("who", "world")
	return el.P(el.Class("greeting"), "Hello, "+who+"!"), nil
}

func itemsFragment(ctx context.Context, params fragment.Params) (*tag.Tag, error) {
	n := params.Int("n", len(demoItems))
	if n < 0 {
		n = 0
	}
	if n > maxItems {
		n = maxItems
	}

	rows := demoItems
	if n < len(rows) {
		rows = rows[:n]
	}
	return itemTable(rows), nil
}
