// Package gallery ships the built-in demo site the CLI serves and
// exports. It doubles as a living example of the builder packages: the
// pages are tag trees, the styling is a styles.Sheet, and the dynamic
// bits are fragment producers.
package gallery

import (
	"strconv"

	"github.com/htmltag-dev/htmltag/el"
	"github.com/htmltag-dev/htmltag/pkg/publish"
	"github.com/htmltag-dev/htmltag/pkg/render"
	"github.com/htmltag-dev/htmltag/pkg/styles"
	"github.com/htmltag-dev/htmltag/pkg/tag"
)

// SheetPath is the source path of the site style sheet. The dev server
// serves it under this name; exports may fingerprint it and resolve
// page links through a manifest.
const SheetPath = "styles.css"

// Sheet returns the site style sheet shared by every gallery page.
func Sheet() styles.Sheet {
	s := styles.New()
	s.AddDecls("body", styles.Decls{
		"font-family": "system-ui, sans-serif",
		"margin":      "0",
		"color":       "#1a1a2e",
		"background":  "#f7f7fb",
	})
	s.AddDecls("header.site", styles.Decls{
		"padding":    "16px 32px",
		"background": "#1a1a2e",
		"color":      "#ffffff",
	})
	s.AddDecls("main", styles.Decls{
		"max-width": "720px",
		"margin":    "0 auto",
		"padding":   "32px",
	})
	s.AddDecls(".cards", styles.Decls{
		"display": "grid",
		"gap":     "16px",
	})
	s.AddDecls(".card", styles.Decls{
		"padding":       "16px",
		"background":    "#ffffff",
		"border-radius": "8px",
		"box-shadow":    "0 1px 3px rgba(0,0,0,0.12)",
	})
	s.AddDecls(".card h2", styles.Decls{
		"margin-top": "0",
		"font-size":  "18px",
	})
	s.AddDecls("table.items", styles.Decls{
		"border-collapse": "collapse",
		"width":           "100%",
	})
	s.AddDecls("table.items td, table.items th", styles.Decls{
		"border":     "1px solid #d8d8e0",
		"padding":    "6px 10px",
		"text-align": "left",
	})
	s.AddDecls(".clock", styles.Decls{
		"font-variant-numeric": "tabular-nums",
	})
	return s
}

// Shell wraps body content in the shared page layout. The style sheet
// link is resolved through assets so exported pages can point at a
// fingerprinted file.
func Shell(assets publish.Resolver, title string, body ...*tag.Tag) render.PageData {
	main := el.Main(body)
	return render.PageData{
		Title:       title,
		Lang:        "en",
		StyleSheets: []string{assets.Asset(SheetPath)},
		Body: el.Body(
			el.Header(el.Class("site"),
				el.H1("htmltag gallery"),
			),
			main,
		),
	}
}

// card builds one navigation card.
func card(title, href, desc string) *tag.Tag {
	return el.Section(el.Class("card"),
		el.H2(el.A(el.Href(href), title)),
		el.P(desc),
	)
}

// itemRow is one line of the demo table.
type itemRow struct {
	Name string
	Qty  int
	Note string
}

var demoItems = []itemRow{
	{"anvil", 2, "heavy"},
	{"rope", 30, "meters"},
	{"lantern", 4, "oil included"},
	{"compass", 1, "points north"},
}

// itemTable renders rows as a styled table.
func itemTable(rows []itemRow) *tag.Tag {
	return el.Table(el.Class("items"),
		el.Thead(el.Tr(
			el.Th("Item"),
			el.Th("Qty"),
			el.Th("Note"),
		)),
		el.Tbody(el.Range(rows, func(r itemRow, _ int) *tag.Tag {
			return el.Tr(
				el.Td(r.Name),
				el.Td(strconv.Itoa(r.Qty)),
				el.Td(r.Note),
			)
		})),
	)
}

// Pages returns every static gallery page keyed by output path.
func Pages(assets publish.Resolver) map[string]render.PageData {
	return map[string]render.PageData{
		"index.html": Shell(assets, "htmltag gallery",
			el.P("Small pages built from tag trees. The fragments below re-render on request."),
			el.Div(el.Class("cards"),
				card("Clock", "/fragments/clock", "Server time, one render per request."),
				card("Greeting", "/fragments/greeting?who=ada", "Personalized from query params."),
				card("Items", "items.html", "A static table exported with the site."),
			),
		),
		"items.html": Shell(assets, "Items",
			el.H2("Inventory"),
			itemTable(demoItems),
		),
	}
}
