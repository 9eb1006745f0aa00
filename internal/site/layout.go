package site

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/alexisbeaulieu97/storefront/internal/config"
)

const tailwindCDN = "https://cdn.tailwindcss.com"

// Layout wraps a page in the persistent chrome: a sticky navigation bar
// above the content slot.
func Layout(site config.Site, nav []config.NavLink, title string, content g.Node) g.Node {
	pageTitle := site.Title
	if title != "" {
		pageTitle = title + " · " + site.Title
	}

	return h.Doctype(
		h.HTML(
			h.Lang("en"),
			h.Head(
				h.Meta(h.Charset("utf-8")),
				h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
				h.TitleEl(g.Text(pageTitle)),
				h.Script(h.Src(tailwindCDN)),
			),
			h.Body(
				h.Div(h.Class("flex flex-row"),
					h.Div(),
					h.Div(h.Class("w-full bg-light-1"),
						h.Div(h.Class("sticky top-0 z-50"), Navbar(site.Brand, nav)),
						h.Main(content),
					),
				),
			),
		),
	)
}
