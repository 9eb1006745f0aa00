package site

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/alexisbeaulieu97/storefront/internal/config"
)

const navLinkClass = "text-white hover:bg-gray-700 px-3 py-2 rounded"

// Navbar renders the brand and plain navigation links.
func Navbar(brand string, links []config.NavLink) g.Node {
	return h.Nav(h.Class("bg-gray-800 p-4"),
		h.Div(h.Class("max-w-7xl mx-auto px-4"),
			h.Div(h.Class("flex justify-between items-center"),
				h.Div(h.Class("text-white font-bold text-xl"), g.Text(brand)),
				h.Ul(h.Class("flex space-x-4"),
					g.Map(links, func(link config.NavLink) g.Node {
						return h.Li(h.A(h.Href(link.Path), h.Class(navLinkClass), g.Text(link.Label)))
					}),
				),
			),
		),
	)
}
