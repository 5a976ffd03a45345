package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/amamam1231/ai-project-312/domain/site"
)

// Topbar is the fixed header. topbar-scroll.js flips data-scrolled once
// the page moves past 50px, which gives the bar its backdrop.
func Topbar(c *site.Content) g.Node {
	return Header(
		ID("topbar"),
		g.Attr("data-scrolled", "false"),
		Class("topbar fixed top-0 left-0 right-0 z-50 transition-all duration-300"),

		Nav(
			Class("container mx-auto px-4 md:px-6 py-4 flex items-center justify-between"),
			A(Href("#"), Logo(c.Brand, true)),

			Div(
				Class("hidden md:flex items-center space-x-8"),
				g.Group(g.Map(c.Nav, func(link site.NavLink) g.Node {
					return A(
						Href("#"+link.ID),
						Class("text-gray-300 hover:text-white transition-colors font-medium"),
						g.Text(link.Label),
					)
				})),
				A(
					Href("#"+c.Contact.ID),
					Class("bg-blue-600 hover:bg-blue-700 text-white px-6 py-2 rounded-lg font-semibold transition-all transform hover:scale-105"),
					g.Text(c.Brand.CTA),
				),
			),

			Button(
				Type("button"),
				Class("md:hidden p-2"),
				g.Attr("data-menu-toggle", ""),
				g.Attr("aria-controls", "mobile-menu"),
				g.Attr("aria-expanded", "false"),
				Span(Class("menu-open-icon"), Icon("menu", "size-6", "Menu")),
				Span(Class("menu-close-icon hidden"), Icon("x", "size-6", "Close")),
			),
		),

		Div(
			ID("mobile-menu"),
			Class("md:hidden hidden bg-slate-900 border-b border-slate-800"),
			Div(
				Class("px-4 py-6 space-y-4"),
				g.Group(g.Map(c.Nav, func(link site.NavLink) g.Node {
					return A(
						Href("#"+link.ID),
						g.Attr("data-menu-close", ""),
						Class("block w-full text-left text-gray-300 hover:text-white py-2 font-medium"),
						g.Text(link.Label),
					)
				})),
				A(
					Href("#"+c.Contact.ID),
					g.Attr("data-menu-close", ""),
					Class("block text-center w-full bg-blue-600 hover:bg-blue-700 text-white px-6 py-3 rounded-lg font-semibold mt-4"),
					g.Text(c.Brand.CTA),
				),
			),
		),
	)
}
