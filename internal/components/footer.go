package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/amamam1231/ai-project-312/domain/site"
)

func PageFooter(c *site.Content) g.Node {
	return Footer(
		Class("py-12 px-4 border-t border-slate-800"),
		Div(
			Class("container mx-auto max-w-6xl"),
			Div(
				Class("flex flex-col md:flex-row justify-between items-center gap-6"),
				Logo(c.Brand, false),
				Div(
					Class("text-gray-400 text-sm text-center md:text-right"),
					g.Text(c.Footer.Copyright),
				),
			),
		),
	)
}
