package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/amamam1231/ai-project-312/domain/site"
)

// HeroSection animates on load through CSS, not through the reveal
// scheduler: it is on screen from the start.
func HeroSection(h site.Hero) g.Node {
	return Section(
		Class("relative min-h-screen flex items-center justify-center pt-20 px-4 overflow-hidden"),

		Div(Class("absolute inset-0 bg-gradient-to-b from-blue-900/20 via-slate-950 to-slate-950")),
		Div(Class("absolute top-0 left-1/2 -translate-x-1/2 w-[800px] h-[800px] bg-blue-600/20 rounded-full blur-[120px] -z-10")),

		Div(
			Class("container mx-auto text-center relative z-10"),
			Div(
				Class("hero-enter"),
				Span(
					Class("inline-block px-4 py-2 bg-blue-600/20 border border-blue-500/30 rounded-full text-blue-400 text-sm font-medium mb-6"),
					g.Text(h.Badge),
				),
				H1(
					Class("text-5xl md:text-7xl lg:text-8xl font-black mb-6 tracking-tight leading-tight"),
					g.Text(h.Title),
					Br(),
					Highlight(h.Highlight),
				),
				P(
					Class("text-xl md:text-2xl text-gray-400 mb-12 max-w-3xl mx-auto leading-relaxed"),
					g.Text(h.Lead),
				),
				Div(
					Class("flex flex-col sm:flex-row gap-4 justify-center"),
					A(
						Href("#"+h.PrimaryCTA.Target),
						Class("bg-blue-600 hover:bg-blue-700 text-white px-8 py-4 rounded-xl text-lg font-bold transition-all transform hover:scale-105 flex items-center justify-center gap-2 shadow-lg shadow-blue-600/30"),
						g.Text(h.PrimaryCTA.Label),
						Icon("arrow-right", "size-5", ""),
					),
					A(
						Href("#"+h.SecondaryCTA.Target),
						Class("bg-slate-800/50 hover:bg-slate-800 text-white px-8 py-4 rounded-xl text-lg font-bold transition-all border border-slate-700 hover:border-slate-600"),
						g.Text(h.SecondaryCTA.Label),
					),
				),
			),

			Div(
				Class("hero-enter hero-enter-late mt-20 grid grid-cols-2 md:grid-cols-4 gap-8 max-w-4xl mx-auto"),
				g.Group(g.Map(h.Stats, func(s site.Stat) g.Node {
					return Div(
						Class("text-center"),
						Div(Class("text-3xl md:text-4xl font-black text-blue-400 mb-2"), g.Text(s.Value)),
						Div(Class("text-gray-400 text-sm"), g.Text(s.Label)),
					)
				})),
			),
		),

		Div(
			Class("scroll-indicator absolute bottom-8 left-1/2 -translate-x-1/2"),
			Div(
				Class("w-6 h-10 border-2 border-gray-600 rounded-full flex justify-center pt-2"),
				Div(Class("w-1 h-2 bg-gray-400 rounded-full")),
			),
		),
	)
}
