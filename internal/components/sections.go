package components

import (
	"fmt"
	"time"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/amamam1231/ai-project-312/domain/reveal"
	"github.com/amamam1231/ai-project-312/domain/site"
)

// secondColumnDelay lets the right column of a two-column section trail
// the left one.
const secondColumnDelay = 200 * time.Millisecond

func AboutSection(s *reveal.Scheduler, a site.About) g.Node {
	return Section(
		ID(a.ID),
		Class("py-20 md:py-32 px-4"),
		Div(
			Class("container mx-auto max-w-6xl"),
			Div(
				Class("grid md:grid-cols-2 gap-12 items-center"),

				RevealRegion(s, a.ID+"-image", 0,
					Div(
						Class("relative"),
						Div(
							Class("aspect-square rounded-2xl overflow-hidden bg-gradient-to-br from-blue-600/20 to-purple-600/20 border border-slate-800"),
							Img(
								Src(a.Image),
								Alt(a.ImageAlt),
								g.Attr("loading", "lazy"),
								Class("w-full h-full object-cover opacity-80 hover:opacity-100 transition-opacity"),
							),
						),
						Div(
							Class("absolute -bottom-6 -right-6 bg-slate-900 p-6 rounded-xl border border-slate-800 shadow-xl"),
							Div(
								Class("flex items-center gap-4"),
								Div(
									Class("w-12 h-12 bg-blue-600 rounded-full flex items-center justify-center"),
									Icon("heart", "size-6 text-white", ""),
								),
								Div(
									Div(Class("text-2xl font-bold"), g.Text(a.BadgeValue)),
									Div(Class("text-gray-400 text-sm"), g.Text(a.BadgeLabel)),
								),
							),
						),
					),
				),

				RevealRegion(s, a.ID+"-text", secondColumnDelay,
					SectionHeading(a.Heading, false),
					g.Group(g.Map(a.Paragraphs, func(p string) g.Node {
						return P(Class("text-gray-400 text-lg leading-relaxed mb-6"), g.Text(p))
					})),
					Div(
						Class("flex flex-wrap gap-4"),
						g.Group(g.Map(a.Points, func(p string) g.Node {
							return Div(
								Class("flex items-center gap-2 text-gray-300"),
								Icon("check", "size-5 text-blue-500", ""),
								Span(g.Text(p)),
							)
						})),
					),
				),
			),
		),
	)
}

func ServicesSection(s *reveal.Scheduler, sv site.Services) g.Node {
	cards := make([]g.Node, 0, len(sv.Items))
	for i, item := range sv.Items {
		cards = append(cards, RevealRegion(s, fmt.Sprintf("%s-%d", sv.ID, i), reveal.Stagger(i, StaggerStep),
			Div(
				Class("group bg-slate-950 border border-slate-800 rounded-2xl p-8 hover:border-blue-500/50 transition-all duration-300 hover:shadow-lg hover:shadow-blue-500/10 h-full"),
				Div(
					Class("w-14 h-14 bg-blue-600/10 rounded-xl flex items-center justify-center mb-6 group-hover:bg-blue-600/20 transition-colors"),
					Icon(item.Icon, "size-7 text-blue-400", ""),
				),
				H3(Class("text-xl font-bold mb-3 group-hover:text-blue-400 transition-colors"), g.Text(item.Title)),
				P(Class("text-gray-400 leading-relaxed"), g.Text(item.Description)),
			),
		))
	}

	return Section(
		ID(sv.ID),
		Class("py-20 md:py-32 px-4 bg-slate-900/50"),
		Div(
			Class("container mx-auto max-w-6xl"),
			RevealRegion(s, sv.ID+"-heading", 0, SectionHeading(sv.Heading, true)),
			Div(Class("grid md:grid-cols-2 lg:grid-cols-3 gap-6"), g.Group(cards)),
		),
	)
}

func TestimonialsSection(s *reveal.Scheduler, ts site.Testimonials) g.Node {
	cards := make([]g.Node, 0, len(ts.Items))
	for i, t := range ts.Items {
		cards = append(cards, RevealRegion(s, fmt.Sprintf("%s-%d", ts.ID, i), reveal.Stagger(i, StaggerStep),
			testimonialCard(t),
		))
	}

	return Section(
		ID(ts.ID),
		Class("py-20 md:py-32 px-4"),
		Div(
			Class("container mx-auto max-w-6xl"),
			RevealRegion(s, ts.ID+"-heading", 0, SectionHeading(ts.Heading, true)),
			Div(Class("grid md:grid-cols-3 gap-6"), g.Group(cards)),
		),
	)
}

func testimonialCard(t site.Testimonial) g.Node {
	stars := make([]g.Node, t.Rating)
	for i := range stars {
		stars[i] = Icon("star", "size-4 text-yellow-500", "")
	}

	return Div(
		Class("bg-slate-900/50 border border-slate-800 rounded-2xl p-8 h-full flex flex-col"),
		Div(
			Class("flex gap-1 mb-4"),
			g.Attr("aria-label", fmt.Sprintf("%d/5", t.Rating)),
			g.Group(stars),
		),
		Div(
			Class("mb-6 flex-grow"),
			Icon("quote", "size-8 text-blue-600/30 mb-4", ""),
			P(Class("text-gray-300 leading-relaxed"), g.Text(t.Content)),
		),
		Div(
			Class("flex items-center gap-4 pt-6 border-t border-slate-800"),
			Div(
				Class("w-12 h-12 bg-gradient-to-br from-blue-500 to-purple-600 rounded-full flex items-center justify-center text-white font-bold"),
				g.Text(t.Initial()),
			),
			Div(
				Div(Class("font-semibold"), g.Text(t.Name)),
				Div(Class("text-gray-400 text-sm"), g.Text(t.Role)),
			),
		),
	)
}
