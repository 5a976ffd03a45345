package components

import (
	"fmt"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/amamam1231/ai-project-312/domain/site"
)

// Icon renders a lucide icon through iconify. An empty label hides it from
// assistive technology.
func Icon(name, classes, ariaLabel string) g.Node {
	cls := "iconify inline-block"
	if classes != "" {
		cls = fmt.Sprintf("iconify inline-block %s", classes)
	}

	if ariaLabel != "" {
		return Span(
			Class(cls),
			g.Attr("data-icon", "lucide:"+name),
			g.Attr("role", "img"),
			g.Attr("aria-label", ariaLabel),
		)
	}

	return Span(
		Class(cls),
		g.Attr("data-icon", "lucide:"+name),
		g.Attr("aria-hidden", "true"),
	)
}

// IconBadge is the rounded square holding a section or channel icon.
func IconBadge(name, size string) g.Node {
	return Div(
		Class(fmt.Sprintf("%s bg-blue-600/10 rounded-xl flex items-center justify-center shrink-0", size)),
		Icon(name, "size-6 text-blue-400", ""),
	)
}

func Logo(brand site.Brand, large bool) g.Node {
	box, icon, text := "w-8 h-8", "size-[18px]", "text-lg"
	if large {
		box, icon, text = "w-10 h-10", "size-6", "text-xl"
	}

	return Div(
		Class("flex items-center space-x-2"),
		Div(
			Class(box+" bg-blue-600 rounded-lg flex items-center justify-center"),
			Icon(brand.Icon, icon+" text-white", ""),
		),
		Span(Class(text+" font-bold"), g.Text(brand.Name)),
	)
}

// SectionHeading renders the eyebrow, the title with its highlighted tail
// and the optional lead paragraph.
func SectionHeading(h site.Heading, centered bool) g.Node {
	wrapper, lead := "", "text-gray-400 text-lg mb-8"
	if centered {
		wrapper, lead = "text-center mb-16", "text-gray-400 text-lg max-w-2xl mx-auto"
	}

	return Div(
		g.If(wrapper != "", Class(wrapper)),
		Span(Class("text-blue-400 font-medium mb-4 block"), g.Text(h.Eyebrow)),
		H2(
			Class("text-4xl md:text-5xl font-bold mb-6 leading-tight"),
			g.Text(h.Title+" "),
			Highlight(h.Highlight),
		),
		g.If(h.Lead != "", P(Class(lead), g.Text(h.Lead))),
	)
}

func Highlight(text string) g.Node {
	return Span(
		Class("text-transparent bg-clip-text bg-gradient-to-r from-blue-400 to-purple-500"),
		g.Text(text),
	)
}
