package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/amamam1231/ai-project-312/domain/reveal"
)

type PageConfig struct {
	Title       string
	Description string
	Lang        string
	OGImage     string
}

func Layout(config PageConfig, content ...g.Node) g.Node {
	if config.Lang == "" {
		config.Lang = "ru"
	}

	return g.Group([]g.Node{
		g.Raw("<!DOCTYPE html>"),
		HTML(
			Lang(config.Lang),
			Class("no-js scroll-smooth"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1.0")),
				TitleEl(g.Text(config.Title)),
				Meta(Name("description"), Content(config.Description)),

				Meta(g.Attr("property", "og:title"), Content(config.Title)),
				Meta(g.Attr("property", "og:description"), Content(config.Description)),
				Meta(g.Attr("property", "og:type"), Content("website")),
				g.If(config.OGImage != "", Meta(g.Attr("property", "og:image"), Content(config.OGImage))),

				// Regions start hidden only when scripts run; otherwise
				// content stays visible.
				Script(g.Raw(`document.documentElement.classList.replace("no-js","js")`)),

				Script(Src("https://cdn.tailwindcss.com")),
				Link(Rel("stylesheet"), Href("/static/styles.css")),
				Script(Src("https://code.iconify.design/1/1.0.7/iconify.min.js")),
			),
			Body(
				Class("min-h-screen bg-slate-950 text-white overflow-x-hidden"),
				g.Attr("data-reveal-margin", reveal.ViewportMargin),
				g.Group(content),

				Script(Type("module"), Src("/static/js/topbar-scroll.js")),
				Script(Type("module"), Src("/static/js/mobile-menu.js")),
				Script(Type("module"), Src("/static/js/reveal.js")),
				Script(Type("module"), Src("/static/js/contact-form.js")),
			),
		),
	})
}
