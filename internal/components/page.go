package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/amamam1231/ai-project-312/domain/reveal"
	"github.com/amamam1231/ai-project-312/domain/site"
)

// Page is one rendering of the landing page. Reveal collects the regions
// of this page view.
type Page struct {
	Content *site.Content
	Form    FormView
	Reveal  *reveal.Scheduler
}

func LandingPage(p Page) g.Node {
	c := p.Content

	return Layout(
		PageConfig{
			Title:       c.Brand.Name + " | " + c.Hero.Title + " " + c.Hero.Highlight,
			Description: c.Hero.Lead,
			Lang:        p.Form.Messages.Tag.String(),
			OGImage:     c.About.Image,
		},
		Topbar(c),
		Main(
			HeroSection(c.Hero),
			AboutSection(p.Reveal, c.About),
			ServicesSection(p.Reveal, c.Services),
			TestimonialsSection(p.Reveal, c.Testimonials),
			ContactSection(p.Reveal, c.Contact, p.Form),
		),
		PageFooter(c),
	)
}
