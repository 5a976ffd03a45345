// Package site holds the landing page copy. The default document is
// embedded; SITE_CONTENT_PATH replaces it with a file on disk.
package site

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed content.yaml
var defaultContent []byte

type Content struct {
	Brand        Brand        `yaml:"brand"`
	Nav          []NavLink    `yaml:"nav"`
	Hero         Hero         `yaml:"hero"`
	About        About        `yaml:"about"`
	Services     Services     `yaml:"services"`
	Testimonials Testimonials `yaml:"testimonials"`
	Contact      Contact      `yaml:"contact"`
	Footer       Footer       `yaml:"footer"`
}

type Brand struct {
	Name string `yaml:"name"`
	Icon string `yaml:"icon"`
	CTA  string `yaml:"cta"`
}

type NavLink struct {
	ID    string `yaml:"id"`
	Label string `yaml:"label"`
}

type Link struct {
	Label  string `yaml:"label"`
	Target string `yaml:"target"`
}

type Stat struct {
	Value string `yaml:"value"`
	Label string `yaml:"label"`
}

type Hero struct {
	Badge        string `yaml:"badge"`
	Title        string `yaml:"title"`
	Highlight    string `yaml:"highlight"`
	Lead         string `yaml:"lead"`
	PrimaryCTA   Link   `yaml:"primary_cta"`
	SecondaryCTA Link   `yaml:"secondary_cta"`
	Stats        []Stat `yaml:"stats"`
}

// Heading is shared by every titled section: a small eyebrow line, then a
// title whose last words are highlighted.
type Heading struct {
	ID        string `yaml:"id"`
	Eyebrow   string `yaml:"eyebrow"`
	Title     string `yaml:"title"`
	Highlight string `yaml:"highlight"`
	Lead      string `yaml:"lead"`
}

type About struct {
	Heading    `yaml:",inline"`
	Image      string   `yaml:"image"`
	ImageAlt   string   `yaml:"image_alt"`
	BadgeValue string   `yaml:"badge_value"`
	BadgeLabel string   `yaml:"badge_label"`
	Paragraphs []string `yaml:"paragraphs"`
	Points     []string `yaml:"points"`
}

type Service struct {
	Icon        string `yaml:"icon"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

type Services struct {
	Heading `yaml:",inline"`
	Items   []Service `yaml:"items"`
}

type Testimonial struct {
	Name    string `yaml:"name"`
	Role    string `yaml:"role"`
	Content string `yaml:"content"`
	Rating  int    `yaml:"rating"`
}

// Initial is the avatar letter.
func (t Testimonial) Initial() string {
	for _, r := range t.Name {
		return string(r)
	}
	return ""
}

type Testimonials struct {
	Heading `yaml:",inline"`
	Items   []Testimonial `yaml:"items"`
}

type Channel struct {
	Icon  string `yaml:"icon"`
	Label string `yaml:"label"`
	Value string `yaml:"value"`
	Href  string `yaml:"href,omitempty"`
}

type Contact struct {
	Heading  `yaml:",inline"`
	Channels []Channel `yaml:"channels"`
}

type Footer struct {
	Copyright string `yaml:"copyright"`
}

const maxRating = 5

// Default returns the embedded content.
func Default() (*Content, error) {
	return Parse(defaultContent)
}

// Load reads content from path, or the embedded document when path is empty.
func Load(path string) (*Content, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read site content: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a content document. Unknown keys are errors.
func Parse(data []byte) (*Content, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var c Content
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("decode site content: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// SectionIDs returns the anchors of the titled sections in page order.
func (c *Content) SectionIDs() []string {
	return []string{c.About.ID, c.Services.ID, c.Testimonials.ID, c.Contact.ID}
}

// Validate checks that anchors are unique, every link points at a section
// and ratings are in range.
func (c *Content) Validate() error {
	var errs []error

	if strings.TrimSpace(c.Brand.Name) == "" {
		errs = append(errs, errors.New("brand.name is required"))
	}

	sections := make(map[string]bool)
	for _, id := range c.SectionIDs() {
		switch {
		case id == "":
			errs = append(errs, errors.New("section id is required"))
		case sections[id]:
			errs = append(errs, fmt.Errorf("duplicate section id %q", id))
		}
		sections[id] = true
	}

	for i, link := range c.Nav {
		if !sections[link.ID] {
			errs = append(errs, fmt.Errorf("nav[%d] targets unknown section %q", i, link.ID))
		}
	}
	for _, link := range []Link{c.Hero.PrimaryCTA, c.Hero.SecondaryCTA} {
		if link.Target != "" && !sections[link.Target] {
			errs = append(errs, fmt.Errorf("hero cta %q targets unknown section %q", link.Label, link.Target))
		}
	}

	for i, t := range c.Testimonials.Items {
		if t.Rating < 1 || t.Rating > maxRating {
			errs = append(errs, fmt.Errorf("testimonials[%d] rating %d out of range 1..%d", i, t.Rating, maxRating))
		}
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid site content: %w", err)
	}
	return nil
}
