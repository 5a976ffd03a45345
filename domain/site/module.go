package site

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/amamam1231/ai-project-312/internal/config"
	"github.com/amamam1231/ai-project-312/pkg/logger"
)

var Module = fx.Module("site",
	fx.Provide(NewContent),
)

func NewContent(cfg *config.Config, log *slog.Logger) (*Content, error) {
	c, err := Load(cfg.Site.ContentPath)
	if err != nil {
		return nil, err
	}
	source := "embedded"
	if cfg.Site.ContentPath != "" {
		source = cfg.Site.ContentPath
	}
	log.Info("site content loaded", logger.Scope("site"),
		slog.String("source", source),
		slog.Int("services", len(c.Services.Items)),
		slog.Int("testimonials", len(c.Testimonials.Items)))
	return c, nil
}
