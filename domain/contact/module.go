package contact

import (
	"go.uber.org/fx"

	"github.com/amamam1231/ai-project-312/domain/i18n"
	"github.com/amamam1231/ai-project-312/domain/scheduler"
	"github.com/amamam1231/ai-project-312/internal/config"
)

var Module = fx.Module("contact",
	fx.Provide(
		NewCatalog,
		NewService,
	),
	fx.Invoke(RegisterSweepTask),
)

func NewCatalog(cfg *config.Config) *i18n.Catalog {
	return i18n.NewCatalog(cfg.Site.Locale)
}

// RegisterSweepTask schedules idle session eviction.
func RegisterSweepTask(s *scheduler.Scheduler, svc *Service, cfg *config.Config) error {
	return s.AddIntervalTask("contact.sweep", cfg.Contact.SweepInterval, svc.Sweep)
}
