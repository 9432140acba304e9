package providers

import (
	"github.com/samber/do/v2"

	"github.com/medialogapp/medialog-server/internal/config"
	"github.com/medialogapp/medialog-server/internal/logger"
	"github.com/medialogapp/medialog-server/internal/mailer"
)

// ProvideMailer provides the SMTP export mailer.
func ProvideMailer(i do.Injector) (*mailer.Mailer, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	if !cfg.Mail.Configured() {
		log.Warn("SMTP relay not fully configured; export emails will be skipped")
	}

	return mailer.New(cfg.Mail), nil
}

// DispatcherHandle wraps the export dispatcher with shutdown capability.
type DispatcherHandle struct {
	*mailer.Dispatcher
}

// ProvideDispatcher provides the background export delivery dispatcher
// with its workers already running.
func ProvideDispatcher(i do.Injector) (*DispatcherHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)
	sender := do.MustInvoke[*mailer.Mailer](i)

	d := mailer.NewDispatcher(sender, cfg.Export.QueueSize, cfg.Export.Workers, log.Logger)
	d.Start()

	return &DispatcherHandle{Dispatcher: d}, nil
}
