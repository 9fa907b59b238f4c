package cli

import (
	"clementus360/glowup/chat"
	"clementus360/glowup/config"
	"clementus360/glowup/identity"
	"clementus360/glowup/notify"
	"clementus360/glowup/session"
	"clementus360/glowup/supabase"
)

func (a *app) newSessionManager(bridge identity.Bridge, notifier notify.Notifier) (*session.Manager, error) {
	exchanger, err := supabase.NewExchanger(a.settings)
	if err != nil {
		return nil, err
	}

	return session.NewManager(bridge, exchanger,
		session.WithLogger(config.Logger),
		session.WithNotifier(notifier),
		session.WithNotifyDuration(a.settings.NotifyDuration),
		session.WithRestoreToken(a.settings.SupabaseAccessToken),
	), nil
}

func (a *app) newOrchestrator(notifier notify.Notifier) *chat.Orchestrator {
	return chat.NewOrchestrator(
		chat.NewClient(a.settings.ChatURL, a.settings.ChatTimeout),
		chat.WithLogger(config.Logger),
		chat.WithNotifier(notifier),
		chat.WithNotifyDuration(a.settings.NotifyDuration),
	)
}
