package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Settings is the resolved runtime configuration of the shell.
type Settings struct {
	SupabaseURL         string
	SupabaseKey         string
	SupabaseAccessToken string

	ChatURL     string
	ChatTimeout time.Duration

	NotifyDuration time.Duration
}

// Load reads Settings from the process environment. Call LoadEnv first to
// pick up a .env file.
func Load() (Settings, error) {
	s := Settings{
		SupabaseURL:         strings.TrimRight(strings.TrimSpace(os.Getenv("SUPABASE_URL")), "/"),
		SupabaseKey:         strings.TrimSpace(os.Getenv("SUPABASE_KEY")),
		SupabaseAccessToken: strings.TrimSpace(os.Getenv("SUPABASE_ACCESS_TOKEN")),
		ChatURL:             strings.TrimSpace(os.Getenv("CHAT_URL")),
		ChatTimeout:         DefaultChatTimeout,
		NotifyDuration:      DefaultNotifyDuration,
	}

	if s.ChatURL == "" {
		s.ChatURL = DefaultChatURL
	}

	var err error
	if s.ChatTimeout, err = durationFromEnv("CHAT_TIMEOUT", DefaultChatTimeout); err != nil {
		return Settings{}, err
	}
	if s.NotifyDuration, err = durationFromEnv("NOTIFY_DURATION", DefaultNotifyDuration); err != nil {
		return Settings{}, err
	}

	return s, nil
}

// ValidateAuth reports whether the settings needed for sign-in are present.
func (s Settings) ValidateAuth() error {
	var missing []string
	if s.SupabaseURL == "" {
		missing = append(missing, "SUPABASE_URL")
	}
	if s.SupabaseKey == "" {
		missing = append(missing, "SUPABASE_KEY")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%s is missing", strings.Join(missing, " or "))
	}
	return nil
}

func durationFromEnv(key string, fallback time.Duration) (time.Duration, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("invalid %s %q: must be positive", key, raw)
	}
	return d, nil
}
