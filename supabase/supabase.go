package supabase

import (
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"clementus360/glowup/config"

	"github.com/supabase-community/supabase-go"
)

const (
	authPath         = "/auth/v1"
	exchangeTimeout  = 30 * time.Second
	idTokenGrantType = "id_token"
)

// NewClient creates an anonymous Supabase client for the project at apiURL.
func NewClient(apiURL, apiKey string) (*supabase.Client, error) {
	if apiURL == "" || apiKey == "" {
		return nil, fmt.Errorf("SUPABASE_URL or SUPABASE_KEY is missing")
	}

	client, err := supabase.NewClient(apiURL, apiKey, &supabase.ClientOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to create Supabase client: %w", err)
	}
	return client, nil
}

// Exchanger turns a provider identity token into a Supabase session and
// writes the user's profile row.
type Exchanger struct {
	apiURL     string
	apiKey     string
	httpClient *http.Client

	mu     sync.Mutex
	client *supabase.Client
}

// NewExchanger builds an Exchanger from the resolved settings.
func NewExchanger(settings config.Settings) (*Exchanger, error) {
	if err := settings.ValidateAuth(); err != nil {
		return nil, err
	}

	apiURL := strings.TrimRight(settings.SupabaseURL, "/")
	client, err := NewClient(apiURL, settings.SupabaseKey)
	if err != nil {
		return nil, err
	}

	return &Exchanger{
		apiURL:     apiURL,
		apiKey:     settings.SupabaseKey,
		httpClient: &http.Client{Timeout: exchangeTimeout},
		client:     client,
	}, nil
}

func (e *Exchanger) currentClient() *supabase.Client {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.client
}
