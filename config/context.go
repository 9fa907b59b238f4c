package config

import "time"

// Identity provider the backend exchange is bound to
const ProviderApple = "apple"

// Remote tables
const (
	ProfilesTable = "profiles"
)

// Defaults used when the environment leaves a setting unset
const (
	DefaultChatURL        = "http://localhost:8000/chat"
	DefaultChatTimeout    = 30 * time.Second
	DefaultNotifyDuration = 5 * time.Second
)

// Message shown when a chat request fails without any usable detail
const FallbackChatError = "Failed to get response from the server"
