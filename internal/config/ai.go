package config

import (
	"os"
	"strings"
	"sync"
)

// AIConfig holds configuration for the generative question pipeline
type AIConfig struct {
	Keys *KeyPool

	// Models are tried in order until one yields a usable question set
	Models []string

	TimeoutMS int
}

// DefaultAIConfig reads Gemini settings from the environment. GEMINI_API_KEYS
// takes a comma-separated list; GEMINI_API_KEY a single key.
func DefaultAIConfig() *AIConfig {
	var keys []string
	if multi := os.Getenv("GEMINI_API_KEYS"); multi != "" {
		for _, k := range strings.Split(multi, ",") {
			if k = strings.TrimSpace(k); k != "" {
				keys = append(keys, k)
			}
		}
	} else if single := os.Getenv("GEMINI_API_KEY"); single != "" {
		keys = []string{single}
	}

	return &AIConfig{
		Keys: NewKeyPool(keys),
		Models: []string{
			getEnvOrDefault("GEMINI_MODEL_PRIMARY", "gemini-2.5-flash"),
			"gemini-flash-latest",
			"gemini-2.0-flash",
			"gemini-pro-latest",
		},
		TimeoutMS: getEnvIntOrDefault("GEMINI_TIMEOUT_MS", 90000),
	}
}

// IsEnabled returns true if at least one API credential is configured
func (c *AIConfig) IsEnabled() bool {
	return c.Keys.Len() > 0
}

// KeyPool is a rotating pool of API credentials. Rotation state is scoped to
// the pool instance so concurrent pipelines never share a cursor.
type KeyPool struct {
	mu   sync.Mutex
	keys []string
	idx  int
}

// NewKeyPool creates a pool over the given credentials
func NewKeyPool(keys []string) *KeyPool {
	return &KeyPool{keys: keys}
}

// Len returns the number of credentials in the pool
func (p *KeyPool) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.keys)
}

// Current returns the active credential, or "" for an empty pool
func (p *KeyPool) Current() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.keys) == 0 {
		return ""
	}
	return p.keys[p.idx]
}

// Rotate advances to the next credential. Returns false when there is nothing
// to rotate to (zero or one key).
func (p *KeyPool) Rotate() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.keys) <= 1 {
		return false
	}
	p.idx = (p.idx + 1) % len(p.keys)
	return true
}
