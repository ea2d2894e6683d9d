package pairing

import (
	"sync"

	"github.com/google/uuid"
)

// Tokens manages the lifecycle of the pairing token. At most one token is
// valid at a time: generating a new one replaces the previous, so every
// "enable remote control" hands out a fresh secret. Tokens are never
// persisted; a restart always starts with none.
type Tokens struct {
	mu      sync.Mutex
	current string
}

// NewTokens creates an empty token slot.
func NewTokens() *Tokens {
	return &Tokens{}
}

// Generate creates a new unguessable token, replacing any existing one.
func (t *Tokens) Generate() string {
	token := uuid.NewString()

	t.mu.Lock()
	t.current = token
	t.mu.Unlock()

	return token
}

// Validate reports whether candidate matches the current token. It is false
// whenever no token is set.
func (t *Tokens) Validate(candidate string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.current != "" && candidate == t.current
}

// Current returns the active token, if any.
func (t *Tokens) Current() (string, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.current, t.current != ""
}

// Invalidate clears the current token. Calling it with no token set is a
// no-op.
func (t *Tokens) Invalidate() {
	t.mu.Lock()
	t.current = ""
	t.mu.Unlock()
}
