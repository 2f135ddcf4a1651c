// Package session holds the operator's authenticated context for the
// scoring service. The session is an explicit value injected into the
// network layer; nothing reads the credential from ambient state.
package session

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/fraudlens/fraudlens/internal/common"
)

// Session carries the endpoint and bearer credential for outgoing requests.
type Session struct {
	BaseURL string `json:"base_url"`
	Token   string `json:"token"`
}

// Authorize attaches the bearer credential to an outgoing request.
func (s Session) Authorize(req *http.Request) {
	if s.Token != "" {
		req.Header.Set("Authorization", "Bearer "+s.Token)
	}
}

// Save persists the session to path with operator-only permissions.
func Save(path string, s Session) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("failed to create session directory: %w", err)
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}
	return nil
}

// Load reads a previously saved session. A missing file means the operator
// has not logged in yet.
func Load(path string) (Session, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Session{}, common.ErrNotAuthenticated
		}
		return Session{}, fmt.Errorf("failed to read session file: %w", err)
	}

	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		return Session{}, fmt.Errorf("failed to parse session file: %w", err)
	}
	if s.Token == "" {
		return Session{}, common.ErrNotAuthenticated
	}
	return s, nil
}
