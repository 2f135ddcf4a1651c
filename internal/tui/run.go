package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/fraudlens/fraudlens/internal/engine"
)

// Config configures the interactive prediction form.
type Config struct {
	Engine *engine.Engine
}

// Run starts the form and blocks until the operator quits.
func Run(ctx context.Context, cfg Config) error {
	if cfg.Engine == nil {
		return fmt.Errorf("engine is required")
	}

	m := NewModel(cfg.Engine)
	m.ctx = ctx

	p := tea.NewProgram(m, tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("prediction form failed: %w", err)
	}
	return nil
}
