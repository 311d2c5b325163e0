package tui

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"moodline/internal/journal"
)

func RunDashboard(ctx context.Context, svc *journal.Service, out io.Writer) error {
	m := newDashboardModel(ctx, svc)
	p := tea.NewProgram(m, tea.WithOutput(out))
	_, err := p.Run()
	return err
}
