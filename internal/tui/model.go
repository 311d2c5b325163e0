package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"moodline/internal/chart"
	"moodline/internal/journal"
	"moodline/internal/ui"
)

type dashboardModel struct {
	ctx context.Context
	svc *journal.Service

	width  int
	height int

	profile journal.Profile
	stats   journal.Stats
	history []journal.Entry
	series  []journal.SeriesPoint

	granularity journal.Granularity

	lastLog string
	loading bool
	err     error
}

type loadedMsg struct {
	profile journal.Profile
	stats   journal.Stats
	history []journal.Entry
	series  []journal.SeriesPoint
	err     error
}

type switchedMsg struct {
	profile journal.Profile
	err     error
}

func newDashboardModel(ctx context.Context, svc *journal.Service) dashboardModel {
	return dashboardModel{
		ctx:         ctx,
		svc:         svc,
		granularity: journal.GranularityDaily,
		loading:     true,
		lastLog:     "Loaded.",
	}
}

func (m dashboardModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m dashboardModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		today := time.Now()
		profile, err := m.svc.ActiveProfile(m.ctx)
		if err != nil {
			return loadedMsg{err: err}
		}
		stats, err := m.svc.Stats(m.ctx, today)
		if err != nil {
			return loadedMsg{err: err}
		}
		history, err := m.svc.History(m.ctx, today,
			journal.Filter{Range: journal.RangeAll, Mood: journal.MoodAny},
			journal.Sort{Key: journal.SortByDay, Descending: true},
		)
		if err != nil {
			return loadedMsg{err: err}
		}
		series, err := m.svc.ChartSeries(m.ctx, today, m.granularity)
		if err != nil {
			return loadedMsg{err: err}
		}
		return loadedMsg{profile: profile, stats: stats, history: history, series: series}
	}
}

func (m dashboardModel) switchProfileCmd() tea.Cmd {
	return func() tea.Msg {
		profiles, err := m.svc.Profiles(m.ctx)
		if err != nil {
			return switchedMsg{err: err}
		}
		if len(profiles) < 2 {
			return switchedMsg{profile: m.profile}
		}
		next := profiles[0]
		for i, p := range profiles {
			if p.ID == m.profile.ID {
				next = profiles[(i+1)%len(profiles)]
				break
			}
		}
		p, err := m.svc.SelectProfile(m.ctx, next.ID)
		return switchedMsg{profile: p, err: err}
	}
}

func (m dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case loadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err != nil {
			m.lastLog = "Load failed: " + msg.err.Error()
			return m, nil
		}
		m.profile = msg.profile
		m.stats = msg.stats
		m.history = msg.history
		m.series = msg.series
		m.lastLog = fmt.Sprintf("Refreshed at %s.", time.Now().Format("15:04:05"))
		return m, nil
	case switchedMsg:
		if msg.err != nil {
			m.lastLog = "Switch failed: " + msg.err.Error()
			return m, nil
		}
		m.lastLog = "Profile: " + msg.profile.DisplayName
		m.loading = true
		return m, m.loadCmd()
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r":
			m.loading = true
			m.lastLog = "Refreshing…"
			return m, m.loadCmd()
		case "g":
			m.granularity = nextGranularity(m.granularity)
			m.loading = true
			m.lastLog = "Granularity: " + string(m.granularity)
			return m, m.loadCmd()
		case "p":
			return m, m.switchProfileCmd()
		}
	}
	return m, nil
}

func nextGranularity(g journal.Granularity) journal.Granularity {
	switch g {
	case journal.GranularityDaily:
		return journal.GranularityWeekly
	case journal.GranularityWeekly:
		return journal.GranularityMonthly
	default:
		return journal.GranularityDaily
	}
}

func (m dashboardModel) View() string {
	if m.err != nil {
		return "Error: " + m.err.Error() + "\n\nPress q to quit.\n"
	}

	header := m.renderHeader()
	sidebar := m.renderSidebar()
	main := m.renderMain()
	footer := m.renderFooter()

	// Simple 2-column layout.
	leftW := 28
	if m.width > 0 {
		maxLeft := m.width / 2
		if maxLeft < leftW {
			leftW = maxLeft
		}
		if leftW < 20 {
			leftW = 20
		}
	}

	linesLeft := strings.Split(sidebar, "\n")
	linesRight := strings.Split(main, "\n")
	max := len(linesLeft)
	if len(linesRight) > max {
		max = len(linesRight)
	}

	var body strings.Builder
	for i := 0; i < max; i++ {
		l := ""
		r := ""
		if i < len(linesLeft) {
			l = linesLeft[i]
		}
		if i < len(linesRight) {
			r = linesRight[i]
		}
		body.WriteString(padRight(l, leftW))
		body.WriteString("  ")
		body.WriteString(r)
		body.WriteString("\n")
	}

	return header + "\n" + body.String() + footer
}

func (m dashboardModel) renderHeader() string {
	if m.loading && m.stats.Total == 0 {
		return "Moodline — loading…"
	}
	return fmt.Sprintf("Moodline | %s %s | %s %d day streak | weekly %s",
		m.profile.AvatarGlyph, m.profile.DisplayName,
		ui.IconStreak, m.stats.Streak,
		ui.MeanText(m.stats.Weekly),
	)
}

func (m dashboardModel) renderSidebar() string {
	lines := []string{"Attributes"}
	for _, a := range m.stats.Attributes {
		lines = append(lines, renderAttrBar(a))
	}
	lines = append(lines, "")
	lines = append(lines, "Time of day")
	for _, bc := range m.stats.Distribution {
		lines = append(lines, fmt.Sprintf("- %-9s %d", bc.Band, bc.Count))
	}
	lines = append(lines, "")
	lines = append(lines, "Keys")
	lines = append(lines, "- g: granularity")
	lines = append(lines, "- p: next profile")
	lines = append(lines, "- r: refresh")
	lines = append(lines, "- q: quit")
	return strings.Join(lines, "\n")
}

func (m dashboardModel) renderMain() string {
	if m.loading {
		return "Loading…"
	}
	var out []string
	out = append(out, fmt.Sprintf("Mood (%s)", m.granularity))

	chartW := 52
	if m.width > 0 && m.width-34 < chartW {
		chartW = m.width - 34
		if chartW < 20 {
			chartW = 20
		}
	}
	geo := chart.Map(m.series, chartW, 10, 1)
	out = append(out, chart.RenderText(geo))
	out = append(out, "")
	out = append(out, "Recent entries")
	if len(m.history) == 0 {
		out = append(out, "(no entries yet)")
		return strings.Join(out, "\n")
	}
	limit := len(m.history)
	if limit > 8 {
		limit = 8
	}
	for _, e := range m.history[:limit] {
		notes := e.Notes
		if r := []rune(notes); len(r) > 30 {
			notes = string(r[:30]) + "…"
		}
		out = append(out, fmt.Sprintf("- %s %s %s", e.DayKey, ui.MoodText(e.Mood), ui.Muted.Render(notes)))
	}
	return strings.Join(out, "\n")
}

func (m dashboardModel) renderFooter() string {
	return "\n" + m.lastLog
}

func renderAttrBar(a journal.AttributeAverage) string {
	if !a.Mean.Valid {
		return fmt.Sprintf("- %-12s %s", a.Attribute, "no data")
	}
	return fmt.Sprintf("- %-12s %.1f %s", a.Attribute, journal.Round1(a.Mean.Value), percentBar(a.Percent, 10))
}

func percentBar(percent float64, width int) string {
	if width <= 0 {
		width = 1
	}
	filled := int(percent / 100 * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}

func padRight(s string, width int) string {
	if width <= 0 {
		return s
	}
	r := []rune(s)
	if len(r) >= width {
		return string(r[:width])
	}
	return s + strings.Repeat(" ", width-len(r))
}
