package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"levelup/internal/engine"
	"levelup/internal/storage"
	"levelup/internal/ui"
)

type boardModel struct {
	ctx context.Context
	svc *engine.Service

	width  int
	height int

	agg *storage.Aggregate

	selected int
	lastLog  string
	loading  bool
}

type loadedMsg struct {
	agg *storage.Aggregate
}

type completedMsg struct {
	res *engine.CompleteResult
}

type undoneMsg struct {
	res *engine.UndoResult
}

func newBoardModel(ctx context.Context, svc *engine.Service) boardModel {
	return boardModel{
		ctx:     ctx,
		svc:     svc,
		loading: true,
		lastLog: "Loaded.",
	}
}

func (m boardModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m boardModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		return loadedMsg{agg: m.svc.Snapshot(m.ctx)}
	}
}

func (m boardModel) completeCmd(id string) tea.Cmd {
	return func() tea.Msg {
		return completedMsg{res: m.svc.CompleteQuest(m.ctx, id)}
	}
}

func (m boardModel) undoCmd(id string) tea.Cmd {
	return func() tea.Msg {
		return undoneMsg{res: m.svc.UndoCompletion(m.ctx, id)}
	}
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case loadedMsg:
		m.loading = false
		m.agg = msg.agg
		if m.selected >= len(m.agg.Quests) {
			m.selected = len(m.agg.Quests) - 1
		}
		if m.selected < 0 {
			m.selected = 0
		}
		m.lastLog = fmt.Sprintf("Refreshed at %s.", time.Now().Format("15:04:05"))
		return m, nil
	case completedMsg:
		if msg.res == nil {
			m.lastLog = "Nothing to complete."
			return m, nil
		}
		line := fmt.Sprintf("+%d XP", msg.res.XPAwarded)
		if msg.res.BonusPercent > 0 {
			line += fmt.Sprintf(" (streak bonus +%d%%)", msg.res.BonusPercent)
		}
		if msg.res.LevelUp {
			line += " " + ui.BadgeLevelUp
		}
		for _, b := range msg.res.NewBadges {
			line += fmt.Sprintf(" %s %s", b.Icon, b.Name)
		}
		m.lastLog = line
		return m, m.loadCmd()
	case undoneMsg:
		if msg.res == nil {
			m.lastLog = "Nothing to undo."
			return m, nil
		}
		m.lastLog = fmt.Sprintf("Undone: -%d XP", msg.res.XPDeducted)
		return m, m.loadCmd()
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r":
			m.loading = true
			m.lastLog = "Refreshing…"
			return m, m.loadCmd()
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
			return m, nil
		case "down", "j":
			if m.agg != nil && m.selected < len(m.agg.Quests)-1 {
				m.selected++
			}
			return m, nil
		case "c", " ", "enter":
			q := m.selectedQuest()
			if q == nil {
				return m, nil
			}
			if q.Completed {
				m.lastLog = "Already done."
				return m, nil
			}
			m.lastLog = fmt.Sprintf("Completing %q…", q.Title)
			return m, m.completeCmd(q.ID)
		case "u":
			q := m.selectedQuest()
			if q == nil {
				return m, nil
			}
			if !q.Completed {
				m.lastLog = "Quest is not completed."
				return m, nil
			}
			return m, m.undoCmd(q.ID)
		}
	}
	return m, nil
}

func (m boardModel) selectedQuest() *storage.Quest {
	if m.agg == nil || m.selected < 0 || m.selected >= len(m.agg.Quests) {
		return nil
	}
	return &m.agg.Quests[m.selected]
}

func (m boardModel) View() string {
	if m.loading || m.agg == nil {
		return "Loading…\n"
	}
	if m.agg.User == nil {
		return "No profile yet. Run `lvl init <username>` first.\n\nPress q to quit.\n"
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderQuests())
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

func (m boardModel) renderHeader() string {
	u := m.agg.User
	parts := []string{
		ui.Heading(ui.IconSparkle, u.DisplayName),
		ui.LabelValue("Level", u.Level),
		ui.LabelValue("XP", u.TotalXP),
		ui.LabelValue("Streak", fmt.Sprintf("%d %s", u.StreakCount, ui.IconFlame)),
		ui.LabelValue("Weekly XP", engine.WeeklyXP(m.agg, time.Now())),
	}
	return strings.Join(parts, "  ") + "\n"
}

func (m boardModel) renderQuests() string {
	if len(m.agg.Quests) == 0 {
		return ui.Muted.Render("No quests. Add one with `lvl add`.") + "\n"
	}

	var b strings.Builder
	for i := range m.agg.Quests {
		q := &m.agg.Quests[i]
		mark := " "
		if q.Completed {
			mark = ui.IconDone
		}
		line := fmt.Sprintf("%s %s %-40s %s +%d XP", mark, ui.SkillIcon(q.Skill), q.Title, ui.Muted.Render(q.Size), q.XPReward)
		if i == m.selected {
			line = ui.SelectedRow.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func (m boardModel) renderFooter() string {
	help := ui.Muted.Render("↑/↓ select · space complete · u undo · r refresh · q quit")
	return m.lastLog + "\n" + help + "\n"
}
