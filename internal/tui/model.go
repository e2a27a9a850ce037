package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"arise/internal/game"
	"arise/internal/storage"
	"arise/internal/ui"
)

type boardModel struct {
	ctx context.Context
	svc *game.Service

	width  int
	height int

	state *storage.GameState

	expanded map[string]bool
	selected int

	lastLog string
	err     error
}

type refreshedMsg struct {
	state *storage.GameState
}

type toggledMsg struct {
	questID string
	err     error
}

type claimedMsg struct {
	res *game.ClaimResult
	err error
}

func newBoardModel(ctx context.Context, svc *game.Service) boardModel {
	return boardModel{
		ctx:      ctx,
		svc:      svc,
		expanded: map[string]bool{},
		lastLog:  "Loaded.",
	}
}

func (m boardModel) Init() tea.Cmd {
	return m.refreshCmd()
}

func (m boardModel) refreshCmd() tea.Cmd {
	return func() tea.Msg {
		return refreshedMsg{state: m.svc.State()}
	}
}

func (m boardModel) toggleCmd(questID string, taskIndex int, completed bool) tea.Cmd {
	return func() tea.Msg {
		err := m.svc.SetTask(m.ctx, questID, taskIndex, completed)
		return toggledMsg{questID: questID, err: err}
	}
}

func (m boardModel) claimCmd(questID string) tea.Cmd {
	return func() tea.Msg {
		res, err := m.svc.ClaimReward(m.ctx, questID)
		return claimedMsg{res: res, err: err}
	}
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case refreshedMsg:
		m.state = msg.state
		for _, q := range m.state.Quests {
			if _, ok := m.expanded[q.ID]; !ok {
				m.expanded[q.ID] = true
			}
		}
		// Claiming removes lines; keep the cursor on the list.
		if lines := m.questLines(); m.selected >= len(lines) {
			m.selected = len(lines) - 1
		}
		if m.selected < 0 {
			m.selected = 0
		}
		m.lastLog = fmt.Sprintf("Refreshed at %s.", time.Now().Format("15:04:05"))
		return m, nil
	case toggledMsg:
		if msg.err != nil {
			m.lastLog = "Update failed: " + msg.err.Error()
			return m, nil
		}
		m.lastLog = "Task updated."
		return m, m.refreshCmd()
	case claimedMsg:
		if msg.err != nil {
			m.lastLog = "Claim failed: " + msg.err.Error()
			return m, nil
		}
		m.lastLog = fmt.Sprintf("Claimed %s: +%d XP (level %d → %d)",
			msg.res.QuestID, msg.res.XPAwarded, msg.res.LevelBefore, msg.res.LevelAfter)
		return m, m.refreshCmd()
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r":
			m.lastLog = "Refreshing…"
			return m, m.refreshCmd()
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
			return m, nil
		case "down", "j":
			lines := m.questLines()
			if m.selected < len(lines)-1 {
				m.selected++
			}
			return m, nil
		case "enter":
			lines := m.questLines()
			if m.selected < 0 || m.selected >= len(lines) {
				return m, nil
			}
			line := lines[m.selected]
			if line.taskIndex < 0 {
				m.expanded[line.questID] = !m.expanded[line.questID]
			}
			return m, nil
		case " ":
			lines := m.questLines()
			if m.selected < 0 || m.selected >= len(lines) {
				return m, nil
			}
			line := lines[m.selected]
			if line.taskIndex < 0 {
				m.lastLog = "Select a task to toggle, or press c on the quest to claim."
				return m, nil
			}
			return m, m.toggleCmd(line.questID, line.taskIndex, !line.done)
		case "c":
			lines := m.questLines()
			if m.selected < 0 || m.selected >= len(lines) {
				return m, nil
			}
			line := lines[m.selected]
			if !line.claimable {
				m.lastLog = "Complete every task first."
				return m, nil
			}
			m.lastLog = fmt.Sprintf("Claiming %s…", line.questID)
			return m, m.claimCmd(line.questID)
		}
	}
	return m, nil
}

type questLine struct {
	questID   string
	taskIndex int // -1 for the quest header line
	text      string
	done      bool
	claimable bool
	expanded  bool
}

func (m boardModel) questLines() []questLine {
	if m.state == nil {
		return nil
	}

	var out []questLine
	for _, q := range m.state.Quests {
		out = append(out, questLine{
			questID:   q.ID,
			taskIndex: -1,
			text:      fmt.Sprintf("%s (%d XP)", q.Title, q.XP),
			claimable: q.AllTasksCompleted(),
			expanded:  m.expanded[q.ID],
		})
		if !m.expanded[q.ID] {
			continue
		}
		for i, t := range q.Tasks {
			out = append(out, questLine{
				questID:   q.ID,
				taskIndex: i,
				text:      t.Description,
				done:      t.Completed,
			})
		}
	}
	return out
}

func (m boardModel) View() string {
	if m.err != nil {
		return "Error: " + m.err.Error() + "\n\nPress q to quit.\n"
	}

	return m.renderHeader() + "\n" + m.renderBody() + m.renderFooter()
}

func (m boardModel) renderHeader() string {
	if m.state == nil || m.state.UserProfile == nil {
		return "Arise — loading…"
	}
	p := m.state.UserProfile
	return fmt.Sprintf("Arise | %s | %s | Level %d | XP %s",
		p.Name, ui.RankText(p.Rank), p.Level, ui.XPBar(p.XP, p.XPToNextLevel, 30))
}

func (m boardModel) renderBody() string {
	var out []string

	out = append(out, "", "Active Quests")
	lines := m.questLines()
	if len(lines) == 0 {
		out = append(out, "(no active quests)")
	}
	for i, ql := range lines {
		cursor := "  "
		if i == m.selected {
			cursor = "> "
		}
		if ql.taskIndex < 0 {
			fold := "▸ "
			if ql.expanded {
				fold = "▾ "
			}
			claim := ""
			if ql.claimable {
				claim = " " + ui.Good.Render("(ready to claim)")
			}
			out = append(out, cursor+fold+ql.text+claim)
			continue
		}
		out = append(out, fmt.Sprintf("%s    %s %s", cursor, ui.TaskBox(ql.done), ql.text))
	}

	if st := m.svc.ActiveDungeon(); st != nil {
		out = append(out, "", "Dungeon")
		out = append(out, fmt.Sprintf("- %s: day %d of %d", st.Dungeon.Title, st.Day, st.Dungeon.Duration))
	}

	out = append(out, "", "Keys")
	out = append(out, "- ↑/↓ or j/k: move")
	out = append(out, "- enter: expand/collapse quest")
	out = append(out, "- space: toggle task")
	out = append(out, "- c: claim reward")
	out = append(out, "- r: refresh, q: quit")

	return strings.Join(out, "\n") + "\n"
}

func (m boardModel) renderFooter() string {
	return "\n" + m.lastLog
}
