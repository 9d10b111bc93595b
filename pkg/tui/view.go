package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/stefanpenner/habitquest/pkg/goal"
)

const minWidth = 40
const minHeight = 10

// lines per goal card: title, bar, next step, blank
const cardHeight = 4

// View implements tea.Model.
func (m Model) View() string {
	w := m.width
	h := m.height
	if w < minWidth {
		w = minWidth
	}
	if h < minHeight {
		h = minHeight
	}

	if m.showHelpModal {
		return placeOverlay(m.renderHelpModal(), w, h)
	}

	var b strings.Builder

	b.WriteString(m.renderHeader(w))
	b.WriteString("\n")
	b.WriteString(strings.Repeat("─", w))
	b.WriteString("\n")

	headerLines := 2
	footerLines := 2
	contentHeight := h - headerLines - footerLines

	var content string
	if m.screen == screenDetail {
		content = m.renderDetail(w, contentHeight)
	} else {
		content = m.renderHome(w, contentHeight)
	}
	for i := 0; i < contentHeight; i++ {
		b.WriteString(getLine(content, i, w))
		b.WriteString("\n")
	}

	b.WriteString(strings.Repeat("─", w))
	b.WriteString("\n")
	b.WriteString(m.renderFooter())

	return b.String()
}

func (m Model) renderHeader(width int) string {
	title := HeaderStyle.Render("HabitQuest")
	if m.screen == screenDetail {
		title += HeaderCountStyle.Render("  " + m.route)
	}

	complete := 0
	for _, item := range m.items {
		if item.Complete {
			complete++
		}
	}
	stats := HeaderCountStyle.Render(fmt.Sprintf("%d/%d goals complete", complete, len(m.items)))

	status := ""
	if m.statusMsg != "" && time.Now().Before(m.statusTimeout) {
		status = "  " + StatusStyle.Render(m.statusMsg)
	}

	gap := width - lipgloss.Width(title) - lipgloss.Width(stats) - lipgloss.Width(status)
	if gap < 1 {
		gap = 1
	}

	return title + strings.Repeat(" ", gap) + status + stats
}

func (m Model) renderHome(width, height int) string {
	if len(m.items) == 0 {
		return FooterStyle.Render("No goals yet. Press 'a' to add a demo goal.")
	}

	// Scrolling window over whole cards; the last line is the add hint
	visible := (height - 1) / cardHeight
	if visible < 1 {
		visible = 1
	}
	startIdx := 0
	endIdx := len(m.items)
	if len(m.items) > visible {
		startIdx = m.cursor - visible/2
		if startIdx < 0 {
			startIdx = 0
		}
		endIdx = startIdx + visible
		if endIdx > len(m.items) {
			endIdx = len(m.items)
			startIdx = endIdx - visible
		}
	}

	var lines []string
	for i := startIdx; i < endIdx; i++ {
		lines = append(lines, m.renderGoalCard(m.items[i], i == m.cursor, width)...)
	}
	lines = append(lines, FooterStyle.Render("+ add demo goal (a)"))

	return strings.Join(lines, "\n")
}

func (m Model) renderGoalCard(item GoalItem, isSelected bool, width int) []string {
	title := CardIndent + item.Title
	if isSelected {
		title = IconCursor + " " + item.Title
		lineWidth := lipgloss.Width(title)
		if lineWidth < width {
			title += strings.Repeat(" ", width-lineWidth)
		}
		title = SelectedStyle.Render(title)
	} else {
		title = CardTitleStyle.Render(title)
	}

	return []string{
		title,
		CardIndent + m.renderProgress(item.Progress),
		CardIndent + NextStepStyle.Render("Next step: "+item.NextStep),
		"",
	}
}

func (m Model) renderProgress(p float64) string {
	return m.bar.ViewAs(p) + PercentStyle.Render(fmt.Sprintf(" %3.0f%%", p*100))
}

func (m Model) renderDetail(width, height int) string {
	if m.detail == nil {
		var b strings.Builder
		b.WriteString(NotFoundStyle.Render("Goal not found"))
		b.WriteString("\n\n")
		if m.detailID != "" {
			b.WriteString(FooterStyle.Render(fmt.Sprintf("No goal has the id %q.", m.detailID)))
		} else {
			b.WriteString(FooterStyle.Render(fmt.Sprintf("%q is not a goal route.", m.route)))
		}
		b.WriteString("\n\n")
		b.WriteString(FooterStyle.Render("Press esc to go back."))
		return b.String()
	}

	g := *m.detail
	var lines []string
	lines = append(lines, CardTitleStyle.Render(displayName(g)))
	lines = append(lines, m.renderProgress(g.Progress))
	lines = append(lines, NextStepStyle.Render("Next step: "+g.NextStep()))
	lines = append(lines, "")

	if g.Description != "" {
		lines = append(lines, m.renderDescription(g.Description)...)
		lines = append(lines, "")
	}

	rows := BuildMilestoneRows(g.Milestones())
	for i, row := range rows {
		lines = append(lines, m.renderMilestoneRow(row, i == m.milestoneCursor, width)...)
	}

	// Keep the selected milestone on screen
	if len(lines) > height {
		selectedLine := len(lines) - 2*(len(rows)-m.milestoneCursor)
		start := selectedLine - height + 2
		if start < 0 {
			start = 0
		}
		if start+height > len(lines) {
			start = len(lines) - height
		}
		lines = lines[start : start+height]
	}

	return strings.Join(lines, "\n")
}

// renderDescription renders the goal's markdown notes with glamour.
func (m Model) renderDescription(md string) []string {
	rendered := md
	if m.glamourRenderer != nil {
		if out, err := m.glamourRenderer.Render(md); err == nil {
			rendered = out
		}
	}
	rendered = strings.Trim(rendered, "\n ")
	return strings.Split(rendered, "\n")
}

func (m Model) renderMilestoneRow(row MilestoneRow, isSelected bool, width int) []string {
	ms := row.Milestone

	var style lipgloss.Style
	switch ms.State {
	case goal.StateReached:
		style = ReachedStyle
	case goal.StateActive:
		style = ActiveStyle
	default:
		style = LockedStyle
	}

	marker := "  "
	if isSelected {
		marker = IconCursor + " "
	}

	left := marker + style.Render(row.Icon) + " " + style.Render(fmt.Sprintf("%d. %s", ms.Index, ms.Title))

	action := ActionLockedStyle.Render("[" + row.ActionLabel + "]")
	if row.ActionEnabled {
		action = ActionEnabledStyle.Render("[" + row.ActionLabel + "]")
	}

	gap := width - lipgloss.Width(left) - lipgloss.Width(action)
	if gap < 1 {
		gap = 1
	}
	line := left + strings.Repeat(" ", gap) + action
	if isSelected {
		line = SelectedStyle.Render(line)
	}

	return []string{
		line,
		"    " + SubtitleStyle.Render(ms.Subtitle),
	}
}

func (m Model) renderFooter() string {
	help := m.keys.ShortHelp()
	if m.screen == screenDetail {
		help = m.keys.DetailHelp()
		if m.detail == nil {
			help = "esc back  q quit"
		}
	}
	return FooterStyle.Render(help)
}

func (m Model) renderHelpModal() string {
	var b strings.Builder

	b.WriteString(ModalTitleStyle.Render("Keyboard Shortcuts"))
	b.WriteString("\n\n")

	keyStyle := lipgloss.NewStyle().Foreground(ColorBlue).Width(16)
	descStyle := lipgloss.NewStyle().Foreground(ColorWhite)

	for _, binding := range m.keys.FullHelp() {
		b.WriteString(keyStyle.Render(binding[0]))
		b.WriteString(descStyle.Render(binding[1]))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(FooterStyle.Render("Press Esc or ? to close"))

	return ModalStyle.Render(b.String())
}

// Helper functions

func getLine(block string, idx int, width int) string {
	lines := strings.Split(block, "\n")
	if idx < len(lines) {
		line := lines[idx]
		lineWidth := lipgloss.Width(line)
		if lineWidth < width {
			return line + strings.Repeat(" ", width-lineWidth)
		}
		return line
	}
	return strings.Repeat(" ", width)
}

func placeOverlay(modal string, width, height int) string {
	modalLines := strings.Split(modal, "\n")

	topPadding := (height - len(modalLines)) / 2
	if topPadding < 0 {
		topPadding = 0
	}

	leftPadding := (width - lipgloss.Width(modalLines[0])) / 2
	if leftPadding < 0 {
		leftPadding = 0
	}

	var result strings.Builder
	for i := 0; i < topPadding; i++ {
		result.WriteString("\n")
	}

	for _, line := range modalLines {
		result.WriteString(strings.Repeat(" ", leftPadding))
		result.WriteString(line)
		result.WriteString("\n")
	}

	return result.String()
}
