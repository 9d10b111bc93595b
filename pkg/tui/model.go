package tui

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/stefanpenner/habitquest/pkg/goal"
	"github.com/stefanpenner/habitquest/pkg/store"
)

// TemplateChangedMsg is sent when the file watcher sees template.md change.
type TemplateChangedMsg struct{}

// RedeemDoneMsg is sent when a reward redemption finishes.
type RedeemDoneMsg struct {
	Milestone  goal.Milestone
	Redemption goal.Redemption
	Err        error
}

// GoalStore is the store surface the TUI works against.
type GoalStore interface {
	store.Repository
	AddDemoGoal() (goal.Goal, error)
	ReloadTemplate() (*store.Template, error)
}

type screen int

const (
	screenHome screen = iota
	screenDetail
)

// Model is the Bubble Tea model for the goal tracker.
type Model struct {
	store   GoalStore
	rewards goal.RewardService
	nav     Navigator
	keys    KeyMap
	width   int
	height  int

	goals  []goal.Goal
	items  []GoalItem
	cursor int

	// Detail screen. detail is nil when the route did not resolve.
	screen          screen
	route           string
	detailID        string
	detail          *goal.Goal
	milestoneCursor int

	showHelpModal bool

	// Status message
	statusMsg     string
	statusTimeout time.Time

	bar progress.Model

	// Cached glamour renderer (expensive to create)
	glamourRenderer *glamour.TermRenderer
	glamourWidth    int
}

// NewModel creates a new TUI model. A nil rewards service or navigator is
// replaced by goal.UnavailableRewards and RouteNavigator.
func NewModel(s GoalStore, rewards goal.RewardService, nav Navigator) Model {
	if rewards == nil {
		rewards = goal.UnavailableRewards{}
	}
	if nav == nil {
		nav = RouteNavigator{}
	}

	m := Model{
		store:   s,
		rewards: rewards,
		nav:     nav,
		keys:    DefaultKeyMap(),
		bar: progress.New(
			progress.WithSolidFill(string(ColorGreen)),
			progress.WithoutPercentage(),
			progress.WithWidth(minWidth/2),
		),
	}
	m.reload()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.WindowSize()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		barWidth := msg.Width / 2
		if barWidth < 10 {
			barWidth = 10
		}
		m.bar.Width = barWidth
		m.getGlamourRenderer(msg.Width - 4)
		m.reload()
		return m, tea.ClearScreen

	case TemplateChangedMsg:
		m.reloadTemplate()
		return m, nil

	case NavigateMsg:
		m.openRoute(msg.Route)
		return m, nil

	case RedeemDoneMsg:
		switch {
		case errors.Is(msg.Err, goal.ErrRewardsUnavailable):
			m.setStatus("Rewards for " + msg.Milestone.Title + " are not available yet")
		case msg.Err != nil:
			log.Printf("redeem %s: %v", msg.Milestone.ID, msg.Err)
			m.setStatus("Redeem failed: " + msg.Err.Error())
		default:
			reward := msg.Redemption.Reward
			if reward == "" {
				reward = msg.Milestone.Subtitle
			}
			m.setStatus("Redeemed: " + reward)
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	return m, nil
}

func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Help modal
	if m.showHelpModal {
		switch msg.String() {
		case "esc", "enter", "?", "q":
			m.showHelpModal = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelpModal = true
		return m, nil

	case key.Matches(msg, m.keys.Reload):
		m.reloadTemplate()
		return m, nil
	}

	if m.screen == screenDetail {
		return m.handleDetailKey(msg)
	}
	return m.handleHomeKey(msg)
}

func (m Model) handleHomeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Enter):
		if m.cursor < len(m.items) {
			return m, m.nav.NavigateToGoal(m.items[m.cursor].ID)
		}

	case key.Matches(msg, m.keys.Add):
		g, err := m.store.AddDemoGoal()
		if err != nil {
			log.Printf("add demo goal: %v", err)
			m.setStatus("Error: " + err.Error())
			break
		}
		m.reload()
		m.moveCursorToGoal(g.ID)
		m.setStatus("Added: " + g.Title)
	}

	return m, nil
}

func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.screen = screenHome
		m.route = ""
		m.detail = nil
		m.reload()
		if m.detailID != "" {
			m.moveCursorToGoal(m.detailID)
		}

	case key.Matches(msg, m.keys.Up):
		if m.milestoneCursor > 0 {
			m.milestoneCursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.detail != nil && m.milestoneCursor < len(m.detail.Milestones())-1 {
			m.milestoneCursor++
		}

	case key.Matches(msg, m.keys.Redeem):
		ms, ok := m.selectedMilestone()
		if !ok {
			break
		}
		if !goal.IsActionEnabled(ms) {
			m.setStatus("Locked: reach " + ms.Title + " first")
			break
		}
		return m, m.redeem(m.detail.ID, ms)
	}

	return m, nil
}

// openRoute switches to the screen addressed by route. Routes that do not name
// a known goal show the not-found screen.
func (m *Model) openRoute(route string) {
	m.screen = screenDetail
	m.route = route
	m.detail = nil
	m.milestoneCursor = 0

	id, ok := ParseGoalRoute(route)
	m.detailID = id
	if !ok {
		return
	}

	g, err := m.store.GetGoal(id)
	if err != nil {
		log.Printf("open %s: %v", route, err)
		return
	}
	m.detail = &g
	m.milestoneCursor = firstOpenMilestone(g.Milestones())
}

func (m *Model) selectedMilestone() (goal.Milestone, bool) {
	if m.detail == nil {
		return goal.Milestone{}, false
	}
	ms := m.detail.Milestones()
	if m.milestoneCursor < 0 || m.milestoneCursor >= len(ms) {
		return goal.Milestone{}, false
	}
	return ms[m.milestoneCursor], true
}

func (m Model) redeem(goalID string, ms goal.Milestone) tea.Cmd {
	rewards := m.rewards
	return func() tea.Msg {
		r, err := rewards.Redeem(context.Background(), goalID, ms.ID)
		return RedeemDoneMsg{Milestone: ms, Redemption: r, Err: err}
	}
}

// moveCursorToGoal positions the home cursor on the given goal.
func (m *Model) moveCursorToGoal(id string) {
	for i, item := range m.items {
		if item.ID == id {
			m.cursor = i
			return
		}
	}
}

func (m *Model) reload() {
	m.goals = m.store.ListGoals()
	m.items = BuildGoalItems(m.goals)

	// Clamp cursor
	if m.cursor >= len(m.items) {
		m.cursor = len(m.items) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) reloadTemplate() {
	t, err := m.store.ReloadTemplate()
	if err != nil {
		log.Printf("reload template: %v", err)
		m.setStatus("Template error: " + err.Error())
		return
	}
	m.setStatus("Template reloaded: " + t.Title)
}

// getGlamourRenderer returns a cached glamour renderer, creating one if needed
// or if the width changed.
func (m *Model) getGlamourRenderer(width int) *glamour.TermRenderer {
	if width < 20 {
		width = 20
	}
	if m.glamourRenderer != nil && m.glamourWidth == width {
		return m.glamourRenderer
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStylePath("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		log.Printf("glamour: %v", err)
		return nil
	}
	m.glamourRenderer = r
	m.glamourWidth = width
	return r
}

func (m *Model) setStatus(msg string) {
	m.statusMsg = msg
	m.statusTimeout = time.Now().Add(3 * time.Second)
}
